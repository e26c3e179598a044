// Package server provides the temporary HTTP surface for the CLI's OAuth flow.
//
// # Router
//
// [BasicRouter] wraps [http.ServeMux] with method filtering and a standard
// middleware chain ([Middleware] wraps in reverse order, last added executes
// first). Custom handlers implement [Handler] to register their own routes.
//
// # OAuth Callback Handler
//
// [OAuthHandler] implements the OAuth2 authorization code callback: it
// validates the state parameter (CSRF protection), exchanges the code for
// tokens, and delivers the result through a channel. Only one callback is
// processed per flow to prevent replays.
//
// When the user runs `sp auth login`, a server binds the redirect URI's
// host:port, handles the single callback, and shuts down once the token is
// delivered.
package server
