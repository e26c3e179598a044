// Package services defines the [Service] interface for music streaming providers and implements it for the Spotify Web API.
//
// # Service Interface
//
// [Service] enumerates every remote operation the CLI performs. Commands
// depend on the interface, not the concrete client, so dispatch can be
// tested with a mock.
//
// # Spotify Implementation
//
// [SpotifyService] uses OAuth2 for authentication with automatic token refresh.
//
// Tokens live in a [TokenCache] file; [SpotifyService.AuthenticateFromCache]
// installs a token source that refreshes expired access tokens and writes
// rotated tokens back to the cache.
//
// Requests are paced with a client-side [rate.Limiter]. There is no retry or
// backoff: API errors surface to the caller as wrapped sentinel errors from
// the shared package:
//   - [shared.ErrNotAuthenticated] : no token installed
//   - [shared.ErrTokenExpired] : 401 from the API
//   - [shared.ErrNotFound] : 404 from the API
//   - [shared.ErrRateLimited] : 429 from the API
//   - [shared.ErrAPIRequest] : transport failures and other statuses
//
// # Wire vs Domain Types
//
// Spotify* structs mirror the Web API JSON. Conversion functions reduce them
// to the compact domain shapes the CLI prints: tracks carry a bare artist
// name list unless detail was requested, matching the documented output
// contract.
package services
