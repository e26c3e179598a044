package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/desertthunder/sp/internal/server"
	"github.com/desertthunder/sp/internal/services"
	"github.com/desertthunder/sp/internal/shared"
	"github.com/desertthunder/sp/internal/ui"
	"github.com/urfave/cli/v3"
	"golang.org/x/oauth2"
)

// AuthLogin performs the OAuth2 authorization flow and caches the token.
//
// Starts a local HTTP server on the redirect URI's port, opens the browser
// for user authorization, and exchanges the auth code for tokens.
func (r *Runner) AuthLogin(ctx context.Context, cmd *cli.Command) error {
	if err := r.config.Validate(); err != nil {
		return err
	}

	oauthSvc, err := r.oauthService()
	if err != nil {
		return err
	}

	token, err := r.doOAuth(oauthSvc)
	if err != nil {
		return err
	}

	if err := r.cache.Save(token); err != nil {
		return fmt.Errorf("failed to cache token: %w", err)
	}

	if err := oauthSvc.OAuthenticate(ctx, token); err != nil {
		return err
	}

	r.writePlainln("%s Authorization successful", ui.OK("✓"))
	r.writePlainln("%s Token cached at %s", ui.OK("✓"), r.cache.Path())
	return nil
}

// AuthStatus reports the cached token state and, when valid, the account name.
func (r *Runner) AuthStatus(ctx context.Context, cmd *cli.Command) error {
	useJSON := cmd.Bool("json")

	token, err := r.cache.Load()
	if err != nil {
		if errors.Is(err, shared.ErrNoToken) {
			if useJSON {
				return r.writeJSON(map[string]any{"authenticated": false}, true)
			}
			r.writePlainln("%s Not authenticated. Run 'sp auth login'.", ui.Warn("✗"))
			return nil
		}
		return err
	}

	status := map[string]any{
		"authenticated": true,
		"expired":       !token.Valid(),
		"cache_path":    r.cache.Path(),
	}

	var displayName string
	if svc, svcErr := r.requireService(); svcErr == nil {
		if user, userErr := svc.CurrentUser(ctx); userErr == nil {
			displayName = user.DisplayName
			status["account"] = displayName
		}
	}

	if useJSON {
		return r.writeJSON(status, true)
	}

	r.writePlainln("%s Token cached at %s", ui.OK("✓"), r.cache.Path())
	if token.Valid() {
		r.writePlainln("Access token valid until %s", token.Expiry.Format(time.RFC3339))
	} else {
		r.writePlainln("Access token expired; it will refresh on next use.")
	}
	if displayName != "" {
		r.writePlainln("Account: %s", displayName)
	}
	return nil
}

// AuthLogout removes the cached token.
func (r *Runner) AuthLogout(ctx context.Context, cmd *cli.Command) error {
	if err := r.cache.Clear(); err != nil {
		return err
	}
	r.writePlainln("%s Logged out.", ui.OK("✓"))
	return nil
}

// oauthService returns the configured service as an [services.OAuthService],
// constructing one from config when the runner has none yet.
func (r *Runner) oauthService() (services.OAuthService, error) {
	if r.service != nil {
		if svc, ok := r.service.(services.OAuthService); ok {
			return svc, nil
		}
		return nil, fmt.Errorf("service does not support OAuth")
	}

	svc, err := services.NewSpotifyService(r.config.Credentials.Map())
	if err != nil {
		return nil, fmt.Errorf("failed to create Spotify service: %w", err)
	}
	r.service = svc
	return svc, nil
}

// doOAuth executes the OAuth2 authorization flow with a local HTTP server
func (r *Runner) doOAuth(oauthSvc services.OAuthService) (*oauth2.Token, error) {
	state, err := shared.GenerateState()
	if err != nil {
		return nil, err
	}

	authURL := oauthSvc.GetAuthURL(state)
	oauthHandler := server.NewOAuthHandler(oauthSvc.GetOAuthConfig(), state)
	router := server.NewBasicRouter()
	router.Handler(oauthHandler)

	serverAddr, err := r.config.Credentials.CallbackAddr()
	if err != nil {
		return nil, err
	}

	httpServer := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	serverErrors := make(chan error, 1)
	go func() {
		r.logger.Infof("starting OAuth callback server at %v", serverAddr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrors <- err
		}
	}()

	time.Sleep(100 * time.Millisecond)

	r.writePlainln("→ Opening browser for Spotify authorization...")
	if err := shared.OpenBrowser(authURL); err != nil {
		r.logger.Warnf("failed to open browser automatically: %v", err)
		r.writePlainln("%s Could not open browser automatically.", ui.Warn("⚠"))
		r.writePlainln("Please open this URL in your browser:\n%s", ui.Help(authURL))
	}

	r.writePlainln("→ Waiting for authorization (2 minute timeout)...")

	timeout := time.NewTimer(2 * time.Minute)
	defer timeout.Stop()

	var result server.OAuthResult

	select {
	case result = <-oauthHandler.Result():
		// Got result from callback
	case err := <-serverErrors:
		return nil, fmt.Errorf("server error: %w", err)
	case <-timeout.C:
		return nil, fmt.Errorf("%w: authorization timed out after 2 minutes", shared.ErrTimeout)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		r.logger.Warn("error shutting down server", "error", err)
	}

	if result.Error() != nil {
		return nil, fmt.Errorf("authorization failed: %w", result.Error())
	}

	if result.Token == nil {
		return nil, fmt.Errorf("no token received")
	}

	return result.Token, nil
}
