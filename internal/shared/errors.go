package shared

import "fmt"

var (
	// Configuration errors
	ErrMissingConfig      = fmt.Errorf("configuration not found")
	ErrInvalidConfig      = fmt.Errorf("invalid configuration")
	ErrMissingCredentials = fmt.Errorf("missing credentials")

	// Authentication errors
	ErrAuthFailed       = fmt.Errorf("authentication failed")
	ErrNotAuthenticated = fmt.Errorf("not authenticated")
	ErrTokenExpired     = fmt.Errorf("access token expired")
	ErrNoToken          = fmt.Errorf("no cached token")
	ErrTimeout          = fmt.Errorf("operation timed out")

	// API errors
	ErrAPIRequest  = fmt.Errorf("API request failed")
	ErrNotFound    = fmt.Errorf("resource not found")
	ErrRateLimited = fmt.Errorf("rate limited")
	ErrNoDevice    = fmt.Errorf("no playback device available")

	// Input validation errors
	ErrInvalidInput    = fmt.Errorf("invalid input")
	ErrMissingArgument = fmt.Errorf("missing required argument")
	ErrInvalidArgument = fmt.Errorf("invalid argument")
)
