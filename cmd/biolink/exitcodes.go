package main

import (
	"errors"

	"github.com/matsen/biolink/internal/biolink"
	"github.com/matsen/biolink/internal/config"
)

// Exit codes
const (
	ExitSuccess     = 0 // Success
	ExitError       = 1 // General error (invalid arguments, runtime failure)
	ExitConfigError = 2 // Configuration error (unknown server, invalid URL)
	ExitNotFound    = 3 // Entity not found
	ExitAPIError    = 4 // API error (HTTP status, network)
	ExitDecodeError = 5 // Service returned something other than JSON
)

// exitCodeFor maps a client error to an exit code.
func exitCodeFor(err error) int {
	var apiErr *biolink.APIError
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, config.ErrUnknownServer):
		return ExitConfigError
	case biolink.IsNotFound(err):
		return ExitNotFound
	case biolink.IsDecodeError(err):
		return ExitDecodeError
	case biolink.IsNetworkError(err), errors.As(err, &apiErr):
		return ExitAPIError
	}
	return ExitError
}
