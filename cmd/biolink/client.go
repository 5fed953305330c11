package main

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"

	"github.com/matsen/biolink/internal/biolink"
	"github.com/matsen/biolink/internal/config"
)

// newClient resolves the server profile and builds a client for it.
func newClient() (*biolink.Client, error) {
	global, err := config.LoadGlobalConfig()
	if err != nil {
		return nil, err
	}
	server, err := global.ResolveServer(serverName)
	if err != nil {
		return nil, err
	}
	return biolink.NewClient(server,
		biolink.WithHTTPClient(&http.Client{Timeout: requestTimeout}),
		biolink.WithLogger(slog.Default()),
		biolink.WithUserAgent(userAgent()),
	), nil
}

// userAgent identifies this build of the CLI to Monarch services.
func userAgent() string {
	return biolink.DefaultUserAgent + "/" + Version
}

// execute runs fn against a fresh client and writes its result.
// human formats the result for --human; nil falls back to indented JSON.
func execute(fn func(ctx context.Context, client *biolink.Client) (any, error), human func(any)) {
	client, err := newClient()
	if err != nil {
		if !errors.Is(err, config.ErrUnknownServer) {
			exitWithError(ExitConfigError, "%v", err)
		}
		exitWithError(ExitConfigError, "%v\n\n%s", err, config.HelpfulConfigMessage())
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	result, err := fn(ctx, client)
	if err != nil {
		exitWithError(exitCodeFor(err), "%v", err)
	}

	if humanOutput && human != nil {
		human(result)
		return
	}
	if err := outputJSON(result); err != nil {
		exitWithError(ExitError, "writing output: %v", err)
	}
}

// executeRaw runs a passthrough call whose result is the service's own JSON.
func executeRaw(fn func(ctx context.Context, client *biolink.Client) (json.RawMessage, error)) {
	execute(func(ctx context.Context, client *biolink.Client) (any, error) {
		return fn(ctx, client)
	}, nil)
}
