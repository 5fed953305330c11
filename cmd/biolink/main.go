// Package main provides the biolink CLI entry point.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

var (
	// humanOutput controls whether to use human-readable output
	humanOutput bool

	serverName     string
	verbose        bool
	requestTimeout time.Duration
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		// Print the error since we have SilenceErrors: true
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "biolink",
	Short: "Aggregating client for the Monarch BioLink API",
	Long: `biolink queries the Monarch Initiative knowledge graph services.

Core features:
  - Node summaries: entity detail, local graph and association counts in one call
  - Class neighborhoods: superclasses, subclasses and equivalent classes
  - Search, autocomplete, association listings, xrefs and phenotype comparison

The server profile comes from --server, BIOLINK_SERVER, or
~/.config/biolink/config.yml (default: cgrb). A .env file in the
current directory is loaded first.

All commands output JSON by default for agent integration.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Load .env file if present (for BIOLINK_SERVER / BIOLINK_URL)
		_ = godotenv.Load()
		slog.SetDefault(newLogger(verbose))
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&humanOutput, "human", false, "Use human-readable output instead of JSON")
	rootCmd.PersistentFlags().StringVar(&serverName, "server", "", "Server profile (development, beta, cgrb, or one from config.yml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log requests to stderr")
	rootCmd.PersistentFlags().DurationVar(&requestTimeout, "timeout", 30*time.Second, "Per-request HTTP timeout")
	rootCmd.Version = Version
}

// newLogger returns a stderr logger; verbose enables request-level debug lines.
func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
