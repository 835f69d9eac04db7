// Package main provides the rostergraph binary entry point.
// Rostergraph turns crawled football roster data into a knowledge graph:
// it resolves sighted players and clubs into canonical entities, derives
// seasons, stats, and relations, and emits the result as RDF.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	// Register the football vocabulary via init()
	_ "github.com/c360studio/rostergraph/vocabulary/football"

	"github.com/c360studio/rostergraph/commands"
)

const (
	Version   = "0.1.0"
	BuildTime = "dev"
	appName   = "rostergraph"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var logLevel string

	cmd := &cobra.Command{
		Use:   "rostergraph",
		Short: "Football roster knowledge graph builder",
		Long: `Rostergraph turns crawled football roster data into a knowledge graph.

It provides:
- Entity resolution of player and club sightings into canonical entities
- Per-season stats, career totals, and derived teammate relations
- RDF emission as Turtle, N-Triples, or JSON-LD
- Optional publishing to a NATS graph ingest stream

The pipeline runs end to end with 'rostergraph run', or stage by stage
with the individual commands exchanging JSON artifacts.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			configureLogging(logLevel)
		},
	}

	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s version %s (build: %s)\n", appName, Version, BuildTime)
		},
	})

	commands.Register(cmd)

	return cmd
}

func configureLogging(logLevel string) {
	level := slog.LevelInfo
	switch strings.ToLower(logLevel) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
}
