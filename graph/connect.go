package graph

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/c360studio/semstreams/natsclient"
)

// Connect dials the knowledge graph broker. An empty URL means the run is
// file-only and returns a nil client, which the publisher treats as a no-op.
func Connect(ctx context.Context, url string, logger *slog.Logger) (*natsclient.Client, error) {
	if envURL := os.Getenv("NATS_URL"); envURL != "" {
		url = envURL
	}
	if url == "" {
		logger.Debug("No NATS URL configured, graph publishing disabled")
		return nil, nil
	}

	logger.Info("Connecting to NATS", "url", url)

	client, err := natsclient.NewClient(url,
		natsclient.WithName("rostergraph"),
		natsclient.WithMaxReconnects(-1),
		natsclient.WithReconnectWait(time.Second),
		natsclient.WithHealthInterval(30*time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("create NATS client: %w", err)
	}

	if err := client.Connect(ctx); err != nil {
		return nil, wrapNATSError(err, url)
	}

	connCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := client.WaitForConnection(connCtx); err != nil {
		return nil, wrapNATSError(err, url)
	}

	logger.Info("Connected to NATS", "url", url)
	return client, nil
}

// wrapNATSError provides helpful guidance when NATS connection fails.
func wrapNATSError(err error, url string) error {
	errStr := err.Error()

	if strings.Contains(errStr, "connection refused") ||
		strings.Contains(errStr, "no servers available") ||
		strings.Contains(errStr, "timeout") {
		return fmt.Errorf(`NATS connection failed: %w

NATS is not running at %s.

Leave nats.url empty for a file-only run, or set NATS_URL to your server.`, err, url)
	}

	return fmt.Errorf("NATS connection failed: %w", err)
}
