package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"

	"github.com/mnovakovic/wp-appwrite-sync/internal/config"
	"github.com/mnovakovic/wp-appwrite-sync/internal/store/factory"
	"github.com/mnovakovic/wp-appwrite-sync/internal/syncer"
	"github.com/mnovakovic/wp-appwrite-sync/internal/wordpress"
)

func main() {
	appSettings := NewAppConfig()

	cfg, opts, err := appSettings.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := cfg.Validate(); err != nil {
		slog.Error("aborting before any fetch", "error", err)
		printResult(syncer.NewFailure(config.MissingEnvMessage))
		os.Exit(1)
	}

	s, err := newSyncer(cfg, opts)
	if err != nil {
		slog.Error("failed to create syncer", "error", err)
		os.Exit(1)
	}

	printResult(s.Run(ctx))
}

func newSyncer(cfg *config.Config, opts *config.Options) (*syncer.Syncer, error) {
	var clientOpts []wordpress.ClientOption
	var syncerOpts []syncer.Option

	if opts != nil {
		if timeout := opts.HTTPTimeout(); timeout > 0 {
			clientOpts = append(clientOpts, wordpress.WithTimeout(timeout))
		}

		tfs, err := opts.ParseTimeframes()
		if err != nil {
			return nil, err
		}
		if len(tfs) > 0 {
			syncerOpts = append(syncerOpts, syncer.WithTimeframes(tfs...))
		}
	}

	client := wordpress.NewClient(cfg.WordPressURL, clientOpts...)
	docs := factory.NewDocumentStore(cfg)

	return syncer.New(client, docs, syncerOpts...), nil
}

func printResult(result any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		slog.Error("failed to encode run result", "error", err)
	}
}
