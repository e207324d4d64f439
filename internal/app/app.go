package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/pr-poehali-dev/word-definition-bot-1/internal/adapter/provider/slovarapi"
	"github.com/pr-poehali-dev/word-definition-bot-1/internal/adapter/storage/file"
	"github.com/pr-poehali-dev/word-definition-bot-1/internal/adapter/storage/postgres"
	"github.com/pr-poehali-dev/word-definition-bot-1/internal/adapter/wordcache"
	"github.com/pr-poehali-dev/word-definition-bot-1/internal/config"
	"github.com/pr-poehali-dev/word-definition-bot-1/internal/service/search"
	"github.com/pr-poehali-dev/word-definition-bot-1/internal/transport/cli"
)

// favoritesStore is what the controller needs from a storage backend.
type favoritesStore interface {
	Load(ctx context.Context) ([]string, error)
	Save(ctx context.Context, words []string) error
}

// Run is the application entry point. It loads configuration, initializes
// the logger, wires the lookup client, favorites store, result cache, and
// controller, then hands control to the terminal UI until EOF or signal.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(os.Stderr, cfg.Log)

	logger.Info("starting slovar",
		slog.String("version", BuildVersion()),
		slog.String("storage", cfg.Storage.Backend),
		slog.String("log_level", cfg.Log.Level),
	)

	store, cleanup, err := newFavoritesStore(ctx, cfg.Storage, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	client := slovarapi.NewClient(cfg.Lookup, logger)

	var ctrl *search.Controller
	if cfg.Cache.Enabled {
		cache := wordcache.New(cfg.Cache.TTL, cfg.Cache.CleanupInterval)
		ctrl = search.NewController(ctx, logger, client, store, cache)
	} else {
		ctrl = search.NewController(ctx, logger, client, store, nil)
	}

	ui := cli.New(os.Stdin, os.Stdout, ctrl)
	return ui.Run(ctx)
}

// newFavoritesStore builds the configured storage backend. The postgres
// backend applies pending migrations before first use.
func newFavoritesStore(ctx context.Context, cfg config.StorageConfig, logger *slog.Logger) (favoritesStore, func(), error) {
	switch strings.ToLower(cfg.Backend) {
	case "postgres":
		if err := postgres.Migrate(ctx, cfg.DSN); err != nil {
			return nil, nil, fmt.Errorf("app: migrate: %w", err)
		}
		pool, err := postgres.NewPool(ctx, cfg)
		if err != nil {
			return nil, nil, fmt.Errorf("app: storage: %w", err)
		}
		return postgres.New(pool, logger), pool.Close, nil

	default:
		return file.New(cfg.FilePath, logger), func() {}, nil
	}
}
