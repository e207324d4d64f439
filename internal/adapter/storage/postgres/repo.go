// Package postgres implements the favorites store on PostgreSQL, for setups
// where the favorites list should survive more than the local filesystem.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver for database/sql (goose)
	"github.com/pressly/goose/v3"

	"github.com/pr-poehali-dev/word-definition-bot-1/internal/config"
	"github.com/pr-poehali-dev/word-definition-bot-1/migrations"
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides favorites persistence backed by PostgreSQL.
// The whole table is the slot: Save replaces its contents in one
// transaction, so Load always observes a complete list.
type Repo struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

// New creates a new favorites repository.
func New(pool *pgxpool.Pool, logger *slog.Logger) *Repo {
	return &Repo{
		pool: pool,
		log:  logger.With("adapter", "postgres"),
	}
}

// NewPool creates a pgx connection pool from storage configuration and
// verifies connectivity with a ping.
func NewPool(ctx context.Context, cfg config.StorageConfig) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("postgres: parse dsn: %w", err)
	}
	poolCfg.MaxConns = cfg.MaxConns
	poolCfg.MaxConnLifetime = cfg.MaxConnLifetime

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("postgres: create pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("postgres: ping: %w", err)
	}

	return pool, nil
}

// Migrate applies the embedded goose migrations to the database at dsn.
//
// goose requires *sql.DB, so a short-lived database/sql connection through
// the pgx stdlib driver is used; goose.NewProvider handles $$-delimited
// statements correctly, unlike the legacy goose.Up.
func Migrate(ctx context.Context, dsn string) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("postgres: open for migrate: %w", err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("postgres: ping for migrate: %w", err)
	}

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return fmt.Errorf("postgres: goose provider: %w", err)
	}

	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("postgres: goose up: %w", err)
	}

	return nil
}

// Load returns the stored favorites list ordered by insertion position.
// An empty table yields an empty slice, not nil.
func (r *Repo) Load(ctx context.Context) ([]string, error) {
	query, args, err := qb.
		Select("word").
		From("favorite_words").
		OrderBy("position").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("postgres: build load query: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("postgres: load favorites: %w", err)
	}
	defer rows.Close()

	words := []string{}
	for rows.Next() {
		var w string
		if err := rows.Scan(&w); err != nil {
			return nil, fmt.Errorf("postgres: scan favorite: %w", err)
		}
		words = append(words, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres: load favorites: %w", err)
	}

	return words, nil
}

// Save replaces the stored favorites list with the given one.
// Delete and positional insert run in a single transaction so concurrent
// Loads never see a partially written list.
func (r *Repo) Save(ctx context.Context, words []string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("postgres: begin save: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, "DELETE FROM favorite_words"); err != nil {
		return fmt.Errorf("postgres: clear favorites: %w", err)
	}

	if len(words) > 0 {
		ins := qb.Insert("favorite_words").Columns("position", "word")
		for i, w := range words {
			ins = ins.Values(i, w)
		}
		query, args, err := ins.ToSql()
		if err != nil {
			return fmt.Errorf("postgres: build insert: %w", err)
		}
		if _, err := tx.Exec(ctx, query, args...); err != nil {
			return fmt.Errorf("postgres: insert favorites: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("postgres: commit save: %w", err)
	}

	r.log.DebugContext(ctx, "favorites saved", slog.Int("count", len(words)))
	return nil
}
