package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"chefpay/internal/logging"

	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrMissingDSN = errors.New("database url not set")

// PoolOptions sizes the connection pool. Zero values keep the defaults.
type PoolOptions struct {
	MaxConns int
	MinConns int
}

const (
	defaultMaxConns = 10
	defaultMinConns = 2
)

func (o PoolOptions) sizes() (maxConns, minConns int32) {
	maxConns, minConns = defaultMaxConns, defaultMinConns
	if o.MaxConns > 0 {
		maxConns = int32(o.MaxConns)
	}
	if o.MinConns > 0 {
		minConns = int32(o.MinConns)
	}
	if minConns > maxConns {
		minConns = maxConns
	}
	return maxConns, minConns
}

// Connect opens a pool and pings it.
func Connect(ctx context.Context, dsn string, opts PoolOptions) (*pgxpool.Pool, error) {
	if dsn == "" {
		return nil, ErrMissingDSN
	}

	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}

	cfg.MaxConns, cfg.MinConns = opts.sizes()
	cfg.MaxConnLifetime = time.Hour

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("postgres connection failed: %w", err)
	}

	logger := logging.Component("db")
	logger.Info().
		Int32("max_conns", cfg.MaxConns).
		Msg("connected to postgres")

	return pool, nil
}
