package db

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
)

// Connect opens the PostgreSQL pool described by dsn and verifies it with a ping.
// The caller owns the returned pool and must Close it at shutdown.
func Connect(ctx context.Context, dsn string, maxOpen, maxIdle int) (*sql.DB, error) {
	pool, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if maxOpen > 0 {
		pool.SetMaxOpenConns(maxOpen)
	}
	if maxIdle > 0 {
		pool.SetMaxIdleConns(maxIdle)
	}

	if err := pool.PingContext(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return pool, nil
}
