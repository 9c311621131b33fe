package db

import (
	"context"
	"database/sql"
)

// Querier is the statement surface shared by *sql.DB, *sql.Conn and *sql.Tx.
// Repositories depend on it so they run unchanged on a pool or a request-scoped connection.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Provider hands out dedicated connections from the pool, one per request.
type Provider struct {
	pool *sql.DB
}

func NewProvider(pool *sql.DB) *Provider {
	return &Provider{pool: pool}
}

// Acquire reserves a connection. The caller must Close it to return it to the pool.
func (p *Provider) Acquire(ctx context.Context) (*sql.Conn, error) {
	return p.pool.Conn(ctx)
}

type querierKey struct{}

// WithQuerier returns a copy of ctx carrying q.
func WithQuerier(ctx context.Context, q Querier) context.Context {
	return context.WithValue(ctx, querierKey{}, q)
}

// QuerierFrom returns the Querier stored by WithQuerier, if any.
func QuerierFrom(ctx context.Context) (Querier, bool) {
	q, ok := ctx.Value(querierKey{}).(Querier)
	return q, ok
}
