package kvstore

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// PostgresKV shares wizard progress between console instances through the
// wizard_progress table (see migrations/).
type PostgresKV struct {
	pool *pgxpool.Pool
}

func NewPostgresKV(pool *pgxpool.Pool) *PostgresKV {
	return &PostgresKV{pool: pool}
}

const (
	selectProgressSQL = `SELECT value FROM wizard_progress WHERE key = $1`
	upsertProgressSQL = `
		INSERT INTO wizard_progress (key, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()`
	deleteProgressSQL = `DELETE FROM wizard_progress WHERE key = $1`
)

func (p *PostgresKV) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var span trace.Span
	ctx, span = tracer.Start(ctx, "PostgresKV.Get")
	defer span.End()

	var value []byte
	err := p.pool.QueryRow(ctx, selectProgressSQL, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, false, err
	}
	return value, true, nil
}

func (p *PostgresKV) Put(ctx context.Context, key string, value []byte) error {
	var span trace.Span
	ctx, span = tracer.Start(ctx, "PostgresKV.Put")
	defer span.End()

	if _, err := p.pool.Exec(ctx, upsertProgressSQL, key, value); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}

func (p *PostgresKV) Delete(ctx context.Context, key string) error {
	var span trace.Span
	ctx, span = tracer.Start(ctx, "PostgresKV.Delete")
	defer span.End()

	if _, err := p.pool.Exec(ctx, deleteProgressSQL, key); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}
