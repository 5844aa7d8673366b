package export

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// WritePostgres replaces the exported tables in the Postgres database at
// url inside a single transaction.
func WritePostgres(ctx context.Context, url string, snap *Snapshot) error {
	pool, err := pgxpool.New(ctx, url)
	if err != nil {
		return fmt.Errorf("failed to create pool: %w", err)
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}

	return pgx.BeginFunc(ctx, pool, func(tx pgx.Tx) error {
		for _, stmt := range schema {
			if _, err := tx.Exec(ctx, stmt); err != nil {
				return fmt.Errorf("schema: %w", err)
			}
		}
		batch := &pgx.Batch{}
		for _, in := range snap.inserts() {
			sql := in.statement(func(n int) string { return "$" + strconv.Itoa(n) })
			for _, row := range in.rows {
				batch.Queue(sql, row...)
			}
		}
		return tx.SendBatch(ctx, batch).Close()
	})
}
