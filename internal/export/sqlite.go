package export

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // SQLite driver.
)

// WriteSQLite replaces the exported tables in the SQLite database at path,
// creating the file and its directory when needed.
func WriteSQLite(ctx context.Context, path string, snap *Snapshot) (err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := db.Close(); err == nil {
			err = cerr
		}
	}()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			if rerr := tx.Rollback(); rerr != nil {
				// Best-effort rollback.
				_ = rerr
			}
		}
	}()

	for _, stmt := range schema {
		if _, err = tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("schema: %w", err)
		}
	}
	for _, in := range snap.inserts() {
		if err = insertSQL(ctx, tx, in); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func insertSQL(ctx context.Context, tx *sql.Tx, in insert) error {
	stmt, err := tx.PrepareContext(ctx, in.statement(func(int) string { return "?" }))
	if err != nil {
		return fmt.Errorf("prepare %s: %w", in.table, err)
	}
	defer stmt.Close()
	for _, row := range in.rows {
		if _, err := stmt.ExecContext(ctx, row...); err != nil {
			return fmt.Errorf("insert %s: %w", in.table, err)
		}
	}
	return nil
}
