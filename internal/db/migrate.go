package db

import (
	"context"
	"database/sql"
	"fmt"
)

// Migrate applies every schema step newer than the workbook's
// user_version, each in its own transaction, and records the new version.
func Migrate(db *sql.DB) error {
	var version int
	if err := db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		return fmt.Errorf("reading schema version: %w", err)
	}

	uow := NewSQLiteUnitOfWork(db)
	for i := version; i < len(migrations); i++ {
		step := migrations[i]
		err := uow.WithinTx(context.Background(), func(ctx context.Context, tx DBTX) error {
			for _, stmt := range step {
				if _, err := tx.ExecContext(ctx, stmt); err != nil {
					return err
				}
			}
			// PRAGMA does not take bind parameters.
			_, err := tx.ExecContext(ctx, fmt.Sprintf("PRAGMA user_version = %d", i+1))
			return err
		})
		if err != nil {
			return fmt.Errorf("migration %d: %w", i+1, err)
		}
	}
	return nil
}

// SchemaVersion is the user_version of a fully migrated workbook.
func SchemaVersion() int { return len(migrations) }

// A workbook is a set of named worksheets. Cells are stored sparsely:
// row_idx 0 is the header row and an absent cell reads as empty.
var migrations = [][]string{
	{
		`CREATE TABLE IF NOT EXISTS worksheets (
			name        TEXT PRIMARY KEY,
			col_count   INTEGER NOT NULL DEFAULT 0 CHECK(col_count >= 0),
			row_count   INTEGER NOT NULL DEFAULT 0 CHECK(row_count >= 0),
			updated_at  TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS worksheet_cells (
			worksheet   TEXT NOT NULL REFERENCES worksheets(name) ON DELETE CASCADE,
			row_idx     INTEGER NOT NULL CHECK(row_idx >= 0),
			col_idx     INTEGER NOT NULL CHECK(col_idx >= 0),
			value       TEXT NOT NULL,
			PRIMARY KEY (worksheet, row_idx, col_idx)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_worksheet_cells_sheet ON worksheet_cells(worksheet)`,
	},
}
