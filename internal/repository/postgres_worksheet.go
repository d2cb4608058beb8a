package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/bossboard/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// pgxConn is the part of *pgxpool.Pool the workbook needs.
type pgxConn interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

var postgresMigrations = []string{
	`CREATE TABLE IF NOT EXISTS worksheets (
		name        TEXT PRIMARY KEY,
		col_count   INTEGER NOT NULL DEFAULT 0 CHECK(col_count >= 0),
		row_count   INTEGER NOT NULL DEFAULT 0 CHECK(row_count >= 0),
		updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS worksheet_cells (
		worksheet   TEXT NOT NULL REFERENCES worksheets(name) ON DELETE CASCADE,
		row_idx     INTEGER NOT NULL CHECK(row_idx >= 0),
		col_idx     INTEGER NOT NULL CHECK(col_idx >= 0),
		value       TEXT NOT NULL,
		PRIMARY KEY (worksheet, row_idx, col_idx)
	)`,
}

// PostgresWorkbook is the PostgreSQL roster store. Each Write runs in one
// transaction and bulk-loads cells with COPY.
type PostgresWorkbook struct {
	conn  pgxConn
	close func()
}

// NewPostgresWorkbook connects, pings and creates the workbook tables.
func NewPostgresWorkbook(ctx context.Context, connString string) (*PostgresWorkbook, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	w := &PostgresWorkbook{conn: pool, close: pool.Close}
	if err := w.migrate(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return w, nil
}

func (w *PostgresWorkbook) migrate(ctx context.Context) error {
	for i, stmt := range postgresMigrations {
		if _, err := w.conn.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

func (w *PostgresWorkbook) Read(ctx context.Context, name string) (*domain.Sheet, error) {
	var cols, rows int
	err := w.conn.QueryRow(ctx,
		`SELECT col_count, row_count FROM worksheets WHERE name = $1`, name).Scan(&cols, &rows)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, worksheetNotFound(name)
		}
		return nil, fmt.Errorf("get worksheet %q: %w", name, err)
	}

	rs, err := w.conn.Query(ctx,
		`SELECT row_idx, col_idx, value FROM worksheet_cells WHERE worksheet = $1 ORDER BY row_idx, col_idx`, name)
	if err != nil {
		return nil, fmt.Errorf("query cells of %q: %w", name, err)
	}
	defer rs.Close()

	var cells []cell
	for rs.Next() {
		var c cell
		if err := rs.Scan(&c.Row, &c.Col, &c.Value); err != nil {
			return nil, fmt.Errorf("scan cell of %q: %w", name, err)
		}
		cells = append(cells, c)
	}
	if err := rs.Err(); err != nil {
		return nil, fmt.Errorf("iterate cells of %q: %w", name, err)
	}
	return cellsToSheet(cells, cols, rows)
}

func (w *PostgresWorkbook) Write(ctx context.Context, name string, sheet *domain.Sheet) error {
	if err := validateWrite(name, sheet); err != nil {
		return err
	}
	cells, cols, rows := sheetToCells(sheet)

	tx, err := w.conn.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	_, err = tx.Exec(ctx,
		`INSERT INTO worksheets (name, col_count, row_count, updated_at) VALUES ($1, $2, $3, now())
		 ON CONFLICT (name) DO UPDATE SET col_count = EXCLUDED.col_count,
		 row_count = EXCLUDED.row_count, updated_at = EXCLUDED.updated_at`,
		name, cols, rows)
	if err != nil {
		return fmt.Errorf("upsert worksheet %q: %w", name, err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM worksheet_cells WHERE worksheet = $1`, name); err != nil {
		return fmt.Errorf("clear worksheet %q: %w", name, err)
	}

	copyRows := make([][]any, len(cells))
	for i, c := range cells {
		copyRows[i] = []any{name, c.Row, c.Col, c.Value}
	}
	_, err = tx.CopyFrom(ctx,
		pgx.Identifier{"worksheet_cells"},
		[]string{"worksheet", "row_idx", "col_idx", "value"},
		pgx.CopyFromRows(copyRows))
	if err != nil {
		return fmt.Errorf("copy cells of %q: %w", name, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit worksheet %q: %w", name, err)
	}
	return nil
}

// Close releases the connection pool.
func (w *PostgresWorkbook) Close() error {
	if w.close != nil {
		w.close()
	}
	return nil
}
