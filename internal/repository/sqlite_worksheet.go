package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/bossboard/internal/db"
	"github.com/alexanderramin/bossboard/internal/domain"
)

// SQLiteWorksheetRepo reads and writes worksheets through a DBTX. Write
// issues several statements, so callers that need it atomic run it inside a
// transaction (see SQLiteWorkbook).
type SQLiteWorksheetRepo struct {
	db db.DBTX
}

// NewSQLiteWorksheetRepo creates a new SQLiteWorksheetRepo.
func NewSQLiteWorksheetRepo(conn db.DBTX) *SQLiteWorksheetRepo {
	return &SQLiteWorksheetRepo{db: conn}
}

func (r *SQLiteWorksheetRepo) Read(ctx context.Context, name string) (*domain.Sheet, error) {
	var cols, rows int
	err := r.db.QueryRowContext(ctx,
		`SELECT col_count, row_count FROM worksheets WHERE name = ?`, name).Scan(&cols, &rows)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, worksheetNotFound(name)
		}
		return nil, fmt.Errorf("reading worksheet %q: %w", name, err)
	}

	rs, err := r.db.QueryContext(ctx,
		`SELECT row_idx, col_idx, value FROM worksheet_cells WHERE worksheet = ? ORDER BY row_idx, col_idx`, name)
	if err != nil {
		return nil, fmt.Errorf("querying cells of %q: %w", name, err)
	}
	defer rs.Close()

	var cells []cell
	for rs.Next() {
		var c cell
		if err := rs.Scan(&c.Row, &c.Col, &c.Value); err != nil {
			return nil, fmt.Errorf("scanning cell of %q: %w", name, err)
		}
		cells = append(cells, c)
	}
	if err := rs.Err(); err != nil {
		return nil, fmt.Errorf("iterating cells of %q: %w", name, err)
	}
	return cellsToSheet(cells, cols, rows)
}

// Write replaces the named worksheet with sheet.
func (r *SQLiteWorksheetRepo) Write(ctx context.Context, name string, sheet *domain.Sheet) error {
	if err := validateWrite(name, sheet); err != nil {
		return err
	}
	cells, cols, rows := sheetToCells(sheet)

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO worksheets (name, col_count, row_count, updated_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET col_count = excluded.col_count,
		 row_count = excluded.row_count, updated_at = excluded.updated_at`,
		name, cols, rows, nowUTC())
	if err != nil {
		return fmt.Errorf("upserting worksheet %q: %w", name, err)
	}
	if _, err := r.db.ExecContext(ctx, `DELETE FROM worksheet_cells WHERE worksheet = ?`, name); err != nil {
		return fmt.Errorf("clearing worksheet %q: %w", name, err)
	}
	for _, c := range cells {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO worksheet_cells (worksheet, row_idx, col_idx, value) VALUES (?, ?, ?, ?)`,
			name, c.Row, c.Col, c.Value)
		if err != nil {
			return fmt.Errorf("writing cell (%d,%d) of %q: %w", c.Row, c.Col, name, err)
		}
	}
	return nil
}

// SQLiteWorkbook is the SQLite roster store. Each Write runs in its own
// transaction so a failed save leaves the previous worksheet intact.
type SQLiteWorkbook struct {
	db  *sql.DB
	uow db.UnitOfWork
}

// NewSQLiteWorkbook creates a workbook over an opened database.
func NewSQLiteWorkbook(database *sql.DB, uow db.UnitOfWork) *SQLiteWorkbook {
	return &SQLiteWorkbook{db: database, uow: uow}
}

func (w *SQLiteWorkbook) Read(ctx context.Context, name string) (*domain.Sheet, error) {
	return NewSQLiteWorksheetRepo(w.db).Read(ctx, name)
}

func (w *SQLiteWorkbook) Write(ctx context.Context, name string, sheet *domain.Sheet) error {
	return w.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return NewSQLiteWorksheetRepo(tx).Write(ctx, name, sheet)
	})
}

// Close closes the underlying database.
func (w *SQLiteWorkbook) Close() error {
	return w.db.Close()
}
