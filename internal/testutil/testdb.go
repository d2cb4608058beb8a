package testutil

import (
	"database/sql"
	"testing"

	"github.com/alexanderramin/bossboard/internal/db"
)

// NewTestDB opens a migrated in-memory workbook that is closed when the
// test ends.
func NewTestDB(tb testing.TB) *sql.DB {
	tb.Helper()
	database, err := db.OpenWorkbook(db.MemoryPath)
	if err != nil {
		tb.Fatalf("opening test workbook: %v", err)
	}
	tb.Cleanup(func() { _ = database.Close() })
	return database
}

// NewTestUoW returns the production unit of work over a test workbook.
func NewTestUoW(database *sql.DB) db.UnitOfWork {
	return db.NewSQLiteUnitOfWork(database)
}

// CellCount returns how many non-empty cells are stored for a worksheet.
func CellCount(tb testing.TB, database *sql.DB, worksheet string) int {
	tb.Helper()
	var n int
	err := database.QueryRow(`SELECT COUNT(*) FROM worksheet_cells WHERE worksheet = ?`, worksheet).Scan(&n)
	if err != nil {
		tb.Fatalf("counting cells of %s: %v", worksheet, err)
	}
	return n
}
