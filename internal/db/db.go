package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"
)

// MemoryPath opens a private in-memory workbook.
const MemoryPath = ":memory:"

// Connection settings applied to every workbook. busy_timeout lets a
// second bossboard process wait out a save instead of failing at once.
var pragmas = []string{
	"PRAGMA journal_mode = WAL",
	"PRAGMA foreign_keys = ON",
	"PRAGMA busy_timeout = 5000",
}

// OpenWorkbook opens (creating if needed) the SQLite workbook at path and
// brings its schema up to date.
func OpenWorkbook(path string) (*sql.DB, error) {
	memory := isMemory(path)
	if !memory {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("creating workbook directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening workbook %s: %w", path, err)
	}
	// Each connection to an in-memory database sees a different database.
	if memory {
		db.SetMaxOpenConns(1)
	}

	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, fmt.Errorf("%s: %w", p, err)
		}
	}
	if err := Migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrating workbook: %w", err)
	}
	return db, nil
}

func isMemory(path string) bool {
	return path == "" || path == MemoryPath || strings.Contains(path, "mode=memory")
}
