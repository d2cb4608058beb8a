package repository

import (
	"fmt"
	"time"

	"github.com/alexanderramin/bossboard/internal/domain"
)

// cell is one stored, non-empty worksheet cell. Row 0 is the header.
type cell struct {
	Row   int
	Col   int
	Value string
}

// sheetToCells flattens a worksheet into its non-empty cells and reports
// the grid size to record alongside them.
func sheetToCells(sheet *domain.Sheet) (cells []cell, cols, rows int) {
	cols = len(sheet.Header)
	for c, v := range sheet.Header {
		if v != "" {
			cells = append(cells, cell{Row: 0, Col: c, Value: v})
		}
	}
	for r, row := range sheet.Rows {
		if len(row) > cols {
			cols = len(row)
		}
		for c, v := range row {
			if v != "" {
				cells = append(cells, cell{Row: r + 1, Col: c, Value: v})
			}
		}
	}
	return cells, cols, len(sheet.Rows)
}

// cellsToSheet rebuilds a rectangular worksheet from sparse cells.
func cellsToSheet(cells []cell, cols, rows int) (*domain.Sheet, error) {
	sheet := &domain.Sheet{
		Header: make([]string, cols),
		Rows:   make([][]string, rows),
	}
	for r := range sheet.Rows {
		sheet.Rows[r] = make([]string, cols)
	}
	for _, c := range cells {
		if c.Col < 0 || c.Col >= cols || c.Row < 0 || c.Row > rows {
			return nil, fmt.Errorf("cell (%d,%d) outside %dx%d worksheet", c.Row, c.Col, rows, cols)
		}
		if c.Row == 0 {
			sheet.Header[c.Col] = c.Value
			continue
		}
		sheet.Rows[c.Row-1][c.Col] = c.Value
	}
	return sheet, nil
}

func validateWrite(name string, sheet *domain.Sheet) error {
	if name == "" {
		return fmt.Errorf("worksheet name is required")
	}
	if sheet == nil || len(sheet.Header) == 0 {
		return fmt.Errorf("worksheet %q: refusing to write a sheet without a header row", name)
	}
	return nil
}

func worksheetNotFound(name string) error {
	return fmt.Errorf("worksheet %q: %w", name, domain.ErrWorksheetNotFound)
}

// nowUTC returns the current UTC time formatted as RFC3339.
func nowUTC() string {
	return time.Now().UTC().Format(time.RFC3339)
}
