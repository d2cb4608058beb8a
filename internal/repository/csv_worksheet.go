package repository

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexanderramin/bossboard/internal/domain"
)

// CSVWorkbook stores each worksheet as <dir>/<name>.csv. Writes go to a
// temporary file that is renamed over the old one, so readers see either
// the previous or the new worksheet.
type CSVWorkbook struct {
	dir string
}

// NewCSVWorkbook creates the directory if needed.
func NewCSVWorkbook(dir string) (*CSVWorkbook, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating csv workbook directory: %w", err)
	}
	return &CSVWorkbook{dir: dir}, nil
}

func (w *CSVWorkbook) path(name string) (string, error) {
	if name == "" || strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return "", fmt.Errorf("invalid worksheet name %q", name)
	}
	return filepath.Join(w.dir, name+".csv"), nil
}

func (w *CSVWorkbook) Read(ctx context.Context, name string) (*domain.Sheet, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	p, err := w.path(name)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, worksheetNotFound(name)
		}
		return nil, fmt.Errorf("opening worksheet %q: %w", name, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return &domain.Sheet{}, nil
		}
		return nil, fmt.Errorf("reading header of %q: %w", name, err)
	}
	header[0] = strings.TrimPrefix(header[0], "\ufeff")

	sheet := &domain.Sheet{Header: header}
	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading worksheet %q: %w", name, err)
		}
		sheet.Rows = append(sheet.Rows, rec)
	}
	return sheet, nil
}

func (w *CSVWorkbook) Write(ctx context.Context, name string, sheet *domain.Sheet) error {
	if err := validateWrite(name, sheet); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	p, err := w.path(name)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(w.dir, "."+name+"-*.csv")
	if err != nil {
		return fmt.Errorf("creating temp file for %q: %w", name, err)
	}
	committed := false
	defer func() {
		if !committed {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	cw := csv.NewWriter(tmp)
	if err := cw.Write(sheet.Header); err != nil {
		return fmt.Errorf("writing header of %q: %w", name, err)
	}
	if err := cw.WriteAll(sheet.Rows); err != nil {
		return fmt.Errorf("writing rows of %q: %w", name, err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("syncing %q: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing %q: %w", name, err)
	}
	if err := os.Rename(tmp.Name(), p); err != nil {
		return fmt.Errorf("replacing worksheet %q: %w", name, err)
	}
	committed = true
	return nil
}
