package app

import (
	"fmt"
	"time"

	"github.com/alexanderramin/bossboard/internal/domain"
	"github.com/alexanderramin/bossboard/internal/summary"
	"github.com/google/uuid"
)

// Session owns the working table for one dashboard run. Interaction
// handlers receive it explicitly; nothing else holds the table.
type Session struct {
	ID        string
	Worksheet string
	LoadedAt  time.Time
	SavedAt   *time.Time

	table *domain.WorkingTable
	dirty bool
}

// NewSession wraps a freshly normalized table.
func NewSession(worksheet string, table *domain.WorkingTable, now time.Time) *Session {
	return &Session{
		ID:        uuid.NewString(),
		Worksheet: worksheet,
		LoadedAt:  now,
		table:     table,
	}
}

// Table returns the live working table. Callers must not keep it across
// a Replace.
func (s *Session) Table() *domain.WorkingTable { return s.table }

// Snapshot returns a deep copy of the working table.
func (s *Session) Snapshot() *domain.WorkingTable { return s.table.Clone() }

// Bosses returns the configured boss list the table was normalized with.
func (s *Session) Bosses() []domain.BossDefinition { return s.table.Bosses }

// Dirty reports unsaved edits.
func (s *Session) Dirty() bool { return s.dirty }

// ApplyEdit merges one edited row of a boss tab into the table.
func (s *Session) ApplyEdit(boss domain.BossDefinition, edit domain.CellEdit) error {
	return s.ApplyEdits(boss, []domain.CellEdit{edit})
}

// ApplyEdits merges a boss tab's edited rows. Rows whose values did not
// change leave the session clean.
func (s *Session) ApplyEdits(boss domain.BossDefinition, edits []domain.CellEdit) error {
	changed, err := s.table.ApplyEdits(boss, edits)
	if err != nil {
		return err
	}
	if changed {
		s.dirty = true
	}
	return nil
}

// Summary recomputes the overview from the current table.
func (s *Session) Summary() []domain.SummaryRow {
	return summary.Summarize(s.table)
}

// MarkSaved records a successful full-table save.
func (s *Session) MarkSaved(at time.Time) {
	s.SavedAt = &at
	s.dirty = false
}

// Replace swaps in a freshly loaded table, discarding unsaved edits.
func (s *Session) Replace(table *domain.WorkingTable, now time.Time) error {
	if table == nil {
		return fmt.Errorf("replace session %s: nil table", s.ID)
	}
	s.table = table
	s.LoadedAt = now
	s.dirty = false
	return nil
}
