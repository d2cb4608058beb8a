package testutil

import (
	"testing"
	"time"

	"github.com/alexanderramin/bossboard/internal/domain"
)

// FixedNow is the clock reading used by session fixtures.
func FixedNow() time.Time {
	return time.Date(2025, 3, 1, 20, 0, 0, 0, time.UTC)
}

// Bosses returns the default four-boss configuration.
func Bosses() []domain.BossDefinition {
	return domain.NewBossList(
		[2]string{"แทโอ", "#ffcccc"},
		[2]string{"ไคล์", "#cce5ff"},
		[2]string{"ยอนฮี", "#ccffcc"},
		[2]string{"คาร์ม่า", "#e5ccff"},
	)
}

// Table options
type TableOption func(t *testing.T, tbl *domain.WorkingTable)

// WithScore sets hits and damage for a member against the boss at index
// (1-based).
func WithScore(name string, boss, hits int, damage int64) TableOption {
	return func(t *testing.T, tbl *domain.WorkingTable) {
		t.Helper()
		b := tbl.Bosses[boss-1]
		if err := tbl.SetHits(name, b, hits); err != nil {
			t.Fatalf("setting hits: %v", err)
		}
		if err := tbl.SetDamage(name, b, damage); err != nil {
			t.Fatalf("setting damage: %v", err)
		}
	}
}

// WithExtraColumn adds a non-boss column with the same value on every row.
func WithExtraColumn(col, value string) TableOption {
	return func(t *testing.T, tbl *domain.WorkingTable) {
		tbl.ExtraColumns = append(tbl.ExtraColumns, col)
		for i := range tbl.Rows {
			if tbl.Rows[i].Extra == nil {
				tbl.Rows[i].Extra = map[string]string{}
			}
			tbl.Rows[i].Extra[col] = value
		}
	}
}

// NewTestTable builds a working table with the default bosses and the given
// members, then applies opts in order.
func NewTestTable(t *testing.T, names []string, opts ...TableOption) *domain.WorkingTable {
	t.Helper()
	tbl := domain.NewWorkingTable("Name", Bosses())
	for _, n := range names {
		if err := tbl.AddMember(n); err != nil {
			t.Fatalf("adding member %q: %v", n, err)
		}
	}
	for _, opt := range opts {
		opt(t, tbl)
	}
	return tbl
}

// NewTestSheet builds a raw worksheet from a header and rows.
func NewTestSheet(header []string, rows ...[]string) *domain.Sheet {
	return &domain.Sheet{Header: header, Rows: rows}
}
