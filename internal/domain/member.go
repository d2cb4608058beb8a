package domain

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// MemberRow is one guild member's per-boss record. Damage[i] and Hits[i]
// belong to the boss with Index i+1.
type MemberRow struct {
	Name   string
	Damage []int64
	Hits   []int

	// Extra holds worksheet columns that are not boss columns, keyed by
	// header name, so a full overwrite writes them back untouched.
	Extra map[string]string
}

// CellEdit is an edited hits/damage pair for one member on one boss tab.
type CellEdit struct {
	Name   string
	Hits   int
	Damage int64
}

// WorkingTable is the normalized, editable roster. Every row carries exactly
// one damage and one hits value per boss.
type WorkingTable struct {
	NameColumn   string
	ExtraColumns []string
	Bosses       []BossDefinition
	Rows         []MemberRow
}

// NewWorkingTable builds an empty table for the given identity column and
// bosses.
func NewWorkingTable(nameColumn string, bosses []BossDefinition) *WorkingTable {
	return &WorkingTable{
		NameColumn: nameColumn,
		Bosses:     slices.Clone(bosses),
	}
}

// AddMember appends a member with zeroed boss values.
func (t *WorkingTable) AddMember(name string) error {
	if name == "" {
		return fmt.Errorf("member name is required")
	}
	if _, ok := t.Find(name); ok {
		return fmt.Errorf("member %q: %w", name, ErrDuplicateMember)
	}
	row := MemberRow{
		Name:   name,
		Damage: make([]int64, len(t.Bosses)),
		Hits:   make([]int, len(t.Bosses)),
	}
	if len(t.ExtraColumns) > 0 {
		row.Extra = make(map[string]string, len(t.ExtraColumns))
		for _, c := range t.ExtraColumns {
			row.Extra[c] = ""
		}
	}
	t.Rows = append(t.Rows, row)
	return nil
}

// Find returns the row position of the named member. Surrounding spaces in
// either name are ignored.
func (t *WorkingTable) Find(name string) (int, bool) {
	for i := range t.Rows {
		if strings.TrimSpace(t.Rows[i].Name) == strings.TrimSpace(name) {
			return i, true
		}
	}
	return -1, false
}

// Names returns member names in row order.
func (t *WorkingTable) Names() []string {
	names := make([]string, len(t.Rows))
	for i, r := range t.Rows {
		names[i] = r.Name
	}
	return names
}

// SetHits records hits for a member against a boss.
func (t *WorkingTable) SetHits(name string, boss BossDefinition, hits int) error {
	if err := ValidateHits(hits); err != nil {
		return err
	}
	row, col, err := t.locate(name, boss)
	if err != nil {
		return err
	}
	t.Rows[row].Hits[col] = hits
	return nil
}

// SetDamage records damage for a member against a boss.
func (t *WorkingTable) SetDamage(name string, boss BossDefinition, damage int64) error {
	if err := ValidateDamage(damage); err != nil {
		return err
	}
	row, col, err := t.locate(name, boss)
	if err != nil {
		return err
	}
	t.Rows[row].Damage[col] = damage
	return nil
}

// ApplyEdits merges a boss tab's edited rows back by member name. All edits
// are validated before any is applied, so a bad edit leaves the table as it
// was. It reports whether any value changed.
func (t *WorkingTable) ApplyEdits(boss BossDefinition, edits []CellEdit) (bool, error) {
	col, err := t.bossColumn(boss)
	if err != nil {
		return false, err
	}
	rows := make([]int, len(edits))
	for i, e := range edits {
		idx, ok := t.Find(e.Name)
		if !ok {
			return false, fmt.Errorf("member %q: %w", e.Name, ErrMemberNotFound)
		}
		if err := ValidateHits(e.Hits); err != nil {
			return false, fmt.Errorf("member %q: %w", e.Name, err)
		}
		if err := ValidateDamage(e.Damage); err != nil {
			return false, fmt.Errorf("member %q: %w", e.Name, err)
		}
		rows[i] = idx
	}
	changed := false
	for i, e := range edits {
		row := &t.Rows[rows[i]]
		if row.Hits[col] != e.Hits || row.Damage[col] != e.Damage {
			changed = true
		}
		row.Hits[col] = e.Hits
		row.Damage[col] = e.Damage
	}
	return changed, nil
}

// Clone returns a deep copy.
func (t *WorkingTable) Clone() *WorkingTable {
	out := &WorkingTable{
		NameColumn:   t.NameColumn,
		ExtraColumns: slices.Clone(t.ExtraColumns),
		Bosses:       slices.Clone(t.Bosses),
		Rows:         make([]MemberRow, len(t.Rows)),
	}
	for i, r := range t.Rows {
		out.Rows[i] = MemberRow{
			Name:   r.Name,
			Damage: slices.Clone(r.Damage),
			Hits:   slices.Clone(r.Hits),
			Extra:  maps.Clone(r.Extra),
		}
	}
	return out
}

// Equal reports whether two tables hold the same columns and values.
func (t *WorkingTable) Equal(o *WorkingTable) bool {
	if t == nil || o == nil {
		return t == o
	}
	if t.NameColumn != o.NameColumn ||
		!slices.Equal(t.ExtraColumns, o.ExtraColumns) ||
		!slices.Equal(t.Bosses, o.Bosses) ||
		len(t.Rows) != len(o.Rows) {
		return false
	}
	for i := range t.Rows {
		a, b := t.Rows[i], o.Rows[i]
		if a.Name != b.Name ||
			!slices.Equal(a.Damage, b.Damage) ||
			!slices.Equal(a.Hits, b.Hits) ||
			!extraEqual(a.Extra, b.Extra) {
			return false
		}
	}
	return true
}

func (t *WorkingTable) locate(name string, boss BossDefinition) (int, int, error) {
	col, err := t.bossColumn(boss)
	if err != nil {
		return 0, 0, err
	}
	row, ok := t.Find(name)
	if !ok {
		return 0, 0, fmt.Errorf("member %q: %w", name, ErrMemberNotFound)
	}
	return row, col, nil
}

func (t *WorkingTable) bossColumn(boss BossDefinition) (int, error) {
	col := boss.Index - 1
	if col < 0 || col >= len(t.Bosses) || t.Bosses[col].Name != boss.Name {
		return 0, fmt.Errorf("boss %q: %w", boss.Name, ErrBossNotFound)
	}
	return col, nil
}

// extraEqual treats nil and empty maps as equal.
func extraEqual(a, b map[string]string) bool {
	if len(a) == 0 && len(b) == 0 {
		return true
	}
	return maps.Equal(a, b)
}

// ValidateHits checks hits lie in [0, MaxHits].
func ValidateHits(hits int) error {
	if hits < 0 || hits > MaxHits {
		return fmt.Errorf("%w: %d is outside 0-%d", ErrInvalidHits, hits, MaxHits)
	}
	return nil
}

// ValidateDamage checks damage is non-negative.
func ValidateDamage(damage int64) error {
	if damage < 0 {
		return fmt.Errorf("%w: %d is negative", ErrInvalidDamage, damage)
	}
	return nil
}
