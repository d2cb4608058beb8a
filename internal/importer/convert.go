package importer

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/alexanderramin/bossboard/internal/domain"
)

// Normalize turns a raw worksheet into the typed working table. Every boss
// gets a damage and a hits value on every row; columns or cells the
// worksheet lacks become 0. The first column is the member identity and is
// carried over unchanged. Columns that are not boss columns are kept as
// extras so they survive a full-table save.
func Normalize(sheet *domain.Sheet, bosses []domain.BossDefinition) (*domain.WorkingTable, error) {
	if errs := ValidateSheet(sheet, bosses); len(errs) > 0 {
		return nil, fmt.Errorf("invalid worksheet: %w", errors.Join(errs...))
	}
	layout, _ := resolveLayout(sheet.Header, bosses)

	table := domain.NewWorkingTable(sheet.Header[0], bosses)
	for _, c := range layout.extra {
		table.ExtraColumns = append(table.ExtraColumns, sheet.Header[c])
	}

	for r, raw := range sheet.Rows {
		if isBlankRow(raw) {
			continue
		}
		row := domain.MemberRow{
			Name:   sheet.Cell(r, layout.name),
			Damage: make([]int64, len(bosses)),
			Hits:   make([]int, len(bosses)),
		}
		for i := range bosses {
			if c := layout.damage[i]; c >= 0 {
				row.Damage[i], _ = ParseDamage(sheet.Cell(r, c))
			}
			if c := layout.hits[i]; c >= 0 {
				row.Hits[i], _ = ParseHits(sheet.Cell(r, c))
			}
		}
		if len(layout.extra) > 0 {
			row.Extra = make(map[string]string, len(layout.extra))
			for _, c := range layout.extra {
				row.Extra[sheet.Header[c]] = sheet.Cell(r, c)
			}
		}
		table.Rows = append(table.Rows, row)
	}
	return table, nil
}

// Denormalize renders the working table as the worksheet written back to the
// roster store: identity column, extra columns in their original order, then
// a damage and a hits column per boss.
func Denormalize(table *domain.WorkingTable) *domain.Sheet {
	header := make([]string, 0, 1+len(table.ExtraColumns)+2*len(table.Bosses))
	header = append(header, table.NameColumn)
	header = append(header, table.ExtraColumns...)
	for _, b := range table.Bosses {
		header = append(header, b.DamageColumn(), b.HitsColumn())
	}

	sheet := &domain.Sheet{Header: header, Rows: make([][]string, 0, len(table.Rows))}
	for _, r := range table.Rows {
		row := make([]string, 0, len(header))
		row = append(row, r.Name)
		for _, col := range table.ExtraColumns {
			row = append(row, r.Extra[col])
		}
		for i := range table.Bosses {
			row = append(row,
				strconv.FormatInt(r.Damage[i], 10),
				strconv.Itoa(r.Hits[i]))
		}
		sheet.Rows = append(sheet.Rows, row)
	}
	return sheet
}

// NewRosterSheet builds a worksheet with only the identity column filled,
// for bootstrapping an empty store.
func NewRosterSheet(nameColumn string, names []string) *domain.Sheet {
	sheet := &domain.Sheet{Header: []string{nameColumn}}
	for _, n := range names {
		sheet.Rows = append(sheet.Rows, []string{n})
	}
	return sheet
}
