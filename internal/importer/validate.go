package importer

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/alexanderramin/bossboard/internal/domain"
)

// ParseDamage reads a damage cell. Empty cells are 0. Spreadsheets hand back
// whole numbers as "50.0" or "1,250", so both forms are accepted; anything
// fractional, negative or non-numeric is rejected.
func ParseDamage(s string) (int64, error) {
	v, err := parseWholeNumber(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", domain.ErrInvalidDamage, err)
	}
	if err := domain.ValidateDamage(v); err != nil {
		return 0, err
	}
	return v, nil
}

// ParseHits reads a hits cell. Empty cells are 0; values must lie in
// [0, domain.MaxHits].
func ParseHits(s string) (int, error) {
	v, err := parseWholeNumber(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", domain.ErrInvalidHits, err)
	}
	if err := domain.ValidateHits(int(v)); err != nil {
		return 0, err
	}
	return int(v), nil
}

func parseWholeNumber(s string) (int64, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return 0, nil
	}
	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		return v, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%q is not a number", s)
	}
	if f != math.Trunc(f) {
		return 0, fmt.Errorf("%q is not a whole number", s)
	}
	if f >= math.MaxInt64 || f < math.MinInt64 {
		return 0, fmt.Errorf("%q is out of range", s)
	}
	return int64(f), nil
}

// ValidateSheet checks a raw worksheet can be normalized against the given
// bosses. It returns every problem found rather than stopping at the first.
func ValidateSheet(sheet *domain.Sheet, bosses []domain.BossDefinition) []error {
	if sheet == nil || len(sheet.Header) == 0 {
		return []error{fmt.Errorf("worksheet has no header row")}
	}
	layout, errs := resolveLayout(sheet.Header, bosses)
	if len(errs) > 0 {
		return errs
	}

	names := make(map[string]int)
	for r, row := range sheet.Rows {
		if isBlankRow(row) {
			continue
		}
		line := r + 2 // 1-based, after the header row

		name := strings.TrimSpace(sheet.Cell(r, layout.name))
		switch prev, dup := names[name]; {
		case name == "":
			errs = append(errs, fmt.Errorf("row %d: member name is empty", line))
		case dup:
			errs = append(errs, fmt.Errorf("row %d: member %q already on row %d: %w", line, name, prev, domain.ErrDuplicateMember))
		default:
			names[name] = line
		}

		for i, b := range bosses {
			if c := layout.damage[i]; c >= 0 {
				if _, err := ParseDamage(sheet.Cell(r, c)); err != nil {
					errs = append(errs, fmt.Errorf("row %d, column %q: %w", line, b.DamageColumn(), err))
				}
			}
			if c := layout.hits[i]; c >= 0 {
				if _, err := ParseHits(sheet.Cell(r, c)); err != nil {
					errs = append(errs, fmt.Errorf("row %d, column %q: %w", line, b.HitsColumn(), err))
				}
			}
		}
	}
	return errs
}

func isBlankRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
