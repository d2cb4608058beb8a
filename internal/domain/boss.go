package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// MaxHits is the highest hit count a member can record against one boss.
const MaxHits = 14

// Column names shared by the worksheet and the summary table.
const (
	TotalHitsColumn = "Total Hits"
	avgColumnSuffix = " (Avg)"
)

var hexColorPattern = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// BossDefinition names a boss and the colour its columns are highlighted with.
// Index is the 1-based position in the configured boss list.
type BossDefinition struct {
	Index int
	Name  string
	Color string
}

// DamageColumn returns the worksheet column holding damage for this boss.
func (b BossDefinition) DamageColumn() string {
	return DamageColumn(b.Index)
}

// HitsColumn returns the worksheet column holding hits for this boss.
func (b BossDefinition) HitsColumn() string {
	return HitsColumn(b.Index)
}

// AverageColumn returns the summary column name for this boss.
func (b BossDefinition) AverageColumn() string {
	return b.Name + avgColumnSuffix
}

// Validate checks the definition is usable as a column source.
func (b BossDefinition) Validate() error {
	if b.Index < 1 {
		return fmt.Errorf("boss %q: index must be >= 1, got %d", b.Name, b.Index)
	}
	if strings.TrimSpace(b.Name) == "" {
		return fmt.Errorf("boss %d: name is required", b.Index)
	}
	if !hexColorPattern.MatchString(b.Color) {
		return fmt.Errorf("boss %q: color %q must be a hex colour like #ffcccc", b.Name, b.Color)
	}
	return nil
}

// DamageColumn returns "Boss {i} Dmg".
func DamageColumn(i int) string {
	return fmt.Sprintf("Boss %d Dmg", i)
}

// HitsColumn returns "Boss {i} Hits".
func HitsColumn(i int) string {
	return fmt.Sprintf("Boss %d Hits", i)
}

// NewBossList assigns 1-based indexes to the given name/colour pairs in order.
func NewBossList(pairs ...[2]string) []BossDefinition {
	bosses := make([]BossDefinition, 0, len(pairs))
	for i, p := range pairs {
		bosses = append(bosses, BossDefinition{Index: i + 1, Name: p[0], Color: p[1]})
	}
	return bosses
}

// FindBoss looks a boss up by name or by its 1-based index written as a
// decimal string.
func FindBoss(bosses []BossDefinition, ref string) (BossDefinition, error) {
	ref = strings.TrimSpace(ref)
	for _, b := range bosses {
		if b.Name == ref || strconv.Itoa(b.Index) == ref {
			return b, nil
		}
	}
	return BossDefinition{}, fmt.Errorf("boss %q: %w", ref, ErrBossNotFound)
}
