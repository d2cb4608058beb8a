package importer

import (
	"fmt"

	"github.com/alexanderramin/bossboard/internal/domain"
)

// columnLayout maps the columns of a raw worksheet onto the working table.
// Boss column positions are -1 when the worksheet does not have them yet.
type columnLayout struct {
	name   int
	damage []int
	hits   []int
	extra  []int
}

// resolveLayout locates the identity column (always the first), the boss
// columns and every other column in header order.
func resolveLayout(header []string, bosses []domain.BossDefinition) (*columnLayout, []error) {
	var errs []error

	seen := make(map[string]int, len(header))
	for i, h := range header {
		key := domain.CanonicalHeader(h)
		if prev, ok := seen[key]; ok {
			errs = append(errs, fmt.Errorf("header %q appears in columns %d and %d", h, prev+1, i+1))
			continue
		}
		seen[key] = i
	}

	l := &columnLayout{
		name:   0,
		damage: make([]int, len(bosses)),
		hits:   make([]int, len(bosses)),
	}
	bossCols := make(map[int]bool)
	for i, b := range bosses {
		l.damage[i] = lookupColumn(seen, b.DamageColumn())
		l.hits[i] = lookupColumn(seen, b.HitsColumn())
		if l.damage[i] == 0 || l.hits[i] == 0 {
			errs = append(errs, fmt.Errorf("identity column %q cannot double as a boss column", header[0]))
		}
		bossCols[l.damage[i]] = true
		bossCols[l.hits[i]] = true
	}
	for i := 1; i < len(header); i++ {
		if !bossCols[i] {
			l.extra = append(l.extra, i)
		}
	}
	return l, errs
}

func lookupColumn(seen map[string]int, name string) int {
	if i, ok := seen[name]; ok {
		return i
	}
	return -1
}
