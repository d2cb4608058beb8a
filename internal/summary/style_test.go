package summary

import (
	"testing"

	"github.com/alexanderramin/bossboard/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestStyleMap_BossAndTotalColumns(t *testing.T) {
	bosses := fourBosses()
	cols := Columns("Name", bosses)

	styles := StyleMap(cols, bosses)

	_, styled := styles["Name"]
	assert.False(t, styled, "identity column has no style")
	assert.Equal(t, domain.ColumnStyle{Background: "#ffcccc", Foreground: "#000000"}, styles["แทโอ (Avg)"])
	assert.Equal(t, domain.ColumnStyle{Background: "#e5ccff", Foreground: "#000000"}, styles["คาร์ม่า (Avg)"])
	assert.Equal(t, domain.ColumnStyle{Background: TotalHitsBackground, Bold: true}, styles[domain.TotalHitsColumn])
	assert.Len(t, styles, len(bosses)+1)
}

func TestStyleMap_IgnoresValues(t *testing.T) {
	bosses := fourBosses()
	a := tableWith(t, "A")
	b := tableWith(t, "A")
	b.Rows[0].Damage = []int64{1, 2, 3, 4}
	b.Rows[0].Hits = []int{1, 1, 1, 1}

	colsA := Columns(a.NameColumn, a.Bosses)
	colsB := Columns(b.NameColumn, b.Bosses)

	assert.Equal(t, StyleMap(colsA, bosses), StyleMap(colsB, bosses))
}

func TestStyleMap_MatchesNameInsideColumn(t *testing.T) {
	bosses := fourBosses()

	styles := StyleMap([]string{"ไคล์ (Dmg)", "misc"}, bosses)

	assert.Equal(t, "#cce5ff", styles["ไคล์ (Dmg)"].Background)
	assert.NotContains(t, styles, "misc")
}
