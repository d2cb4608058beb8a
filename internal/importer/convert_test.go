package importer

import (
	"testing"

	"github.com/alexanderramin/bossboard/internal/domain"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fourBosses() []domain.BossDefinition {
	return domain.NewBossList(
		[2]string{"แทโอ", "#ffcccc"},
		[2]string{"ไคล์", "#cce5ff"},
		[2]string{"ยอนฮี", "#ccffcc"},
		[2]string{"คาร์ม่า", "#e5ccff"},
	)
}

func TestNormalize_MissingBossColumnsDefaultToZero(t *testing.T) {
	sheet := &domain.Sheet{
		Header: []string{"ชื่อ"},
		Rows:   [][]string{{"A"}, {"B"}},
	}

	table, err := Normalize(sheet, fourBosses())
	require.NoError(t, err)

	assert.Equal(t, "ชื่อ", table.NameColumn)
	assert.Empty(t, table.ExtraColumns)
	require.Len(t, table.Rows, 2)
	for _, r := range table.Rows {
		assert.Equal(t, []int64{0, 0, 0, 0}, r.Damage)
		assert.Equal(t, []int{0, 0, 0, 0}, r.Hits)
	}
}

func TestNormalize_EmptyCellsDefaultToZero(t *testing.T) {
	sheet := &domain.Sheet{
		Header: []string{"Name", "Boss 1 Dmg", "Boss 1 Hits", "Boss 2 Hits"},
		Rows: [][]string{
			{"A", "", "3", ""},
			{"B", "120"}, // short row
		},
	}

	table, err := Normalize(sheet, fourBosses())
	require.NoError(t, err)

	assert.Equal(t, []int64{0, 0, 0, 0}, table.Rows[0].Damage)
	assert.Equal(t, []int{3, 0, 0, 0}, table.Rows[0].Hits)
	assert.Equal(t, []int64{120, 0, 0, 0}, table.Rows[1].Damage)
	assert.Equal(t, []int{0, 0, 0, 0}, table.Rows[1].Hits)
}

func TestNormalize_SpreadsheetNumberForms(t *testing.T) {
	sheet := &domain.Sheet{
		Header: []string{"Name", "Boss 1 Dmg", "Boss 1 Hits"},
		Rows: [][]string{
			{"A", "1,250", "2.0"},
			{"B", " 50.0 ", " 14 "},
		},
	}

	table, err := Normalize(sheet, fourBosses())
	require.NoError(t, err)

	assert.Equal(t, int64(1250), table.Rows[0].Damage[0])
	assert.Equal(t, 2, table.Rows[0].Hits[0])
	assert.Equal(t, int64(50), table.Rows[1].Damage[0])
	assert.Equal(t, 14, table.Rows[1].Hits[0])
}

func TestNormalize_KeepsExtraColumnsAndIdentity(t *testing.T) {
	sheet := &domain.Sheet{
		Header: []string{"Member", "Role", "Boss 2 Dmg", "Note"},
		Rows: [][]string{
			{"A", "Tank", "80", "late"},
		},
	}

	table, err := Normalize(sheet, fourBosses())
	require.NoError(t, err)

	assert.Equal(t, "Member", table.NameColumn)
	assert.Equal(t, []string{"Role", "Note"}, table.ExtraColumns)
	assert.Equal(t, map[string]string{"Role": "Tank", "Note": "late"}, table.Rows[0].Extra)
	assert.Equal(t, int64(80), table.Rows[0].Damage[1])
}

func TestNormalize_MatchesHeadersAfterTrim(t *testing.T) {
	sheet := &domain.Sheet{
		Header: []string{"Name", "  Boss 1 Hits "},
		Rows:   [][]string{{"A", "4"}},
	}

	table, err := Normalize(sheet, fourBosses())
	require.NoError(t, err)

	assert.Empty(t, table.ExtraColumns)
	assert.Equal(t, 4, table.Rows[0].Hits[0])
}

func TestNormalize_SkipsBlankRows(t *testing.T) {
	sheet := &domain.Sheet{
		Header: []string{"Name", "Boss 1 Hits"},
		Rows: [][]string{
			{"A", "1"},
			{"", " "},
			{},
			{"B", "2"},
		},
	}

	table, err := Normalize(sheet, fourBosses())
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, table.Names())
}

func TestNormalize_IsIdempotent(t *testing.T) {
	sheet := &domain.Sheet{
		Header: []string{"Name", "Role", "Boss 3 Hits", "Boss 1 Dmg"},
		Rows: [][]string{
			{"A", "Tank", "3", "300"},
			{"B", "", "", ""},
		},
	}

	first, err := Normalize(sheet, fourBosses())
	require.NoError(t, err)

	written := Denormalize(first)
	second, err := Normalize(written, fourBosses())
	require.NoError(t, err)

	assert.True(t, first.Equal(second))
	if diff := cmp.Diff(written, Denormalize(second)); diff != "" {
		t.Errorf("worksheet changed on second pass (-first +second):\n%s", diff)
	}
	assert.Len(t, written.Header, 2+2*len(fourBosses()), "no duplicate columns")
}

func TestNormalize_NoHeader(t *testing.T) {
	_, err := Normalize(&domain.Sheet{}, fourBosses())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no header row")

	_, err = Normalize(nil, fourBosses())
	require.Error(t, err)
}

func TestNormalize_KeepsNameAsWritten(t *testing.T) {
	sheet := &domain.Sheet{
		Header: []string{"Name", "Boss 1 Hits"},
		Rows:   [][]string{{" A ", "2"}},
	}

	table, err := Normalize(sheet, fourBosses())
	require.NoError(t, err)

	assert.Equal(t, " A ", table.Rows[0].Name)
	assert.Equal(t, " A ", Denormalize(table).Rows[0][0])
	idx, ok := table.Find("A")
	require.True(t, ok)
	assert.Equal(t, 0, idx)
}

func TestNormalize_NamesDifferingOnlyBySpacesAreDuplicates(t *testing.T) {
	sheet := &domain.Sheet{
		Header: []string{"Name"},
		Rows:   [][]string{{"A"}, {"A "}},
	}

	_, err := Normalize(sheet, fourBosses())
	require.ErrorIs(t, err, domain.ErrDuplicateMember)
}

func TestNormalize_CollectsAllProblems(t *testing.T) {
	sheet := &domain.Sheet{
		Header: []string{"Name", "Boss 1 Dmg", "Boss 1 Hits"},
		Rows: [][]string{
			{"A", "-5", "15"},
			{"", "10", "1"},
			{"A", "abc", "1.5"},
		},
	}

	_, err := Normalize(sheet, fourBosses())
	require.Error(t, err)

	assert.ErrorIs(t, err, domain.ErrInvalidDamage)
	assert.ErrorIs(t, err, domain.ErrInvalidHits)
	assert.ErrorIs(t, err, domain.ErrDuplicateMember)
	msg := err.Error()
	assert.Contains(t, msg, `row 2, column "Boss 1 Dmg"`)
	assert.Contains(t, msg, `row 2, column "Boss 1 Hits"`)
	assert.Contains(t, msg, "row 3: member name is empty")
	assert.Contains(t, msg, `row 4: member "A" already on row 2`)
	assert.Contains(t, msg, `"1.5" is not a whole number`)
}

func TestNormalize_DuplicateHeaders(t *testing.T) {
	sheet := &domain.Sheet{
		Header: []string{"Name", "Boss 1 Hits", "Boss 1 Hits "},
	}

	_, err := Normalize(sheet, fourBosses())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "appears in columns 2 and 3")
}

func TestDenormalize_ColumnOrder(t *testing.T) {
	table := domain.NewWorkingTable("Name", fourBosses()[:2])
	table.ExtraColumns = []string{"Role"}
	require.NoError(t, table.AddMember("A"))
	require.NoError(t, table.SetHits("A", table.Bosses[0], 2))
	require.NoError(t, table.SetDamage("A", table.Bosses[0], 50))

	sheet := Denormalize(table)

	assert.Equal(t, []string{"Name", "Role", "Boss 1 Dmg", "Boss 1 Hits", "Boss 2 Dmg", "Boss 2 Hits"}, sheet.Header)
	assert.Equal(t, [][]string{{"A", "", "50", "2", "0", "0"}}, sheet.Rows)
}

func TestNewRosterSheet(t *testing.T) {
	sheet := NewRosterSheet("Name", []string{"A", "B"})

	table, err := Normalize(sheet, fourBosses())
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, table.Names())
}
