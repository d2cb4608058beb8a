package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBossDefinition_Columns(t *testing.T) {
	b := BossDefinition{Index: 3, Name: "ยอนฮี", Color: "#ccffcc"}

	assert.Equal(t, "Boss 3 Dmg", b.DamageColumn())
	assert.Equal(t, "Boss 3 Hits", b.HitsColumn())
	assert.Equal(t, "ยอนฮี (Avg)", b.AverageColumn())
}

func TestBossDefinition_Validate(t *testing.T) {
	assert.NoError(t, BossDefinition{Index: 1, Name: "A", Color: "#fff"}.Validate())

	cases := map[string]BossDefinition{
		"zero index":   {Index: 0, Name: "A", Color: "#ffffff"},
		"blank name":   {Index: 1, Name: "  ", Color: "#ffffff"},
		"named colour": {Index: 1, Name: "A", Color: "red"},
		"short hex":    {Index: 1, Name: "A", Color: "#ff"},
	}
	for name, b := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Error(t, b.Validate())
		})
	}
}

func TestFindBoss(t *testing.T) {
	bosses := NewBossList([2]string{"แทโอ", "#ffcccc"}, [2]string{"ไคล์", "#cce5ff"})

	b, err := FindBoss(bosses, "ไคล์")
	require.NoError(t, err)
	assert.Equal(t, 2, b.Index)

	b, err = FindBoss(bosses, " 1 ")
	require.NoError(t, err)
	assert.Equal(t, "แทโอ", b.Name)

	_, err = FindBoss(bosses, "3")
	assert.ErrorIs(t, err, ErrBossNotFound)
}

func TestCanonicalHeader_NFC(t *testing.T) {
	composed := "caf\u00e9"
	decomposed := " cafe\u0301 "
	assert.Equal(t, composed, CanonicalHeader(decomposed))
}
