package service

import (
	"context"
	"errors"
	"testing"

	"github.com/alexanderramin/bossboard/internal/domain"
	"github.com/alexanderramin/bossboard/internal/repository"
	"github.com/alexanderramin/bossboard/internal/summary"
	"github.com/alexanderramin/bossboard/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSQLiteRosterService(t *testing.T) (RosterService, *repository.SQLiteWorkbook) {
	t.Helper()
	database := testutil.NewTestDB(t)
	store := repository.NewSQLiteWorkbook(database, testutil.NewTestUoW(database))
	return NewRosterService(store, "Members", testutil.Bosses()), store
}

func TestRoster_SeedEditSummarySaveReload(t *testing.T) {
	svc, _ := newSQLiteRosterService(t)
	ctx := context.Background()

	require.NoError(t, svc.Seed(ctx, []string{"A"}))

	session, err := svc.Load(ctx)
	require.NoError(t, err)

	taeo := testutil.Bosses()[0]
	require.NoError(t, svc.Edit(ctx, session, taeo, domain.CellEdit{Name: "A", Hits: 2, Damage: 50}))
	assert.True(t, session.Dirty())

	rows := session.Summary()
	require.Len(t, rows, 1)
	assert.Equal(t, "25.00", summary.FormatAverage(rows[0].Averages[0]))
	for _, avg := range rows[0].Averages[1:] {
		assert.Equal(t, "0.00", summary.FormatAverage(avg))
	}
	assert.Equal(t, 2, rows[0].TotalHits)

	require.NoError(t, svc.Save(ctx, session))
	assert.False(t, session.Dirty())

	fresh, err := svc.Load(ctx)
	require.NoError(t, err)
	assert.True(t, session.Table().Equal(fresh.Table()))
}

func TestRoster_SavePreservesExtraColumns(t *testing.T) {
	svc, store := newSQLiteRosterService(t)
	ctx := context.Background()

	require.NoError(t, store.Write(ctx, "Members", testutil.NewTestSheet(
		[]string{"Name", "Class", "Boss 2 Hits"},
		[]string{"A", "Mage", "3"},
	)))

	session, err := svc.Load(ctx)
	require.NoError(t, err)
	require.NoError(t, svc.Edit(ctx, session, testutil.Bosses()[1], domain.CellEdit{Name: "A", Hits: 4, Damage: 400}))
	require.NoError(t, svc.Save(ctx, session))

	sheet, err := store.Read(ctx, "Members")
	require.NoError(t, err)
	assert.Equal(t, []string{"Name", "Class"}, sheet.Header[:2])
	assert.Equal(t, "Mage", sheet.Rows[0][1])
	assert.Equal(t, "400", sheet.Rows[0][sheet.ColumnIndex("Boss 2 Dmg")])
	assert.Equal(t, "4", sheet.Rows[0][sheet.ColumnIndex("Boss 2 Hits")])
}

func TestRoster_SaveFailureRollsBackAndKeepsEdits(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()
	good := repository.NewSQLiteWorkbook(database, testutil.NewTestUoW(database))
	require.NoError(t, NewRosterService(good, "Members", testutil.Bosses()).Seed(ctx, []string{"A", "B"}))

	injected := errors.New("injected cell write failure")
	failing := repository.NewSQLiteWorkbook(database, &testutil.FailOnNthExecUoW{DB: database, FailOn: 4, Err: injected})
	svc := NewRosterService(failing, "Members", testutil.Bosses())

	session, err := svc.Load(ctx)
	require.NoError(t, err)
	require.NoError(t, svc.Edit(ctx, session, testutil.Bosses()[2], domain.CellEdit{Name: "B", Hits: 1, Damage: 10}))
	before := session.Snapshot()

	err = svc.Save(ctx, session)
	require.ErrorIs(t, err, domain.ErrSaveFailure)
	require.ErrorIs(t, err, injected)
	assert.True(t, session.Dirty())
	assert.True(t, before.Equal(session.Table()))

	stored, err := NewRosterService(good, "Members", testutil.Bosses()).Load(ctx)
	require.NoError(t, err)
	idx, ok := stored.Table().Find("B")
	require.True(t, ok)
	assert.Equal(t, 0, stored.Table().Rows[idx].Hits[2], "failed save must not leave partial data")
}

func TestRoster_LoadFailureOnMissingWorksheet(t *testing.T) {
	svc, _ := newSQLiteRosterService(t)

	_, err := svc.Load(context.Background())
	require.ErrorIs(t, err, domain.ErrLoadFailure)
	assert.ErrorIs(t, err, domain.ErrWorksheetNotFound)
}
