package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/alexanderramin/bossboard/internal/app"
	"github.com/alexanderramin/bossboard/internal/domain"
	"github.com/alexanderramin/bossboard/internal/importer"
	"github.com/alexanderramin/bossboard/internal/repository/mocks"
	"github.com/alexanderramin/bossboard/internal/testutil"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RosterServiceTestSuite struct {
	suite.Suite
	mockCtrl  *gomock.Controller
	mockStore *mocks.MockWorksheetRepo
	svc       RosterService
	ctx       context.Context
}

func (s *RosterServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockStore = mocks.NewMockWorksheetRepo(s.mockCtrl)
	s.svc = NewRosterService(s.mockStore, "Members", testutil.Bosses())
	s.ctx = context.Background()
}

func (s *RosterServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRosterServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RosterServiceTestSuite))
}

func rosterSheet() *domain.Sheet {
	return testutil.NewTestSheet(
		[]string{"Name", "Boss 1 Dmg", "Boss 1 Hits"},
		[]string{"A", "50", "2"},
		[]string{"B", "", ""},
	)
}

func (s *RosterServiceTestSuite) TestLoad_Success() {
	s.mockStore.EXPECT().Read(gomock.Any(), "Members").Return(rosterSheet(), nil)

	session, err := s.svc.Load(s.ctx)
	s.Require().NoError(err)

	s.Equal("Members", session.Worksheet)
	s.NotEmpty(session.ID)
	s.False(session.Dirty())
	s.Equal([]string{"A", "B"}, session.Table().Names())
	s.Len(session.Table().Rows[0].Hits, 4)
	s.Equal(2, session.Table().Rows[0].Hits[0])
}

func (s *RosterServiceTestSuite) TestLoad_StoreError() {
	s.mockStore.EXPECT().Read(gomock.Any(), "Members").Return(nil, errors.New("connection refused"))

	session, err := s.svc.Load(s.ctx)
	s.Nil(session)
	s.ErrorIs(err, domain.ErrLoadFailure)
	s.Contains(err.Error(), "connection refused")
}

func (s *RosterServiceTestSuite) TestLoad_MissingWorksheet() {
	s.mockStore.EXPECT().Read(gomock.Any(), "Members").
		Return(nil, fmt.Errorf("worksheet %q: %w", "Members", domain.ErrWorksheetNotFound))

	_, err := s.svc.Load(s.ctx)
	s.ErrorIs(err, domain.ErrLoadFailure)
	s.ErrorIs(err, domain.ErrWorksheetNotFound)
}

func (s *RosterServiceTestSuite) TestLoad_InvalidCells() {
	bad := testutil.NewTestSheet([]string{"Name", "Boss 1 Hits"}, []string{"A", "15"})
	s.mockStore.EXPECT().Read(gomock.Any(), "Members").Return(bad, nil)

	_, err := s.svc.Load(s.ctx)
	s.ErrorIs(err, domain.ErrLoadFailure)
	s.ErrorIs(err, domain.ErrInvalidHits)
}

func (s *RosterServiceTestSuite) TestSave_WritesWholeTable() {
	session := app.NewSession("Members", testutil.NewTestTable(s.T(), []string{"A"}), testutil.FixedNow())
	s.Require().NoError(session.ApplyEdit(testutil.Bosses()[0], domain.CellEdit{Name: "A", Hits: 2, Damage: 50}))
	want := importer.Denormalize(session.Snapshot())

	s.mockStore.EXPECT().Write(gomock.Any(), "Members", want).Return(nil)

	s.Require().NoError(s.svc.Save(s.ctx, session))
	s.False(session.Dirty())
	s.NotNil(session.SavedAt)
}

func (s *RosterServiceTestSuite) TestSave_FailureLeavesSessionUnchanged() {
	session := app.NewSession("Members", testutil.NewTestTable(s.T(), []string{"A", "B"}), testutil.FixedNow())
	s.Require().NoError(session.ApplyEdit(testutil.Bosses()[1], domain.CellEdit{Name: "B", Hits: 3, Damage: 100}))
	before := session.Snapshot()

	s.mockStore.EXPECT().Write(gomock.Any(), "Members", gomock.Any()).Return(errors.New("quota exceeded"))

	err := s.svc.Save(s.ctx, session)
	s.ErrorIs(err, domain.ErrSaveFailure)
	s.Contains(err.Error(), "quota exceeded")
	s.True(session.Dirty())
	s.Nil(session.SavedAt)
	s.True(before.Equal(session.Table()))
}

func (s *RosterServiceTestSuite) TestReload_ReplacesTable() {
	session := app.NewSession("Members", testutil.NewTestTable(s.T(), []string{"Old"}), testutil.FixedNow())
	s.Require().NoError(session.ApplyEdit(testutil.Bosses()[0], domain.CellEdit{Name: "Old", Hits: 1, Damage: 1}))

	s.mockStore.EXPECT().Read(gomock.Any(), "Members").Return(rosterSheet(), nil)

	s.Require().NoError(s.svc.Reload(s.ctx, session))
	s.False(session.Dirty())
	s.Equal([]string{"A", "B"}, session.Table().Names())
}

func (s *RosterServiceTestSuite) TestReload_FailureKeepsSession() {
	session := app.NewSession("Members", testutil.NewTestTable(s.T(), []string{"Old"}), testutil.FixedNow())
	s.mockStore.EXPECT().Read(gomock.Any(), "Members").Return(nil, errors.New("timeout"))

	err := s.svc.Reload(s.ctx, session)
	s.ErrorIs(err, domain.ErrLoadFailure)
	s.Equal([]string{"Old"}, session.Table().Names())
}

func (s *RosterServiceTestSuite) TestSeed_NewWorksheet() {
	s.mockStore.EXPECT().Read(gomock.Any(), "Members").
		Return(nil, fmt.Errorf("worksheet %q: %w", "Members", domain.ErrWorksheetNotFound))
	s.mockStore.EXPECT().Write(gomock.Any(), "Members", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, sheet *domain.Sheet) error {
			s.Equal([]string{"Name", "Boss 1 Dmg", "Boss 1 Hits", "Boss 2 Dmg", "Boss 2 Hits",
				"Boss 3 Dmg", "Boss 3 Hits", "Boss 4 Dmg", "Boss 4 Hits"}, sheet.Header)
			s.Equal([]string{"A", "0", "0", "0", "0", "0", "0", "0", "0"}, sheet.Rows[0])
			return nil
		})

	s.NoError(s.svc.Seed(s.ctx, []string{"A", "B"}))
}

func (s *RosterServiceTestSuite) TestSeed_ExistingWorksheet() {
	s.mockStore.EXPECT().Read(gomock.Any(), "Members").Return(rosterSheet(), nil)

	err := s.svc.Seed(s.ctx, []string{"A"})
	s.ErrorContains(err, "already exists")
}

func (s *RosterServiceTestSuite) TestSeed_DuplicateNames() {
	s.mockStore.EXPECT().Read(gomock.Any(), "Members").
		Return(nil, fmt.Errorf("worksheet %q: %w", "Members", domain.ErrWorksheetNotFound))

	err := s.svc.Seed(s.ctx, []string{"A", "A"})
	s.ErrorIs(err, domain.ErrDuplicateMember)
}

func (s *RosterServiceTestSuite) TestEdit_InvalidHitsRejected() {
	session := app.NewSession("Members", testutil.NewTestTable(s.T(), []string{"A"}), testutil.FixedNow())

	err := s.svc.Edit(s.ctx, session, testutil.Bosses()[0], domain.CellEdit{Name: "A", Hits: 15})
	s.ErrorIs(err, domain.ErrInvalidHits)
	s.False(session.Dirty())
}
