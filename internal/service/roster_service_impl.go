package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/bossboard/internal/app"
	"github.com/alexanderramin/bossboard/internal/domain"
	"github.com/alexanderramin/bossboard/internal/importer"
	"github.com/alexanderramin/bossboard/internal/repository"
)

// DefaultNameColumn heads the identity column of a seeded worksheet.
const DefaultNameColumn = "Name"

type rosterService struct {
	store     repository.WorksheetRepo
	worksheet string
	bosses    []domain.BossDefinition
	observer  UseCaseObserver
}

func NewRosterService(
	store repository.WorksheetRepo,
	worksheet string,
	bosses []domain.BossDefinition,
	observers ...UseCaseObserver,
) RosterService {
	return &rosterService{
		store:     store,
		worksheet: worksheet,
		bosses:    bosses,
		observer:  useCaseObserverOrNoop(observers),
	}
}

func (s *rosterService) observe(ctx context.Context, name string, startedAt time.Time, fields map[string]any, err error) {
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      name,
		StartedAt: startedAt,
		Duration:  time.Since(startedAt),
		Success:   err == nil,
		Err:       err,
		Fields:    fields,
	})
}

// read fetches and normalizes the worksheet. Errors are wrapped in
// domain.ErrLoadFailure with the cause kept in the message.
func (s *rosterService) read(ctx context.Context) (*domain.WorkingTable, error) {
	sheet, err := s.store.Read(ctx, s.worksheet)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrLoadFailure, err)
	}
	table, err := importer.Normalize(sheet, s.bosses)
	if err != nil {
		return nil, fmt.Errorf("%w: worksheet %q: %w", domain.ErrLoadFailure, s.worksheet, err)
	}
	return table, nil
}

func (s *rosterService) Load(ctx context.Context) (session *app.Session, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"worksheet": s.worksheet}
	defer func() { s.observe(ctx, UseCaseLoad, startedAt, fields, err) }()

	table, err := s.read(ctx)
	if err != nil {
		return nil, err
	}
	session = app.NewSession(s.worksheet, table, time.Now().UTC())
	fields["session"] = session.ID
	fields["members"] = len(table.Rows)
	return session, nil
}

// Reload replaces the session's table with a fresh read. A failed read
// leaves the session as it was.
func (s *rosterService) Reload(ctx context.Context, session *app.Session) (err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"worksheet": s.worksheet, "session": session.ID, "discarded_edits": session.Dirty()}
	defer func() { s.observe(ctx, UseCaseReload, startedAt, fields, err) }()

	table, err := s.read(ctx)
	if err != nil {
		return err
	}
	fields["members"] = len(table.Rows)
	return session.Replace(table, time.Now().UTC())
}

// Save overwrites the worksheet with the whole working table. On failure
// the session keeps its table and dirty flag.
func (s *rosterService) Save(ctx context.Context, session *app.Session) (err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"worksheet": session.Worksheet, "session": session.ID}
	defer func() { s.observe(ctx, UseCaseSave, startedAt, fields, err) }()

	sheet := importer.Denormalize(session.Table())
	fields["rows"] = len(sheet.Rows)
	if err := s.store.Write(ctx, session.Worksheet, sheet); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrSaveFailure, err)
	}
	session.MarkSaved(time.Now().UTC())
	return nil
}

// Seed creates the worksheet with the given members and zeroed boss
// columns. An existing worksheet is never overwritten.
func (s *rosterService) Seed(ctx context.Context, names []string) (err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"worksheet": s.worksheet, "members": len(names)}
	defer func() { s.observe(ctx, UseCaseSeed, startedAt, fields, err) }()

	_, err = s.store.Read(ctx, s.worksheet)
	switch {
	case err == nil:
		return fmt.Errorf("worksheet %q already exists", s.worksheet)
	case !errors.Is(err, domain.ErrWorksheetNotFound):
		return fmt.Errorf("checking worksheet %q: %w", s.worksheet, err)
	}

	table, err := importer.Normalize(importer.NewRosterSheet(DefaultNameColumn, names), s.bosses)
	if err != nil {
		return fmt.Errorf("seeding worksheet %q: %w", s.worksheet, err)
	}
	if err := s.store.Write(ctx, s.worksheet, importer.Denormalize(table)); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrSaveFailure, err)
	}
	return nil
}

func (s *rosterService) Edit(ctx context.Context, session *app.Session, boss domain.BossDefinition, edit domain.CellEdit) (err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"session": session.ID, "boss": boss.Name, "member": edit.Name}
	defer func() { s.observe(ctx, UseCaseEdit, startedAt, fields, err) }()

	return session.ApplyEdit(boss, edit)
}
