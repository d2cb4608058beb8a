package app

import (
	"context"

	"github.com/alexanderramin/bossboard/internal/domain"
)

// LoadRosterUseCase opens a session from the configured worksheet.
type LoadRosterUseCase interface {
	Load(ctx context.Context) (*Session, error)
}

// SaveRosterUseCase writes a session's whole table back to the worksheet.
type SaveRosterUseCase interface {
	Save(ctx context.Context, s *Session) error
}

// SeedRosterUseCase creates the worksheet with an initial member list.
type SeedRosterUseCase interface {
	Seed(ctx context.Context, names []string) error
}

// ReloadRosterUseCase re-reads the worksheet into an existing session.
type ReloadRosterUseCase interface {
	Reload(ctx context.Context, s *Session) error
}

// EditRosterUseCase merges one member's edited cells for a boss.
type EditRosterUseCase interface {
	Edit(ctx context.Context, s *Session, boss domain.BossDefinition, edit domain.CellEdit) error
}
