package repository

//go:generate mockgen -package=mocks -destination=mocks/mock_worksheet_repo.go github.com/alexanderramin/bossboard/internal/repository WorksheetRepo

import (
	"context"

	"github.com/alexanderramin/bossboard/internal/domain"
)

// WorksheetRepo is the roster store: a workbook of named worksheets that is
// read whole and overwritten whole. Reading a worksheet that does not exist
// returns an error wrapping domain.ErrWorksheetNotFound.
type WorksheetRepo interface {
	Read(ctx context.Context, name string) (*domain.Sheet, error)
	Write(ctx context.Context, name string, sheet *domain.Sheet) error
}
