package creditmock

import (
	"context"

	"gorm.io/gorm"

	domain "loanbridge/internal/domain/credit"
)

// Ensure compile-time compliance
var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn               func(ctx context.Context, r *domain.Record) error
	SaveFn                 func(ctx context.Context, r *domain.Record) error
	GetApprovedForUpdateFn func(ctx context.Context, borrowerID, lenderID string) (*domain.Record, error)
	ListByBorrowerFn       func(ctx context.Context, borrowerID string) ([]domain.Record, error)
}

func (m *Repo) Create(ctx context.Context, r *domain.Record) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, r)
	}
	return nil
}

func (m *Repo) Save(ctx context.Context, r *domain.Record) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, r)
	}
	return nil
}

func (m *Repo) GetApprovedForUpdate(ctx context.Context, borrowerID, lenderID string) (*domain.Record, error) {
	if m.GetApprovedForUpdateFn != nil {
		return m.GetApprovedForUpdateFn(ctx, borrowerID, lenderID)
	}
	// Same "no rows" error the production repository surfaces.
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) ListByBorrower(ctx context.Context, borrowerID string) ([]domain.Record, error) {
	if m.ListByBorrowerFn != nil {
		return m.ListByBorrowerFn(ctx, borrowerID)
	}
	return nil, nil
}
