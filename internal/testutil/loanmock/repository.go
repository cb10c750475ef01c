package loanmock

import (
	"context"

	domain "loanbridge/internal/domain/loan"
)

// Ensure compile-time compliance
var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
// Only methods you need are included; add more as tests require.
type Repo struct {
	CreateFn                func(ctx context.Context, l *domain.Loan) error
	SaveFn                  func(ctx context.Context, l *domain.Loan) error
	GetByLoanIDFn           func(ctx context.Context, loanID string) (*domain.Loan, error)
	GetByLoanIDForUpdateFn  func(ctx context.Context, loanID string) (*domain.Loan, error)
	ListByBorrowerFn        func(ctx context.Context, borrowerID string) ([]domain.Loan, error)
	ListByLenderFn          func(ctx context.Context, lenderID string) ([]domain.Loan, error)
	ListByLenderAndStatusFn func(ctx context.Context, lenderID string, st domain.Status) ([]domain.Loan, error)
	ListAllFn               func(ctx context.Context) ([]domain.Loan, error)
	ListActiveByBorrowerFn  func(ctx context.Context, borrowerID string) ([]domain.Loan, error)
}

func (m *Repo) Create(ctx context.Context, l *domain.Loan) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, l)
	}
	return nil
}

func (m *Repo) Save(ctx context.Context, l *domain.Loan) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, l)
	}
	return nil
}

func (m *Repo) GetByLoanID(ctx context.Context, loanID string) (*domain.Loan, error) {
	if m.GetByLoanIDFn != nil {
		return m.GetByLoanIDFn(ctx, loanID)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByLoanIDForUpdate(ctx context.Context, loanID string) (*domain.Loan, error) {
	if m.GetByLoanIDForUpdateFn != nil {
		return m.GetByLoanIDForUpdateFn(ctx, loanID)
	}
	return nil, context.Canceled
}

func (m *Repo) ListByBorrower(ctx context.Context, borrowerID string) ([]domain.Loan, error) {
	if m.ListByBorrowerFn != nil {
		return m.ListByBorrowerFn(ctx, borrowerID)
	}
	return nil, nil
}

func (m *Repo) ListByLender(ctx context.Context, lenderID string) ([]domain.Loan, error) {
	if m.ListByLenderFn != nil {
		return m.ListByLenderFn(ctx, lenderID)
	}
	return nil, nil
}

func (m *Repo) ListByLenderAndStatus(ctx context.Context, lenderID string, st domain.Status) ([]domain.Loan, error) {
	if m.ListByLenderAndStatusFn != nil {
		return m.ListByLenderAndStatusFn(ctx, lenderID, st)
	}
	return nil, nil
}

func (m *Repo) ListAll(ctx context.Context) ([]domain.Loan, error) {
	if m.ListAllFn != nil {
		return m.ListAllFn(ctx)
	}
	return nil, nil
}

func (m *Repo) ListActiveByBorrower(ctx context.Context, borrowerID string) ([]domain.Loan, error) {
	if m.ListActiveByBorrowerFn != nil {
		return m.ListActiveByBorrowerFn(ctx, borrowerID)
	}
	return nil, nil
}
