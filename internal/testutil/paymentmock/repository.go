package paymentmock

import (
	"context"

	domain "loanbridge/internal/domain/payment"
)

// Ensure compile-time compliance
var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn         func(ctx context.Context, tx *domain.Transaction) error
	ListByLoanFn     func(ctx context.Context, loanID string) ([]domain.Transaction, error)
	ListByBorrowerFn func(ctx context.Context, borrowerID string) ([]domain.Transaction, error)
}

func (m *Repo) Create(ctx context.Context, tx *domain.Transaction) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, tx)
	}
	return nil
}

func (m *Repo) ListByLoan(ctx context.Context, loanID string) ([]domain.Transaction, error) {
	if m.ListByLoanFn != nil {
		return m.ListByLoanFn(ctx, loanID)
	}
	return nil, nil
}

func (m *Repo) ListByBorrower(ctx context.Context, borrowerID string) ([]domain.Transaction, error) {
	if m.ListByBorrowerFn != nil {
		return m.ListByBorrowerFn(ctx, borrowerID)
	}
	return nil, nil
}
