package loan

import "context"

type Repository interface {
	Create(ctx context.Context, l *Loan) error
	Save(ctx context.Context, l *Loan) error
	GetByLoanID(ctx context.Context, loanID string) (*Loan, error)
	// GetByLoanIDForUpdate locks the row (SELECT ... FOR UPDATE) so state
	// transitions serialize per loan.
	GetByLoanIDForUpdate(ctx context.Context, loanID string) (*Loan, error)
	// Listings are ordered newest application first.
	ListByBorrower(ctx context.Context, borrowerID string) ([]Loan, error)
	ListByLender(ctx context.Context, lenderID string) ([]Loan, error)
	ListByLenderAndStatus(ctx context.Context, lenderID string, st Status) ([]Loan, error)
	ListAll(ctx context.Context) ([]Loan, error)
	// ListActiveByBorrower returns approved loans with amount > paid_amount.
	ListActiveByBorrower(ctx context.Context, borrowerID string) ([]Loan, error)
}
