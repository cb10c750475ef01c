package payment

import "context"

type Repository interface {
	Create(ctx context.Context, t *Transaction) error
	ListByLoan(ctx context.Context, loanID string) ([]Transaction, error)
	ListByBorrower(ctx context.Context, borrowerID string) ([]Transaction, error)
}
