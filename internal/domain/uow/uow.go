package uow

import (
	"context"

	"loanbridge/internal/domain/credit"
	"loanbridge/internal/domain/loan"
	"loanbridge/internal/domain/payment"
	"loanbridge/internal/domain/user"
)

type Repos struct {
	Users    user.Repository
	Loans    loan.Repository
	Credits  credit.Repository
	Payments payment.Repository
}

type UnitOfWork interface {
	// WithinTx runs fn in one transaction over all repos.
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// WithinLoanTx locks the loan row first, then runs fn; all state
	// transitions on a loan go through here so they serialize per loan.
	WithinLoanTx(ctx context.Context, loanID string, fn func(r Repos, l *loan.Loan) error) error
}
