package mysql

import (
	"context"

	paymentDomain "loanbridge/internal/domain/payment"

	"gorm.io/gorm"
)

type PaymentRepository struct{ db *gorm.DB }

func NewPaymentRepository(db *gorm.DB) *PaymentRepository { return &PaymentRepository{db: db} }

// Append-only: no Save/Delete on transactions.
func (r *PaymentRepository) Create(ctx context.Context, t *paymentDomain.Transaction) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *PaymentRepository) ListByLoan(ctx context.Context, loanID string) ([]paymentDomain.Transaction, error) {
	var out []paymentDomain.Transaction
	res := r.db.WithContext(ctx).
		Where("loan_id = ?", loanID).
		Order("date DESC, id DESC").
		Find(&out)
	return out, res.Error
}

func (r *PaymentRepository) ListByBorrower(ctx context.Context, borrowerID string) ([]paymentDomain.Transaction, error) {
	var out []paymentDomain.Transaction
	res := r.db.WithContext(ctx).
		Where("borrower_id = ?", borrowerID).
		Order("date DESC, id DESC").
		Find(&out)
	return out, res.Error
}
