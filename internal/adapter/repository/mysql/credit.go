package mysql

import (
	"context"

	creditDomain "loanbridge/internal/domain/credit"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CreditRepository struct{ db *gorm.DB }

func NewCreditRepository(db *gorm.DB) *CreditRepository { return &CreditRepository{db: db} }

func (r *CreditRepository) Create(ctx context.Context, rec *creditDomain.Record) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *CreditRepository) Save(ctx context.Context, rec *creditDomain.Record) error {
	return r.db.WithContext(ctx).Save(rec).Error
}

func (r *CreditRepository) GetApprovedForUpdate(ctx context.Context, borrowerID, lenderID string) (*creditDomain.Record, error) {
	var out creditDomain.Record
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("borrower_id = ? AND lender_id = ? AND status = ?",
			borrowerID, lenderID, creditDomain.StatusApproved).
		First(&out)
	return &out, res.Error
}

func (r *CreditRepository) ListByBorrower(ctx context.Context, borrowerID string) ([]creditDomain.Record, error) {
	var out []creditDomain.Record
	res := r.db.WithContext(ctx).
		Where("borrower_id = ?", borrowerID).
		Order("date DESC, id DESC").
		Find(&out)
	return out, res.Error
}
