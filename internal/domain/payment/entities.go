package payment

import "time"

// Transaction is one payment event against a loan. Append-only audit
// trail: rows are never updated or deleted, and the engine never consults
// them for decisions (the loan's paid_amount is the authoritative total).
type Transaction struct {
	ID            uint64    `gorm:"primaryKey;column:id" json:"-"`
	TransactionID string    `gorm:"size:32;uniqueIndex:ux_transactions_transaction_id" json:"transaction_id"`
	LoanID        string    `gorm:"size:32;index:idx_transactions_loan" json:"loan_id"`
	BorrowerID    string    `gorm:"size:32;index:idx_transactions_borrower" json:"borrower_id"`
	Amount        float64   `gorm:"type:decimal(18,2)" json:"amount"`
	Date          time.Time `json:"date"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"-"`
}

func (Transaction) TableName() string { return "transactions" }
