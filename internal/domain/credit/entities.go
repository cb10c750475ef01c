package credit

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("credit record not found")

type Status string

const (
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
	StatusPaid     Status = "paid"
)

// Record summarizes the latest known balance of one borrower-lender
// relationship. At most one approved row exists per pair at a time;
// approving another loan for an active pair updates that row in place.
type Record struct {
	ID         uint64    `gorm:"primaryKey;column:id" json:"-"`
	RecordID   string    `gorm:"size:32;uniqueIndex:ux_credit_records_record_id" json:"record_id"`
	BorrowerID string    `gorm:"size:32;index:idx_credit_records_pair,priority:1" json:"borrower_id"`
	LenderID   string    `gorm:"size:32;index:idx_credit_records_pair,priority:2" json:"lender_id"`
	Date       time.Time `json:"date"`
	LoanAmount float64   `gorm:"type:decimal(18,2)" json:"loan_amount"`
	Balance    float64   `gorm:"type:decimal(18,2)" json:"balance"`
	Status     Status    `gorm:"type:enum('approved','rejected','paid')" json:"status"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"-"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"-"`
}

func (Record) TableName() string { return "credit_records" }
