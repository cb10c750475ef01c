package loan

import (
	"time"

	"gorm.io/gorm"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
	StatusPaid     Status = "paid"
)

// Loan is one credit extension from exactly one lender to one borrower.
// The applicant fields are a point-in-time snapshot taken at application
// time; later profile edits never alter them.
type Loan struct {
	ID         uint64 `gorm:"primaryKey;column:id" json:"-"`
	LoanID     string `gorm:"size:32;uniqueIndex:ux_loans_loan_id" json:"loan_id"`
	BorrowerID string `gorm:"size:32;index:idx_loans_borrower" json:"borrower_id"`
	LenderID   string `gorm:"size:32;index:idx_loans_lender" json:"lender_id"`

	Amount      float64 `gorm:"type:decimal(18,2)" json:"amount"`
	DownPayment float64 `gorm:"type:decimal(18,2)" json:"down_payment"`
	PaidAmount  float64 `gorm:"type:decimal(18,2)" json:"paid_amount"`
	Purpose     string  `gorm:"type:text" json:"purpose"`
	Status      Status  `gorm:"type:enum('pending','approved','rejected','paid');default:'pending'" json:"status"`

	// Repayment terms, fixed at approval and immutable afterwards.
	InterestRate   *float64 `gorm:"type:decimal(6,3)" json:"interest_rate,omitempty"`
	DurationMonths *int     `json:"duration_months,omitempty"`
	MonthlyPayment *float64 `gorm:"type:decimal(18,2)" json:"monthly_payment,omitempty"`
	TotalAmount    *float64 `gorm:"type:decimal(18,2)" json:"total_amount,omitempty"`

	// Applicant snapshot.
	Email        string     `gorm:"size:191" json:"email,omitempty"`
	BirthDate    *time.Time `json:"birth_date,omitempty"`
	NationalID   string     `gorm:"size:64;column:national_id" json:"national_id,omitempty"`
	Address      string     `gorm:"type:text" json:"address,omitempty"`
	Phone        string     `gorm:"size:64" json:"phone,omitempty"`
	AnnualIncome *float64   `gorm:"type:decimal(18,2)" json:"annual_income,omitempty"`
	Employer     string     `gorm:"size:191" json:"employer,omitempty"`
	Occupation   string     `gorm:"size:191" json:"occupation,omitempty"`
	GrossMonthly *float64   `gorm:"type:decimal(18,2)" json:"gross_monthly,omitempty"`

	AppliedAt       time.Time      `json:"applied_at"`
	StatusUpdatedAt time.Time      `json:"status_updated_at"`
	CreatedAt       time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Loan) TableName() string { return "loans" }

// Remaining is the unpaid part of the requested amount.
func (l *Loan) Remaining() float64 { return l.Amount - l.PaidAmount }

// Active reports whether the loan is approved and not yet fully repaid.
func (l *Loan) Active() bool { return l.Status == StatusApproved && l.Amount > l.PaidAmount }
