package mysql

import (
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// --- SQLite-friendly schema only for tests (no ENUM columns) ---

type loanSQLite struct {
	ID              uint64         `gorm:"primaryKey;column:id"`
	LoanID          string         `gorm:"size:32;column:loan_id"`
	BorrowerID      string         `gorm:"size:32;column:borrower_id"`
	LenderID        string         `gorm:"size:32;column:lender_id"`
	Amount          float64        `gorm:"column:amount"`
	DownPayment     float64        `gorm:"column:down_payment"`
	PaidAmount      float64        `gorm:"column:paid_amount"`
	Purpose         string         `gorm:"column:purpose"`
	Status          string         `gorm:"type:text;column:status"` // ← no enum
	InterestRate    *float64       `gorm:"column:interest_rate"`
	DurationMonths  *int           `gorm:"column:duration_months"`
	MonthlyPayment  *float64       `gorm:"column:monthly_payment"`
	TotalAmount     *float64       `gorm:"column:total_amount"`
	Email           string         `gorm:"column:email"`
	BirthDate       *time.Time     `gorm:"column:birth_date"`
	NationalID      string         `gorm:"column:national_id"`
	Address         string         `gorm:"column:address"`
	Phone           string         `gorm:"column:phone"`
	AnnualIncome    *float64       `gorm:"column:annual_income"`
	Employer        string         `gorm:"column:employer"`
	Occupation      string         `gorm:"column:occupation"`
	GrossMonthly    *float64       `gorm:"column:gross_monthly"`
	AppliedAt       time.Time      `gorm:"column:applied_at"`
	StatusUpdatedAt time.Time      `gorm:"column:status_updated_at"`
	CreatedAt       time.Time      `gorm:"column:created_at"`
	UpdatedAt       time.Time      `gorm:"column:updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (loanSQLite) TableName() string { return "loans" }

type userSQLite struct {
	ID               uint64         `gorm:"primaryKey;column:id"`
	UserID           string         `gorm:"size:32;column:user_id"`
	Name             string         `gorm:"column:name"`
	Email            string         `gorm:"column:email"`
	PasswordHash     string         `gorm:"column:password_hash"`
	Role             string         `gorm:"type:text;column:role"` // ← no enum
	Phone            string         `gorm:"column:phone"`
	Address          string         `gorm:"column:address"`
	NetSalary        *float64       `gorm:"column:net_salary"`
	Employer         string         `gorm:"column:employer"`
	Occupation       string         `gorm:"column:occupation"`
	EmploymentStatus string         `gorm:"column:employment_status"`
	EmployerAddress  string         `gorm:"column:employer_address"`
	EmployerPhone    string         `gorm:"column:employer_phone"`
	DateOfBirth      *time.Time     `gorm:"column:date_of_birth"`
	NationalID       string         `gorm:"column:national_id"`
	CreatedAt        time.Time      `gorm:"column:created_at"`
	UpdatedAt        time.Time      `gorm:"column:updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (userSQLite) TableName() string { return "users" }

type creditRecordSQLite struct {
	ID         uint64    `gorm:"primaryKey;column:id"`
	RecordID   string    `gorm:"size:32;column:record_id"`
	BorrowerID string    `gorm:"size:32;column:borrower_id"`
	LenderID   string    `gorm:"size:32;column:lender_id"`
	Date       time.Time `gorm:"column:date"`
	LoanAmount float64   `gorm:"column:loan_amount"`
	Balance    float64   `gorm:"column:balance"`
	Status     string    `gorm:"type:text;column:status"` // ← no enum
	CreatedAt  time.Time `gorm:"column:created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at"`
}

func (creditRecordSQLite) TableName() string { return "credit_records" }

type transactionSQLite struct {
	ID            uint64    `gorm:"primaryKey;column:id"`
	TransactionID string    `gorm:"size:32;column:transaction_id"`
	LoanID        string    `gorm:"size:32;column:loan_id"`
	BorrowerID    string    `gorm:"size:32;column:borrower_id"`
	Amount        float64   `gorm:"column:amount"`
	Date          time.Time `gorm:"column:date"`
	CreatedAt     time.Time `gorm:"column:created_at"`
}

func (transactionSQLite) TableName() string { return "transactions" }

// openTestDB creates an in-memory sqlite DB and migrates ONLY the
// sqlite-safe schema, never the domain models.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&loanSQLite{}, &userSQLite{}, &creditRecordSQLite{}, &transactionSQLite{}); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}
