package user

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

type Role string

const (
	RoleBorrower Role = "borrower"
	RoleLender   Role = "lender"
	RoleAdmin    Role = "admin"
)

// ParseRole rejects anything outside the closed role set. Empty input
// defaults to borrower (registration without an explicit role).
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleBorrower, RoleLender, RoleAdmin:
		return Role(s), nil
	case "":
		return RoleBorrower, nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

var (
	ErrNotFound    = errors.New("user not found")
	ErrEmailTaken  = errors.New("email already registered")
	ErrInvalidRole = errors.New("invalid role")
	// ErrProfileIncomplete: the borrower has no net salary on file, so the
	// loan-amount cap cannot be computed.
	ErrProfileIncomplete = errors.New("net salary missing from profile")
)

// Actor is the authenticated caller of an operation, decoded from the
// bearer token. Threaded through usecases explicitly; never read from
// ambient state.
type Actor struct {
	UserID string
	Role   Role
}

type User struct {
	ID           uint64 `gorm:"primaryKey;column:id" json:"-"`
	UserID       string `gorm:"size:32;uniqueIndex:ux_users_user_id" json:"user_id"`
	Name         string `gorm:"size:191" json:"name"`
	Email        string `gorm:"size:191;uniqueIndex:ux_users_email" json:"email"`
	PasswordHash string `gorm:"size:191;column:password_hash" json:"-"`
	Role         Role   `gorm:"type:enum('borrower','lender','admin');default:'borrower'" json:"role"`

	// Profile / employment attributes, filled in after registration.
	Phone            string     `gorm:"size:64" json:"phone,omitempty"`
	Address          string     `gorm:"type:text" json:"address,omitempty"`
	NetSalary        *float64   `gorm:"type:decimal(18,2)" json:"net_salary,omitempty"`
	Employer         string     `gorm:"size:191" json:"employer,omitempty"`
	Occupation       string     `gorm:"size:191" json:"occupation,omitempty"`
	EmploymentStatus string     `gorm:"size:64" json:"employment_status,omitempty"`
	EmployerAddress  string     `gorm:"type:text" json:"employer_address,omitempty"`
	EmployerPhone    string     `gorm:"size:64" json:"employer_phone,omitempty"`
	DateOfBirth      *time.Time `json:"date_of_birth,omitempty"`
	NationalID       string     `gorm:"size:64;column:national_id" json:"national_id,omitempty"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (User) TableName() string { return "users" }
