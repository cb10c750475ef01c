package report

import (
	"context"
	"errors"
	"time"

	creditDomain "loanbridge/internal/domain/credit"
	loanDomain "loanbridge/internal/domain/loan"
	userDomain "loanbridge/internal/domain/user"

	"gorm.io/gorm"
)

// Usecase holds the read-only projections over loans/users/credit records.
// Plain reductions; no lifecycle logic lives here.
type Usecase struct {
	loans   loanDomain.Repository
	users   userDomain.Repository
	credits creditDomain.Repository
}

func NewUsecase(loans loanDomain.Repository, users userDomain.Repository, credits creditDomain.Repository) *Usecase {
	return &Usecase{loans: loans, users: users, credits: credits}
}

type DashboardStats struct {
	TotalLoans  int     `json:"total_loans"`
	ActiveLoans int     `json:"active_loans"`
	TotalAmount float64 `json:"total_amount"`
	// Only set for borrowers with at least one loan.
	CreditScore *int `json:"credit_score,omitempty"`
}

func (u *Usecase) Dashboard(ctx context.Context, actor userDomain.Actor) (*DashboardStats, error) {
	var (
		loans []loanDomain.Loan
		err   error
	)
	switch actor.Role {
	case userDomain.RoleBorrower:
		loans, err = u.loans.ListByBorrower(ctx, actor.UserID)
	case userDomain.RoleLender:
		loans, err = u.loans.ListByLender(ctx, actor.UserID)
	case userDomain.RoleAdmin:
		loans, err = u.loans.ListAll(ctx)
	default:
		return nil, loanDomain.ErrForbidden
	}
	if err != nil {
		return nil, err
	}

	stats := &DashboardStats{TotalLoans: len(loans)}
	for i := range loans {
		stats.TotalAmount += loans[i].Amount
		if loans[i].Active() {
			stats.ActiveLoans++
		}
	}
	if actor.Role == userDomain.RoleBorrower && len(loans) > 0 {
		score := loanDomain.CreditScore(loans)
		stats.CreditScore = &score
	}
	return stats, nil
}

type ReportLoan struct {
	LoanID     string            `json:"loan_id"`
	Amount     float64           `json:"amount"`
	PaidAmount float64           `json:"paid_amount"`
	Remaining  float64           `json:"remaining"`
	Status     loanDomain.Status `json:"status"`
	Purpose    string            `json:"purpose"`
	AppliedAt  time.Time         `json:"applied_at"`

	BorrowerID    string `json:"borrower_id,omitempty"`
	BorrowerName  string `json:"borrower_name,omitempty"`
	BorrowerEmail string `json:"borrower_email,omitempty"`
	LenderID      string `json:"lender_id,omitempty"`
	LenderName    string `json:"lender_name,omitempty"`
	LenderEmail   string `json:"lender_email,omitempty"`
}

type BorrowerReportRow struct {
	BorrowerID    string       `json:"borrower_id"`
	BorrowerName  string       `json:"borrower_name"`
	BorrowerEmail string       `json:"borrower_email"`
	Loans         []ReportLoan `json:"loans"`
}

// BorrowerReport lists every borrower with their loans. Lenders see only
// loans they issued, and borrowers with none of theirs are dropped from
// the report; admins see everything.
func (u *Usecase) BorrowerReport(ctx context.Context, actor userDomain.Actor) ([]BorrowerReportRow, error) {
	borrowers, err := u.users.ListByRole(ctx, userDomain.RoleBorrower)
	if err != nil {
		return nil, err
	}
	lenders, err := u.lenderIndex(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]BorrowerReportRow, 0, len(borrowers))
	for _, b := range borrowers {
		loans, err := u.loans.ListByBorrower(ctx, b.UserID)
		if err != nil {
			return nil, err
		}
		if actor.Role == userDomain.RoleLender {
			filtered := loans[:0]
			for _, l := range loans {
				if l.LenderID == actor.UserID {
					filtered = append(filtered, l)
				}
			}
			loans = filtered
			if len(loans) == 0 {
				continue
			}
		}

		row := BorrowerReportRow{
			BorrowerID:    b.UserID,
			BorrowerName:  b.Name,
			BorrowerEmail: b.Email,
			Loans:         make([]ReportLoan, 0, len(loans)),
		}
		for i := range loans {
			l := &loans[i]
			lender := lenders[l.LenderID]
			row.Loans = append(row.Loans, ReportLoan{
				LoanID:      l.LoanID,
				Amount:      l.Amount,
				PaidAmount:  l.PaidAmount,
				Remaining:   l.Remaining(),
				Status:      l.Status,
				Purpose:     l.Purpose,
				AppliedAt:   l.AppliedAt,
				LenderID:    l.LenderID,
				LenderName:  lender.Name,
				LenderEmail: lender.Email,
			})
		}
		out = append(out, row)
	}
	return out, nil
}

type LenderReportRow struct {
	LenderID             string                    `json:"lender_id"`
	LenderName           string                    `json:"lender_name"`
	LenderEmail          string                    `json:"lender_email"`
	TotalLoans           int                       `json:"total_loans"`
	TotalLoansAmount     float64                   `json:"total_loans_amount"`
	TotalPaidAmount      float64                   `json:"total_paid_amount"`
	TotalRemainingAmount float64                   `json:"total_remaining_amount"`
	LoanStatuses         map[loanDomain.Status]int `json:"loan_statuses"`
	Loans                []ReportLoan              `json:"loans"`
}

// LenderReport aggregates every lender's book: totals and per-status
// counts over their issued loans. Admin only (enforced at the route).
func (u *Usecase) LenderReport(ctx context.Context) ([]LenderReportRow, error) {
	lenders, err := u.users.ListByRole(ctx, userDomain.RoleLender)
	if err != nil {
		return nil, err
	}
	borrowers, err := u.borrowerIndex(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]LenderReportRow, 0, len(lenders))
	for _, lender := range lenders {
		loans, err := u.loans.ListByLender(ctx, lender.UserID)
		if err != nil {
			return nil, err
		}

		row := LenderReportRow{
			LenderID:     lender.UserID,
			LenderName:   lender.Name,
			LenderEmail:  lender.Email,
			TotalLoans:   len(loans),
			LoanStatuses: make(map[loanDomain.Status]int),
			Loans:        make([]ReportLoan, 0, len(loans)),
		}
		for i := range loans {
			l := &loans[i]
			row.TotalLoansAmount += l.Amount
			row.TotalPaidAmount += l.PaidAmount
			row.TotalRemainingAmount += l.Remaining()
			row.LoanStatuses[l.Status]++

			b := borrowers[l.BorrowerID]
			row.Loans = append(row.Loans, ReportLoan{
				LoanID:        l.LoanID,
				Amount:        l.Amount,
				PaidAmount:    l.PaidAmount,
				Remaining:     l.Remaining(),
				Status:        l.Status,
				Purpose:       l.Purpose,
				AppliedAt:     l.AppliedAt,
				BorrowerID:    l.BorrowerID,
				BorrowerName:  b.Name,
				BorrowerEmail: b.Email,
			})
		}
		out = append(out, row)
	}
	return out, nil
}

type BorrowerStats struct {
	TotalLoans     int `json:"total_loans"`
	ActiveLoans    int `json:"active_loans"`
	CompletedLoans int `json:"completed_loans"`
	RejectedLoans  int `json:"rejected_loans"`
}

type BorrowerDetails struct {
	Borrower    *userDomain.User  `json:"borrower"`
	CreditScore int               `json:"credit_score"`
	LoanHistory []loanDomain.Loan `json:"loan_history"`
	Stats       BorrowerStats     `json:"stats"`
}

// BorrowerDetails bundles the borrower record with their derived credit
// score, last five applications and per-status counts.
func (u *Usecase) BorrowerDetails(ctx context.Context, borrowerID string) (*BorrowerDetails, error) {
	borrower, err := u.users.GetByUserID(ctx, borrowerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, userDomain.ErrNotFound
		}
		return nil, err
	}

	loans, err := u.loans.ListByBorrower(ctx, borrowerID)
	if err != nil {
		return nil, err
	}

	stats := BorrowerStats{TotalLoans: len(loans)}
	for i := range loans {
		l := &loans[i]
		if l.Active() {
			stats.ActiveLoans++
		}
		if l.Amount <= l.PaidAmount {
			stats.CompletedLoans++
		}
		if l.Status == loanDomain.StatusRejected {
			stats.RejectedLoans++
		}
	}

	history := loans
	if len(history) > 5 {
		history = history[:5]
	}

	return &BorrowerDetails{
		Borrower:    borrower,
		CreditScore: loanDomain.CreditScore(loans),
		LoanHistory: history,
		Stats:       stats,
	}, nil
}

type CreditHistoryRow struct {
	RecordID   string              `json:"record_id"`
	Date       time.Time           `json:"date"`
	LoanAmount float64             `json:"loan_amount"`
	Balance    float64             `json:"balance"`
	Status     creditDomain.Status `json:"status"`
	LenderName string              `json:"lender_name"`
}

// CreditHistory returns the borrower's ledger rows, newest first, with
// lender names joined in.
func (u *Usecase) CreditHistory(ctx context.Context, actor userDomain.Actor) ([]CreditHistoryRow, error) {
	records, err := u.credits.ListByBorrower(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(records))
	seen := make(map[string]struct{}, len(records))
	for _, rec := range records {
		if _, ok := seen[rec.LenderID]; !ok {
			seen[rec.LenderID] = struct{}{}
			ids = append(ids, rec.LenderID)
		}
	}
	names, err := u.users.NamesByUserIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := make([]CreditHistoryRow, 0, len(records))
	for _, rec := range records {
		name := names[rec.LenderID]
		if name == "" {
			name = "Unknown"
		}
		out = append(out, CreditHistoryRow{
			RecordID:   rec.RecordID,
			Date:       rec.Date,
			LoanAmount: rec.LoanAmount,
			Balance:    rec.Balance,
			Status:     rec.Status,
			LenderName: name,
		})
	}
	return out, nil
}

func (u *Usecase) lenderIndex(ctx context.Context) (map[string]userDomain.User, error) {
	lenders, err := u.users.ListByRole(ctx, userDomain.RoleLender)
	if err != nil {
		return nil, err
	}
	idx := make(map[string]userDomain.User, len(lenders))
	for _, l := range lenders {
		idx[l.UserID] = l
	}
	return idx, nil
}

func (u *Usecase) borrowerIndex(ctx context.Context) (map[string]userDomain.User, error) {
	borrowers, err := u.users.ListByRole(ctx, userDomain.RoleBorrower)
	if err != nil {
		return nil, err
	}
	idx := make(map[string]userDomain.User, len(borrowers))
	for _, b := range borrowers {
		idx[b.UserID] = b
	}
	return idx, nil
}
