package loan

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	creditDomain "loanbridge/internal/domain/credit"
	loanDomain "loanbridge/internal/domain/loan"
	paymentDomain "loanbridge/internal/domain/payment"
	"loanbridge/internal/domain/uow"
	userDomain "loanbridge/internal/domain/user"
	"loanbridge/pkg/id"

	"gorm.io/gorm"
)

// Usecase is the loan lifecycle engine: it owns every state transition
// (pending -> approved/rejected -> paid) and keeps the credit ledger
// consistent with the loan as a side effect. Transitions run inside
// WithinLoanTx so concurrent operations on the same loan serialize on the
// locked row; reads go through the plain repos.
type Usecase struct {
	uow   uow.UnitOfWork
	loans loanDomain.Repository
	users userDomain.Repository
}

func NewUsecase(tx uow.UnitOfWork, loans loanDomain.Repository, users userDomain.Repository) *Usecase {
	return &Usecase{uow: tx, loans: loans, users: users}
}

type ApplyInput struct {
	Amount      float64
	Purpose     string
	LenderID    string
	DownPayment float64

	// Applicant snapshot, copied onto the loan at application time.
	Email        string
	BirthDate    *time.Time
	NationalID   string
	Address      string
	Phone        string
	AnnualIncome *float64
	Employer     string
	Occupation   string
	GrossMonthly *float64
}

type ApproveInput struct {
	InterestRate   float64
	DurationMonths int
}

type LoanDTO struct {
	LoanID         string    `json:"loan_id"`
	BorrowerID     string    `json:"borrower_id"`
	LenderID       string    `json:"lender_id"`
	BorrowerName   string    `json:"borrower_name,omitempty"`
	LenderName     string    `json:"lender_name,omitempty"`
	Amount         float64   `json:"amount"`
	DownPayment    float64   `json:"down_payment"`
	PaidAmount     float64   `json:"paid_amount"`
	Purpose        string    `json:"purpose"`
	Status         string    `json:"status"`
	InterestRate   *float64  `json:"interest_rate,omitempty"`
	DurationMonths *int      `json:"duration_months,omitempty"`
	MonthlyPayment *float64  `json:"monthly_payment,omitempty"`
	TotalAmount    *float64  `json:"total_amount,omitempty"`
	AppliedAt      time.Time `json:"applied_at"`
}

func toDTO(l *loanDomain.Loan) *LoanDTO {
	return &LoanDTO{
		LoanID:         l.LoanID,
		BorrowerID:     l.BorrowerID,
		LenderID:       l.LenderID,
		Amount:         l.Amount,
		DownPayment:    l.DownPayment,
		PaidAmount:     l.PaidAmount,
		Purpose:        l.Purpose,
		Status:         string(l.Status),
		InterestRate:   l.InterestRate,
		DurationMonths: l.DurationMonths,
		MonthlyPayment: l.MonthlyPayment,
		TotalAmount:    l.TotalAmount,
		AppliedAt:      l.AppliedAt,
	}
}

// Apply validates a borrower's application and creates the loan in
// pending state.
func (u *Usecase) Apply(ctx context.Context, actor userDomain.Actor, in ApplyInput) (*LoanDTO, error) {
	if actor.Role != userDomain.RoleBorrower {
		return nil, loanDomain.ErrForbidden
	}
	if in.Amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be greater than 0", loanDomain.ErrValidation)
	}
	if in.Purpose == "" || in.LenderID == "" {
		return nil, fmt.Errorf("%w: amount, purpose and lender are required", loanDomain.ErrValidation)
	}

	var dto *LoanDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		borrower, err := r.Users.GetByUserID(ctx, actor.UserID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return userDomain.ErrNotFound
			}
			return err
		}
		if borrower.NetSalary == nil || *borrower.NetSalary <= 0 {
			return userDomain.ErrProfileIncomplete
		}

		lender, err := r.Users.GetByUserID(ctx, in.LenderID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("lender: %w", userDomain.ErrNotFound)
			}
			return err
		}
		if lender.Role != userDomain.RoleLender {
			return fmt.Errorf("%w: designated lender does not have the lender role", loanDomain.ErrValidation)
		}

		// Existing monthly exposure is computed but does not gate the
		// application; the cap below is on yearly net salary only.
		active, err := r.Loans.ListActiveByBorrower(ctx, actor.UserID)
		if err != nil {
			return err
		}
		_ = loanDomain.MonthlyExposure(active)

		maxAmount := *borrower.NetSalary * 12
		if in.Amount > maxAmount {
			return fmt.Errorf("%w: loan amount cannot exceed yearly net salary (maximum allowed: $%.2f)",
				loanDomain.ErrValidation, maxAmount)
		}
		if in.DownPayment < 0 || in.DownPayment >= in.Amount {
			return fmt.Errorf("%w: down payment must be non-negative and less than the loan amount",
				loanDomain.ErrValidation)
		}

		now := time.Now().UTC()
		l := &loanDomain.Loan{
			LoanID:          id.NewID32(),
			BorrowerID:      actor.UserID,
			LenderID:        in.LenderID,
			Amount:          in.Amount,
			DownPayment:     in.DownPayment,
			Purpose:         in.Purpose,
			Status:          loanDomain.StatusPending,
			Email:           in.Email,
			BirthDate:       in.BirthDate,
			NationalID:      in.NationalID,
			Address:         in.Address,
			Phone:           in.Phone,
			AnnualIncome:    in.AnnualIncome,
			Employer:        in.Employer,
			Occupation:      in.Occupation,
			GrossMonthly:    in.GrossMonthly,
			AppliedAt:       now,
			StatusUpdatedAt: now,
		}
		if err := r.Loans.Create(ctx, l); err != nil {
			return err
		}
		dto = toDTO(l)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// Approve fixes the repayment terms and moves the loan pending -> approved,
// upserting the pair's credit record in the same transaction.
func (u *Usecase) Approve(ctx context.Context, actor userDomain.Actor, loanID string, in ApproveInput) (*LoanDTO, error) {
	if in.InterestRate < 0 || in.InterestRate > 100 {
		return nil, fmt.Errorf("%w: interest rate must be between 0 and 100", loanDomain.ErrValidation)
	}
	if in.DurationMonths <= 0 {
		return nil, fmt.Errorf("%w: duration must be a positive number of months", loanDomain.ErrValidation)
	}

	var dto *LoanDTO
	err := u.uow.WithinLoanTx(ctx, loanID, func(r uow.Repos, l *loanDomain.Loan) error {
		if l.LenderID != actor.UserID {
			return loanDomain.ErrForbidden
		}
		if l.Status != loanDomain.StatusPending {
			return &loanDomain.StateError{Current: l.Status}
		}

		terms := loanDomain.ComputeTerms(l.Amount-l.DownPayment, in.InterestRate, in.DurationMonths)
		now := time.Now().UTC()

		rate := in.InterestRate
		months := in.DurationMonths
		l.Status = loanDomain.StatusApproved
		l.InterestRate = &rate
		l.DurationMonths = &months
		l.MonthlyPayment = &terms.MonthlyPayment
		l.TotalAmount = &terms.TotalAmount
		l.StatusUpdatedAt = now
		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}
		dto = toDTO(l)

		// One approved ledger row per (borrower, lender): update the
		// locked row if the pair is already active, otherwise create it.
		rec, err := r.Credits.GetApprovedForUpdate(ctx, l.BorrowerID, l.LenderID)
		switch {
		case err == nil:
			rec.LoanAmount = l.Amount
			rec.Balance = terms.TotalAmount
			rec.Date = now
			return r.Credits.Save(ctx, rec)
		case errors.Is(err, gorm.ErrRecordNotFound):
			return r.Credits.Create(ctx, &creditDomain.Record{
				RecordID:   id.NewID32(),
				BorrowerID: l.BorrowerID,
				LenderID:   l.LenderID,
				Date:       now,
				LoanAmount: l.Amount,
				Balance:    terms.TotalAmount,
				Status:     creditDomain.StatusApproved,
			})
		default:
			return err
		}
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, loanDomain.ErrNotFound
		}
		return nil, err
	}
	return dto, nil
}

// Reject moves the loan pending -> rejected. Terminal; no ledger effect.
func (u *Usecase) Reject(ctx context.Context, actor userDomain.Actor, loanID string) (*LoanDTO, error) {
	var dto *LoanDTO
	err := u.uow.WithinLoanTx(ctx, loanID, func(r uow.Repos, l *loanDomain.Loan) error {
		if l.LenderID != actor.UserID {
			return loanDomain.ErrForbidden
		}
		if l.Status != loanDomain.StatusPending {
			return &loanDomain.StateError{Current: l.Status}
		}
		l.Status = loanDomain.StatusRejected
		l.StatusUpdatedAt = time.Now().UTC()
		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}
		dto = toDTO(l)
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, loanDomain.ErrNotFound
		}
		return nil, err
	}
	return dto, nil
}

// Pay applies a payment to an approved loan. Payments that would push
// paid_amount past the loan amount are rejected outright, never clamped;
// reaching the full amount flips the loan (and its credit record) to paid.
// A transaction row is appended on every successful payment.
func (u *Usecase) Pay(ctx context.Context, actor userDomain.Actor, loanID string, amountPaid float64) (*LoanDTO, error) {
	if amountPaid <= 0 || math.IsNaN(amountPaid) || math.IsInf(amountPaid, 0) {
		return nil, fmt.Errorf("%w: payment amount must be greater than 0", loanDomain.ErrValidation)
	}

	var dto *LoanDTO
	err := u.uow.WithinLoanTx(ctx, loanID, func(r uow.Repos, l *loanDomain.Loan) error {
		if l.BorrowerID != actor.UserID {
			return loanDomain.ErrForbidden
		}
		if l.Status != loanDomain.StatusApproved {
			return &loanDomain.StateError{Current: l.Status}
		}
		if remaining := l.Remaining(); amountPaid > remaining {
			return fmt.Errorf("%w: payment exceeds the remaining balance (%.2f)",
				loanDomain.ErrValidation, remaining)
		}

		now := time.Now().UTC()
		l.PaidAmount += amountPaid
		if l.PaidAmount >= l.Amount {
			l.PaidAmount = l.Amount
			l.Status = loanDomain.StatusPaid
		}
		l.StatusUpdatedAt = now
		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}

		rec, err := r.Credits.GetApprovedForUpdate(ctx, l.BorrowerID, l.LenderID)
		switch {
		case err == nil:
			if l.Status == loanDomain.StatusPaid {
				rec.Balance = 0
				rec.Status = creditDomain.StatusPaid
			} else {
				rec.Balance -= amountPaid
			}
			if err := r.Credits.Save(ctx, rec); err != nil {
				return err
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			// No active ledger row for the pair; the payment still counts.
		default:
			return err
		}

		if err := r.Payments.Create(ctx, &paymentDomain.Transaction{
			TransactionID: id.NewID32(),
			LoanID:        l.LoanID,
			BorrowerID:    actor.UserID,
			Amount:        amountPaid,
			Date:          now,
		}); err != nil {
			return err
		}
		dto = toDTO(l)
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, loanDomain.ErrNotFound
		}
		return nil, err
	}
	return dto, nil
}

// History lists loans scoped to the caller's role, newest application
// first, with borrower and lender names joined in.
func (u *Usecase) History(ctx context.Context, actor userDomain.Actor) ([]LoanDTO, error) {
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
	return u.withNames(ctx, loans)
}

// PendingForLender lists the caller's pending applications.
func (u *Usecase) PendingForLender(ctx context.Context, actor userDomain.Actor) ([]LoanDTO, error) {
	loans, err := u.loans.ListByLenderAndStatus(ctx, actor.UserID, loanDomain.StatusPending)
	if err != nil {
		return nil, err
	}
	return u.withNames(ctx, loans)
}

func (u *Usecase) withNames(ctx context.Context, loans []loanDomain.Loan) ([]LoanDTO, error) {
	seen := make(map[string]struct{}, len(loans)*2)
	ids := make([]string, 0, len(loans)*2)
	for _, l := range loans {
		for _, uid := range []string{l.BorrowerID, l.LenderID} {
			if _, ok := seen[uid]; !ok {
				seen[uid] = struct{}{}
				ids = append(ids, uid)
			}
		}
	}
	names, err := u.users.NamesByUserIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := make([]LoanDTO, 0, len(loans))
	for i := range loans {
		dto := toDTO(&loans[i])
		dto.BorrowerName = names[dto.BorrowerID]
		dto.LenderName = names[dto.LenderID]
		out = append(out, *dto)
	}
	return out, nil
}
