package mysql

import (
	"context"
	"errors"
	"testing"
	"time"

	"gorm.io/gorm"

	domain "loanbridge/internal/domain/credit"
	"loanbridge/pkg/id"
)

func makeRecord(borrowerID, lenderID string, status domain.Status) *domain.Record {
	return &domain.Record{
		RecordID:   id.NewID32(),
		BorrowerID: borrowerID,
		LenderID:   lenderID,
		Date:       time.Now().UTC(),
		LoanAmount: 1000,
		Balance:    1061.88,
		Status:     status,
	}
}

func TestGetApprovedForUpdate(t *testing.T) {
	db := openTestDB(t)
	repo := NewCreditRepository(db)
	ctx := context.Background()

	borrower, lender := id.NewID32(), id.NewID32()

	// A settled row for the pair must not satisfy the lookup.
	if err := repo.Create(ctx, makeRecord(borrower, lender, domain.StatusPaid)); err != nil {
		t.Fatalf("Create paid: %v", err)
	}
	if _, err := repo.GetApprovedForUpdate(ctx, borrower, lender); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("paid row should not match: %v", err)
	}

	active := makeRecord(borrower, lender, domain.StatusApproved)
	if err := repo.Create(ctx, active); err != nil {
		t.Fatalf("Create approved: %v", err)
	}

	got, err := repo.GetApprovedForUpdate(ctx, borrower, lender)
	if err != nil {
		t.Fatalf("GetApprovedForUpdate: %v", err)
	}
	if got.RecordID != active.RecordID {
		t.Fatalf("wrong row locked: %+v", got)
	}

	// Another pair must not match.
	if _, err := repo.GetApprovedForUpdate(ctx, borrower, id.NewID32()); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("foreign pair matched: %v", err)
	}
}

func TestCreditSaveUpdatesBalance(t *testing.T) {
	db := openTestDB(t)
	repo := NewCreditRepository(db)
	ctx := context.Background()

	rec := makeRecord(id.NewID32(), id.NewID32(), domain.StatusApproved)
	if err := repo.Create(ctx, rec); err != nil {
		t.Fatalf("Create: %v", err)
	}

	rec.Balance = 0
	rec.Status = domain.StatusPaid
	if err := repo.Save(ctx, rec); err != nil {
		t.Fatalf("Save: %v", err)
	}

	rows, err := repo.ListByBorrower(ctx, rec.BorrowerID)
	if err != nil {
		t.Fatalf("ListByBorrower: %v", err)
	}
	if len(rows) != 1 || rows[0].Balance != 0 || rows[0].Status != domain.StatusPaid {
		t.Fatalf("settled row not persisted: %+v", rows)
	}
}

func TestCreditListByBorrower_NewestFirst(t *testing.T) {
	db := openTestDB(t)
	repo := NewCreditRepository(db)
	ctx := context.Background()

	borrower := id.NewID32()
	base := time.Now().UTC().Add(-2 * time.Hour)
	for i := 0; i < 3; i++ {
		rec := makeRecord(borrower, id.NewID32(), domain.StatusApproved)
		rec.Date = base.Add(time.Duration(i) * time.Hour)
		rec.LoanAmount = float64(100 * (i + 1))
		if err := repo.Create(ctx, rec); err != nil {
			t.Fatalf("Create %d: %v", i, err)
		}
	}

	rows, err := repo.ListByBorrower(ctx, borrower)
	if err != nil {
		t.Fatalf("ListByBorrower: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("want 3 rows, got %d", len(rows))
	}
	if rows[0].LoanAmount != 300 || rows[2].LoanAmount != 100 {
		t.Fatalf("order mismatch: %+v", rows)
	}
}
