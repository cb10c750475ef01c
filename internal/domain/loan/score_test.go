package loan

import "testing"

func TestCreditScore_NoLoans(t *testing.T) {
	if got := CreditScore(nil); got != 0 {
		t.Fatalf("CreditScore(nil): want 0, got %d", got)
	}
	if got := CreditScore([]Loan{}); got != 0 {
		t.Fatalf("CreditScore(empty): want 0, got %d", got)
	}
}

func TestCreditScore_FullyRepaid(t *testing.T) {
	loans := []Loan{
		{Status: StatusPaid, Amount: 1000, PaidAmount: 1000},
		{Status: StatusPaid, Amount: 500, PaidAmount: 500},
	}
	if got := CreditScore(loans); got != 100 {
		t.Fatalf("fully repaid: want 100, got %d", got)
	}
}

func TestCreditScore_NothingRepaid(t *testing.T) {
	loans := []Loan{
		{Status: StatusApproved, Amount: 1000, PaidAmount: 0},
	}
	// payment history 0, remaining-debt component 0 → score 0.
	if got := CreditScore(loans); got != 0 {
		t.Fatalf("nothing repaid: want 0, got %d", got)
	}
}

func TestCreditScore_HalfRepaid(t *testing.T) {
	loans := []Loan{
		{Status: StatusApproved, Amount: 2000, PaidAmount: 1000},
	}
	// history 50, remaining 50 → 50.
	if got := CreditScore(loans); got != 50 {
		t.Fatalf("half repaid: want 50, got %d", got)
	}
}

func TestCreditScore_CountsAllStatuses(t *testing.T) {
	// A rejected application inflates the denominator even though no money
	// moved. This is the documented behavior, not an accident.
	repaidOnly := []Loan{{Status: StatusPaid, Amount: 1000, PaidAmount: 1000}}
	withRejected := append(repaidOnly, Loan{Status: StatusRejected, Amount: 1000, PaidAmount: 0})

	if got := CreditScore(repaidOnly); got != 100 {
		t.Fatalf("repaid only: want 100, got %d", got)
	}
	if got := CreditScore(withRejected); got != 50 {
		t.Fatalf("with rejected: want 50, got %d", got)
	}
}

func TestCreditScore_Bounds(t *testing.T) {
	// Score stays in [0,100] even for odd paid amounts.
	cases := [][]Loan{
		{{Amount: 100, PaidAmount: 100}},
		{{Amount: 100, PaidAmount: 0}},
		{{Amount: 100, PaidAmount: 37}},
		{{Amount: 100, PaidAmount: 99.99}},
	}
	for i, loans := range cases {
		got := CreditScore(loans)
		if got < 0 || got > 100 {
			t.Fatalf("case %d: score out of range: %d", i, got)
		}
	}
}
