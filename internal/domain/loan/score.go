package loan

import "math"

// CreditScore is a 0-100 heuristic over a borrower's full loan set: the
// average of a payment-history component (share of all requested amounts
// already repaid) and a remaining-debt component, each clamped to [0,100]
// before averaging.
//
// Every loan counts regardless of status. A borrower whose applications
// were all rejected therefore scores as if they carried unpaid debt; this
// mirrors the historical formula and must not be "fixed" by filtering on
// status.
func CreditScore(loans []Loan) int {
	if len(loans) == 0 {
		return 0
	}

	var totalAmount, totalPaid float64
	for _, l := range loans {
		totalAmount += l.Amount
		totalPaid += l.PaidAmount
	}
	totalRemaining := totalAmount - totalPaid

	paymentHistory := math.Min(100, totalPaid/totalAmount*100)
	remainingDebt := math.Max(0, 100-totalRemaining/totalAmount*100)

	return int(math.Round((paymentHistory + remainingDebt) / 2))
}
