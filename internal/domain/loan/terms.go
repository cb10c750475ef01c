package loan

import "math"

// Terms are the repayment figures fixed when a lender approves a loan.
type Terms struct {
	MonthlyPayment float64
	TotalAmount    float64
}

// Round2 rounds to the cent, half away from zero.
func Round2(v float64) float64 { return math.Round(v*100) / 100 }

// ComputeTerms applies the standard annuity formula
//
//	PMT = P * (r * (1+r)^n) / ((1+r)^n - 1)
//
// over the amortized principal (amount minus down payment), with r the
// monthly rate and n the term in months. A zero rate degenerates to equal
// installments. Both figures are rounded to cents before persisting, and
// the total is the rounded installment times the term so the two stay
// consistent downstream.
func ComputeTerms(principal, annualRatePercent float64, durationMonths int) Terms {
	r := annualRatePercent / 100 / 12
	n := float64(durationMonths)

	var pmt float64
	if r == 0 {
		pmt = principal / n
	} else {
		pow := math.Pow(1+r, n)
		pmt = principal * (r * pow) / (pow - 1)
	}

	monthly := Round2(pmt)
	return Terms{
		MonthlyPayment: monthly,
		TotalAmount:    Round2(monthly * n),
	}
}

// MonthlyExposure sums the monthly payments of a borrower's loans that are
// approved and not fully repaid. Computed at application time for parity
// with historical behavior; the amount cap is gated on yearly net salary,
// not on this figure.
func MonthlyExposure(loans []Loan) float64 {
	var total float64
	for _, l := range loans {
		if l.Active() && l.MonthlyPayment != nil {
			total += *l.MonthlyPayment
		}
	}
	return total
}
