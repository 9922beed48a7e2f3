// Package installment computes fixed-rate, fully-amortizing loan schedules
// for listing prices shown on the site.
package installment

import (
	"errors"
	"math"
)

type Inputs struct {
	Price              float64 `json:"price"`
	DownPaymentPercent float64 `json:"down_payment_percent"`
	AnnualInterestRate float64 `json:"annual_interest_rate"`
	TenureYears        int     `json:"tenure_years"`
}

type Result struct {
	DownPayment    float64 `json:"down_payment"`
	Principal      float64 `json:"principal"`
	MonthlyPayment float64 `json:"monthly_payment"`
	TotalAmount    float64 `json:"total_amount"`
	TotalInterest  float64 `json:"total_interest"`
}

var (
	ErrNegativePrice  = errors.New("installment: price must be >= 0")
	ErrInvalidPercent = errors.New("installment: down payment percent must be in [0, 100]")
	ErrNegativeRate   = errors.New("installment: interest rate must be >= 0")
	ErrInvalidTenure  = errors.New("installment: tenure must be > 0 years")
	ErrNonFiniteInput = errors.New("installment: inputs must be finite numbers")
)

// Validate rejects inputs outside the engine's domain. This is the boundary
// check; Calculate itself never fails on validated inputs.
func (in Inputs) Validate() error {
	if math.IsNaN(in.Price) || math.IsInf(in.Price, 0) ||
		math.IsNaN(in.DownPaymentPercent) || math.IsInf(in.DownPaymentPercent, 0) ||
		math.IsNaN(in.AnnualInterestRate) || math.IsInf(in.AnnualInterestRate, 0) {
		return ErrNonFiniteInput
	}
	if in.Price < 0 {
		return ErrNegativePrice
	}
	if in.DownPaymentPercent < 0 || in.DownPaymentPercent > 100 {
		return ErrInvalidPercent
	}
	if in.AnnualInterestRate < 0 {
		return ErrNegativeRate
	}
	if in.TenureYears <= 0 {
		return ErrInvalidTenure
	}
	return nil
}

// Calculate returns the fixed monthly payment, total repayment and total
// interest under the standard annuity formula:
//
//	M = P * r(1+r)^n / ((1+r)^n - 1)
//
// where P is the financed principal, r the monthly rate and n the number of
// monthly payments. A zero rate degenerates to simple division and a full
// down payment (or zero price) yields no monthly payment at all.
func Calculate(in Inputs) Result {
	downPayment := in.Price * in.DownPaymentPercent / 100
	principal := in.Price - downPayment
	n := float64(in.TenureYears * 12)

	if principal <= 0 {
		return Result{
			DownPayment:    downPayment,
			Principal:      0,
			MonthlyPayment: 0,
			TotalAmount:    in.Price,
			TotalInterest:  0,
		}
	}

	r := in.AnnualInterestRate / 12 / 100

	var monthly float64
	if r == 0 {
		monthly = principal / n
	} else {
		factor := math.Pow(1+r, n)
		monthly = principal * (r * factor) / (factor - 1)
	}

	repaid := monthly * n
	return Result{
		DownPayment:    downPayment,
		Principal:      principal,
		MonthlyPayment: monthly,
		TotalAmount:    repaid + downPayment,
		TotalInterest:  repaid - principal,
	}
}
