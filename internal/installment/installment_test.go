package installment

import (
	"math"
	"testing"
)

func TestCalculateWorkedExample(t *testing.T) {
	// 200k price, 20% down, 12% annual over 5 years:
	// principal 160000, monthly rate 0.01, 60 payments.
	res := Calculate(Inputs{Price: 200000, DownPaymentPercent: 20, AnnualInterestRate: 12, TenureYears: 5})

	if res.DownPayment != 40000 {
		t.Fatalf("expected down payment 40000, got %v", res.DownPayment)
	}
	if res.Principal != 160000 {
		t.Fatalf("expected principal 160000, got %v", res.Principal)
	}
	if math.Abs(res.MonthlyPayment-3559.11) > 0.02 {
		t.Fatalf("expected monthly payment ~3559.11, got %v", res.MonthlyPayment)
	}

	// The payment must satisfy the annuity identity
	// P = M * (1 - (1+r)^-n) / r for r=0.01, n=60.
	back := res.MonthlyPayment * (1 - math.Pow(1.01, -60)) / 0.01
	if math.Abs(back-res.Principal)/res.Principal > 1e-9 {
		t.Fatalf("payment does not amortize the principal: got %v, want %v", back, res.Principal)
	}
}

func TestCalculateZeroInterest(t *testing.T) {
	res := Calculate(Inputs{Price: 120000, DownPaymentPercent: 0, AnnualInterestRate: 0, TenureYears: 10})

	if res.MonthlyPayment != 1000 {
		t.Fatalf("expected monthly payment 1000, got %v", res.MonthlyPayment)
	}
	if res.TotalInterest != 0 {
		t.Fatalf("expected zero interest, got %v", res.TotalInterest)
	}
	if got := res.MonthlyPayment * 120; got != res.Principal {
		t.Fatalf("payments should repay the principal exactly, got %v for %v", got, res.Principal)
	}
}

func TestCalculateFullDownPayment(t *testing.T) {
	res := Calculate(Inputs{Price: 500000, DownPaymentPercent: 100, AnnualInterestRate: 12, TenureYears: 5})

	if res.MonthlyPayment != 0 {
		t.Fatalf("expected no monthly payment, got %v", res.MonthlyPayment)
	}
	if res.TotalAmount != 500000 {
		t.Fatalf("expected total to equal price, got %v", res.TotalAmount)
	}
	if res.TotalInterest != 0 {
		t.Fatalf("expected zero interest, got %v", res.TotalInterest)
	}
}

func TestCalculateZeroPrice(t *testing.T) {
	res := Calculate(Inputs{Price: 0, DownPaymentPercent: 20, AnnualInterestRate: 12, TenureYears: 5})
	if res.MonthlyPayment != 0 || res.TotalAmount != 0 || res.TotalInterest != 0 {
		t.Fatalf("expected all-zero result for zero price, got %+v", res)
	}
}

func TestCalculateConservation(t *testing.T) {
	cases := []struct {
		name string
		in   Inputs
	}{
		{"typical", Inputs{Price: 200000, DownPaymentPercent: 20, AnnualInterestRate: 12, TenureYears: 5}},
		{"no down payment", Inputs{Price: 350000, DownPaymentPercent: 0, AnnualInterestRate: 18, TenureYears: 7}},
		{"high down payment", Inputs{Price: 90000, DownPaymentPercent: 80, AnnualInterestRate: 5.5, TenureYears: 3}},
		{"zero rate", Inputs{Price: 75000, DownPaymentPercent: 10, AnnualInterestRate: 0, TenureYears: 4}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := Calculate(tc.in)
			n := float64(tc.in.TenureYears * 12)

			want := res.DownPayment + res.MonthlyPayment*n
			if rel := math.Abs(res.TotalAmount-want) / math.Max(want, 1); rel > 1e-9 {
				t.Fatalf("total %v does not equal down payment plus payments %v", res.TotalAmount, want)
			}

			wantInterest := res.MonthlyPayment*n - res.Principal
			if rel := math.Abs(res.TotalInterest-wantInterest) / math.Max(math.Abs(wantInterest), 1); rel > 1e-9 {
				t.Fatalf("interest %v does not equal repaid minus principal %v", res.TotalInterest, wantInterest)
			}
		})
	}
}

func TestCalculateDeterministic(t *testing.T) {
	in := Inputs{Price: 123456.78, DownPaymentPercent: 15, AnnualInterestRate: 9.75, TenureYears: 6}
	first := Calculate(in)
	second := Calculate(in)
	if first != second {
		t.Fatalf("expected identical results, got %+v and %+v", first, second)
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name string
		in   Inputs
		want error
	}{
		{"valid", Inputs{Price: 100, DownPaymentPercent: 10, AnnualInterestRate: 5, TenureYears: 1}, nil},
		{"negative price", Inputs{Price: -1, DownPaymentPercent: 10, AnnualInterestRate: 5, TenureYears: 1}, ErrNegativePrice},
		{"percent over 100", Inputs{Price: 100, DownPaymentPercent: 101, AnnualInterestRate: 5, TenureYears: 1}, ErrInvalidPercent},
		{"negative rate", Inputs{Price: 100, DownPaymentPercent: 10, AnnualInterestRate: -5, TenureYears: 1}, ErrNegativeRate},
		{"zero tenure", Inputs{Price: 100, DownPaymentPercent: 10, AnnualInterestRate: 5, TenureYears: 0}, ErrInvalidTenure},
		{"nan price", Inputs{Price: math.NaN(), DownPaymentPercent: 10, AnnualInterestRate: 5, TenureYears: 1}, ErrNonFiniteInput},
		{"inf rate", Inputs{Price: 100, DownPaymentPercent: 10, AnnualInterestRate: math.Inf(1), TenureYears: 1}, ErrNonFiniteInput},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.in.Validate(); got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}
