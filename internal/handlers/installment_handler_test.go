package handlers

import (
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"clutchzone/internal/installment"
)

func TestInstallmentCalculate(t *testing.T) {
	h := &InstallmentHandler{}

	req := httptest.NewRequest(http.MethodGet,
		"/api/installments/calculate?price=200000&downPaymentPercent=20&annualInterestRate=12&tenureYears=5", nil)
	rec := httptest.NewRecorder()

	h.Calculate(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200", rec.Code)
	}

	var result installment.Result
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if result.DownPayment != 40000 {
		t.Errorf("down payment = %v; want 40000", result.DownPayment)
	}
	if result.Principal != 160000 {
		t.Errorf("principal = %v; want 160000", result.Principal)
	}
	if math.Abs(result.MonthlyPayment-3559.11) > 0.02 {
		t.Errorf("monthly payment = %v; want about 3559.11", result.MonthlyPayment)
	}
}

func TestInstallmentCalculateRejectsBadInput(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{"negative price", "price=-1&downPaymentPercent=20&annualInterestRate=12&tenureYears=5"},
		{"percent over 100", "price=100&downPaymentPercent=101&annualInterestRate=12&tenureYears=5"},
		{"zero tenure", "price=100&downPaymentPercent=20&annualInterestRate=12&tenureYears=0"},
		{"missing everything", ""},
	}

	h := &InstallmentHandler{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/installments/calculate?"+tt.query, nil)
			rec := httptest.NewRecorder()

			h.Calculate(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d; want 400", rec.Code)
			}
		})
	}
}

func TestInstallmentCalculateZeroInterest(t *testing.T) {
	h := &InstallmentHandler{}

	req := httptest.NewRequest(http.MethodGet,
		"/api/installments/calculate?price=120000&downPaymentPercent=0&annualInterestRate=0&tenureYears=10", nil)
	rec := httptest.NewRecorder()

	h.Calculate(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200", rec.Code)
	}

	var result installment.Result
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if result.MonthlyPayment != 1000 {
		t.Errorf("monthly payment = %v; want 1000", result.MonthlyPayment)
	}
	if result.TotalInterest != 0 {
		t.Errorf("total interest = %v; want 0", result.TotalInterest)
	}
}
