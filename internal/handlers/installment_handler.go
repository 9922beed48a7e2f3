package handlers

import (
	"net/http"

	"clutchzone/internal/installment"
)

// InstallmentHandler exposes the financing calculator so the SPA and the
// admin back office share one implementation of the math.
type InstallmentHandler struct{}

func (h *InstallmentHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	in := installment.Inputs{
		Price:              queryFloat(r, "price"),
		DownPaymentPercent: queryFloat(r, "downPaymentPercent"),
		AnnualInterestRate: queryFloat(r, "annualInterestRate"),
		TenureYears:        queryInt(r, "tenureYears"),
	}
	if err := in.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, installment.Calculate(in))
}
