package domain

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestUpfrontFeeAmount(t *testing.T) {
	tests := []struct {
		loanAmount string
		feeAmount  string
	}{
		{"1000.00", "200.00"},
		{"5000.00", "1000.00"},
		{"0", "0"},
		{"333.33", "66.666"},   // Exact, no binary rounding
		{"0.01", "0.002"},      // Sub-cent results stay exact
		{"123456.78", "24691.356"},
	}

	for _, tt := range tests {
		t.Run(tt.loanAmount, func(t *testing.T) {
			loan := decimal.RequireFromString(tt.loanAmount)
			want := decimal.RequireFromString(tt.feeAmount)

			got := UpfrontFeeAmount(loan)

			if !got.Equal(want) {
				t.Errorf("UpfrontFeeAmount(%s) = %s, want %s", tt.loanAmount, got, want)
			}
		})
	}
}

func TestValidReviewStatus(t *testing.T) {
	for _, s := range []string{StatusPending, StatusSuccessful, StatusFailed} {
		if !ValidReviewStatus(s) {
			t.Errorf("ValidReviewStatus(%q) = false, want true", s)
		}
	}
	for _, s := range []string{"", "pending", "Approved", "Done"} {
		if ValidReviewStatus(s) {
			t.Errorf("ValidReviewStatus(%q) = true, want false", s)
		}
	}
}

func TestValidLoanStatus(t *testing.T) {
	for _, s := range []string{LoanStatusPending, LoanStatusApproved, LoanStatusRejected} {
		if !ValidLoanStatus(s) {
			t.Errorf("ValidLoanStatus(%q) = false, want true", s)
		}
	}
	for _, s := range []string{"", "Successful", "approved"} {
		if ValidLoanStatus(s) {
			t.Errorf("ValidLoanStatus(%q) = true, want false", s)
		}
	}
}
