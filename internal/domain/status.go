package domain

// Review statuses shared by linked banks, upfront fees and deposits.
const (
	StatusPending    = "Pending"
	StatusSuccessful = "Successful"
	StatusFailed     = "Failed"
)

// Loan application statuses.
const (
	LoanStatusPending  = "Pending"
	LoanStatusApproved = "Approved"
	LoanStatusRejected = "Rejected"
)

// ValidReviewStatus reports whether s is an allowed review status.
// Any transition between allowed statuses is permitted; the set is closed,
// the transition graph is not.
func ValidReviewStatus(s string) bool {
	return s == StatusPending || s == StatusSuccessful || s == StatusFailed
}

// ValidLoanStatus reports whether s is an allowed loan status.
func ValidLoanStatus(s string) bool {
	return s == LoanStatusPending || s == LoanStatusApproved || s == LoanStatusRejected
}
