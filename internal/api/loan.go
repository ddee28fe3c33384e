package api

import (
	"errors"
	"net/http" // HTTP status codes
	"strings"  // String manipulation

	"bankportal/internal/service" // Workflow layer
	"bankportal/internal/storage" // Upload store

	"github.com/gin-gonic/gin"      // Gin web framework
	"github.com/shopspring/decimal" // Exact decimal arithmetic
)

// LoanHandler takes a loan application and opens its upfront fee
func LoanHandler(loans service.LoanService, files storage.FileStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		account, ok := currentAccount(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Please login to continue."})
			return
		}
		in := service.LoanInput{
			FullName:       strings.TrimSpace(c.PostForm("full_name")),
			Email:          strings.TrimSpace(c.PostForm("email")),
			Phone:          strings.TrimSpace(c.PostForm("phone")),
			Address:        strings.TrimSpace(c.PostForm("address")),
			EmploymentInfo: strings.TrimSpace(c.PostForm("employment_info")),
			LoanPurpose:    strings.TrimSpace(c.PostForm("loan_purpose")),
		}
		loanAmountRaw := strings.TrimSpace(c.PostForm("loan_amount"))
		incomeRaw := strings.TrimSpace(c.PostForm("income"))

		if in.FullName == "" || in.Email == "" || in.Phone == "" || in.Address == "" ||
			in.EmploymentInfo == "" || loanAmountRaw == "" || in.LoanPurpose == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "All fields are required."})
			return
		}
		// Monetary fields must parse to exact decimals before anything is
		// written
		loanAmount, err := decimal.NewFromString(loanAmountRaw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid loan amount entered."})
			return
		}
		in.LoanAmount = loanAmount
		if incomeRaw != "" {
			income, err := decimal.NewFromString(incomeRaw)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid income entered."})
				return
			}
			in.Income = income
		}
		// Identity documents are optional uploads
		govURL, ok := saveOptional(c, files, "government_id")
		if !ok {
			return
		}
		in.GovernmentIDURL = govURL
		faceURL, ok := saveOptional(c, files, "face_photo")
		if !ok {
			return
		}
		in.FacePhotoURL = faceURL
		loan, fee, err := loans.Apply(c.Request.Context(), account.ID, in)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit application"})
			return
		}
		// The fee row exists from the same transaction; the client follows
		// up on /loan/{id}/fee/
		c.JSON(http.StatusCreated, gin.H{
			"message":     "Loan application submitted.",
			"loan":        loan,
			"upfront_fee": fee,
		})
	}
}

// UpfrontFeeHandler attaches proof of payment to the fee of an owned loan
func UpfrontFeeHandler(loans service.LoanService, files storage.FileStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		account, ok := currentAccount(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Please login to continue."})
			return
		}
		loanID, ok := idParam(c, "id")
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
			return
		}
		fh, err := c.FormFile("proof_of_payment")
		if err != nil || fh == nil || fh.Size == 0 {
			// A non-empty upload is required; nothing changes otherwise
			c.JSON(http.StatusBadRequest, gin.H{"error": "Please upload your proof of payment."})
			return
		}
		url, err := files.Save(fh)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store proof of payment"})
			return
		}
		fee, err := loans.SubmitProof(c.Request.Context(), account.ID, loanID, url)
		if err != nil {
			if errors.Is(err, service.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit proof of payment"})
			return
		}
		// The fee status is untouched; confirming payment is an admin action
		c.JSON(http.StatusOK, gin.H{
			"message":     "Proof of payment submitted successfully!",
			"upfront_fee": fee,
		})
	}
}

// LoanStatusHandler is the owner-scoped view of a loan and its fee
func LoanStatusHandler(loans service.LoanService) gin.HandlerFunc {
	return func(c *gin.Context) {
		account, ok := currentAccount(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Please login to continue."})
			return
		}
		loanID, ok := idParam(c, "id")
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
			return
		}
		loan, fee, err := loans.Status(c.Request.Context(), account.ID, loanID)
		if err != nil {
			if errors.Is(err, service.ErrNotFound) {
				// Owner mismatch reads the same as a missing record
				c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load loan"})
			return
		}
		// fee.TransactionID is visible here but only ever written by admin
		c.JSON(http.StatusOK, gin.H{"loan": loan, "upfront_fee": fee})
	}
}

// saveOptional stores an optional upload field. The second return value is
// false when storing an actually present file failed and a response has
// already been written.
func saveOptional(c *gin.Context, files storage.FileStore, field string) (string, bool) {
	fh, err := c.FormFile(field)
	if err != nil || fh == nil {
		return "", true // Absent is fine
	}
	url, err := files.Save(fh)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store upload"})
		return "", false
	}
	return url, true
}
