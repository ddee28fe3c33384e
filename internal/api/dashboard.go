package api

import (
	"net/http" // HTTP status codes

	"bankportal/internal/service" // Workflow layer

	"github.com/gin-gonic/gin" // Gin web framework
)

// DashboardHandler returns the account's transactions and linked banks
func DashboardHandler(banks service.BankService) gin.HandlerFunc {
	return func(c *gin.Context) {
		account, ok := currentAccount(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Please login to continue."})
			return
		}
		d, err := banks.Dashboard(c.Request.Context(), account.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dashboard"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"account":      account,        // Current account (password never serialized)
			"transactions": d.Transactions, // Sent and received, newest first
			"linked_banks": d.LinkedBanks,  // Newest first
		})
	}
}
