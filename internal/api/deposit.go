package api

import (
	"net/http" // HTTP status codes
	"strings"  // String manipulation

	"bankportal/internal/config"  // Receiving address configuration
	"bankportal/internal/service" // Workflow layer

	"github.com/gin-gonic/gin"      // Gin web framework
	"github.com/shopspring/decimal" // Exact decimal arithmetic
)

// DepositPYUSDInfoHandler returns the platform's receiving address. The
// address is configuration, not a database row, so there is exactly one.
func DepositPYUSDInfoHandler(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"wallet": gin.H{
				"paypal_id": cfg.PYUSDAddress, // Where to send the stablecoin
				"note":      cfg.PYUSDNote,    // Optional operator note
			},
		})
	}
}

// DepositPYUSDHandler records a claimed stablecoin deposit for review
func DepositPYUSDHandler(deposits service.DepositService) gin.HandlerFunc {
	return func(c *gin.Context) {
		account, ok := currentAccount(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Please login to continue."})
			return
		}
		paypalID := strings.TrimSpace(c.PostForm("paypal_id"))
		amountRaw := strings.TrimSpace(c.PostForm("amount"))
		network := strings.TrimSpace(c.PostForm("network"))

		if paypalID == "" || amountRaw == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "PayPal ID and amount are required."})
			return
		}
		// The amount must parse to a positive exact decimal; on bad input no
		// partial state is created
		amount, err := decimal.NewFromString(amountRaw)
		if err != nil || !amount.IsPositive() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid amount entered."})
			return
		}
		dep, err := deposits.SubmitPYUSD(c.Request.Context(), account.ID, paypalID, amount, network)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit deposit"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{
			"message": "Deposit submitted successfully (Pending). Admin will review soon.",
			"deposit": dep,
		})
	}
}

// DepositStatusHandler returns the account's stablecoin deposit history
func DepositStatusHandler(deposits service.DepositService) gin.HandlerFunc {
	return func(c *gin.Context) {
		account, ok := currentAccount(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Please login to continue."})
			return
		}
		deps, err := deposits.History(c.Request.Context(), account.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load deposits"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"deposits": deps})
	}
}
