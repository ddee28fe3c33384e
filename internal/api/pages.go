package api

import (
	"net/http" // HTTP status codes

	"github.com/gin-gonic/gin" // Gin web framework
)

// IndexHandler is the landing payload
func IndexHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"name":    "bankportal",
			"message": "Open an account, link your bank, deposit PYUSD and apply for a loan.",
		})
	}
}

// SupportHandler is the static support payload
func SupportHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Contact support at the address on your account statement.",
		})
	}
}

// LoanTermsHandler is the static loan terms payload
func LoanTermsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"terms": []string{
				"An upfront fee of 20% of the requested amount is due before disbursement.",
				"The fee is paid out-of-band and verified by proof upload and administrative confirmation.",
				"Applications are reviewed manually and decided as Approved or Rejected.",
			},
		})
	}
}

// NotAvailableHandler serves the transfer and withdrawal stubs. These
// endpoints exist but mutate nothing; no workflow debits or credits an
// account balance.
func NotAvailableHandler(feature string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusNotImplemented, gin.H{"error": feature + " is not available yet."})
	}
}

// FiatDepositInfoHandler describes the legacy deposit path, which has no
// self-service submission; rows are reviewed through the admin API.
func FiatDepositInfoHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Fiat deposits are arranged with support and confirmed by an administrator.",
		})
	}
}
