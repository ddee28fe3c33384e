package middleware

import (
	"net/http" // HTTP status codes

	"bankportal/internal/service" // Account resolution
	"bankportal/internal/session" // Session store

	"github.com/gin-gonic/gin" // Gin web framework
)

// Context keys set by SessionAuth for downstream handlers.
const (
	CtxAccountID = "accountID" // uint account ID
	CtxAccount   = "account"   // *domain.Account
)

// SessionAuth resolves the session cookie to an account and stores it in the
// request context. A session whose account no longer exists is destroyed and
// the caller is treated as logged out.
func SessionAuth(sessions session.Sessions, accounts service.AccountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(session.CookieName) // Read the session cookie
		if err != nil || token == "" {
			// No session at all
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Please login to continue."})
			return
		}
		accountID, ok, err := sessions.Get(c.Request.Context(), token)
		if err != nil || !ok {
			// Unknown or expired session
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Please login to continue."})
			return
		}
		account, err := accounts.Get(c.Request.Context(), accountID)
		if err != nil {
			// The account behind the session is gone; flush the session
			_ = sessions.Destroy(c.Request.Context(), token)
			c.SetCookie(session.CookieName, "", -1, "/", "", false, true)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Session expired. Please login again."})
			return
		}
		c.Set(CtxAccountID, account.ID) // Store account ID in context
		c.Set(CtxAccount, account)      // Store account in context
		c.Next()                        // Proceed to the next handler
	}
}
