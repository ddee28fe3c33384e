package api

import (
	"errors"
	"net/http" // HTTP status codes
	"strings"  // String manipulation

	"bankportal/internal/service" // Workflow layer
	"bankportal/internal/session" // Session store

	"github.com/gin-gonic/gin" // Gin web framework
)

// RegisterHandler opens a new account from the registration form
func RegisterHandler(accounts service.AccountService) gin.HandlerFunc {
	return func(c *gin.Context) {
		fullname := strings.TrimSpace(c.PostForm("fullname"))
		email := strings.TrimSpace(c.PostForm("email"))
		password := c.PostForm("password")

		// All three fields are required; nothing is created otherwise
		if fullname == "" || email == "" || password == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "All fields are required."})
			return
		}
		_, err := accounts.Register(c.Request.Context(), fullname, email, password)
		if err != nil {
			if errors.Is(err, service.ErrEmailTaken) {
				// Duplicate normalized email, no new record
				c.JSON(http.StatusBadRequest, gin.H{"error": "Email already exists."})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create account"})
			return
		}
		// Registration does not log the account in; the client logs in next
		c.JSON(http.StatusCreated, gin.H{"message": "Account created successfully. Please login."})
	}
}

// LoginHandler checks credentials and opens a server-side session
func LoginHandler(accounts service.AccountService, sessions session.Sessions, cookieMaxAge int) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := strings.TrimSpace(c.PostForm("email"))
		password := strings.TrimSpace(c.PostForm("password"))

		if email == "" || password == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Please enter both email and password."})
			return
		}
		account, err := accounts.Authenticate(c.Request.Context(), email, password)
		if err != nil {
			// Identical message for an unknown email and a wrong password
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password."})
			return
		}
		token, err := sessions.Create(c.Request.Context(), account.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start session"})
			return
		}
		// HttpOnly session cookie; the token itself carries no identity
		c.SetCookie(session.CookieName, token, cookieMaxAge, "/", "", false, true)
		c.JSON(http.StatusOK, gin.H{"message": "Welcome back, " + account.FullName + "!"})
	}
}

// LogoutHandler destroys the session unconditionally
func LogoutHandler(sessions session.Sessions) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token, err := c.Cookie(session.CookieName); err == nil && token != "" {
			_ = sessions.Destroy(c.Request.Context(), token) // Drop the server-side session
		}
		c.SetCookie(session.CookieName, "", -1, "/", "", false, true) // Expire the cookie
		c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully."})
	}
}
