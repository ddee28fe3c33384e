package api

import (
	"context"  // Context for Redis operations
	"errors"   // Sentinel error checks
	"net/http" // HTTP status codes
	"strconv"  // Cache key assembly
	"time"     // Cache TTL

	"bankportal/internal/domain"  // Role constants
	"bankportal/internal/service" // Workflow layer
	"bankportal/internal/utils"   // Redis cache + JWT helpers

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
)

// listCacheTTL is how long admin review lists are served from Redis.
const listCacheTTL = 60 * time.Second

// AdminLoginRequest is the staff login body
type AdminLoginRequest struct {
	Email    string `json:"email" binding:"required"`    // Staff email
	Password string `json:"password" binding:"required"` // Staff password
}

// AdminLoginHandler authenticates a staff account and returns a bearer token
func AdminLoginHandler(accounts service.AccountService, jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AdminLoginRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		account, err := accounts.Authenticate(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}
		if account.Role != domain.RoleAdmin {
			c.JSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}
		token, err := utils.GenerateJWT(account.ID, jwtSecret)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"token": token})
	}
}

// listPage is the cached shape of an admin review list page.
type listPage[T any] struct {
	Items      []T   `json:"items"`       // One page of records
	Page       int   `json:"page"`        // Current page
	PageSize   int   `json:"page_size"`   // Page size
	Total      int64 `json:"total"`       // Total matching records
	TotalPages int   `json:"total_pages"` // Total pages
}

// adminListHandler serves a paginated, optionally status-filtered review
// list, cached in Redis for listCacheTTL.
func adminListHandler[T any](rdb *redis.Client, kind string, fetch func(ctx context.Context, status string, offset, limit int) ([]T, int64, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.Background() // Use background context for Redis
		status := c.Query("status") // Optional status filter
		page, pageSize := pageParams(c)
		// Create a cache key based on filter and pagination parameters
		cacheKey := "admin:" + kind + ":status=" + status +
			":page=" + strconv.Itoa(page) + ":size=" + strconv.Itoa(pageSize)
		var cached listPage[T]
		// If cached data found, return it
		found, err := utils.GetCache(ctx, rdb, cacheKey, &cached)
		if err == nil && found {
			c.JSON(http.StatusOK, gin.H{kind: cached.Items, "page": cached.Page,
				"page_size": cached.PageSize, "total": cached.Total,
				"total_pages": cached.TotalPages, "cached": true})
			return
		}
		offset := (page - 1) * pageSize // Calculate offset for pagination
		items, total, err := fetch(c.Request.Context(), status, offset, pageSize)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch " + kind})
			return
		}
		totalPages := (int(total) + pageSize - 1) / pageSize // Calculate total pages
		resp := listPage[T]{Items: items, Page: page, PageSize: pageSize, Total: total, TotalPages: totalPages}
		// Cache the response for future requests
		_ = utils.SetCache(ctx, rdb, cacheKey, resp, listCacheTTL)
		c.JSON(http.StatusOK, gin.H{kind: resp.Items, "page": resp.Page,
			"page_size": resp.PageSize, "total": resp.Total,
			"total_pages": resp.TotalPages, "cached": false})
	}
}

// ListLoansHandler returns the loan review list
func ListLoansHandler(admin service.AdminService, rdb *redis.Client) gin.HandlerFunc {
	return adminListHandler(rdb, "loans", admin.ListLoans)
}

// ListLinkedBanksHandler returns the linked bank review list
func ListLinkedBanksHandler(admin service.AdminService, rdb *redis.Client) gin.HandlerFunc {
	return adminListHandler(rdb, "linked_banks", admin.ListLinkedBanks)
}

// ListPYUSDDepositsHandler returns the stablecoin deposit review list
func ListPYUSDDepositsHandler(admin service.AdminService, rdb *redis.Client) gin.HandlerFunc {
	return adminListHandler(rdb, "pyusd_deposits", admin.ListPYUSDDeposits)
}

// ListDepositsHandler returns the legacy fiat deposit review list
func ListDepositsHandler(admin service.AdminService, rdb *redis.Client) gin.HandlerFunc {
	return adminListHandler(rdb, "deposits", admin.ListDeposits)
}

// StatusRequest is the body of a status mutation
type StatusRequest struct {
	Status string `json:"status" binding:"required"` // New status value
}

// listInvalidator drops every cached page of one review list. Invalidation is
// best effort; a failed delete only leaves stale pages until the TTL runs out.
func listInvalidator(rdb *redis.Client, kind string) func() {
	return func() {
		_ = utils.DeleteCacheByPrefix(context.Background(), rdb, "admin:"+kind+":")
	}
}

// setStatusHandler runs one status mutation against the given setter, then
// invalidates the matching review list cache when there is one. The
// notification side effect, when the entity carries one, happens inside the
// service after the write.
func setStatusHandler(set func(ctx context.Context, id uint, status string) error, invalidate func()) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c, "id")
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
			return
		}
		var req StatusRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		if err := set(c.Request.Context(), id, req.Status); err != nil {
			switch {
			case errors.Is(err, service.ErrInvalidStatus):
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
			case errors.Is(err, service.ErrNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update status"})
			}
			return
		}
		if invalidate != nil {
			invalidate() // Drop the review list pages this write staled
		}
		c.JSON(http.StatusOK, gin.H{"message": "Status updated"})
	}
}

// SetLinkedBankStatusHandler mutates a linked bank's status
func SetLinkedBankStatusHandler(admin service.AdminService, rdb *redis.Client) gin.HandlerFunc {
	return setStatusHandler(admin.SetLinkedBankStatus, listInvalidator(rdb, "linked_banks"))
}

// SetLoanStatusHandler mutates a loan application's status
func SetLoanStatusHandler(admin service.AdminService, rdb *redis.Client) gin.HandlerFunc {
	return setStatusHandler(admin.SetLoanStatus, listInvalidator(rdb, "loans"))
}

// SetFeeStatusHandler mutates an upfront fee's status. Fees have no list
// endpoint, so there is no cache to invalidate.
func SetFeeStatusHandler(admin service.AdminService) gin.HandlerFunc {
	return setStatusHandler(admin.SetFeeStatus, nil)
}

// SetPYUSDDepositStatusHandler mutates a stablecoin deposit's status
func SetPYUSDDepositStatusHandler(admin service.AdminService, rdb *redis.Client) gin.HandlerFunc {
	return setStatusHandler(admin.SetPYUSDDepositStatus, listInvalidator(rdb, "pyusd_deposits"))
}

// SetDepositStatusHandler mutates a legacy fiat deposit's status
func SetDepositStatusHandler(admin service.AdminService, rdb *redis.Client) gin.HandlerFunc {
	return setStatusHandler(admin.SetDepositStatus, listInvalidator(rdb, "deposits"))
}

// TransactionIDRequest is the body of a fee reference write
type TransactionIDRequest struct {
	TransactionID string `json:"transaction_id" binding:"required"` // Payment reference
}

// SetFeeTransactionIDHandler records the write-once payment reference on a
// fee. Overwriting a set reference is rejected.
func SetFeeTransactionIDHandler(admin service.AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c, "id")
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
			return
		}
		var req TransactionIDRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		err := admin.SetFeeTransactionID(c.Request.Context(), id, req.TransactionID)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrTransactionRefSet):
				c.JSON(http.StatusConflict, gin.H{"error": "Transaction reference already set"})
			case errors.Is(err, service.ErrNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update transaction reference"})
			}
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Transaction reference recorded"})
	}
}
