package api

import (
	"strconv"

	"bankportal/internal/domain"
	"bankportal/internal/middleware"

	"github.com/gin-gonic/gin"
)

// currentAccount returns the account resolved by the session middleware.
func currentAccount(c *gin.Context) (*domain.Account, bool) {
	v, exists := c.Get(middleware.CtxAccount)
	if !exists {
		return nil, false
	}
	account, ok := v.(*domain.Account)
	return account, ok
}

// idParam parses a numeric path parameter.
func idParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// pageParams reads page/page_size query values with the usual bounds.
func pageParams(c *gin.Context) (page, pageSize int) {
	page = 1      // Default page
	pageSize = 20 // Default page size
	if p := c.Query("page"); p != "" {
		// Convert page to integer
		if v, err := strconv.Atoi(p); err == nil && v > 0 {
			page = v // Set page if valid
		}
	}
	if ps := c.Query("page_size"); ps != "" {
		// Convert page_size to integer
		if v, err := strconv.Atoi(ps); err == nil && v > 0 && v <= 100 {
			pageSize = v // Set page size if valid
		}
	}
	return page, pageSize
}
