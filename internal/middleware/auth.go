package middleware

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/mcastaneda/employment-cert-api/internal/constants"
)

// RequireAuth checks for a logged-in account id in the session and
// redirects anonymous requests to the login page.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		accountID := session.Get(constants.SessionKeyAccountID)

		if accountID == nil {
			c.Redirect(http.StatusSeeOther, "/login")
			c.Abort()
			return
		}

		// Store account ID in context for easy access in handlers
		c.Set(constants.SessionKeyAccountID, accountID)
		c.Next()
	}
}

// GetAccountID retrieves the current account ID from context
func GetAccountID(c *gin.Context) (uint64, bool) {
	accountID, exists := c.Get(constants.SessionKeyAccountID)
	if !exists {
		return 0, false
	}

	switch v := accountID.(type) {
	case uint64:
		return v, true
	case uint:
		return uint64(v), true
	case int:
		if v < 0 {
			return 0, false
		}
		return uint64(v), true
	default:
		return 0, false
	}
}
