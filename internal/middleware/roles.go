package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Role gates never error: the wrong role is bounced to its own dashboard.

func RequireWorker() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.MustGet(ContextIsAdmin).(bool) {
			c.Redirect(http.StatusSeeOther, "/api/admin/dashboard")
			c.Abort()
			return
		}
		c.Next()
	}
}

func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !c.MustGet(ContextIsAdmin).(bool) {
			c.Redirect(http.StatusSeeOther, "/api/me/dashboard")
			c.Abort()
			return
		}
		c.Next()
	}
}
