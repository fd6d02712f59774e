package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// AuthzService is a local interface so the middleware does not depend on
// the authz package directly.
type AuthzService interface {
	Authorize(role, resource, action string) (bool, error)
}

// Authorize gates a route on an explicit (role, resource, action) check.
func Authorize(service AuthzService, resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString("role")
		if role == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing auth context"})
			c.Abort()
			return
		}

		allowed, err := service.Authorize(role, resource, action)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			c.Abort()
			return
		}

		if !allowed {
			c.JSON(http.StatusForbidden, gin.H{
				"error":    "forbidden",
				"message":  "You do not have permission to access this resource",
				"required": resource + ":" + action,
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
