package authorization

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ticketdesk/internal/shared/constants"
)

// RequireAdmin aborts the request with 403 unless the authenticated
// principal carries the admin role. It must run after the auth middleware.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		userRole := c.GetString(constants.ContextKeyUserRole)
		if userRole != string(RoleAdmin) {
			c.JSON(http.StatusForbidden, gin.H{
				"error": "admin access required",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

// CanAccessResourceByOwnerID reports whether a principal may act on a
// resource owned by resourceOwnerID. Admins may act on any resource.
func CanAccessResourceByOwnerID(userID uint, userRole UserRole, resourceOwnerID uint) bool {
	if userRole.IsAdmin() {
		return true
	}
	return userID == resourceOwnerID
}
