package handlers

import (
	"github.com/gin-gonic/gin"

	"ticketdesk/internal/shared/authorization"
	"ticketdesk/internal/shared/constants"
)

// principal is the caller identity derived from the verified token.
type principal struct {
	UserID   uint
	Username string
	Role     authorization.UserRole
}

// principalFromContext reads the identity stored by the auth middleware.
// The bool is false when the request did not pass through RequireAuth.
func principalFromContext(c *gin.Context) (principal, bool) {
	userIDVal, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return principal{}, false
	}
	userID, ok := userIDVal.(uint)
	if !ok || userID == 0 {
		return principal{}, false
	}

	username := c.GetString(constants.ContextKeyUsername)
	role := authorization.ParseUserRoleOrDefault(c.GetString(constants.ContextKeyUserRole))

	return principal{
		UserID:   userID,
		Username: username,
		Role:     role,
	}, true
}
