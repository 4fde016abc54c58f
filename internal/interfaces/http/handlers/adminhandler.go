package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ticketdesk/internal/application/user/usecases"
	"ticketdesk/internal/shared/logger"
	"ticketdesk/internal/shared/utils"
)

type AdminHandler struct {
	setRoleUC usecases.SetRoleExecutor
	logger    logger.Interface
}

func NewAdminHandler(setRoleUC usecases.SetRoleExecutor) *AdminHandler {
	return &AdminHandler{
		setRoleUC: setRoleUC,
		logger:    logger.NewLogger(),
	}
}

// SetUserRole handles PUT /admin/users/:id/role
func (h *AdminHandler) SetUserRole(c *gin.Context) {
	p, ok := principalFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
		return
	}

	userID, err := utils.ParseIDParam(c, "id", "user")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req SetRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for set role", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.setRoleUC.Execute(c.Request.Context(), usecases.SetRoleCommand{
		UserID:  userID,
		NewRole: req.Role,
		ActorID: p.UserID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "User role updated", result)
}
