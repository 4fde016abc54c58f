package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ticketdesk/internal/application/user/usecases"
	"ticketdesk/internal/shared/logger"
	"ticketdesk/internal/shared/utils"
)

type AuthHandler struct {
	registerUC usecases.RegisterExecutor
	loginUC    usecases.LoginExecutor
	logoutUC   usecases.LogoutExecutor
	logger     logger.Interface
}

func NewAuthHandler(
	registerUC usecases.RegisterExecutor,
	loginUC usecases.LoginExecutor,
	logoutUC usecases.LogoutExecutor,
) *AuthHandler {
	return &AuthHandler{
		registerUC: registerUC,
		loginUC:    loginUC,
		logoutUC:   logoutUC,
		logger:     logger.NewLogger(),
	}
}

// Register handles POST /auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for register", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.registerUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "User registered successfully")
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for login", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.loginUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Login successful", LoginResponse{
		Token:    result.Token,
		UserID:   result.UserID,
		Username: result.Username,
		Role:     result.Role,
	})
}

// Logout handles POST /auth/logout. Tokens are stateless; this endpoint
// acknowledges so clients can drop the token uniformly.
func (h *AuthHandler) Logout(c *gin.Context) {
	username := ""
	if p, ok := principalFromContext(c); ok {
		username = p.Username
	}

	result, err := h.logoutUC.Execute(c.Request.Context(), usecases.LogoutCommand{Username: username})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, result.Message, nil)
}

// Me handles GET /auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	p, ok := principalFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", PrincipalResponse{
		UserID:   p.UserID,
		Username: p.Username,
		Role:     p.Role.String(),
	})
}
