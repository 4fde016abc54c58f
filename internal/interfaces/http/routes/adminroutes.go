package routes

import (
	"github.com/gin-gonic/gin"

	"ticketdesk/internal/interfaces/http/handlers"
	"ticketdesk/internal/interfaces/http/middleware"
	"ticketdesk/internal/shared/authorization"
)

type AdminRouteConfig struct {
	AdminHandler   *handlers.AdminHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupAdminRoutes(engine *gin.Engine, config *AdminRouteConfig) {
	admin := engine.Group("/admin")
	admin.Use(config.AuthMiddleware.RequireAuth(), authorization.RequireAdmin())
	{
		admin.PUT("/users/:id/role", config.AdminHandler.SetUserRole)
	}
}
