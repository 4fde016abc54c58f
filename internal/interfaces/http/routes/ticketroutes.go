package routes

import (
	"github.com/gin-gonic/gin"

	"ticketdesk/internal/interfaces/http/handlers"
	"ticketdesk/internal/interfaces/http/middleware"
	"ticketdesk/internal/shared/authorization"
)

type TicketRouteConfig struct {
	TicketHandler  *handlers.TicketHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupTicketRoutes(engine *gin.Engine, config *TicketRouteConfig) {
	tickets := engine.Group("/tickets")
	tickets.Use(config.AuthMiddleware.RequireAuth())
	{
		// Collection operations
		tickets.POST("", config.TicketHandler.CreateTicket)
		tickets.GET("", config.TicketHandler.ListMyTickets)

		// Admin views over the whole collection
		tickets.GET("/admin/all",
			authorization.RequireAdmin(),
			config.TicketHandler.ListAllTickets)
		tickets.PUT("/admin/:id/status",
			authorization.RequireAdmin(),
			config.TicketHandler.ChangeStatus)

		// Per-ticket actions; specific paths before the bare /:id
		tickets.PUT("/:id/status", config.TicketHandler.ChangeStatus)
		tickets.POST("/:id/comments", config.TicketHandler.AddComment)
		tickets.GET("/:id", config.TicketHandler.GetTicket)
	}
}
