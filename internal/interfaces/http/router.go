// Package http wires the handlers, middleware and routes into a Gin engine.
package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	ticketusecases "ticketdesk/internal/application/ticket/usecases"
	userusecases "ticketdesk/internal/application/user/usecases"
	"ticketdesk/internal/infrastructure/auth"
	"ticketdesk/internal/infrastructure/config"
	"ticketdesk/internal/infrastructure/repository"
	"ticketdesk/internal/interfaces/http/handlers"
	"ticketdesk/internal/interfaces/http/middleware"
	"ticketdesk/internal/interfaces/http/routes"
	shareddb "ticketdesk/internal/shared/db"
	"ticketdesk/internal/shared/logger"
	"ticketdesk/internal/shared/utils"
)

// Router represents the HTTP router configuration
type Router struct {
	engine         *gin.Engine
	authHandler    *handlers.AuthHandler
	ticketHandler  *handlers.TicketHandler
	adminHandler   *handlers.AdminHandler
	authMiddleware *middleware.AuthMiddleware
	rateLimiter    *middleware.RateLimiter
	allowedOrigins []string
}

// NewRouter creates a new HTTP router with all dependencies
func NewRouter(db *gorm.DB, redisClient *redis.Client, cfg *config.Config, log logger.Interface) *Router {
	engine := gin.New()

	handlers.RegisterValidators()

	userRepo := repository.NewUserRepository(db)
	ticketRepo := repository.NewTicketRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	txMgr := shareddb.NewTransactionManager(db)

	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.ExpMinutes)

	registerUC := userusecases.NewRegisterUseCase(userRepo, hasher, log)
	loginUC := userusecases.NewLoginUseCase(userRepo, hasher, jwtService, log)
	logoutUC := userusecases.NewLogoutUseCase(log)
	setRoleUC := userusecases.NewSetRoleUseCase(userRepo, log)

	createTicketUC := ticketusecases.NewCreateTicketUseCase(ticketRepo, log)
	getTicketUC := ticketusecases.NewGetTicketUseCase(ticketRepo, log)
	listMyTicketsUC := ticketusecases.NewListMyTicketsUseCase(ticketRepo, log)
	listAllTicketsUC := ticketusecases.NewListAllTicketsUseCase(ticketRepo, log)
	changeStatusUC := ticketusecases.NewChangeStatusUseCase(ticketRepo, log)
	addCommentUC := ticketusecases.NewAddCommentUseCase(ticketRepo, commentRepo, txMgr, log)

	authHandler := handlers.NewAuthHandler(registerUC, loginUC, logoutUC)
	ticketHandler := handlers.NewTicketHandler(
		createTicketUC, getTicketUC, listMyTicketsUC,
		listAllTicketsUC, changeStatusUC, addCommentUC,
	)
	adminHandler := handlers.NewAdminHandler(setRoleUC)

	authMiddleware := middleware.NewAuthMiddleware(jwtService, log)

	var rateLimiter *middleware.RateLimiter
	if redisClient != nil {
		rateLimiter = middleware.NewRateLimiter(redisClient, cfg.RateLimit.RequestsPerMinute, 1*time.Minute)
	}

	return &Router{
		engine:         engine,
		authHandler:    authHandler,
		ticketHandler:  ticketHandler,
		adminHandler:   adminHandler,
		authMiddleware: authMiddleware,
		rateLimiter:    rateLimiter,
		allowedOrigins: cfg.Server.AllowedOrigins,
	}
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Logger(logger.NewLogger()))
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.CORS(r.allowedOrigins))

	r.engine.GET("/health", func(c *gin.Context) {
		utils.SuccessResponse(c, http.StatusOK, "", gin.H{"status": "ok"})
	})

	routes.SetupAuthRoutes(r.engine, &routes.AuthRouteConfig{
		AuthHandler:    r.authHandler,
		AuthMiddleware: r.authMiddleware,
		RateLimiter:    r.rateLimiter,
	})

	routes.SetupTicketRoutes(r.engine, &routes.TicketRouteConfig{
		TicketHandler:  r.ticketHandler,
		AuthMiddleware: r.authMiddleware,
	})

	routes.SetupAdminRoutes(r.engine, &routes.AdminRouteConfig{
		AdminHandler:   r.adminHandler,
		AuthMiddleware: r.authMiddleware,
	})
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
