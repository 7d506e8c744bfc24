package routes

import (
	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/portfolio-tracker/internal/domain/port/core"
	"github.com/amirhossein-jamali/portfolio-tracker/internal/domain/port/security"
	"github.com/amirhossein-jamali/portfolio-tracker/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/portfolio-tracker/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/portfolio-tracker/internal/infrastructure/adapter/api/view"
)

// Handlers groups the HTTP handlers
type Handlers struct {
	Auth      *handler.AuthHandler
	Portfolio *handler.PortfolioHandler
	Health    *handler.HealthHandler
}

// SetupRoutes configures all the routes
func SetupRoutes(router *gin.Engine, h Handlers, sessions security.SessionManager, cookie handler.CookieConfig, logger coreport.Logger) {
	router.GET("/healthz", h.Health.Health)

	public := router.Group("/", middleware.OptionalAuth(sessions, cookie.Name))
	{
		public.GET("/login", h.Auth.LoginForm)
		public.POST("/login", h.Auth.Login)
		public.GET("/logout", h.Auth.Logout)
		public.GET("/register", h.Auth.RegisterForm)
		public.POST("/register", h.Auth.Register)
	}

	private := router.Group("/", middleware.RequireAuth(sessions, cookie, logger))
	{
		private.GET("/", h.Portfolio.Index)
		private.GET("/quote", h.Portfolio.QuoteForm)
		private.POST("/quote", h.Portfolio.Quote)
		private.GET("/buy", h.Portfolio.BuyForm)
		private.POST("/buy", h.Portfolio.Buy)
		private.GET("/sell", h.Portfolio.SellForm)
		private.POST("/sell", h.Portfolio.Sell)
		private.GET("/history", h.Portfolio.History)
		private.GET("/history/export", h.Portfolio.ExportHistory)
	}
}

// SetupMiddlewares configures global middlewares and the page templates
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger, timeProvider coreport.TimeProvider) error {
	templates, err := view.Load()
	if err != nil {
		return err
	}
	router.SetHTMLTemplate(templates)

	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger, timeProvider))
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.NoCache())
	return nil
}
