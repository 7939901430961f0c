package routes

import (
	"github.com/gin-gonic/gin"

	authhandlers "bugtrail/internal/interfaces/http/handlers/auth"
	dashboardhandlers "bugtrail/internal/interfaces/http/handlers/dashboard"
	projecthandlers "bugtrail/internal/interfaces/http/handlers/project"
	tickethandlers "bugtrail/internal/interfaces/http/handlers/ticket"
	userhandlers "bugtrail/internal/interfaces/http/handlers/user"
	"bugtrail/internal/interfaces/http/middleware"
)

// Config holds every handler and middleware the API surface needs.
type Config struct {
	AuthHandler      *authhandlers.Handler
	UserHandler      *userhandlers.Handler
	ProjectHandler   *projecthandlers.Handler
	TicketHandler    *tickethandlers.Handler
	DashboardHandler *dashboardhandlers.Handler

	AuthMiddleware         *middleware.AuthMiddleware
	ProjectOwnerMiddleware *middleware.ProjectOwnerMiddleware
	RateLimiter            *middleware.RateLimiter
}

// SetupRoutes registers the full /api surface. Register/login are the only
// unauthenticated endpoints; owner-gated project routes additionally pass
// through RequireProjectOwner.
func SetupRoutes(engine *gin.Engine, cfg *Config) {
	api := engine.Group("/api")

	auth := api.Group("/auth")
	{
		register := []gin.HandlerFunc{cfg.AuthHandler.Register}
		login := []gin.HandlerFunc{cfg.AuthHandler.Login}
		if cfg.RateLimiter != nil {
			register = append([]gin.HandlerFunc{cfg.RateLimiter.Limit()}, register...)
			login = append([]gin.HandlerFunc{cfg.RateLimiter.Limit()}, login...)
		}
		auth.POST("/register", register...)
		auth.POST("/login", login...)
		auth.POST("/reset-password", cfg.AuthMiddleware.RequireAuth(), cfg.AuthHandler.ResetPassword)
	}

	users := api.Group("/users")
	users.Use(cfg.AuthMiddleware.RequireAuth())
	{
		users.GET("", cfg.UserHandler.SearchUsers)
		users.GET("/me", cfg.UserHandler.GetProfile)
		users.PUT("/me", cfg.UserHandler.UpdateProfile)
	}

	projects := api.Group("/projects")
	projects.Use(cfg.AuthMiddleware.RequireAuth())
	{
		projects.GET("", cfg.ProjectHandler.ListProjects)
		projects.POST("", cfg.ProjectHandler.CreateProject)
		projects.GET("/:projectId", cfg.ProjectHandler.GetProject)
		projects.PUT("/:projectId",
			cfg.ProjectOwnerMiddleware.RequireProjectOwner(),
			cfg.ProjectHandler.UpdateProject)
		projects.DELETE("/:projectId",
			cfg.ProjectOwnerMiddleware.RequireProjectOwner(),
			cfg.ProjectHandler.DeleteProject)

		projects.GET("/:projectId/supervisors", cfg.ProjectHandler.ListSupervisors)
		projects.POST("/:projectId/supervisors",
			cfg.ProjectOwnerMiddleware.RequireProjectOwner(),
			cfg.ProjectHandler.AddSupervisor)
		projects.DELETE("/:projectId/supervisors",
			cfg.ProjectOwnerMiddleware.RequireProjectOwner(),
			cfg.ProjectHandler.RemoveSupervisor)

		projects.POST("/:projectId/tickets", cfg.TicketHandler.CreateTicket)
		projects.GET("/:projectId/tickets", cfg.TicketHandler.ListTickets)
	}

	tickets := api.Group("/tickets")
	tickets.Use(cfg.AuthMiddleware.RequireAuth())
	{
		tickets.GET("/:ticketId", cfg.TicketHandler.GetTicket)
		tickets.PUT("/:ticketId", cfg.TicketHandler.UpdateTicket)
		tickets.DELETE("/:ticketId", cfg.TicketHandler.DeleteTicket)
		tickets.POST("/:ticketId/comments", cfg.TicketHandler.PushComment)
	}

	api.DELETE("/comments/:commentId",
		cfg.AuthMiddleware.RequireAuth(),
		cfg.TicketHandler.DeleteComment)

	dashboard := api.Group("/dashboard")
	dashboard.Use(cfg.AuthMiddleware.RequireAuth())
	{
		dashboard.GET("/:projectId/status-report", cfg.DashboardHandler.StatusReport)
		dashboard.GET("/:projectId/priority-report", cfg.DashboardHandler.PriorityReport)
		dashboard.GET("/:projectId/latest-tickets", cfg.DashboardHandler.LatestTickets)
		dashboard.GET("/:projectId/top-commentors", cfg.DashboardHandler.TopCommentors)
		dashboard.GET("/:projectId/tickets-report", cfg.DashboardHandler.TicketsReport)
		dashboard.GET("/:projectId/top-supervisors", cfg.DashboardHandler.TopSupervisors)
	}
}
