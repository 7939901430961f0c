package server

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	dashboardUC "bugtrail/internal/application/dashboard/usecases"
	projectUC "bugtrail/internal/application/project/usecases"
	ticketUC "bugtrail/internal/application/ticket/usecases"
	userUC "bugtrail/internal/application/user/usecases"
	"bugtrail/internal/infrastructure/auth"
	"bugtrail/internal/infrastructure/config"
	"bugtrail/internal/infrastructure/database"
	"bugtrail/internal/infrastructure/migration"
	"bugtrail/internal/infrastructure/repository"
	authhandlers "bugtrail/internal/interfaces/http/handlers/auth"
	dashboardhandlers "bugtrail/internal/interfaces/http/handlers/dashboard"
	projecthandlers "bugtrail/internal/interfaces/http/handlers/project"
	tickethandlers "bugtrail/internal/interfaces/http/handlers/ticket"
	userhandlers "bugtrail/internal/interfaces/http/handlers/user"
	"bugtrail/internal/interfaces/http/middleware"
	"bugtrail/internal/interfaces/http/routes"
	"bugtrail/internal/shared/logger"
)

var (
	env                string
	autoMigrate        bool
	skipMigrationCheck bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the HTTP server",
		Long:  `Start the Bugtrail HTTP server with specified configuration.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().BoolVar(&autoMigrate, "auto-migrate", false, "Automatically run database migrations on startup (not recommended for production)")
	cmd.Flags().BoolVar(&skipMigrationCheck, "skip-migration-check", false, "Skip migration status check on startup")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	cfg.Server.Mode = mapEnvToGinMode(env)

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	logger.Info("starting server",
		"environment", env,
		"auto_migrate", autoMigrate)

	gin.SetMode(cfg.Server.Mode)
	gin.DefaultWriter = io.Discard
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, nuHandlers int) {
	}

	if err := database.Init(&cfg.Database); err != nil {
		logger.Fatal("failed to initialize database", "error", err)
	}
	defer database.Close()

	if err := handleMigrations(env); err != nil {
		logger.Fatal("migration handling failed", "error", err)
	}

	db := database.Get()
	log := logger.NewLogger()

	userRepo := repository.NewUserRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	ticketRepo := repository.NewTicketRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	dashboardRepo := repository.NewDashboardRepository(db)

	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes)

	registerUC := userUC.NewRegisterUseCase(userRepo, hasher, jwtService, log)
	loginUC := userUC.NewLoginUseCase(userRepo, hasher, jwtService, log)
	resetPasswordUC := userUC.NewResetPasswordUseCase(userRepo, hasher, log)
	getProfileUC := userUC.NewGetProfileUseCase(userRepo, log)
	updateProfileUC := userUC.NewUpdateProfileUseCase(userRepo, log)
	searchUsersUC := userUC.NewSearchUsersUseCase(userRepo, log)

	createProjectUC := projectUC.NewCreateProjectUseCase(projectRepo, log)
	listProjectsUC := projectUC.NewListProjectsUseCase(projectRepo, log)
	getProjectUC := projectUC.NewGetProjectUseCase(projectRepo, log)
	updateProjectUC := projectUC.NewUpdateProjectUseCase(projectRepo, log)
	deleteProjectUC := projectUC.NewDeleteProjectUseCase(projectRepo, log)
	addSupervisorUC := projectUC.NewAddSupervisorUseCase(projectRepo, userRepo, log)
	removeSupervisorUC := projectUC.NewRemoveSupervisorUseCase(projectRepo, log)
	listSupervisorsUC := projectUC.NewListSupervisorsUseCase(projectRepo, userRepo, log)

	createTicketUC := ticketUC.NewCreateTicketUseCase(ticketRepo, projectRepo, log)
	listTicketsUC := ticketUC.NewListTicketsUseCase(ticketRepo, projectRepo, log)
	getTicketUC := ticketUC.NewGetTicketUseCase(ticketRepo, commentRepo, log)
	updateTicketUC := ticketUC.NewUpdateTicketUseCase(ticketRepo, log)
	deleteTicketUC := ticketUC.NewDeleteTicketUseCase(ticketRepo, log)
	pushCommentUC := ticketUC.NewPushCommentUseCase(ticketRepo, commentRepo, log)
	deleteCommentUC := ticketUC.NewDeleteCommentUseCase(commentRepo, log)

	reportsUC := dashboardUC.NewGetReportsUseCase(dashboardRepo, projectRepo, log)

	routeConfig := &routes.Config{
		AuthHandler:      authhandlers.NewHandler(registerUC, loginUC, resetPasswordUC),
		UserHandler:      userhandlers.NewHandler(getProfileUC, updateProfileUC, searchUsersUC),
		ProjectHandler: projecthandlers.NewHandler(
			createProjectUC,
			listProjectsUC,
			getProjectUC,
			updateProjectUC,
			deleteProjectUC,
			addSupervisorUC,
			removeSupervisorUC,
			listSupervisorsUC,
		),
		TicketHandler: tickethandlers.NewHandler(
			createTicketUC,
			listTicketsUC,
			getTicketUC,
			updateTicketUC,
			deleteTicketUC,
			pushCommentUC,
			deleteCommentUC,
		),
		DashboardHandler: dashboardhandlers.NewHandler(reportsUC),

		AuthMiddleware:         middleware.NewAuthMiddleware(jwtService, log),
		ProjectOwnerMiddleware: middleware.NewProjectOwnerMiddleware(projectRepo, log),
		RateLimiter:            buildRateLimiter(cfg),
	}

	engine := gin.New()
	engine.Use(middleware.Recovery())
	engine.Use(middleware.Logger(log))
	engine.Use(middleware.CORS(cfg.Server.AllowedOrigins))
	engine.Use(middleware.SecurityHeaders())

	routes.SetupRoutes(engine, routeConfig)

	srv := &http.Server{
		Addr:         cfg.Server.GetAddr(),
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server starting",
			"address", cfg.Server.GetAddr(),
			"mode", cfg.Server.Mode)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("failed to start server", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		return err
	}

	logger.Info("server exited gracefully")
	return nil
}

// buildRateLimiter returns nil when rate limiting is disabled; the router
// treats a nil limiter as a no-op.
func buildRateLimiter(cfg *config.Config) *middleware.RateLimiter {
	if !cfg.RateLimit.Enabled {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.GetAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		// The limiter itself fails open on redis errors, so a dead redis
		// at startup only costs the rate limiting, not the server.
		logger.Warn("redis unreachable, rate limiting degraded", "error", err)
	}

	logger.Info("rate limiting enabled",
		"requests_per_minute", cfg.RateLimit.RequestsPerMinute)

	return middleware.NewRateLimiter(client, cfg.RateLimit.RequestsPerMinute, time.Minute)
}

func handleMigrations(environment string) error {
	if skipMigrationCheck {
		logger.Info("skipping migration check")
		return nil
	}

	if autoMigrate {
		if environment == "production" {
			logger.Warn("auto-migration is enabled in production environment - this is not recommended!")
		}

		logger.Info("running auto-migration")
		manager := migration.NewManagerWithStrategy(migration.NewGormAutoMigrateStrategy())
		if err := manager.Migrate(database.Get(), migration.AutoMigrateModels()...); err != nil {
			return fmt.Errorf("auto-migration failed: %w", err)
		}
		logger.Info("auto-migration completed successfully")
		return nil
	}

	logger.Info("checking migration status")

	scriptsPath, err := filepath.Abs("./internal/infrastructure/migration/scripts")
	if err != nil {
		logger.Warn("failed to get migration scripts path", "error", err)
		return nil
	}

	strategy := migration.NewGooseStrategy(scriptsPath)
	version, err := strategy.GetVersion(database.Get())
	if err != nil {
		logger.Warn("failed to check migration status", "error", err)
	} else {
		logger.Info("current migration version", "version", version)
	}

	logger.Info("migration check completed")

	return nil
}

func mapEnvToGinMode(environment string) string {
	switch environment {
	case "production", "prod":
		return "release"
	case "development", "dev":
		return "debug"
	case "test", "testing":
		return "test"
	case "release":
		return "release"
	default:
		return "debug"
	}
}
