package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"holiday_planner/internal/config"
	"holiday_planner/internal/handler"
	"holiday_planner/internal/middleware"
	"holiday_planner/internal/repository"
	"holiday_planner/internal/service"
	"holiday_planner/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLogger := logger.New(cfg.Log.Level, cfg.Log.File)

	dbPool, err := pgxpool.New(context.Background(), cfg.Database.DSN)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", "error", err)
	}
	defer dbPool.Close()

	if err := dbPool.Ping(context.Background()); err != nil {
		appLogger.Fatal("Failed to ping database", "error", err)
	}
	appLogger.Info("Database connection established")

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer rdb.Close()

	if err := rdb.Ping(context.Background()).Err(); err != nil {
		appLogger.Fatal("Failed to connect to Redis", "error", err)
	}
	appLogger.Info("Redis connection established")

	repos := repository.NewRepositories(dbPool, rdb, appLogger)
	services := service.NewServices(repos, cfg, appLogger)

	authMiddleware := middleware.NewAuthMiddleware(services.Auth, appLogger)
	rateLimitMiddleware := middleware.NewRateLimitMiddleware(services.RateLimit, appLogger)

	handlers := handler.NewHandlers(services, cfg, appLogger)

	router := setupRouter(handlers, authMiddleware, rateLimitMiddleware, cfg, appLogger)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		appLogger.Info("Starting server", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Fatal("Failed to start server", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Fatal("Server forced to shutdown", "error", err)
	}

	appLogger.Info("Server exited")
}

func setupRouter(
	handlers *handler.Handlers,
	authMiddleware *middleware.AuthMiddleware,
	rateLimitMiddleware *middleware.RateLimitMiddleware,
	cfg *config.Config,
	log logger.Logger,
) *gin.Engine {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORS())
	router.Use(middleware.RequestLogger(log))
	router.Use(middleware.ErrorHandler())

	router.GET("/health", handlers.Health.Check)

	v1 := router.Group("/api/v1")
	{
		public := v1.Group("/auth")
		{
			public.POST("/register", rateLimitMiddleware.Limit(), handlers.Auth.Register)
			public.POST("/login", rateLimitMiddleware.Limit(), handlers.Auth.Login)
			public.POST("/refresh", handlers.Auth.Refresh)
			public.POST("/logout", handlers.Auth.Logout)
		}

		v1.POST("/contact", rateLimitMiddleware.Limit(), handlers.Contact.Submit)

		protected := v1.Group("")
		protected.Use(authMiddleware.RequireAuth())
		{
			users := protected.Group("/users")
			{
				users.GET("/me", handlers.User.GetProfile)
				users.PUT("/me", handlers.User.UpdateProfile)
			}

			holidays := protected.Group("/holidays")
			{
				holidays.POST("", handlers.Holiday.Create)
				holidays.GET("/published", handlers.Holiday.ListPublished)
				holidays.GET("/invited", handlers.Holiday.ListInvited)
				holidays.GET("/:id", handlers.Holiday.GetByID)
				holidays.PUT("/:id", handlers.Holiday.Update)
				holidays.DELETE("/:id", handlers.Holiday.Delete)
				holidays.GET("/:id/calendar", handlers.Holiday.ExportCalendar)
				holidays.GET("/:id/weather", handlers.Holiday.Weather)
				holidays.GET("/:id/chat/messages", handlers.Chat.GetMessages)
				holidays.POST("/:id/chat/messages", handlers.Chat.SendMessage)
			}

			invitations := protected.Group("/invitations")
			{
				invitations.POST("", handlers.Invitation.Invite)
				invitations.DELETE("/:holidayId", handlers.Invitation.Leave)
			}

			activities := protected.Group("/activities")
			{
				activities.POST("/holiday/:holidayId", handlers.Activity.Create)
				activities.GET("/holiday/:holidayId", handlers.Activity.ListForHoliday)
				activities.GET("/:id", handlers.Activity.GetByID)
				activities.GET("/:id/weather", handlers.Activity.Weather)
				activities.PUT("/:id", handlers.Activity.Update)
				activities.DELETE("/:id", handlers.Activity.Delete)
			}

			protected.GET("/statistics", handlers.Stats.GetUserStatistics)
		}
	}

	router.GET("/ws/holidays/:id/chat", handlers.WebSocket.StreamChat)

	return router
}
