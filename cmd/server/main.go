package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"rideadmin/internal/config"
	"rideadmin/internal/handlers"
	"rideadmin/internal/repositories/mongodb"
	"rideadmin/internal/services"
	"rideadmin/pkg/cache"
	"rideadmin/pkg/database"
	"rideadmin/pkg/logger"
	"rideadmin/pkg/websocket"
	"rideadmin/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.NewLogger(&logger.Config{
		Level:      cfg.App.LogLevel,
		Format:     cfg.App.LogFormat,
		Output:     "stdout",
		TimeFormat: time.RFC3339,
		Colors:     cfg.App.Debug,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to init logger: %v\n", err)
		os.Exit(1)
	}

	if !cfg.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.NewMongoDB(&database.DatabaseConfig{
		URI:            cfg.Database.URI,
		Database:       cfg.Database.Database,
		MaxPoolSize:    cfg.Database.MaxPoolSize,
		MinPoolSize:    cfg.Database.MinPoolSize,
		ConnectTimeout: cfg.Database.ConnectTimeout,
		SocketTimeout:  cfg.Database.SocketTimeout,
	})
	if err != nil {
		log.WithError(err).Fatal("Failed to connect to MongoDB")
	}
	defer db.Close()

	if err := database.NewMigrator(db.Database).Up(); err != nil {
		log.WithError(err).Fatal("Failed to run migrations")
	}

	// Redis is optional; without it the dashboards hit the database on
	// every request.
	redisCache, err := cache.NewRedisCache(&cache.RedisConfig{
		Host:         cfg.Redis.Host,
		Port:         cfg.Redis.Port,
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		PoolSize:     cfg.Redis.PoolSize,
		MinIdleConns: cfg.Redis.MinIdleConns,
		DialTimeout:  cfg.Redis.DialTimeout,
		ReadTimeout:  cfg.Redis.ReadTimeout,
		WriteTimeout: cfg.Redis.WriteTimeout,
	})
	if err != nil {
		log.WithError(err).Warn("Redis unavailable, running without cache")
		redisCache = nil
	} else {
		defer redisCache.Close()
	}

	hub := websocket.NewHub()
	go hub.Run()

	adminRepo := mongodb.NewAdminRepository(db.Database)
	userRepo := mongodb.NewUserRepository(db.Database)
	captainRepo := mongodb.NewCaptainRepository(db.Database)
	rateRepo := mongodb.NewCaptainRateRepository(db.Database)
	bookingRepo := mongodb.NewBookingRepository(db.Database)
	paymentRepo := mongodb.NewPaymentRepository(db.Database)

	var cacheService services.Cache
	if redisCache != nil {
		cacheService = redisCache
	}

	authService := services.NewAuthService(adminRepo, cfg.Security, log)
	userService := services.NewUserService(userRepo, bookingRepo, cacheService, log)
	captainService := services.NewCaptainService(captainRepo, rateRepo, bookingRepo, db, cacheService, log)
	bookingService := services.NewBookingService(bookingRepo, userRepo, captainRepo, paymentRepo, db, cacheService, hub, log)
	financialService := services.NewFinancialService(bookingRepo, paymentRepo, userRepo, cacheService, cfg.App.Currency, log)
	dashboardService := services.NewDashboardService(userRepo, captainRepo, bookingRepo, cacheService, log)

	h := &routes.Handlers{
		Auth:      handlers.NewAuthHandler(authService, log),
		User:      handlers.NewUserHandler(userService, bookingService, log),
		Captain:   handlers.NewCaptainHandler(captainService, log),
		Booking:   handlers.NewBookingHandler(bookingService, authService, hub, log),
		Financial: handlers.NewFinancialHandler(financialService, log),
		Dashboard: handlers.NewDashboardHandler(dashboardService, log),
		Health:    handlers.NewHealthHandler(db, redisCache, hub),
	}

	router := routes.SetupRouter(h, authService, log, cfg.Security.AllowAdminBootstrap)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.App.Host, cfg.App.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.WithFields(map[string]interface{}{
			"addr": server.Addr,
			"env":  cfg.App.Environment,
		}).Info("Server starting")

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("Server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.WithError(err).Error("Forced shutdown")
	}

	log.Info("Server stopped")
}
