package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	httpapi "finanzas-backend/internal/api/http"
	"finanzas-backend/internal/config"
	"finanzas-backend/internal/logger"
	"finanzas-backend/internal/repository/postgres"
	"finanzas-backend/internal/security"
	"finanzas-backend/internal/service"
	"finanzas-backend/internal/storage"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Finanzas Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry, cfg.JWT.RefreshTokenExpiry)

	// Initialize Photo Storage
	photoStore, err := storage.NewLocalStorage(cfg.Storage.PhotosDir)
	if err != nil {
		logger.Error("Failed to initialize photo storage", "error", err, "dir", cfg.Storage.PhotosDir)
		log.Fatalf("Failed to initialize photo storage: %v", err)
	}
	logger.Info("Photo storage ready", "dir", cfg.Storage.PhotosDir)

	// Initialize Services
	authSvc := service.NewAuthService(store.UserRepository, tokenManager)
	userSvc := service.NewUserService(store.UserRepository)
	billSvc := service.NewBillService(store.BillRepository, store.PaymentRepository)
	paymentSvc := service.NewPaymentService(store.BillRepository, store.PaymentRepository)
	budgetSvc := service.NewBudgetService(store.ExpenseRepository, store.LifestyleRepository)
	categorySvc := service.NewCategoryService(store.FavoriteCategoryRepository)

	// Set up HTTP server
	router := httpapi.NewRouter(httpapi.Services{
		Auth:     authSvc,
		User:     userSvc,
		Bill:     billSvc,
		Payment:  paymentSvc,
		Budget:   budgetSvc,
		Category: categorySvc,
		Photos:   photoStore,
	}, tokenManager)

	server := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", "error", err)
			log.Fatalf("Failed to serve: %v", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	// Graceful shutdown
	logger.Info("Shutting down HTTP server...")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Forced shutdown", "error", err)
	}
	logger.Info("Server stopped. Goodbye!")
}
