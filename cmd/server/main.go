// Package main initializes and starts the expense-tracker HTTP server,
// setting up configuration, logging, the database connection, repositories,
// services, and handlers.
package main

import (
	"cmp"
	"fmt"

	nethttp "net/http"

	"go.uber.org/zap"

	"github.com/expensio/expensio/internal/config"
	"github.com/expensio/expensio/internal/db"
	"github.com/expensio/expensio/internal/logger"
	"github.com/expensio/expensio/internal/repository"
	"github.com/expensio/expensio/internal/server/handler/http"
	"github.com/expensio/expensio/internal/service"
	"github.com/expensio/expensio/internal/token"
)

var (
	// version holds the build version set via ldflags.
	version string
	// buildDate holds the build timestamp set via ldflags.
	buildDate string
)

func main() {
	// Parse command-line and environment configuration.
	options := config.Parse()

	// Print build metadata (or "N/A" if unset).
	fmt.Printf("Build version: %s\n", cmp.Or(version, "N/A"))
	fmt.Printf("Build date: %s\n", cmp.Or(buildDate, "N/A"))

	// Initialize structured logging.
	log := logger.New()
	defer func() { _ = log.Log.Sync() }()
	if err := log.Init("Info"); err != nil {
		log.Log.Fatal("failed to init logger", zap.Error(err))
	}
	zapLogger := log.Log

	if options.JWTSecret == "" {
		zapLogger.Fatal("JWT_SECRET is required")
	}

	// Initialize PostgreSQL connection and bootstrap the schema.
	postgresDB, err := db.InitPostgres(options.DatabaseDSN)
	if err != nil {
		zapLogger.Fatal("cannot init database", zap.Error(err))
	}

	// Initialize repositories for credentials and expenses.
	userRepo := repository.NewPostgresUserRepository(postgresDB)
	expenseRepo := repository.NewPostgresExpenseRepository(postgresDB)

	// Session tokens are stateless; the manager holds only the secret.
	tokens := token.NewManager(options.JWTSecret)

	// Initialize business-logic services.
	authService := service.NewAuthService(userRepo, tokens)
	expenseService := service.NewExpenseService(expenseRepo)

	// Create HTTP handlers for auth and expense endpoints.
	authHandler := &http.AuthHandler{AuthService: authService, Logger: zapLogger}
	expenseHandler := &http.ExpenseHandler{ExpenseService: expenseService, Logger: zapLogger}

	// Build the router with middleware and routes.
	router := http.NewRouter(authHandler, expenseHandler, tokens, zapLogger)

	server := &nethttp.Server{
		Addr:    options.Port,
		Handler: router,
	}

	zapLogger.Info("starting HTTP server", zap.String("addr", options.Port))
	if err := server.ListenAndServe(); err != nil {
		zapLogger.Fatal("failed to start HTTP server", zap.Error(err))
	}
}
