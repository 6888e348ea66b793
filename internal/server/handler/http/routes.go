package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/expensio/expensio/internal/middleware"
)

// banner is the fixed health-check response body.
const banner = "Server is running successfully 🚀"

// NewRouter constructs the HTTP handler that serves the expense-tracker API.
//
// Routes:
//
//	GET  /                → fixed health banner
//	POST /auth/register   → authHandler.Register
//	POST /auth/login      → authHandler.Login
//	GET    /expenses      → expenseHandler.List   (bearer token required)
//	POST   /expenses      → expenseHandler.Create (bearer token required)
//	DELETE /expenses/{id} → expenseHandler.Delete (bearer token required)
//
// Middleware chain (applied in order):
//  1. cors.Handler                         — GET/POST/DELETE with Content-Type and Authorization headers
//  2. AllowContentType("application/json") — rejects non-JSON request bodies
//  3. WithRequestLogging(logger)           — logs each request and its metadata
//
// The expense group additionally runs middleware.Auth, which validates the
// bearer token and establishes the caller's user id.
func NewRouter(
	authHandler *AuthHandler,
	expenseHandler *ExpenseHandler,
	validator middleware.TokenValidator,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	}))

	// Only allow requests with Content-Type: application/json to carry bodies
	r.Use(chiMiddleware.AllowContentType("application/json"))

	// Log each request and its metadata
	r.Use(middleware.WithRequestLogging(logger))

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(banner))
	})

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)
	})

	// Protected group: requires a valid bearer token
	r.Route("/expenses", func(r chi.Router) {
		r.Use(middleware.Auth(validator))
		r.Get("/", expenseHandler.List)
		r.Post("/", expenseHandler.Create)
		r.Delete("/{id}", expenseHandler.Delete)
	})

	return r
}
