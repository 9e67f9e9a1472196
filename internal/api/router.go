package api

import (
	"net/http"
	"time"

	"user_accounts/internal/api/handler"
	appMiddleware "user_accounts/internal/api/middleware"
	"user_accounts/internal/app/service"
	"user_accounts/internal/common/security"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	accountService *service.AccountService,
	tokens *security.TokenService,
	clientOrigin string,
) http.Handler {
	r := chi.NewRouter()

	// Base Middlewares
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Logger) // Chi's logger
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Timeout(60 * time.Second))
	r.Use(appMiddleware.CORS(clientOrigin))

	// Verifies "Authorization: Bearer <token>" and puts the result in the
	// request context; Authenticator below decides whether it gates.
	r.Use(jwtauth.Verifier(tokens.JWTAuth()))

	// Public health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Auth routes (public)
	authHandler := handler.NewAuthHandler(accountService)
	authHandler.RegisterRoutes(r)

	// Account routes (authenticated, including list and delete)
	userHandler := handler.NewUserHandler(accountService)
	r.Group(func(protected chi.Router) {
		protected.Use(appMiddleware.Authenticator)
		userHandler.RegisterRoutes(protected)
	})

	return r
}
