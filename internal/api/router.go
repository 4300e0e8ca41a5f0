package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/jwtauth/v5"

	"idento/internal/api/handler"
	"idento/internal/api/middleware"
	"idento/internal/app/service"
	"idento/internal/app/session"
)

func NewRouter(
	sessions *session.Manager,
	accountService *service.AccountService,
	chatService *service.ChatService,
) http.Handler {
	r := chi.NewRouter()

	// Base Middlewares
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Timeout(60 * time.Second))

	// Session evidence: the Verifier checks the signed token from the
	// session cookie (or Authorization header) and leaves the outcome in
	// the context; Identify turns it into an identity or anonymous.
	// Nothing is rejected here.
	r.Use(jwtauth.Verifier(sessions.TokenAuth()))
	r.Use(middleware.Identify(sessions))

	// Public health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	handler.NewPageHandler().RegisterRoutes(r)
	handler.NewAuthHandler(accountService, sessions).RegisterRoutes(r)
	handler.NewAccountHandler(accountService).RegisterRoutes(r)
	handler.NewAdminHandler(accountService).RegisterRoutes(r)
	handler.NewChatHandler(chatService).RegisterRoutes(r)

	return r
}
