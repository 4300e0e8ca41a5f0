package handler

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"idento/internal/api/flash"
	"idento/internal/api/middleware"
	"idento/internal/app/service"
	"idento/internal/app/session"
	"idento/internal/domain/model"
)

type AuthHandler struct {
	accounts *service.AccountService
	sessions *session.Manager
}

func NewAuthHandler(accounts *service.AccountService, sessions *session.Manager) *AuthHandler {
	return &AuthHandler{accounts: accounts, sessions: sessions}
}

func (h *AuthHandler) RegisterRoutes(r chi.Router) {
	r.Get("/signup", h.signupForm)
	r.Post("/signup", h.signup)
	r.Get("/login", h.loginForm)
	r.Post("/login", h.login)

	r.Group(func(private chi.Router) {
		private.Use(middleware.RequireAuth)
		private.Get("/logout", h.logout)
	})
}

func (h *AuthHandler) signupForm(w http.ResponseWriter, r *http.Request) {
	render(w, r, "signup.html", pageData{})
}

func (h *AuthHandler) signup(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		redirectWithError(w, r, err, "/signup")
		return
	}
	if r.PostFormValue("password") != r.PostFormValue("password2") {
		flash.Set(w, "danger", "Passwords do not match.")
		http.Redirect(w, r, "/signup", http.StatusSeeOther)
		return
	}

	_, err := h.accounts.Signup(r.Context(), service.SignupRequest{
		Name:     r.PostFormValue("name"),
		Email:    r.PostFormValue("email"),
		Password: r.PostFormValue("password"),
	})
	if err != nil {
		redirectWithError(w, r, err, "/signup")
		return
	}
	flash.Set(w, "success", "Registered successfully. Please login.")
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (h *AuthHandler) loginForm(w http.ResponseWriter, r *http.Request) {
	render(w, r, "login.html", pageData{})
}

func (h *AuthHandler) login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		redirectWithError(w, r, err, "/login")
		return
	}

	user, err := h.accounts.Login(r.Context(), r.PostFormValue("email"), r.PostFormValue("password"))
	if err != nil {
		redirectWithError(w, r, err, "/login")
		return
	}

	token, err := h.sessions.Issue(r.Context(), user)
	if err != nil {
		redirectWithError(w, r, err, "/login")
		return
	}
	setSessionCookie(w, token, h.sessions.TTL())
	flash.Set(w, "success", "Logged in successfully.")

	landing := "/student"
	if user.Role == model.RoleAdmin {
		landing = "/admin"
	}
	http.Redirect(w, r, landing, http.StatusSeeOther)
}

func (h *AuthHandler) logout(w http.ResponseWriter, r *http.Request) {
	if id, ok := session.IdentityFrom(r.Context()); ok {
		if err := h.sessions.Revoke(r.Context(), id.SessionID); err != nil {
			// Best effort: the cookie is cleared regardless and the
			// registry entry expires on its own.
			log.Printf("revoke session %s: %v", id.SessionID, err)
		}
	}
	clearSessionCookie(w)
	flash.Set(w, "info", "Logged out.")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
