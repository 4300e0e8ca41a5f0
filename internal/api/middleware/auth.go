package middleware

import (
	"net/http"

	"idento/internal/api/flash"
	"idento/internal/app/authz"
	"idento/internal/app/session"
	"idento/internal/domain/model"
)

// Identify resolves the request's session evidence to an identity before
// any handler runs. Resolution failure is anonymous, never an error, so
// this middleware rejects nothing.
func Identify(sessions *session.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if id, ok := sessions.Resolve(r.Context()); ok {
				r = r.WithContext(session.WithIdentity(r.Context(), id))
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireAuth sends anonymous requests to the login page.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := session.IdentityFrom(r.Context()); !ok {
			flash.Set(w, "warning", "Please log in to continue.")
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireRole gates a route on an exact role match. Denials are generic:
// a flash notice and a redirect home, nothing about the resource itself.
func RequireRole(role model.Role, denial string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, _ := session.IdentityFrom(r.Context())
			if !authz.Allowed(id, role) {
				flash.Set(w, "danger", denial)
				http.Redirect(w, r, "/", http.StatusSeeOther)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
