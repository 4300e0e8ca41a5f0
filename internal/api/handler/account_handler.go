package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"idento/internal/api/flash"
	"idento/internal/api/middleware"
	"idento/internal/app/service"
	"idento/internal/app/session"
	"idento/internal/common"
)

type AccountHandler struct {
	accounts *service.AccountService
}

func NewAccountHandler(accounts *service.AccountService) *AccountHandler {
	return &AccountHandler{accounts: accounts}
}

func (h *AccountHandler) RegisterRoutes(r chi.Router) {
	r.Get("/api/me", h.me)

	r.Group(func(private chi.Router) {
		private.Use(middleware.RequireAuth)
		private.Get("/change_password", h.changePasswordForm)
		private.Post("/change_password", h.changePassword)
	})
}

// meResponse has a pointer email so anonymous requests serialize as
// {"email":null}, which is what the frontend widget checks.
type meResponse struct {
	Email *string `json:"email"`
	Name  string  `json:"name,omitempty"`
	Role  string  `json:"role,omitempty"`
}

func (h *AccountHandler) me(w http.ResponseWriter, r *http.Request) {
	if id, ok := session.IdentityFrom(r.Context()); ok {
		common.RespondWithJSON(w, http.StatusOK, meResponse{
			Email: &id.Email,
			Name:  id.Name,
			Role:  string(id.Role),
		})
		return
	}
	common.RespondWithJSON(w, http.StatusOK, meResponse{})
}

func (h *AccountHandler) changePasswordForm(w http.ResponseWriter, r *http.Request) {
	render(w, r, "change_password.html", pageData{})
}

func (h *AccountHandler) changePassword(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		redirectWithError(w, r, err, "/change_password")
		return
	}
	if r.PostFormValue("new_password") != r.PostFormValue("new_password2") {
		flash.Set(w, "danger", "New passwords do not match.")
		http.Redirect(w, r, "/change_password", http.StatusSeeOther)
		return
	}

	actor, _ := session.IdentityFrom(r.Context())
	err := h.accounts.ChangePassword(r.Context(), actor,
		r.PostFormValue("old_password"), r.PostFormValue("new_password"))
	if err != nil {
		redirectWithError(w, r, err, "/change_password")
		return
	}
	flash.Set(w, "success", "Password updated.")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
