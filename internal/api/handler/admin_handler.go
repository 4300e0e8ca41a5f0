package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"idento/internal/api/flash"
	"idento/internal/api/middleware"
	"idento/internal/app/service"
	"idento/internal/app/session"
	"idento/internal/common"
	"idento/internal/domain/model"
)

type AdminHandler struct {
	accounts *service.AccountService
}

func NewAdminHandler(accounts *service.AccountService) *AdminHandler {
	return &AdminHandler{accounts: accounts}
}

func (h *AdminHandler) RegisterRoutes(r chi.Router) {
	r.Route("/admin", func(admin chi.Router) {
		admin.Use(middleware.RequireAuth)
		admin.Use(middleware.RequireRole(model.RoleAdmin, "Admin access required"))
		admin.Get("/", h.dashboard)
		admin.Get("/users", h.listUsers)
		admin.Get("/create", h.createForm)
		admin.Post("/create", h.createUser)
		admin.Post("/delete/{userID}", h.deleteUser)
	})
}

func (h *AdminHandler) dashboard(w http.ResponseWriter, r *http.Request) {
	render(w, r, "admin_dashboard.html", pageData{})
}

func (h *AdminHandler) listUsers(w http.ResponseWriter, r *http.Request) {
	actor, _ := session.IdentityFrom(r.Context())
	users, err := h.accounts.ListUsers(r.Context(), actor)
	if err != nil {
		redirectWithError(w, r, err, "/admin")
		return
	}
	render(w, r, "users_list.html", pageData{Users: users})
}

func (h *AdminHandler) createForm(w http.ResponseWriter, r *http.Request) {
	render(w, r, "create_user.html", pageData{})
}

func (h *AdminHandler) createUser(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		redirectWithError(w, r, err, "/admin/create")
		return
	}

	actor, _ := session.IdentityFrom(r.Context())
	_, err := h.accounts.CreateUser(r.Context(), actor, service.CreateUserRequest{
		Name:     r.PostFormValue("name"),
		Email:    r.PostFormValue("email"),
		Role:     model.Role(r.PostFormValue("role")),
		Password: r.PostFormValue("password"),
	})
	if err != nil {
		redirectWithError(w, r, err, "/admin/create")
		return
	}
	flash.Set(w, "success", "User created.")
	http.Redirect(w, r, "/admin/users", http.StatusSeeOther)
}

func (h *AdminHandler) deleteUser(w http.ResponseWriter, r *http.Request) {
	targetID, err := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
	if err != nil {
		redirectWithError(w, r, common.ErrNotFound, "/admin/users")
		return
	}

	actor, _ := session.IdentityFrom(r.Context())
	if err := h.accounts.DeleteUser(r.Context(), actor, targetID); err != nil {
		redirectWithError(w, r, err, "/admin/users")
		return
	}
	flash.Set(w, "success", "User deleted.")
	http.Redirect(w, r, "/admin/users", http.StatusSeeOther)
}
