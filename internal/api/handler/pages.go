package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"idento/internal/api/middleware"
	"idento/internal/domain/model"
)

// PageHandler serves the portal's rendered pages that carry no form
// logic of their own.
type PageHandler struct{}

func NewPageHandler() *PageHandler {
	return &PageHandler{}
}

func (h *PageHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.index)
	r.Get("/portfolio", h.portfolio)

	r.Group(func(private chi.Router) {
		private.Use(middleware.RequireAuth)
		private.Use(middleware.RequireRole(model.RoleStudent, "Students only area"))
		private.Get("/student", h.student)
	})
}

func (h *PageHandler) index(w http.ResponseWriter, r *http.Request) {
	render(w, r, "index.html", pageData{})
}

func (h *PageHandler) portfolio(w http.ResponseWriter, r *http.Request) {
	render(w, r, "portfolio.html", pageData{})
}

func (h *PageHandler) student(w http.ResponseWriter, r *http.Request) {
	render(w, r, "student_welcome.html", pageData{})
}
