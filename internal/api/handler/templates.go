package handler

import (
	"embed"
	"html/template"
	"log"
	"net/http"

	"idento/internal/api/flash"
	"idento/internal/app/session"
	"idento/internal/domain/model"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// pageData is the view model shared by all rendered pages.
type pageData struct {
	Identity *session.Identity
	Flash    *flash.Message
	Users    []model.User
}

// render executes an embedded page template, attaching the current
// identity and any pending flash notice.
func render(w http.ResponseWriter, r *http.Request, name string, data pageData) {
	if id, ok := session.IdentityFrom(r.Context()); ok {
		data.Identity = &id
	}
	data.Flash = flash.Pop(w, r)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTemplates.ExecuteTemplate(w, name, data); err != nil {
		log.Printf("render %s: %v", name, err)
	}
}
