package handler

import (
	"log"
	"net/http"
	"time"

	"idento/internal/api/flash"
	"idento/internal/common"
)

// SessionCookie is the cookie carrying session evidence. The name is the
// one jwtauth's cookie extractor looks for.
const SessionCookie = "jwt"

func setSessionCookie(w http.ResponseWriter, token string, ttl time.Duration) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true, // never readable from page scripts
		SameSite: http.SameSiteLaxMode,
	})
}

func clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// redirectWithError recovers a failed operation at the request boundary:
// the error becomes a flash notice and the user lands back on a sensible
// prior page. Unexpected failures are logged and shown generically.
func redirectWithError(w http.ResponseWriter, r *http.Request, err error, backTo string) {
	status := common.HTTPStatusFromError(err)
	switch {
	case status >= http.StatusInternalServerError:
		log.Printf("%s %s: %v", r.Method, r.URL.Path, err)
		flash.Set(w, "danger", "Something went wrong. Please try again.")
	case status == http.StatusConflict || status == http.StatusNotFound:
		flash.Set(w, "warning", err.Error())
	default:
		flash.Set(w, "danger", err.Error())
	}
	http.Redirect(w, r, backTo, http.StatusSeeOther)
}
