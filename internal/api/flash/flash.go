// Package flash implements one-shot notice cookies: a notice set during
// one response is shown on the next page render and then cleared.
package flash

import (
	"net/http"
	"net/url"
	"strings"
)

const cookieName = "idento_flash"

// Message is a transient user-visible notice. Category is one of
// success, info, warning, danger and drives styling only.
type Message struct {
	Category string
	Text     string
}

// Set queues a notice for the next rendered page.
func Set(w http.ResponseWriter, category, text string) {
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    url.QueryEscape(category + ":" + text),
		Path:     "/",
		MaxAge:   60,
		HttpOnly: true,
	})
}

// Pop returns the pending notice, if any, and clears it.
func Pop(w http.ResponseWriter, r *http.Request) *Message {
	c, err := r.Cookie(cookieName)
	if err != nil || c.Value == "" {
		return nil
	}
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	decoded, err := url.QueryUnescape(c.Value)
	if err != nil {
		return nil
	}
	category, text, found := strings.Cut(decoded, ":")
	if !found {
		return nil
	}
	return &Message{Category: category, Text: text}
}
