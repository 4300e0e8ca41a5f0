package flash_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"idento/internal/api/flash"
)

func TestFlashRoundTrip(t *testing.T) {
	setRec := httptest.NewRecorder()
	flash.Set(setRec, "warning", "Email already registered.")

	cookies := setRec.Result().Cookies()
	require.Len(t, cookies, 1)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookies[0])
	popRec := httptest.NewRecorder()

	msg := flash.Pop(popRec, req)
	require.NotNil(t, msg)
	assert.Equal(t, "warning", msg.Category)
	assert.Equal(t, "Email already registered.", msg.Text)

	// Pop must clear the notice so it shows exactly once.
	cleared := popRec.Result().Cookies()
	require.Len(t, cleared, 1)
	assert.Equal(t, -1, cleared[0].MaxAge)
	assert.Empty(t, cleared[0].Value)
}

func TestPopWithoutNotice(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	assert.Nil(t, flash.Pop(rec, req))
	assert.Empty(t, rec.Result().Cookies())
}

func TestPopGarbledCookie(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "idento_flash", Value: "no-separator"})
	rec := httptest.NewRecorder()

	assert.Nil(t, flash.Pop(rec, req))
}

func TestMessageWithSeparatorInText(t *testing.T) {
	setRec := httptest.NewRecorder()
	flash.Set(setRec, "info", "Visit /portfolio: it is public.")

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(setRec.Result().Cookies()[0])

	msg := flash.Pop(httptest.NewRecorder(), req)
	require.NotNil(t, msg)
	assert.Equal(t, "info", msg.Category)
	assert.Equal(t, "Visit /portfolio: it is public.", msg.Text)
}
