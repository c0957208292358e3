package session_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/contact-hub/internal/config"
	"github.com/magabrotheeeer/contact-hub/internal/http/session"
)

func TestManager_WriteAttributes(t *testing.T) {
	tests := []struct {
		name         string
		sameSite     string
		isProd       bool
		wantSecure   bool
		wantSameSite http.SameSite
	}{
		{name: "lax in dev", sameSite: "lax", isProd: false, wantSecure: false, wantSameSite: http.SameSiteLaxMode},
		{name: "strict in prod", sameSite: "strict", isProd: true, wantSecure: true, wantSameSite: http.SameSiteStrictMode},
		{name: "none", sameSite: "none", isProd: false, wantSecure: false, wantSameSite: http.SameSiteNoneMode},
		{name: "unknown falls back to lax", sameSite: "whatever", isProd: false, wantSecure: false, wantSameSite: http.SameSiteLaxMode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := session.New(config.AuthCookie{SameSite: tt.sameSite, Path: "/"}, tt.isProd)
			w := httptest.NewRecorder()

			m.Write(w, "token-value", 3600)

			cookies := w.Result().Cookies()
			require.Len(t, cookies, 1)
			cookie := cookies[0]
			assert.Equal(t, session.CookieName, cookie.Name)
			assert.Equal(t, "token-value", cookie.Value)
			assert.Equal(t, "/", cookie.Path)
			assert.Equal(t, 3600, cookie.MaxAge)
			assert.True(t, cookie.HttpOnly)
			assert.Equal(t, tt.wantSecure, cookie.Secure)
			assert.Equal(t, tt.wantSameSite, cookie.SameSite)
		})
	}
}

func TestManager_Clear(t *testing.T) {
	m := session.New(config.AuthCookie{SameSite: "lax", Path: "/"}, false)
	w := httptest.NewRecorder()

	m.Clear(w)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Empty(t, cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)
}

func TestRead(t *testing.T) {
	t.Run("cookie wins over header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: session.CookieName, Value: "cookie-token"})
		req.Header.Set("Authorization", "Bearer header-token")

		assert.Equal(t, "cookie-token", session.Read(req))
	})

	t.Run("bearer header fallback", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer header-token")

		assert.Equal(t, "header-token", session.Read(req))
	})

	t.Run("no token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		assert.Empty(t, session.Read(req))
	})

	t.Run("non-bearer header ignored", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
		assert.Empty(t, session.Read(req))
	})
}
