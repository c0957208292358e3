// Package session инкапсулирует перенос сессионного токена через
// HTTP-куку. Обработчики и middleware не трогают http.Cookie напрямую.
package session

import (
	"net/http"
	"strings"

	"github.com/magabrotheeeer/contact-hub/internal/config"
)

// CookieName — имя сессионной куки с JWT.
const CookieName = "auth_token"

// Manager записывает, читает и гасит сессионную куку с едиными
// атрибутами. HttpOnly выставляется всегда, Secure — только в prod.
type Manager struct {
	path     string
	domain   string
	sameSite http.SameSite
	secure   bool
}

// New создает Manager из настроек приложения.
func New(cfg config.AuthCookie, isProd bool) *Manager {
	return &Manager{
		path:     cfg.Path,
		domain:   cfg.Domain,
		sameSite: parseSameSite(cfg.SameSite),
		secure:   isProd,
	}
}

// Write выставляет сессионную куку с токеном и временем жизни в секундах.
func (m *Manager) Write(w http.ResponseWriter, token string, maxAge int) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     m.path,
		Domain:   m.domain,
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: m.sameSite,
	})
}

// Clear гасит сессионную куку: пустое значение и отрицательный MaxAge.
func (m *Manager) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     m.path,
		Domain:   m.domain,
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: m.sameSite,
	})
}

// Read извлекает токен из куки запроса, а при её отсутствии — из
// заголовка Authorization: Bearer. Пустая строка означает, что токен
// не передан.
func Read(r *http.Request) string {
	if c, err := r.Cookie(CookieName); err == nil && c.Value != "" {
		return c.Value
	}
	authHeader := r.Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return ""
}

func parseSameSite(raw string) http.SameSite {
	switch strings.ToLower(raw) {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
