// Package middlewarectx содержит HTTP middleware для аутентификации
// запросов и ограничения их частоты.
//
// AuthMiddleware извлекает сессионный токен из куки или заголовка
// Authorization, проверяет его и кладёт субъект запроса в контекст.
// В случае ошибки проверки возвращает HTTP 401 Unauthorized.
package middlewarectx

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/contact-hub/internal/http/response"
	"github.com/magabrotheeeer/contact-hub/internal/http/session"
	"github.com/magabrotheeeer/contact-hub/internal/lib/sl"
	"github.com/magabrotheeeer/contact-hub/internal/models"
)

// Key тип для ключей контекста HTTP-запроса.
type Key string

// PrincipalKey — ключ субъекта запроса в контексте.
const PrincipalKey Key = "principal"

// Authenticator описывает интерфейс сервиса для проверки сессионного токена.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (models.Principal, error)
}

// AuthMiddleware возвращает HTTP middleware, который проверяет сессионный
// токен из куки auth_token или заголовка Authorization.
//
// Если токен валиден, добавляет субъект запроса в контекст,
// иначе возвращает ошибку с HTTP статусом 401 Unauthorized.
func AuthMiddleware(auth Authenticator, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.AuthMiddleware"

			log := log.With(
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			tokenStr := session.Read(r)
			if tokenStr == "" {
				log.Info("missing session token")
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("authentication required"))
				return
			}

			principal, err := auth.Authenticate(r.Context(), tokenStr)
			if err != nil {
				log.Info("invalid or expired token", sl.Err(err))
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("authentication required"))
				return
			}
			ctx := context.WithValue(r.Context(), PrincipalKey, principal)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// PrincipalFromContext возвращает субъект запроса, положенный
// AuthMiddleware. Второе значение false означает, что запрос прошёл
// мимо middleware.
func PrincipalFromContext(ctx context.Context) (models.Principal, bool) {
	p, ok := ctx.Value(PrincipalKey).(models.Principal)
	return p, ok
}
