// Package refresh реализует HTTP-обработчик обновления сессионного токена.
//
// Handler читает действующий токен из куки или заголовка Authorization,
// выпускает новый с тем же субъектом и обновляет сессионную куку.
// Просроченный токен не обновляется: клиент обязан войти заново.
package refresh

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/contact-hub/internal/http/response"
	"github.com/magabrotheeeer/contact-hub/internal/http/session"
	"github.com/magabrotheeeer/contact-hub/internal/lib/sl"
	"github.com/magabrotheeeer/contact-hub/internal/services/auth"
)

// Service описывает интерфейс бизнес-логики обновления токена.
type Service interface {
	Refresh(ctx context.Context, token string) (*auth.Session, error)
	TokenTTL() int
}

// Handler управляет HTTP-запросами на обновление токена.
type Handler struct {
	log     *slog.Logger
	service Service
	cookies *session.Manager
}

// New создает новый Handler с переданными логгером, сервисом и менеджером кук.
func New(log *slog.Logger, service Service, cookies *session.Manager) *Handler {
	return &Handler{
		log:     log,
		service: service,
		cookies: cookies,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.refresh"
	log := h.log.With(
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

	sess, err := h.service.Refresh(r.Context(), tokenStr)
	if err != nil {
		log.Warn("refresh rejected", sl.Err(err))
		status, resp := response.MapError(err)
		render.Status(r, status)
		render.JSON(w, r, resp)
		return
	}

	log.Info("session refreshed", slog.String("username", sess.Principal.Username))
	h.cookies.Write(w, sess.Token, h.service.TokenTTL())
	render.JSON(w, r, response.StatusOKWithData(sess))
}
