// Package logout реализует HTTP-обработчик выхода пользователя.
// Сервер не хранит состояние сессий, поэтому выход сводится
// к гашению сессионной куки на клиенте.
package logout

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"

	"github.com/magabrotheeeer/contact-hub/internal/http/session"
)

// Handler управляет HTTP-запросами на выход.
type Handler struct {
	log     *slog.Logger
	cookies *session.Manager
}

// New создает новый Handler с переданными логгером и менеджером кук.
func New(log *slog.Logger, cookies *session.Manager) *Handler {
	return &Handler{
		log:     log,
		cookies: cookies,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.logout"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	h.cookies.Clear(w)
	log.Info("session cookie cleared")
	w.WriteHeader(http.StatusNoContent)
}
