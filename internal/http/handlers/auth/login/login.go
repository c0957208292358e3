// Package login реализует HTTP-обработчик входа пользователя.
//
// Handler принимает JSON-запрос с именем и паролем, проверяет их через
// сервис аутентификации, выставляет сессионную куку и возвращает
// выпущенную сессию в JSON-формате. Неизвестное имя и неверный пароль
// дают одинаковый ответ 401.
package login

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/contact-hub/internal/http/response"
	"github.com/magabrotheeeer/contact-hub/internal/http/session"
	"github.com/magabrotheeeer/contact-hub/internal/lib/sl"
	"github.com/magabrotheeeer/contact-hub/internal/services/auth"
)

// Request описывает тело запроса входа.
type Request struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Service описывает интерфейс бизнес-логики входа.
type Service interface {
	Login(ctx context.Context, username, password string) (*auth.Session, error)
	TokenTTL() int
}

// Handler управляет HTTP-запросами на вход пользователей.
type Handler struct {
	log      *slog.Logger
	service  Service
	cookies  *session.Manager
	validate *validator.Validate
}

// New создает новый Handler с переданными логгером, сервисом и менеджером кук.
func New(log *slog.Logger, service Service, cookies *session.Manager) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		cookies:  cookies,
		validate: validator.New(),
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.login"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		render.Status(r, http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	sess, err := h.service.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		log.Warn("login rejected", sl.Err(err))
		status, resp := response.MapError(err)
		render.Status(r, status)
		render.JSON(w, r, resp)
		return
	}

	log.Info("user logged in", slog.String("username", sess.Principal.Username))
	h.cookies.Write(w, sess.Token, h.service.TokenTTL())
	render.JSON(w, r, response.StatusOKWithData(sess))
}
