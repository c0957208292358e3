// Package register реализует HTTP-обработчик регистрации пользователя.
//
// Handler принимает JSON-запрос с учетными данными, валидирует их,
// создает пользователя через сервис аутентификации, выставляет
// сессионную куку и возвращает выпущенную сессию в JSON-формате.
package register

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

// Request описывает тело запроса регистрации.
type Request struct {
	Username string `json:"username" validate:"required,max=50"`
	Email    string `json:"email" validate:"required,email,max=100"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// Service описывает интерфейс бизнес-логики регистрации.
type Service interface {
	Register(ctx context.Context, username, email, password string) (*auth.Session, error)
	TokenTTL() int
}

// Handler управляет HTTP-запросами на регистрацию пользователей.
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
	const op = "handlers.auth.register"
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

	sess, err := h.service.Register(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		log.Error("failed to register user", sl.Err(err))
		status, resp := response.MapError(err)
		if status == http.StatusConflict {
			resp = response.Error("username or email already exists")
		}
		render.Status(r, status)
		render.JSON(w, r, resp)
		return
	}

	log.Info("user registered", slog.String("username", sess.Principal.Username))
	h.cookies.Write(w, sess.Token, h.service.TokenTTL())
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, response.StatusOKWithData(sess))
}
