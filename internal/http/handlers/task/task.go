// Package task реализует HTTP-обработчики CRUD-операций над задачами.
package task

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/contact-hub/internal/http/middlewarectx"
	"github.com/magabrotheeeer/contact-hub/internal/http/query"
	"github.com/magabrotheeeer/contact-hub/internal/http/response"
	"github.com/magabrotheeeer/contact-hub/internal/lib/sl"
	"github.com/magabrotheeeer/contact-hub/internal/models"
)

// Service описывает интерфейс бизнес-логики работы с задачами.
type Service interface {
	Add(ctx context.Context, p models.Principal, req models.TaskRequest) (models.Task, error)
	GetByID(ctx context.Context, p models.Principal, id string) (models.Task, error)
	GetAll(ctx context.Context, p models.Principal, limit, offset int) ([]models.Task, error)
	GetAllAllUsers(ctx context.Context, p models.Principal, limit, offset int) ([]models.Task, error)
	Update(ctx context.Context, p models.Principal, id string, req models.TaskRequest) (models.Task, error)
	Delete(ctx context.Context, p models.Principal, id string) error
}

// Handler управляет HTTP-запросами к задачам.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// Create обрабатывает POST /tasks.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.task.create"
	log := h.requestLogger(r, op)

	principal, ok := middlewarectx.PrincipalFromContext(r.Context())
	if !ok {
		unauthorized(w, r, log)
		return
	}

	var req models.TaskRequest
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

	created, err := h.service.Add(r.Context(), principal, req)
	if err != nil {
		log.Error("failed to create task", sl.Err(err))
		renderError(w, r, err)
		return
	}

	log.Info("task created", slog.String("id", created.ID))
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, response.StatusOKWithData(created))
}

// Read обрабатывает GET /tasks/{id}.
func (h *Handler) Read(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.task.read"
	log := h.requestLogger(r, op)

	principal, ok := middlewarectx.PrincipalFromContext(r.Context())
	if !ok {
		unauthorized(w, r, log)
		return
	}

	id := chi.URLParam(r, "id")
	found, err := h.service.GetByID(r.Context(), principal, id)
	if err != nil {
		log.Info("failed to read task", sl.Err(err))
		renderError(w, r, err)
		return
	}
	render.JSON(w, r, response.StatusOKWithData(found))
}

// List обрабатывает GET /tasks. Параметр all=true возвращает записи
// всех пользователей и доступен только администратору.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.task.list"
	log := h.requestLogger(r, op)

	principal, ok := middlewarectx.PrincipalFromContext(r.Context())
	if !ok {
		unauthorized(w, r, log)
		return
	}

	params, err := query.ParseList(r)
	if err != nil {
		log.Error("invalid list parameters", sl.Err(err))
		renderError(w, r, err)
		return
	}

	var items []models.Task
	if params.All {
		items, err = h.service.GetAllAllUsers(r.Context(), principal, params.Limit, params.Offset)
	} else {
		items, err = h.service.GetAll(r.Context(), principal, params.Limit, params.Offset)
	}
	if err != nil {
		log.Warn("failed to list tasks", sl.Err(err))
		renderError(w, r, err)
		return
	}
	render.JSON(w, r, response.StatusOKWithData(items))
}

// Update обрабатывает PUT /tasks/{id}.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.task.update"
	log := h.requestLogger(r, op)

	principal, ok := middlewarectx.PrincipalFromContext(r.Context())
	if !ok {
		unauthorized(w, r, log)
		return
	}

	var req models.TaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}
	req.ID = chi.URLParam(r, "id")
	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		render.Status(r, http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	updated, err := h.service.Update(r.Context(), principal, req.ID, req)
	if err != nil {
		log.Info("failed to update task", sl.Err(err))
		renderError(w, r, err)
		return
	}

	log.Info("task updated", slog.String("id", updated.ID))
	render.JSON(w, r, response.StatusOKWithData(updated))
}

// Remove обрабатывает DELETE /tasks/{id}.
func (h *Handler) Remove(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.task.remove"
	log := h.requestLogger(r, op)

	principal, ok := middlewarectx.PrincipalFromContext(r.Context())
	if !ok {
		unauthorized(w, r, log)
		return
	}

	id := chi.URLParam(r, "id")
	if err := h.service.Delete(r.Context(), principal, id); err != nil {
		log.Info("failed to delete task", sl.Err(err))
		renderError(w, r, err)
		return
	}

	log.Info("task deleted", slog.String("id", id))
	render.JSON(w, r, response.OK())
}

func (h *Handler) requestLogger(r *http.Request, op string) *slog.Logger {
	return h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)
}

func unauthorized(w http.ResponseWriter, r *http.Request, log *slog.Logger) {
	log.Error("principal not found in context")
	render.Status(r, http.StatusUnauthorized)
	render.JSON(w, r, response.Error("authentication required"))
}

func renderError(w http.ResponseWriter, r *http.Request, err error) {
	status, resp := response.MapError(err)
	render.Status(r, status)
	render.JSON(w, r, resp)
}
