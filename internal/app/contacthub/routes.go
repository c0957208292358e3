package contacthub

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	appointmenthandler "github.com/magabrotheeeer/contact-hub/internal/http/handlers/appointment"
	"github.com/magabrotheeeer/contact-hub/internal/http/handlers/auth/login"
	"github.com/magabrotheeeer/contact-hub/internal/http/handlers/auth/logout"
	"github.com/magabrotheeeer/contact-hub/internal/http/handlers/auth/refresh"
	"github.com/magabrotheeeer/contact-hub/internal/http/handlers/auth/register"
	contacthandler "github.com/magabrotheeeer/contact-hub/internal/http/handlers/contact"
	projecthandler "github.com/magabrotheeeer/contact-hub/internal/http/handlers/project"
	taskhandler "github.com/magabrotheeeer/contact-hub/internal/http/handlers/task"
	"github.com/magabrotheeeer/contact-hub/internal/http/middlewarectx"
	"github.com/magabrotheeeer/contact-hub/internal/http/session"
	authservice "github.com/magabrotheeeer/contact-hub/internal/services/auth"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(
	r chi.Router,
	logger *slog.Logger,
	cookies *session.Manager,
	authService *authservice.Service,
	contactService contacthandler.Service,
	taskService taskhandler.Service,
	projectService projecthandler.Service,
	appointmentService appointmenthandler.Service,
) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	r.Route("/api/v1", func(r chi.Router) {
		// Открытые конечные точки
		r.Post("/auth/register", register.New(logger, authService, cookies).ServeHTTP)
		r.Post("/auth/login", login.New(logger, authService, cookies).ServeHTTP)
		r.Post("/auth/refresh", refresh.New(logger, authService, cookies).ServeHTTP)
		r.Post("/auth/logout", logout.New(logger, cookies).ServeHTTP)

		// Группа с аутентификацией по сессионному токену
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.AuthMiddleware(authService, logger))
			r.Use(middlewarectx.RateLimitMiddleware(logger))

			contacts := contacthandler.New(logger, contactService)
			r.Post("/contacts", contacts.Create)
			r.Get("/contacts", contacts.List)
			r.Get("/contacts/{id}", contacts.Read)
			r.Put("/contacts/{id}", contacts.Update)
			r.Delete("/contacts/{id}", contacts.Remove)

			tasks := taskhandler.New(logger, taskService)
			r.Post("/tasks", tasks.Create)
			r.Get("/tasks", tasks.List)
			r.Get("/tasks/{id}", tasks.Read)
			r.Put("/tasks/{id}", tasks.Update)
			r.Delete("/tasks/{id}", tasks.Remove)

			projects := projecthandler.New(logger, projectService)
			r.Post("/projects", projects.Create)
			r.Get("/projects", projects.List)
			r.Get("/projects/{id}", projects.Read)
			r.Put("/projects/{id}", projects.Update)
			r.Delete("/projects/{id}", projects.Remove)
			r.Post("/projects/{id}/contacts", projects.LinkContact)
			r.Get("/projects/{id}/contacts", projects.ListContacts)
			r.Delete("/projects/{id}/contacts/{contactId}", projects.UnlinkContact)

			appointments := appointmenthandler.New(logger, appointmentService)
			r.Post("/appointments", appointments.Create)
			r.Get("/appointments", appointments.List)
			r.Get("/appointments/{id}", appointments.Read)
			r.Put("/appointments/{id}", appointments.Update)
			r.Delete("/appointments/{id}", appointments.Remove)
		})
	})

	r.Handle("/metrics", promhttp.Handler())
}
