// Package contacthub собирает приложение: хранилище, кеш, сервисы,
// маршруты и HTTP-сервер с корректным завершением.
package contacthub

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/magabrotheeeer/contact-hub/internal/cache"
	"github.com/magabrotheeeer/contact-hub/internal/config"
	"github.com/magabrotheeeer/contact-hub/internal/http/session"
	"github.com/magabrotheeeer/contact-hub/internal/lib/jwt"
	"github.com/magabrotheeeer/contact-hub/internal/migrations"
	appointmentservice "github.com/magabrotheeeer/contact-hub/internal/services/appointment"
	authservice "github.com/magabrotheeeer/contact-hub/internal/services/auth"
	contactservice "github.com/magabrotheeeer/contact-hub/internal/services/contact"
	projectservice "github.com/magabrotheeeer/contact-hub/internal/services/project"
	taskservice "github.com/magabrotheeeer/contact-hub/internal/services/task"
	"github.com/magabrotheeeer/contact-hub/internal/storage/repository"
)

// App держит HTTP-сервер и ресурсы, закрываемые при остановке.
type App struct {
	server *http.Server
	logger *slog.Logger
	db     *repository.Storage
	cache  *cache.Cache
}

// New инициализирует приложение.
//
// Доменные сервисы создаются поверх мостов хранилищ и работоспособны
// сразу, на резервных хранилищах в памяти. После применения миграций
// PostgreSQL регистрируется в каждом мосте, и накопленные записи
// переезжают в базу.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	contactBridge := contactservice.NewBridge()
	taskBridge := taskservice.NewBridge()
	projectBridge := projectservice.NewBridge()
	appointmentBridge := appointmentservice.NewBridge()

	db, err := repository.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, err
	}
	if err = migrations.Run(db.DB, cfg.MigrationsPath); err != nil {
		return nil, err
	}
	if err := contactBridge.Register(ctx, db); err != nil {
		return nil, err
	}
	if err := taskBridge.Register(ctx, db); err != nil {
		return nil, err
	}
	if err := projectBridge.Register(ctx, db); err != nil {
		return nil, err
	}
	if err := appointmentBridge.Register(ctx, db); err != nil {
		return nil, err
	}

	cacheRedis, err := cache.InitServer(ctx, cfg.RedisConnection)
	if err != nil {
		return nil, err
	}

	maker, err := jwt.NewMaker(cfg.JWTToken.SecretKey, cfg.JWTToken.TokenTTL)
	if err != nil {
		return nil, err
	}
	cookies := session.New(cfg.AuthCookie, cfg.IsProd())

	authService := authservice.New(db, maker, logger)
	contactService := contactservice.New(contactBridge, cacheRedis, logger)
	taskService := taskservice.New(taskBridge, logger)
	projectService := projectservice.New(projectBridge, contactService, logger)
	appointmentService := appointmentservice.New(appointmentBridge, logger)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, cookies, authService,
		contactService, taskService, projectService, appointmentService)

	srv := &http.Server{
		Addr:         cfg.Address,
		Handler:      router,
		ReadTimeout:  cfg.Timeout,
		WriteTimeout: cfg.Timeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
		db:     db,
		cache:  cacheRedis,
	}, nil
}

// Run запускает HTTP-сервер и блокируется до его остановки или отмены ctx.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		if cerr := a.db.DB.Close(); cerr != nil && err == nil {
			err = cerr
		}
		if cerr := a.cache.Db.Close(); cerr != nil && err == nil {
			err = cerr
		}
		return err
	}
}
