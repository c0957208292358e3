// Package task содержит бизнес-логику работы с задачами.
package task

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/magabrotheeeer/contact-hub/internal/apperr"
	"github.com/magabrotheeeer/contact-hub/internal/models"
	"github.com/magabrotheeeer/contact-hub/internal/services/access"
	"github.com/magabrotheeeer/contact-hub/internal/storage/bridge"
	"github.com/magabrotheeeer/contact-hub/internal/storage/memory"
)

// Store определяет методы хранилища задач.
type Store interface {
	CreateTask(ctx context.Context, t models.Task) error
	FindTaskByID(ctx context.Context, id, ownerUID string) (*models.Task, error)
	UpdateTask(ctx context.Context, t models.Task) error
	DeleteTask(ctx context.Context, id, ownerUID string) error
	ListTasks(ctx context.Context, ownerUID string, limit, offset int) ([]models.Task, error)
	ListAllTasks(ctx context.Context, limit, offset int) ([]models.Task, error)
}

// NewBridge создает мост хранилища задач с резервным хранилищем в памяти.
func NewBridge() *bridge.Bridge[Store] {
	return bridge.New[Store](
		func() Store { return memory.NewTaskStore() },
		MigrateStore,
	)
}

// MigrateStore копирует все задачи из from в to.
func MigrateStore(ctx context.Context, from, to Store) error {
	items, err := from.ListAllTasks(ctx, 0, 0)
	if err != nil {
		return err
	}
	for _, item := range items {
		if err := to.CreateTask(ctx, item); err != nil {
			return err
		}
	}
	return nil
}

// Service реализует операции над задачами для аутентифицированного субъекта.
type Service struct {
	stores *bridge.Bridge[Store]
	log    *slog.Logger
}

// New создает новый экземпляр Service.
func New(stores *bridge.Bridge[Store], log *slog.Logger) *Service {
	return &Service{
		stores: stores,
		log:    log,
	}
}

// Add создает задачу для субъекта p. Пустой статус в запросе означает
// TODO. Владелец выставляется из p безусловно.
func (s *Service) Add(ctx context.Context, p models.Principal, req models.TaskRequest) (models.Task, error) {
	const op = "task.Add"

	t, err := models.NewTask(req.ID, req.Name, req.Description, req.Status)
	if err != nil {
		return models.Task{}, fmt.Errorf("%s: %w", op, err)
	}
	t.OwnerUID = p.UID

	if err := s.stores.Get().CreateTask(ctx, t); err != nil {
		return models.Task{}, fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("created task", slog.String("id", t.ID))
	return t, nil
}

// GetByID возвращает задачу субъекта p. Чужая задача неотличима
// от отсутствующей.
func (s *Service) GetByID(ctx context.Context, p models.Principal, id string) (models.Task, error) {
	const op = "task.GetByID"

	id, err := normalizeID(id)
	if err != nil {
		return models.Task{}, fmt.Errorf("%s: %w", op, err)
	}
	t, err := s.stores.Get().FindTaskByID(ctx, id, p.UID)
	if err != nil {
		return models.Task{}, fmt.Errorf("%s: %w", op, err)
	}
	return *t, nil
}

// GetAll возвращает задачи субъекта p с пагинацией.
func (s *Service) GetAll(ctx context.Context, p models.Principal, limit, offset int) ([]models.Task, error) {
	const op = "task.GetAll"

	items, err := s.stores.Get().ListTasks(ctx, p.UID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return items, nil
}

// GetAllAllUsers возвращает задачи всех пользователей.
// Проверка административной роли выполняется до обращения к хранилищу.
func (s *Service) GetAllAllUsers(ctx context.Context, p models.Principal, limit, offset int) ([]models.Task, error) {
	const op = "task.GetAllAllUsers"

	if err := access.RequireAdminForAll(p, access.ScopeAll, "tasks"); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	items, err := s.stores.Get().ListAllTasks(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return items, nil
}

// Update обновляет изменяемые поля задачи субъекта p, включая статус.
func (s *Service) Update(ctx context.Context, p models.Principal, id string, req models.TaskRequest) (models.Task, error) {
	const op = "task.Update"

	id, err := normalizeID(id)
	if err != nil {
		return models.Task{}, fmt.Errorf("%s: %w", op, err)
	}

	store := s.stores.Get()
	existing, err := store.FindTaskByID(ctx, id, p.UID)
	if err != nil {
		return models.Task{}, fmt.Errorf("%s: %w", op, err)
	}
	if err := existing.Update(req.Name, req.Description, req.Status); err != nil {
		return models.Task{}, fmt.Errorf("%s: %w", op, err)
	}
	if err := store.UpdateTask(ctx, *existing); err != nil {
		return models.Task{}, fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("updated task", slog.String("id", id))
	return *existing, nil
}

// Delete удаляет задачу субъекта p.
func (s *Service) Delete(ctx context.Context, p models.Principal, id string) error {
	const op = "task.Delete"

	id, err := normalizeID(id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := s.stores.Get().DeleteTask(ctx, id, p.UID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("deleted task", slog.String("id", id))
	return nil
}

func normalizeID(id string) (string, error) {
	trimmed := strings.TrimSpace(id)
	if trimmed == "" {
		return "", fmt.Errorf("%w: field id must not be blank", apperr.ErrValidation)
	}
	return trimmed, nil
}
