// Package appointment содержит бизнес-логику работы со встречами.
package appointment

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/magabrotheeeer/contact-hub/internal/apperr"
	"github.com/magabrotheeeer/contact-hub/internal/models"
	"github.com/magabrotheeeer/contact-hub/internal/services/access"
	"github.com/magabrotheeeer/contact-hub/internal/storage/bridge"
	"github.com/magabrotheeeer/contact-hub/internal/storage/memory"
)

// Store определяет методы хранилища встреч.
type Store interface {
	CreateAppointment(ctx context.Context, a models.Appointment) error
	FindAppointmentByID(ctx context.Context, id, ownerUID string) (*models.Appointment, error)
	UpdateAppointment(ctx context.Context, a models.Appointment) error
	DeleteAppointment(ctx context.Context, id, ownerUID string) error
	ListAppointments(ctx context.Context, ownerUID string, limit, offset int) ([]models.Appointment, error)
	ListAllAppointments(ctx context.Context, limit, offset int) ([]models.Appointment, error)
}

// NewBridge создает мост хранилища встреч с резервным хранилищем в памяти.
func NewBridge() *bridge.Bridge[Store] {
	return bridge.New[Store](
		func() Store { return memory.NewAppointmentStore() },
		MigrateStore,
	)
}

// MigrateStore копирует все встречи из from в to.
func MigrateStore(ctx context.Context, from, to Store) error {
	items, err := from.ListAllAppointments(ctx, 0, 0)
	if err != nil {
		return err
	}
	for _, item := range items {
		if err := to.CreateAppointment(ctx, item); err != nil {
			return err
		}
	}
	return nil
}

// Service реализует операции над встречами для аутентифицированного субъекта.
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

// Add создает встречу для субъекта p. Дата принимается в формате RFC 3339
// и не может быть в прошлом. Владелец выставляется из p безусловно.
func (s *Service) Add(ctx context.Context, p models.Principal, req models.AppointmentRequest) (models.Appointment, error) {
	const op = "appointment.Add"

	date, err := parseDate(req.Date)
	if err != nil {
		return models.Appointment{}, fmt.Errorf("%s: %w", op, err)
	}
	a, err := models.NewAppointment(req.ID, date, req.Description)
	if err != nil {
		return models.Appointment{}, fmt.Errorf("%s: %w", op, err)
	}
	a.OwnerUID = p.UID

	if err := s.stores.Get().CreateAppointment(ctx, a); err != nil {
		return models.Appointment{}, fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("created appointment", slog.String("id", a.ID))
	return a, nil
}

// GetByID возвращает встречу субъекта p. Чужая встреча неотличима
// от отсутствующей.
func (s *Service) GetByID(ctx context.Context, p models.Principal, id string) (models.Appointment, error) {
	const op = "appointment.GetByID"

	id, err := normalizeID(id)
	if err != nil {
		return models.Appointment{}, fmt.Errorf("%s: %w", op, err)
	}
	a, err := s.stores.Get().FindAppointmentByID(ctx, id, p.UID)
	if err != nil {
		return models.Appointment{}, fmt.Errorf("%s: %w", op, err)
	}
	return *a, nil
}

// GetAll возвращает встречи субъекта p с пагинацией.
func (s *Service) GetAll(ctx context.Context, p models.Principal, limit, offset int) ([]models.Appointment, error) {
	const op = "appointment.GetAll"

	items, err := s.stores.Get().ListAppointments(ctx, p.UID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return items, nil
}

// GetAllAllUsers возвращает встречи всех пользователей.
// Проверка административной роли выполняется до обращения к хранилищу.
func (s *Service) GetAllAllUsers(ctx context.Context, p models.Principal, limit, offset int) ([]models.Appointment, error) {
	const op = "appointment.GetAllAllUsers"

	if err := access.RequireAdminForAll(p, access.ScopeAll, "appointments"); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	items, err := s.stores.Get().ListAllAppointments(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return items, nil
}

// Update обновляет изменяемые поля встречи субъекта p.
func (s *Service) Update(ctx context.Context, p models.Principal, id string, req models.AppointmentRequest) (models.Appointment, error) {
	const op = "appointment.Update"

	id, err := normalizeID(id)
	if err != nil {
		return models.Appointment{}, fmt.Errorf("%s: %w", op, err)
	}
	date, err := parseDate(req.Date)
	if err != nil {
		return models.Appointment{}, fmt.Errorf("%s: %w", op, err)
	}

	store := s.stores.Get()
	existing, err := store.FindAppointmentByID(ctx, id, p.UID)
	if err != nil {
		return models.Appointment{}, fmt.Errorf("%s: %w", op, err)
	}
	if err := existing.Update(date, req.Description); err != nil {
		return models.Appointment{}, fmt.Errorf("%s: %w", op, err)
	}
	if err := store.UpdateAppointment(ctx, *existing); err != nil {
		return models.Appointment{}, fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("updated appointment", slog.String("id", id))
	return *existing, nil
}

// Delete удаляет встречу субъекта p.
func (s *Service) Delete(ctx context.Context, p models.Principal, id string) error {
	const op = "appointment.Delete"

	id, err := normalizeID(id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := s.stores.Get().DeleteAppointment(ctx, id, p.UID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("deleted appointment", slog.String("id", id))
	return nil
}

func parseDate(raw string) (time.Time, error) {
	date, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: field date must be a valid RFC 3339 timestamp", apperr.ErrValidation)
	}
	return date, nil
}

func normalizeID(id string) (string, error) {
	trimmed := strings.TrimSpace(id)
	if trimmed == "" {
		return "", fmt.Errorf("%w: field id must not be blank", apperr.ErrValidation)
	}
	return trimmed, nil
}
