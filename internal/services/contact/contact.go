// Package contact содержит бизнес-логику работы с контактами,
// включая изоляцию данных по владельцу и кеширование чтений.
package contact

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/magabrotheeeer/contact-hub/internal/apperr"
	"github.com/magabrotheeeer/contact-hub/internal/lib/sl"
	"github.com/magabrotheeeer/contact-hub/internal/models"
	"github.com/magabrotheeeer/contact-hub/internal/services/access"
	"github.com/magabrotheeeer/contact-hub/internal/storage/bridge"
	"github.com/magabrotheeeer/contact-hub/internal/storage/memory"
)

// Store определяет методы хранилища контактов. Все выборки и мутации,
// кроме ListAllContacts, ограничены владельцем.
type Store interface {
	CreateContact(ctx context.Context, c models.Contact) error
	FindContactByID(ctx context.Context, id, ownerUID string) (*models.Contact, error)
	UpdateContact(ctx context.Context, c models.Contact) error
	DeleteContact(ctx context.Context, id, ownerUID string) error
	ListContacts(ctx context.Context, ownerUID string, limit, offset int) ([]models.Contact, error)
	ListAllContacts(ctx context.Context, limit, offset int) ([]models.Contact, error)
}

// Cache описывает методы для кэширования данных.
type Cache interface {
	Get(ctx context.Context, key string, result any) (bool, error)
	Set(ctx context.Context, key string, value any, expiration time.Duration) error
	Invalidate(ctx context.Context, key string) error
}

const cacheTTL = time.Hour

// NewBridge создает мост хранилища контактов с резервным хранилищем
// в памяти и миграцией накопленных записей при регистрации
// постоянного хранилища.
func NewBridge() *bridge.Bridge[Store] {
	return bridge.New[Store](
		func() Store { return memory.NewContactStore() },
		MigrateStore,
	)
}

// MigrateStore копирует все контакты из from в to. Конфликт
// идентификаторов возвращается наружу как apperr.ErrDuplicate.
func MigrateStore(ctx context.Context, from, to Store) error {
	items, err := from.ListAllContacts(ctx, 0, 0)
	if err != nil {
		return err
	}
	for _, item := range items {
		if err := to.CreateContact(ctx, item); err != nil {
			return err
		}
	}
	return nil
}

// Service реализует операции над контактами для аутентифицированного
// субъекта. Хранилище разрешается через мост при каждом вызове, поэтому
// после регистрации постоянного хранилища сервис сразу работает с ним.
type Service struct {
	stores *bridge.Bridge[Store]
	cache  Cache
	log    *slog.Logger
}

// New создает новый экземпляр Service.
func New(stores *bridge.Bridge[Store], cache Cache, log *slog.Logger) *Service {
	return &Service{
		stores: stores,
		cache:  cache,
		log:    log,
	}
}

// Add создает контакт для субъекта p. Владелец выставляется из p
// безусловно: поле владельца из запроса игнорируется.
func (s *Service) Add(ctx context.Context, p models.Principal, req models.ContactRequest) (models.Contact, error) {
	const op = "contact.Add"

	c, err := models.NewContact(req.ID, req.FirstName, req.LastName, req.Phone, req.Address)
	if err != nil {
		return models.Contact{}, fmt.Errorf("%s: %w", op, err)
	}
	c.OwnerUID = p.UID

	if err := s.stores.Get().CreateContact(ctx, c); err != nil {
		return models.Contact{}, fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("created contact", slog.String("id", c.ID))
	return c, nil
}

// GetByID возвращает контакт субъекта p. Чужой контакт неотличим
// от отсутствующего: в обоих случаях apperr.ErrNotFound.
func (s *Service) GetByID(ctx context.Context, p models.Principal, id string) (models.Contact, error) {
	const op = "contact.GetByID"

	id, err := normalizeID(id)
	if err != nil {
		return models.Contact{}, fmt.Errorf("%s: %w", op, err)
	}

	cacheKey := s.cacheKey(p.UID, id)
	var cached models.Contact
	found, err := s.cache.Get(ctx, cacheKey, &cached)
	if err != nil {
		s.log.Warn("cache lookup failed", slog.String("key", cacheKey), sl.Err(err))
	}
	if found {
		return cached, nil
	}

	c, err := s.stores.Get().FindContactByID(ctx, id, p.UID)
	if err != nil {
		return models.Contact{}, fmt.Errorf("%s: %w", op, err)
	}
	if err := s.cache.Set(ctx, cacheKey, c, cacheTTL); err != nil {
		s.log.Warn("failed to cache contact", slog.String("key", cacheKey), sl.Err(err))
	}
	return *c, nil
}

// GetAll возвращает контакты субъекта p с пагинацией.
func (s *Service) GetAll(ctx context.Context, p models.Principal, limit, offset int) ([]models.Contact, error) {
	const op = "contact.GetAll"

	items, err := s.stores.Get().ListContacts(ctx, p.UID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return items, nil
}

// GetAllAllUsers возвращает контакты всех пользователей.
// Проверка административной роли выполняется до обращения к хранилищу.
func (s *Service) GetAllAllUsers(ctx context.Context, p models.Principal, limit, offset int) ([]models.Contact, error) {
	const op = "contact.GetAllAllUsers"

	if err := access.RequireAdminForAll(p, access.ScopeAll, "contacts"); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	items, err := s.stores.Get().ListAllContacts(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return items, nil
}

// Update обновляет изменяемые поля контакта субъекта p.
// Идентификатор и владелец не меняются.
func (s *Service) Update(ctx context.Context, p models.Principal, id string, req models.ContactRequest) (models.Contact, error) {
	const op = "contact.Update"

	id, err := normalizeID(id)
	if err != nil {
		return models.Contact{}, fmt.Errorf("%s: %w", op, err)
	}

	store := s.stores.Get()
	existing, err := store.FindContactByID(ctx, id, p.UID)
	if err != nil {
		return models.Contact{}, fmt.Errorf("%s: %w", op, err)
	}
	if err := existing.Update(req.FirstName, req.LastName, req.Phone, req.Address); err != nil {
		return models.Contact{}, fmt.Errorf("%s: %w", op, err)
	}
	if err := store.UpdateContact(ctx, *existing); err != nil {
		return models.Contact{}, fmt.Errorf("%s: %w", op, err)
	}

	cacheKey := s.cacheKey(p.UID, id)
	if err := s.cache.Set(ctx, cacheKey, existing, cacheTTL); err != nil {
		s.log.Warn("failed to refresh cached contact", slog.String("key", cacheKey), sl.Err(err))
	}
	s.log.Info("updated contact", slog.String("id", id))
	return *existing, nil
}

// Delete удаляет контакт субъекта p и инвалидирует кеш.
func (s *Service) Delete(ctx context.Context, p models.Principal, id string) error {
	const op = "contact.Delete"

	id, err := normalizeID(id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	cacheKey := s.cacheKey(p.UID, id)
	if err := s.cache.Invalidate(ctx, cacheKey); err != nil {
		s.log.Warn("failed to invalidate cached contact", slog.String("key", cacheKey), sl.Err(err))
	}
	if err := s.stores.Get().DeleteContact(ctx, id, p.UID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("deleted contact", slog.String("id", id))
	return nil
}

func (s *Service) cacheKey(ownerUID, id string) string {
	return fmt.Sprintf("contact:%s:%s", ownerUID, id)
}

func normalizeID(id string) (string, error) {
	trimmed := strings.TrimSpace(id)
	if trimmed == "" {
		return "", fmt.Errorf("%w: field id must not be blank", apperr.ErrValidation)
	}
	return trimmed, nil
}
