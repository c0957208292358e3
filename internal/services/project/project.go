// Package project содержит бизнес-логику работы с проектами,
// включая связи проектов с контактами того же владельца.
package project

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/magabrotheeeer/contact-hub/internal/apperr"
	"github.com/magabrotheeeer/contact-hub/internal/models"
	"github.com/magabrotheeeer/contact-hub/internal/services/access"
	"github.com/magabrotheeeer/contact-hub/internal/storage/bridge"
	"github.com/magabrotheeeer/contact-hub/internal/storage/memory"
)

// Store определяет методы хранилища проектов и связей с контактами.
type Store interface {
	CreateProject(ctx context.Context, p models.Project) error
	FindProjectByID(ctx context.Context, id, ownerUID string) (*models.Project, error)
	UpdateProject(ctx context.Context, p models.Project) error
	DeleteProject(ctx context.Context, id, ownerUID string) error
	ListProjects(ctx context.Context, ownerUID string, limit, offset int) ([]models.Project, error)
	ListAllProjects(ctx context.Context, limit, offset int) ([]models.Project, error)

	LinkProjectContact(ctx context.Context, link models.ProjectContact) error
	UnlinkProjectContact(ctx context.Context, projectID, contactID, ownerUID string) error
	ListProjectContacts(ctx context.Context, projectID, ownerUID string) ([]models.ProjectContact, error)
	ListAllProjectContacts(ctx context.Context, limit, offset int) ([]models.ProjectContact, error)
}

// ContactSource разрешает контакты субъекта при связывании и листинге.
// Реализуется сервисом контактов: чужой контакт выглядит как отсутствующий.
type ContactSource interface {
	GetByID(ctx context.Context, p models.Principal, id string) (models.Contact, error)
}

// NewBridge создает мост хранилища проектов с резервным хранилищем в памяти.
func NewBridge() *bridge.Bridge[Store] {
	return bridge.New[Store](
		func() Store { return memory.NewProjectStore() },
		MigrateStore,
	)
}

// MigrateStore копирует все проекты и их связи с контактами из from в to.
func MigrateStore(ctx context.Context, from, to Store) error {
	items, err := from.ListAllProjects(ctx, 0, 0)
	if err != nil {
		return err
	}
	for _, item := range items {
		if err := to.CreateProject(ctx, item); err != nil {
			return err
		}
	}
	links, err := from.ListAllProjectContacts(ctx, 0, 0)
	if err != nil {
		return err
	}
	for _, link := range links {
		if err := to.LinkProjectContact(ctx, link); err != nil {
			return err
		}
	}
	return nil
}

// Service реализует операции над проектами для аутентифицированного субъекта.
type Service struct {
	stores   *bridge.Bridge[Store]
	contacts ContactSource
	log      *slog.Logger
}

// New создает новый экземпляр Service.
func New(stores *bridge.Bridge[Store], contacts ContactSource, log *slog.Logger) *Service {
	return &Service{
		stores:   stores,
		contacts: contacts,
		log:      log,
	}
}

// Add создает проект для субъекта p. Пустой статус в запросе означает
// ACTIVE. Владелец выставляется из p безусловно.
func (s *Service) Add(ctx context.Context, p models.Principal, req models.ProjectRequest) (models.Project, error) {
	const op = "project.Add"

	proj, err := models.NewProject(req.ID, req.Name, req.Description, req.Status)
	if err != nil {
		return models.Project{}, fmt.Errorf("%s: %w", op, err)
	}
	proj.OwnerUID = p.UID

	if err := s.stores.Get().CreateProject(ctx, proj); err != nil {
		return models.Project{}, fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("created project", slog.String("id", proj.ID))
	return proj, nil
}

// GetByID возвращает проект субъекта p. Чужой проект неотличим
// от отсутствующего.
func (s *Service) GetByID(ctx context.Context, p models.Principal, id string) (models.Project, error) {
	const op = "project.GetByID"

	id, err := normalizeID(id)
	if err != nil {
		return models.Project{}, fmt.Errorf("%s: %w", op, err)
	}
	proj, err := s.stores.Get().FindProjectByID(ctx, id, p.UID)
	if err != nil {
		return models.Project{}, fmt.Errorf("%s: %w", op, err)
	}
	return *proj, nil
}

// GetAll возвращает проекты субъекта p с пагинацией.
func (s *Service) GetAll(ctx context.Context, p models.Principal, limit, offset int) ([]models.Project, error) {
	const op = "project.GetAll"

	items, err := s.stores.Get().ListProjects(ctx, p.UID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return items, nil
}

// GetAllAllUsers возвращает проекты всех пользователей.
// Проверка административной роли выполняется до обращения к хранилищу.
func (s *Service) GetAllAllUsers(ctx context.Context, p models.Principal, limit, offset int) ([]models.Project, error) {
	const op = "project.GetAllAllUsers"

	if err := access.RequireAdminForAll(p, access.ScopeAll, "projects"); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	items, err := s.stores.Get().ListAllProjects(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return items, nil
}

// Update обновляет изменяемые поля проекта субъекта p, включая статус.
func (s *Service) Update(ctx context.Context, p models.Principal, id string, req models.ProjectRequest) (models.Project, error) {
	const op = "project.Update"

	id, err := normalizeID(id)
	if err != nil {
		return models.Project{}, fmt.Errorf("%s: %w", op, err)
	}

	store := s.stores.Get()
	existing, err := store.FindProjectByID(ctx, id, p.UID)
	if err != nil {
		return models.Project{}, fmt.Errorf("%s: %w", op, err)
	}
	if err := existing.Update(req.Name, req.Description, req.Status); err != nil {
		return models.Project{}, fmt.Errorf("%s: %w", op, err)
	}
	if err := store.UpdateProject(ctx, *existing); err != nil {
		return models.Project{}, fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("updated project", slog.String("id", id))
	return *existing, nil
}

// Delete удаляет проект субъекта p.
func (s *Service) Delete(ctx context.Context, p models.Principal, id string) error {
	const op = "project.Delete"

	id, err := normalizeID(id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := s.stores.Get().DeleteProject(ctx, id, p.UID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("deleted project", slog.String("id", id))
	return nil
}

// LinkContact связывает контакт с проектом субъекта p, при
// необходимости с ролью. И проект, и контакт должны принадлежать p:
// чужие неотличимы от отсутствующих. Повторная связь той же пары
// возвращает apperr.ErrDuplicate.
func (s *Service) LinkContact(ctx context.Context, p models.Principal, projectID string, req models.ProjectContactRequest) error {
	const op = "project.LinkContact"

	projectID, err := normalizeID(projectID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	store := s.stores.Get()
	if _, err := store.FindProjectByID(ctx, projectID, p.UID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if _, err := s.contacts.GetByID(ctx, p, req.ContactID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	link, err := models.NewProjectContact(projectID, req.ContactID, req.Role)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	link.OwnerUID = p.UID

	if err := store.LinkProjectContact(ctx, link); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("linked contact to project",
		slog.String("project_id", projectID), slog.String("contact_id", link.ContactID))
	return nil
}

// UnlinkContact удаляет связь проекта и контакта субъекта p.
// Отсутствующая связь возвращается как apperr.ErrNotFound.
func (s *Service) UnlinkContact(ctx context.Context, p models.Principal, projectID, contactID string) error {
	const op = "project.UnlinkContact"

	projectID, err := normalizeID(projectID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	contactID, err = normalizeID(contactID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.stores.Get().UnlinkProjectContact(ctx, projectID, contactID, p.UID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("unlinked contact from project",
		slog.String("project_id", projectID), slog.String("contact_id", contactID))
	return nil
}

// ListLinkedContacts возвращает контакты, связанные с проектом
// субъекта p. Чужой проект неотличим от отсутствующего. Связь,
// контакт которой уже удален, пропускается: в базе такие связи
// убирает каскадное удаление, резервное хранилище в памяти
// каскада не имеет.
func (s *Service) ListLinkedContacts(ctx context.Context, p models.Principal, projectID string) ([]models.Contact, error) {
	const op = "project.ListLinkedContacts"

	projectID, err := normalizeID(projectID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	store := s.stores.Get()
	if _, err := store.FindProjectByID(ctx, projectID, p.UID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	links, err := store.ListProjectContacts(ctx, projectID, p.UID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var result []models.Contact
	for _, link := range links {
		c, err := s.contacts.GetByID(ctx, p, link.ContactID)
		if errors.Is(err, apperr.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, c)
	}
	return result, nil
}

func normalizeID(id string) (string, error) {
	trimmed := strings.TrimSpace(id)
	if trimmed == "" {
		return "", fmt.Errorf("%w: field id must not be blank", apperr.ErrValidation)
	}
	return trimmed, nil
}
