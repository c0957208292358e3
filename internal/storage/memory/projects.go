package memory

import (
	"context"

	"github.com/magabrotheeeer/contact-hub/internal/models"
)

// ProjectStore — хранилище проектов и их связей с контактами в памяти.
type ProjectStore struct {
	c     *collection[models.Project]
	links *collection[models.ProjectContact]
}

// NewProjectStore создает пустое хранилище проектов.
func NewProjectStore() *ProjectStore {
	return &ProjectStore{
		c: newCollection(func(p models.Project) (string, string) {
			return p.ID, p.OwnerUID
		}),
		links: newCollection(func(l models.ProjectContact) (string, string) {
			return l.ProjectID + "/" + l.ContactID, l.OwnerUID
		}),
	}
}

// CreateProject сохраняет новый проект.
func (s *ProjectStore) CreateProject(_ context.Context, p models.Project) error {
	return s.c.create(p)
}

// FindProjectByID возвращает проект по идентификатору в пределах владельца.
func (s *ProjectStore) FindProjectByID(_ context.Context, id, ownerUID string) (*models.Project, error) {
	p, err := s.c.find(id, ownerUID)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// UpdateProject обновляет существующий проект.
func (s *ProjectStore) UpdateProject(_ context.Context, p models.Project) error {
	return s.c.update(p)
}

// DeleteProject удаляет проект и все его связи с контактами,
// как это делает каскадное удаление по внешнему ключу в базе.
func (s *ProjectStore) DeleteProject(_ context.Context, id, ownerUID string) error {
	if err := s.c.delete(id, ownerUID); err != nil {
		return err
	}
	stale := s.links.list(func(l models.ProjectContact) bool {
		return l.ProjectID == id && l.OwnerUID == ownerUID
	}, 0, 0)
	for _, l := range stale {
		_ = s.links.delete(l.ProjectID+"/"+l.ContactID, l.OwnerUID)
	}
	return nil
}

// ListProjects возвращает проекты владельца с пагинацией.
func (s *ProjectStore) ListProjects(_ context.Context, ownerUID string, limit, offset int) ([]models.Project, error) {
	return s.c.list(func(p models.Project) bool { return p.OwnerUID == ownerUID }, limit, offset), nil
}

// ListAllProjects возвращает проекты всех пользователей с пагинацией.
func (s *ProjectStore) ListAllProjects(_ context.Context, limit, offset int) ([]models.Project, error) {
	return s.c.list(func(models.Project) bool { return true }, limit, offset), nil
}

// LinkProjectContact сохраняет связь проекта и контакта.
// Повторная связь той же пары возвращает apperr.ErrDuplicate.
func (s *ProjectStore) LinkProjectContact(_ context.Context, link models.ProjectContact) error {
	return s.links.create(link)
}

// UnlinkProjectContact удаляет связь проекта и контакта в пределах владельца.
func (s *ProjectStore) UnlinkProjectContact(_ context.Context, projectID, contactID, ownerUID string) error {
	return s.links.delete(projectID+"/"+contactID, ownerUID)
}

// ListProjectContacts возвращает связи проекта в пределах владельца.
func (s *ProjectStore) ListProjectContacts(_ context.Context, projectID, ownerUID string) ([]models.ProjectContact, error) {
	return s.links.list(func(l models.ProjectContact) bool {
		return l.ProjectID == projectID && l.OwnerUID == ownerUID
	}, 0, 0), nil
}

// ListAllProjectContacts возвращает связи всех пользователей с пагинацией.
func (s *ProjectStore) ListAllProjectContacts(_ context.Context, limit, offset int) ([]models.ProjectContact, error) {
	return s.links.list(func(models.ProjectContact) bool { return true }, limit, offset), nil
}
