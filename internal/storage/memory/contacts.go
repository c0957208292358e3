package memory

import (
	"context"

	"github.com/magabrotheeeer/contact-hub/internal/models"
)

// ContactStore — хранилище контактов в памяти.
type ContactStore struct {
	c *collection[models.Contact]
}

// NewContactStore создает пустое хранилище контактов.
func NewContactStore() *ContactStore {
	return &ContactStore{
		c: newCollection(func(c models.Contact) (string, string) {
			return c.ID, c.OwnerUID
		}),
	}
}

// CreateContact сохраняет новый контакт.
func (s *ContactStore) CreateContact(_ context.Context, c models.Contact) error {
	return s.c.create(c)
}

// FindContactByID возвращает контакт по идентификатору в пределах владельца.
func (s *ContactStore) FindContactByID(_ context.Context, id, ownerUID string) (*models.Contact, error) {
	c, err := s.c.find(id, ownerUID)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// UpdateContact обновляет существующий контакт.
func (s *ContactStore) UpdateContact(_ context.Context, c models.Contact) error {
	return s.c.update(c)
}

// DeleteContact удаляет контакт по идентификатору в пределах владельца.
func (s *ContactStore) DeleteContact(_ context.Context, id, ownerUID string) error {
	return s.c.delete(id, ownerUID)
}

// ListContacts возвращает контакты владельца с пагинацией.
func (s *ContactStore) ListContacts(_ context.Context, ownerUID string, limit, offset int) ([]models.Contact, error) {
	return s.c.list(func(c models.Contact) bool { return c.OwnerUID == ownerUID }, limit, offset), nil
}

// ListAllContacts возвращает контакты всех пользователей с пагинацией.
func (s *ContactStore) ListAllContacts(_ context.Context, limit, offset int) ([]models.Contact, error) {
	return s.c.list(func(models.Contact) bool { return true }, limit, offset), nil
}
