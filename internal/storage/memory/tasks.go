package memory

import (
	"context"

	"github.com/magabrotheeeer/contact-hub/internal/models"
)

// TaskStore — хранилище задач в памяти.
type TaskStore struct {
	c *collection[models.Task]
}

// NewTaskStore создает пустое хранилище задач.
func NewTaskStore() *TaskStore {
	return &TaskStore{
		c: newCollection(func(t models.Task) (string, string) {
			return t.ID, t.OwnerUID
		}),
	}
}

// CreateTask сохраняет новую задачу.
func (s *TaskStore) CreateTask(_ context.Context, t models.Task) error {
	return s.c.create(t)
}

// FindTaskByID возвращает задачу по идентификатору в пределах владельца.
func (s *TaskStore) FindTaskByID(_ context.Context, id, ownerUID string) (*models.Task, error) {
	t, err := s.c.find(id, ownerUID)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// UpdateTask обновляет существующую задачу.
func (s *TaskStore) UpdateTask(_ context.Context, t models.Task) error {
	return s.c.update(t)
}

// DeleteTask удаляет задачу по идентификатору в пределах владельца.
func (s *TaskStore) DeleteTask(_ context.Context, id, ownerUID string) error {
	return s.c.delete(id, ownerUID)
}

// ListTasks возвращает задачи владельца с пагинацией.
func (s *TaskStore) ListTasks(_ context.Context, ownerUID string, limit, offset int) ([]models.Task, error) {
	return s.c.list(func(t models.Task) bool { return t.OwnerUID == ownerUID }, limit, offset), nil
}

// ListAllTasks возвращает задачи всех пользователей с пагинацией.
func (s *TaskStore) ListAllTasks(_ context.Context, limit, offset int) ([]models.Task, error) {
	return s.c.list(func(models.Task) bool { return true }, limit, offset), nil
}
