package models

import (
	"fmt"

	"github.com/magabrotheeeer/contact-hub/internal/apperr"
)

// Статусы задачи.
const (
	TaskStatusTodo       = "TODO"
	TaskStatusInProgress = "IN_PROGRESS"
	TaskStatusDone       = "DONE"
)

// Task представляет задачу пользователя. ID неизменяем после создания.
type Task struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Status      string `json:"status"`
	OwnerUID    string `json:"owner_uid,omitempty"`
}

// NewTask создает задачу, проверяя и нормализуя все поля. Пустой статус
// трактуется как TODO.
func NewTask(id, name, description, status string) (Task, error) {
	var t Task
	var err error
	if t.ID, err = validateLength(id, "id", minFieldLength, maxIDLength); err != nil {
		return Task{}, err
	}
	if status == "" {
		status = TaskStatusTodo
	}
	if err = t.Update(name, description, status); err != nil {
		return Task{}, err
	}
	return t, nil
}

// Update обновляет изменяемые поля задачи атомарно: при любой ошибке
// валидации прежние значения сохраняются.
func (t *Task) Update(name, description, status string) error {
	validName, err := validateLength(name, "name", minFieldLength, maxTaskNameLength)
	if err != nil {
		return err
	}
	validDesc, err := validateLength(description, "description", minFieldLength, maxDescLength)
	if err != nil {
		return err
	}
	if err := validateTaskStatus(status); err != nil {
		return err
	}
	t.Name = validName
	t.Description = validDesc
	t.Status = status
	return nil
}

func validateTaskStatus(status string) error {
	switch status {
	case TaskStatusTodo, TaskStatusInProgress, TaskStatusDone:
		return nil
	default:
		return fmt.Errorf("%w: field status must be one of TODO, IN_PROGRESS, DONE", apperr.ErrValidation)
	}
}

// TaskRequest используется для приёма данных из JSON-запроса.
type TaskRequest struct {
	ID          string `json:"id" validate:"required,max=10"`
	Name        string `json:"name" validate:"required,max=20"`
	Description string `json:"description" validate:"required,max=50"`
	Status      string `json:"status" validate:"omitempty,oneof=TODO IN_PROGRESS DONE"`
}
