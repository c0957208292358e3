package models

import (
	"fmt"

	"github.com/magabrotheeeer/contact-hub/internal/apperr"
)

// Статусы проекта.
const (
	ProjectStatusActive    = "ACTIVE"
	ProjectStatusOnHold    = "ON_HOLD"
	ProjectStatusCompleted = "COMPLETED"
	ProjectStatusArchived  = "ARCHIVED"
)

// Project представляет проект пользователя. Описание может быть пустым.
type Project struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Status      string `json:"status"`
	OwnerUID    string `json:"owner_uid,omitempty"`
}

// NewProject создает проект, проверяя все поля. Пустой статус
// трактуется как ACTIVE.
func NewProject(id, name, description, status string) (Project, error) {
	var p Project
	var err error
	if p.ID, err = validateLength(id, "id", minFieldLength, maxIDLength); err != nil {
		return Project{}, err
	}
	if status == "" {
		status = ProjectStatusActive
	}
	if err = p.Update(name, description, status); err != nil {
		return Project{}, err
	}
	return p, nil
}

// Update обновляет изменяемые поля проекта атомарно.
func (p *Project) Update(name, description, status string) error {
	validName, err := validateLength(name, "name", minFieldLength, maxProjNameLength)
	if err != nil {
		return err
	}
	validDesc, err := validateLength(description, "description", 0, maxProjDescLength)
	if err != nil {
		return err
	}
	if err := validateProjectStatus(status); err != nil {
		return err
	}
	p.Name = validName
	p.Description = validDesc
	p.Status = status
	return nil
}

func validateProjectStatus(status string) error {
	switch status {
	case ProjectStatusActive, ProjectStatusOnHold, ProjectStatusCompleted, ProjectStatusArchived:
		return nil
	default:
		return fmt.Errorf("%w: field status must be one of ACTIVE, ON_HOLD, COMPLETED, ARCHIVED", apperr.ErrValidation)
	}
}

// ProjectRequest используется для приёма данных из JSON-запроса.
type ProjectRequest struct {
	ID          string `json:"id" validate:"required,max=10"`
	Name        string `json:"name" validate:"required,max=50"`
	Description string `json:"description" validate:"max=100"`
	Status      string `json:"status" validate:"omitempty,oneof=ACTIVE ON_HOLD COMPLETED ARCHIVED"`
}
