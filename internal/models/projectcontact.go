package models

// ProjectContact связывает контакт с проектом того же владельца.
// Роль необязательна и описывает участие контакта в проекте,
// например CLIENT или STAKEHOLDER.
type ProjectContact struct {
	ProjectID string `json:"project_id"`
	ContactID string `json:"contact_id"`
	Role      string `json:"role,omitempty"`
	OwnerUID  string `json:"owner_uid,omitempty"`
}

// NewProjectContact создает связь проекта и контакта, проверяя
// и нормализуя все поля. Пустая роль допустима.
func NewProjectContact(projectID, contactID, role string) (ProjectContact, error) {
	var link ProjectContact
	var err error
	if link.ProjectID, err = validateLength(projectID, "project_id", minFieldLength, maxIDLength); err != nil {
		return ProjectContact{}, err
	}
	if link.ContactID, err = validateLength(contactID, "contact_id", minFieldLength, maxIDLength); err != nil {
		return ProjectContact{}, err
	}
	if link.Role, err = validateLength(role, "role", 0, maxRoleLength); err != nil {
		return ProjectContact{}, err
	}
	return link, nil
}

// ProjectContactRequest используется для приёма данных из JSON-запроса.
type ProjectContactRequest struct {
	ContactID string `json:"contact_id" validate:"required,max=10"`
	Role      string `json:"role" validate:"max=50"`
}
