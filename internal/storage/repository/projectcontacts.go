package repository

import (
	"context"

	"github.com/magabrotheeeer/contact-hub/internal/models"
)

// LinkProjectContact вставляет связь проекта и контакта. Повторная
// связь той же пары нарушает первичный ключ и возвращается как
// apperr.ErrDuplicate.
func (s *Storage) LinkProjectContact(ctx context.Context, link models.ProjectContact) error {
	const op = "storage.LinkProjectContact"

	query := `INSERT INTO project_contacts (project_id, contact_id, owner_uid, role)
			  VALUES ($1, $2, $3, $4)`
	if _, err := s.DB.ExecContext(ctx, query, link.ProjectID, link.ContactID, link.OwnerUID, link.Role); err != nil {
		return translateError(op, err)
	}
	return nil
}

// UnlinkProjectContact удаляет связь проекта и контакта в пределах владельца.
func (s *Storage) UnlinkProjectContact(ctx context.Context, projectID, contactID, ownerUID string) error {
	const op = "storage.UnlinkProjectContact"

	query := `DELETE FROM project_contacts
			  WHERE project_id = $1 AND contact_id = $2 AND owner_uid = $3`
	result, err := s.DB.ExecContext(ctx, query, projectID, contactID, ownerUID)
	if err != nil {
		return translateError(op, err)
	}
	return requireAffected(op, result)
}

// ListProjectContacts возвращает связи проекта в пределах владельца.
func (s *Storage) ListProjectContacts(ctx context.Context, projectID, ownerUID string) ([]models.ProjectContact, error) {
	const op = "storage.ListProjectContacts"

	query := `SELECT project_id, contact_id, owner_uid, role
			  FROM project_contacts
			  WHERE project_id = $1 AND owner_uid = $2
			  ORDER BY contact_id`
	rows, err := s.DB.QueryContext(ctx, query, projectID, ownerUID)
	if err != nil {
		return nil, translateError(op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []models.ProjectContact
	for rows.Next() {
		var l models.ProjectContact
		if err := rows.Scan(&l.ProjectID, &l.ContactID, &l.OwnerUID, &l.Role); err != nil {
			return nil, translateError(op, err)
		}
		result = append(result, l)
	}
	if err := rows.Err(); err != nil {
		return nil, translateError(op, err)
	}
	return result, nil
}

// ListAllProjectContacts возвращает связи всех пользователей с пагинацией.
func (s *Storage) ListAllProjectContacts(ctx context.Context, limit, offset int) ([]models.ProjectContact, error) {
	const op = "storage.ListAllProjectContacts"

	query := `SELECT project_id, contact_id, owner_uid, role
			  FROM project_contacts
			  ORDER BY owner_uid, project_id, contact_id
			  LIMIT $1 OFFSET $2`
	rows, err := s.DB.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, translateError(op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []models.ProjectContact
	for rows.Next() {
		var l models.ProjectContact
		if err := rows.Scan(&l.ProjectID, &l.ContactID, &l.OwnerUID, &l.Role); err != nil {
			return nil, translateError(op, err)
		}
		result = append(result, l)
	}
	if err := rows.Err(); err != nil {
		return nil, translateError(op, err)
	}
	return result, nil
}
