package repository

import (
	"context"

	"github.com/magabrotheeeer/contact-hub/internal/models"
)

// CreateProject вставляет новый проект.
func (s *Storage) CreateProject(ctx context.Context, p models.Project) error {
	const op = "storage.CreateProject"

	query := `INSERT INTO projects (id, owner_uid, name, description, status)
			  VALUES ($1, $2, $3, $4, $5)`
	if _, err := s.DB.ExecContext(ctx, query, p.ID, p.OwnerUID, p.Name, p.Description, p.Status); err != nil {
		return translateError(op, err)
	}
	return nil
}

// FindProjectByID возвращает проект по идентификатору в пределах владельца.
func (s *Storage) FindProjectByID(ctx context.Context, id, ownerUID string) (*models.Project, error) {
	const op = "storage.FindProjectByID"

	query := `SELECT id, owner_uid, name, description, status
			  FROM projects
			  WHERE id = $1 AND owner_uid = $2`
	var p models.Project
	row := s.DB.QueryRowContext(ctx, query, id, ownerUID)
	if err := row.Scan(&p.ID, &p.OwnerUID, &p.Name, &p.Description, &p.Status); err != nil {
		return nil, translateError(op, err)
	}
	return &p, nil
}

// UpdateProject обновляет изменяемые поля проекта в пределах владельца.
func (s *Storage) UpdateProject(ctx context.Context, p models.Project) error {
	const op = "storage.UpdateProject"

	query := `UPDATE projects
			  SET name = $1, description = $2, status = $3
			  WHERE id = $4 AND owner_uid = $5`
	result, err := s.DB.ExecContext(ctx, query, p.Name, p.Description, p.Status, p.ID, p.OwnerUID)
	if err != nil {
		return translateError(op, err)
	}
	return requireAffected(op, result)
}

// DeleteProject удаляет проект по идентификатору в пределах владельца.
func (s *Storage) DeleteProject(ctx context.Context, id, ownerUID string) error {
	const op = "storage.DeleteProject"

	result, err := s.DB.ExecContext(ctx, `DELETE FROM projects WHERE id = $1 AND owner_uid = $2`, id, ownerUID)
	if err != nil {
		return translateError(op, err)
	}
	return requireAffected(op, result)
}

// ListProjects возвращает проекты владельца с пагинацией.
func (s *Storage) ListProjects(ctx context.Context, ownerUID string, limit, offset int) ([]models.Project, error) {
	const op = "storage.ListProjects"

	query := `SELECT id, owner_uid, name, description, status
			  FROM projects
			  WHERE owner_uid = $1
			  ORDER BY id
			  LIMIT $2 OFFSET $3`
	rows, err := s.DB.QueryContext(ctx, query, ownerUID, limit, offset)
	if err != nil {
		return nil, translateError(op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []models.Project
	for rows.Next() {
		var p models.Project
		if err := rows.Scan(&p.ID, &p.OwnerUID, &p.Name, &p.Description, &p.Status); err != nil {
			return nil, translateError(op, err)
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, translateError(op, err)
	}
	return result, nil
}

// ListAllProjects возвращает проекты всех пользователей с пагинацией.
func (s *Storage) ListAllProjects(ctx context.Context, limit, offset int) ([]models.Project, error) {
	const op = "storage.ListAllProjects"

	query := `SELECT id, owner_uid, name, description, status
			  FROM projects
			  ORDER BY owner_uid, id
			  LIMIT $1 OFFSET $2`
	rows, err := s.DB.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, translateError(op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []models.Project
	for rows.Next() {
		var p models.Project
		if err := rows.Scan(&p.ID, &p.OwnerUID, &p.Name, &p.Description, &p.Status); err != nil {
			return nil, translateError(op, err)
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, translateError(op, err)
	}
	return result, nil
}
