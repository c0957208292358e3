package repository

import (
	"context"

	"github.com/magabrotheeeer/contact-hub/internal/models"
)

// CreateTask вставляет новую задачу.
func (s *Storage) CreateTask(ctx context.Context, t models.Task) error {
	const op = "storage.CreateTask"

	query := `INSERT INTO tasks (id, owner_uid, name, description, status)
			  VALUES ($1, $2, $3, $4, $5)`
	if _, err := s.DB.ExecContext(ctx, query, t.ID, t.OwnerUID, t.Name, t.Description, t.Status); err != nil {
		return translateError(op, err)
	}
	return nil
}

// FindTaskByID возвращает задачу по идентификатору в пределах владельца.
func (s *Storage) FindTaskByID(ctx context.Context, id, ownerUID string) (*models.Task, error) {
	const op = "storage.FindTaskByID"

	query := `SELECT id, owner_uid, name, description, status
			  FROM tasks
			  WHERE id = $1 AND owner_uid = $2`
	var t models.Task
	row := s.DB.QueryRowContext(ctx, query, id, ownerUID)
	if err := row.Scan(&t.ID, &t.OwnerUID, &t.Name, &t.Description, &t.Status); err != nil {
		return nil, translateError(op, err)
	}
	return &t, nil
}

// UpdateTask обновляет изменяемые поля задачи в пределах владельца.
func (s *Storage) UpdateTask(ctx context.Context, t models.Task) error {
	const op = "storage.UpdateTask"

	query := `UPDATE tasks
			  SET name = $1, description = $2, status = $3
			  WHERE id = $4 AND owner_uid = $5`
	result, err := s.DB.ExecContext(ctx, query, t.Name, t.Description, t.Status, t.ID, t.OwnerUID)
	if err != nil {
		return translateError(op, err)
	}
	return requireAffected(op, result)
}

// DeleteTask удаляет задачу по идентификатору в пределах владельца.
func (s *Storage) DeleteTask(ctx context.Context, id, ownerUID string) error {
	const op = "storage.DeleteTask"

	result, err := s.DB.ExecContext(ctx, `DELETE FROM tasks WHERE id = $1 AND owner_uid = $2`, id, ownerUID)
	if err != nil {
		return translateError(op, err)
	}
	return requireAffected(op, result)
}

// ListTasks возвращает задачи владельца с пагинацией.
func (s *Storage) ListTasks(ctx context.Context, ownerUID string, limit, offset int) ([]models.Task, error) {
	const op = "storage.ListTasks"

	query := `SELECT id, owner_uid, name, description, status
			  FROM tasks
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

	var result []models.Task
	for rows.Next() {
		var t models.Task
		if err := rows.Scan(&t.ID, &t.OwnerUID, &t.Name, &t.Description, &t.Status); err != nil {
			return nil, translateError(op, err)
		}
		result = append(result, t)
	}
	if err := rows.Err(); err != nil {
		return nil, translateError(op, err)
	}
	return result, nil
}

// ListAllTasks возвращает задачи всех пользователей с пагинацией.
func (s *Storage) ListAllTasks(ctx context.Context, limit, offset int) ([]models.Task, error) {
	const op = "storage.ListAllTasks"

	query := `SELECT id, owner_uid, name, description, status
			  FROM tasks
			  ORDER BY owner_uid, id
			  LIMIT $1 OFFSET $2`
	rows, err := s.DB.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, translateError(op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []models.Task
	for rows.Next() {
		var t models.Task
		if err := rows.Scan(&t.ID, &t.OwnerUID, &t.Name, &t.Description, &t.Status); err != nil {
			return nil, translateError(op, err)
		}
		result = append(result, t)
	}
	if err := rows.Err(); err != nil {
		return nil, translateError(op, err)
	}
	return result, nil
}
