package repository

import (
	"context"

	"github.com/magabrotheeeer/contact-hub/internal/models"
)

// CreateAppointment вставляет новую встречу.
func (s *Storage) CreateAppointment(ctx context.Context, a models.Appointment) error {
	const op = "storage.CreateAppointment"

	query := `INSERT INTO appointments (id, owner_uid, date, description)
			  VALUES ($1, $2, $3, $4)`
	if _, err := s.DB.ExecContext(ctx, query, a.ID, a.OwnerUID, a.Date, a.Description); err != nil {
		return translateError(op, err)
	}
	return nil
}

// FindAppointmentByID возвращает встречу по идентификатору в пределах владельца.
func (s *Storage) FindAppointmentByID(ctx context.Context, id, ownerUID string) (*models.Appointment, error) {
	const op = "storage.FindAppointmentByID"

	query := `SELECT id, owner_uid, date, description
			  FROM appointments
			  WHERE id = $1 AND owner_uid = $2`
	var a models.Appointment
	row := s.DB.QueryRowContext(ctx, query, id, ownerUID)
	if err := row.Scan(&a.ID, &a.OwnerUID, &a.Date, &a.Description); err != nil {
		return nil, translateError(op, err)
	}
	return &a, nil
}

// UpdateAppointment обновляет изменяемые поля встречи в пределах владельца.
func (s *Storage) UpdateAppointment(ctx context.Context, a models.Appointment) error {
	const op = "storage.UpdateAppointment"

	query := `UPDATE appointments
			  SET date = $1, description = $2
			  WHERE id = $3 AND owner_uid = $4`
	result, err := s.DB.ExecContext(ctx, query, a.Date, a.Description, a.ID, a.OwnerUID)
	if err != nil {
		return translateError(op, err)
	}
	return requireAffected(op, result)
}

// DeleteAppointment удаляет встречу по идентификатору в пределах владельца.
func (s *Storage) DeleteAppointment(ctx context.Context, id, ownerUID string) error {
	const op = "storage.DeleteAppointment"

	result, err := s.DB.ExecContext(ctx, `DELETE FROM appointments WHERE id = $1 AND owner_uid = $2`, id, ownerUID)
	if err != nil {
		return translateError(op, err)
	}
	return requireAffected(op, result)
}

// ListAppointments возвращает встречи владельца с пагинацией.
func (s *Storage) ListAppointments(ctx context.Context, ownerUID string, limit, offset int) ([]models.Appointment, error) {
	const op = "storage.ListAppointments"

	query := `SELECT id, owner_uid, date, description
			  FROM appointments
			  WHERE owner_uid = $1
			  ORDER BY date, id
			  LIMIT $2 OFFSET $3`
	rows, err := s.DB.QueryContext(ctx, query, ownerUID, limit, offset)
	if err != nil {
		return nil, translateError(op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []models.Appointment
	for rows.Next() {
		var a models.Appointment
		if err := rows.Scan(&a.ID, &a.OwnerUID, &a.Date, &a.Description); err != nil {
			return nil, translateError(op, err)
		}
		result = append(result, a)
	}
	if err := rows.Err(); err != nil {
		return nil, translateError(op, err)
	}
	return result, nil
}

// ListAllAppointments возвращает встречи всех пользователей с пагинацией.
func (s *Storage) ListAllAppointments(ctx context.Context, limit, offset int) ([]models.Appointment, error) {
	const op = "storage.ListAllAppointments"

	query := `SELECT id, owner_uid, date, description
			  FROM appointments
			  ORDER BY owner_uid, id
			  LIMIT $1 OFFSET $2`
	rows, err := s.DB.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, translateError(op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []models.Appointment
	for rows.Next() {
		var a models.Appointment
		if err := rows.Scan(&a.ID, &a.OwnerUID, &a.Date, &a.Description); err != nil {
			return nil, translateError(op, err)
		}
		result = append(result, a)
	}
	if err := rows.Err(); err != nil {
		return nil, translateError(op, err)
	}
	return result, nil
}
