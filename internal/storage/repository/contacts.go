package repository

import (
	"context"

	"github.com/magabrotheeeer/contact-hub/internal/models"
)

// CreateContact вставляет новый контакт. Первичный ключ (owner_uid, id):
// разные пользователи могут использовать одинаковые идентификаторы.
func (s *Storage) CreateContact(ctx context.Context, c models.Contact) error {
	const op = "storage.CreateContact"

	query := `INSERT INTO contacts (id, owner_uid, first_name, last_name, phone, address)
			  VALUES ($1, $2, $3, $4, $5, $6)`
	if _, err := s.DB.ExecContext(ctx, query,
		c.ID, c.OwnerUID, c.FirstName, c.LastName, c.Phone, c.Address); err != nil {
		return translateError(op, err)
	}
	return nil
}

// FindContactByID возвращает контакт по идентификатору в пределах владельца.
func (s *Storage) FindContactByID(ctx context.Context, id, ownerUID string) (*models.Contact, error) {
	const op = "storage.FindContactByID"

	query := `SELECT id, owner_uid, first_name, last_name, phone, address
			  FROM contacts
			  WHERE id = $1 AND owner_uid = $2`
	var c models.Contact
	row := s.DB.QueryRowContext(ctx, query, id, ownerUID)
	if err := row.Scan(&c.ID, &c.OwnerUID, &c.FirstName, &c.LastName, &c.Phone, &c.Address); err != nil {
		return nil, translateError(op, err)
	}
	return &c, nil
}

// UpdateContact обновляет изменяемые поля контакта в пределах владельца.
func (s *Storage) UpdateContact(ctx context.Context, c models.Contact) error {
	const op = "storage.UpdateContact"

	query := `UPDATE contacts
			  SET first_name = $1, last_name = $2, phone = $3, address = $4
			  WHERE id = $5 AND owner_uid = $6`
	result, err := s.DB.ExecContext(ctx, query,
		c.FirstName, c.LastName, c.Phone, c.Address, c.ID, c.OwnerUID)
	if err != nil {
		return translateError(op, err)
	}
	return requireAffected(op, result)
}

// DeleteContact удаляет контакт по идентификатору в пределах владельца.
func (s *Storage) DeleteContact(ctx context.Context, id, ownerUID string) error {
	const op = "storage.DeleteContact"

	result, err := s.DB.ExecContext(ctx, `DELETE FROM contacts WHERE id = $1 AND owner_uid = $2`, id, ownerUID)
	if err != nil {
		return translateError(op, err)
	}
	return requireAffected(op, result)
}

// ListContacts возвращает контакты владельца с пагинацией.
func (s *Storage) ListContacts(ctx context.Context, ownerUID string, limit, offset int) ([]models.Contact, error) {
	const op = "storage.ListContacts"

	query := `SELECT id, owner_uid, first_name, last_name, phone, address
			  FROM contacts
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

	var result []models.Contact
	for rows.Next() {
		var c models.Contact
		if err := rows.Scan(&c.ID, &c.OwnerUID, &c.FirstName, &c.LastName, &c.Phone, &c.Address); err != nil {
			return nil, translateError(op, err)
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, translateError(op, err)
	}
	return result, nil
}

// ListAllContacts возвращает контакты всех пользователей с пагинацией.
// Вызывается только после проверки административной роли.
func (s *Storage) ListAllContacts(ctx context.Context, limit, offset int) ([]models.Contact, error) {
	const op = "storage.ListAllContacts"

	query := `SELECT id, owner_uid, first_name, last_name, phone, address
			  FROM contacts
			  ORDER BY owner_uid, id
			  LIMIT $1 OFFSET $2`
	rows, err := s.DB.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, translateError(op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []models.Contact
	for rows.Next() {
		var c models.Contact
		if err := rows.Scan(&c.ID, &c.OwnerUID, &c.FirstName, &c.LastName, &c.Phone, &c.Address); err != nil {
			return nil, translateError(op, err)
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, translateError(op, err)
	}
	return result, nil
}
