package repository

import (
	"context"

	"github.com/magabrotheeeer/contact-hub/internal/models"
)

// CreateUser сохраняет нового пользователя и возвращает его UID.
// Уникальность username и email обеспечивается ограничениями базы,
// а не предварительной проверкой: гонка двух одновременных регистраций
// разрешается в пользу первой, вторая получает apperr.ErrDuplicate.
func (s *Storage) CreateUser(ctx context.Context, user models.User) (string, error) {
	const op = "storage.CreateUser"

	var newUID string
	query := `INSERT INTO users (username, email, password_hash, role)
			  VALUES ($1, $2, $3, $4)
			  RETURNING uid;`
	if err := s.DB.QueryRowContext(ctx, query,
		user.Username, user.Email, user.PasswordHash, user.Role).Scan(&newUID); err != nil {
		return "", translateError(op, err)
	}
	return newUID, nil
}

// FindUserByUsername возвращает пользователя по его username.
func (s *Storage) FindUserByUsername(ctx context.Context, username string) (*models.User, error) {
	const op = "storage.FindUserByUsername"

	query := `SELECT uid, username, email, password_hash, role, created_at
			  FROM users
			  WHERE username = $1`
	u := &models.User{}
	row := s.DB.QueryRowContext(ctx, query, username)
	if err := row.Scan(&u.UID, &u.Username, &u.Email, &u.PasswordHash, &u.Role, &u.CreatedAt); err != nil {
		return nil, translateError(op, err)
	}
	return u, nil
}
