// Package repository реализует хранилище данных на основе PostgreSQL
// для пользователей и принадлежащих им ресурсов: контактов, задач,
// проектов и встреч. Каждая выборка и мутация ресурса фильтруется
// по владельцу; запись чужого пользователя неотличима от отсутствующей.
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	// Регистрация драйвера pgx для использования с database/sql.
	_ "github.com/jackc/pgx/v5/stdlib"

	"database/sql"

	"github.com/magabrotheeeer/contact-hub/internal/apperr"
)

// Storage инкапсулирует соединение с базой данных PostgreSQL.
type Storage struct {
	DB *sql.DB
}

// New создаёт подключение к PostgreSQL и проверяет его доступность.
func New(storageConnectionString string) (*Storage, error) {
	const op = "storage.New"

	db, err := sql.Open("pgx", storageConnectionString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err = db.PingContext(context.Background()); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{DB: db}, nil
}

// requireAffected превращает мутацию, не затронувшую ни одной строки,
// в apperr.ErrNotFound: либо записи нет, либо она принадлежит другому
// пользователю — снаружи эти случаи неразличимы.
func requireAffected(op string, result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if affected == 0 {
		return fmt.Errorf("%s: %w", op, apperr.ErrNotFound)
	}
	return nil
}

// translateError приводит ошибки драйвера к доменным сентинелам:
// нарушение уникальности — apperr.ErrDuplicate, пустая выборка —
// apperr.ErrNotFound.
func translateError(op string, err error) error {
	var pgErr *pgconn.PgError
	switch {
	case errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation:
		return fmt.Errorf("%s: %w", op, apperr.ErrDuplicate)
	case errors.Is(err, sql.ErrNoRows):
		return fmt.Errorf("%s: %w", op, apperr.ErrNotFound)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}
