// Package models содержит доменные модели системы: пользователей,
// контакты, задачи, проекты и встречи. Структуры используются
// в бизнес-логике и при работе с хранилищем.
package models

import "time"

// Роли пользователей.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User представляет зарегистрированного пользователя системы.
type User struct {
	UID          string    // Уникальный идентификатор пользователя
	Username     string    // Имя пользователя (уникальное)
	Email        string    // Электронная почта (уникальная)
	PasswordHash string    // bcrypt-хэш пароля
	Role         string    // Роль пользователя, admin или user
	CreatedAt    time.Time // Дата создания учётной записи
}

// Principal — аутентифицированный субъект запроса, извлечённый из токена.
// Не содержит чувствительных полей и безопасен для передачи через контекст.
type Principal struct {
	UID      string `json:"user_uid"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// IsAdmin сообщает, имеет ли субъект роль администратора.
func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}
