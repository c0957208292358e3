// Package apperr определяет типизированные ошибки доменного уровня.
//
// Сервисы и хранилища оборачивают свои ошибки только этими сентинелами,
// а HTTP-слой переводит их в статусы через response.MapError.
package apperr

import "errors"

var (
	// ErrValidation — некорректные входные данные (HTTP 400).
	ErrValidation = errors.New("validation failed")

	// ErrInvalidCredentials — неверная пара логин/пароль (HTTP 401).
	// Сообщение одинаково для несуществующего пользователя и неверного
	// пароля, чтобы исключить перебор имён.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUnauthenticated — отсутствующий, просроченный или повреждённый
	// токен (HTTP 401).
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrForbidden — попытка доступа к чужой области видимости (HTTP 403).
	ErrForbidden = errors.New("forbidden")

	// ErrNotFound — запись отсутствует либо принадлежит другому
	// пользователю; снаружи эти случаи неразличимы (HTTP 404).
	ErrNotFound = errors.New("not found")

	// ErrDuplicate — конфликт уникальности (HTTP 409).
	ErrDuplicate = errors.New("already exists")
)

// Ошибки проверки токена. Наружу причина отказа не раскрывается:
// middleware логирует конкретную ошибку, а клиент получает общий 401.
var (
	// ErrTokenMalformed — строка токена не разбирается.
	ErrTokenMalformed = errors.New("token malformed")

	// ErrTokenSignature — подпись не сошлась.
	ErrTokenSignature = errors.New("token signature invalid")

	// ErrTokenExpired — срок действия токена истёк.
	ErrTokenExpired = errors.New("token expired")
)
