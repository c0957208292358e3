// Package response содержит вспомогательные типы и функции для формирования
// унифицированных JSON‑ответов HTTP‑обработчиков, а также единую точку
// преобразования ошибок приложения в HTTP-статусы.
package response

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/contact-hub/internal/apperr"
)

// Response описывает стандартную структуру JSON‑ответа сервера.
// Поле Status — статус запроса ("OK" или "Error").
// Поле Error — текст ошибки (опционально, при неуспехе).
// Поле Data — данные ответа (опционально, при успехе).
type Response struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
	Data   any    `json:"data,omitempty"`
}

const (
	// StatusOK — значение статуса для успешного ответа.
	StatusOK = "OK"
	// StatusError — значение статуса для ответа с ошибкой.
	StatusError = "Error"
)

// OK возвращает успешный Response без данных.
func OK() Response {
	return Response{Status: StatusOK}
}

// StatusOKWithData возвращает успешный Response с переданными данными.
func StatusOKWithData(data any) Response {
	return Response{
		Status: StatusOK,
		Data:   data,
	}
}

// Error возвращает Response с ошибкой и переданным сообщением.
func Error(msg string) Response {
	return Response{
		Status: StatusError,
		Error:  msg,
	}
}

// ValidationError формирует Response со статусом Error на основе ошибок валидации.
// Каждое нарушение формируется в человеко‑читаемый текст, объединённый через запятую.
func ValidationError(errs validator.ValidationErrors) Response {
	var errsMsgs []string

	for _, err := range errs {
		switch err.ActualTag() {
		case "required":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s is a required field", err.Field()))
		case "max":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s is too long", err.Field()))
		case "min":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s is too short", err.Field()))
		case "len":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s has a wrong length", err.Field()))
		case "numeric":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s can contain only numbers", err.Field()))
		case "email":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s must be a valid email address", err.Field()))
		case "oneof":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s has a value outside the allowed set", err.Field()))
		default:
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s is not a valid", err.Field()))
		}
	}
	return Response{
		Status: StatusError,
		Error:  strings.Join(errsMsgs, ", "),
	}
}

// MapError переводит ошибку приложения в HTTP-статус и тело ответа.
// Единственная точка такого перевода: обработчики не подбирают статусы
// самостоятельно. Нераспознанная ошибка превращается в 500 с нейтральным
// текстом, внутренние детали наружу не уходят.
func MapError(err error) (int, Response) {
	switch {
	case errors.Is(err, apperr.ErrValidation):
		return http.StatusBadRequest, Error(trimOps(err))
	case errors.Is(err, apperr.ErrInvalidCredentials):
		return http.StatusUnauthorized, Error("invalid username or password")
	case errors.Is(err, apperr.ErrUnauthenticated):
		return http.StatusUnauthorized, Error("authentication required")
	case errors.Is(err, apperr.ErrForbidden):
		return http.StatusForbidden, Error(trimOps(err))
	case errors.Is(err, apperr.ErrNotFound):
		return http.StatusNotFound, Error("resource not found")
	case errors.Is(err, apperr.ErrDuplicate):
		return http.StatusConflict, Error("resource already exists")
	default:
		return http.StatusInternalServerError, Error("internal error")
	}
}

// trimOps отбрасывает служебные префиксы вида "pkg.Func: " и оставляет
// человеко-читаемую часть сообщения.
func trimOps(err error) string {
	msg := err.Error()
	for strings.Contains(msg, ": ") {
		head, tail, _ := strings.Cut(msg, ": ")
		if !isOpPrefix(head) {
			break
		}
		msg = tail
	}
	return msg
}

func isOpPrefix(s string) bool {
	dot := strings.IndexByte(s, '.')
	return dot > 0 && dot < len(s)-1 && !strings.ContainsAny(s, " ")
}
