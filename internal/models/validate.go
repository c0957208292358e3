package models

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/magabrotheeeer/contact-hub/internal/apperr"
)

// validateLength обрезает пробелы и проверяет длину значения.
// Возвращает нормализованное значение либо ошибку валидации.
func validateLength(value, field string, minLen, maxLen int) (string, error) {
	trimmed := strings.TrimSpace(value)
	if len(trimmed) < minLen || len(trimmed) > maxLen {
		return "", fmt.Errorf("%w: field %s must be %d-%d characters", apperr.ErrValidation, field, minLen, maxLen)
	}
	return trimmed, nil
}

// validateDigits проверяет, что значение состоит ровно из count цифр.
func validateDigits(value, field string, count int) (string, error) {
	trimmed := strings.TrimSpace(value)
	if len(trimmed) != count {
		return "", fmt.Errorf("%w: field %s must be exactly %d digits", apperr.ErrValidation, field, count)
	}
	for _, r := range trimmed {
		if !unicode.IsDigit(r) {
			return "", fmt.Errorf("%w: field %s must contain only digits", apperr.ErrValidation, field)
		}
	}
	return trimmed, nil
}

// validateDateNotPast отклоняет даты раньше текущего момента.
func validateDateNotPast(value time.Time, field string) error {
	if value.IsZero() {
		return fmt.Errorf("%w: field %s is required", apperr.ErrValidation, field)
	}
	if value.Before(time.Now()) {
		return fmt.Errorf("%w: field %s must not be in the past", apperr.ErrValidation, field)
	}
	return nil
}
