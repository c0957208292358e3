// Package query разбирает общие параметры листинговых запросов.
package query

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/magabrotheeeer/contact-hub/internal/apperr"
)

const (
	defaultLimit = 100
	maxLimit     = 1000
)

// ListParams — разобранные параметры листинга.
// All запрашивает записи всех пользователей и требует роли администратора.
type ListParams struct {
	All    bool
	Limit  int
	Offset int
}

// ParseList читает all, limit и offset из строки запроса.
// Отсутствующие параметры получают значения по умолчанию,
// некорректные дают apperr.ErrValidation.
func ParseList(r *http.Request) (ListParams, error) {
	params := ListParams{Limit: defaultLimit}
	q := r.URL.Query()

	if raw := q.Get("all"); raw != "" {
		all, err := strconv.ParseBool(raw)
		if err != nil {
			return ListParams{}, fmt.Errorf("%w: parameter all must be a boolean", apperr.ErrValidation)
		}
		params.All = all
	}
	if raw := q.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 || limit > maxLimit {
			return ListParams{}, fmt.Errorf("%w: parameter limit must be between 1 and %d", apperr.ErrValidation, maxLimit)
		}
		params.Limit = limit
	}
	if raw := q.Get("offset"); raw != "" {
		offset, err := strconv.Atoi(raw)
		if err != nil || offset < 0 {
			return ListParams{}, fmt.Errorf("%w: parameter offset must be a non-negative number", apperr.ErrValidation)
		}
		params.Offset = offset
	}
	return params, nil
}
