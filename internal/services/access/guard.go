// Package access содержит единственную точку проверки права на
// административную область видимости. Проверка вынесена из доменных
// сервисов, чтобы ни один из них не мог её забыть.
package access

import (
	"fmt"

	"github.com/magabrotheeeer/contact-hub/internal/apperr"
	"github.com/magabrotheeeer/contact-hub/internal/models"
)

// Scope — запрошенная область видимости листинга.
type Scope int

const (
	// ScopeOwn — только записи самого пользователя.
	ScopeOwn Scope = iota
	// ScopeAll — записи всех пользователей, доступно только администратору.
	ScopeAll
)

// RequireAdminForAll разрешает или запрещает запрошенную область
// видимости. Чистая функция от (role, scope); вызывается до любого
// обращения к хранилищу.
func RequireAdminForAll(p models.Principal, scope Scope, resource string) error {
	if scope == ScopeAll && !p.IsAdmin() {
		return fmt.Errorf("%w: only administrators can access all users' %s", apperr.ErrForbidden, resource)
	}
	return nil
}
