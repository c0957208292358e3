// Package memory реализует резервные хранилища в памяти для контактов,
// задач, проектов и встреч. Они используются до регистрации
// постоянного хранилища (см. пакет bridge) и в тестах.
//
// Хранилища безопасны для конкурентного доступа из нескольких
// обрабатывающих запросы горутин и возвращают копии значений:
// мутация возвращённого объекта не затрагивает сохранённую запись.
package memory

import (
	"fmt"
	"sort"
	"sync"

	"github.com/magabrotheeeer/contact-hub/internal/apperr"
)

// collection — потокобезопасная таблица записей, ключ (owner_uid, id).
// Значения хранятся по значению, поэтому Get/List отдают копии.
type collection[T any] struct {
	mu    sync.RWMutex
	items map[string]T
	keyOf func(T) (id, ownerUID string)
}

func newCollection[T any](keyOf func(T) (id, ownerUID string)) *collection[T] {
	return &collection[T]{
		items: make(map[string]T),
		keyOf: keyOf,
	}
}

func key(id, ownerUID string) string {
	return ownerUID + "/" + id
}

func (c *collection[T]) create(item T) error {
	id, owner := c.keyOf(item)
	c.mu.Lock()
	defer c.mu.Unlock()
	k := key(id, owner)
	if _, exists := c.items[k]; exists {
		return fmt.Errorf("memory.create: %w", apperr.ErrDuplicate)
	}
	c.items[k] = item
	return nil
}

func (c *collection[T]) find(id, ownerUID string) (T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	item, ok := c.items[key(id, ownerUID)]
	if !ok {
		var zero T
		return zero, fmt.Errorf("memory.find: %w", apperr.ErrNotFound)
	}
	return item, nil
}

func (c *collection[T]) update(item T) error {
	id, owner := c.keyOf(item)
	c.mu.Lock()
	defer c.mu.Unlock()
	k := key(id, owner)
	if _, ok := c.items[k]; !ok {
		return fmt.Errorf("memory.update: %w", apperr.ErrNotFound)
	}
	c.items[k] = item
	return nil
}

func (c *collection[T]) delete(id, ownerUID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	k := key(id, ownerUID)
	if _, ok := c.items[k]; !ok {
		return fmt.Errorf("memory.delete: %w", apperr.ErrNotFound)
	}
	delete(c.items, k)
	return nil
}

// list возвращает записи, отфильтрованные предикатом, с пагинацией.
// Порядок детерминирован: по owner_uid, затем по id.
func (c *collection[T]) list(match func(T) bool, limit, offset int) []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	keys := make([]string, 0, len(c.items))
	for k, item := range c.items {
		if match(item) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	var result []T
	for i, k := range keys {
		if i < offset {
			continue
		}
		if limit > 0 && len(result) >= limit {
			break
		}
		result = append(result, c.items[k])
	}
	return result
}
