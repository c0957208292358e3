// Package bridge хранит процессный дескриптор «текущего хранилища»
// доменного сервиса и выполняет одноразовую миграцию из резервного
// хранилища в памяти в постоянное.
//
// До вызова Register все обращения обслуживает лениво созданный
// fallback; Register копирует накопленные в нём записи в переданное
// хранилище и атомарно подменяет дескриптор. Проверка, копирование
// и подмена выполняются под одним мьютексом, поэтому ни один
// конкурентный вызов Get не наблюдает полумигрированное состояние.
package bridge

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// ErrAlreadyRegistered возвращается при повторной регистрации:
// это ошибка программирования, а не ожидаемое состояние.
var ErrAlreadyRegistered = errors.New("store already registered")

// MigrateFunc копирует все записи из резервного хранилища в постоянное.
// Конфликт идентификаторов с уже существующими данными постоянного
// хранилища должен вернуться наружу, а не теряться молча.
type MigrateFunc[S any] func(ctx context.Context, from, to S) error

// Bridge управляет процессным дескриптором хранилища типа S.
type Bridge[S any] struct {
	mu          sync.Mutex
	newFallback func() S
	migrate     MigrateFunc[S]

	current     S
	hasFallback bool
	registered  bool
}

// New создает Bridge с фабрикой резервного хранилища и функцией миграции.
func New[S any](newFallback func() S, migrate MigrateFunc[S]) *Bridge[S] {
	return &Bridge[S]{
		newFallback: newFallback,
		migrate:     migrate,
	}
}

// Get возвращает зарегистрированное хранилище, а до регистрации —
// резервное, создавая его при первом обращении.
func (b *Bridge[S]) Get() S {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.registered {
		return b.current
	}
	if !b.hasFallback {
		b.current = b.newFallback()
		b.hasFallback = true
	}
	return b.current
}

// Register одноразово подключает постоянное хранилище. Если к этому
// моменту существует резервное хранилище, его записи копируются в store
// до подмены дескриптора; ошибка копирования отменяет регистрацию.
// Повторный вызов возвращает ErrAlreadyRegistered.
func (b *Bridge[S]) Register(ctx context.Context, store S) error {
	const op = "bridge.Register"

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.registered {
		return fmt.Errorf("%s: %w", op, ErrAlreadyRegistered)
	}
	if b.hasFallback {
		if err := b.migrate(ctx, b.current, store); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}
	b.current = store
	b.hasFallback = false
	b.registered = true
	return nil
}

// Registered сообщает, подключено ли постоянное хранилище.
func (b *Bridge[S]) Registered() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.registered
}
