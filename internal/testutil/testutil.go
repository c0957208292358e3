// Package testutil содержит общие помощники для тестов.
package testutil

import (
	"io"
	"log/slog"
)

// DiscardLogger возвращает логгер, отбрасывающий все записи.
func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
