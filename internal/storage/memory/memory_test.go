package memory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/contact-hub/internal/apperr"
	"github.com/magabrotheeeer/contact-hub/internal/models"
	"github.com/magabrotheeeer/contact-hub/internal/storage/memory"
)

func testContact(id, ownerUID string) models.Contact {
	return models.Contact{
		ID:        id,
		FirstName: "Alice",
		LastName:  "Smith",
		Phone:     "1234567890",
		Address:   "1 Main Street",
		OwnerUID:  ownerUID,
	}
}

func TestContactStore_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	store := memory.NewContactStore()

	require.NoError(t, store.CreateContact(ctx, testContact("c1", "owner-a")))

	found, err := store.FindContactByID(ctx, "c1", "owner-a")
	require.NoError(t, err)
	assert.Equal(t, "Alice", found.FirstName)

	// Повторное создание того же id тем же владельцем — конфликт.
	err = store.CreateContact(ctx, testContact("c1", "owner-a"))
	assert.ErrorIs(t, err, apperr.ErrDuplicate)

	// Другой владелец может использовать тот же id.
	require.NoError(t, store.CreateContact(ctx, testContact("c1", "owner-b")))
}

func TestContactStore_OwnershipIsolation(t *testing.T) {
	ctx := context.Background()
	store := memory.NewContactStore()

	require.NoError(t, store.CreateContact(ctx, testContact("c1", "owner-a")))

	// Чужая запись неотличима от отсутствующей.
	_, err := store.FindContactByID(ctx, "c1", "owner-b")
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	err = store.DeleteContact(ctx, "c1", "owner-b")
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	foreign := testContact("c1", "owner-b")
	foreign.FirstName = "Mallory"
	err = store.UpdateContact(ctx, foreign)
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	// Запись владельца не пострадала.
	found, err := store.FindContactByID(ctx, "c1", "owner-a")
	require.NoError(t, err)
	assert.Equal(t, "Alice", found.FirstName)
}

func TestContactStore_UpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	store := memory.NewContactStore()

	require.NoError(t, store.CreateContact(ctx, testContact("c1", "owner-a")))

	updated := testContact("c1", "owner-a")
	updated.FirstName = "Bob"
	require.NoError(t, store.UpdateContact(ctx, updated))

	found, err := store.FindContactByID(ctx, "c1", "owner-a")
	require.NoError(t, err)
	assert.Equal(t, "Bob", found.FirstName)

	require.NoError(t, store.DeleteContact(ctx, "c1", "owner-a"))
	_, err = store.FindContactByID(ctx, "c1", "owner-a")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestContactStore_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	store := memory.NewContactStore()

	require.NoError(t, store.CreateContact(ctx, testContact("c1", "owner-a")))

	first, err := store.FindContactByID(ctx, "c1", "owner-a")
	require.NoError(t, err)
	first.FirstName = "Mutated"

	second, err := store.FindContactByID(ctx, "c1", "owner-a")
	require.NoError(t, err)
	assert.Equal(t, "Alice", second.FirstName, "mutating a returned record must not affect the store")
}

func TestContactStore_ListPagination(t *testing.T) {
	ctx := context.Background()
	store := memory.NewContactStore()

	require.NoError(t, store.CreateContact(ctx, testContact("c1", "owner-a")))
	require.NoError(t, store.CreateContact(ctx, testContact("c2", "owner-a")))
	require.NoError(t, store.CreateContact(ctx, testContact("c3", "owner-a")))
	require.NoError(t, store.CreateContact(ctx, testContact("c1", "owner-b")))

	own, err := store.ListContacts(ctx, "owner-a", 10, 0)
	require.NoError(t, err)
	assert.Len(t, own, 3)

	page, err := store.ListContacts(ctx, "owner-a", 2, 1)
	require.NoError(t, err)
	assert.Len(t, page, 2)

	all, err := store.ListAllContacts(ctx, 0, 0)
	require.NoError(t, err)
	assert.Len(t, all, 4)

	empty, err := store.ListContacts(ctx, "owner-c", 10, 0)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestTaskStore_Roundtrip(t *testing.T) {
	ctx := context.Background()
	store := memory.NewTaskStore()

	task := models.Task{ID: "t1", Name: "Write report", Description: "Quarterly numbers", Status: models.TaskStatusTodo, OwnerUID: "owner-a"}
	require.NoError(t, store.CreateTask(ctx, task))

	found, err := store.FindTaskByID(ctx, "t1", "owner-a")
	require.NoError(t, err)
	assert.Equal(t, "Write report", found.Name)

	_, err = store.FindTaskByID(ctx, "t1", "owner-b")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}
