package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/magabrotheeeer/contact-hub/internal/models"
)

const testSchema = `
CREATE EXTENSION IF NOT EXISTS "uuid-ossp";

CREATE TABLE users (
    uid UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
    username VARCHAR(50) NOT NULL UNIQUE,
    email VARCHAR(100) NOT NULL UNIQUE,
    password_hash VARCHAR(255) NOT NULL,
    role VARCHAR(10) NOT NULL DEFAULT 'user',
    created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE contacts (
    id VARCHAR(10) NOT NULL,
    owner_uid UUID NOT NULL REFERENCES users (uid) ON DELETE CASCADE,
    first_name VARCHAR(10) NOT NULL,
    last_name VARCHAR(10) NOT NULL,
    phone CHAR(10) NOT NULL,
    address VARCHAR(30) NOT NULL,
    PRIMARY KEY (owner_uid, id)
);

CREATE TABLE tasks (
    id VARCHAR(10) NOT NULL,
    owner_uid UUID NOT NULL REFERENCES users (uid) ON DELETE CASCADE,
    name VARCHAR(20) NOT NULL,
    description VARCHAR(50) NOT NULL,
    status VARCHAR(20) NOT NULL DEFAULT 'TODO',
    PRIMARY KEY (owner_uid, id)
);

CREATE TABLE projects (
    id VARCHAR(10) NOT NULL,
    owner_uid UUID NOT NULL REFERENCES users (uid) ON DELETE CASCADE,
    name VARCHAR(50) NOT NULL,
    description VARCHAR(100) NOT NULL DEFAULT '',
    status VARCHAR(10) NOT NULL DEFAULT 'ACTIVE',
    PRIMARY KEY (owner_uid, id)
);

CREATE TABLE project_contacts (
    project_id VARCHAR(10) NOT NULL,
    contact_id VARCHAR(10) NOT NULL,
    owner_uid UUID NOT NULL REFERENCES users (uid) ON DELETE CASCADE,
    role VARCHAR(50) NOT NULL DEFAULT '',
    created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
    PRIMARY KEY (owner_uid, project_id, contact_id),
    FOREIGN KEY (owner_uid, project_id) REFERENCES projects (owner_uid, id) ON DELETE CASCADE,
    FOREIGN KEY (owner_uid, contact_id) REFERENCES contacts (owner_uid, id) ON DELETE CASCADE
);
`

func setupTestDb(t *testing.T) (*Storage, func()) {
	t.Helper()
	ctx := context.Background()

	postgresContainer, err := postgres.Run(ctx, "postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(3*time.Minute)),
	)
	require.NoError(t, err, "failed to start container")

	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err, "failed to get connection string")

	// Подключаемся с ретраями: контейнер может принимать соединения
	// не сразу после готовности порта.
	var storage *Storage
	for i := 0; i < 10; i++ {
		storage, err = New(connStr)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	require.NoError(t, err, "failed to create storage after retries")

	_, err = storage.DB.Exec(testSchema)
	require.NoError(t, err, "failed to create schema")

	cleanup := func() {
		if storage != nil && storage.DB != nil {
			storage.DB.Close()
		}
		if postgresContainer != nil {
			postgresContainer.Terminate(ctx)
		}
	}
	return storage, cleanup
}

// TestDataFactory содержит методы для создания тестовых данных
type TestDataFactory struct {
	storage *Storage
}

// NewTestDataFactory создает новую фабрику тестовых данных
func NewTestDataFactory(storage *Storage) *TestDataFactory {
	return &TestDataFactory{storage: storage}
}

// CreateUser создает тестового пользователя и возвращает его UID.
func (f *TestDataFactory) CreateUser(t *testing.T, username, email string) string {
	t.Helper()
	uid, err := f.storage.CreateUser(context.Background(), models.User{
		Username:     username,
		Email:        email,
		PasswordHash: "hashedpassword",
		Role:         models.RoleUser,
	})
	require.NoError(t, err)
	return uid
}

// CreateContact создает тестовый контакт.
func (f *TestDataFactory) CreateContact(t *testing.T, id, ownerUID string) {
	t.Helper()
	err := f.storage.CreateContact(context.Background(), models.Contact{
		ID:        id,
		FirstName: "Alice",
		LastName:  "Smith",
		Phone:     "1234567890",
		Address:   "1 Main Street",
		OwnerUID:  ownerUID,
	})
	require.NoError(t, err)
}
