package models_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/contact-hub/internal/apperr"
	"github.com/magabrotheeeer/contact-hub/internal/models"
)

func TestNewContact(t *testing.T) {
	tests := []struct {
		name      string
		id        string
		firstName string
		lastName  string
		phone     string
		address   string
		wantErr   bool
	}{
		{
			name:      "valid contact",
			id:        "c1",
			firstName: "Alice",
			lastName:  "Smith",
			phone:     "1234567890",
			address:   "1 Main Street",
		},
		{
			name:      "fields are trimmed",
			id:        "  c1  ",
			firstName: " Alice ",
			lastName:  " Smith ",
			phone:     " 1234567890 ",
			address:   " 1 Main Street ",
		},
		{
			name:      "blank id",
			id:        "   ",
			firstName: "Alice",
			lastName:  "Smith",
			phone:     "1234567890",
			address:   "1 Main Street",
			wantErr:   true,
		},
		{
			name:      "id too long",
			id:        strings.Repeat("x", 11),
			firstName: "Alice",
			lastName:  "Smith",
			phone:     "1234567890",
			address:   "1 Main Street",
			wantErr:   true,
		},
		{
			name:      "first name too long",
			id:        "c1",
			firstName: "Maximiliana",
			lastName:  "Smith",
			phone:     "1234567890",
			address:   "1 Main Street",
			wantErr:   true,
		},
		{
			name:      "phone too short",
			id:        "c1",
			firstName: "Alice",
			lastName:  "Smith",
			phone:     "12345",
			address:   "1 Main Street",
			wantErr:   true,
		},
		{
			name:      "phone with letters",
			id:        "c1",
			firstName: "Alice",
			lastName:  "Smith",
			phone:     "12345abcde",
			address:   "1 Main Street",
			wantErr:   true,
		},
		{
			name:      "address too long",
			id:        "c1",
			firstName: "Alice",
			lastName:  "Smith",
			phone:     "1234567890",
			address:   strings.Repeat("a", 31),
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := models.NewContact(tt.id, tt.firstName, tt.lastName, tt.phone, tt.address)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, apperr.ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "c1", c.ID)
			assert.Equal(t, "Alice", c.FirstName)
			assert.Equal(t, "Smith", c.LastName)
			assert.Equal(t, "1234567890", c.Phone)
			assert.Equal(t, "1 Main Street", c.Address)
		})
	}
}

func TestContact_UpdateIsAtomic(t *testing.T) {
	c, err := models.NewContact("c1", "Alice", "Smith", "1234567890", "1 Main Street")
	require.NoError(t, err)

	err = c.Update("Bob", "Jones", "bad-phone", "2 Side Street")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperr.ErrValidation)

	// Ни одно поле не должно измениться при частично некорректном обновлении.
	assert.Equal(t, "Alice", c.FirstName)
	assert.Equal(t, "Smith", c.LastName)
	assert.Equal(t, "1234567890", c.Phone)
	assert.Equal(t, "1 Main Street", c.Address)

	require.NoError(t, c.Update("Bob", "Jones", "0987654321", "2 Side Street"))
	assert.Equal(t, "Bob", c.FirstName)
	assert.Equal(t, "c1", c.ID)
}
