package models_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/contact-hub/internal/apperr"
	"github.com/magabrotheeeer/contact-hub/internal/models"
)

func TestNewAppointment(t *testing.T) {
	future := time.Now().Add(24 * time.Hour)

	a, err := models.NewAppointment("a1", future, "Dentist")
	require.NoError(t, err)
	assert.Equal(t, "a1", a.ID)
	assert.Equal(t, future, a.Date)

	_, err = models.NewAppointment("a1", time.Now().Add(-time.Hour), "Dentist")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperr.ErrValidation)

	_, err = models.NewAppointment("a1", time.Time{}, "Dentist")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperr.ErrValidation)
}

func TestAppointment_UpdateIsAtomic(t *testing.T) {
	future := time.Now().Add(24 * time.Hour)
	a, err := models.NewAppointment("a1", future, "Dentist")
	require.NoError(t, err)

	err = a.Update(time.Now().Add(-time.Hour), "Rescheduled")
	require.Error(t, err)
	assert.Equal(t, future, a.Date)
	assert.Equal(t, "Dentist", a.Description)
}
