package models_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/contact-hub/internal/apperr"
	"github.com/magabrotheeeer/contact-hub/internal/models"
)

func TestNewTask(t *testing.T) {
	task, err := models.NewTask(" t1 ", " Write report ", " Quarterly numbers ", models.TaskStatusInProgress)
	require.NoError(t, err)
	assert.Equal(t, "t1", task.ID)
	assert.Equal(t, "Write report", task.Name)
	assert.Equal(t, "Quarterly numbers", task.Description)
	assert.Equal(t, models.TaskStatusInProgress, task.Status)

	_, err = models.NewTask("t1", strings.Repeat("n", 21), "desc", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperr.ErrValidation)

	_, err = models.NewTask("t1", "name", strings.Repeat("d", 51), "")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperr.ErrValidation)
}

func TestNewTask_StatusDefaultsToTodo(t *testing.T) {
	task, err := models.NewTask("t1", "Write report", "Quarterly numbers", "")
	require.NoError(t, err)
	assert.Equal(t, models.TaskStatusTodo, task.Status)
}

func TestNewTask_InvalidStatusRejected(t *testing.T) {
	_, err := models.NewTask("t1", "Write report", "Quarterly numbers", "SOMEDAY")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperr.ErrValidation)
}

func TestTask_UpdateIsAtomic(t *testing.T) {
	task, err := models.NewTask("t1", "Write report", "Quarterly numbers", "")
	require.NoError(t, err)

	err = task.Update("Renamed", strings.Repeat("d", 51), models.TaskStatusDone)
	require.Error(t, err)
	assert.Equal(t, "Write report", task.Name)
	assert.Equal(t, "Quarterly numbers", task.Description)
	assert.Equal(t, models.TaskStatusTodo, task.Status)

	err = task.Update("Renamed", "New numbers", "SOMEDAY")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperr.ErrValidation)
	assert.Equal(t, "Write report", task.Name)
	assert.Equal(t, models.TaskStatusTodo, task.Status)

	require.NoError(t, task.Update("Renamed", "New numbers", models.TaskStatusDone))
	assert.Equal(t, models.TaskStatusDone, task.Status)
}
