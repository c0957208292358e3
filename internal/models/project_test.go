package models_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/contact-hub/internal/apperr"
	"github.com/magabrotheeeer/contact-hub/internal/models"
)

func TestNewProject(t *testing.T) {
	tests := []struct {
		name       string
		id         string
		projName   string
		desc       string
		status     string
		wantStatus string
		wantErr    bool
	}{
		{
			name:       "valid project with explicit status",
			id:         "p1",
			projName:   "Migration",
			desc:       "Move everything",
			status:     models.ProjectStatusOnHold,
			wantStatus: models.ProjectStatusOnHold,
		},
		{
			name:       "empty status defaults to active",
			id:         "p1",
			projName:   "Migration",
			desc:       "Move everything",
			status:     "",
			wantStatus: models.ProjectStatusActive,
		},
		{
			name:       "empty description is allowed",
			id:         "p1",
			projName:   "Migration",
			desc:       "",
			status:     models.ProjectStatusActive,
			wantStatus: models.ProjectStatusActive,
		},
		{
			name:     "unknown status",
			id:       "p1",
			projName: "Migration",
			desc:     "Move everything",
			status:   "PAUSED",
			wantErr:  true,
		},
		{
			name:     "name too long",
			id:       "p1",
			projName: strings.Repeat("n", 51),
			status:   models.ProjectStatusActive,
			wantErr:  true,
		},
		{
			name:     "description too long",
			id:       "p1",
			projName: "Migration",
			desc:     strings.Repeat("d", 101),
			status:   models.ProjectStatusActive,
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := models.NewProject(tt.id, tt.projName, tt.desc, tt.status)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, apperr.ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, p.Status)
		})
	}
}

func TestProject_UpdateIsAtomic(t *testing.T) {
	p, err := models.NewProject("p1", "Migration", "Move everything", models.ProjectStatusActive)
	require.NoError(t, err)

	err = p.Update("Renamed", "New description", "BROKEN")
	require.Error(t, err)
	assert.Equal(t, "Migration", p.Name)
	assert.Equal(t, "Move everything", p.Description)
	assert.Equal(t, models.ProjectStatusActive, p.Status)

	require.NoError(t, p.Update("Renamed", "New description", models.ProjectStatusCompleted))
	assert.Equal(t, models.ProjectStatusCompleted, p.Status)
}
