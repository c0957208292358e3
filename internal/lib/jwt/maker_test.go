package jwt_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/contact-hub/internal/apperr"
	"github.com/magabrotheeeer/contact-hub/internal/lib/jwt"
)

func TestMaker_IssueAndVerify(t *testing.T) {
	maker, err := jwt.NewMaker("test-secret-key", time.Hour)
	require.NoError(t, err)

	token, err := maker.Issue("uid-123", "alice", "user")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := maker.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "uid-123", claims.UserUID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "user", claims.Role)
}

func TestMaker_VerifyExpired(t *testing.T) {
	maker, err := jwt.NewMaker("test-secret-key", time.Millisecond)
	require.NoError(t, err)

	token, err := maker.Issue("uid-123", "alice", "user")
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	_, err = maker.Verify(token)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperr.ErrTokenExpired)
}

func TestMaker_VerifyWrongKey(t *testing.T) {
	issuer, err := jwt.NewMaker("issuer-secret", time.Hour)
	require.NoError(t, err)
	verifier, err := jwt.NewMaker("other-secret", time.Hour)
	require.NoError(t, err)

	token, err := issuer.Issue("uid-123", "alice", "user")
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperr.ErrTokenSignature)
}

func TestMaker_VerifyMalformed(t *testing.T) {
	maker, err := jwt.NewMaker("test-secret-key", time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "empty token", token: ""},
		{name: "garbage token", token: "not-a-jwt"},
		{name: "truncated token", token: "eyJhbGciOiJIUzI1NiJ9.eyJ1c2VyIjoi"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := maker.Verify(tt.token)
			require.Error(t, err)
			assert.ErrorIs(t, err, apperr.ErrTokenMalformed)
		})
	}
}

func TestNewMaker_InvalidArguments(t *testing.T) {
	_, err := jwt.NewMaker("", time.Hour)
	assert.Error(t, err)

	_, err = jwt.NewMaker("secret", 0)
	assert.Error(t, err)

	_, err = jwt.NewMaker("secret", -time.Minute)
	assert.Error(t, err)
}
