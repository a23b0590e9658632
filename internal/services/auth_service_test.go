package services

import (
	"path/filepath"
	"testing"

	"mybricks/internal/repository"
	"mybricks/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthService(t *testing.T) *AuthService {
	t.Helper()

	db, err := utils.InitDatabase(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, utils.SeedAdminUser(db, "admin@example.com", "brickset123"))

	return NewAuthService(repository.NewUserRepository(db))
}

func TestAuthenticate(t *testing.T) {
	svc := newAuthService(t)

	user, err := svc.Authenticate("admin@example.com", "brickset123")
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", user.Email)
}

func TestAuthenticateRejectsBadCredentials(t *testing.T) {
	svc := newAuthService(t)

	_, err := svc.Authenticate("admin@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Authenticate("nobody@example.com", "brickset123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
