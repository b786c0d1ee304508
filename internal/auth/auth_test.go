package auth_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/micatius/FreelancerPaymentProcessingSystem/internal/apperror"
	"github.com/micatius/FreelancerPaymentProcessingSystem/internal/auth"
)

func usersFile(t *testing.T, lines string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "users.txt")
	require.NoError(t, os.WriteFile(path, []byte(lines), 0o600))

	return path
}

func hash(t *testing.T, password string) string {
	t.Helper()

	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	return string(h)
}

func TestFileStoreFindAll(t *testing.T) {
	path := usersFile(t, "vesna;h1;FINANCE;0\nivan;h2;FREELANCER;3\n\n")

	users, err := auth.NewFileStore(path).FindAll()
	require.NoError(t, err)
	require.Len(t, users, 2)

	assert.Equal(t, "vesna", users[0].Username)
	assert.Equal(t, auth.RoleFinance, users[0].Role)
	assert.Equal(t, "ivan", users[1].Username)
	assert.EqualValues(t, 3, users[1].LinkedEntityID)
}

func TestFileStoreRejectsUnknownRole(t *testing.T) {
	path := usersFile(t, "vesna;h1;OVERLORD;0\n")

	_, err := auth.NewFileStore(path).FindAll()
	assert.Error(t, err)
}

func TestFileStoreFindByUsername(t *testing.T) {
	path := usersFile(t, "vesna;h1;FINANCE;0\n")
	store := auth.NewFileStore(path)

	u, err := store.FindByUsername("vesna")
	require.NoError(t, err)
	assert.Equal(t, "h1", u.PasswordHash)

	_, err = store.FindByUsername("nobody")
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestLogin(t *testing.T) {
	path := usersFile(t, "vesna;"+hash(t, "tajna")+";FINANCE;0\n")
	svc := auth.NewService(auth.NewFileStore(path))

	t.Run("Success", func(t *testing.T) {
		u, err := svc.Login("vesna", "tajna")
		require.NoError(t, err)
		assert.Equal(t, auth.RoleFinance, u.Role)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		_, err := svc.Login("vesna", "kriva")
		assert.ErrorIs(t, err, apperror.ErrAuthentication)
	})

	t.Run("UnknownUser", func(t *testing.T) {
		_, err := svc.Login("nobody", "tajna")
		assert.ErrorIs(t, err, apperror.ErrAuthentication)
	})
}

func TestRegisterThenLogin(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.txt")
	svc := auth.NewService(auth.NewFileStore(path))

	require.NoError(t, svc.Register("ana", "lozinka", auth.RoleAdmin, 0))

	u, err := svc.Login("ana", "lozinka")
	require.NoError(t, err)
	assert.Equal(t, auth.RoleAdmin, u.Role)
}

func TestSession(t *testing.T) {
	s := auth.NewSession()

	_, ok := s.CurrentUser()
	assert.False(t, ok)
	assert.Empty(t, s.Username())

	s.SetCurrentUser(auth.User{Username: "vesna", Role: auth.RoleFinance})
	assert.Equal(t, "vesna", s.Username())

	u, ok := s.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, auth.RoleFinance, u.Role)

	s.Clear()
	assert.Empty(t, s.Username())
}
