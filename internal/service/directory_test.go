package service

import (
	"context"
	"path/filepath"
	"testing"

	domainerrors "github.com/songcrateapp/songcrate/internal/errors"
	"github.com/songcrateapp/songcrate/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupDirectoryTest creates a directory backed by temporary storage.
func setupDirectoryTest(t *testing.T) (*AccountDirectory, *store.Store) {
	t.Helper()

	s, err := store.New(filepath.Join(t.TempDir(), "db"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	directory, err := NewAccountDirectory(context.Background(), s, nil)
	require.NoError(t, err)

	return directory, s
}

func signupAnn(t *testing.T, d *AccountDirectory) string {
	t.Helper()

	user, err := d.Signup(context.Background(), SignupRequest{
		Name:            "Ann",
		Email:           "ann@x.com",
		Password:        "pw12",
		ConfirmPassword: "pw12",
	})
	require.NoError(t, err)
	return user.ID
}

func TestAccountDirectory_Signup_Success(t *testing.T) {
	directory, _ := setupDirectoryTest(t)
	ctx := context.Background()

	before := directory.Len()
	user, err := directory.Signup(ctx, SignupRequest{
		Name:            "Ann",
		Email:           "ann@x.com",
		Password:        "pw12",
		ConfirmPassword: "pw12",
	})
	require.NoError(t, err)

	assert.Equal(t, before+1, directory.Len())
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "Ann", user.Name)

	// The new record is retrievable by its assigned id.
	got, ok := directory.UserByID(user.ID)
	require.True(t, ok)
	assert.Equal(t, *user, *got)

	// Signup never logs the user in.
	assert.Nil(t, directory.Current())
}

func TestAccountDirectory_Signup_ValidationErrors(t *testing.T) {
	directory, _ := setupDirectoryTest(t)
	ctx := context.Background()

	tests := []struct {
		name      string
		req       SignupRequest
		wantField string
	}{
		{
			name:      "missing name",
			req:       SignupRequest{Email: "a@b.com", Password: "x", ConfirmPassword: "x"},
			wantField: "name",
		},
		{
			name:      "missing email",
			req:       SignupRequest{Name: "Ann", Password: "x", ConfirmPassword: "x"},
			wantField: "email",
		},
		{
			name:      "missing password",
			req:       SignupRequest{Name: "Ann", Email: "a@b.com"},
			wantField: "password",
		},
		{
			name:      "confirmation mismatch",
			req:       SignupRequest{Name: "Ann", Email: "a@b.com", Password: "x", ConfirmPassword: "y"},
			wantField: "confirm_password",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := directory.Signup(ctx, tt.req)
			require.Error(t, err)
			assert.ErrorIs(t, err, domainerrors.ErrValidation)

			var domainErr *domainerrors.Error
			require.ErrorAs(t, err, &domainErr)
			assert.Contains(t, domainErr.Details, tt.wantField)
			assert.Zero(t, directory.Len(), "failed signup must not add a user")
		})
	}
}

func TestAccountDirectory_Signup_DuplicateEmailAllowed(t *testing.T) {
	directory, _ := setupDirectoryTest(t)
	ctx := context.Background()

	req := SignupRequest{Name: "Ann", Email: "ann@x.com", Password: "pw12", ConfirmPassword: "pw12"}

	first, err := directory.Signup(ctx, req)
	require.NoError(t, err)
	second, err := directory.Signup(ctx, req)
	require.NoError(t, err)

	// Duplicate signups are silently allowed; lookup resolves to the first.
	assert.Equal(t, 2, directory.Len())
	assert.NotEqual(t, first.ID, second.ID)

	logged, err := directory.Login(ctx, LoginRequest{Email: "ann@x.com", Password: "pw12"})
	require.NoError(t, err)
	assert.Equal(t, first.ID, logged.ID)
}

func TestAccountDirectory_Login(t *testing.T) {
	directory, _ := setupDirectoryTest(t)
	ctx := context.Background()

	annID := signupAnn(t, directory)

	tests := []struct {
		name     string
		email    string
		password string
		wantOK   bool
	}{
		{"exact match succeeds", "ann@x.com", "pw12", true},
		{"wrong password fails", "ann@x.com", "nope", false},
		{"unknown account fails", "ghost@x.com", "pw12", false},
		{"case-sensitive email", "ANN@x.com", "pw12", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := directory.Login(ctx, LoginRequest{Email: tt.email, Password: tt.password})
			if tt.wantOK {
				require.NoError(t, err)
				assert.Equal(t, annID, user.ID)
				require.NotNil(t, directory.Current())
				assert.Equal(t, annID, directory.Current().ID)
			} else {
				assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
				assert.Nil(t, directory.Current())
			}
		})
	}
}

func TestAccountDirectory_LoginFailure_ClearsStoredSession(t *testing.T) {
	directory, s := setupDirectoryTest(t)
	ctx := context.Background()

	signupAnn(t, directory)

	_, err := directory.Login(ctx, LoginRequest{Email: "ann@x.com", Password: "pw12"})
	require.NoError(t, err)

	stored, err := s.LoadSession(ctx)
	require.NoError(t, err)
	require.NotNil(t, stored)

	// A failed login clears both the in-memory and the persisted session.
	_, err = directory.Login(ctx, LoginRequest{Email: "ann@x.com", Password: "wrong"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)

	stored, err = s.LoadSession(ctx)
	require.NoError(t, err)
	assert.Nil(t, stored)
	assert.Nil(t, directory.Current())
}

func TestAccountDirectory_Logout(t *testing.T) {
	directory, s := setupDirectoryTest(t)
	ctx := context.Background()

	signupAnn(t, directory)
	_, err := directory.Login(ctx, LoginRequest{Email: "ann@x.com", Password: "pw12"})
	require.NoError(t, err)

	require.NoError(t, directory.Logout(ctx))
	assert.Nil(t, directory.Current())

	stored, err := s.LoadSession(ctx)
	require.NoError(t, err)
	assert.Nil(t, stored)

	// Logging out while logged out is fine.
	require.NoError(t, directory.Logout(ctx))
}

func TestAccountDirectory_RestoresStateAcrossRestart(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "db")
	ctx := context.Background()

	s, err := store.New(dir, nil)
	require.NoError(t, err)

	directory, err := NewAccountDirectory(ctx, s, nil)
	require.NoError(t, err)

	annID := signupAnn(t, directory)
	_, err = directory.Login(ctx, LoginRequest{Email: "ann@x.com", Password: "pw12"})
	require.NoError(t, err)
	require.NoError(t, s.Close())

	// "Restart": reopen the store, rebuild the directory.
	s2, err := store.New(dir, nil)
	require.NoError(t, err)
	defer s2.Close()

	reloaded, err := NewAccountDirectory(ctx, s2, nil)
	require.NoError(t, err)

	assert.Equal(t, 1, reloaded.Len())
	require.NotNil(t, reloaded.Current())
	assert.Equal(t, annID, reloaded.Current().ID)
}

func TestAccountDirectory_CurrentReturnsCopy(t *testing.T) {
	directory, _ := setupDirectoryTest(t)
	ctx := context.Background()

	signupAnn(t, directory)
	_, err := directory.Login(ctx, LoginRequest{Email: "ann@x.com", Password: "pw12"})
	require.NoError(t, err)

	first := directory.Current()
	first.Name = "Mutated"

	assert.Equal(t, "Ann", directory.Current().Name)
}
