// Package service holds the application's state containers: the account
// directory and the song catalog. Each container owns its collection in
// memory as the single source of truth and mirrors every mutation into the
// store so it survives a restart.
package service

import (
	"context"
	"log/slog"
	"sync"

	"github.com/songcrateapp/songcrate/internal/domain"
	domainerrors "github.com/songcrateapp/songcrate/internal/errors"
	"github.com/songcrateapp/songcrate/internal/id"
	"github.com/songcrateapp/songcrate/internal/store"
	"github.com/songcrateapp/songcrate/internal/validation"
)

// validate is a shared validator instance for request validation.
var validate = validation.New()

// AccountDirectory maintains the set of registered users and the
// currently-authenticated user.
type AccountDirectory struct {
	store  *store.Store
	logger *slog.Logger

	mu      sync.Mutex
	users   []domain.User // insertion order
	current *domain.User
}

// NewAccountDirectory loads the user collection and any persisted session
// from the store and returns a ready directory.
func NewAccountDirectory(ctx context.Context, s *store.Store, logger *slog.Logger) (*AccountDirectory, error) {
	users, err := s.LoadUsers(ctx)
	if err != nil {
		return nil, err
	}
	current, err := s.LoadSession(ctx)
	if err != nil {
		return nil, err
	}

	if logger != nil {
		logger.Debug("account directory loaded", "users", len(users), "session", current != nil)
	}

	return &AccountDirectory{
		store:   s,
		logger:  logger,
		users:   users,
		current: current,
	}, nil
}

// SignupRequest contains the account creation form fields.
type SignupRequest struct {
	Name            string `json:"name" validate:"required"`
	Email           string `json:"email" validate:"required"`
	Password        string `json:"password" validate:"required"`
	ConfirmPassword string `json:"confirm_password" validate:"eqfield=Password"`
}

// LoginRequest contains login credentials.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Signup registers a new account and persists the user collection.
//
// It does not log the new user in, and it deliberately performs no
// duplicate-email check: the directory has always allowed duplicate signups,
// and lookups resolve to the first matching record.
func (d *AccountDirectory) Signup(ctx context.Context, req SignupRequest) (*domain.User, error) {
	if err := validate.Validate(req); err != nil {
		return nil, err
	}

	userID, err := id.Generate(id.PrefixUser)
	if err != nil {
		return nil, domainerrors.Wrap(err, domainerrors.CodeInternal, "generate user id")
	}

	user := domain.User{
		ID:       userID,
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	d.users = append(d.users, user)
	if err := d.store.SaveUsers(ctx, d.users); err != nil {
		// Keep memory and mirror consistent.
		d.users = d.users[:len(d.users)-1]
		return nil, err
	}

	if d.logger != nil {
		d.logger.Info("user signed up", "user_id", user.ID)
	}

	return &user, nil
}

// Login authenticates against the directory. The first record whose email
// and password both match exactly wins; on success the session is set to a
// copy of that record and persisted. On failure both the in-memory session
// and the persisted session are cleared, and ErrInvalidCredentials is
// returned without revealing whether the account exists.
func (d *AccountDirectory) Login(ctx context.Context, req LoginRequest) (*domain.User, error) {
	if err := validate.Validate(req); err != nil {
		return nil, err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	for i := range d.users {
		if d.users[i].CredentialsMatch(req.Email, req.Password) {
			found := d.users[i]
			if err := d.store.SaveSession(ctx, &found); err != nil {
				return nil, err
			}
			d.current = &found

			if d.logger != nil {
				d.logger.Info("login succeeded", "user_id", found.ID)
			}

			copied := found
			return &copied, nil
		}
	}

	// Failed login clears any prior session, in memory and in the store.
	d.current = nil
	if err := d.store.ClearSession(ctx); err != nil {
		return nil, err
	}

	if d.logger != nil {
		d.logger.Info("login failed")
	}

	return nil, domainerrors.InvalidCredentials("invalid email or password")
}

// Logout clears the session regardless of prior state.
func (d *AccountDirectory) Logout(ctx context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.current = nil
	if err := d.store.ClearSession(ctx); err != nil {
		return err
	}

	if d.logger != nil {
		d.logger.Info("logged out")
	}
	return nil
}

// Current returns a copy of the authenticated user, or nil when logged out.
func (d *AccountDirectory) Current() *domain.User {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.current == nil {
		return nil
	}
	copied := *d.current
	return &copied
}

// Users returns a copy of the registered users in insertion order.
func (d *AccountDirectory) Users() []domain.User {
	d.mu.Lock()
	defer d.mu.Unlock()

	out := make([]domain.User, len(d.users))
	copy(out, d.users)
	return out
}

// UserByID returns a copy of the user with the given id.
func (d *AccountDirectory) UserByID(userID string) (*domain.User, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for i := range d.users {
		if d.users[i].ID == userID {
			copied := d.users[i]
			return &copied, true
		}
	}
	return nil, false
}

// Len returns the number of registered users.
func (d *AccountDirectory) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.users)
}
