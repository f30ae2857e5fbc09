package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/songcrateapp/songcrate/internal/domain"
)

// LoadUsers reads the user collection. An absent key yields an empty
// collection; a malformed record is logged and treated the same way rather
// than failing startup.
func (s *Store) LoadUsers(ctx context.Context) ([]domain.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	val, ok, err := s.get(KeyUsers)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	var users []domain.User
	if err := json.Unmarshal(val, &users); err != nil {
		s.warnMalformed(KeyUsers, err)
		return nil, nil
	}
	return users, nil
}

// SaveUsers serializes the full user collection under its key.
func (s *Store) SaveUsers(ctx context.Context, users []domain.User) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if users == nil {
		users = []domain.User{}
	}
	data, err := json.Marshal(users)
	if err != nil {
		return fmt.Errorf("failed to marshal users: %w", err)
	}
	return s.set(KeyUsers, data)
}

// LoadSongs reads the song collection. Same tolerance rules as LoadUsers.
func (s *Store) LoadSongs(ctx context.Context) ([]domain.Song, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	val, ok, err := s.get(KeySongs)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	var songs []domain.Song
	if err := json.Unmarshal(val, &songs); err != nil {
		s.warnMalformed(KeySongs, err)
		return nil, nil
	}
	return songs, nil
}

// SaveSongs serializes the full song collection under its key.
func (s *Store) SaveSongs(ctx context.Context, songs []domain.Song) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if songs == nil {
		songs = []domain.Song{}
	}
	data, err := json.Marshal(songs)
	if err != nil {
		return fmt.Errorf("failed to marshal songs: %w", err)
	}
	return s.set(KeySongs, data)
}

// LoadSession reads the persisted session. Returns nil with no error when no
// session is stored or the record is malformed.
func (s *Store) LoadSession(ctx context.Context) (*domain.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	val, ok, err := s.get(KeySession)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	var user domain.User
	if err := json.Unmarshal(val, &user); err != nil {
		s.warnMalformed(KeySession, err)
		return nil, nil
	}
	return &user, nil
}

// SaveSession persists the logged-in user under the session key.
func (s *Store) SaveSession(ctx context.Context, user *domain.User) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	return s.set(KeySession, data)
}

// ClearSession removes the session key. Clearing an absent session is a no-op.
func (s *Store) ClearSession(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.delete(KeySession)
}

// Dump returns the raw bytes of every application record that is present,
// keyed by record name. Used by inspection tooling.
func (s *Store) Dump(ctx context.Context) (map[string][]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	records := make(map[string][]byte)
	for _, key := range []string{KeyUsers, KeySession, KeySongs} {
		val, ok, err := s.get(key)
		if err != nil {
			return nil, err
		}
		if ok {
			records[key] = val
		}
	}
	return records, nil
}

// warnMalformed logs a corrupt record. The record is treated as absent: the
// alternative is refusing to start over a single bad value, which loses the
// whole catalog instead of one record.
func (s *Store) warnMalformed(key string, err error) {
	if s.logger != nil {
		s.logger.Warn("malformed record, treating as empty", "key", key, "error", err)
	}
}
