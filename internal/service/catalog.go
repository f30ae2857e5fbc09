package service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/songcrateapp/songcrate/internal/domain"
	domainerrors "github.com/songcrateapp/songcrate/internal/errors"
	"github.com/songcrateapp/songcrate/internal/id"
	"github.com/songcrateapp/songcrate/internal/store"
)

// CatalogOptions control song catalog policy.
type CatalogOptions struct {
	// EnforceOwnership makes Delete refuse requests from non-owners.
	// Off by default: historically any authenticated user could delete any
	// song by id, and some stored catalogs rely on that. Turning it on is
	// the stricter, recommended policy.
	EnforceOwnership bool
}

// SongCatalog maintains the set of songs, each owned by exactly one account.
type SongCatalog struct {
	store  *store.Store
	logger *slog.Logger
	opts   CatalogOptions

	mu    sync.Mutex
	songs []domain.Song // insertion order

	// now is a test seam for AddedDate stamping.
	now func() time.Time
}

// NewSongCatalog loads the song collection from the store and returns a
// ready catalog.
func NewSongCatalog(ctx context.Context, s *store.Store, logger *slog.Logger, opts CatalogOptions) (*SongCatalog, error) {
	songs, err := s.LoadSongs(ctx)
	if err != nil {
		return nil, err
	}

	if logger != nil {
		logger.Debug("song catalog loaded", "songs", len(songs))
	}

	return &SongCatalog{
		store:  s,
		logger: logger,
		opts:   opts,
		songs:  songs,
		now:    time.Now,
	}, nil
}

// AddSongRequest contains the song form fields. Title is the only field the
// form insists on; everything else is free text.
type AddSongRequest struct {
	Title    string `json:"title" validate:"required"`
	Singer   string `json:"singer"`
	Album    string `json:"album"`
	Year     string `json:"year"`
	Duration string `json:"duration"`
	Genre    string `json:"genre"`
}

// Add creates a song owned by ownerID, stamps its added date, appends it to
// the catalog and persists the collection. An empty ownerID means the caller
// has no authenticated session and is rejected.
func (c *SongCatalog) Add(ctx context.Context, req AddSongRequest, ownerID string) (*domain.Song, error) {
	if ownerID == "" {
		return nil, domainerrors.Unauthorized("adding a song requires a logged-in user")
	}
	if err := validate.Validate(req); err != nil {
		return nil, err
	}

	songID, err := id.Generate(id.PrefixSong)
	if err != nil {
		return nil, domainerrors.Wrap(err, domainerrors.CodeInternal, "generate song id")
	}

	song := domain.Song{
		ID:        songID,
		Title:     req.Title,
		Singer:    req.Singer,
		Album:     req.Album,
		Year:      req.Year,
		Duration:  req.Duration,
		Genre:     req.Genre,
		UserID:    ownerID,
		AddedDate: c.now().UTC().Format(time.RFC3339),
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.songs = append(c.songs, song)
	if err := c.store.SaveSongs(ctx, c.songs); err != nil {
		c.songs = c.songs[:len(c.songs)-1]
		return nil, err
	}

	if c.logger != nil {
		c.logger.Info("song added", "song_id", song.ID, "owner", ownerID)
	}

	return &song, nil
}

// Update merges the patch into the song with the given id. Fields the patch
// does not carry stay untouched; owner and id are not patchable at all. When
// no song matches, the collection is unchanged and no error is signaled.
func (c *SongCatalog) Update(ctx context.Context, songID string, patch domain.SongPatch) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.songs {
		if c.songs[i].ID != songID {
			continue
		}

		updated := c.songs[i]
		patch.Apply(&updated)

		previous := c.songs[i]
		c.songs[i] = updated
		if err := c.store.SaveSongs(ctx, c.songs); err != nil {
			c.songs[i] = previous
			return err
		}

		if c.logger != nil {
			c.logger.Info("song updated", "song_id", songID)
		}
		return nil
	}

	return nil
}

// Delete removes the song with the given id and persists the collection.
// Deleting an absent id is a no-op, which makes the operation idempotent.
// With ownership enforcement on, a requester who does not own the song gets
// a forbidden error and the catalog is unchanged.
func (c *SongCatalog) Delete(ctx context.Context, songID, requesterID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.songs {
		if c.songs[i].ID != songID {
			continue
		}

		if c.opts.EnforceOwnership && !c.songs[i].OwnedBy(requesterID) {
			return domainerrors.Forbiddenf("song %s belongs to another user", songID)
		}

		next := make([]domain.Song, 0, len(c.songs)-1)
		next = append(next, c.songs[:i]...)
		next = append(next, c.songs[i+1:]...)
		if err := c.store.SaveSongs(ctx, next); err != nil {
			return err
		}
		c.songs = next

		if c.logger != nil {
			c.logger.Info("song deleted", "song_id", songID)
		}
		return nil
	}

	return nil
}

// ListByOwner returns copies of the songs owned by ownerID, in insertion
// order. Pure read; nothing is persisted.
func (c *SongCatalog) ListByOwner(ownerID string) []domain.Song {
	c.mu.Lock()
	defer c.mu.Unlock()

	var out []domain.Song
	for i := range c.songs {
		if c.songs[i].OwnedBy(ownerID) {
			out = append(out, c.songs[i])
		}
	}
	return out
}

// SongByID returns a copy of the song with the given id.
func (c *SongCatalog) SongByID(songID string) (*domain.Song, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.songs {
		if c.songs[i].ID == songID {
			copied := c.songs[i]
			return &copied, true
		}
	}
	return nil, false
}

// Len returns the total number of songs across all owners.
func (c *SongCatalog) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.songs)
}
