package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestSongPatch_Apply_PartialFields(t *testing.T) {
	song := Song{
		ID:        "song-1",
		Title:     "Original Title",
		Singer:    "Original Singer",
		Album:     "Original Album",
		Year:      "1999",
		Duration:  "03:45",
		Genre:     "rock",
		UserID:    "user-1",
		AddedDate: "2024-01-01T00:00:00Z",
	}

	patch := SongPatch{Title: strPtr("New Title")}
	patch.Apply(&song)

	assert.Equal(t, "New Title", song.Title)

	// Everything not in the patch is untouched, including identity and owner.
	assert.Equal(t, "song-1", song.ID)
	assert.Equal(t, "Original Singer", song.Singer)
	assert.Equal(t, "Original Album", song.Album)
	assert.Equal(t, "1999", song.Year)
	assert.Equal(t, "03:45", song.Duration)
	assert.Equal(t, "rock", song.Genre)
	assert.Equal(t, "user-1", song.UserID)
	assert.Equal(t, "2024-01-01T00:00:00Z", song.AddedDate)
}

func TestSongPatch_Apply_AllFields(t *testing.T) {
	song := Song{ID: "song-2", UserID: "user-2"}

	patch := SongPatch{
		Title:    strPtr("T"),
		Singer:   strPtr("S"),
		Album:    strPtr("A"),
		Year:     strPtr("2020"),
		Duration: strPtr("04:20"),
		Genre:    strPtr("jazz"),
	}
	patch.Apply(&song)

	assert.Equal(t, Song{
		ID: "song-2", Title: "T", Singer: "S", Album: "A",
		Year: "2020", Duration: "04:20", Genre: "jazz", UserID: "user-2",
	}, song)
}

func TestSongPatch_Apply_EmptyStringIsAChange(t *testing.T) {
	song := Song{Title: "Something"}

	// A pointer to "" clears the field; a nil pointer leaves it alone.
	SongPatch{Title: strPtr("")}.Apply(&song)
	assert.Empty(t, song.Title)
}

func TestSongPatch_IsZero(t *testing.T) {
	assert.True(t, SongPatch{}.IsZero())
	assert.False(t, SongPatch{Genre: strPtr("pop")}.IsZero())
}

func TestSong_OwnedBy(t *testing.T) {
	song := Song{UserID: "user-9"}
	assert.True(t, song.OwnedBy("user-9"))
	assert.False(t, song.OwnedBy("user-8"))
	assert.False(t, song.OwnedBy(""))
}

// The persisted record layout is the one external interface this application
// has; the camelCase keys must not drift.
func TestSong_PersistedFieldNames(t *testing.T) {
	song := Song{
		ID:        "song-3",
		Title:     "x",
		UserID:    "user-3",
		AddedDate: "2024-06-01T10:00:00Z",
	}

	data, err := json.Marshal(song)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))

	for _, key := range []string{"id", "title", "singer", "album", "year", "duration", "genre", "userId", "addedDate"} {
		assert.Contains(t, raw, key)
	}
	assert.Equal(t, "user-3", raw["userId"])
}
