package domain

// Song represents a catalog entry owned by exactly one user.
//
// All fields are plain strings; Duration is conventionally "mm:ss" but not
// validated. The JSON field names (including the camelCase userId and
// addedDate) must stay as they are - they are the persisted record layout
// and must round-trip with pre-existing stored data.
type Song struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Singer    string `json:"singer"`
	Album     string `json:"album"`
	Year      string `json:"year"`
	Duration  string `json:"duration"`
	Genre     string `json:"genre"`
	UserID    string `json:"userId"`
	AddedDate string `json:"addedDate"`
}

// OwnedBy reports whether the song belongs to the given user.
func (s *Song) OwnedBy(userID string) bool {
	return s.UserID == userID
}

// SongPatch is a typed partial update for a Song. A nil field means
// "leave unchanged". ID, UserID and AddedDate are not patchable: the id is
// the record's identity, the owner never changes after creation, and the
// added date is set once at creation.
type SongPatch struct {
	Title    *string
	Singer   *string
	Album    *string
	Year     *string
	Duration *string
	Genre    *string
}

// Apply merges the patch into the song field by field.
func (p SongPatch) Apply(s *Song) {
	if p.Title != nil {
		s.Title = *p.Title
	}
	if p.Singer != nil {
		s.Singer = *p.Singer
	}
	if p.Album != nil {
		s.Album = *p.Album
	}
	if p.Year != nil {
		s.Year = *p.Year
	}
	if p.Duration != nil {
		s.Duration = *p.Duration
	}
	if p.Genre != nil {
		s.Genre = *p.Genre
	}
}

// IsZero reports whether the patch carries no changes.
func (p SongPatch) IsZero() bool {
	return p.Title == nil && p.Singer == nil && p.Album == nil &&
		p.Year == nil && p.Duration == nil && p.Genre == nil
}
