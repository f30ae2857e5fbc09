// Package nav implements the page state machine that glues the login, list,
// add and edit views together.
package nav

import (
	"context"

	"github.com/songcrateapp/songcrate/internal/domain"
	domainerrors "github.com/songcrateapp/songcrate/internal/errors"
	"github.com/songcrateapp/songcrate/internal/service"
)

// Page identifies the active view.
type Page string

const (
	// PageLogin is shown while no user is authenticated.
	PageLogin Page = "login"
	// PageSongs lists the logged-in user's songs.
	PageSongs Page = "songs"
	// PageAdd is the blank song form.
	PageAdd Page = "add"
	// PageEdit is the song form pre-filled with an existing song.
	PageEdit Page = "edit"
)

// Navigator drives the page state machine. All transitions are
// caller-triggered; there are no timers and no terminal state. The machine
// runs for the application's lifetime.
type Navigator struct {
	directory *service.AccountDirectory
	catalog   *service.SongCatalog

	page    Page
	editing string // song id under edit, only meaningful on PageEdit
}

// New creates a navigator. The initial page is the song list when a session
// was restored from the store at startup, otherwise the login page.
func New(directory *service.AccountDirectory, catalog *service.SongCatalog) *Navigator {
	page := PageLogin
	if directory.Current() != nil {
		page = PageSongs
	}
	return &Navigator{
		directory: directory,
		catalog:   catalog,
		page:      page,
	}
}

// Page returns the active page.
func (n *Navigator) Page() Page {
	return n.page
}

// EditingSong returns the song under edit. Only valid on the edit page.
func (n *Navigator) EditingSong() (*domain.Song, bool) {
	if n.page != PageEdit {
		return nil, false
	}
	return n.catalog.SongByID(n.editing)
}

// Signup registers an account from the login page. The machine stays on the
// login page either way; the original flow asks the new user to log in.
func (n *Navigator) Signup(ctx context.Context, req service.SignupRequest) (*domain.User, error) {
	if n.page != PageLogin {
		return nil, domainerrors.Conflict("already logged in")
	}
	return n.directory.Signup(ctx, req)
}

// Login attempts to authenticate. Success moves to the song list; failure
// leaves the machine on the login page and returns the credentials error for
// the presentation layer to surface.
func (n *Navigator) Login(ctx context.Context, req service.LoginRequest) (*domain.User, error) {
	if n.page != PageLogin {
		return nil, domainerrors.Conflict("already logged in")
	}

	user, err := n.directory.Login(ctx, req)
	if err != nil {
		return nil, err
	}
	n.page = PageSongs
	return user, nil
}

// Logout clears the session and returns to the login page. Allowed from any
// authenticated page.
func (n *Navigator) Logout(ctx context.Context) error {
	if n.page == PageLogin {
		return domainerrors.Conflict("not logged in")
	}
	if err := n.directory.Logout(ctx); err != nil {
		return err
	}
	n.page = PageLogin
	n.editing = ""
	return nil
}

// Songs returns the logged-in user's songs for the list page.
func (n *Navigator) Songs() ([]domain.Song, error) {
	current := n.directory.Current()
	if current == nil {
		return nil, domainerrors.Unauthorized("not logged in")
	}
	return n.catalog.ListByOwner(current.ID), nil
}

// StartAdd moves from the list to the blank song form.
func (n *Navigator) StartAdd() error {
	if n.page != PageSongs {
		return domainerrors.Conflictf("cannot add from %s page", n.page)
	}
	n.page = PageAdd
	return nil
}

// StartEdit moves from the list to the form pre-filled with the given song.
func (n *Navigator) StartEdit(songID string) error {
	if n.page != PageSongs {
		return domainerrors.Conflictf("cannot edit from %s page", n.page)
	}
	if _, ok := n.catalog.SongByID(songID); !ok {
		return domainerrors.NotFoundf("song %s not found", songID)
	}
	n.page = PageEdit
	n.editing = songID
	return nil
}

// SubmitAdd creates the song for the current user and returns to the list.
// A validation failure keeps the form open.
func (n *Navigator) SubmitAdd(ctx context.Context, req service.AddSongRequest) (*domain.Song, error) {
	if n.page != PageAdd {
		return nil, domainerrors.Conflict("no add form open")
	}

	current := n.directory.Current()
	if current == nil {
		return nil, domainerrors.Unauthorized("not logged in")
	}

	song, err := n.catalog.Add(ctx, req, current.ID)
	if err != nil {
		return nil, err
	}
	n.page = PageSongs
	return song, nil
}

// SubmitEdit applies the patch to the song under edit and returns to the list.
func (n *Navigator) SubmitEdit(ctx context.Context, patch domain.SongPatch) error {
	if n.page != PageEdit {
		return domainerrors.Conflict("no edit form open")
	}

	if err := n.catalog.Update(ctx, n.editing, patch); err != nil {
		return err
	}
	n.page = PageSongs
	n.editing = ""
	return nil
}

// Cancel abandons an open form and returns to the list.
func (n *Navigator) Cancel() error {
	if n.page != PageAdd && n.page != PageEdit {
		return domainerrors.Conflict("no form open")
	}
	n.page = PageSongs
	n.editing = ""
	return nil
}

// Delete removes a song from the list page on behalf of the current user.
func (n *Navigator) Delete(ctx context.Context, songID string) error {
	if n.page != PageSongs {
		return domainerrors.Conflictf("cannot delete from %s page", n.page)
	}

	current := n.directory.Current()
	if current == nil {
		return domainerrors.Unauthorized("not logged in")
	}
	return n.catalog.Delete(ctx, songID, current.ID)
}

// CurrentUser returns the authenticated user, or nil on the login page.
func (n *Navigator) CurrentUser() *domain.User {
	return n.directory.Current()
}
