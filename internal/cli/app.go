// Package cli is the terminal presentation layer: a small REPL over the
// navigation state machine. It owns prompting and printing only; every rule
// about state lives in the navigator and the containers behind it.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/songcrateapp/songcrate/internal/domain"
	domainerrors "github.com/songcrateapp/songcrate/internal/errors"
	"github.com/songcrateapp/songcrate/internal/nav"
	"github.com/songcrateapp/songcrate/internal/service"
)

// App is the interactive terminal application.
type App struct {
	navigator *nav.Navigator
	reader    *bufio.Reader
	out       io.Writer
}

// New creates the terminal app reading commands from in and writing to out.
func New(navigator *nav.Navigator, in io.Reader, out io.Writer) *App {
	return &App{
		navigator: navigator,
		reader:    bufio.NewReader(in),
		out:       out,
	}
}

// Run starts the command loop and blocks until the user exits or input ends.
func (a *App) Run(ctx context.Context) error {
	fmt.Fprintln(a.out, "songcrate - your personal song catalog. Type 'help' for commands.")

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprintf(a.out, "%s> ", a.prompt())
		line, err := a.reader.ReadString('\n')
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		if cmd == "exit" || cmd == "quit" {
			fmt.Fprintln(a.out, "Bye!")
			return nil
		}

		a.dispatch(ctx, cmd, args)
	}
}

// prompt reflects who is logged in, mirroring the list page header.
func (a *App) prompt() string {
	if user := a.navigator.CurrentUser(); user != nil {
		return user.Name
	}
	return "guest"
}

func (a *App) dispatch(ctx context.Context, cmd string, args []string) {
	var err error
	switch cmd {
	case "help":
		a.printHelp()
	case "signup":
		err = a.signup(ctx)
	case "login":
		err = a.login(ctx)
	case "logout":
		err = a.navigator.Logout(ctx)
	case "l", "list":
		err = a.list()
	case "add":
		err = a.add(ctx)
	case "edit":
		err = a.edit(ctx, args)
	case "delete", "rm":
		err = a.delete(ctx, args)
	default:
		fmt.Fprintf(a.out, "Unknown command: %s\n", cmd)
	}

	if err != nil {
		a.printError(err)
	}
}

func (a *App) printHelp() {
	if a.navigator.CurrentUser() != nil {
		fmt.Fprintln(a.out, "Available commands: (l)ist, add, edit <n>, delete <n>, logout, exit")
	} else {
		fmt.Fprintln(a.out, "Available commands: signup, login, exit")
	}
}

// printError renders domain errors the way the forms did: field-keyed
// validation messages line by line, everything else as a single message.
func (a *App) printError(err error) {
	var domainErr *domainerrors.Error
	if domainerrors.As(err, &domainErr) && len(domainErr.Details) > 0 {
		for field, msg := range domainErr.Details {
			fmt.Fprintf(a.out, "  %s %s\n", field, msg)
		}
		return
	}
	fmt.Fprintf(a.out, "error: %v\n", err)
}

func (a *App) signup(ctx context.Context) error {
	name, err := promptText(a.reader, a.out, "Full name")
	if err != nil {
		return err
	}
	email, err := promptText(a.reader, a.out, "Email")
	if err != nil {
		return err
	}
	password, err := promptPassword(a.out, "Password")
	if err != nil {
		return err
	}
	confirm, err := promptPassword(a.out, "Confirm password")
	if err != nil {
		return err
	}

	_, err = a.navigator.Signup(ctx, service.SignupRequest{
		Name:            name,
		Email:           email,
		Password:        password,
		ConfirmPassword: confirm,
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Account created! Please login.")
	return nil
}

func (a *App) login(ctx context.Context) error {
	email, err := promptText(a.reader, a.out, "Email")
	if err != nil {
		return err
	}
	password, err := promptPassword(a.out, "Password")
	if err != nil {
		return err
	}

	user, err := a.navigator.Login(ctx, service.LoginRequest{Email: email, Password: password})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Welcome, %s!\n", user.Name)
	return nil
}

func (a *App) list() error {
	songs, err := a.navigator.Songs()
	if err != nil {
		return err
	}

	if len(songs) == 0 {
		fmt.Fprintln(a.out, "No songs yet. Add your first song to get started!")
		return nil
	}

	for i, song := range songs {
		fmt.Fprintf(a.out, "%2d. %s - %s (%s, %s) [%s] %s\n",
			i+1, song.Title, song.Singer, song.Album, song.Year, song.Duration, song.Genre)
	}
	return nil
}

func (a *App) add(ctx context.Context) error {
	if err := a.navigator.StartAdd(); err != nil {
		return err
	}

	req := service.AddSongRequest{}
	fields := []struct {
		label string
		dest  *string
	}{
		{"Title", &req.Title},
		{"Singer", &req.Singer},
		{"Album", &req.Album},
		{"Year", &req.Year},
		{"Duration (mm:ss)", &req.Duration},
		{"Genre", &req.Genre},
	}
	for _, f := range fields {
		value, err := promptText(a.reader, a.out, f.label)
		if err != nil {
			_ = a.navigator.Cancel()
			return err
		}
		*f.dest = value
	}

	if req.Title == "" {
		// Blank title abandons the form.
		fmt.Fprintln(a.out, "Cancelled.")
		return a.navigator.Cancel()
	}

	if _, err := a.navigator.SubmitAdd(ctx, req); err != nil {
		_ = a.navigator.Cancel()
		return err
	}
	fmt.Fprintln(a.out, "Song added!")
	return nil
}

func (a *App) edit(ctx context.Context, args []string) error {
	songID, err := a.resolveSong(args)
	if err != nil {
		return err
	}
	if err := a.navigator.StartEdit(songID); err != nil {
		return err
	}

	song, ok := a.navigator.EditingSong()
	if !ok {
		_ = a.navigator.Cancel()
		return domainerrors.NotFoundf("song %s not found", songID)
	}

	patch := domain.SongPatch{}
	fields := []struct {
		label   string
		current string
		dest    **string
	}{
		{"Title", song.Title, &patch.Title},
		{"Singer", song.Singer, &patch.Singer},
		{"Album", song.Album, &patch.Album},
		{"Year", song.Year, &patch.Year},
		{"Duration (mm:ss)", song.Duration, &patch.Duration},
		{"Genre", song.Genre, &patch.Genre},
	}
	for _, f := range fields {
		value, err := promptText(a.reader, a.out, fmt.Sprintf("%s [%s]", f.label, f.current))
		if err != nil {
			_ = a.navigator.Cancel()
			return err
		}
		// Blank input keeps the old value.
		if value != "" {
			v := value
			*f.dest = &v
		}
	}

	if err := a.navigator.SubmitEdit(ctx, patch); err != nil {
		_ = a.navigator.Cancel()
		return err
	}
	fmt.Fprintln(a.out, "Song updated!")
	return nil
}

func (a *App) delete(ctx context.Context, args []string) error {
	songID, err := a.resolveSong(args)
	if err != nil {
		return err
	}

	confirm, err := promptText(a.reader, a.out, "Delete this song? (y/N)")
	if err != nil {
		return err
	}
	if !strings.EqualFold(confirm, "y") {
		fmt.Fprintln(a.out, "Kept.")
		return nil
	}

	if err := a.navigator.Delete(ctx, songID); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Song deleted.")
	return nil
}

// resolveSong turns a 1-based list position into a song id. A raw song id is
// accepted too.
func (a *App) resolveSong(args []string) (string, error) {
	if len(args) != 1 {
		return "", domainerrors.Validation("expected a song number from 'list'")
	}

	songs, err := a.navigator.Songs()
	if err != nil {
		return "", err
	}

	var index int
	if _, err := fmt.Sscanf(args[0], "%d", &index); err == nil {
		if index < 1 || index > len(songs) {
			return "", domainerrors.NotFoundf("no song at position %d", index)
		}
		return songs[index-1].ID, nil
	}

	return args[0], nil
}
