// Package providers contains dependency injection providers for songcrate.
package providers

import (
	"context"
	"os"

	"github.com/samber/do/v2"

	"github.com/songcrateapp/songcrate/internal/cli"
	"github.com/songcrateapp/songcrate/internal/config"
	"github.com/songcrateapp/songcrate/internal/logger"
	"github.com/songcrateapp/songcrate/internal/nav"
	"github.com/songcrateapp/songcrate/internal/service"
	"github.com/songcrateapp/songcrate/internal/store"
)

// ProvideConfig provides the application configuration.
func ProvideConfig(i do.Injector) (*config.Config, error) {
	return config.LoadConfig()
}

// ProvideLogger provides the structured logger.
//
// Logs go to stderr so they never interleave with the interactive prompt on
// stdout.
func ProvideLogger(i do.Injector) (*logger.Logger, error) {
	cfg := do.MustInvoke[*config.Config](i)

	log := logger.New(logger.Config{
		Writer:      os.Stderr,
		Level:       logger.ParseLevel(cfg.Logger.Level),
		Environment: cfg.App.Environment,
	})

	log.Debug("starting songcrate",
		"environment", cfg.App.Environment,
		"log_level", cfg.Logger.Level,
		"data_path", cfg.Data.Path,
	)

	return log, nil
}

// StoreHandle wraps the store with shutdown capability.
type StoreHandle struct {
	*store.Store
}

// Shutdown implements do.Shutdownable.
func (h *StoreHandle) Shutdown() error {
	return h.Close()
}

// ProvideStore provides the key-value store.
func ProvideStore(i do.Injector) (*StoreHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	db, err := store.New(cfg.Data.Path, log.Logger)
	if err != nil {
		return nil, err
	}

	return &StoreHandle{Store: db}, nil
}

// ProvideAccountDirectory provides the account state container, loaded from
// the store.
func ProvideAccountDirectory(i do.Injector) (*service.AccountDirectory, error) {
	log := do.MustInvoke[*logger.Logger](i)
	storeHandle := do.MustInvoke[*StoreHandle](i)

	return service.NewAccountDirectory(context.Background(), storeHandle.Store, log.Logger)
}

// ProvideSongCatalog provides the song state container, loaded from the store.
func ProvideSongCatalog(i do.Injector) (*service.SongCatalog, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)
	storeHandle := do.MustInvoke[*StoreHandle](i)

	return service.NewSongCatalog(context.Background(), storeHandle.Store, log.Logger, service.CatalogOptions{
		EnforceOwnership: cfg.Catalog.EnforceSongOwnership,
	})
}

// ProvideNavigator provides the page state machine.
func ProvideNavigator(i do.Injector) (*nav.Navigator, error) {
	directory := do.MustInvoke[*service.AccountDirectory](i)
	catalog := do.MustInvoke[*service.SongCatalog](i)

	return nav.New(directory, catalog), nil
}

// ProvideApp provides the interactive terminal application.
func ProvideApp(i do.Injector) (*cli.App, error) {
	navigator := do.MustInvoke[*nav.Navigator](i)

	return cli.New(navigator, os.Stdin, os.Stdout), nil
}
