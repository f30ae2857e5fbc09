// Package di provides dependency injection configuration for songcrate.
package di

import (
	"github.com/samber/do/v2"

	"github.com/songcrateapp/songcrate/internal/cli"
	"github.com/songcrateapp/songcrate/internal/config"
	"github.com/songcrateapp/songcrate/internal/di/providers"
	"github.com/songcrateapp/songcrate/internal/logger"
	"github.com/songcrateapp/songcrate/internal/nav"
	"github.com/songcrateapp/songcrate/internal/service"
)

// NewContainer creates and configures the DI container with all providers.
func NewContainer() *do.RootScope {
	injector := do.New()

	// Core infrastructure
	do.Provide(injector, providers.ProvideConfig)
	do.Provide(injector, providers.ProvideLogger)

	// Database layer
	do.Provide(injector, providers.ProvideStore)

	// State containers
	do.Provide(injector, providers.ProvideAccountDirectory)
	do.Provide(injector, providers.ProvideSongCatalog)

	// Presentation
	do.Provide(injector, providers.ProvideNavigator)
	do.Provide(injector, providers.ProvideApp)

	return injector
}

// Bootstrap triggers lazy initialization of all services so startup failures
// surface before the interactive loop begins.
func Bootstrap(injector *do.RootScope) error {
	_ = do.MustInvoke[*config.Config](injector)
	_ = do.MustInvoke[*logger.Logger](injector)
	_ = do.MustInvoke[*providers.StoreHandle](injector)
	_ = do.MustInvoke[*service.AccountDirectory](injector)
	_ = do.MustInvoke[*service.SongCatalog](injector)
	_ = do.MustInvoke[*nav.Navigator](injector)
	_ = do.MustInvoke[*cli.App](injector)

	return nil
}
