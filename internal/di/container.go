// Package di provides dependency injection configuration for the Noteful server.
package di

import (
	"github.com/samber/do/v2"

	"github.com/notefulapp/noteful-server/internal/auth"
	"github.com/notefulapp/noteful-server/internal/config"
	"github.com/notefulapp/noteful-server/internal/di/providers"
	"github.com/notefulapp/noteful-server/internal/logger"
	"github.com/notefulapp/noteful-server/internal/service"
)

// NewContainer creates and configures the DI container with all providers.
// args are the command-line flags handed to config.LoadConfig.
//
// Providers are lazy: a CLI that only needs the store and services never
// starts the HTTP server.
func NewContainer(args []string) *do.RootScope {
	injector := do.New()

	// Core infrastructure
	do.Provide(injector, providers.ProvideConfig(args))
	do.Provide(injector, providers.ProvideLogger)

	// Database layer
	do.Provide(injector, providers.ProvideStore)

	// Business services
	do.Provide(injector, providers.ProvideHasher)
	do.Provide(injector, providers.ProvideCascade)
	do.Provide(injector, providers.ProvideNoteService)
	do.Provide(injector, providers.ProvideFolderService)
	do.Provide(injector, providers.ProvideTagService)
	do.Provide(injector, providers.ProvideUserService)

	// Server
	do.Provide(injector, providers.ProvideHTTPServer)

	return injector
}

// Bootstrap initializes all services and starts the HTTP server.
func Bootstrap(injector *do.RootScope) error {
	if _, err := do.Invoke[*config.Config](injector); err != nil {
		return err
	}
	_ = do.MustInvoke[*logger.Logger](injector)

	if _, err := do.Invoke[*providers.StoreHandle](injector); err != nil {
		return err
	}

	_ = do.MustInvoke[*auth.Hasher](injector)
	_ = do.MustInvoke[*service.Cascade](injector)
	_ = do.MustInvoke[*service.NoteService](injector)
	_ = do.MustInvoke[*service.FolderService](injector)
	_ = do.MustInvoke[*service.TagService](injector)
	_ = do.MustInvoke[*service.UserService](injector)

	if _, err := do.Invoke[*providers.HTTPServerHandle](injector); err != nil {
		return err
	}

	return nil
}

// Shutdown stops every service in reverse dependency order. It returns nil
// when all of them stopped cleanly, otherwise the report listing failures.
func Shutdown(injector *do.RootScope) error {
	report := injector.Shutdown()
	if report == nil || len(report.Errors) == 0 {
		return nil
	}
	return report
}
