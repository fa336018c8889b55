package cli

import (
	"context"
	"fmt"

	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"

	"github.com/rshade/carbontrace/internal/config"
	"github.com/rshade/carbontrace/internal/dataset"
	"github.com/rshade/carbontrace/internal/logging"
)

// App is the per-invocation state shared by every command.
type App struct {
	Config     *config.Config
	Clock      clockwork.Clock
	ProjectDir string

	catalog *dataset.Catalog
}

type appKey struct{}

func withApp(ctx context.Context, app *App) context.Context {
	return context.WithValue(ctx, appKey{}, app)
}

// appFrom returns the App installed by the root command, or one built from
// the global config when a command runs outside the root.
func appFrom(cmd *cobra.Command) *App {
	if app, ok := cmd.Context().Value(appKey{}).(*App); ok && app != nil {
		return app
	}
	return &App{Config: config.GetGlobalConfig(), Clock: clockwork.NewRealClock()}
}

// Catalog loads the configured data file once, falling back to the embedded
// reference products when no file is configured.
func (a *App) Catalog(ctx context.Context) (*dataset.Catalog, error) {
	if a.catalog != nil {
		return a.catalog, nil
	}
	path := a.Config.Data.Path
	if path == "" {
		a.catalog = dataset.Default()
		return a.catalog, nil
	}

	cat, err := dataset.LoadFile(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("loading data file: %w", err)
	}
	logger := logging.FromContext(ctx)
	logger.Debug().
		Str("component", "cli").
		Str("path", path).
		Int("products", len(cat.IDs())).
		Msg("catalog loaded from data file")
	a.catalog = cat
	return cat, nil
}

// SetCatalog replaces the catalog for the rest of the invocation.
func (a *App) SetCatalog(cat *dataset.Catalog) {
	a.catalog = cat
}

// Product resolves a product argument, defaulting to data.default_product
// and then to the first product of the catalog.
func (a *App) Product(ctx context.Context, args []string) (dataset.Product, error) {
	cat, err := a.Catalog(ctx)
	if err != nil {
		return dataset.Product{}, err
	}
	name := a.Config.Data.DefaultProduct
	if len(args) > 0 {
		name = args[0]
	}
	if name == "" {
		return cat.Products()[0], nil
	}
	p, err := cat.Lookup(name)
	if err != nil && len(args) == 0 {
		// A default that the loaded file does not define is not the user's
		// fault on this invocation.
		return cat.Products()[0], nil
	}
	return p, err
}

// Format returns the effective output format.
func (a *App) Format() (OutputFormat, error) {
	return ParseOutputFormat(a.Config.Output.DefaultFormat)
}
