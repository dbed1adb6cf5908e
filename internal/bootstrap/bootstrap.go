// Package bootstrap turns a loaded configuration into the collaborators a
// run needs. It is shared by the CLI, the TUI and the MCP server.
package bootstrap

import (
	"context"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"hoarder/internal/adapters/badger"
	"hoarder/internal/adapters/lastfm"
	"hoarder/internal/adapters/neo4j"
	"hoarder/internal/adapters/sqlite"
	"hoarder/internal/adapters/subsonic"
	"hoarder/internal/application"
	"hoarder/internal/application/commands"
	"hoarder/internal/config"
	"hoarder/internal/logger"
	"hoarder/internal/ports"
)

// Env holds everything wired from one configuration
type Env struct {
	Config   *config.Config
	Settings application.Settings
	Store    ports.SimilarityStore
	Cache    *application.SimilarityCache
	Logger   *zap.SugaredLogger
}

// Open validates the settings, opens the cache store (when enabled) and
// loads the similarity cache.
func Open(ctx context.Context, cfg *config.Config, log *zap.SugaredLogger) (*Env, error) {
	if log == nil {
		log = logger.Logger
	}

	settings, err := cfg.Settings()
	if err != nil {
		return nil, err
	}

	env := &Env{Config: cfg, Settings: settings, Logger: log}
	if settings.CacheEnabled {
		store, err := OpenStore(cfg.Cache, log)
		if err != nil {
			return nil, err
		}
		env.Store = store
	}
	env.Cache = application.LoadSimilarityCache(ctx, env.Store, settings.CacheEnabled, log)
	return env, nil
}

// Close releases the cache store
func (e *Env) Close() error {
	if e.Store == nil {
		return nil
	}
	return e.Store.Close()
}

// OpenStore opens the configured cache backend
func OpenStore(cfg config.CacheConfig, log *zap.SugaredLogger) (ports.SimilarityStore, error) {
	switch cfg.Backend {
	case "", config.BackendSQLite:
		store, err := sqlite.Open(cfg.Path)
		if err != nil {
			return nil, err
		}
		log.Debugw("cache store opened", logger.FieldBackend, config.BackendSQLite, logger.FieldPath, store.Path())
		return store, nil
	case config.BackendBadger:
		store, err := badger.Open(badger.Config{Path: cfg.Path, SyncWrites: true, Logger: log})
		if err != nil {
			return nil, err
		}
		log.Debugw("cache store opened", logger.FieldBackend, config.BackendBadger, logger.FieldPath, cfg.Path)
		return store, nil
	default:
		return nil, &application.ValidationError{
			Field:   "cache.backend",
			Message: "unknown cache backend " + cfg.Backend + " (expected sqlite or badger)",
		}
	}
}

// CatalogSource builds the Navidrome client
func (e *Env) CatalogSource() (ports.CatalogSource, error) {
	if err := e.Config.ValidateCatalog(); err != nil {
		return nil, err
	}
	n := e.Config.Navidrome
	return subsonic.NewClient(n.APIBase, n.Login, n.Password, e.Config.HTTP.Timeout, e.Logger), nil
}

// SimilaritySource builds the last.fm client
func (e *Env) SimilaritySource() (ports.SimilaritySource, error) {
	if err := e.Config.ValidateSimilarity(); err != nil {
		return nil, err
	}
	l := e.Config.LastFM
	return lastfm.NewClient(l.APIBase, l.APIKey, e.Config.HTTP.Timeout, e.Logger), nil
}

// Pacer returns the pacing strategy for the configured settings
func (e *Env) Pacer() ports.Pacer {
	return application.NewPacer(e.Settings)
}

// RunCommand wires a full run against the live services
func (e *Env) RunCommand() (*commands.RunCommand, error) {
	catalog, err := e.CatalogSource()
	if err != nil {
		return nil, err
	}
	similar, err := e.SimilaritySource()
	if err != nil {
		return nil, err
	}
	return commands.NewRunCommand(catalog, similar, e.Cache, e.Pacer(), e.Settings, e.Logger), nil
}

// Exporter connects to Neo4j. The returned close function releases the driver.
func (e *Env) Exporter(ctx context.Context) (ports.GraphExporter, func() error, error) {
	if err := e.Config.ValidateNeo4j(); err != nil {
		return nil, nil, err
	}
	n := e.Config.Neo4j
	executor, err := neo4j.NewExecutor(n.URI, n.Username, n.Password, n.Database)
	if err != nil {
		return nil, nil, err
	}
	if err := executor.Verify(ctx); err != nil {
		executor.Close(ctx)
		return nil, nil, errors.Wrap(err, "connecting to neo4j")
	}
	closeFn := func() error { return executor.Close(context.Background()) }
	return neo4j.NewExporter(executor, e.Logger), closeFn, nil
}
