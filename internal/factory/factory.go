package factory

import (
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/mcoot/decklist-exporter/internal/backend"
	"github.com/mcoot/decklist-exporter/internal/config"
	"github.com/mcoot/decklist-exporter/internal/dependencies/random"
	"github.com/mcoot/decklist-exporter/internal/services/admin"
	"github.com/mcoot/decklist-exporter/internal/services/decks"
	"github.com/mcoot/decklist-exporter/internal/services/exporter"
	"github.com/mcoot/decklist-exporter/internal/services/pin"
	"github.com/mcoot/decklist-exporter/internal/storage"
	"github.com/mcoot/decklist-exporter/internal/storage/memory"
	redisstorage "github.com/mcoot/decklist-exporter/internal/storage/redis"
	sqlitestorage "github.com/mcoot/decklist-exporter/internal/storage/sqlite"
)

// App contains all wired application components
type App struct {
	// Storage backs the development backend's players and, when the web
	// front-end keeps PINs server side, the pin token.
	Storage storage.Storage

	// External dependencies
	Random  random.Random
	Backend *backend.Client

	// Services
	DeckService *decks.Service
	PinService  *pin.Service

	exporterCfg exporter.Config
	logger      *slog.Logger
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory", "redis" or "sqlite")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// SQLitePath is the database file (required if StorageType is "sqlite")
	SQLitePath string
	// BackendURL is the decklist API base URL
	BackendURL string
	// BackendTimeout overrides the client's default timeout when non-zero
	BackendTimeout time.Duration
	// RequirePhone enables the phone-number form variant
	RequirePhone bool
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = config.StorageMemory
	}

	switch storageType {
	case config.StorageMemory:
		store = memory.New()
	case config.StorageRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	case config.StorageSQLite:
		sqliteStore, err := sqlitestorage.Open(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		store = sqliteStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory', 'redis' or 'sqlite'")
	}

	var opts []backend.Option
	if cfg.BackendTimeout > 0 {
		opts = append(opts, backend.WithTimeout(cfg.BackendTimeout))
	}
	client := backend.New(cfg.BackendURL, opts...)

	return newWithDependencies(store, random.New(), client, exporter.Config{RequirePhone: cfg.RequirePhone}, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, rnd random.Random, client *backend.Client, exporterCfg exporter.Config, logger *slog.Logger) *App {
	return &App{
		Storage:     store,
		Random:      rnd,
		Backend:     client,
		DeckService: decks.New(store, rnd, logger),
		PinService:  pin.New(store, logger),
		exporterCfg: exporterCfg,
		logger:      logger,
	}
}

// NewExporter returns a fresh form controller bound to the backend client
func (a *App) NewExporter() *exporter.Controller {
	return exporter.NewController(a.Backend, a.exporterCfg, a.logger)
}

// NewAdmin returns a fresh admin table controller bound to the backend client
func (a *App) NewAdmin() *admin.Controller {
	return admin.NewController(a.Backend, a.logger)
}

// RequirePhone reports whether the form needs a phone number
func (a *App) RequirePhone() bool {
	return a.exporterCfg.RequirePhone
}

// Logger returns the application logger
func (a *App) Logger() *slog.Logger {
	return a.logger
}

// Close releases storage connections
func (a *App) Close() error {
	if c, ok := a.Storage.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
