package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/mcoot/decklist-exporter/internal/api"
	"github.com/mcoot/decklist-exporter/internal/config"
	"github.com/mcoot/decklist-exporter/internal/factory"
	"github.com/mcoot/decklist-exporter/internal/logger"
	"github.com/mcoot/decklist-exporter/internal/server"
	redisstorage "github.com/mcoot/decklist-exporter/internal/storage/redis"
	"github.com/mcoot/decklist-exporter/internal/web"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Set up logging with JSON output
	log := logger.New(os.Stdout, cfg.LogLevel)
	slog.SetDefault(log)

	// Build factory config from environment
	factoryCfg := factory.Config{
		Logger:         log,
		StorageType:    cfg.StorageType,
		BackendURL:     cfg.ResolvedBackendURL(),
		BackendTimeout: cfg.BackendTimeout,
		RequirePhone:   cfg.RequirePhone,
	}
	if cfg.StorageType == config.StorageRedis {
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = cfg.RedisURL
		redisCfg.PinTTL = cfg.PinTTL
		factoryCfg.RedisConfig = &redisCfg
	}
	if cfg.StorageType == config.StorageSQLite {
		factoryCfg.SQLitePath = cfg.SQLitePath
	}

	app, err := factory.New(factoryCfg)
	if err != nil {
		log.Error("failed to create application", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() {
		if err := app.Close(); err != nil {
			log.Warn("failed to close storage", slog.String("error", err.Error()))
		}
	}()

	staticDir := cfg.StaticDir
	if staticDir == "" {
		staticDir = findStaticDir()
	}

	// PINs stay in each browser unless a shared store is configured
	webCfg := web.RouterConfig{
		Logger:      log,
		NewExporter: app.NewExporter,
		NewAdmin:    app.NewAdmin,
		StaticDir:   staticDir,
	}
	if cfg.StorageType != config.StorageMemory {
		webCfg.PinStore = app.Storage
	}

	mux := http.NewServeMux()
	mux.Handle("/", web.NewRouter(webCfg))
	if cfg.DevBackend {
		if err := seedPlayers(app); err != nil {
			log.Warn("could not seed players", slog.String("error", err.Error()))
		}
		mux.Handle("/api/", api.NewRouter(api.RouterConfig{
			Logger:      log,
			DeckService: app.DeckService,
		}))
		log.Info("development backend enabled", slog.String("backend_url", cfg.ResolvedBackendURL()))
	}

	serverConfig := server.DefaultConfig()
	serverConfig.Host = cfg.Host
	serverConfig.Port = cfg.Port
	srv := server.New(mux, serverConfig, log)

	// Handle graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	select {
	case err := <-errCh:
		if err != nil {
			log.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	case <-ctx.Done():
		log.Info("shutdown signal received")
		if err := srv.Shutdown(context.Background()); err != nil {
			log.Error("shutdown error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	log.Info("server stopped")
}

// seedPlayers gives an empty development backend something to administer
func seedPlayers(app *factory.App) error {
	ctx := context.Background()
	players, err := app.DeckService.ListPlayers(ctx)
	if err != nil || len(players) > 0 {
		return err
	}
	for _, name := range []string{"Ash", "Misty", "Brock"} {
		if _, err := app.DeckService.AddPlayer(ctx, name); err != nil {
			return err
		}
	}
	return nil
}

// findStaticDir looks for the static files directory
func findStaticDir() string {
	candidates := []string{
		"internal/web/static",
		filepath.Join(os.Getenv("PWD"), "internal/web/static"),
	}

	for _, dir := range candidates {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return dir
		}
	}

	return ""
}
