package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/joho/godotenv/autoload"
	"gorm.io/gorm"

	"wearbmi/internal/ai"
	"wearbmi/internal/config"
	"wearbmi/internal/db"
	"wearbmi/internal/db/mock"
	applog "wearbmi/internal/log"
	"wearbmi/internal/server"
	"wearbmi/internal/store"
	"wearbmi/internal/tracker"
)

type serverLifecycle interface {
	Start() error
	Stop() error
}

// Seams for run, replaced in tests.
var (
	loadConfigFunc      = config.Load
	setLogLevelFunc     = applog.SetLevel
	newMockDatabaseFunc = mock.New
	configureDatabase   = db.Configure
	newServerFunc       = func(cfg server.Config) (serverLifecycle, error) {
		return server.New(cfg)
	}
	subscribeShutdownSig = func() (<-chan os.Signal, func()) {
		ch := make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGTERM, syscall.SIGINT)
		return ch, func() { signal.Stop(ch) }
	}
)

func main() {
	os.Exit(run(context.Background()))
}

func run(ctx context.Context) int {
	cfg, err := loadConfigFunc()
	if err != nil {
		applog.Error(ctx, "failed to load configuration", "error", err)
		return 1
	}

	if err := setLogLevelFunc(cfg.Logging.Level); err != nil {
		applog.Error(ctx, "invalid log level", "level", cfg.Logging.Level, "error", err)
		return 1
	}

	var database *gorm.DB
	switch {
	case cfg.Database.UseMock:
		applog.Info(ctx, "using mock database")
		database, err = newMockDatabaseFunc(ctx)
		if err != nil {
			applog.Error(ctx, "failed to initialise mock database", "error", err)
			return 1
		}
	case cfg.Database.URL != "":
		database, err = configureDatabase(cfg.Database)
		if err != nil {
			applog.Error(ctx, "failed to configure database", "error", err)
			return 1
		}
	default:
		applog.Info(ctx, "no database configured, records are kept in memory")
	}

	var records store.Store
	if database != nil {
		records = store.NewDatabase(database)
	} else {
		records = store.NewMemory()
	}

	client := ai.NewClient(ai.Config{
		Endpoint: cfg.AI.Endpoint,
		Model:    cfg.AI.Model,
		Timeout:  cfg.AI.Timeout,
	})

	srv, err := newServerFunc(server.Config{
		Addr: cfg.Server.Addr,
		Session: server.SessionConfig{
			Lifetime:     cfg.Session.Lifetime,
			CookieName:   cfg.Session.CookieName,
			CookieSecure: cfg.Session.CookieSecure,
		},
		Registry: tracker.NewRegistry(client, records),
	})
	if err != nil {
		applog.Error(ctx, "failed to build server", "error", err)
		return 1
	}

	errCh := make(chan error, 1)
	go func() {
		applog.Info(ctx, "starting http server", "addr", cfg.Server.Addr)
		errCh <- srv.Start()
	}()

	sigCh, unsubscribe := subscribeShutdownSig()
	defer unsubscribe()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			applog.Error(ctx, "server encountered an error", "error", err)
			return 1
		}
	case sig := <-sigCh:
		applog.Info(ctx, "shutdown signal received", "signal", sig.String())
		if err := srv.Stop(); err != nil {
			applog.Error(ctx, "graceful shutdown failed", "error", err)
			return 1
		}
		if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
			applog.Error(ctx, "server exited with error", "error", err)
			return 1
		}
	}

	applog.Info(ctx, "server stopped")
	return 0
}
