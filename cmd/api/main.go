package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"echo-journal/internal/config"
	"echo-journal/internal/domain/diaries"
	"echo-journal/internal/domain/events"
	"echo-journal/internal/domain/settings"
	"echo-journal/internal/platform/factory"
	"echo-journal/internal/platform/logger"
	"echo-journal/internal/router"
	"echo-journal/internal/scheduler"
	"echo-journal/internal/storage"
)

// @title Echo Journal API
// @version 1.0
// @description Diario personal: eventos del día, diarios y configuración.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.NewFromEnv().Error("invalid config", map[string]any{"error": err})
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName,
	})

	if err := run(cfg, log); err != nil {
		log.Error("server error", map[string]any{"error": err})
		os.Exit(1)
	}
}

func run(cfg *config.Config, log logger.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	kvs, err := factory.NewKVStore(ctx, cfg)
	if err != nil {
		return err
	}
	svc := storage.NewService(kvs, log)
	defer func() {
		if err := svc.Close(); err != nil {
			log.Error("close storage", map[string]any{"error": err})
		}
	}()

	evs := events.NewStore(svc, log,
		events.WithLocation(loc),
		events.WithPersistTimeout(cfg.PersistTimeout),
	)
	dis := diaries.NewStore(svc, log, loc, cfg.PersistTimeout)
	set := settings.NewService(svc, log)

	evs.Init(ctx)
	dis.Init(ctx)

	reminder := scheduler.NewReminder(evs, loc, log)
	if err := reminder.Apply(set.Get(ctx)); err != nil {
		log.Warn("reminder not scheduled", map[string]any{"error": err})
	}
	set.OnChange(func(s settings.UserSettings) {
		if err := reminder.Apply(s); err != nil {
			log.Warn("reminder not rescheduled", map[string]any{"error": err})
		}
	})
	reminder.Start()
	defer reminder.Stop()

	srv := &http.Server{
		Addr: cfg.Addr(),
		Handler: router.NewRouter(router.Options{
			Events:   evs,
			Diaries:  dis,
			Settings: set,
			Log:      log,
			Location: loc,
			APIToken: cfg.APIToken,
		}),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{
			"addr":    srv.Addr,
			"storage": string(cfg.StorageDriver),
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return err
		}
	case <-ctx.Done():
	}

	log.Info("shutting down", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("http shutdown", map[string]any{"error": err})
	}
	// Los stores vacían lo pendiente antes de cerrar el kv.
	if err := evs.Close(shutdownCtx); err != nil {
		log.Error("flush events", map[string]any{"error": err})
	}
	if err := dis.Close(shutdownCtx); err != nil {
		log.Error("flush diaries", map[string]any{"error": err})
	}
	return nil
}
