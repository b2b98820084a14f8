package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/skillstorm/hotel-management/internal/api"
	"github.com/skillstorm/hotel-management/internal/core/ports"
	"github.com/skillstorm/hotel-management/internal/core/service"
	"github.com/skillstorm/hotel-management/internal/infrastructure/backend"
	"github.com/skillstorm/hotel-management/internal/infrastructure/config"
	"github.com/skillstorm/hotel-management/internal/infrastructure/db/memory"
	"github.com/skillstorm/hotel-management/internal/infrastructure/db/redis"
	"github.com/skillstorm/hotel-management/internal/infrastructure/http/handlers"
	"github.com/skillstorm/hotel-management/internal/infrastructure/queue"
	"github.com/skillstorm/hotel-management/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.LoadConsole(ctx)
	if err != nil {
		bootLog := logger.Init(logger.Options{Service: "console"})
		bootLog.Fatal().Err(err).Msg("load config")
	}

	log := logger.Init(logger.Options{
		Service: "console",
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
	})

	slot, closeSlot, err := openSlot(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("open session slot")
	}
	defer closeSlot()

	serializer := queue.NewSerializer(0, logger.Component("serializer"))
	serializer.Start(ctx)

	store := service.NewSessionStore(slot, cfg.SessionNamespace, logger.Component("session_store"))
	sessions := service.NewSessionManager(store, serializer, logger.Component("session"))
	go sessions.Init(ctx)

	catalog := backend.NewClient(
		backend.Config{BaseURL: cfg.CatalogURL, Timeout: cfg.CatalogTimeout},
		backend.NewTokenSigner(cfg.JWTSecret, 0),
		logger.Component("catalog_client"),
	)

	e := api.NewConsoleRouter(api.ConsoleDeps{
		Sessions: sessions,
		Views:    service.NewViewService(catalog, logger.Component("views")),
		Probes:   map[string]handlers.Probe{"session_store": slot.Ping},
		Log:      log,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("session_backend", cfg.SessionBackend).Msg("console listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	log.Info().Msg("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown error")
	}

	cancel()
	select {
	case <-serializer.Stopped():
	case <-shutdownCtx.Done():
		log.Warn().Msg("serializer did not stop in time")
	}
}

// openSlot returns the session slot selected by SESSION_BACKEND and a func
// releasing it.
func openSlot(ctx context.Context, cfg *config.ConsoleConfig, log zerolog.Logger) (ports.Slot, func(), error) {
	if cfg.SessionBackend == "memory" {
		log.Warn().Msg("session backend is memory, sessions will not survive a restart")
		return memory.NewSlot(), func() {}, nil
	}

	client, err := redis.Connect(ctx, redis.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		return nil, nil, err
	}
	return redis.NewSlot(client), func() {
		if err := client.Close(); err != nil {
			log.Warn().Err(err).Msg("close redis")
		}
	}, nil
}
