package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/skillstorm/hotel-management/docs"
	"github.com/skillstorm/hotel-management/internal/api"
	"github.com/skillstorm/hotel-management/internal/core/service"
	"github.com/skillstorm/hotel-management/internal/infrastructure/config"
	"github.com/skillstorm/hotel-management/internal/infrastructure/db/mongo"
	"github.com/skillstorm/hotel-management/internal/infrastructure/http/handlers"
	"github.com/skillstorm/hotel-management/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// @title			Hotel Catalog API
// @version		1.0
// @description	Rooms, reservations and the staff directory behind the front-desk console.
// @BasePath		/
// @securityDefinitions.apikey	BearerAuth
// @in							header
// @name						Authorization
func main() {
	ctx := context.Background()

	cfg, err := config.LoadCatalog(ctx)
	if err != nil {
		bootLog := logger.Init(logger.Options{Service: "catalog"})
		bootLog.Fatal().Err(err).Msg("load config")
	}

	log := logger.Init(logger.Options{
		Service: "catalog",
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
	})

	store, err := mongo.Connect(ctx, mongo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		log.Fatal().Err(err).Msg("connect mongo")
	}

	roomRepo := mongo.NewRoomRepository(store.Database())
	reservationRepo := mongo.NewReservationRepository(store.Database())
	userRepo := mongo.NewUserRepository(store.Database())

	if err := mongo.EnsureIndexes(ctx, roomRepo, reservationRepo); err != nil {
		log.Fatal().Err(err).Msg("ensure indexes")
	}

	e := api.NewCatalogRouter(api.CatalogDeps{
		Rooms:        service.NewRoomService(roomRepo, logger.Component("rooms")),
		Reservations: service.NewReservationService(reservationRepo, roomRepo, logger.Component("reservations")),
		Directory:    service.NewDirectoryService(userRepo),
		Probes:       map[string]handlers.Probe{"mongo": store.Ping},
		JWTSecret:    cfg.JWTSecret,
		CORSOrigins:  cfg.CORSOrigins,
		Log:          log,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("database", cfg.Mongo.Database).Msg("catalog listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown error")
	}
	if err := store.Close(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("close mongo")
	}
}
