package application

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/gameroom-backend/internal/config"
	"github.com/rocketscienceinc/gameroom-backend/internal/repository"
	"github.com/rocketscienceinc/gameroom-backend/internal/transport/websocket"
	"github.com/rocketscienceinc/gameroom-backend/internal/usecase"
)

// RunApp - wires the registry, store, coordinator and gateway together and
// runs the server until a signal or a fatal server error.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	users := repository.NewUserRegistry()
	rooms := repository.NewRoomStore()

	hub := websocket.NewHub(logger)
	coordinator := usecase.NewRoomCoordinator(logger, users, rooms, hub)
	server := websocket.New(logger, coordinator, hub)

	log.Info("Starting server", "port", conf.Port)

	return server.Start(ctx, conf.Port)
}
