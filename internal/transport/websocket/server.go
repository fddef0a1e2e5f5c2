package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/rocketscienceinc/gameroom-backend/internal/entity"
)

// coordinator is the server's view of the room coordinator: one method per
// inbound client action, plus a read-only room snapshot for the HTTP
// surface.
type coordinator interface {
	Login(connID, name string) error
	CreateRoom(connID, name string) error
	JoinRoom(connID, roomID string) error
	MakeMove(connID, roomID string, cell int) error
	ExitRoom(connID, roomID string) error
	Disconnect(connID string)

	Rooms() []*entity.Room
}

type Server struct {
	logger      *slog.Logger
	coordinator coordinator
	hub         *Hub

	upgrader websocket.Upgrader
	handlers map[string]func(connID string, msg *Message) error
}

func New(logger *slog.Logger, coordinator coordinator, hub *Hub) *Server {
	server := &Server{
		logger:      logger.With("component", "gateway"),
		coordinator: coordinator,
		hub:         hub,

		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(_ *http.Request) bool { return true },
		},
		handlers: make(map[string]func(string, *Message) error),
	}

	server.registerHandlers()

	return server
}

// Start - serves the WebSocket endpoint and the HTTP surface on one port
// until the context is canceled.
func (that *Server) Start(ctx context.Context, port string) error {
	router := chi.NewRouter()
	router.Get("/ws", that.serveWS)
	router.Get("/healthz", that.handleHealthz)
	router.Get("/rooms", that.handleRooms)
	router.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:        ":" + port,
		Handler:     router,
		ReadTimeout: 10 * time.Second,
		IdleTimeout: 30 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("failed to start server: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to shut down server: %w", err)
		}

		return nil
	}
}

// serveWS - upgrades the connection and runs its read loop. Each connection
// gets a fresh id; the coordinator is told about teardown exactly once.
func (that *Server) serveWS(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "serveWS")

	conn, err := that.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error("failed to upgrade connection", "error", err)
		return
	}

	client := &Client{
		id:     uuid.NewString(),
		conn:   conn,
		send:   make(chan []byte, sendBufferSize),
		logger: that.logger,
	}

	that.hub.Register(client)
	go client.writePump()

	log.Info("connection established", "connID", client.id)

	that.readLoop(client)

	that.hub.Unregister(client.id)
	that.coordinator.Disconnect(client.id)

	log.Info("connection torn down", "connID", client.id)
}

// readLoop - decodes inbound messages and dispatches them to the action
// handlers. Action failures are reported to the sender as an errorMessage;
// only transport errors end the loop.
func (that *Server) readLoop(client *Client) {
	log := that.logger.With("method", "readLoop")

	client.conn.SetReadLimit(maxMessageSize)
	_ = client.conn.SetReadDeadline(time.Now().Add(pongWait))
	client.conn.SetPongHandler(func(string) error {
		return client.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, raw, err := client.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Error("read failed", "connID", client.id, "error", err)
			}
			return
		}

		var msg Message
		if err = json.Unmarshal(raw, &msg); err != nil {
			log.Warn("failed to unmarshal message", "connID", client.id, "error", err)
			continue
		}

		handler, ok := that.handlers[msg.Action]
		if !ok {
			log.Warn("unknown action", "connID", client.id, "action", msg.Action)
			that.hub.ToConn(client.id, actionErrorMessage, renderError(errUnknownAction))
			continue
		}

		if err = handler(client.id, &msg); err != nil {
			log.Info("action rejected", "connID", client.id, "action", msg.Action, "error", err)
			that.hub.ToConn(client.id, actionErrorMessage, renderError(err))
		}
	}
}

func (that *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// handleRooms - JSON snapshot of the room list, same shape as the rooms
// broadcast.
func (that *Server) handleRooms(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(that.coordinator.Rooms()); err != nil {
		that.logger.Error("failed to encode rooms", "error", err)
	}
}
