package usecase

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/rocketscienceinc/gameroom-backend/internal/apperror"
	"github.com/rocketscienceinc/gameroom-backend/internal/entity"
	"github.com/rocketscienceinc/gameroom-backend/internal/metrics"
	"github.com/rocketscienceinc/gameroom-backend/internal/repository"
	"github.com/rocketscienceinc/gameroom-backend/internal/tictactoe"
)

// RoomCoordinator is the sole mutator of the user registry, the room store
// and every game state. A single mutex serializes client actions to
// completion, so no two actions interleave their reads and writes; the only
// work done under the lock is in-memory mutation and handing snapshots to
// the gateway's outbound queues.
type RoomCoordinator struct {
	logger *slog.Logger

	mu    sync.Mutex
	users repository.UserRegistry
	rooms repository.RoomStore

	broadcaster broadcaster
}

func NewRoomCoordinator(logger *slog.Logger, users repository.UserRegistry, rooms repository.RoomStore, broadcaster broadcaster) *RoomCoordinator {
	return &RoomCoordinator{
		logger: logger.With("component", "coordinator"),

		users: users,
		rooms: rooms,

		broadcaster: broadcaster,
	}
}

// Login - registers a display name for the connection. On success the
// connection gets a loginSuccess and everyone gets the room list.
func (that *RoomCoordinator) Login(connID, name string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if strings.TrimSpace(name) == "" {
		return apperror.ErrEmptyName
	}

	if err := that.users.Login(connID, name); err != nil {
		return fmt.Errorf("failed to register name: %w", err)
	}

	that.logger.Info("user logged in", "connID", connID, "name", name)

	that.broadcaster.ToConn(connID, ActionLoginSuccess, name)
	that.broadcastRooms()

	return nil
}

// CreateRoom - creates an empty room on behalf of a logged-in connection.
func (that *RoomCoordinator) CreateRoom(connID, name string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if _, ok := that.users.NameOf(connID); !ok {
		return apperror.ErrNotAuthenticated
	}

	if strings.TrimSpace(name) == "" {
		return apperror.ErrEmptyRoomName
	}

	room, err := that.rooms.Create(name)
	if err != nil {
		return fmt.Errorf("failed to create room: %w", err)
	}

	that.logger.Info("room created", "roomID", room.ID, "name", room.Name)
	metrics.ActiveRooms.Inc()

	that.broadcastRooms()

	return nil
}

// JoinRoom - seats the connection in the room. The second join starts the
// game with the first-seated player to move.
func (that *RoomCoordinator) JoinRoom(connID, roomID string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	room, ok := that.rooms.FindByID(roomID)
	if !ok {
		return fmt.Errorf("%w: %s", apperror.ErrRoomNotFound, roomID)
	}

	if room.IsFull() {
		return fmt.Errorf("%w: %s", apperror.ErrRoomFull, room.Name)
	}

	name, _ := that.users.NameOf(connID)
	room.Players = append(room.Players, &entity.Player{ID: connID, Name: name})

	if room.IsFull() {
		room.Game = tictactoe.NewGame(room.Players[0].ID)

		that.logger.Info("game started", "roomID", room.ID)

		members := room.MemberIDs()
		that.broadcaster.ToConns(members, ActionGameState, room.Game.Clone())
		that.broadcaster.ToConns(members, ActionUserJoin, name)
	}

	that.broadcastRooms()

	return nil
}

// MakeMove - validates and applies one move as an atomic unit, then pushes
// the new state to the room and, on a terminal verdict, the outcome.
func (that *RoomCoordinator) MakeMove(connID, roomID string, cell int) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	room, ok := that.rooms.FindByID(roomID)
	if !ok {
		return fmt.Errorf("%w: %s", apperror.ErrRoomNotFound, roomID)
	}

	if room.Game == nil {
		return apperror.ErrGameIsNotStarted
	}

	idx := room.PlayerIndex(connID)
	if idx == -1 {
		return apperror.ErrNotAPlayer
	}

	// checked here as well as in the engine so the caller sees a turn error
	// rather than a generic invalid move
	if room.Game.CurrentPlayer != connID {
		return apperror.ErrNotYourTurn
	}

	mark := entity.MarkForIndex(idx)
	next := room.Players[1-idx].ID

	if err := tictactoe.ApplyMove(room.Game, connID, next, mark, cell); err != nil {
		return fmt.Errorf("failed to apply move: %w", err)
	}

	metrics.MovesTotal.Inc()

	members := room.MemberIDs()
	that.broadcaster.ToConns(members, ActionGameState, room.Game.Clone())

	switch tictactoe.CheckTerminal(room.Game.Board, mark) {
	case tictactoe.VerdictWin:
		that.logger.Info("game won", "roomID", room.ID, "winner", connID)
		metrics.GamesFinishedTotal.WithLabelValues(tictactoe.VerdictWin).Inc()

		that.broadcaster.ToConns(members, ActionGameOver, GameOverEvent{Type: GameOverWin, Winner: connID})
		room.Game = nil
	case tictactoe.VerdictDraw:
		that.logger.Info("game drawn", "roomID", room.ID)
		metrics.GamesFinishedTotal.WithLabelValues(tictactoe.VerdictDraw).Inc()

		that.broadcaster.ToConns(members, ActionGameOver, GameOverEvent{Type: GameOverDraw})
		room.Game = nil
	}

	that.broadcastRooms()

	return nil
}

// ExitRoom - removes the connection from the room and clears any game in
// progress for the remaining member. Unknown rooms are a silent no-op.
func (that *RoomCoordinator) ExitRoom(connID, roomID string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	room, ok := that.rooms.FindByID(roomID)
	if !ok {
		return nil
	}

	if that.leaveRoom(room, connID) {
		that.broadcastRooms()
	}

	return nil
}

// Disconnect - runs exit semantics for every room the connection is seated
// in, then drops its identity. Exit and disconnect share one leave path so
// remaining players are always notified and never left mid-game.
func (that *RoomCoordinator) Disconnect(connID string) {
	that.mu.Lock()
	defer that.mu.Unlock()

	for _, room := range that.rooms.List() {
		that.leaveRoom(room, connID)
	}

	that.users.Logout(connID)

	that.logger.Info("connection closed", "connID", connID)

	that.broadcastRooms()
}

// Rooms - deep snapshot of the room list for read-only surfaces.
func (that *RoomCoordinator) Rooms() []*entity.Room {
	that.mu.Lock()
	defer that.mu.Unlock()

	return roomsSnapshot(that.rooms.List())
}

// leaveRoom - shared removal path for exit and disconnect. The display name
// is resolved before any state is touched, because the identity may be gone
// by the time remaining members are notified. Reports whether the
// connection was actually seated in the room. Caller holds the lock.
func (that *RoomCoordinator) leaveRoom(room *entity.Room, connID string) bool {
	name, _ := that.users.NameOf(connID)

	if !room.RemovePlayer(connID) {
		return false
	}

	that.logger.Info("player left room", "roomID", room.ID, "name", name)

	remaining := room.MemberIDs()
	that.broadcaster.ToConns(remaining, ActionUserLeave, name)

	// an empty room is retained, only its game is cleared; any exit aborts
	// a game in progress
	room.Game = nil
	if len(remaining) > 0 {
		that.broadcaster.ToConns(remaining, ActionGameState, nil)
	}

	return true
}

// broadcastRooms - full room-list snapshot to every connection. Caller
// holds the lock.
func (that *RoomCoordinator) broadcastRooms() {
	that.broadcaster.ToAll(ActionRooms, roomsSnapshot(that.rooms.List()))
}
