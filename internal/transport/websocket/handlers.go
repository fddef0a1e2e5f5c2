package websocket

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/gameroom-backend/internal/apperror"
)

const (
	actionLogin      = "login"
	actionCreateRoom = "createRoom"
	actionJoinRoom   = "joinRoom"
	actionMakeMove   = "makeMove"
	actionExitRoom   = "exitRoom"

	actionErrorMessage = "errorMessage"
)

var errUnknownAction = errors.New("unknown action")

func (that *Server) registerHandlers() {
	that.handlers[actionLogin] = that.handleLogin
	that.handlers[actionCreateRoom] = that.handleCreateRoom
	that.handlers[actionJoinRoom] = that.handleJoinRoom
	that.handlers[actionMakeMove] = that.handleMakeMove
	that.handlers[actionExitRoom] = that.handleExitRoom
}

func (that *Server) handleLogin(connID string, msg *Message) error {
	var payload loginPayload
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		return fmt.Errorf("failed to unmarshal login payload: %w", err)
	}

	return that.coordinator.Login(connID, payload.Name)
}

func (that *Server) handleCreateRoom(connID string, msg *Message) error {
	var payload createRoomPayload
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		return fmt.Errorf("failed to unmarshal createRoom payload: %w", err)
	}

	return that.coordinator.CreateRoom(connID, payload.Name)
}

func (that *Server) handleJoinRoom(connID string, msg *Message) error {
	var payload joinRoomPayload
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		return fmt.Errorf("failed to unmarshal joinRoom payload: %w", err)
	}

	return that.coordinator.JoinRoom(connID, payload.RoomID)
}

func (that *Server) handleMakeMove(connID string, msg *Message) error {
	var payload makeMovePayload
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		return fmt.Errorf("failed to unmarshal makeMove payload: %w", err)
	}

	return that.coordinator.MakeMove(connID, payload.RoomID, payload.Index)
}

func (that *Server) handleExitRoom(connID string, msg *Message) error {
	var payload exitRoomPayload
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		return fmt.Errorf("failed to unmarshal exitRoom payload: %w", err)
	}

	return that.coordinator.ExitRoom(connID, payload.RoomID)
}

// renderError - maps a coordinator error to the text clients show the user.
// The taxonomy lives in apperror; the wording here is a rendering concern.
func renderError(err error) string {
	switch {
	case errors.Is(err, apperror.ErrNameTaken):
		return "User already logged in"
	case errors.Is(err, apperror.ErrEmptyName):
		return "Name must not be empty"
	case errors.Is(err, apperror.ErrNotAuthenticated):
		return "You must be logged in to create a room"
	case errors.Is(err, apperror.ErrRoomNameTaken):
		return "Rooms name already exist"
	case errors.Is(err, apperror.ErrEmptyRoomName):
		return "Room name must not be empty"
	case errors.Is(err, apperror.ErrRoomNotFound):
		return "Room does not exist"
	case errors.Is(err, apperror.ErrRoomFull):
		return "Room is full"
	case errors.Is(err, apperror.ErrGameIsNotStarted):
		return "Game not started yet"
	case errors.Is(err, apperror.ErrNotAPlayer):
		return "You are not a player in this room"
	case errors.Is(err, apperror.ErrNotYourTurn):
		return "It's not your turn"
	case errors.Is(err, apperror.ErrCellOccupied), errors.Is(err, apperror.ErrCellOutOfRange):
		return "Invalid move"
	default:
		return "Something went wrong"
	}
}
