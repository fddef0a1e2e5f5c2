package apperror

import "errors"

var (
	ErrNotAuthenticated = errors.New("not logged in")
	ErrNameTaken        = errors.New("name is already taken")
	ErrEmptyName        = errors.New("name is empty")

	ErrRoomNameTaken = errors.New("room name already exists")
	ErrEmptyRoomName = errors.New("room name is empty")
	ErrRoomNotFound  = errors.New("room not found")
	ErrRoomFull      = errors.New("room is full")

	ErrGameIsNotStarted = errors.New("game is not started")
	ErrNotAPlayer       = errors.New("not a player in this room")
	ErrNotYourTurn      = errors.New("it's not your turn")
	ErrCellOccupied     = errors.New("cell is already occupied")
	ErrCellOutOfRange   = errors.New("cell index is out of range")
)
