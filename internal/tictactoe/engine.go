package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/gameroom-backend/internal/apperror"
	"github.com/rocketscienceinc/gameroom-backend/internal/entity"
)

const (
	VerdictOngoing = "ongoing"
	VerdictWin     = "win"
	VerdictDraw    = "draw"
)

// NewGame - returns a fresh board with the given connection to move first.
func NewGame(firstPlayer string) *entity.Game {
	return &entity.Game{
		Board:         [9]string{},
		CurrentPlayer: firstPlayer,
	}
}

// ApplyMove - validates and applies a single move. playerID must hold the
// turn, cell must be a free index in [0,9). On success the mark is written
// and the turn passes to nextPlayerID.
func ApplyMove(state *entity.Game, playerID, nextPlayerID, mark string, cell int) error {
	if cell < 0 || cell >= len(state.Board) {
		return fmt.Errorf("%w: cell %d", apperror.ErrCellOutOfRange, cell)
	}

	if state.CurrentPlayer != playerID {
		return apperror.ErrNotYourTurn
	}

	if state.Board[cell] != entity.EmptyCell {
		return apperror.ErrCellOccupied
	}

	state.Board[cell] = mark
	state.CurrentPlayer = nextPlayerID

	return nil
}

// CheckTerminal - classifies the board after a move by the given mark.
// A single move can only produce a win for the mover, so only that mark's
// triples are checked.
func CheckTerminal(board [9]string, mark string) string {
	for _, combo := range entity.WinCombos {
		if board[combo[0]] == mark && board[combo[1]] == mark && board[combo[2]] == mark {
			return VerdictWin
		}
	}

	for _, cell := range board {
		if cell == entity.EmptyCell {
			return VerdictOngoing
		}
	}

	return VerdictDraw
}
