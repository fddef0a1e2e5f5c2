package tictactoe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/rocketscienceinc/gameroom-backend/internal/apperror"
	"github.com/rocketscienceinc/gameroom-backend/internal/entity"
)

func TestNewGame(t *testing.T) {
	t.Run("Starts with an empty board and the given player to move", func(t *testing.T) {
		// Given: a first player
		// When: creating a game
		game := NewGame("conn-a")

		// Then: all nine cells are empty and conn-a holds the turn
		for _, cell := range game.Board {
			assert.Equal(t, entity.EmptyCell, cell)
		}
		assert.Equal(t, "conn-a", game.CurrentPlayer)
	})
}

func TestApplyMove(t *testing.T) {
	t.Run("Writes the mark and passes the turn", func(t *testing.T) {
		// Given: a fresh game with conn-a to move
		game := NewGame("conn-a")

		// When: conn-a plays the center
		err := ApplyMove(game, "conn-a", "conn-b", entity.MarkX, 4)

		// Then: the cell holds X and conn-b is to move
		require.NoError(t, err)
		assert.Equal(t, entity.MarkX, game.Board[4])
		assert.Equal(t, "conn-b", game.CurrentPlayer)
	})

	t.Run("Rejects a move out of turn", func(t *testing.T) {
		// Given: a fresh game with conn-a to move
		game := NewGame("conn-a")

		// When: conn-b tries to move
		err := ApplyMove(game, "conn-b", "conn-a", entity.MarkO, 0)

		// Then: it fails and the board is untouched
		assert.ErrorIs(t, err, apperror.ErrNotYourTurn)
		assert.Equal(t, entity.EmptyCell, game.Board[0])
		assert.Equal(t, "conn-a", game.CurrentPlayer)
	})

	t.Run("Rejects an occupied cell", func(t *testing.T) {
		// Given: a game where cell 4 is taken
		game := NewGame("conn-a")
		require.NoError(t, ApplyMove(game, "conn-a", "conn-b", entity.MarkX, 4))

		// When: conn-b plays the same cell
		err := ApplyMove(game, "conn-b", "conn-a", entity.MarkO, 4)

		// Then: it fails and the cell keeps its original mark
		assert.ErrorIs(t, err, apperror.ErrCellOccupied)
		assert.Equal(t, entity.MarkX, game.Board[4])
		assert.Equal(t, "conn-b", game.CurrentPlayer)
	})

	t.Run("Rejects an out of range index", func(t *testing.T) {
		// Given: a fresh game
		game := NewGame("conn-a")

		// When: playing outside the board
		errHigh := ApplyMove(game, "conn-a", "conn-b", entity.MarkX, 9)
		errLow := ApplyMove(game, "conn-a", "conn-b", entity.MarkX, -1)

		// Then: both fail and the turn does not move
		assert.ErrorIs(t, errHigh, apperror.ErrCellOutOfRange)
		assert.ErrorIs(t, errLow, apperror.ErrCellOutOfRange)
		assert.Equal(t, "conn-a", game.CurrentPlayer)
	})
}

func TestCheckTerminal(t *testing.T) {
	t.Run("Detects a row win", func(t *testing.T) {
		// Given: X holds the top row
		board := [9]string{
			entity.MarkX, entity.MarkX, entity.MarkX,
			entity.MarkO, entity.MarkO, entity.EmptyCell,
			entity.EmptyCell, entity.EmptyCell, entity.EmptyCell,
		}

		// When: classifying for X
		verdict := CheckTerminal(board, entity.MarkX)

		// Then: it is a win
		assert.Equal(t, VerdictWin, verdict)
	})

	t.Run("Detects a column win", func(t *testing.T) {
		// Given: O holds the left column
		board := [9]string{
			entity.MarkO, entity.MarkX, entity.MarkX,
			entity.MarkO, entity.MarkX, entity.EmptyCell,
			entity.MarkO, entity.EmptyCell, entity.EmptyCell,
		}

		verdict := CheckTerminal(board, entity.MarkO)

		assert.Equal(t, VerdictWin, verdict)
	})

	t.Run("Detects a diagonal win", func(t *testing.T) {
		// Given: X holds the main diagonal
		board := [9]string{
			entity.MarkX, entity.MarkO, entity.EmptyCell,
			entity.MarkO, entity.MarkX, entity.EmptyCell,
			entity.EmptyCell, entity.EmptyCell, entity.MarkX,
		}

		verdict := CheckTerminal(board, entity.MarkX)

		assert.Equal(t, VerdictWin, verdict)
	})

	t.Run("Only the mover's mark is checked", func(t *testing.T) {
		// Given: O holds a winning row
		board := [9]string{
			entity.MarkO, entity.MarkO, entity.MarkO,
			entity.MarkX, entity.MarkX, entity.EmptyCell,
			entity.EmptyCell, entity.EmptyCell, entity.EmptyCell,
		}

		// When: classifying for X
		verdict := CheckTerminal(board, entity.MarkX)

		// Then: X did not win; the board is not full, so the game is ongoing
		assert.Equal(t, VerdictOngoing, verdict)
	})

	t.Run("Full board with no win is a draw", func(t *testing.T) {
		// Given: a drawn board
		board := [9]string{
			entity.MarkX, entity.MarkO, entity.MarkX,
			entity.MarkO, entity.MarkX, entity.MarkO,
			entity.MarkO, entity.MarkX, entity.MarkO,
		}

		assert.Equal(t, VerdictDraw, CheckTerminal(board, entity.MarkX))
		assert.Equal(t, VerdictDraw, CheckTerminal(board, entity.MarkO))
	})

	t.Run("Empty board is ongoing", func(t *testing.T) {
		board := [9]string{}

		assert.Equal(t, VerdictOngoing, CheckTerminal(board, entity.MarkX))
	})
}

// Relabeling the marks must not change the verdict: a win for X on a board
// is a win for O on the board with every mark swapped.
func TestCheckTerminal_MarkSymmetry(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		var board, swapped [9]string
		for i := range board {
			board[i] = rapid.SampledFrom([]string{entity.EmptyCell, entity.MarkX, entity.MarkO}).Draw(t, "cell")

			switch board[i] {
			case entity.MarkX:
				swapped[i] = entity.MarkO
			case entity.MarkO:
				swapped[i] = entity.MarkX
			default:
				swapped[i] = entity.EmptyCell
			}
		}

		require.Equal(t, CheckTerminal(board, entity.MarkX), CheckTerminal(swapped, entity.MarkO))
		require.Equal(t, CheckTerminal(board, entity.MarkO), CheckTerminal(swapped, entity.MarkX))
	})
}

// For any sequence of legal moves each cell is written at most once and the
// turn alternates strictly between the two players.
func TestApplyMove_Properties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		players := [2]string{"conn-a", "conn-b"}
		game := NewGame(players[0])

		moves := rapid.SliceOfN(rapid.IntRange(0, 8), 0, 9).Draw(t, "moves")

		mover := 0
		writes := 0
		for _, cell := range moves {
			before := game.Board[cell]

			err := ApplyMove(game, players[mover], players[1-mover], entity.MarkForIndex(mover), cell)
			if err != nil {
				// only an occupied cell can fail here, and it must stay intact
				require.ErrorIs(t, err, apperror.ErrCellOccupied)
				require.Equal(t, before, game.Board[cell])
				continue
			}

			// a successful move writes an empty cell and flips the turn
			require.Equal(t, entity.EmptyCell, before)
			require.Equal(t, players[1-mover], game.CurrentPlayer)

			writes++
			mover = 1 - mover
		}

		marks := 0
		for _, cell := range game.Board {
			if cell != entity.EmptyCell {
				marks++
			}
		}
		require.Equal(t, writes, marks)
		require.LessOrEqual(t, marks, 9)
	})
}
