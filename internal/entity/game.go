package entity

const (
	MarkX = "X"
	MarkO = "O"

	EmptyCell = ""
)

var WinCombos = [][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Game is the state of one in-progress match inside a room: the board and
// the connection whose turn it is. It carries no player roster - that lives
// on the Room.
type Game struct {
	Board         [9]string `json:"board"`
	CurrentPlayer string    `json:"currentPlayer"`
}

// MarkForIndex - returns the mark fixed by join order: players[0] plays X.
func MarkForIndex(idx int) string {
	if idx == 0 {
		return MarkX
	}
	return MarkO
}

// Clone - returns a value copy safe to hand to another goroutine.
func (that *Game) Clone() *Game {
	if that == nil {
		return nil
	}
	clone := *that
	return &clone
}

// IsFull - reports whether every cell holds a mark.
func (that *Game) IsFull() bool {
	for _, cell := range that.Board {
		if cell == EmptyCell {
			return false
		}
	}
	return true
}
