package usecase

import "github.com/rocketscienceinc/gameroom-backend/internal/entity"

// Outbound action names understood by the clients.
const (
	ActionLoginSuccess = "loginSuccess"
	ActionRooms        = "rooms"
	ActionGameState    = "gameState"
	ActionGameOver     = "gameOver"
	ActionUserJoin     = "user-join"
	ActionUserLeave    = "user-leave"
)

const (
	GameOverWin  = "win"
	GameOverDraw = "draw"
)

// GameOverEvent announces a terminal verdict to a room. Winner holds the
// winning connection id and is empty for a draw.
type GameOverEvent struct {
	Type   string `json:"type"`
	Winner string `json:"winner,omitempty"`
}

// broadcaster is the coordinator's view of the session gateway: fire-and-
// forget delivery of one outbound action to one connection, a set of
// connections, or everyone. Payloads must be snapshots - the gateway
// marshals them outside the coordinator's lock.
type broadcaster interface {
	ToConn(connID, action string, payload any)
	ToConns(connIDs []string, action string, payload any)
	ToAll(action string, payload any)
}

// roomsSnapshot - deep copies of every room, safe to marshal concurrently.
func roomsSnapshot(rooms []*entity.Room) []*entity.Room {
	snapshot := make([]*entity.Room, 0, len(rooms))
	for _, room := range rooms {
		snapshot = append(snapshot, room.Clone())
	}
	return snapshot
}
