package entity

// MaxPlayers - a room is a two-seat session unit.
const MaxPlayers = 2

// Player is a room roster entry. ID references the player's connection; the
// gateway owns the connection itself.
type Player struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Room struct {
	ID      string    `json:"id"`
	Name    string    `json:"name"`
	Players []*Player `json:"players"`
	Game    *Game     `json:"gameState"`
}

func (that *Room) IsFull() bool {
	return len(that.Players) >= MaxPlayers
}

// PlayerIndex - returns the roster index of the given connection, or -1.
func (that *Room) PlayerIndex(connID string) int {
	for i, player := range that.Players {
		if player.ID == connID {
			return i
		}
	}
	return -1
}

// RemovePlayer - removes the given connection from the roster, preserving
// join order of the remaining players. Reports whether anything was removed.
func (that *Room) RemovePlayer(connID string) bool {
	idx := that.PlayerIndex(connID)
	if idx == -1 {
		return false
	}
	that.Players = append(that.Players[:idx], that.Players[idx+1:]...)
	return true
}

// MemberIDs - connection ids of everyone currently in the room.
func (that *Room) MemberIDs() []string {
	ids := make([]string, 0, len(that.Players))
	for _, player := range that.Players {
		ids = append(ids, player.ID)
	}
	return ids
}

// Clone - deep copy of the room, detached from coordinator-owned state.
func (that *Room) Clone() *Room {
	players := make([]*Player, 0, len(that.Players))
	for _, player := range that.Players {
		p := *player
		players = append(players, &p)
	}

	return &Room{
		ID:      that.ID,
		Name:    that.Name,
		Players: players,
		Game:    that.Game.Clone(),
	}
}
