package repository

import (
	"fmt"
	"sync"
	"time"

	"github.com/rocketscienceinc/gameroom-backend/internal/apperror"
	"github.com/rocketscienceinc/gameroom-backend/internal/entity"
)

type RoomStore interface {
	Create(name string) (*entity.Room, error)
	FindByID(id string) (*entity.Room, bool)
	FindByName(name string) (*entity.Room, bool)
	List() []*entity.Room
}

// roomStore keeps every room in memory, in creation order. Rooms are never
// removed, matching the session model: the store grows with the number of
// rooms ever created, which is acceptable at the target scale.
type roomStore struct {
	mu      sync.RWMutex
	rooms   []*entity.Room
	byID    map[string]*entity.Room
	byName  map[string]*entity.Room
	counter uint64
}

func NewRoomStore() RoomStore {
	return &roomStore{
		byID:   make(map[string]*entity.Room),
		byName: make(map[string]*entity.Room),
	}
}

func (that *roomStore) Create(name string) (*entity.Room, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if _, ok := that.byName[name]; ok {
		return nil, fmt.Errorf("%w: %s", apperror.ErrRoomNameTaken, name)
	}

	that.counter++
	room := &entity.Room{
		// timestamp plus counter keeps ids unique under rapid creation
		ID:      fmt.Sprintf("room-%d-%d", time.Now().UnixMilli(), that.counter),
		Name:    name,
		Players: []*entity.Player{},
	}

	that.rooms = append(that.rooms, room)
	that.byID[room.ID] = room
	that.byName[room.Name] = room

	return room, nil
}

func (that *roomStore) FindByID(id string) (*entity.Room, bool) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	room, ok := that.byID[id]
	return room, ok
}

func (that *roomStore) FindByName(name string) (*entity.Room, bool) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	room, ok := that.byName[name]
	return room, ok
}

// List - snapshot of all rooms in insertion order.
func (that *roomStore) List() []*entity.Room {
	that.mu.RLock()
	defer that.mu.RUnlock()

	rooms := make([]*entity.Room, len(that.rooms))
	copy(rooms, that.rooms)
	return rooms
}
