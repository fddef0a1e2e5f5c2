package repository

import (
	"fmt"
	"sync"

	"github.com/rocketscienceinc/gameroom-backend/internal/apperror"
)

type UserRegistry interface {
	Login(connID, name string) error
	Logout(connID string)
	NameOf(connID string) (string, bool)
}

// userRegistry maps active connections to display names. A name belongs to
// at most one registered connection at a time; the comparison is
// case-sensitive exact match.
type userRegistry struct {
	mu      sync.RWMutex
	names   map[string]string // connID -> name
	connIDs map[string]string // name -> connID
}

func NewUserRegistry() UserRegistry {
	return &userRegistry{
		names:   make(map[string]string),
		connIDs: make(map[string]string),
	}
}

func (that *userRegistry) Login(connID, name string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if _, ok := that.connIDs[name]; ok {
		return fmt.Errorf("%w: %s", apperror.ErrNameTaken, name)
	}

	that.names[connID] = name
	that.connIDs[name] = connID

	return nil
}

// Logout - drops the association; idempotent for unknown connections.
func (that *userRegistry) Logout(connID string) {
	that.mu.Lock()
	defer that.mu.Unlock()

	name, ok := that.names[connID]
	if !ok {
		return
	}

	delete(that.names, connID)
	delete(that.connIDs, name)
}

func (that *userRegistry) NameOf(connID string) (string, bool) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	name, ok := that.names[connID]
	return name, ok
}
