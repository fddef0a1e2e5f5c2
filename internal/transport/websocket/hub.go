package websocket

import (
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/rocketscienceinc/gameroom-backend/internal/metrics"
)

// Hub tracks every connected client and fans outbound actions onto their
// queues. It implements the coordinator's broadcaster: sends never block,
// a client whose queue is full is forgotten and its socket closed.
type Hub struct {
	logger *slog.Logger

	mu      sync.RWMutex
	clients map[string]*Client
}

func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		logger:  logger.With("component", "hub"),
		clients: make(map[string]*Client),
	}
}

func (that *Hub) Register(client *Client) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.clients[client.id] = client
	metrics.ActiveConnections.Set(float64(len(that.clients)))
}

func (that *Hub) Unregister(connID string) {
	that.mu.Lock()
	defer that.mu.Unlock()

	client, ok := that.clients[connID]
	if !ok {
		return
	}

	delete(that.clients, connID)
	client.close()
	metrics.ActiveConnections.Set(float64(len(that.clients)))
}

func (that *Hub) ToConn(connID, action string, payload any) {
	raw, err := encode(action, payload)
	if err != nil {
		that.logger.Error("failed to encode message", "action", action, "error", err)
		return
	}

	that.mu.RLock()
	client, ok := that.clients[connID]
	that.mu.RUnlock()

	if ok {
		that.deliver(client, raw)
	}
}

func (that *Hub) ToConns(connIDs []string, action string, payload any) {
	raw, err := encode(action, payload)
	if err != nil {
		that.logger.Error("failed to encode message", "action", action, "error", err)
		return
	}

	that.mu.RLock()
	targets := make([]*Client, 0, len(connIDs))
	for _, id := range connIDs {
		if client, ok := that.clients[id]; ok {
			targets = append(targets, client)
		}
	}
	that.mu.RUnlock()

	for _, client := range targets {
		that.deliver(client, raw)
	}
}

func (that *Hub) ToAll(action string, payload any) {
	raw, err := encode(action, payload)
	if err != nil {
		that.logger.Error("failed to encode message", "action", action, "error", err)
		return
	}

	that.mu.RLock()
	targets := make([]*Client, 0, len(that.clients))
	for _, client := range that.clients {
		targets = append(targets, client)
	}
	that.mu.RUnlock()

	for _, client := range targets {
		that.deliver(client, raw)
	}
}

// deliver - enqueue with slow-consumer eviction.
func (that *Hub) deliver(client *Client, raw []byte) {
	if client.enqueue(raw) {
		return
	}

	that.logger.Warn("dropping slow client", "connID", client.id)
	that.Unregister(client.id)
}

func encode(action string, payload any) ([]byte, error) {
	rawPayload, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	return json.Marshal(Message{Action: action, Payload: rawPayload})
}
