package websocket

import "encoding/json"

// Message is the wire envelope in both directions: a named action and a
// JSON payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type loginPayload struct {
	Name string `json:"name"`
}

type createRoomPayload struct {
	Name string `json:"name"`
}

type joinRoomPayload struct {
	RoomID string `json:"roomId"`
}

type makeMovePayload struct {
	RoomID string `json:"roomId"`
	Index  int    `json:"index"`
}

type exitRoomPayload struct {
	RoomID string `json:"roomId"`
}
