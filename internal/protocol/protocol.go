// Package protocol defines the JSON envelopes exchanged with clients.
// Everything on the wire is `{"type": ..., "payload": ...}` in both
// directions.
package protocol

import (
	"encoding/json"

	"github.com/Ghost-dot-coder/chat-app-websocket-server/internal/core"
	"github.com/Ghost-dot-coder/chat-app-websocket-server/internal/domain"
)

type Envelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Inbound message types.
const (
	TypeCreateRoom = "createRoom"
	TypeJoin       = "join"
	TypeChat       = "chat"
	TypeTyping     = "typing"
)

// Outbound message types. Chat and typing reuse the inbound tags.
const (
	TypeWelcome     = "welcome"
	TypeRoomCreated = "roomCreated"
	TypeJoined      = "joined"
	TypePresence    = "presence"
	TypeError       = "error"
)

// Inbound payloads.
type CreateRoomRequest struct {
	Name string `json:"name"`
}

type JoinRequest struct {
	RoomID string `json:"roomId"`
	Name   string `json:"name"`
}

type ChatRequest struct {
	Text string `json:"text"`
}

type TypingRequest struct {
	Typing bool `json:"typing"`
}

// Outbound payloads.
type WelcomePayload struct {
	ID domain.UserID `json:"id"`
}

// RoomStatePayload backs roomCreated, joined and presence alike.
type RoomStatePayload struct {
	RoomID  domain.RoomCode  `json:"roomId"`
	Members []core.MemberDTO `json:"members"`
}

type ChatPayload struct {
	ID     domain.MessageID `json:"id"`
	RoomID domain.RoomCode  `json:"roomId"`
	From   core.MemberDTO   `json:"from"`
	Text   string           `json:"text"`
	TS     int64            `json:"ts"`
}

type TypingPayload struct {
	From   core.MemberDTO `json:"from"`
	Typing bool           `json:"typing"`
}

type ErrorPayload struct {
	Message string `json:"message"`
}

// Encode serializes one outbound envelope. Fan-out callers encode once
// and reuse the frame for every recipient.
func Encode(msgType string, payload any) (core.Frame, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return json.Marshal(Envelope{Type: msgType, Payload: body})
}

// DecodePayload unpacks an inbound payload. A missing payload decodes
// as the zero value so optional fields keep their defaults.
func DecodePayload(data json.RawMessage, v any) error {
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, v)
}
