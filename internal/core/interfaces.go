package core

import "github.com/Ghost-dot-coder/chat-app-websocket-server/internal/domain"

// Frame is a serialized outbound envelope.
type Frame []byte

type SessionID string

// SignalConnection abstracts the transport endpoint of one connection.
// Owned by the adapter; the adapter must Close() it.
type SignalConnection interface {
	TrySend(Frame) error
	Ready() bool
	Close()
}

// MemberSession binds a user profile to its transport endpoint.
// This is what a room stores and fans out to.
type MemberSession interface {
	User() *domain.User
	Signal() SignalConnection
}

// PublishResult reports delivery stats to the orchestrator.
type PublishResult struct {
	SentTo  int
	Skipped int
}

// MemberDTO is a read-only view for payloads (no transport fields).
type MemberDTO struct {
	ID   domain.UserID `json:"id"`
	Name string        `json:"name"`
}

// RoomService is the core-facing API of a room.
// It owns the membership set but never touches transport resources.
type RoomService interface {
	Room() *domain.Room
	MemberCount() int
	MembersSnapshot() []MemberDTO

	AddMember(sid SessionID, ms MemberSession)
	RemoveMember(sid SessionID)
	Broadcast(data Frame, exclude SessionID) PublishResult
}

type RoomInfo struct {
	Code        domain.RoomCode `json:"roomId"`
	MemberCount int             `json:"memberCount"`
}

type RoomManager interface {
	GetOrCreate(code domain.RoomCode) RoomService
	Get(code domain.RoomCode) (RoomService, bool)
	Remove(code domain.RoomCode)
	List() []RoomInfo
}
