package app

import (
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Ghost-dot-coder/chat-app-websocket-server/internal/core"
	"github.com/Ghost-dot-coder/chat-app-websocket-server/internal/domain"
	"github.com/Ghost-dot-coder/chat-app-websocket-server/internal/ident"
	"github.com/Ghost-dot-coder/chat-app-websocket-server/internal/protocol"
)

// Orchestrator applies protocol operations to the registries and fans
// presence, chat and typing events out to room members. Every operation
// runs to completion under one mutex, so each leave/join/presence
// sequence is atomic with respect to other connections' views.
type Orchestrator struct {
	mu       sync.Mutex
	Registry *Registry
	Rooms    core.RoomManager
	Idents   *ident.Generator
}

func NewOrchestrator(reg *Registry, rooms core.RoomManager, idents *ident.Generator) *Orchestrator {
	return &Orchestrator{Registry: reg, Rooms: rooms, Idents: idents}
}

// RoomSnapshot describes a room right after a mutation.
type RoomSnapshot struct {
	Code    domain.RoomCode
	Members []core.MemberDTO
}

// Connect registers the session and returns its assigned identity.
func (o *Orchestrator) Connect(sid core.SessionID, conn core.SignalConnection) domain.User {
	o.mu.Lock()
	defer o.mu.Unlock()
	return *o.Registry.Register(sid, conn)
}

// CreateRoom binds the connection to a freshly coded room, leaving its
// current room first if it has one.
func (o *Orchestrator) CreateRoom(sid core.SessionID, rawName string) (RoomSnapshot, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	sess, ok := o.Registry.Session(sid)
	if !ok {
		return RoomSnapshot{}, false
	}
	o.Registry.SetName(sid, rawName)
	o.leaveCurrentRoom(sid)
	code := domain.RoomCode(o.Idents.RoomCode())
	return o.bind(sid, sess, code), true
}

// Join binds the connection to the requested room, creating it when it
// does not exist yet.
func (o *Orchestrator) Join(sid core.SessionID, code domain.RoomCode, rawName string) (RoomSnapshot, bool) {
	if code == "" {
		return RoomSnapshot{}, false
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	sess, ok := o.Registry.Session(sid)
	if !ok {
		return RoomSnapshot{}, false
	}
	o.Registry.SetName(sid, rawName)
	o.leaveCurrentRoom(sid)
	return o.bind(sid, sess, code), true
}

// Chat broadcasts a chat message to the sender's room, sender included.
// No-op while unbound or when the text is empty after trimming.
func (o *Orchestrator) Chat(sid core.SessionID, rawText string) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	code, ok := o.Registry.RoomOf(sid)
	if !ok {
		return false
	}
	text := domain.SanitizeText(rawText)
	if text == "" {
		return false
	}
	room, ok := o.Rooms.Get(code)
	if !ok {
		return false
	}
	user, _ := o.Registry.UserOf(sid)
	msg := domain.ChatMessage{
		ID:     domain.MessageID(o.Idents.Token()),
		Room:   code,
		From:   user,
		Text:   text,
		SentAt: time.Now().UnixMilli(),
	}
	frame, err := protocol.Encode(protocol.TypeChat, protocol.ChatPayload{
		ID:     msg.ID,
		RoomID: msg.Room,
		From:   core.MemberDTO{ID: msg.From.ID, Name: msg.From.Name},
		Text:   msg.Text,
		TS:     msg.SentAt,
	})
	if err != nil {
		log.Error().Err(err).Str("module", "app.orchestrator").Msg("encode chat")
		return false
	}
	room.Broadcast(frame, "")
	return true
}

// Typing relays a typing signal to the sender's room, sender excluded.
func (o *Orchestrator) Typing(sid core.SessionID, typing bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	code, ok := o.Registry.RoomOf(sid)
	if !ok {
		return
	}
	room, ok := o.Rooms.Get(code)
	if !ok {
		return
	}
	user, _ := o.Registry.UserOf(sid)
	frame, err := protocol.Encode(protocol.TypeTyping, protocol.TypingPayload{
		From:   core.MemberDTO{ID: user.ID, Name: user.Name},
		Typing: typing,
	})
	if err != nil {
		log.Error().Err(err).Str("module", "app.orchestrator").Msg("encode typing")
		return
	}
	room.Broadcast(frame, sid)
}

// Disconnect runs the implicit leave and removes the session.
func (o *Orchestrator) Disconnect(sid core.SessionID) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.leaveCurrentRoom(sid)
	o.Registry.Unregister(sid)
}

// RoomList is the read-only surface for the HTTP API.
func (o *Orchestrator) RoomList() []core.RoomInfo {
	return o.Rooms.List()
}

func (o *Orchestrator) bind(sid core.SessionID, sess core.MemberSession, code domain.RoomCode) RoomSnapshot {
	room := o.Rooms.GetOrCreate(code)
	room.AddMember(sid, sess)
	o.Registry.UpdateRoom(sid, code)
	snap := RoomSnapshot{Code: code, Members: room.MembersSnapshot()}
	o.announcePresence(code)
	return snap
}

// leaveCurrentRoom removes sid from its room, announces presence to the
// remaining members, then drops the room once empty. Presence goes out
// before the room is deleted so the others learn of the departure.
func (o *Orchestrator) leaveCurrentRoom(sid core.SessionID) {
	code, ok := o.Registry.RoomOf(sid)
	if !ok {
		return
	}
	o.Registry.ClearRoom(sid)
	room, ok := o.Rooms.Get(code)
	if !ok {
		return
	}
	room.RemoveMember(sid)
	o.announcePresence(code)
	if room.MemberCount() == 0 {
		o.Rooms.Remove(code)
		log.Info().Str("module", "app.orchestrator").Str("room", string(code)).Msg("removed empty room")
	}
}

// announcePresence fans the current member list out to the whole room.
func (o *Orchestrator) announcePresence(code domain.RoomCode) {
	room, ok := o.Rooms.Get(code)
	if !ok {
		return
	}
	frame, err := protocol.Encode(protocol.TypePresence, protocol.RoomStatePayload{
		RoomID:  code,
		Members: room.MembersSnapshot(),
	})
	if err != nil {
		log.Error().Err(err).Str("module", "app.orchestrator").Msg("encode presence")
		return
	}
	room.Broadcast(frame, "")
}
