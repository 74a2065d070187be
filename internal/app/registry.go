package app

import (
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/Ghost-dot-coder/chat-app-websocket-server/internal/core"
	"github.com/Ghost-dot-coder/chat-app-websocket-server/internal/domain"
	"github.com/Ghost-dot-coder/chat-app-websocket-server/internal/ident"
)

type sessionEntry struct {
	User    *domain.User
	Room    domain.RoomCode // empty while unbound
	Session core.MemberSession
}

// Registry owns per-connection session state. Every operation is a
// defensive no-op when the session is absent.
type Registry struct {
	mu       sync.RWMutex
	idents   *ident.Generator
	sessions map[core.SessionID]*sessionEntry
}

func NewRegistry(idents *ident.Generator) *Registry {
	return &Registry{
		idents:   idents,
		sessions: make(map[core.SessionID]*sessionEntry),
	}
}

// Register assigns a fresh identity and the default display name.
func (r *Registry) Register(sid core.SessionID, conn core.SignalConnection) *domain.User {
	r.mu.Lock()
	defer r.mu.Unlock()
	user := &domain.User{ID: domain.UserID(r.idents.Token()), Name: domain.DefaultName}
	r.sessions[sid] = &sessionEntry{User: user, Session: core.NewMemberSession(user, conn)}
	log.Info().Str("module", "app.registry").Str("sid", string(sid)).Str("id", string(user.ID)).Msg("registered session")
	return user
}

func (r *Registry) Session(sid core.SessionID) (core.MemberSession, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if e, ok := r.sessions[sid]; ok {
		return e.Session, true
	}
	return nil, false
}

func (r *Registry) UserOf(sid core.SessionID) (domain.User, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if e, ok := r.sessions[sid]; ok {
		return *e.User, true
	}
	return domain.User{}, false
}

// SetName applies the display-name rules to the session's profile. The
// profile pointer is shared with room snapshots, so renames show up in
// the next presence broadcast.
func (r *Registry) SetName(sid core.SessionID, raw string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.sessions[sid]
	if !ok {
		return
	}
	e.User.Name = domain.SanitizeName(raw, e.User.Name)
	log.Info().Str("module", "app.registry").Str("sid", string(sid)).Str("name", e.User.Name).Msg("updated name")
}

func (r *Registry) RoomOf(sid core.SessionID) (domain.RoomCode, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.sessions[sid]
	if !ok || e.Room == "" {
		return "", false
	}
	return e.Room, true
}

func (r *Registry) UpdateRoom(sid core.SessionID, code domain.RoomCode) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.sessions[sid]
	if !ok {
		return false
	}
	e.Room = code
	log.Info().Str("module", "app.registry").Str("sid", string(sid)).Str("room", string(code)).Msg("updated room")
	return true
}

func (r *Registry) ClearRoom(sid core.SessionID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok := r.sessions[sid]; ok {
		e.Room = ""
	}
}

func (r *Registry) Unregister(sid core.SessionID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, sid)
	log.Info().Str("module", "app.registry").Str("sid", string(sid)).Msg("unregistered session")
}
