package signal

import (
	"encoding/json"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/Ghost-dot-coder/chat-app-websocket-server/internal/core"
	"github.com/Ghost-dot-coder/chat-app-websocket-server/internal/domain"
	"github.com/Ghost-dot-coder/chat-app-websocket-server/internal/protocol"
)

func (ctl *Controller) handleCreateRoom(sid core.SessionID, c core.SignalConnection, data json.RawMessage) {
	var p protocol.CreateRoomRequest
	if err := protocol.DecodePayload(data, &p); err != nil {
		log.Warn().Err(err).Str("module", "signal").Str("sid", string(sid)).Msg("bad createRoom payload")
		ctl.sendError(c, "Invalid payload")
		return
	}

	snap, ok := ctl.Orch.CreateRoom(sid, p.Name)
	if !ok {
		return
	}
	log.Info().Str("module", "signal").Str("sid", string(sid)).Str("room", string(snap.Code)).Msg("room created")
	ctl.sendJSON(c, protocol.TypeRoomCreated, protocol.RoomStatePayload{
		RoomID:  snap.Code,
		Members: snap.Members,
	})
}

func (ctl *Controller) handleJoin(sid core.SessionID, c core.SignalConnection, data json.RawMessage) {
	var p protocol.JoinRequest
	if err := protocol.DecodePayload(data, &p); err != nil {
		log.Warn().Err(err).Str("module", "signal").Str("sid", string(sid)).Msg("bad join payload")
		ctl.sendError(c, "Invalid payload")
		return
	}

	code := strings.TrimSpace(p.RoomID)
	if code == "" {
		log.Warn().Str("module", "signal").Str("sid", string(sid)).Msg("join without room code")
		return
	}

	snap, ok := ctl.Orch.Join(sid, domain.RoomCode(code), p.Name)
	if !ok {
		return
	}
	log.Info().Str("module", "signal").Str("sid", string(sid)).Str("room", string(snap.Code)).Msg("joined room")
	ctl.sendJSON(c, protocol.TypeJoined, protocol.RoomStatePayload{
		RoomID:  snap.Code,
		Members: snap.Members,
	})
}
