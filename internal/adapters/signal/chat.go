package signal

import (
	"encoding/json"

	"github.com/rs/zerolog/log"

	"github.com/Ghost-dot-coder/chat-app-websocket-server/internal/core"
	"github.com/Ghost-dot-coder/chat-app-websocket-server/internal/protocol"
)

func (ctl *Controller) handleChat(sid core.SessionID, c core.SignalConnection, data json.RawMessage) {
	var p protocol.ChatRequest
	if err := protocol.DecodePayload(data, &p); err != nil {
		log.Warn().Err(err).Str("module", "signal").Str("sid", string(sid)).Msg("bad chat payload")
		ctl.sendError(c, "Invalid payload")
		return
	}
	ctl.Orch.Chat(sid, p.Text)
}

func (ctl *Controller) handleTyping(sid core.SessionID, c core.SignalConnection, data json.RawMessage) {
	var p protocol.TypingRequest
	if err := protocol.DecodePayload(data, &p); err != nil {
		log.Warn().Err(err).Str("module", "signal").Str("sid", string(sid)).Msg("bad typing payload")
		ctl.sendError(c, "Invalid payload")
		return
	}
	ctl.Orch.Typing(sid, p.Typing)
}
