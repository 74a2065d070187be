package domain

import "strings"

const MaxChatLen = 2000

type MessageID string

// ChatMessage is transient: built, broadcast, never stored.
type ChatMessage struct {
	ID     MessageID
	Room   RoomCode
	From   User
	Text   string
	SentAt int64 // unix milliseconds
}

// SanitizeText trims chat text and cuts it to MaxChatLen runes.
// An empty result means the message must be dropped.
func SanitizeText(raw string) string {
	return truncate(strings.TrimSpace(raw), MaxChatLen)
}
