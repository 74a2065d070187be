// Package domain contains entities without logic beyond input normalization.
package domain

import "strings"

const (
	MaxNameLen  = 24
	DefaultName = "Anonymous"
)

type UserID string

// User is the public face of a connection inside a room.
type User struct {
	ID   UserID `json:"id"`
	Name string `json:"name"`
}

// SanitizeName trims the raw name, falls back to the current name (or
// DefaultName) when nothing is left, and cuts the result to MaxNameLen runes.
func SanitizeName(raw, current string) string {
	name := strings.TrimSpace(raw)
	if name == "" {
		name = current
	}
	if name == "" {
		name = DefaultName
	}
	return truncate(name, MaxNameLen)
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}
