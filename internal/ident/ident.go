// Package ident produces the short random tokens used for session
// identities, room codes and message IDs.
package ident

import (
	"fmt"

	"github.com/jaevor/go-nanoid"
)

const roomAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

type Generator struct {
	roomCode func() string
	token    func() string
}

func New(roomCodeLen, tokenLen int) (*Generator, error) {
	roomCode, err := nanoid.CustomASCII(roomAlphabet, roomCodeLen)
	if err != nil {
		return nil, fmt.Errorf("room code generator: %w", err)
	}
	token, err := nanoid.Standard(tokenLen)
	if err != nil {
		return nil, fmt.Errorf("token generator: %w", err)
	}
	return &Generator{roomCode: roomCode, token: token}, nil
}

// RoomCode returns a fresh uppercase-alphanumeric room code. Collisions
// are not checked; the identifier space makes them astronomically unlikely.
func (g *Generator) RoomCode() string { return g.roomCode() }

// Token returns a fresh identity or message ID.
func (g *Generator) Token() string { return g.token() }
