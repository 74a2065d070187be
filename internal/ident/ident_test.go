package ident

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoomCodeShape(t *testing.T) {
	g, err := New(6, 10)
	require.NoError(t, err)

	re := regexp.MustCompile(`^[A-Z0-9]{6}$`)
	for i := 0; i < 20; i++ {
		assert.Regexp(t, re, g.RoomCode())
	}
}

func TestTokenLength(t *testing.T) {
	g, err := New(6, 10)
	require.NoError(t, err)
	assert.Len(t, g.Token(), 10)
}

func TestTokensAreUnique(t *testing.T) {
	g, err := New(6, 10)
	require.NoError(t, err)

	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		tok := g.Token()
		assert.False(t, seen[tok], "duplicate token %s", tok)
		seen[tok] = true
	}
}

func TestInvalidLengthRejected(t *testing.T) {
	_, err := New(1, 10)
	assert.Error(t, err)
}
