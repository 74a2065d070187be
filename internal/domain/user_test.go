package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeNameTrims(t *testing.T) {
	assert.Equal(t, "Alice", SanitizeName("  Alice  ", ""))
}

func TestSanitizeNameFallsBackToCurrent(t *testing.T) {
	assert.Equal(t, "Bob", SanitizeName("   ", "Bob"))
}

func TestSanitizeNameDefaultsWhenNothingLeft(t *testing.T) {
	assert.Equal(t, DefaultName, SanitizeName("", ""))
	assert.Equal(t, DefaultName, SanitizeName("\t \n", ""))
}

func TestSanitizeNameTruncates(t *testing.T) {
	long := strings.Repeat("x", 50)
	got := SanitizeName(long, "")
	assert.Len(t, []rune(got), MaxNameLen)
}

func TestSanitizeNameTruncatesRunes(t *testing.T) {
	long := strings.Repeat("é", 30)
	got := SanitizeName(long, "")
	assert.Equal(t, strings.Repeat("é", MaxNameLen), got)
}
