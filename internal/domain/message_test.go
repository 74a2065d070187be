package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeTextTrims(t *testing.T) {
	assert.Equal(t, "hi", SanitizeText("  hi \n"))
}

func TestSanitizeTextEmptyMeansDrop(t *testing.T) {
	assert.Equal(t, "", SanitizeText("   "))
}

func TestSanitizeTextTruncates(t *testing.T) {
	long := strings.Repeat("a", MaxChatLen+500)
	got := SanitizeText(long)
	assert.Len(t, []rune(got), MaxChatLen)
}
