// AngelaMos | 2026
// text_test.go

package advisor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanTextStripsMarkdownAndBreaksLines(t *testing.T) {
	raw := "**Leaf Rust**\nCaused by *Puccinia* fungi.\nApply fungicide."

	got := CleanText(raw)

	assert.Equal(t,
		"Leaf Rust<br>Caused by Puccinia fungi.<br>Apply fungicide.",
		got,
	)
}

func TestSanitizeKeepsLettersDigitsSpacesHyphens(t *testing.T) {
	assert.Equal(t, "twice-weekly 2x", Sanitize("twice-weekly (2x)!"))
	assert.Equal(t, "", Sanitize("!@#$%"))
}

func TestFirstLine(t *testing.T) {
	assert.Equal(t, "Leaf Rust", FirstLine("Leaf Rust<br>Details follow"))
	assert.Equal(t, "No breaks here", FirstLine("No breaks here"))
}
