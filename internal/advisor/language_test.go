// AngelaMos | 2026
// language_test.go

package advisor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveLanguageExplicitSelectionWins(t *testing.T) {
	assert.Equal(t, "kn", ResolveLanguage("kn", "en"))
	assert.Equal(t, "hi", ResolveLanguage("hi", "te"))
}

func TestResolveLanguageAutoUsesDetected(t *testing.T) {
	assert.Equal(t, "te", ResolveLanguage("none", "te"))
	assert.Equal(t, "kn", ResolveLanguage("au", "kn"))
	assert.Equal(t, "hi", ResolveLanguage("", "hi"))
}

func TestResolveLanguageUnrecognizedDetectionFallsBack(t *testing.T) {
	assert.Equal(t, "en", ResolveLanguage("none", "fr"))
	assert.Equal(t, "en", ResolveLanguage("none", ""))
}

func TestResolveLanguageUnrecognizedSelectionFallsBack(t *testing.T) {
	assert.Equal(t, "en", ResolveLanguage("de", "kn"))
}

func TestLanguageName(t *testing.T) {
	assert.Equal(t, "Kannada", LanguageName("kn"))
	assert.Equal(t, "Auto", LanguageName("none"))
	assert.Equal(t, "English", LanguageName("xx"))
}
