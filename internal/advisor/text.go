// AngelaMos | 2026
// text.go

package advisor

import (
	"regexp"
	"strings"
)

var (
	markdownEmphasis = regexp.MustCompile(`\*\*|\*`)
	unsafeChars      = regexp.MustCompile(`[^a-zA-Z0-9\s\-]`)
)

// CleanText strips markdown emphasis from model output and converts
// newlines to <br> for HTML display.
func CleanText(raw string) string {
	cleaned := markdownEmphasis.ReplaceAllString(raw, "")
	cleaned = strings.TrimSpace(cleaned)
	return strings.ReplaceAll(cleaned, "\n", "<br>")
}

// Sanitize keeps only letters, digits, whitespace, and hyphens. Parsed
// model fields pass through this before persistence.
func Sanitize(s string) string {
	return unsafeChars.ReplaceAllString(s, "")
}

// FirstLine returns the text up to the first <br>, used to derive a
// search query from a cleaned diagnosis.
func FirstLine(cleaned string) string {
	if idx := strings.Index(cleaned, "<br>"); idx >= 0 {
		return cleaned[:idx]
	}
	return cleaned
}
