// AngelaMos | 2026
// language.go

// Package advisor owns the AI-facing domain logic: prompt construction,
// response-language policy, and parsing of structured model output.
package advisor

// Languages maps the selectable language codes to their display names.
// "none" renders as Auto and defers to language detection.
var Languages = map[string]string{
	"none": "Auto",
	"en":   "English",
	"kn":   "Kannada",
	"hi":   "Hindi",
	"sp":   "Spanish",
	"te":   "Telugu",
}

// IsAuto reports whether the code means "let detection decide". The
// disease form historically sent "au" for Auto, so both spellings count.
func IsAuto(code string) bool {
	return code == "" || code == "none" || code == "au"
}

// ResolveLanguage applies the two-tier policy: an explicit, recognized
// selection wins; Auto falls back to the detected language when that is
// recognized, and to English otherwise.
func ResolveLanguage(selected, detected string) string {
	if IsAuto(selected) {
		if _, ok := Languages[detected]; ok {
			return detected
		}
		return "en"
	}

	if _, ok := Languages[selected]; ok {
		return selected
	}
	return "en"
}

// LanguageName returns the display name for a code, defaulting to English.
func LanguageName(code string) string {
	if name, ok := Languages[code]; ok {
		return name
	}
	return "English"
}
