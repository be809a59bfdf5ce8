// AngelaMos | 2026
// date.go

package crop

import (
	"errors"
	"strings"
	"time"
)

// NotProvided marks an omitted optional field in saved records and
// prompts.
const NotProvided = "Not provided"

var ErrInvalidDate = errors.New("invalid planting date format")

// NormalizePlantingDate accepts DD-MM-YYYY or DD/MM/YYYY and returns
// YYYY-MM-DD. An empty or omitted value passes through as NotProvided.
func NormalizePlantingDate(raw string) (string, error) {
	if raw == "" || raw == NotProvided {
		return NotProvided, nil
	}

	parsed, err := time.Parse("02-01-2006", strings.ReplaceAll(raw, "/", "-"))
	if err != nil {
		return "", ErrInvalidDate
	}

	return parsed.Format("2006-01-02"), nil
}
