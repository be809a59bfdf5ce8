// AngelaMos | 2026
// date_test.go

package crop

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizePlantingDateDashes(t *testing.T) {
	got, err := NormalizePlantingDate("05-10-2025")
	require.NoError(t, err)
	assert.Equal(t, "2025-10-05", got)
}

func TestNormalizePlantingDateSlashes(t *testing.T) {
	got, err := NormalizePlantingDate("05/10/2025")
	require.NoError(t, err)
	assert.Equal(t, "2025-10-05", got)
}

func TestNormalizePlantingDateEmptyPassesThrough(t *testing.T) {
	got, err := NormalizePlantingDate("")
	require.NoError(t, err)
	assert.Equal(t, NotProvided, got)

	got, err = NormalizePlantingDate(NotProvided)
	require.NoError(t, err)
	assert.Equal(t, NotProvided, got)
}

func TestNormalizePlantingDateRejectsOtherFormats(t *testing.T) {
	for _, raw := range []string{
		"2025-10-05",
		"10-2025",
		"32-01-2025",
		"banana",
	} {
		_, err := NormalizePlantingDate(raw)
		assert.ErrorIs(t, err, ErrInvalidDate, "input %q", raw)
	}
}
