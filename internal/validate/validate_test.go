package validate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manav03panchal/murmur/internal/errors"
)

// =============================================================================
// Confession Tests
// =============================================================================

func TestConfession(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		wantErr  error
	}{
		{"simple", "i lied", "i lied", nil},
		{"trimmed", "   i lied \n", "i lied", nil},
		{"max_length", strings.Repeat("a", MaxConfessionLength), strings.Repeat("a", MaxConfessionLength), nil},
		{"max_length_multibyte", strings.Repeat("ü", MaxConfessionLength), strings.Repeat("ü", MaxConfessionLength), nil},
		{"empty", "", "", errors.ErrEmptyConfession},
		{"whitespace", "   \t\n ", "", errors.ErrEmptyConfession},
		{"only_control", "\x00\x07", "", errors.ErrEmptyConfession},
		{"too_long", strings.Repeat("a", MaxConfessionLength+1), "", errors.ErrConfessionTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Confession(tt.input)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr))
				assert.True(t, errors.IsUserError(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestIsBlank(t *testing.T) {
	assert.True(t, IsBlank(""))
	assert.True(t, IsBlank("  \t "))
	assert.False(t, IsBlank(" x "))
}

func TestLength(t *testing.T) {
	assert.Equal(t, 0, Length(""))
	assert.Equal(t, 5, Length("héllo"))
}

// =============================================================================
// Sanitize Tests
// =============================================================================

func TestSanitizeConfession(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain", "hello", "hello"},
		{"null_bytes", "hel\x00lo", "hello"},
		{"crlf", "a\r\nb", "a\nb"},
		{"cr", "a\rb", "a\nb"},
		{"tabs_kept", "a\tb", "a\tb"},
		{"bell_dropped", "a\x07b", "ab"},
		{"surrounding_space", "  a b  ", "a b"},
		{"unicode", "  ☕ naïve ", "☕ naïve"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SanitizeConfession(tt.input))
		})
	}
}

func TestNormalizeOnlyTrims(t *testing.T) {
	assert.Equal(t, "a\x07b", Normalize("  a\x07b\n"))
	assert.Equal(t, "line1\r\nline2", Normalize("line1\r\nline2"))
	assert.Equal(t, "\x00", Normalize("\x00"))
}

func TestConfessionSanitizes(t *testing.T) {
	got, err := Confession(" a\r\nb\x07 ")
	require.NoError(t, err)
	assert.Equal(t, "a\nb", got)

	_, err = Confession("\x00")
	assert.Error(t, err)
}
