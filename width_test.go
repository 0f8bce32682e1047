package vtcore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRuneWidthAsciiAndWide(t *testing.T) {
	assert.Equal(t, 1, RuneWidth('a'))
	assert.Equal(t, 2, RuneWidth('中')) // CJK ideograph, double-width
}

func TestDisplayWidthSumsRunes(t *testing.T) {
	assert.Equal(t, 2, DisplayWidth("ab"))
	assert.Equal(t, 4, DisplayWidth("中文")) // two double-width runes
}

func TestPadToPadsToDisplayColumns(t *testing.T) {
	out := PadTo("ab", 5, '.')
	assert.Equal(t, 5, DisplayWidth(out))
	assert.Equal(t, "ab...", out)
}

func TestPadToTruncatesOverflow(t *testing.T) {
	out := PadTo("abcdef", 3, ' ')
	assert.Equal(t, 3, DisplayWidth(out))
}

func TestEscSegmentVisualLenIgnoresEscapes(t *testing.T) {
	s := NewSegment("\x1b[31m", "ab", "\x1b[0m")
	assert.Equal(t, 2, s.VisualLen())
	pure := NewPure("\x1bP", "payload", "\x1b\\")
	assert.Equal(t, 0, pure.VisualLen())
}

func TestEscSegmentPadPreservesEscapeFields(t *testing.T) {
	s := NewSegment("\x1b[31m", "ab", "\x1b[0m")
	padded := s.Pad(5, '.')
	assert.Equal(t, "\x1b[31m", padded.Intro())
	assert.Equal(t, "\x1b[0m", padded.Outro())
	assert.Equal(t, 5, DisplayWidth(padded.Str()))
}
