package vtcore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscSegmentBasics(t *testing.T) {
	s := NewSegment("\x1b[31m", "hi", "\x1b[0m")
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, len("\x1b[31m")+len("\x1b[0m"), s.EscLen())
	assert.Equal(t, 2+s.EscLen(), s.AbsLen())
	assert.Equal(t, "\x1b[31mhi\x1b[0m", s.Bytes())
	assert.True(t, s.HasEscape())
	assert.False(t, s.IsZero())
}

func TestEscSegmentPureHasZeroLen(t *testing.T) {
	p := NewPure("\x1bP", "opaque payload", "\x1b\\")
	assert.Equal(t, 0, p.Len())
	assert.Equal(t, len("\x1bP")+len("opaque payload")+len("\x1b\\"), p.EscLen())
}

func TestEscSegmentAnd(t *testing.T) {
	s := NewSegment("", "ab", "")
	s2 := s.And("cd")
	assert.Equal(t, "abcd", s2.Str())
}

func TestEscSegmentSliceClampsOutOfRange(t *testing.T) {
	s := NewSegment("\x1b[1m", "hello", "\x1b[0m")
	assert.Equal(t, "ell", s.Slice(1, 4).Str())
	assert.Equal(t, "", s.Slice(10, 20).Str())
	assert.Equal(t, "hello", s.Slice(-100, 100).Str())
	// escape fields survive a slice
	assert.Equal(t, "\x1b[1m", s.Slice(1, 4).Intro())
	assert.Equal(t, "\x1b[0m", s.Slice(1, 4).Outro())
}

func TestEscSegmentAssimilateMergesMatchingEscapes(t *testing.T) {
	a := NewSegment("\x1b[31m", "red", "\x1b[0m")
	merged := a.Assimilate(NewSegment("\x1b[31m", "der", "\x1b[0m"))
	assert.Equal(t, 1, merged.NSegments())
	assert.Equal(t, "redder", merged.Printable())
}

func TestEscSegmentAssimilateAppendsOnMismatch(t *testing.T) {
	a := NewSegment("\x1b[31m", "red", "\x1b[0m")
	appended := a.Assimilate(NewSegment("\x1b[32m", "green", "\x1b[0m"))
	assert.Equal(t, 2, appended.NSegments())
}

func TestEscSegmentFormatWidensEscapeArgWidth(t *testing.T) {
	colored := NewSegment("\x1b[31m", "x", "\x1b[0m")
	tmpl := NewSegment("", "[%-5s]", "")
	out, err := tmpl.Format(colored)
	assert.NoError(t, err)
	// width widened by colored.EscLen() so the printable column count
	// still lines up once the escapes are stripped back out.
	assert.Contains(t, out.Str(), colored.Bytes())
}

func TestEscSegmentFormatRejectsUnsupportedVerb(t *testing.T) {
	tmpl := NewSegment("", "%d", "")
	colored := NewSegment("", "x", "")
	_, err := tmpl.Format(colored)
	assert.Error(t, err)
	assert.ErrorIs(t, err, ErrFormat)
}

func TestEscContainerConcatAndLen(t *testing.T) {
	c := NewContainer(NewSegment("", "ab", "")).Concat(NewSegment("", "cd", ""))
	assert.Equal(t, 2, c.NSegments())
	assert.Equal(t, 4, c.Len())
	assert.Equal(t, "abcd", c.Printable())
}

func TestEscContainerAssimilateMergesAtBoundary(t *testing.T) {
	c := NewContainer(NewSegment("\x1b[1m", "a", ""))
	c = c.Assimilate(NewSegment("", "b", "\x1b[0m"))
	assert.Equal(t, 1, c.NSegments())
	assert.Equal(t, "ab", c.Printable())
}
