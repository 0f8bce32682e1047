package vtcore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSGRSeqsJoinsParamGroups(t *testing.T) {
	seg := SGRSeqs(StyleBasics.Bold, Fore.Red)
	assert.Equal(t, "\x1b[1;38;2;255;0;0m", seg.Bytes())
}

func TestSGRResetIsBareM(t *testing.T) {
	assert.Equal(t, "\x1b[m", SGRReset().Bytes())
}

func TestSGRSeqsHonorsStyleGate(t *testing.T) {
	StyleGate.Disable()
	defer StyleGate.Enable()
	seg := SGRSeqs(StyleBasics.Bold)
	assert.True(t, seg.IsZero())
}

func TestSGRWrapWrapsPlainString(t *testing.T) {
	out := SGRWrap("hi", false, false, Fore.Red)
	assert.Equal(t, "hi", out.Printable())
	assert.True(t, out.HasEscape())
}

func TestColorFactoryHexParsesRRGGBB(t *testing.T) {
	params, err := Fore.Hex("#ff0000")
	assert.NoError(t, err)
	assert.Equal(t, SGRParams{38, 2, 255, 0, 0}, params)
}

func TestColorFactoryRGBRejectsOutOfRange(t *testing.T) {
	_, err := Fore.RGB(0, 0, 300)
	assert.Error(t, err)
	assert.ErrorIs(t, err, ErrGeometry)
}

func TestColorFactoryNearest256FindsClosestPaletteEntry(t *testing.T) {
	params := Fore.Nearest256(255, 0, 0)
	assert.Equal(t, byte(38), byte(params[0]))
	assert.Equal(t, 5, params[1])
	// palette index 9 is the ANSI bright red {255, 0, 0}, an exact match
	assert.Equal(t, 9, params[2])
}

func TestHasNameResolvesX11Color(t *testing.T) {
	r, g, b, ok := HasName("red")
	assert.True(t, ok)
	assert.Equal(t, 255, r)
	assert.Equal(t, 0, g)
	assert.Equal(t, 0, b)
}

func TestHasNameUnknownReturnsFalse(t *testing.T) {
	_, _, _, ok := HasName("not-a-real-color-name")
	assert.False(t, ok)
}
