package vtcore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeReplyDAResolvesKnownVTClass(t *testing.T) {
	reply, err := DecodeReplyDA("\x1b[?1;2c")
	assert.NoError(t, err)
	assert.NotNil(t, reply.VT)
	assert.Equal(t, 100, *reply.VT)
	assert.Equal(t, []int{2}, reply.Params)
}

func TestDecodeReplyDARejectsMissingTerminator(t *testing.T) {
	_, err := DecodeReplyDA("\x1b[?1;2")
	assert.Error(t, err)
	var invalid *InvalidReplyError
	assert.ErrorAs(t, err, &invalid)
}

func TestReplyDAMatchesRequiresParamSubset(t *testing.T) {
	event, err := DecodeReplyDA("\x1b[?1;2;6c")
	assert.NoError(t, err)
	pattern := ReplyDA{Params: []int{2}}
	assert.True(t, pattern.Matches(event))
	assert.False(t, ReplyDA{Params: []int{9}}.Matches(event))
}

func TestDecodeReplyCPParsesPlainForm(t *testing.T) {
	reply, err := DecodeReplyCP("\x1b[10;20R")
	assert.NoError(t, err)
	assert.Equal(t, ExactCoord(20), reply.X)
	assert.Equal(t, ExactCoord(10), reply.Y)
}

func TestDecodeReplyCPParsesExtendedFormWithPage(t *testing.T) {
	reply, err := DecodeReplyCP("\x1b[?10;20;3R")
	assert.NoError(t, err)
	assert.Equal(t, ExactCoord(3), reply.Page)
}

func TestReplyCPMatchesByCoordinate(t *testing.T) {
	event, err := DecodeReplyCP("\x1b[10;20R")
	assert.NoError(t, err)
	pattern := ReplyCP{X: ExactCoord(20), Y: AnyCoord()}
	assert.True(t, pattern.Matches(event))
	assert.False(t, ReplyCP{X: ExactCoord(99), Y: AnyCoord()}.Matches(event))
}

func TestDecodeReplyOSColorParsesRGBTriple(t *testing.T) {
	reply, err := DecodeReplyOSColor("\x1b]11;rgb:ff/00/80\x1b\\")
	assert.NoError(t, err)
	assert.Equal(t, ExactCoord(0xff), reply.R)
	assert.Equal(t, ExactCoord(0x00), reply.G)
	assert.Equal(t, ExactCoord(0x80), reply.B)
}

func TestDecodeReplyOSColorPaletteSlotNegatesIndex(t *testing.T) {
	reply, err := DecodeReplyOSColor("\x1b]4;3;rgb:10/20/30\x1b\\")
	assert.NoError(t, err)
	assert.Equal(t, -3, *reply.Target)
}

func TestDecodeReplyDECPMRecordsAndReturnsFields(t *testing.T) {
	reply, err := DecodeReplyDECPM("\x1b[?1;1$y")
	assert.NoError(t, err)
	assert.Equal(t, 1, *reply.Mode)
	assert.Equal(t, 1, *reply.Value)
}

func TestReplyWindowMatchesModeAndCoords(t *testing.T) {
	event, err := DecodeReplyWindow("\x1b[8;24;80t")
	assert.NoError(t, err)
	mode := 8
	pattern := ReplyWindow{Mode: &mode, X: AnyCoord(), Y: AnyCoord()}
	assert.True(t, pattern.Matches(event))
}
