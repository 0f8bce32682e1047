package vtcore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func feedBytes(t *testing.T, ip *Interpreter, bs ...byte) any {
	t.Helper()
	var event any
	var pending bool
	for _, b := range bs {
		event, pending = ip.Feed(b)
	}
	assert.False(t, pending, "expected a complete event after feeding %v", bs)
	return event
}

func TestInterpreterPlainASCII(t *testing.T) {
	ip := NewInterpreter()
	event := feedBytes(t, ip, 'a')
	ch, ok := event.(Char)
	assert.True(t, ok)
	assert.Equal(t, KindASCII, ch.Kind)
	assert.Equal(t, "a", ch.Text)
	assert.False(t, ip.Pending())
}

func TestInterpreterCtrlByte(t *testing.T) {
	ip := NewInterpreter()
	event := feedBytes(t, ip, 0x01) // ctrl-A
	k, ok := event.(Key)
	assert.True(t, ok)
	assert.Equal(t, KindCtrl, k.Kind)
	assert.Equal(t, "A", k.Key)
}

func TestInterpreterEscEsc(t *testing.T) {
	ip := NewInterpreter()
	event := feedBytes(t, ip, 0x1b, 0x1b)
	k, ok := event.(Key)
	assert.True(t, ok)
	assert.Equal(t, KindEscEsc, k.Kind)
}

func TestInterpreterArrowKeyCSI(t *testing.T) {
	ip := NewInterpreter()
	// ESC [ A -> Up arrow
	event := feedBytes(t, ip, 0x1b, '[', 'A')
	k, ok := event.(Key)
	assert.True(t, ok)
	assert.Equal(t, KindNavKey, k.Kind)
	assert.Equal(t, NavUp, k.Key)
}

func TestInterpreterPendingMidSequence(t *testing.T) {
	ip := NewInterpreter()
	_, pending := ip.Feed(0x1b)
	assert.True(t, pending)
	assert.True(t, ip.Pending())
	_, pending = ip.Feed('[')
	assert.True(t, pending)
	event, pending := ip.Feed('A')
	assert.False(t, pending)
	assert.False(t, ip.Pending())
	k := event.(Key)
	assert.Equal(t, NavUp, k.Key)
}

func TestInterpreterTimeoutEscapeOnlyWhenWaitingOnBareEsc(t *testing.T) {
	ip := NewInterpreter()
	_, ok := ip.TimeoutEscape()
	assert.False(t, ok, "no pending ESC yet")

	ip.Feed(0x1b)
	event, ok := ip.TimeoutEscape()
	assert.True(t, ok)
	k := event.(Key)
	assert.Equal(t, KindEscEsc, k.Kind)
	assert.False(t, ip.Pending(), "TimeoutEscape must reset the interpreter")
}

func TestInterpreterUTF8Decode(t *testing.T) {
	ip := NewInterpreter()
	// U+00E9 'é' encoded as 0xC3 0xA9
	event := feedBytes(t, ip, 0xC3, 0xA9)
	ch, ok := event.(Char)
	assert.True(t, ok)
	assert.Equal(t, KindUTF8, ch.Kind)
	assert.Equal(t, "é", ch.Text)
}
