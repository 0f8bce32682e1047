package vtcore

import (
	"io"
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// sliceByteSource is a fixed byte sequence ByteSource for tests: bytes
// are always immediately Available, and ReadByte returns io.EOF once
// exhausted.
type sliceByteSource struct {
	bytes []byte
	pos   int
}

func (s *sliceByteSource) Available() bool { return s.pos < len(s.bytes) }

func (s *sliceByteSource) ReadByte() (byte, error) {
	if s.pos >= len(s.bytes) {
		return 0, io.EOF
	}
	b := s.bytes[s.pos]
	s.pos++
	return b, nil
}

func TestInputModemGetchDecodesOneEvent(t *testing.T) {
	src := &sliceByteSource{bytes: []byte{'a'}}
	m := NewInputModem(src, nil, nil, nil, 0, false)
	event, ok := m.Getch(false)
	assert.True(t, ok)
	ch := event.(Char)
	assert.Equal(t, "a", ch.Text)
}

func TestInputModemGetchNonBlockingReturnsFalseWhenEmpty(t *testing.T) {
	src := &sliceByteSource{bytes: nil}
	m := NewInputModem(src, nil, nil, nil, 0, false)
	_, ok := m.Getch(false)
	assert.False(t, ok)
}

func TestInputModemSendDispatchesToBinder(t *testing.T) {
	src := &sliceByteSource{bytes: []byte{'a'}}
	binder := NewBinder()
	var got any
	binder.Bind(reflect.TypeOf(Char{}), func(event, prev any) any { got = event; return nil }, BindAppend, 0)
	m := NewInputModem(src, nil, nil, binder, 0, false)
	ok := m.Send(false)
	assert.True(t, ok)
	assert.Equal(t, NewASCII("a"), got)
}

func TestInputModemStartStop(t *testing.T) {
	src := &sliceByteSource{bytes: []byte("ab")}
	binder := NewBinder()
	count := 0
	binder.Bind(reflect.TypeOf(Char{}), func(event, prev any) any { count++; return nil }, BindAppend, 0)
	m := NewInputModem(src, nil, nil, binder, time.Millisecond, false)
	m.Start()
	time.Sleep(20 * time.Millisecond)
	m.Stop()
	assert.GreaterOrEqual(t, count, 1)
}

func TestSuperModemResolvesLoneEscAfterTimeout(t *testing.T) {
	src := &sliceByteSource{bytes: []byte{0x1b}}
	m := NewSuperModem(src, nil, nil, nil, 0, false, time.Millisecond)
	// First poll: byte consumed, nothing available afterward, deadline armed.
	_, ok := m.Getch(false)
	assert.False(t, ok)
	time.Sleep(2 * time.Millisecond)
	event, ok := m.Getch(false)
	assert.True(t, ok)
	k := event.(Key)
	assert.Equal(t, KindEscEsc, k.Kind)
}

func TestInputModemBlockingGetchStopsOnReadError(t *testing.T) {
	src := &sliceByteSource{bytes: nil}
	m := NewInputModem(src, nil, nil, nil, 0, true)
	_, ok := m.Getch(true)
	assert.False(t, ok)
}
