package vtcore

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRouterSwitchGateRequiresExistingEntry(t *testing.T) {
	r := NewRouter(0, false)
	assert.False(t, r.SwitchGate("main"))
}

func TestRouterTableEntryLifecycle(t *testing.T) {
	r := NewRouter(0, false)
	binder := NewBinder()
	modem := NewInputModem(&sliceByteSource{}, nil, nil, binder, 0, false)

	assert.True(t, r.AddTableEntry("main", modem))
	assert.False(t, r.AddTableEntry("main", modem), "second Add must not overwrite")

	got, ok := r.Modem("main")
	assert.True(t, ok)
	assert.Same(t, modem, got)

	assert.ElementsMatch(t, []any{"main"}, r.Entries())

	popped := r.PopTableEntry("main")
	assert.Same(t, modem, popped)
	_, ok = r.Modem("main")
	assert.False(t, ok)
}

func TestRouterSetDefaultTableEntryOnlyWhenAbsent(t *testing.T) {
	r := NewRouter(0, false)
	binder1 := NewBinder()
	binder2 := NewBinder()
	m1 := NewInputModem(&sliceByteSource{}, nil, nil, binder1, 0, false)
	m2 := NewInputModem(&sliceByteSource{}, nil, nil, binder2, 0, false)

	assert.True(t, r.SetDefaultTableEntry("main", m1))
	assert.False(t, r.SetDefaultTableEntry("main", m2))
	got, _ := r.Modem("main")
	assert.Same(t, m1, got)
}

func TestRouterSendUsesActiveGate(t *testing.T) {
	r := NewRouter(0, false)

	var mainGot, altGot any
	mainBinder := NewBinder()
	mainBinder.Bind(reflect.TypeOf(Char{}), func(event, prev any) any { mainGot = event; return nil }, BindAppend, 0)
	altBinder := NewBinder()
	altBinder.Bind(reflect.TypeOf(Char{}), func(event, prev any) any { altGot = event; return nil }, BindAppend, 0)

	mainModem := NewInputModem(&sliceByteSource{bytes: []byte{'m'}}, nil, nil, mainBinder, 0, false)
	altModem := NewInputModem(&sliceByteSource{bytes: []byte{'a'}}, nil, nil, altBinder, 0, false)

	r.SetTableEntry("main", mainModem)
	r.SetTableEntry("alt", altModem)

	assert.True(t, r.SwitchGate("main"))
	assert.True(t, r.Send(false))
	assert.Equal(t, NewASCII("m"), mainGot)
	assert.Nil(t, altGot)

	assert.True(t, r.SwitchGate("alt"))
	assert.True(t, r.Send(false))
	assert.Equal(t, NewASCII("a"), altGot)
}

func TestRouterSendWithoutActiveGateReturnsFalse(t *testing.T) {
	r := NewRouter(0, false)
	assert.False(t, r.Send(false))
}
