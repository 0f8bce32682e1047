package vtcore

import (
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBindingAppendRunsInOrder(t *testing.T) {
	b := NewBinding(reflect.TypeOf(Char{}))
	var calls []string
	b.Bind(func(event, prev any) any { calls = append(calls, "first"); return nil }, BindAppend, 0)
	b.Bind(func(event, prev any) any { calls = append(calls, "second"); return nil }, BindAppend, 0)
	matched, _ := b.Call(NewASCII("x"), nil, true)
	assert.True(t, matched)
	assert.Equal(t, []string{"first", "second"}, calls)
}

func TestBindingTypeMatchesOnlyExactType(t *testing.T) {
	b := NewBinding(reflect.TypeOf(Char{}))
	matched, _ := b.Call(NewASCII("x"), nil, true)
	assert.True(t, matched)
	matched, _ = b.Call(NewCtrlByte(1), nil, true) // Key, not Char
	assert.False(t, matched)
}

func TestBindingInstanceMatchUsesDeepEqual(t *testing.T) {
	// Key carries a *Mod pointer field; two separately constructed but
	// logically identical events must still compare equal.
	ref := NewNavKey(intPtr(NavUp), modPtr(0))
	b := NewBinding(ref)
	other := NewNavKey(intPtr(NavUp), modPtr(0))
	matched, _ := b.Call(other, nil, true)
	assert.True(t, matched)
}

func TestBindingReplaceRequiresValidIndex(t *testing.T) {
	b := NewBinding(reflect.TypeOf(Char{}))
	_, err := b.Bind(func(event, prev any) any { return nil }, BindReplace, 0)
	assert.Error(t, err)
	assert.ErrorIs(t, err, ErrBind)
}

func TestBindingExclusiveReplacesWholeChain(t *testing.T) {
	b := NewBinding(reflect.TypeOf(Char{}))
	b.Bind(func(event, prev any) any { return nil }, BindAppend, 0)
	b.Bind(func(event, prev any) any { return nil }, BindAppend, 0)
	assert.Equal(t, 2, b.Len())
	b.Bind(func(event, prev any) any { return nil }, BindExclusive, 0)
	assert.Equal(t, 1, b.Len())
}

func TestBindItemUnbindRemovesFromCallOrder(t *testing.T) {
	b := NewBinding(reflect.TypeOf(Char{}))
	var ran bool
	item, _ := b.Bind(func(event, prev any) any { ran = true; return nil }, BindAppend, 0)
	item.Unbind()
	b.Call(NewASCII("x"), nil, false)
	assert.False(t, ran)
	assert.Equal(t, 0, b.Len())
}

func TestBindItemRebindExclusiveWipesOthers(t *testing.T) {
	b := NewBinding(reflect.TypeOf(Char{}))
	var calls []string
	first, _ := b.Bind(func(event, prev any) any { calls = append(calls, "first"); return nil }, BindAppend, 0)
	b.Bind(func(event, prev any) any { calls = append(calls, "second"); return nil }, BindAppend, 0)
	assert.Equal(t, 2, b.Len())
	assert.NoError(t, first.Rebind(BindExclusive, 0))
	assert.Equal(t, 1, b.Len())
	calls = nil
	b.Call(NewASCII("x"), nil, false)
	assert.Equal(t, []string{"first"}, calls)
}

func TestBindChainRangeAndUnbind(t *testing.T) {
	binder := NewBinder()
	chain, err := binder.BindChain(reflect.TypeOf(Char{}), []BindFunc{
		func(event, prev any) any { return nil },
		func(event, prev any) any { return nil },
	}, BindAppend, 0)
	assert.NoError(t, err)
	first, last := chain.Range()
	assert.Equal(t, 0, first)
	assert.Equal(t, 1, last)
	chain.Unbind()
	binding := binder.GetBinding(reflect.TypeOf(Char{}))
	assert.Equal(t, 0, binding.Len())
}

func TestBinderSendDispatchesToTypeBinding(t *testing.T) {
	b := NewBinder()
	var got any
	b.Bind(reflect.TypeOf(Char{}), func(event, prev any) any { got = event; return nil }, BindAppend, 0)
	ok := b.Send(NewASCII("x"))
	assert.True(t, ok)
	assert.Equal(t, NewASCII("x"), got)
}

func TestBinderSendReportsFalseWhenNothingMatches(t *testing.T) {
	b := NewBinder()
	ok := b.Send(NewASCII("x"))
	assert.False(t, ok)
}

func TestBinderInstanceAndTypeBothRunByDefault(t *testing.T) {
	b := NewBinder()
	var order []string
	b.Bind(reflect.TypeOf(Char{}), func(event, prev any) any { order = append(order, "type"); return nil }, BindAppend, 0)
	b.Bind(NewASCII("x"), func(event, prev any) any { order = append(order, "instance"); return nil }, BindAppend, 0)
	b.Send(NewASCII("x"))
	assert.Equal(t, []string{"instance", "type"}, order)
}

func TestBinderFindClassMatchFirstReordersGroups(t *testing.T) {
	b := NewBinder(WithFindClassMatchFirst())
	var order []string
	b.Bind(reflect.TypeOf(Char{}), func(event, prev any) any { order = append(order, "type"); return nil }, BindAppend, 0)
	b.Bind(NewASCII("x"), func(event, prev any) any { order = append(order, "instance"); return nil }, BindAppend, 0)
	b.Send(NewASCII("x"))
	assert.Equal(t, []string{"type", "instance"}, order)
}

func TestBinderGetMatchCachesResult(t *testing.T) {
	b := NewBinder()
	b.Bind(reflect.TypeOf(Char{}), func(event, prev any) any { return nil }, BindAppend, 0)
	first := b.GetMatch(NewASCII("x"))
	second := b.GetMatch(NewASCII("x"))
	assert.Equal(t, first, second)
}

func TestSpamHandleBasicAdmitsUntilMax(t *testing.T) {
	s := NewSpamHandleBasic(2, time.Minute)
	var queue []any
	enqueue := func(e any) { queue = append(queue, e) }

	admitted := s.Admit(NewASCII("x"), false, enqueue)
	assert.True(t, admitted)
	// identical repeat within spamTime, queue considered still pending
	admitted = s.Admit(NewASCII("x"), true, enqueue)
	assert.True(t, admitted)
	admitted = s.Admit(NewASCII("x"), true, enqueue)
	assert.True(t, admitted)
	// spamMax reached: further identical repeats are dropped
	admitted = s.Admit(NewASCII("x"), true, enqueue)
	assert.False(t, admitted)
}

func TestSpamHandleOneDropsWhileQueuePending(t *testing.T) {
	s := NewSpamHandleOne()
	var queue []any
	enqueue := func(e any) { queue = append(queue, e) }
	assert.True(t, s.Admit(NewASCII("x"), false, enqueue))
	assert.False(t, s.Admit(NewASCII("y"), true, enqueue))
	assert.Equal(t, 1, len(queue))
}

func TestSpamHandleRestrictiveRequiresEmptyQueue(t *testing.T) {
	navType := reflect.TypeOf(Key{})
	s := NewSpamHandleRestrictive(5, time.Minute, navType)
	var queue []any
	enqueue := func(e any) { queue = append(queue, e) }
	assert.False(t, s.Admit(NewNavKey(intPtr(NavUp), modPtr(0)), true, enqueue))
	assert.True(t, s.Admit(NewNavKey(intPtr(NavUp), modPtr(0)), false, enqueue))
}
