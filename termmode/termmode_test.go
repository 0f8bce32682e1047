package termmode

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHandleResetRunsUndoOnce(t *testing.T) {
	calls := 0
	h := newHandle("test", func() error { calls++; return nil })
	assert.NoError(t, h.Reset())
	assert.NoError(t, h.Reset())
	assert.Equal(t, 1, calls, "Reset must be idempotent")
}

func TestHandleResetNilReceiverIsNoop(t *testing.T) {
	var h *Handle
	assert.NoError(t, h.Reset())
}

func TestHandleStringReportsName(t *testing.T) {
	h := newHandle("no-echo", func() error { return nil })
	assert.Equal(t, "no-echo", h.String())
}

func TestHandleResetPropagatesUndoError(t *testing.T) {
	want := errors.New("boom")
	h := newHandle("test", func() error { return want })
	assert.ErrorIs(t, h.Reset(), want)
}

func TestResetAllRunsHooksMostRecentFirst(t *testing.T) {
	exitMu.Lock()
	exitHooks = nil
	exitMu.Unlock()

	var order []string
	a := newHandle("a", func() error { order = append(order, "a"); return nil })
	b := newHandle("b", func() error { order = append(order, "b"); return nil })
	a.RegisterExit()
	b.RegisterExit()

	ResetAll()
	assert.Equal(t, []string{"b", "a"}, order)
}

func TestResetAllClearsRegistry(t *testing.T) {
	exitMu.Lock()
	exitHooks = nil
	exitMu.Unlock()

	h := newHandle("x", func() error { return nil })
	h.RegisterExit()
	ResetAll()

	exitMu.Lock()
	n := len(exitHooks)
	exitMu.Unlock()
	assert.Equal(t, 0, n)
}

func TestResetAllContinuesPastFailingHandle(t *testing.T) {
	exitMu.Lock()
	exitHooks = nil
	exitMu.Unlock()

	ranSecond := false
	failing := newHandle("failing", func() error { return errors.New("fail") })
	ok := newHandle("ok", func() error { ranSecond = true; return nil })
	failing.RegisterExit()
	ok.RegisterExit()

	ResetAll()
	assert.True(t, ranSecond)
}
