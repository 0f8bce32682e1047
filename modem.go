// Copyright 2026 The VTCore Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package vtcore

import (
	"reflect"
	"sync"
	"time"
)

// ByteSource is the Modem's raw input collaborator: a non-blocking
// fd wrapped so the Modem can poll it without stalling its loop.
// Available reports whether a call to ReadByte will not block.
// Grounded on io/io.py's _kbhit()/stdin pairing; the actual
// non-blocking fd configuration is termmode's concern (see
// termmode.Mode.NonBlockingInput), not the Modem's.
type ByteSource interface {
	ReadByte() (byte, error)
	Available() bool
}

// spamVariant selects a SpamHandle's admission policy.
type spamVariant int

const (
	spamBasic spamVariant = iota
	spamNicer
	spamRestrictive
	spamOne
)

// SpamHandle decides whether a repeated event within spamTime should
// reach the binder. Grounded on io/io.py's SpamHandle and its three
// derived policies (Nicer, Restrictive, One).
type SpamHandle struct {
	mu        sync.Mutex
	variant   spamVariant
	spamMax   int
	spamTime  time.Duration
	count     int
	prev      any
	last      time.Time
	nice      []reflect.Type
	exclusive []reflect.Type
}

// NewSpamHandleBasic discards an identical repeated event within
// spamTime once it has recurred spamMax times.
func NewSpamHandleBasic(spamMax int, spamTime time.Duration) *SpamHandle {
	return &SpamHandle{variant: spamBasic, spamMax: spamMax, spamTime: spamTime, last: time.Now()}
}

// NewSpamHandleNicer always discards a repeat of one of the mustNice
// types within spamTime, regardless of spamMax.
func NewSpamHandleNicer(spamMax int, spamTime time.Duration, mustNice ...reflect.Type) *SpamHandle {
	return &SpamHandle{variant: spamNicer, spamMax: spamMax, spamTime: spamTime, nice: mustNice, last: time.Now()}
}

// NewSpamHandleRestrictive requires an empty queue before admitting
// any event of one of the exclusive types.
func NewSpamHandleRestrictive(spamMax int, spamTime time.Duration, exclusive ...reflect.Type) *SpamHandle {
	return &SpamHandle{variant: spamRestrictive, spamMax: spamMax, spamTime: spamTime, exclusive: exclusive, last: time.Now()}
}

// NewSpamHandleOne discards every event unless the queue is empty.
func NewSpamHandleOne() *SpamHandle {
	return &SpamHandle{variant: spamOne, last: time.Now()}
}

func typeIn(t reflect.Type, types []reflect.Type) bool {
	for _, c := range types {
		if c == t {
			return true
		}
	}
	return false
}

// Admit decides whether event should be queued, given queuePending
// (the pipe.poll() equivalent: true if a previously admitted event is
// still unconsumed) and enqueue (the pipe.send() equivalent, called
// only on admission). It returns whether the event was admitted.
func (s *SpamHandle) Admit(event any, queuePending bool, enqueue func(any)) bool {
	if s.variant == spamOne {
		if queuePending {
			return false
		}
		enqueue(event)
		return true
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	defer func() { s.last = now }()

	if s.variant == spamRestrictive && typeIn(reflect.TypeOf(event), s.exclusive) {
		if queuePending {
			return false
		}
		s.admitLocked(event, enqueue)
		return true
	}

	if !queuePending {
		s.admitLocked(event, enqueue)
		return true
	}
	if now.Sub(s.last) < s.spamTime && reflect.DeepEqual(s.prev, event) {
		if s.variant == spamNicer && typeIn(reflect.TypeOf(event), s.nice) {
			return false
		}
		if s.count != s.spamMax {
			s.count++
			enqueue(event)
			return true
		}
		return false
	}
	s.admitLocked(event, enqueue)
	return true
}

func (s *SpamHandle) admitLocked(event any, enqueue func(any)) {
	s.prev = event
	s.count = 0
	enqueue(event)
}

// InputModem reads raw bytes from a ByteSource through an Interpreter,
// filters repeats through a SpamHandle, and dispatches completed
// events to a Binder: the "stdin -> interpreter -> [SpamHandler] ->
// binder" pipeline. Grounded on io/modem.py's InputModem.
type InputModem struct {
	interp    *Interpreter
	src    ByteSource
	spam   *SpamHandle
	Binder *Binder

	queue      chan any
	smoothness time.Duration
	block      bool

	stop chan struct{}
	wg   sync.WaitGroup
}

// NewInputModem constructs a Modem reading from src, interpreting
// with interp, filtering through spam (nil admits everything), and
// dispatching to binder.
func NewInputModem(src ByteSource, interp *Interpreter, spam *SpamHandle, binder *Binder, smoothness time.Duration, block bool) *InputModem {
	if interp == nil {
		interp = NewInterpreter()
	}
	if binder == nil {
		binder = NewBinder()
	}
	return &InputModem{
		interp: interp, src: src, spam: spam, Binder: binder,
		queue: make(chan any, 64), smoothness: smoothness, block: block,
		stop: make(chan struct{}),
	}
}

// Getch reads and interprets bytes from the source until one complete
// event is produced. With block false, it returns (nil, false)
// immediately if the source has no byte available yet.
func (m *InputModem) Getch(block bool) (any, bool) {
	for {
		if !block && !m.src.Available() {
			return nil, false
		}
		b, err := m.src.ReadByte()
		if err != nil {
			return nil, false
		}
		if event, complete := m.interp.Feed(b); complete {
			return event, true
		}
	}
}

func (m *InputModem) queuePending() bool { return len(m.queue) > 0 }

func (m *InputModem) enqueue(event any) { m.queue <- event }

// Send reads (with or without blocking) one event and, once admitted
// past the SpamHandle, pops the queue and dispatches it to the
// Binder. It returns whether anything was dispatched.
func (m *InputModem) Send(block bool) bool {
	event, ok := m.Getch(block)
	if !ok {
		return false
	}
	return m.admitAndDispatch(event)
}

func (m *InputModem) admitAndDispatch(event any) bool {
	admitted := true
	if m.spam != nil {
		admitted = m.spam.Admit(event, m.queuePending(), m.enqueue)
	} else {
		m.enqueue(event)
	}
	if !admitted {
		return false
	}
	queued := <-m.queue
	return m.Binder.Send(queued)
}

// Run starts the modem's background read loop; it returns once Stop
// is called. Grounded on io/modem.py's InputModem.run.
func (m *InputModem) Run() {
	m.wg.Add(1)
	defer m.wg.Done()
	for {
		select {
		case <-m.stop:
			return
		default:
		}
		if m.block {
			m.Send(true)
			continue
		}
		if m.smoothness > 0 {
			time.Sleep(m.smoothness)
		}
		m.Send(false)
	}
}

// Start launches Run in a background goroutine.
func (m *InputModem) Start() { go m.Run() }

// Stop signals Run to return and waits for it to do so.
func (m *InputModem) Stop() {
	close(m.stop)
	m.wg.Wait()
}

// SuperModem is InputModem's character-granular variant: the default
// modem for a raw tty in the original, where a lone ESC byte is
// ambiguous between "the user pressed Escape" and "the first byte of
// an escape sequence is still arriving". It resolves that ambiguity
// with a timeout instead of requiring pre-chunked input. Grounded on
// io/modem.py's InputSuperModem (manual_esc_tt).
type SuperModem struct {
	*InputModem
	manualEscTimeout time.Duration
	escDeadline      time.Time
}

// NewSuperModem wraps src/interp/spam/binder as a SuperModem; on
// non-blocking reads, a lone ESC pending for longer than
// manualEscTimeout resolves to an Escape key event (see Getch).
func NewSuperModem(src ByteSource, interp *Interpreter, spam *SpamHandle, binder *Binder, smoothness time.Duration, block bool, manualEscTimeout time.Duration) *SuperModem {
	return &SuperModem{
		InputModem:       NewInputModem(src, interp, spam, binder, smoothness, block),
		manualEscTimeout: manualEscTimeout,
	}
}

// Getch overrides InputModem.Getch to apply the manual ESC timeout
// while waiting for bytes: if the interpreter is left waiting on a
// bare ESC for longer than manualEscTimeout with nothing else
// arriving, it resolves to an Escape key. The timeout is checked only
// when block is false: with block true, Getch waits in ReadByte and a
// lone ESC stays pending until another byte arrives. escDeadline is a field (not a local
// variable) because in non-blocking mode the caller polls Getch
// repeatedly across separate calls with no pending bytes in between;
// a local deadline would be reinitialized on every poll and never
// actually elapse.
func (m *SuperModem) Getch(block bool) (any, bool) {
	for {
		if !block && !m.src.Available() {
			if m.interp.Pending() {
				if !m.escDeadline.IsZero() && time.Now().After(m.escDeadline) {
					if event, ok := m.interp.TimeoutEscape(); ok {
						m.escDeadline = time.Time{}
						return event, true
					}
				} else if m.escDeadline.IsZero() {
					m.escDeadline = time.Now().Add(m.manualEscTimeout)
				}
			} else {
				m.escDeadline = time.Time{}
			}
			return nil, false
		}
		b, err := m.src.ReadByte()
		if err != nil {
			return nil, false
		}
		if event, complete := m.interp.Feed(b); complete {
			m.escDeadline = time.Time{}
			return event, true
		}
		if m.interp.Pending() && m.escDeadline.IsZero() {
			m.escDeadline = time.Now().Add(m.manualEscTimeout)
		}
	}
}

// Send overrides InputModem.Send to read through SuperModem's Getch.
func (m *SuperModem) Send(block bool) bool {
	event, ok := m.Getch(block)
	if !ok {
		return false
	}
	return m.admitAndDispatch(event)
}

// Run overrides InputModem.Run: Go's embedding does not make Send
// virtual, so the loop is restated here to call SuperModem.Send
// (with the manual ESC timeout) instead of the embedded InputModem's.
func (m *SuperModem) Run() {
	m.wg.Add(1)
	defer m.wg.Done()
	for {
		select {
		case <-m.stop:
			return
		default:
		}
		if m.block {
			m.Send(true)
			continue
		}
		if m.smoothness > 0 {
			time.Sleep(m.smoothness)
		}
		m.Send(false)
	}
}

// Start launches SuperModem's own Run in a background goroutine.
func (m *SuperModem) Start() { go m.Run() }
