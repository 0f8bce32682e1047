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
	"sync"
	"time"
)

// Router holds a table of named Modems and routes Send/Run to
// whichever one is current, switched via SwitchGate. Grounded on
// io/modem.py's InputRouter; e.g. an application switches gates
// between a "main" modem bound for normal keys and an "overlay" modem
// bound for a modal dialog's keys, without rebuilding either Binder.
type Router struct {
	mu     sync.RWMutex
	modems map[any]*InputModem
	active *InputModem

	smoothness time.Duration
	block      bool

	stop chan struct{}
	wg   sync.WaitGroup
}

// NewRouter constructs a Router. Before Send or Run may be used, at
// least one table entry must be added and SwitchGate called once.
func NewRouter(smoothness time.Duration, block bool) *Router {
	return &Router{modems: map[any]*InputModem{}, smoothness: smoothness, block: block}
}

// SwitchGate makes entry's modem the one Send/Run operate on.
func (r *Router) SwitchGate(entry any) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.modems[entry]
	if !ok {
		return false
	}
	r.active = m
	return true
}

// SetTableEntry sets (overwriting any existing) entry's modem.
func (r *Router) SetTableEntry(entry any, modem *InputModem) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.modems[entry] = modem
}

// SetDefaultTableEntry sets entry's modem only if entry is not
// already present, reporting whether it did so.
func (r *Router) SetDefaultTableEntry(entry any, modem *InputModem) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.modems[entry]; ok {
		return false
	}
	r.modems[entry] = modem
	return true
}

// AddTableEntry sets entry's modem, reporting false without
// modification if entry is already present.
func (r *Router) AddTableEntry(entry any, modem *InputModem) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.modems[entry]; ok {
		return false
	}
	r.modems[entry] = modem
	return true
}

// PopTableEntry removes and returns entry's modem, or nil if absent.
func (r *Router) PopTableEntry(entry any) *InputModem {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.modems[entry]
	if !ok {
		return nil
	}
	delete(r.modems, entry)
	return m
}

// Entries returns the table's current keys.
func (r *Router) Entries() []any {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]any, 0, len(r.modems))
	for k := range r.modems {
		out = append(out, k)
	}
	return out
}

// Modem returns entry's modem and whether it is present.
func (r *Router) Modem(entry any) (*InputModem, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.modems[entry]
	return m, ok
}

// Send processes one input via the active modem.
func (r *Router) Send(block bool) bool {
	r.mu.RLock()
	m := r.active
	r.mu.RUnlock()
	if m == nil {
		return false
	}
	return m.Send(block)
}

// Run processes inputs via the active modem while the Router is
// running, honoring the active modem at the start of each iteration
// (so SwitchGate takes effect on the next loop tick). Grounded on
// io/modem.py's InputRouter.run.
func (r *Router) Run() {
	r.wg.Add(1)
	defer r.wg.Done()
	for {
		select {
		case <-r.stop:
			return
		default:
		}
		if r.smoothness > 0 && !r.block {
			time.Sleep(r.smoothness)
		}
		r.Send(r.block)
	}
}

// Start launches Run in a background goroutine.
func (r *Router) Start() {
	r.stop = make(chan struct{})
	go r.Run()
}

// Stop signals Run to return and waits for it to do so.
func (r *Router) Stop() {
	close(r.stop)
	r.wg.Wait()
}
