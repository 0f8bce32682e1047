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

// Package termmode is the terminal-mode toggle collaborator spec.md 6
// describes as an "external wrapper": non-blocking stdin, no line
// buffering, no echo, no implementation-defined interpretation of
// control characters, plus (on Windows) virtual-terminal input/output.
// Grounded on iosys/vtermios.py's ModItem/ModItemsHandle design and
// cross-checked against tcell's tty.Tty Start/Stop/Drain lifecycle
// contract for the idiomatic Go shape of a raw-mode toggle. Carried as
// an ambient concern per SPEC_FULL.md 0 so the module is runnable
// standalone rather than merely specifying the collaborator's contract.
package termmode

import (
	"log"
	"sync"
)

// Handle is a single capability request's undo action. Reset restores
// exactly the delta this request applied; it is safe to call more than
// once.
type Handle struct {
	name string
	once sync.Once
	undo func() error
}

func newHandle(name string, undo func() error) *Handle {
	return &Handle{name: name, undo: undo}
}

// Reset reverses the modification this Handle applied.
func (h *Handle) Reset() error {
	if h == nil {
		return nil
	}
	var err error
	h.once.Do(func() {
		if h.undo != nil {
			err = h.undo()
		}
	})
	return err
}

// String reports the capability name, for diagnostics.
func (h *Handle) String() string { return h.name }

var (
	exitMu    sync.Mutex
	exitHooks []*Handle
)

// RegisterExit adds h to the process-exit reset list consulted by
// ResetAll. Grounded on vtermios.py's atexit-style reset registration,
// which SPEC_FULL.md 9's DECPMHandler mirrors for DEC private modes;
// this is the terminal-mode-toggle analogue, per spec.md 5's "Resource
// scoping".
func (h *Handle) RegisterExit() {
	exitMu.Lock()
	defer exitMu.Unlock()
	exitHooks = append(exitHooks, h)
}

// ResetAll reverses every Handle registered via RegisterExit, most
// recently registered first, then clears the registry. Intended to run
// from a deferred call in main or a shutdown signal handler. A restore
// failure is reported with log.Printf and does not stop the remaining
// handles from being reset; see DESIGN.md for why no third-party
// structured logger is wired in here.
func ResetAll() {
	exitMu.Lock()
	hooks := exitHooks
	exitHooks = nil
	exitMu.Unlock()
	for i := len(hooks) - 1; i >= 0; i-- {
		if err := hooks[i].Reset(); err != nil {
			log.Printf("termmode: failed to restore %s: %v", hooks[i], err)
		}
	}
}

// Mode is the platform collaborator for one open terminal file
// descriptor. Open returns a Mode appropriate to the build's GOOS.
type Mode interface {
	// NonBlockingInput arranges for reads to return immediately with
	// whatever bytes are available (VMIN=0, VTIME=0 on POSIX).
	NonBlockingInput() (*Handle, error)
	// NoLineBuffering disables canonical (line-at-a-time) input mode.
	NoLineBuffering() (*Handle, error)
	// NoEcho disables the terminal's own echo of typed input.
	NoEcho() (*Handle, error)
	// NoControlInterpretation disables implementation-defined handling
	// of control characters (signal-generating keys, flow control,
	// extended input processing, output post-processing).
	NoControlInterpretation() (*Handle, error)
	// EnableVirtualTerminal turns on ANSI/VT escape interpretation on
	// platforms that need an explicit opt-in (Windows consoles); a
	// no-op elsewhere.
	EnableVirtualTerminal() (*Handle, error)
}
