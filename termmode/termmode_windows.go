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

package termmode

import (
	"fmt"
	"sync"

	"golang.org/x/sys/windows"
)

// Windows has no termios; the same four capability requests map onto
// console input/output mode flags. Grounded on iosys/vtermios.py's
// Windows branch (CMD_ENABLE_ECHO_INPUT etc.) cross-checked against
// tcell's tscreen_windows.go for the SetConsoleMode/GetConsoleMode
// idiom.
const (
	enableVirtualTerminalInput  = 0x0200
	enableVirtualTerminalOutput = 0x0004
)

type windowsMode struct {
	mu     sync.Mutex
	handle windows.Handle
}

// Open returns the Mode collaborator for the Windows console handle h
// (typically windows.Handle(os.Stdin.Fd())).
func Open(h windows.Handle) (Mode, error) {
	var mode uint32
	if err := windows.GetConsoleMode(h, &mode); err != nil {
		return nil, fmt.Errorf("termmode: %w", err)
	}
	return &windowsMode{handle: h}, nil
}

func (m *windowsMode) withFlag(name string, mask uint32, clear bool) (*Handle, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var saved uint32
	if err := windows.GetConsoleMode(m.handle, &saved); err != nil {
		return nil, fmt.Errorf("termmode: get console mode: %w", err)
	}
	next := saved
	if clear {
		next &^= mask
	} else {
		next |= mask
	}
	if err := windows.SetConsoleMode(m.handle, next); err != nil {
		return nil, fmt.Errorf("termmode: set console mode: %w", err)
	}
	return newHandle(name, func() error {
		m.mu.Lock()
		defer m.mu.Unlock()
		return windows.SetConsoleMode(m.handle, saved)
	}), nil
}

func (m *windowsMode) NonBlockingInput() (*Handle, error) {
	// ReadFile on a Windows console handle already returns as soon as
	// an input record is available; there is no termios VMIN/VTIME
	// analogue to toggle.
	return newHandle("non-blocking", func() error { return nil }), nil
}

func (m *windowsMode) NoLineBuffering() (*Handle, error) {
	return m.withFlag("no-line-buffering", windows.ENABLE_LINE_INPUT, true)
}

func (m *windowsMode) NoEcho() (*Handle, error) {
	return m.withFlag("no-echo", windows.ENABLE_ECHO_INPUT, true)
}

func (m *windowsMode) NoControlInterpretation() (*Handle, error) {
	return m.withFlag("no-control-interpretation", windows.ENABLE_PROCESSED_INPUT, true)
}

func (m *windowsMode) EnableVirtualTerminal() (*Handle, error) {
	return m.withFlag("enable-virtual-terminal", enableVirtualTerminalInput|enableVirtualTerminalOutput, false)
}
