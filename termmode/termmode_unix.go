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

//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package termmode

import (
	"fmt"
	"sync"

	"golang.org/x/sys/unix"
)

// posixMode manipulates one fd's termios state directly via
// golang.org/x/sys/unix, grounded on iosys/vtermios.py's POSIX branch:
// mod_nonecho clears ECHO, mod_nonblock clears ICANON, mod_nonprocess
// clears ISIG/IXON, mod_nonimpldef clears OPOST/IEXTEN.
type posixMode struct {
	mu sync.Mutex
	fd int
}

// Open returns the Mode collaborator for the POSIX file descriptor fd
// (typically os.Stdin.Fd()).
func Open(fd int) (Mode, error) {
	if _, err := unix.IoctlGetTermios(fd, ioctlGetTermios); err != nil {
		return nil, fmt.Errorf("termmode: %w", err)
	}
	return &posixMode{fd: fd}, nil
}

func (m *posixMode) get() (*unix.Termios, error) {
	return unix.IoctlGetTermios(m.fd, ioctlGetTermios)
}

func (m *posixMode) set(t *unix.Termios) error {
	return unix.IoctlSetTermios(m.fd, ioctlSetTermios, t)
}

// withFlag saves the current termios, applies mutate, and returns a
// Handle whose Reset restores the saved state verbatim -- the same
// save-before-mutate discipline as vtermios.py's ModItem.
func (m *posixMode) withFlag(name string, mutate func(t *unix.Termios)) (*Handle, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	saved, err := m.get()
	if err != nil {
		return nil, fmt.Errorf("termmode: get termios: %w", err)
	}
	next := *saved
	mutate(&next)
	if err := m.set(&next); err != nil {
		return nil, fmt.Errorf("termmode: set termios: %w", err)
	}
	restore := *saved
	return newHandle(name, func() error {
		m.mu.Lock()
		defer m.mu.Unlock()
		return m.set(&restore)
	}), nil
}

func (m *posixMode) NonBlockingInput() (*Handle, error) {
	return m.withFlag("non-blocking", func(t *unix.Termios) {
		t.Cc[unix.VMIN] = 0
		t.Cc[unix.VTIME] = 0
	})
}

func (m *posixMode) NoLineBuffering() (*Handle, error) {
	return m.withFlag("no-line-buffering", func(t *unix.Termios) {
		t.Lflag &^= unix.ICANON
	})
}

func (m *posixMode) NoEcho() (*Handle, error) {
	return m.withFlag("no-echo", func(t *unix.Termios) {
		t.Lflag &^= unix.ECHO
	})
}

func (m *posixMode) NoControlInterpretation() (*Handle, error) {
	return m.withFlag("no-control-interpretation", func(t *unix.Termios) {
		t.Lflag &^= unix.ISIG | unix.IEXTEN
		t.Iflag &^= unix.IXON
		t.Oflag &^= unix.OPOST
	})
}

func (m *posixMode) EnableVirtualTerminal() (*Handle, error) {
	return newHandle("enable-virtual-terminal", func() error { return nil }), nil
}
