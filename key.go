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
	"fmt"
	"runtime"
)

// KeyKind discriminates the key-event variants produced by the byte
// interpreter. The original gives each kind its own Key subclass with
// an overridden __eq__; Go has no operator overloading, so every kind
// shares the Key struct below and dispatches on Kind instead.
type KeyKind int

const (
	KindNavKey KeyKind = iota
	KindModKey
	KindKeyPad
	KindDelIns
	KindFKey
	KindEscEsc
	KindCtrl
	KindMeta
)

func (k KeyKind) String() string {
	switch k {
	case KindNavKey:
		return "NavKey"
	case KindModKey:
		return "ModKey"
	case KindKeyPad:
		return "KeyPad"
	case KindDelIns:
		return "DelIns"
	case KindFKey:
		return "FKey"
	case KindEscEsc:
		return "EscEsc"
	case KindCtrl:
		return "Ctrl"
	case KindMeta:
		return "Meta"
	default:
		return "Key"
	}
}

// Mod is a key modifier value as reported by xterm's PC-style
// modifyOtherKeys parameter.
type Mod int

const (
	ModShift Mod = 2
	ModAlt   Mod = 3
	ModCtrl  Mod = 5
	ModMeta  Mod = 9
)

// And combines two single modifiers into the value xterm sends for
// pressing both at once, e.g. ModShift.And(ModCtrl) for shift+ctrl.
func (m Mod) And(other Mod) Mod { return m + other - 1 }

// modCombos lists, for each single modifier, every combined value that
// includes it (mirrors the original's _MOD_COLLECTION).
var modCombos = map[Mod][]Mod{
	ModShift: {2, 4, 6, 8, 10, 12, 14, 16},
	ModAlt:   {3, 4, 7, 8, 11, 12, 15, 16},
	ModCtrl:  {5, 6, 7, 8, 13, 14, 15, 16},
	ModMeta:  {9, 10, 11, 12, 13, 14, 15, 16},
}

// Has reports whether the combined modifier m includes the single
// component modifier, e.g. ModShift.And(ModCtrl).Has(ModShift).
func (m Mod) Has(component Mod) bool {
	for _, v := range modCombos[component] {
		if v == m {
			return true
		}
	}
	return false
}

// NavKey KEY values: arrow keys, cursor navigation, page up/down,
// shift-tab. Pos1/End are usually reported as NavHome/NavEnd.
const (
	NavRight    = 1
	NavLeft     = -1
	NavUp       = -2
	NavDown     = 2
	NavHome     = -3
	NavEnd      = 3
	NavBegin    = -4
	NavPageDown = 6
	NavPageUp   = -6
	NavShiftTab = 9
)

// KeyPad KEY values for the four programmable function keys. Digits are
// carried as their int value instead, and the decimal point, comma, and
// arithmetic operators as their one-character string.
const (
	KeyPadPF1 = -1
	KeyPadPF2 = -2
	KeyPadPF3 = -3
	KeyPadPF4 = -4
)

// DelIns KEY values.
const (
	DelInsInsert    = 1
	DelInsBackspace = 0
	DelInsDelete    = -1
	DelInsHPClear   = -11
)

// EscEscCode is the sentinel KEY and MOD value reported for a double
// ESC press (also sent by ctrl+alt/meta+3, +[, and +{ on Unix).
const EscEscCode = 2727

// Key is either a keystroke event produced by the byte interpreter or
// a match pattern built by hand for a Binder; the two play the same
// role the original's reference-object pattern does. Key and Mod are
// nil wildcards: a nil Key field, or a nil Mod, matches anything on
// the other side of Matches.
type Key struct {
	Kind KeyKind
	Key  any // int or string, depending on Kind; nil is a wildcard
	Mod  *Mod
}

// Matches reports whether event (concrete data from the interpreter)
// satisfies pattern (typically hand-built for a Binder). A nil Key or
// Mod field on either side is treated as "matches anything".
func (pattern Key) Matches(event Key) bool {
	if pattern.Kind != event.Kind {
		return false
	}
	if pattern.Key != nil && event.Key != nil && pattern.Key != event.Key {
		return false
	}
	if pattern.Mod != nil && event.Mod != nil && *pattern.Mod != *event.Mod {
		return false
	}
	return true
}

func (k Key) String() string {
	mod := "*"
	if k.Mod != nil {
		mod = fmt.Sprintf("%d", *k.Mod)
	}
	key := "*"
	if k.Key != nil {
		key = fmt.Sprintf("%v", k.Key)
	}
	return fmt.Sprintf("<%s %s %s>", k.Kind, key, mod)
}

func modPtr(m Mod) *Mod { return &m }

// NewNavKey builds a navigation key event/pattern. A key of nil matches
// any NavKey value; a mod of nil matches any modifier.
func NewNavKey(key *int, mod *Mod) Key { return Key{Kind: KindNavKey, Key: intAny(key), Mod: mod} }

// NewModKey builds a "modifyOtherKeys" event/pattern. KEY is the plain
// ASCII value (optionally +128).
func NewModKey(key *int, mod *Mod) Key { return Key{Kind: KindModKey, Key: intAny(key), Mod: mod} }

// NewKeyPad builds a keypad key event/pattern. key is an int (one of
// the KeyPadPF* constants or a digit) or a string ("+", "-", "*", "/",
// "=", ".", ","). Keypad keys carry no modifier.
func NewKeyPad(key any) Key { return Key{Kind: KindKeyPad, Key: key} }

// NewDelIns builds a delete/insert/backspace key event/pattern.
func NewDelIns(key *int, mod *Mod) Key { return Key{Kind: KindDelIns, Key: intAny(key), Mod: mod} }

// NewFKey builds a function key (F1-F20) event/pattern.
func NewFKey(key *int, mod *Mod) Key { return Key{Kind: KindFKey, Key: intAny(key), Mod: mod} }

// NewEscEsc builds the double-ESC key event.
func NewEscEsc() Key { return Key{Kind: KindEscEsc, Key: EscEscCode, Mod: modPtr(EscEscCode)} }

// ctrlAlias maps Ctrl's convenience key names to the control letter
// xterm actually sends.
var ctrlAlias = map[byte]string{'t': "I", 's': "`"}

func init() {
	if runtime.GOOS == "windows" {
		ctrlAlias['e'] = "M"
	} else {
		ctrlAlias['e'] = "J"
	}
}

// NewCtrl builds an ASCII control-character key event/pattern. key is
// the shifted control letter ("A"-"Z", "\\", "]", "^", "_", "`", "@"),
// or one of the aliases "tab", "enter", "space". An empty key matches
// any Ctrl value.
func NewCtrl(key string) Key {
	if key == "" {
		return Key{Kind: KindCtrl}
	}
	if alias, ok := ctrlAlias[key[0]]; ok {
		key = alias
	}
	mod := Mod(key[0]) - 64
	return Key{Kind: KindCtrl, Key: key, Mod: &mod}
}

// NewCtrlByte builds a Ctrl key event from the raw control byte read
// off the wire (0-31).
func NewCtrlByte(b byte) Key {
	ch := string(rune(b) + 64)
	mod := Mod(b)
	return Key{Kind: KindCtrl, Key: ch, Mod: &mod}
}

// NewMeta builds a Meta/Alt key event/pattern from a UTF rune. An empty
// key matches any Meta value. Shifted characters are passed through as
// such, so Meta is case sensitive ("a" vs "A").
func NewMeta(key string) Key {
	if key == "" {
		return Key{Kind: KindMeta}
	}
	r := []rune(key)[0]
	mod := Mod(r)
	return Key{Kind: KindMeta, Key: key, Mod: &mod}
}

// NewMetaFromCtrl builds a Meta key event for a ctrl+alt/meta
// combination, e.g. NewMetaFromCtrl(NewCtrl("A")) for ctrl+alt+a. ctrl
// must not be a wildcard Ctrl pattern.
func NewMetaFromCtrl(ctrl Key) (Key, error) {
	if ctrl.Mod == nil {
		return Key{}, &FormatError{Reason: "a wildcard Ctrl key cannot be used to build a Meta key"}
	}
	r := rune(*ctrl.Mod)
	mod := Mod(r)
	return Key{Kind: KindMeta, Key: string(r), Mod: &mod}, nil
}

func intAny(p *int) any {
	if p == nil {
		return nil
	}
	return *p
}
