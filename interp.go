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
	"strconv"
	"strings"
)

// Interpreter turns a raw input byte stream into typed events: Char,
// Key, Mouse, one of the Reply* types, or (for sequences it cannot
// classify any further) a generic EscSegment. It is fed one byte at a
// time; Feed returns the decoded event once a full unit has arrived, or
// reports that it needs more bytes otherwise.
//
// The zero value is not usable; construct with NewInterpreter.
type Interpreter struct {
	// EscSequences, when false, reports every ESC byte as a Ctrl key
	// instead of starting escape-sequence interpretation.
	EscSequences bool

	// ProtectedIntroducers reports whether a byte immediately following
	// ESC must always be treated as the start of a reply/keyboard/mouse
	// escape sequence rather than as Meta+key. Defaults to O, P, [, ]
	// (SS3, DCS, CSI, OSC).
	ProtectedIntroducers func(byte) bool

	// AcceptedMetaKeys reports whether a byte following ESC (that is
	// not a protected introducer) is accepted as a Meta/Alt keystroke.
	// Defaults to true for every byte.
	AcceptedMetaKeys func(byte) bool

	// SpaceTargets reports whether a byte should be reported as a Space
	// char instead of a Ctrl key. Defaults to true only for the literal
	// space byte (0x20); Tab, Linefeed, and Return are Ctrl by default.
	SpaceTargets func(byte) bool

	state    interpState
	buf      []byte
	appIntro byte
	sawESC   bool
	need     int

	mouseMode   byte
	mouseVals   []int
	mouseFields []int
	mouseDigit  strings.Builder
}

// NewInterpreter builds an Interpreter with the default configuration.
func NewInterpreter() *Interpreter {
	return &Interpreter{
		EscSequences:         true,
		ProtectedIntroducers: defaultProtectedIntroducers,
		AcceptedMetaKeys:     defaultAcceptedMetaKeys,
		SpaceTargets:         defaultSpaceTargets,
	}
}

func defaultProtectedIntroducers(b byte) bool {
	switch b {
	case 'O', 'P', '[', ']':
		return true
	}
	return false
}

func defaultAcceptedMetaKeys(b byte) bool { return true }

func defaultSpaceTargets(b byte) bool { return b == 0x20 }

type interpState int

const (
	stInit interpState = iota
	stUTF8
	stMetaUTF8
	stEsc
	stUnknownEsc
	stCSI
	stSS2
	stSS3
	stFsFpnF
	stDCS
	stOSC
	stAPP
	stMouseFixed
	stMouseSGR
	stBrPaste
)

var csiFinals = [][2]byte{{0x40, 0x7e}}
var ss3Finals = [][2]byte{{0x40, 0x7e}, {0x20, 0x20}}
var fsFpnFFinals = [][2]byte{{0x30, 0x7e}}
var unknownEscFinals = [][2]byte{{0x30, 0x7e}}

// Pending reports whether the interpreter is mid-sequence: Feed needs
// more bytes before it will return a complete event.
func (ip *Interpreter) Pending() bool { return ip.state != stInit }

// TimeoutEscape resolves a lone ESC byte that has been waiting with no
// follow-up byte into an Escape key event. Callers that track their
// own elapsed-time budget for manual ESC entry (see SuperModem) call
// this once that budget expires; it is a no-op reporting ok=false
// unless the interpreter is currently waiting immediately after a bare
// ESC, grounded on iosys/vtiinterpreter.py's ManualESC timeout.
func (ip *Interpreter) TimeoutEscape() (event any, ok bool) {
	if ip.state != stEsc {
		return nil, false
	}
	ip.reset()
	return NewEscEsc(), true
}

// Decode repeatedly calls next to obtain bytes until Feed produces a
// complete event, mirroring MainInterpreter.gen in the original.
func (ip *Interpreter) Decode(next func() (byte, error)) (any, error) {
	for {
		b, err := next()
		if err != nil {
			return nil, err
		}
		if ev, pending := ip.Feed(b); !pending {
			return ev, nil
		}
	}
}

// Feed advances the interpreter by one input byte. When a sequence
// completes it returns (event, false); otherwise it returns (nil, true)
// and the caller must call Feed again with the next byte.
func (ip *Interpreter) Feed(b byte) (any, bool) {
	switch ip.state {
	case stInit:
		return ip.feedInit(b)
	case stEsc:
		return ip.feedEsc(b)
	case stUnknownEsc:
		return ip.feedUnknownEsc(b)
	case stUTF8:
		return ip.feedUTF8(b)
	case stMetaUTF8:
		return ip.feedMetaUTF8(b)
	case stCSI:
		return ip.feedCSI(b)
	case stSS2:
		return ip.feedSS2(b)
	case stSS3:
		return ip.feedSS3(b)
	case stFsFpnF:
		return ip.feedFsFpnF(b)
	case stDCS, stOSC, stAPP:
		return ip.feedStringTerminated(b)
	case stMouseFixed:
		return ip.feedMouseFixed(b)
	case stMouseSGR:
		return ip.feedMouseSGR(b)
	case stBrPaste:
		return ip.feedBrPaste(b)
	}
	panic("vtcore: interpreter in unknown state")
}

func (ip *Interpreter) reset() {
	ip.state = stInit
	ip.buf = ip.buf[:0]
	ip.sawESC = false
	ip.need = 0
}

func intPtr(v int) *int { return &v }

// feedInit classifies the first byte of a new unit.
func (ip *Interpreter) feedInit(b byte) (any, bool) {
	switch {
	case b >= 0x21 && b <= 0x7e:
		return NewASCII(string(b)), false
	case b == 0x7f:
		return NewDelIns(intPtr(DelInsBackspace), modPtr(0)), false
	case b == 0x08:
		return NewDelIns(intPtr(DelInsBackspace), modPtr(ModCtrl)), false
	case ip.SpaceTargets(b):
		return NewSpace(string(b)), false
	case b >= 0xc2 && b <= 0xf4:
		ip.buf = append(ip.buf[:0], b)
		ip.need = utf8ContinuationCount(b)
		ip.state = stUTF8
		return nil, true
	case b == 0x1b && ip.EscSequences:
		ip.state = stEsc
		return nil, true
	default:
		return NewCtrlByte(b), false
	}
}

func utf8ContinuationCount(b byte) int {
	switch {
	case b >= 0xc2 && b <= 0xdf:
		return 1
	case b >= 0xe0 && b <= 0xef:
		return 2
	case b >= 0xf0 && b <= 0xf4:
		return 3
	}
	return 0
}

func (ip *Interpreter) feedUTF8(b byte) (any, bool) {
	ip.buf = append(ip.buf, b)
	ip.need--
	if ip.need > 0 {
		return nil, true
	}
	s := string(ip.buf)
	ip.reset()
	return NewUTF8(s), false
}

func (ip *Interpreter) feedMetaUTF8(b byte) (any, bool) {
	ip.buf = append(ip.buf, b)
	ip.need--
	if ip.need > 0 {
		return nil, true
	}
	s := string(ip.buf)
	ip.reset()
	return NewMeta(s), false
}

// feSingle are the Fe (C1) introducers that, alone, form a complete
// sequence producing a generic Fe segment.
var feSingle = map[byte]bool{
	'E': true, 'H': true, 'M': true, 'V': true, 'W': true, 'Z': true, '\\': true,
}

// fsFpnFSingle are the Fs/Fp/nF introducers that, alone, form a
// complete sequence.
var fsFpnFSingle = map[byte]bool{
	'n': true, 'o': true, '|': true, '}': true, '~': true,
	'6': true, '9': true, '7': true, '8': true, '=': true, '>': true,
	'c': true, 'l': true, 'm': true,
}

// escKeys are the HP/VT52 single-byte-after-ESC key sequences.
var escKeys = map[byte]Key{
	'A': NewNavKey(intPtr(NavUp), modPtr(0)),
	'B': NewNavKey(intPtr(NavDown), modPtr(0)),
	'C': NewNavKey(intPtr(NavRight), modPtr(0)),
	'D': NewNavKey(intPtr(NavLeft), modPtr(0)),
	'F': NewNavKey(intPtr(NavEnd), modPtr(0)),
	'J': NewDelIns(intPtr(DelInsHPClear), modPtr(0)),
	'Q': NewDelIns(intPtr(DelInsInsert), modPtr(0)),
	'R': NewKeyPad(KeyPadPF3),
	'S': NewNavKey(intPtr(NavPageDown), modPtr(0)),
	'T': NewNavKey(intPtr(NavPageUp), modPtr(0)),
	'h': NewNavKey(intPtr(NavHome), modPtr(0)),
}

// escKeys2 is the VT52 alternate-keypad/space table, keyed by the
// 2-byte sequence following ESC.
var escKeys2 = map[string]any{
	"? ": NewSpace(" "),
	"?I": NewSpace("\t"),
	"?M": NewSpace("\n"),
	"?j": NewKeyPad("*"),
	"?k": NewKeyPad("+"),
	"?l": NewKeyPad(","),
	"?m": NewKeyPad("-"),
	"?n": NewKeyPad("."),
	"?o": NewKeyPad("/"),
	"?p": NewKeyPad(0),
	"?q": NewKeyPad(1),
	"?r": NewKeyPad(2),
	"?s": NewKeyPad(3),
	"?t": NewKeyPad(4),
	"?u": NewKeyPad(5),
	"?v": NewKeyPad(6),
	"?w": NewKeyPad(7),
	"?x": NewKeyPad(8),
	"?y": NewKeyPad(9),
	"?X": NewKeyPad("="),
}

// ss3Keys is the SS3 space/keypad table.
var ss3Keys = map[string]any{
	" ": NewSpace(" "),
	"I": NewSpace("\t"),
	"M": NewSpace("\n"),
	"j": NewKeyPad("*"),
	"k": NewKeyPad("+"),
	"l": NewKeyPad(","),
	"m": NewKeyPad("-"),
	"n": NewKeyPad("."),
	"o": NewKeyPad("/"),
	"p": NewKeyPad(0),
	"q": NewKeyPad(1),
	"r": NewKeyPad(2),
	"s": NewKeyPad(3),
	"t": NewKeyPad(4),
	"u": NewKeyPad(5),
	"v": NewKeyPad(6),
	"w": NewKeyPad(7),
	"x": NewKeyPad(8),
	"y": NewKeyPad(9),
	"X": NewKeyPad("="),
}

// feedEsc classifies the byte immediately following ESC: a second ESC,
// a Meta/Alt keystroke, a single-byte Fs/Fp/nF or Fe or HP/VT52
// sequence, the start of a multi-byte Fs/Fp/nF sequence, the start of
// one of the SS2/SS3/CSI/DCS/OSC/APP sub-parsers, or (failing all of
// that) the start of the VT52 2-byte unknown-sequence lookahead.
func (ip *Interpreter) feedEsc(b byte) (any, bool) {
	if b == 0x1b {
		ip.reset()
		return NewEscEsc(), false
	}
	if !ip.ProtectedIntroducers(b) && ip.AcceptedMetaKeys(b) {
		switch {
		case b == 0x7f:
			ip.reset()
			return NewDelIns(intPtr(DelInsBackspace), modPtr(ModAlt)), false
		case b == 0x08:
			ip.reset()
			return NewDelIns(intPtr(DelInsBackspace), modPtr(ModCtrl.And(ModAlt))), false
		case b >= 0xc2 && b <= 0xf4:
			ip.buf = append(ip.buf[:0], b)
			ip.need = utf8ContinuationCount(b)
			ip.state = stMetaUTF8
			return nil, true
		default:
			ip.reset()
			return NewMeta(string(b)), false
		}
	}
	if fsFpnFSingle[b] {
		ip.reset()
		return NewFsFpnF(string(b)), false
	}
	if feSingle[b] {
		ip.reset()
		return NewFe(string(b)), false
	}
	if k, ok := escKeys[b]; ok {
		ip.reset()
		return k, false
	}
	if isFsFpnF(string(b), true) {
		ip.buf = append(ip.buf[:0], b)
		ip.state = stFsFpnF
		return nil, true
	}
	switch b {
	case 'N':
		ip.buf = ip.buf[:0]
		ip.state = stSS2
		return nil, true
	case 'O':
		ip.buf = ip.buf[:0]
		ip.state = stSS3
		return nil, true
	case '[':
		ip.buf = ip.buf[:0]
		ip.state = stCSI
		return nil, true
	case 'P':
		ip.buf = ip.buf[:0]
		ip.sawESC = false
		ip.state = stDCS
		return nil, true
	case ']':
		ip.buf = ip.buf[:0]
		ip.sawESC = false
		ip.state = stOSC
		return nil, true
	case 'X', '^', '_':
		ip.appIntro = b
		ip.buf = ip.buf[:0]
		ip.sawESC = false
		ip.state = stAPP
		return nil, true
	default:
		ip.buf = append(ip.buf[:0], b)
		ip.state = stUnknownEsc
		return nil, true
	}
}

// feedUnknownEsc collects one more byte after an ESC-introducer that
// matched none of the known single-byte or sub-parser tables, then
// resolves it against the VT52 2-byte table or falls back to an
// unclassified escape segment.
func (ip *Interpreter) feedUnknownEsc(b byte) (any, bool) {
	ip.buf = append(ip.buf, b)
	if !isFinal(b, unknownEscFinals) && b != 0x20 {
		return nil, true
	}
	seq := string(ip.buf)
	ip.reset()
	if ev, ok := escKeys2[seq]; ok {
		return ev, false
	}
	return NewUnknownESC(seq), false
}

func (ip *Interpreter) feedSS2(b byte) (any, bool) {
	ip.buf = append(ip.buf, b)
	if !isFinal(b, ss3Finals) {
		return nil, true
	}
	seq := string(ip.buf)
	ip.reset()
	return NewFe(seq), false
}

func (ip *Interpreter) feedSS3(b byte) (any, bool) {
	ip.buf = append(ip.buf, b)
	if !isFinal(b, ss3Finals) {
		return nil, true
	}
	seq := string(ip.buf)
	ip.reset()
	if k, ok := ss3Keys[seq]; ok {
		return k, false
	}
	if fkey, ok := fKeyGet(seq, 'O'); ok {
		return fkey, false
	}
	return NewSS3(seq), false
}

func (ip *Interpreter) feedFsFpnF(b byte) (any, bool) {
	ip.buf = append(ip.buf, b)
	if !isFinal(b, fsFpnFFinals) {
		return nil, true
	}
	seq := string(ip.buf)
	ip.reset()
	if isFsFpnF(seq, false) {
		return NewFsFpnF(seq), false
	}
	return NewUnknownESC(seq), false
}

// feedCSI accumulates a Control Sequence Introducer sequence. Mouse
// reporting and bracketed paste are both carried over CSI but parsed
// by dedicated sub-states; everything else falls through to the
// function-key table, the reply table, or a generic CSI segment.
func (ip *Interpreter) feedCSI(b byte) (any, bool) {
	if len(ip.buf) == 0 {
		switch b {
		case 'M', 't', 'T', '<':
			ip.startMouse(b)
			return nil, true
		}
	}
	ip.buf = append(ip.buf, b)
	if !isFinal(b, csiFinals) {
		return nil, true
	}
	seq := string(ip.buf)
	if seq == "200~" {
		ip.reset()
		ip.state = stBrPaste
		return nil, true
	}
	ip.reset()
	if fkey, ok := fKeyGet(seq, '['); ok {
		return fkey, false
	}
	if rep, ok := replyGet(seq, '['); ok {
		return rep, false
	}
	return NewCSI(seq), false
}

// feedStringTerminated accumulates the payload of a DCS/OSC/SOS/PM/APC
// sequence, all of which end with the two-byte string terminator ESC
// \\, tracked across separate Feed calls via sawESC.
func (ip *Interpreter) feedStringTerminated(b byte) (any, bool) {
	ip.buf = append(ip.buf, b)
	final := false
	if ip.sawESC {
		final = b == '\\'
		ip.sawESC = false
	} else if b == 0x1b {
		ip.sawESC = true
	}
	if !final {
		return nil, true
	}
	seq := string(ip.buf)
	payload := seq[:len(seq)-2]
	state := ip.state
	appIntro := ip.appIntro
	ip.reset()
	switch state {
	case stDCS:
		if rep, ok := replyGet(seq, 'P'); ok {
			return rep, false
		}
		return NewDCS(payload), false
	case stOSC:
		if rep, ok := replyGet(seq, ']'); ok {
			return rep, false
		}
		return NewOSC(payload), false
	default: // stAPP
		app, _ := NewAPP(AppIntro(appIntro), payload)
		return app, false
	}
}

// startMouse switches the interpreter into the mouse sub-parser
// selected by mode: 'M' (X10/legacy), 't'/'T' (highlight tracking), or
// '<' (SGR, terminated by 'm'/'M' rather than a fixed byte count).
func (ip *Interpreter) startMouse(mode byte) {
	ip.mouseMode = mode
	ip.mouseVals = ip.mouseVals[:0]
	ip.mouseFields = ip.mouseFields[:0]
	ip.mouseDigit.Reset()
	if mode == '<' {
		ip.state = stMouseSGR
	} else {
		ip.state = stMouseFixed
	}
}

func mouseFixedCount(mode byte) int {
	switch mode {
	case 'M':
		return 3
	case 't':
		return 2
	case 'T':
		return 6
	}
	return 0
}

func (ip *Interpreter) feedMouseFixed(b byte) (any, bool) {
	ip.mouseVals = append(ip.mouseVals, int(b)-32)
	if len(ip.mouseVals) < mouseFixedCount(ip.mouseMode) {
		return nil, true
	}
	var ev Mouse
	switch ip.mouseMode {
	case 'M':
		ev = buildMouse(ip.mouseVals[0], ip.mouseVals[1], ip.mouseVals[2])
	case 't':
		ev = buildMouse(ButtonLeftPress, ip.mouseVals[1], ip.mouseVals[0])
	case 'T':
		ev = buildMouseHighlight(
			ip.mouseVals[0], ip.mouseVals[2], ip.mouseVals[4],
			ip.mouseVals[1], ip.mouseVals[3], ip.mouseVals[5],
		)
	}
	ip.reset()
	return ev, false
}

func (ip *Interpreter) feedMouseSGR(b byte) (any, bool) {
	switch b {
	case ';':
		n, _ := strconv.Atoi(ip.mouseDigit.String())
		ip.mouseFields = append(ip.mouseFields, n)
		ip.mouseDigit.Reset()
		return nil, true
	case 'm', 'M':
		n, _ := strconv.Atoi(ip.mouseDigit.String())
		ip.mouseFields = append(ip.mouseFields, n)
		button, x, y := 0, 0, 0
		if len(ip.mouseFields) == 3 {
			button, x, y = ip.mouseFields[0], ip.mouseFields[1], n
		}
		if b == 'm' {
			button = ButtonRelease
		}
		ev := buildMouse(button, x, y)
		ip.reset()
		return ev, false
	default:
		ip.mouseDigit.WriteByte(b)
		return nil, true
	}
}

// mouseButtonBases and mouseButtonOffsets reconstruct the button/
// modifier pair from a raw mouse-report value: base is the plain
// button, offset is the modifier combination (matching MouseMod's own
// And-combination values).
var mouseButtonBases = []int{0, 1, 2, 3, 32, 33, 34, 35, 64, 65}
var mouseButtonOffsets = []int{0, 4, 8, 16, 12, 20, 24, 28}

func mouseGroup(raw int) (base int, mod MouseMod, ok bool) {
	for _, b := range mouseButtonBases {
		for _, off := range mouseButtonOffsets {
			if raw == b+off {
				return b, MouseMod(off), true
			}
		}
	}
	return 0, 0, false
}

func buildMouse(rawButton, x, y int) Mouse {
	base, mod, ok := mouseGroup(rawButton)
	if !ok {
		b, m := rawButton, MouseMod(-1)
		return Mouse{Button: &b, Mod: &m, X: AtCoord(ExactCoord(x)), Y: AtCoord(ExactCoord(y))}
	}
	return NewMouse(base, mod, x, y)
}

func buildMouseHighlight(y0, y1, y2, x0, x1, x2 int) Mouse {
	base, mod, _ := mouseGroup(ButtonLeftMove)
	return NewMouseHighlight(base, mod, x0, x1, x2, y0, y1, y2)
}

// feedBrPaste accumulates bracketed-paste content until the CSI 201 ~
// terminator arrives.
func (ip *Interpreter) feedBrPaste(b byte) (any, bool) {
	ip.buf = append(ip.buf, b)
	if b == '~' && len(ip.buf) >= 6 {
		tail := ip.buf[len(ip.buf)-6:]
		if tail[0] == 0x1b && string(tail[1:]) == "[201~" {
			payload := string(ip.buf[:len(ip.buf)-6])
			ip.reset()
			return NewPasted(payload), false
		}
	}
	return nil, true
}

// fKeyCharN1 lists, per introducer, the admissible CSI/SS3 final
// bytes for a function-key sequence.
var fKeyCharN1 = map[byte]map[byte]bool{
	'O': {'A': true, 'B': true, 'C': true, 'D': true, 'F': true, 'H': true, 'P': true, 'Q': true, 'R': true, 'S': true},
	'[': {
		'A': true, 'B': true, 'C': true, 'D': true, 'E': true, 'F': true, 'G': true, 'H': true,
		'I': true, 'L': true, 'P': true, 'Q': true, 'S': true, 'Z': true, 'z': true, '~': true,
	},
}

// fKeyTilz maps the numeric code preceding a CSI ~/z final byte to its
// key constructor.
var fKeyTilz = map[string]func(mod int) Key{
	"11": func(mod int) Key { return NewFKey(intPtr(1), modPtr(Mod(mod))) },
	"12": func(mod int) Key { return NewFKey(intPtr(2), modPtr(Mod(mod))) },
	"13": func(mod int) Key { return NewFKey(intPtr(3), modPtr(Mod(mod))) },
	"14": func(mod int) Key { return NewFKey(intPtr(4), modPtr(Mod(mod))) },
	"15": func(mod int) Key { return NewFKey(intPtr(5), modPtr(Mod(mod))) },
	"17": func(mod int) Key { return NewFKey(intPtr(6), modPtr(Mod(mod))) },
	"18": func(mod int) Key { return NewFKey(intPtr(7), modPtr(Mod(mod))) },
	"19": func(mod int) Key { return NewFKey(intPtr(8), modPtr(Mod(mod))) },
	"20": func(mod int) Key { return NewFKey(intPtr(9), modPtr(Mod(mod))) },
	"21": func(mod int) Key { return NewFKey(intPtr(10), modPtr(Mod(mod))) },
	"23": func(mod int) Key { return NewFKey(intPtr(11), modPtr(Mod(mod))) },
	"24": func(mod int) Key { return NewFKey(intPtr(12), modPtr(Mod(mod))) },
	"25": func(mod int) Key { return NewFKey(intPtr(13), modPtr(Mod(mod))) },
	"26": func(mod int) Key { return NewFKey(intPtr(14), modPtr(Mod(mod))) },
	"28": func(mod int) Key { return NewFKey(intPtr(15), modPtr(Mod(mod))) },
	"29": func(mod int) Key { return NewFKey(intPtr(16), modPtr(Mod(mod))) },
	"31": func(mod int) Key { return NewFKey(intPtr(17), modPtr(Mod(mod))) },
	"32": func(mod int) Key { return NewFKey(intPtr(18), modPtr(Mod(mod))) },
	"33": func(mod int) Key { return NewFKey(intPtr(19), modPtr(Mod(mod))) },
	"34": func(mod int) Key { return NewFKey(intPtr(20), modPtr(Mod(mod))) },
	"6":   func(mod int) Key { return NewNavKey(intPtr(NavPageDown), modPtr(Mod(mod))) },
	"5":   func(mod int) Key { return NewNavKey(intPtr(NavPageUp), modPtr(Mod(mod))) },
	"3":   func(mod int) Key { return NewDelIns(intPtr(DelInsDelete), modPtr(Mod(mod))) },
	"2":   func(mod int) Key { return NewDelIns(intPtr(DelInsInsert), modPtr(Mod(mod))) },
	"1":   func(mod int) Key { return NewNavKey(intPtr(NavHome), modPtr(Mod(mod))) },
	"4":   func(mod int) Key { return NewNavKey(intPtr(NavEnd), modPtr(Mod(mod))) },
	"214": func(mod int) Key { return NewNavKey(intPtr(NavHome), modPtr(Mod(mod))) },
	"220": func(mod int) Key { return NewNavKey(intPtr(NavEnd), modPtr(Mod(mod))) },
	"218": func(mod int) Key { return NewNavKey(intPtr(NavBegin), modPtr(Mod(mod))) },
	"222": func(mod int) Key { return NewNavKey(intPtr(NavPageDown), modPtr(Mod(mod))) },
	"216": func(mod int) Key { return NewNavKey(intPtr(NavPageUp), modPtr(Mod(mod))) },
	"196": func(mod int) Key { return NewFKey(intPtr(15), modPtr(Mod(mod))) },
	"197": func(mod int) Key { return NewFKey(intPtr(16), modPtr(Mod(mod))) },
}

// fKeyCap maps a single CSI/SS3 final byte directly to its key
// constructor (no numeric code prefix).
var fKeyCap = map[byte]func(mod int) Key{
	0x50: func(mod int) Key { return NewFKey(intPtr(1), modPtr(Mod(mod))) },
	0x51: func(mod int) Key { return NewFKey(intPtr(2), modPtr(Mod(mod))) },
	0x52: func(mod int) Key { return NewFKey(intPtr(3), modPtr(Mod(mod))) },
	0x53: func(mod int) Key { return NewFKey(intPtr(4), modPtr(Mod(mod))) },
	0x41: func(mod int) Key { return NewNavKey(intPtr(NavUp), modPtr(Mod(mod))) },
	0x42: func(mod int) Key { return NewNavKey(intPtr(NavDown), modPtr(Mod(mod))) },
	0x43: func(mod int) Key { return NewNavKey(intPtr(NavRight), modPtr(Mod(mod))) },
	0x44: func(mod int) Key { return NewNavKey(intPtr(NavLeft), modPtr(Mod(mod))) },
	0x48: func(mod int) Key { return NewNavKey(intPtr(NavHome), modPtr(Mod(mod))) },
	0x46: func(mod int) Key { return NewNavKey(intPtr(NavEnd), modPtr(Mod(mod))) },
	0x45: func(mod int) Key { return NewNavKey(intPtr(NavBegin), modPtr(Mod(mod))) },
	0x47: func(mod int) Key { return NewNavKey(intPtr(NavPageDown), modPtr(Mod(mod))) },
	0x49: func(mod int) Key { return NewNavKey(intPtr(NavPageUp), modPtr(Mod(mod))) },
	0x4c: func(mod int) Key { return NewDelIns(intPtr(DelInsInsert), modPtr(Mod(mod))) },
	0x5a: func(mod int) Key { return NewNavKey(intPtr(NavShiftTab), modPtr(Mod(mod))) },
}

// fKeyGet resolves a complete CSI or SS3 sequence (the accumulated
// bytes after the introducer, including the final byte) against the
// function-key tables. ok is false if seq is not a function-key
// sequence at all.
func fKeyGet(seq string, introducer byte) (Key, bool) {
	if seq == "" {
		return Key{}, false
	}
	last := seq[len(seq)-1]
	allowed := fKeyCharN1[introducer]
	if allowed == nil || !allowed[last] {
		return Key{}, false
	}
	if len(seq) >= 2 && seq[len(seq)-2] == '\'' {
		return Key{}, false // DECDC, not a function key
	}
	values := strings.Split(seq[:len(seq)-1], ";")
	if len(values) < 1 || len(values) > 3 {
		return Key{}, false
	}
	if len(values) == 3 {
		if values[0] != "27" {
			return Key{}, false
		}
		key, err1 := strconv.Atoi(values[2])
		mod, err2 := strconv.Atoi(values[1])
		if err1 != nil || err2 != nil {
			return Key{}, false
		}
		return NewModKey(intPtr(key), modPtr(Mod(mod))), true
	}
	if last == 'z' || last == '~' {
		fn, ok := fKeyTilz[values[0]]
		if !ok {
			return Key{}, false
		}
		mod := 0
		if len(values) == 2 {
			m, err := strconv.Atoi(values[1])
			if err != nil {
				return Key{}, false
			}
			mod = m
		}
		return fn(mod), true
	}
	if len(values) == 2 {
		fn, ok := fKeyCap[last]
		if !ok {
			return Key{}, false
		}
		m, err := strconv.Atoi(values[1])
		if err != nil {
			return Key{}, false
		}
		return fn(m), true
	}
	if len(seq) != 1 {
		return Key{}, false
	}
	fn, ok := fKeyCap[last]
	if !ok {
		return Key{}, false
	}
	mod := 0
	if last == 0x5a {
		mod = 2 // bare Shift-Tab is always reported with the shift modifier
	}
	return fn(mod), true
}

// replyGet resolves a complete CSI/DCS/OSC sequence (the accumulated
// bytes after the introducer, including any terminator) against the
// reply decoders, mirroring _ReplyInterpreter.get's priority order per
// introducer. The Reply* decoders expect the full sequence including
// its leading ESC and introducer byte, so that is reassembled here
// before each decode attempt. ok is false if seq is not a recognized
// reply, or fails to parse as one.
func replyGet(seq string, introducer byte) (any, bool) {
	full := "\x1b" + string(introducer) + seq
	switch introducer {
	case '[':
		return csiReplyGet(seq, full)
	case 'P':
		switch {
		case strings.Contains(seq, "!~"):
			if r, err := DecodeReplyCKS(full); err == nil {
				return r, true
			}
		case len(seq) > 1 && seq[0] == '!' && seq[1] == '|':
			if r, err := DecodeReplyTID(full); err == nil {
				return r, true
			}
		}
		return nil, false
	case ']':
		if r, err := DecodeReplyOSColor(full); err == nil {
			return r, true
		}
		return nil, false
	}
	return nil, false
}

func csiReplyGet(seq, full string) (any, bool) {
	if seq == "" {
		return nil, false
	}
	last := seq[len(seq)-1]
	switch {
	case seq[0] == '?':
		switch {
		case last == 'c':
			if r, err := DecodeReplyDA(full); err == nil {
				return r, true
			}
		case last == 'R':
			if r, err := DecodeReplyCP(full); err == nil {
				return r, true
			}
		case strings.HasSuffix(seq, "$y"):
			if r, err := DecodeReplyDECPM(full); err == nil {
				return r, true
			}
		}
	case seq[0] == '>':
		if last == 'c' {
			if r, err := DecodeReplyTIC(full); err == nil {
				return r, true
			}
		}
	case last == 'R':
		if r, err := DecodeReplyCP(full); err == nil {
			return r, true
		}
	case last == 't':
		if r, err := DecodeReplyWindow(full); err == nil {
			return r, true
		}
	}
	return nil, false
}
