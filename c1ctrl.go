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

import "strings"

// The four major classes of ECMA-35/48 escape sequence introducers the
// sequence constructors and byte interpreter agree on. ESC itself is never
// included in these constants; it is prepended by NewEsc.
const (
	esc = "\x1b"
	cr  = "[" // CSI introducer
	ss3 = "O" // SS3 introducer
	dcs = "P" // DCS introducer
	osc = "]" // OSC introducer
	st  = "\\"
)

// NewEsc builds the raw intro bytes for an Fe-style escape sequence:
// ESC followed by the concatenation of params.
func NewEsc(params ...string) string {
	return esc + strings.Join(params, "")
}

// NewFe builds a generic Fe (7-bit C1) escape sequence segment from a
// single introducer character, e.g. "D" for Index or "M" for Reverse Index.
func NewFe(c string) EscSegment {
	return NewSegment(NewEsc(c), "", "")
}

// NewCSI builds a Control Sequence Introducer segment: ESC [ params... as
// the intro, with an empty printable string and outro; the final byte is
// expected as part of params (e.g. "1A"). See NewCSIFull for explicit
// string/outro fields.
func NewCSI(params ...string) EscSegment {
	return NewSegment(NewEsc(append([]string{cr}, params...)...), "", "")
}

// NewCSIFull builds a CSI segment with explicit string/outro fields, for
// constructors (like SGR) that need a final byte appended as the outro.
func NewCSIFull(str, out string, params ...string) EscSegment {
	return NewSegment(NewEsc(append([]string{cr}, params...)...), str, out)
}

// NewSS3 builds a Single Shift 3 segment: ESC O params... .
func NewSS3(params ...string) EscSegment {
	return NewSegment(NewEsc(append([]string{ss3}, params...)...), "", "")
}

// NewDCS builds a Device Control String segment: the entire payload
// between ESC P and ESC \ is opaque (pure), per spec.md §3.
func NewDCS(escString string, params ...string) EscSegment {
	return NewPure(NewEsc(append([]string{dcs}, params...)...), escString, NewEsc(st))
}

// NewOSC builds an Operating System Command segment: ESC ] params ...
// escString ESC \ , opaque payload.
func NewOSC(escString string, params ...string) EscSegment {
	return NewPure(NewEsc(append([]string{osc}, params...)...), escString, NewEsc(st))
}

// AppIntro is the introducer character for an application-defined string
// sequence (SOS/PM/APC).
type AppIntro byte

const (
	AppSOS AppIntro = 'X'
	AppPM  AppIntro = '^'
	AppAPC AppIntro = '_'
)

// NewAPP builds a SOS/PM/APC segment: ESC <intro> params... escString ESC \.
// Returns false if intro is not one of AppSOS/AppPM/AppAPC.
func NewAPP(intro AppIntro, escString string, params ...string) (EscSegment, bool) {
	switch intro {
	case AppSOS, AppPM, AppAPC:
	default:
		return EscSegment{}, false
	}
	return NewPure(NewEsc(append([]string{string(intro)}, params...)...), escString, NewEsc(st)), true
}

// NewFsFpnF builds an Fs/Fp/nF escape sequence segment from its
// continuation bytes c (without the ESC prefix).
func NewFsFpnF(c string) EscSegment {
	return NewSegment(NewEsc(c), "", "")
}

// NewUnknownESC wraps a raw sequence (without the ESC prefix) the
// interpreter could not classify into any known sub-parser result.
func NewUnknownESC(seqs string) EscSegment { return NewFe(seqs) }

// NewManualESC wraps manually typed escape bytes (without the ESC
// prefix) as an Fe-style segment. The interpreter does not call it:
// Interpreter.TimeoutEscape reports a timed-out lone ESC as an EscEsc
// Key.
func NewManualESC(seqs string) EscSegment { return NewFe(seqs) }

// fsFpnFStruc maps each possible Fs/Fp/nF introducer character to the set
// of admissible continuation strings (grounded on c1ctrl.py's FsFpnFStruc).
var fsFpnFStruc = map[byte][]string{
	' ': {"F", "G", "L", "M", "N"},
	'#': {"3", "4", "5", "6", "8"},
	'%': {"@", "G"},
	'-': {"A", "", "F", "H", "L", "M"},
	'.': {"A", "", "F", "H", "L", "M"},
	'/': {"A", "", "F", "H", "L", "M"},
	'6': {""}, '7': {""}, '8': {""}, '9': {""}, '=': {""}, '>': {""},
	'c': {""}, 'l': {""}, 'm': {""}, 'n': {""}, 'o': {""}, '|': {""}, '}': {""}, '~': {""},
}

// fsFpnFParenIntros are the introducers sharing the '()*+' continuation
// table from c1ctrl.py.
var fsFpnFParenIntros = map[byte]bool{'(': true, ')': true, '*': true, '+': true}

var fsFpnFParenContinuations = []string{
	"A", "", "C", "5", "H", "7", "K", "Q", "9", "R", "f", "y", "Z", "4", `">`, "%2", "%6", "%=",
	"=", "`", "E", "6", "0", "<", ">", `"4`, `"?`, "%0", "%5", "&4", "%3", "&5",
}

// isFsFpnF reports whether seqs (without the ESC prefix) is a complete
// Fs/Fp/nF sequence, or just matches an admissible introducer when
// introOnly is set.
func isFsFpnF(seqs string, introOnly bool) bool {
	if seqs == "" {
		return false
	}
	intro := seqs[0]
	rest := seqs[1:]
	if fsFpnFParenIntros[intro] {
		if introOnly {
			return true
		}
		for _, c := range fsFpnFParenContinuations {
			if c == rest {
				return true
			}
		}
		return false
	}
	if conts, ok := fsFpnFStruc[intro]; ok {
		if introOnly {
			return true
		}
		for _, c := range conts {
			if c == rest {
				return true
			}
		}
		return false
	}
	return false
}

// isFinal reports whether b falls in one of the given inclusive byte
// ranges (min, max pairs).
func isFinal(b byte, ranges [][2]byte) bool {
	for _, r := range ranges {
		if b >= r[0] && b <= r[1] {
			return true
		}
	}
	return false
}

var feSingleByteIntros = map[byte]bool{
	'D': true, 'E': true, 'F': true, 'H': true, 'M': true, 'V': true, 'W': true, 'Z': true,
}

// isFe reports whether seqs (without ESC) is a complete Fe sequence, or
// just matches an admissible Fe introducer when introOnly is set.
func isFe(seqs string, introOnly bool) bool {
	if seqs == "" {
		return false
	}
	intro := seqs[0]
	if feSingleByteIntros[intro] {
		return true
	}
	if intro == 'N' || intro == 'O' {
		if introOnly {
			return true
		}
		if len(seqs) < 2 {
			return false
		}
		last := seqs[len(seqs)-1]
		return isFinal(last, [][2]byte{{0x40, 0x7e}}) || last == 0x20
	}
	if intro == '[' {
		if introOnly {
			return true
		}
		if len(seqs) < 2 {
			return false
		}
		return isFinal(seqs[len(seqs)-1], [][2]byte{{0x40, 0x7e}})
	}
	switch intro {
	case 'P', 'X', ']', '\\', '^', '_':
		if introOnly {
			return true
		}
		if len(seqs) < 2 {
			return false
		}
		return seqs[len(seqs)-2] == 0x1b && seqs[len(seqs)-1] == '\\'
	}
	return false
}
