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

// CharKind discriminates the character-event variants produced by the
// byte interpreter. The original models these as a str subclass
// hierarchy (Char/ASCII/UTF8/Space/Pasted); Go has no string subtyping,
// so a tag field stands in for isinstance dispatch.
type CharKind int

const (
	// KindASCII is a single printable ASCII byte (0x21-0x7e).
	KindASCII CharKind = iota
	// KindUTF8 is a decoded multi-byte UTF-8 sequence (lead byte 0xc2-0xf4).
	KindUTF8
	// KindSpace is a whitespace control byte: tab, linefeed, return, or
	// space (0x09, 0x0a, 0x0d, 0x20).
	KindSpace
	// KindPasted is the literal content delivered between bracketed-paste
	// start/end markers while DECPModeIds.BracketedPasteMode is enabled.
	KindPasted
)

func (k CharKind) String() string {
	switch k {
	case KindASCII:
		return "ASCII"
	case KindUTF8:
		return "UTF8"
	case KindSpace:
		return "Space"
	case KindPasted:
		return "Pasted"
	default:
		return "Char"
	}
}

// Char is a single decoded character event handed from the byte
// interpreter to a Binder. Text carries the character's (or, for
// Pasted, the whole paste buffer's) textual content.
type Char struct {
	Kind CharKind
	Text string
}

// String returns the character's textual content.
func (c Char) String() string { return c.Text }

// NewASCII builds a Char for a single printable ASCII byte.
func NewASCII(s string) Char { return Char{Kind: KindASCII, Text: s} }

// NewUTF8 builds a Char for a decoded multi-byte UTF-8 sequence.
func NewUTF8(s string) Char { return Char{Kind: KindUTF8, Text: s} }

// NewSpace builds a Char for a whitespace control byte. A carriage
// return is normalized to a linefeed, matching the original's
// replace("\r", "\n").
func NewSpace(s string) Char {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\r' {
			out = append(out, '\n')
		} else {
			out = append(out, s[i])
		}
	}
	return Char{Kind: KindSpace, Text: string(out)}
}

// NewPasted builds a Char carrying bracketed-paste content.
func NewPasted(s string) Char { return Char{Kind: KindPasted, Text: s} }
