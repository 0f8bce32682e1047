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

// Package vtcore provides a lower-level, portable API for interpreting VT
// input byte streams into typed events, composing escape sequences without
// corrupting embedded control bytes, and dispatching events to callbacks.
//
// It is the core of a full-screen TUI framework: the byte interpreter (see
// Interpreter), the escape-sequence composition layer (see EscSegment and
// EscContainer), and the binder/router dispatch layer (see Binder and
// Router). Grid/cell layout lives in the sibling layout package.
package vtcore

import (
	"fmt"
	"strconv"
	"strings"
)

// EscSegment is an immutable triple of (intro, string, outro): the opening
// escape bytes, the printable text, and the closing escape bytes. Its
// printable length (Len) is tracked independently of its on-wire byte
// length (AbsLen), so that callers can truncate or pad colored text to a
// column width without corrupting the escape state.
//
// A "pure" segment (constructed by NewPure, used for string-terminated
// escapes such as DCS/OSC/APP payloads) treats its entire payload as
// non-printable: Len() reports 0 even though the payload is non-empty.
//
// EscSegment values are immutable; every method that would "mutate" one
// returns a new value.
type EscSegment struct {
	intro  string
	string string
	outro  string
	pure   bool // true if constructed via NewPure: Len() is always 0
}

// NewSegment builds an EscSegment from its three fields directly.
func NewSegment(intro, str, outro string) EscSegment {
	return EscSegment{intro: intro, string: str, outro: outro}
}

// NewPure builds an EscSegment for string-terminated escapes (DCS/OSC/APP)
// whose entire payload is opaque: the printable length is 0 regardless of
// the payload content.
func NewPure(intro, payload, outro string) EscSegment {
	return EscSegment{intro: intro, string: payload, outro: outro, pure: true}
}

// Intro returns the opening escape bytes.
func (s EscSegment) Intro() string { return s.intro }

// Str returns the printable string field.
func (s EscSegment) Str() string { return s.string }

// Outro returns the closing escape bytes.
func (s EscSegment) Outro() string { return s.outro }

// Len returns the length of the printable string, excluding escape
// sequences. For a pure segment this is always 0.
func (s EscSegment) Len() int {
	if s.pure {
		return 0
	}
	return len(s.string)
}

// EscLen returns the combined byte length of the intro and outro escape
// fields. For a pure segment the opaque payload is counted here as well.
func (s EscSegment) EscLen() int {
	if s.pure {
		return len(s.intro) + len(s.string) + len(s.outro)
	}
	return len(s.intro) + len(s.outro)
}

// AbsLen returns the real on-wire data length, including escape sequences.
func (s EscSegment) AbsLen() int { return s.Len() + s.EscLen() }

// Bytes returns the on-wire byte form: intro+string+outro.
func (s EscSegment) Bytes() string { return s.intro + s.string + s.outro }

// String implements fmt.Stringer, returning the on-wire byte form.
func (s EscSegment) String() string { return s.Bytes() }

// HasEscape reports whether either escape field is non-empty.
func (s EscSegment) HasEscape() bool { return s.intro != "" || s.outro != "" }

// IsZero reports whether all three fields are empty.
func (s EscSegment) IsZero() bool { return s.intro == "" && s.string == "" && s.outro == "" }

// Wrap returns a new segment with prefix prepended to intro (or, if inner
// is true, appended to intro) and suffix appended to outro (or, if inner,
// prepended to outro).
func (s EscSegment) Wrap(prefix, suffix string, inner bool) EscSegment {
	if inner {
		return EscSegment{intro: s.intro + prefix, string: s.string, outro: suffix + s.outro, pure: s.pure}
	}
	return EscSegment{intro: prefix + s.intro, string: s.string, outro: s.outro + suffix, pure: s.pure}
}

// And appends to the printable string and returns a new segment. Mirrors
// the original's "eseg & str" operator.
func (s EscSegment) And(str string) EscSegment {
	return EscSegment{intro: s.intro, string: s.string + str, outro: s.outro, pure: s.pure}
}

// Concat concatenates s with another value (string, EscSegment, or
// EscContainer) and returns an EscContainer. No merging is attempted; see
// Assimilate for the merging form.
func (s EscSegment) Concat(other any) EscContainer {
	return NewContainer(s).Concat(other)
}

// Assimilate merges s with other at the segment boundary when both sides
// carry no escape fields, or when their intro/outro pair is identical;
// otherwise it appends other as a new segment. This reduces container
// growth compared to Concat, at higher per-call cost, and should be
// reserved for hot paths that concatenate many plain-string fragments.
func (s EscSegment) Assimilate(other any) EscContainer {
	switch o := other.(type) {
	case string:
		if o == "" {
			return NewContainer(s)
		}
		if s.outro != "" {
			return s.Concat(o)
		}
		return NewContainer(s.And(o))
	case EscSegment:
		if o.IsZero() {
			return NewContainer(s)
		}
		if s.outro != "" || o.intro != "" {
			if s.intro == o.intro && s.outro == o.outro {
				return NewContainer(s.And(o.string))
			}
			return s.Concat(o)
		}
		return NewContainer(s.And(o.string).Wrap("", o.outro, false))
	case EscContainer:
		return NewContainer(s).Assimilate(o)
	default:
		panic("vtcore: Assimilate requires string, EscSegment, or EscContainer")
	}
}

// Slice returns the substring of the printable string from start to stop
// (half-open), preserving the escape fields. Out-of-range bounds are
// clamped to an empty printable string rather than panicking, matching the
// original's out-of-range-yields-empty contract. Pure segments always
// yield an empty printable string.
func (s EscSegment) Slice(start, stop int) EscSegment {
	n := s.Len()
	if start < 0 {
		start += n
	}
	if stop < 0 {
		stop += n
	}
	if start < 0 {
		start = 0
	}
	if stop > n {
		stop = n
	}
	if start >= stop || start >= n {
		return EscSegment{intro: s.intro, string: "", outro: s.outro, pure: s.pure}
	}
	return EscSegment{intro: s.intro, string: s.string[start:stop], outro: s.outro, pure: s.pure}
}

// At returns the single-byte slice at printable byte index i.
func (s EscSegment) At(i int) EscSegment { return s.Slice(i, i+1) }

// escFormatWidth parses a printf-style width specifier's numeric portion.
func escFormatWidth(spec string) (int, bool) {
	if spec == "" {
		return 0, false
	}
	n, err := strconv.Atoi(spec)
	return n, err == nil
}

// Format performs printf-style substitution inside the printable string
// field. If an argument is an EscSegment or EscContainer, its EscLen() is
// added to any width specifier of the form "%-Ns" or "%+Ns" before
// applying, so that visual column alignment is preserved post-render. Only
// the "s" conversion and the "-"/"+" flags are admissible for such
// arguments; any other flag or conversion returns an error wrapping
// ErrFormat.
func (s EscSegment) Format(args ...any) (EscSegment, error) {
	out, _, err := formatPrintf(s.string, args)
	if err != nil {
		return EscSegment{}, err
	}
	return EscSegment{intro: s.intro, string: out, outro: s.outro, pure: s.pure}, nil
}

// printfDirective describes one %-directive matched in a format string.
type printfDirective struct {
	full  string
	flags string
	width string
	verb  byte
	start int
	end   int
}

// scanPrintfDirectives finds all %-style directives in s (skipping escaped
// "%%" pairs), grounded on the original's _PRINTF_RE scanner.
func scanPrintfDirectives(s string) []printfDirective {
	var out []printfDirective
	i := 0
	for i < len(s) {
		if s[i] != '%' {
			i++
			continue
		}
		j := i + 1
		if j < len(s) && s[j] == '%' {
			i = j + 1
			continue
		}
		flagsStart := j
		for j < len(s) && strings.ContainsRune(" +#0-", rune(s[j])) {
			j++
		}
		flags := s[flagsStart:j]
		widthStart := j
		for j < len(s) && s[j] >= '0' && s[j] <= '9' {
			j++
		}
		width := s[widthStart:j]
		if j >= len(s) {
			break
		}
		verb := s[j]
		j++
		out = append(out, printfDirective{
			full:  s[i:j],
			flags: flags,
			width: width,
			verb:  verb,
			start: i,
			end:   j,
		})
		i = j
	}
	return out
}

// formatPrintf substitutes args into the %-directives of s left to right.
// It returns the substituted string and whether any argument was an
// escape-valued (EscSegment/EscContainer) value.
func formatPrintf(s string, args []any) (string, bool, error) {
	directives := scanPrintfDirectives(s)
	if len(directives) != len(args) {
		return "", false, &FormatError{Reason: "argument count does not match format directive count"}
	}
	hasEsc := false
	var b strings.Builder
	prev := 0
	for idx, d := range directives {
		b.WriteString(s[prev:d.start])
		prev = d.end
		arg := args[idx]
		verb := string(d.verb)
		switch v := arg.(type) {
		case EscSegment:
			hasEsc = true
			rendered, err := escArgRender(d, v.Bytes(), v.EscLen())
			if err != nil {
				return "", false, err
			}
			b.WriteString(rendered)
		case EscContainer:
			hasEsc = true
			rendered, err := escArgRender(d, v.Bytes(), v.EscLen())
			if err != nil {
				return "", false, err
			}
			b.WriteString(rendered)
		default:
			rendered, err := plainArgRender(d, verb, arg)
			if err != nil {
				return "", false, err
			}
			b.WriteString(rendered)
		}
	}
	b.WriteString(s[prev:])
	return b.String(), hasEsc, nil
}

// escArgRender renders an escape-valued format argument. Only "s" with
// "-"/"+" flags (or no flag) is admissible; a width specifier is widened
// by escLen so the final on-wire column alignment matches the printable
// width the caller asked for.
func escArgRender(d printfDirective, raw string, escLen int) (string, error) {
	if d.verb != 's' {
		return "", &FormatError{Reason: "unsupported conversion '" + string(d.verb) + "' for escape-valued argument (only 's' is supported)"}
	}
	switch d.flags {
	case "", "-", "+":
	default:
		return "", &FormatError{Reason: "unsupported flag '" + d.flags + "' for escape-valued argument (only '-' or '+' is supported)"}
	}
	width := 0
	if w, ok := escFormatWidth(d.width); ok {
		width = w + escLen
	} else if d.width != "" {
		return "", &FormatError{Reason: "invalid width specifier"}
	}
	spec := "%" + d.flags + strconv.Itoa(width) + "s"
	if d.width == "" && width == 0 {
		spec = "%" + d.flags + "s"
	}
	return sprintfOne(spec, raw), nil
}

// plainArgRender renders a non-escape format argument using the standard
// fmt verb semantics.
func plainArgRender(d printfDirective, verb string, arg any) (string, error) {
	return sprintfOne(d.full, arg), nil
}

// sprintfOne renders a single printf verb against a single argument using
// Go's fmt package as the formatting backend.
func sprintfOne(spec string, arg any) string {
	return fmt.Sprintf(spec, arg)
}
