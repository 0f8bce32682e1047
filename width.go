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
	runewidth "github.com/mattn/go-runewidth"
	"golang.org/x/text/width"
)

// RuneWidth returns the terminal column width of r: 0 for combining
// marks and most control runes, 1 for narrow runes, 2 for wide (East
// Asian / emoji) runes. Grounded on the teacher's sgr.go use of
// go-colorful for color math and SPEC_FULL.md 8's go-runewidth wiring
// for the layout engine's column accounting.
func RuneWidth(r rune) int { return runewidth.RuneWidth(r) }

// DisplayWidth returns the sum of RuneWidth across s's runes: the
// number of terminal columns s occupies once printed, as opposed to
// Len's rune/byte count.
func DisplayWidth(s string) int { return runewidth.StringWidth(s) }

// Normalize folds fullwidth/halfwidth compatibility forms in s to
// their canonical form (e.g. fullwidth Latin "Ａ" to "A") via
// golang.org/x/text/width, so that DisplayWidth and grid column
// accounting see a consistent width for visually-equivalent input
// regardless of which compatibility form a terminal or paste source
// used.
func Normalize(s string) string { return width.Fold.String(s) }

// PadTo pads or truncates s to exactly n display columns using fill,
// appending fill on the right. If s already occupies n or more columns
// it is truncated; a wide rune that would overflow n by one column is
// dropped rather than split, and the column it frees is filled with fill.
func PadTo(s string, n int, fill rune) string {
	w := DisplayWidth(s)
	if w >= n {
		s = runewidth.Truncate(s, n, "")
		if w = DisplayWidth(s); w >= n {
			return s
		}
	}
	pad := make([]rune, n-w)
	for i := range pad {
		pad[i] = fill
	}
	return s + string(pad)
}

// VisualLen returns s's printable field's terminal column width, as
// opposed to Len's byte count: a CJK segment reports two columns per
// ideograph where Len reports three bytes.
func (s EscSegment) VisualLen() int {
	if s.pure {
		return 0
	}
	return DisplayWidth(s.string)
}

// Pad returns a copy of s with its printable field padded or
// truncated to exactly n display columns, preserving the escape
// fields. Used by the layout engine to fit widget-reported rows to
// their declared cell width without corrupting SGR/other escapes
// carried in intro/outro.
func (s EscSegment) Pad(n int, fill rune) EscSegment {
	return EscSegment{intro: s.intro, string: PadTo(s.string, n, fill), outro: s.outro, pure: s.pure}
}
