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

	"github.com/lucasb-eyer/go-colorful"
)

// SGRParams is one Select Graphic Rendition parameter group, e.g.
// {38, 2, r, g, b} for a true-color foreground. Groups concatenate with
// Plus to build up a single SGR sequence's parameter list.
type SGRParams []int

// Plus concatenates two parameter groups, mirroring SGRParams.__add__.
func (p SGRParams) Plus(o SGRParams) SGRParams {
	out := make(SGRParams, 0, len(p)+len(o))
	out = append(out, p...)
	out = append(out, o...)
	return out
}

func joinParams(groups []SGRParams) string {
	var parts []string
	for _, g := range groups {
		for _, p := range g {
			parts = append(parts, strconv.Itoa(p))
		}
	}
	return strings.Join(parts, ";")
}

// SGRSeqs builds "CSI params... m" from one or more parameter groups. If
// StyleGate is closed, it returns the zero-value (empty) segment instead,
// matching the original's __STYLE_GATE__ decorator on SGRSeqs.__new__.
func SGRSeqs(groups ...SGRParams) EscSegment {
	if !StyleGate.Open() {
		return EscSegment{}
	}
	return NewCSIFull("", "m", joinParams(groups))
}

// SGRReset builds the bare "CSI m" graphic-rendition reset sequence,
// gated the same way as SGRSeqs.
func SGRReset() EscSegment {
	if !StyleGate.Open() {
		return EscSegment{}
	}
	return NewCSIFull("", "m")
}

// SGRWrap wraps str (a plain string, EscSegment, or EscContainer) between
// an SGRSeqs(groups...) intro and an SGRReset outro. When str already
// carries escape fields, inner/cellular select how those fields combine
// with the new wrap, exactly as EscSegment.Wrap/EscContainer.Wrap do.
func SGRWrap(str any, inner, cellular bool, groups ...SGRParams) EscContainer {
	intro := SGRSeqs(groups...)
	outro := SGRReset()
	switch v := str.(type) {
	case string:
		return NewContainer(NewSegment(intro.Bytes(), v, outro.Bytes()))
	case EscSegment:
		return NewContainer(v.Wrap(intro.Bytes(), outro.Bytes(), inner))
	case EscContainer:
		return v.Wrap(intro.Bytes(), outro.Bytes(), inner, cellular)
	default:
		panic("vtcore: SGRWrap requires string, EscSegment, or EscContainer")
	}
}

// colorGround distinguishes the SGR base parameter for foreground (38),
// background (48), and underline (58) color selectors.
type colorGround int

const (
	groundFore colorGround = 38
	groundBack colorGround = 48
	groundUnderline colorGround = 58
)

func rgbParams(ground colorGround, r, g, b int) (SGRParams, error) {
	for _, c := range [3]int{r, g, b} {
		if c < 0 || c > 255 {
			return nil, &GeometryError{Reason: "rgb component out of range 0-255"}
		}
	}
	return SGRParams{int(ground), 2, r, g, b}, nil
}

func b256Params(ground colorGround, idx int) (SGRParams, error) {
	if idx < 0 || idx > 255 {
		return nil, &GeometryError{Reason: "base256 index out of range 0-255"}
	}
	return SGRParams{int(ground), 5, idx}, nil
}

func nameParams(ground colorGround, name string) (SGRParams, error) {
	r, g, b, ok := lookupX11Color(name)
	if !ok {
		return nil, &LookupError{Name: name}
	}
	return SGRParams{int(ground), 2, r, g, b}, nil
}

func hexParams(ground colorGround, hex string) (SGRParams, error) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return nil, &FormatError{Reason: "hex color must be 6 hex digits"}
	}
	r, err1 := strconv.ParseInt(hex[0:2], 16, 0)
	g, err2 := strconv.ParseInt(hex[2:4], 16, 0)
	b, err3 := strconv.ParseInt(hex[4:6], 16, 0)
	if err1 != nil || err2 != nil || err3 != nil {
		return nil, &FormatError{Reason: "invalid hex literal"}
	}
	return rgbParams(ground, int(r), int(g), int(b))
}

// xterm256Palette is the stock 256-color xterm palette: 16 ANSI colors,
// a 6x6x6 color cube, and a 24-step grayscale ramp.
var xterm256Palette = buildXterm256Palette()

func buildXterm256Palette() [256]x11Color {
	var pal [256]x11Color
	ansi16 := [16][3]int{
		{0, 0, 0}, {128, 0, 0}, {0, 128, 0}, {128, 128, 0},
		{0, 0, 128}, {128, 0, 128}, {0, 128, 128}, {192, 192, 192},
		{128, 128, 128}, {255, 0, 0}, {0, 255, 0}, {255, 255, 0},
		{0, 0, 255}, {255, 0, 255}, {0, 255, 255}, {255, 255, 255},
	}
	for i, c := range ansi16 {
		pal[i] = x11Color{c[0], c[1], c[2]}
	}
	steps := [6]int{0, 95, 135, 175, 215, 255}
	i := 16
	for r := 0; r < 6; r++ {
		for g := 0; g < 6; g++ {
			for b := 0; b < 6; b++ {
				pal[i] = x11Color{steps[r], steps[g], steps[b]}
				i++
			}
		}
	}
	for s := 0; s < 24; s++ {
		v := 8 + s*10
		pal[232+s] = x11Color{v, v, v}
	}
	return pal
}

// nearest256 finds the closest xterm-256 palette index to (r, g, b) by
// CIE-Lab distance, using go-colorful for perceptually uniform color
// comparison instead of naive Euclidean RGB distance.
func nearest256(r, g, b int) int {
	target := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
	best := 0
	bestDist := -1.0
	for i, c := range xterm256Palette {
		cand := colorful.Color{R: float64(c.r) / 255, G: float64(c.g) / 255, B: float64(c.b) / 255}
		d := target.DistanceLab(cand)
		if bestDist < 0 || d < bestDist {
			bestDist = d
			best = i
		}
	}
	return best
}

// colorFactory implements the name/b256/rgb/hex/get/nearest256 surface
// shared by Fore, Ground, and Underline, parameterized on the SGR base
// parameter (38/48/58).
type colorFactory struct {
	ground colorGround
}

func (f colorFactory) Name(name string) (SGRParams, error) { return nameParams(f.ground, name) }
func (f colorFactory) B256(idx int) (SGRParams, error)      { return b256Params(f.ground, idx) }
func (f colorFactory) RGB(r, g, b int) (SGRParams, error)   { return rgbParams(f.ground, r, g, b) }
func (f colorFactory) Hex(hex string) (SGRParams, error)    { return hexParams(f.ground, hex) }

// Nearest256 downsamples an arbitrary RGB triple to the closest entry of
// the stock 256-color palette, for terminals without true-color support.
func (f colorFactory) Nearest256(r, g, b int) SGRParams {
	p, _ := b256Params(f.ground, nearest256(r, g, b))
	return p
}

// Get resolves a color from a name, a "#rrggbb" hex string, an rgb
// triple, or a base-256 index, mirroring Fore.get/Ground.get's dynamic
// dispatch on argument shape.
func (f colorFactory) Get(args ...any) (SGRParams, error) {
	switch len(args) {
	case 1:
		switch v := args[0].(type) {
		case string:
			if strings.HasPrefix(v, "#") {
				return f.Hex(v)
			}
			return f.Name(v)
		case int:
			return f.B256(v)
		}
	case 3:
		r, ok1 := args[0].(int)
		g, ok2 := args[1].(int)
		b, ok3 := args[2].(int)
		if ok1 && ok2 && ok3 {
			return f.RGB(r, g, b)
		}
	}
	return nil, &FormatError{Reason: "unsupported argument shape for color Get"}
}

// Fore is the foreground color factory (SGR base parameter 38), plus the
// eight ANSI-relative and true-color named shortcuts.
var Fore = struct {
	colorFactory
	Reset, Default                                                    SGRParams
	BlackRel, RedRel, GreenRel, YellowRel, BlueRel, MagentaRel, CyanRel, WhiteRel SGRParams
	Black, Red, Green, Yellow, Blue, Magenta, Cyan, White             SGRParams
}{
	colorFactory: colorFactory{ground: groundFore},
	Reset:        SGRParams{39}, Default: SGRParams{39},
	BlackRel: SGRParams{30}, RedRel: SGRParams{31}, GreenRel: SGRParams{32}, YellowRel: SGRParams{33},
	BlueRel: SGRParams{34}, MagentaRel: SGRParams{35}, CyanRel: SGRParams{36}, WhiteRel: SGRParams{37},
	Black: SGRParams{38, 2, 0, 0, 0}, Red: SGRParams{38, 2, 255, 0, 0}, Green: SGRParams{38, 2, 0, 255, 0},
	Yellow: SGRParams{38, 2, 255, 255, 0}, Blue: SGRParams{38, 2, 0, 0, 255}, Magenta: SGRParams{38, 2, 255, 0, 255},
	Cyan: SGRParams{38, 2, 0, 255, 255}, White: SGRParams{38, 2, 255, 255, 255},
}

// Ground is the background color factory (SGR base parameter 48).
var Ground = struct {
	colorFactory
	Reset, Default                                                    SGRParams
	BlackRel, RedRel, GreenRel, YellowRel, BlueRel, MagentaRel, CyanRel, WhiteRel SGRParams
	Black, Red, Green, Yellow, Blue, Magenta, Cyan, White             SGRParams
}{
	colorFactory: colorFactory{ground: groundBack},
	Reset:        SGRParams{49}, Default: SGRParams{49},
	BlackRel: SGRParams{40}, RedRel: SGRParams{41}, GreenRel: SGRParams{42}, YellowRel: SGRParams{43},
	BlueRel: SGRParams{44}, MagentaRel: SGRParams{45}, CyanRel: SGRParams{46}, WhiteRel: SGRParams{47},
	Black: SGRParams{48, 2, 0, 0, 0}, Red: SGRParams{48, 2, 255, 0, 0}, Green: SGRParams{48, 2, 0, 255, 0},
	Yellow: SGRParams{48, 2, 255, 255, 0}, Blue: SGRParams{48, 2, 0, 0, 255}, Magenta: SGRParams{48, 2, 255, 0, 255},
	Cyan: SGRParams{48, 2, 0, 255, 255}, White: SGRParams{48, 2, 255, 255, 255},
}

// ColoredUnderline is the underline-color factory (SGR base parameter
// 58), supported by a handful of emulators (Kitty, VTE, Mintty, iTerm2).
var ColoredUnderline = struct {
	colorFactory
	Reset, Default                                         SGRParams
	Black, Red, Green, Yellow, Blue, Magenta, Cyan, White SGRParams
}{
	colorFactory: colorFactory{ground: groundUnderline},
	Reset:        SGRParams{59}, Default: SGRParams{59},
	Black: SGRParams{58, 2, 0, 0, 0}, Red: SGRParams{58, 2, 255, 0, 0}, Green: SGRParams{58, 2, 0, 255, 0},
	Yellow: SGRParams{58, 2, 255, 255, 0}, Blue: SGRParams{58, 2, 0, 0, 255}, Magenta: SGRParams{58, 2, 255, 0, 255},
	Cyan: SGRParams{58, 2, 0, 255, 255}, White: SGRParams{58, 2, 255, 255, 255},
}

// HasName reports whether name resolves in the X11 color table, and if
// so returns its (r, g, b).
func HasName(name string) (r, g, b int, ok bool) { return lookupX11Color(name) }

// StyleBasics holds the non-color SGR style toggles.
var StyleBasics = struct {
	Purge, Bold, Dim, Underline, Blink, Invert, Strike SGRParams
	ItalicRare, BlinkRapidRare, HideRare, UnderlineDoublyRare SGRParams
}{
	Purge: SGRParams{0}, Bold: SGRParams{1}, Dim: SGRParams{2}, Underline: SGRParams{4},
	Blink: SGRParams{5}, Invert: SGRParams{7}, Strike: SGRParams{9},
	ItalicRare: SGRParams{3}, BlinkRapidRare: SGRParams{6}, HideRare: SGRParams{8}, UnderlineDoublyRare: SGRParams{21},
}

// StyleResets holds the reset parameter for each StyleBasics toggle, plus
// Any, the concatenation of every reset.
var StyleResets = struct {
	NotBold, NotItalic, NotBlackletter, NotUnderlined, NotBlink, NotInvert, NotHide, NotStrike, Purge, Any SGRParams
}{
	NotBold: SGRParams{22}, NotItalic: SGRParams{23}, NotBlackletter: SGRParams{23}, NotUnderlined: SGRParams{24},
	NotBlink: SGRParams{25}, NotInvert: SGRParams{27}, NotHide: SGRParams{28}, NotStrike: SGRParams{29},
	Purge: SGRParams{0},
	Any: SGRParams{22, 23, 23, 24, 25, 27, 28, 29},
}

// StyleFonts holds the ten SGR alternate-font selectors (rarely
// supported).
var StyleFonts = struct {
	Default, II, III, IV, V, VI, VII, VIII, IX, BlackletterRare SGRParams
}{
	Default: SGRParams{10}, II: SGRParams{11}, III: SGRParams{12}, IV: SGRParams{13}, V: SGRParams{14},
	VI: SGRParams{15}, VII: SGRParams{16}, VIII: SGRParams{17}, IX: SGRParams{18}, BlackletterRare: SGRParams{20},
}

// StyleSpecials holds the remaining rarely supported SGR parameters:
// proportional spacing, overline, and the ideogram/Mintty-only groups.
var StyleSpecials = struct {
	ProportionalSpacing, NotProportionalSpacing, Overlined, NotOverlined SGRParams
	Ideogram struct {
		Underline, UnderlineDoubly, Overline, OverlineDoubly, Stress, Reset SGRParams
	}
	Mintty struct {
		Framed, Encircled, NotFramed, NotEncircled, Superscript, Subscript, NotSuperscript, NotSubscript SGRParams
	}
}{
	ProportionalSpacing: SGRParams{26}, NotProportionalSpacing: SGRParams{50},
	Overlined: SGRParams{53}, NotOverlined: SGRParams{55},
}

func init() {
	StyleSpecials.Ideogram.Underline = SGRParams{60}
	StyleSpecials.Ideogram.UnderlineDoubly = SGRParams{61}
	StyleSpecials.Ideogram.Overline = SGRParams{62}
	StyleSpecials.Ideogram.OverlineDoubly = SGRParams{63}
	StyleSpecials.Ideogram.Stress = SGRParams{64}
	StyleSpecials.Ideogram.Reset = SGRParams{65}
	StyleSpecials.Mintty.Framed = SGRParams{51}
	StyleSpecials.Mintty.Encircled = SGRParams{52}
	StyleSpecials.Mintty.NotFramed = SGRParams{54}
	StyleSpecials.Mintty.NotEncircled = SGRParams{54}
	StyleSpecials.Mintty.Superscript = SGRParams{73}
	StyleSpecials.Mintty.Subscript = SGRParams{74}
	StyleSpecials.Mintty.NotSuperscript = SGRParams{75}
	StyleSpecials.Mintty.NotSubscript = SGRParams{75}
}
