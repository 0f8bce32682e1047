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
	"strings"
)

// Color is an OSColorControl color argument: a named X11 color, a
// "#rrggbb" hex string, or an explicit RGB triple.
type Color struct {
	name string
	hex  string
	r, g, b int
	isRGB bool
}

// ColorName builds a Color from an X11 color name.
func ColorName(name string) Color { return Color{name: name} }

// ColorHex builds a Color from a "#rrggbb" (or "rrggbb") hex string.
func ColorHex(hex string) Color { return Color{hex: hex} }

// ColorRGB builds a Color from an explicit (r, g, b) triple.
func ColorRGB(r, g, b int) Color { return Color{r: r, g: g, b: b, isRGB: true} }

// rgbSpec renders a Color as an OSC "rgb:rr/gg/bb" color spec.
func (c Color) rgbSpec() (string, error) {
	var r, g, b int
	switch {
	case c.isRGB:
		r, g, b = c.r, c.g, c.b
	case c.hex != "":
		hex := strings.TrimPrefix(c.hex, "#")
		if len(hex) != 6 {
			return "", &FormatError{Reason: "hex color must be 6 hex digits"}
		}
		var err error
		if r, g, b, err = parseHexTriple(hex); err != nil {
			return "", err
		}
	default:
		var ok bool
		r, g, b, ok = lookupX11Color(c.name)
		if !ok {
			return "", &LookupError{Name: c.name}
		}
	}
	return fmt.Sprintf("rgb:%02x/%02x/%02x", r, g, b), nil
}

func parseHexTriple(hex string) (int, int, int, error) {
	var r, g, b int
	if _, err := fmt.Sscanf(hex[0:2], "%02x", &r); err != nil {
		return 0, 0, 0, &FormatError{Reason: "invalid hex literal"}
	}
	if _, err := fmt.Sscanf(hex[2:4], "%02x", &g); err != nil {
		return 0, 0, 0, &FormatError{Reason: "invalid hex literal"}
	}
	if _, err := fmt.Sscanf(hex[4:6], "%02x", &b); err != nil {
		return 0, 0, 0, &FormatError{Reason: "invalid hex literal"}
	}
	return r, g, b, nil
}

// osColorSlots maps the eight ANSI color-slot names to their (normal,
// bright) OSC 4 slot indices.
var osColorSlots = map[string][2]int{
	"black": {0, 8}, "red": {1, 9}, "green": {2, 10}, "yellow": {3, 11},
	"blue": {4, 12}, "magenta": {5, 13}, "cyan": {6, 14}, "white": {7, 15},
}

// OSColorControl holds the OSC palette/environment/cursor/highlight/
// pointer color set-and-reset constructors (OSC 4, 10-19, 104-119).
var OSColorControl = osColorControl{}

type osColorControl struct{}

// SetRelColorBySlot sets the named ANSI slot's color (OSC 4).
func (osColorControl) SetRelColorBySlot(slot string, bright bool, color Color) (EscSegment, error) {
	if !StyleGate.Open() {
		return EscSegment{}, nil
	}
	pair, ok := osColorSlots[slot]
	if !ok {
		return EscSegment{}, &LookupError{Name: slot}
	}
	spec, err := color.rgbSpec()
	if err != nil {
		return EscSegment{}, err
	}
	idx := pair[0]
	if bright {
		idx = pair[1]
	}
	return NewOSC(fmt.Sprintf("%d;%s", idx, spec), "4;"), nil
}

// SetRelColorByIndex sets the 256-table color at index (OSC 4).
func (osColorControl) SetRelColorByIndex(index int, color Color) (EscSegment, error) {
	if !StyleGate.Open() {
		return EscSegment{}, nil
	}
	spec, err := color.rgbSpec()
	if err != nil {
		return EscSegment{}, err
	}
	return NewOSC(fmt.Sprintf("%d;%s", index, spec), "4;"), nil
}

// ResetRelColorAll resets every color slot (OSC 104).
func (osColorControl) ResetRelColorAll() EscSegment {
	if !StyleGate.Open() {
		return EscSegment{}
	}
	return NewOSC("", "104")
}

// ResetRelColorBySlot resets the named ANSI slot (OSC 104).
func (osColorControl) ResetRelColorBySlot(slot string, bright bool) (EscSegment, error) {
	if !StyleGate.Open() {
		return EscSegment{}, nil
	}
	pair, ok := osColorSlots[slot]
	if !ok {
		return EscSegment{}, &LookupError{Name: slot}
	}
	idx := pair[0]
	if bright {
		idx = pair[1]
	}
	return NewOSC(fmt.Sprintf("%d", idx), "104;"), nil
}

// ResetRelColorByIndex resets the 256-table color at index (OSC 104).
func (osColorControl) ResetRelColorByIndex(index int) EscSegment {
	if !StyleGate.Open() {
		return EscSegment{}
	}
	return NewOSC(fmt.Sprintf("%d", index), "104;")
}

// SetEnvironmentColor sets the VT100 (or, if tektronix, Tektronix) text
// foreground and/or background color (OSC 10/11/15/16). At least one of
// fore/back must be provided.
func (osColorControl) SetEnvironmentColor(fore, back *Color, tektronix bool) (EscContainer, error) {
	if !StyleGate.Open() {
		return emptyContainer(), nil
	}
	foreCode, backCode := "10;", "11;"
	if tektronix {
		foreCode, backCode = "15;", "16;"
	}
	var out EscContainer
	switch {
	case fore != nil && back != nil:
		fspec, err := fore.rgbSpec()
		if err != nil {
			return EscContainer{}, err
		}
		bspec, err := back.rgbSpec()
		if err != nil {
			return EscContainer{}, err
		}
		out = NewContainer(NewOSC(fspec, foreCode)).Concat(NewOSC(bspec, backCode))
	case fore != nil:
		fspec, err := fore.rgbSpec()
		if err != nil {
			return EscContainer{}, err
		}
		out = NewContainer(NewOSC(fspec, foreCode))
	case back != nil:
		bspec, err := back.rgbSpec()
		if err != nil {
			return EscContainer{}, err
		}
		out = NewContainer(NewOSC(bspec, backCode))
	default:
		out = NewContainer(NewOSC("", ""))
	}
	return out, nil
}

// ResetEnvironmentColor resets the VT100 (or Tektronix) text foreground
// and/or background color (OSC 110/111/115/116). With neither fore nor
// back set, both are reset, matching the original's default branch.
func (osColorControl) ResetEnvironmentColor(fore, back, tektronix bool) EscContainer {
	if !StyleGate.Open() {
		return emptyContainer()
	}
	foreCode, backCode := "110", "111"
	if tektronix {
		foreCode, backCode = "115", "116"
	}
	switch {
	case fore && back:
		return NewContainer(NewOSC("", foreCode)).Concat(NewOSC("", backCode))
	case fore:
		return NewContainer(NewOSC("", foreCode))
	case back:
		return NewContainer(NewOSC("", backCode))
	default:
		return NewContainer(NewOSC("", foreCode)).Concat(NewOSC("", backCode))
	}
}

// SetCursorColor sets the VT100 (or Tektronix) cursor color (OSC 12/18).
func (osColorControl) SetCursorColor(color Color, tektronix bool) (EscSegment, error) {
	if !StyleGate.Open() {
		return EscSegment{}, nil
	}
	spec, err := color.rgbSpec()
	if err != nil {
		return EscSegment{}, err
	}
	code := "12;"
	if tektronix {
		code = "18;"
	}
	return NewOSC(spec, code), nil
}

// ResetCursorColor resets the VT100 (or Tektronix) cursor color (OSC 112/118).
func (osColorControl) ResetCursorColor(tektronix bool) EscSegment {
	if !StyleGate.Open() {
		return EscSegment{}
	}
	code := "112"
	if tektronix {
		code = "118"
	}
	return NewOSC("", code)
}

// SetHighlightColor sets the highlight foreground and/or background
// color (OSC 17/19).
func (osColorControl) SetHighlightColor(fore, back *Color) (EscContainer, error) {
	if !StyleGate.Open() {
		return emptyContainer(), nil
	}
	switch {
	case fore != nil && back != nil:
		fspec, err := fore.rgbSpec()
		if err != nil {
			return EscContainer{}, err
		}
		bspec, err := back.rgbSpec()
		if err != nil {
			return EscContainer{}, err
		}
		return NewContainer(NewOSC(fspec, "19;")).Concat(NewOSC(bspec, "17;")), nil
	case fore != nil:
		fspec, err := fore.rgbSpec()
		if err != nil {
			return EscContainer{}, err
		}
		return NewContainer(NewOSC(fspec, "19;")), nil
	case back != nil:
		bspec, err := back.rgbSpec()
		if err != nil {
			return EscContainer{}, err
		}
		return NewContainer(NewOSC(bspec, "17;")), nil
	default:
		return NewContainer(NewOSC("", "")), nil
	}
}

// ResetHighlightColor resets the highlight foreground and/or background
// color (OSC 117/119). With neither set, both are reset.
func (osColorControl) ResetHighlightColor(fore, back bool) EscContainer {
	if !StyleGate.Open() {
		return emptyContainer()
	}
	switch {
	case fore && back:
		return NewContainer(NewOSC("", "119")).Concat(NewOSC("", "117"))
	case fore:
		return NewContainer(NewOSC("", "119"))
	case back:
		return NewContainer(NewOSC("", "117"))
	default:
		return NewContainer(NewOSC("", "119")).Concat(NewOSC("", "117"))
	}
}

// SetPointerColor sets the mouse-pointer foreground and/or background
// color (OSC 13/14).
func (osColorControl) SetPointerColor(fore, back *Color) (EscContainer, error) {
	if !StyleGate.Open() {
		return emptyContainer(), nil
	}
	switch {
	case fore != nil && back != nil:
		fspec, err := fore.rgbSpec()
		if err != nil {
			return EscContainer{}, err
		}
		bspec, err := back.rgbSpec()
		if err != nil {
			return EscContainer{}, err
		}
		return NewContainer(NewOSC(fspec, "13;")).Concat(NewOSC(bspec, "14;")), nil
	case fore != nil:
		fspec, err := fore.rgbSpec()
		if err != nil {
			return EscContainer{}, err
		}
		return NewContainer(NewOSC(fspec, "13;")), nil
	case back != nil:
		bspec, err := back.rgbSpec()
		if err != nil {
			return EscContainer{}, err
		}
		return NewContainer(NewOSC(bspec, "14;")), nil
	default:
		return NewContainer(NewOSC("", "")), nil
	}
}

// ResetPointerColor resets the mouse-pointer foreground and/or
// background color (OSC 113/114). With neither set, both are reset.
func (osColorControl) ResetPointerColor(fore, back bool) EscContainer {
	if !StyleGate.Open() {
		return emptyContainer()
	}
	switch {
	case fore && back:
		return NewContainer(NewOSC("", "113")).Concat(NewOSC("", "114"))
	case fore:
		return NewContainer(NewOSC("", "113"))
	case back:
		return NewContainer(NewOSC("", "114"))
	default:
		return NewContainer(NewOSC("", "113")).Concat(NewOSC("", "114"))
	}
}
