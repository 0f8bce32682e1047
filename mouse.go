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

import "fmt"

// Mouse button values (the BUTTON field of a Mouse event). Buttons
// beyond these (> 6) arrive with their literal value (button + sum of
// modifiers) and no separately decoded modifier.
const (
	ButtonLeftPress   = 0
	ButtonMiddlePress = 1
	ButtonRightPress  = 2
	ButtonRelease     = 3
	ButtonLeftMove    = 32
	ButtonMiddleMove  = 33
	ButtonRightMove   = 34
	ButtonMove        = 35
	ButtonWheelUp     = 64
	ButtonWheelDown   = 65
)

// MouseMod is a mouse-event modifier value (SGR/X10 mouse reporting).
type MouseMod int

const (
	MouseModShift   MouseMod = 4
	MouseModAlt     MouseMod = 8
	MouseModMeta    MouseMod = 8
	MouseModCtrl    MouseMod = 16
)

// And combines two single mouse modifiers into the value xterm sends
// for pressing both at once.
func (m MouseMod) And(other MouseMod) MouseMod { return m + other }

var mouseModCombos = map[MouseMod][]MouseMod{
	MouseModShift: {4, 12, 20, 28},
	MouseModAlt:   {8, 12, 24, 28},
	MouseModCtrl:  {16, 20, 24, 28},
}

// Has reports whether the combined modifier m includes the single
// component modifier.
func (m MouseMod) Has(component MouseMod) bool {
	for _, v := range mouseModCombos[component] {
		if v == m {
			return true
		}
	}
	return false
}

// Coord is one axis of a match pattern for a Mouse event's position: it
// may require an exact value, a closed range, or skip the comparison
// (the zero value). Concrete events built by the interpreter always
// use Exact.
type Coord struct {
	has      bool
	exact    int
	isRange  bool
	lo, hi   int
}

// AnyCoord skips comparison of this axis.
func AnyCoord() Coord { return Coord{} }

// ExactCoord requires the axis to equal v.
func ExactCoord(v int) Coord { return Coord{has: true, exact: v} }

// RangeCoord requires the axis to fall within [lo, hi].
func RangeCoord(lo, hi int) Coord { return Coord{has: true, isRange: true, lo: lo, hi: hi} }

func (c Coord) matches(v Coord) bool {
	// A bare exact value on either side compares directly (mirrors the
	// original's comp() swap-so-int-is-the-reference trick); a skip
	// (!has) always matches.
	ref, other := c, v
	if !other.has {
		other, ref = ref, other
	}
	if !ref.has {
		return true
	}
	if !ref.isRange {
		return other.has && !other.isRange && other.exact == ref.exact
	}
	if other.isRange {
		return false
	}
	return other.has && ref.lo <= other.exact && other.exact <= ref.hi
}

func (c Coord) String() string {
	switch {
	case !c.has:
		return "*"
	case c.isRange:
		return fmt.Sprintf("[%d,%d]", c.lo, c.hi)
	default:
		return fmt.Sprintf("%d", c.exact)
	}
}

// Pos is one axis of a Mouse event or pattern: either a plain
// coordinate, or — in highlight-tracking mode, where start/end/mouse
// positions are reported together — a (start, end, mouse) triple.
type Pos struct {
	Coord  Coord
	Triple *[3]Coord
}

// AtCoord builds a plain-coordinate Pos.
func AtCoord(c Coord) Pos { return Pos{Coord: c} }

// AtTriple builds a highlight-tracking (start, end, mouse) Pos.
func AtTriple(start, end, mouse Coord) Pos { return Pos{Triple: &[3]Coord{start, end, mouse}} }

func (p Pos) matches(o Pos) bool {
	if p.Triple != nil || o.Triple != nil {
		if p.Triple == nil || o.Triple == nil {
			return false
		}
		for i := range p.Triple {
			if !p.Triple[i].matches(o.Triple[i]) {
				return false
			}
		}
		return true
	}
	return p.Coord.matches(o.Coord)
}

// Mouse is a mouse-tracking event produced by the byte interpreter
// (X10/SGR/highlight mouse reporting), or a match pattern built by
// hand for a Binder.
//
// Activated by one of DECPModeIds.SendMousePressX10,
// SendMousePressX11, CellMotionMouseTracking, AllMotionMouseTracking,
// and refined by SGRMouseMode/SGRMousePixelMode.
type Mouse struct {
	Button *int
	Mod    *MouseMod
	X, Y   Pos
}

// NewMouse builds a concrete mouse event.
func NewMouse(button int, mod MouseMod, x, y int) Mouse {
	b, m := button, mod
	return Mouse{Button: &b, Mod: &m, X: AtCoord(ExactCoord(x)), Y: AtCoord(ExactCoord(y))}
}

// NewMouseHighlight builds a concrete highlight-tracking mouse event,
// each axis carrying its (start, end, mouse) triple.
func NewMouseHighlight(button int, mod MouseMod, xs, xe, xm, ys, ye, ym int) Mouse {
	b, m := button, mod
	return Mouse{
		Button: &b, Mod: &m,
		X: AtTriple(ExactCoord(xs), ExactCoord(xe), ExactCoord(xm)),
		Y: AtTriple(ExactCoord(ys), ExactCoord(ye), ExactCoord(ym)),
	}
}

// Matches reports whether event satisfies pattern. A nil Button or Mod
// field, or an AnyCoord() axis, is treated as "matches anything".
func (pattern Mouse) Matches(event Mouse) bool {
	if pattern.Button != nil && event.Button != nil && *pattern.Button != *event.Button {
		return false
	}
	if pattern.Mod != nil && event.Mod != nil && *pattern.Mod != *event.Mod {
		return false
	}
	return pattern.X.matches(event.X) && pattern.Y.matches(event.Y)
}

func (m Mouse) String() string {
	button, mod := "*", "*"
	if m.Button != nil {
		button = fmt.Sprintf("%d", *m.Button)
	}
	if m.Mod != nil {
		mod = fmt.Sprintf("%d", *m.Mod)
	}
	return fmt.Sprintf("<Mouse %s %s (%s, %s)>", button, mod, m.X.Coord, m.Y.Coord)
}
