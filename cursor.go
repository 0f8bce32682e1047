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

import "strconv"

// CursorSave builds DECSC/SCOSC (ESC 7 or CSI s), saving the cursor
// position and attributes. With fp set it uses the Fp form (ESC 7),
// otherwise the CSI form (CSI s) available only when DECLRMM is off.
func CursorSave(fp bool) EscSegment {
	if fp {
		return NewFsFpnF("7")
	}
	return NewCSI("s")
}

// CursorRestore builds DECRC/SCORC (ESC 8 or CSI u), the counterpart to
// CursorSave.
func CursorRestore(fp bool) EscSegment {
	if fp {
		return NewFsFpnF("8")
	}
	return NewCSI("u")
}

// CursorStyle selects the cursor's blink/shape style (DECSCUSR). All
// variants are gated by StyleGate.
var CursorStyle = struct {
	BlinkingBlock, Default, SteadyBlock, BlinkingUnderline, SteadyUnderline, BlinkingBar, SteadyBar func() EscSegment
}{
	BlinkingBlock:     func() EscSegment { return styleGated(func() EscSegment { return NewCSI("0 q") }) },
	Default:           func() EscSegment { return styleGated(func() EscSegment { return NewCSI("1 q") }) },
	SteadyBlock:       func() EscSegment { return styleGated(func() EscSegment { return NewCSI("2 q") }) },
	BlinkingUnderline: func() EscSegment { return styleGated(func() EscSegment { return NewCSI("3 q") }) },
	SteadyUnderline:   func() EscSegment { return styleGated(func() EscSegment { return NewCSI("4 q") }) },
	BlinkingBar:       func() EscSegment { return styleGated(func() EscSegment { return NewCSI("5 q") }) },
	SteadyBar:         func() EscSegment { return styleGated(func() EscSegment { return NewCSI("6 q") }) },
}

// styleGated returns build() unless StyleGate is closed, in which case it
// returns the zero-value segment, mirroring the original's
// __STYLE_GATE__(CSI.new_nul) decorator.
func styleGated(build func() EscSegment) EscSegment {
	if !StyleGate.Open() {
		return EscSegment{}
	}
	return build()
}

// CursorNavigate holds the cursor-movement constructors: CUU/CUD/CUF/CUB,
// CNL/CPL, CHA, CUP, HTS, TBC, CHT/CBT, VPA/VPR, HVP, RI/IND.
var CursorNavigate = cursorNavigate{}

type cursorNavigate struct{}

func (cursorNavigate) Up(n int) EscSegment      { return NewCSI(strconv.Itoa(n) + "A") }
func (cursorNavigate) Down(n int) EscSegment    { return NewCSI(strconv.Itoa(n) + "B") }
func (cursorNavigate) Forward(n int) EscSegment { return NewCSI(strconv.Itoa(n) + "C") }
func (cursorNavigate) Back(n int) EscSegment    { return NewCSI(strconv.Itoa(n) + "D") }

// NextLine moves to the start of the line n lines down (CNL).
func (cursorNavigate) NextLine(n int) EscSegment { return NewCSI(strconv.Itoa(n) + "E") }

// PrevLine moves to the start of the line n lines up (CPL).
func (cursorNavigate) PrevLine(n int) EscSegment { return NewCSI(strconv.Itoa(n) + "F") }

// Column moves to absolute character column n (CHA).
func (cursorNavigate) Column(n int) EscSegment { return NewCSI(strconv.Itoa(n) + "G") }

// Position moves to absolute (x, y) (CUP), 1-indexed.
func (cursorNavigate) Position(x, y int) EscSegment {
	return NewCSI(strconv.Itoa(y) + ";" + strconv.Itoa(x) + "H")
}

// TabStopSet sets a tab stop at the current column (HTS).
func (cursorNavigate) TabStopSet() EscSegment { return NewFe("H") }

// TabColumnClear clears the tab stop at the current column, if any (TBC).
func (cursorNavigate) TabColumnClear() EscSegment { return NewCSI("0g") }

// TabAllClear clears every tab stop (TBC).
func (cursorNavigate) TabAllClear() EscSegment { return NewCSI("3g") }

// TabForward moves forward n tab stops (CHT).
func (cursorNavigate) TabForward(n int) EscSegment { return NewCSI(strconv.Itoa(n) + "I") }

// TabBack moves backward n tab stops (CBT).
func (cursorNavigate) TabBack(n int) EscSegment { return NewCSI(strconv.Itoa(n) + "Z") }

// LineAbsolute moves to absolute line position n (VPA).
func (cursorNavigate) LineAbsolute(n int) EscSegment { return NewCSI(strconv.Itoa(n) + "d") }

// LineRelative moves to relative line position n (VPR).
func (cursorNavigate) LineRelative(n int) EscSegment { return NewCSI(strconv.Itoa(n) + "e") }

// PositionF moves to absolute (x, y) using HVP rather than CUP.
func (cursorNavigate) PositionF(x, y int) EscSegment {
	return NewCSI(strconv.Itoa(y) + ";" + strconv.Itoa(x) + "f")
}

// ReverseIndex moves the cursor up one line, scrolling if at the top
// margin (RI, 0x8d).
func (cursorNavigate) ReverseIndex() EscSegment { return NewFe("M") }

// NextIndex moves the cursor down one line, scrolling if at the bottom
// margin (IND, 0x84).
func (cursorNavigate) NextIndex() EscSegment { return NewFe("D") }

// Scroll holds the scroll-region constructors: SU/SD and DECSTBM.
var Scroll = scroll{}

type scroll struct{}

// Up scrolls the viewport up n lines (SU).
func (scroll) Up(n int) EscSegment { return NewCSI(strconv.Itoa(n) + "S") }

// Down scrolls the viewport down n lines (SD).
func (scroll) Down(n int) EscSegment { return NewCSI(strconv.Itoa(n) + "T") }

// SetRegion sets the scrolling region to [top, bottom] (DECSTBM); 0/0
// means the full window.
func (scroll) SetRegion(top, bottom int) EscSegment {
	return NewCSI(strconv.Itoa(top) + ";" + strconv.Itoa(bottom) + "r")
}
