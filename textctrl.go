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

// Erase holds the ED/EL (and VT220 selective DECSED/DECSEL) erase
// constructors, plus the terminal reset (RIS full reset, DECSTR soft
// reset).
var Erase = erase{}

type erase struct{}

func eraseCSI(vt100 bool, body string) EscSegment {
	if vt100 {
		return NewCSI(body)
	}
	return NewCSI("?" + body)
}

// DisplayBelow erases from the cursor to the end of the display (ED 0 /
// DECSED 0).
func (erase) DisplayBelow(vt100 bool) EscSegment { return eraseCSI(vt100, "0J") }

// DisplayAbove erases from the start of the display to the cursor (ED 1
// / DECSED 1).
func (erase) DisplayAbove(vt100 bool) EscSegment { return eraseCSI(vt100, "1J") }

// Display erases the whole display (ED 2 / DECSED 2).
func (erase) Display(vt100 bool) EscSegment { return eraseCSI(vt100, "2J") }

// DisplayLines erases the display plus scrollback (ED 3 / DECSED 3).
func (erase) DisplayLines(vt100 bool) EscSegment { return eraseCSI(vt100, "3J") }

// LineRight erases from the cursor to the end of the line (EL 0 /
// DECSEL 0).
func (erase) LineRight(vt100 bool) EscSegment { return eraseCSI(vt100, "0K") }

// LineLeft erases from the start of the line to the cursor (EL 1 /
// DECSEL 1).
func (erase) LineLeft(vt100 bool) EscSegment { return eraseCSI(vt100, "1K") }

// Line erases the whole line (EL 2 / DECSEL 2).
func (erase) Line(vt100 bool) EscSegment { return eraseCSI(vt100, "2K") }

// Terminal performs a full reset (RIS, ESC c) or a soft reset (DECSTR,
// CSI ! p).
func (erase) Terminal(vt100 bool) EscSegment {
	if vt100 {
		return NewFsFpnF("c")
	}
	return NewCSI("!p")
}

// TextModification holds the character/line insert-delete-erase
// constructors: HPR/HPA, ICH/DCH/ECH, IL/DL.
var TextModification = textModification{}

type textModification struct{}

// ChrPosRel moves the cursor n columns forward (HPR, relative).
func (textModification) ChrPosRel(n int) EscSegment { return NewCSI(strconv.Itoa(n) + "a") }

// ChrPosAbs moves the cursor to absolute column n (HPA).
func (textModification) ChrPosAbs(n int) EscSegment { return NewCSI(strconv.Itoa(n) + "`") }

// InsChr inserts n blank characters at the cursor (ICH).
func (textModification) InsChr(n int) EscSegment { return NewCSI(strconv.Itoa(n) + "@") }

// DelChr deletes n characters at the cursor (DCH).
func (textModification) DelChr(n int) EscSegment { return NewCSI(strconv.Itoa(n) + "P") }

// EraseChr erases n characters at the cursor without shifting (ECH).
func (textModification) EraseChr(n int) EscSegment { return NewCSI(strconv.Itoa(n) + "X") }

// InsLn inserts n blank lines at the cursor (IL).
func (textModification) InsLn(n int) EscSegment { return NewCSI(strconv.Itoa(n) + "L") }

// DelLn deletes n lines at the cursor (DL).
func (textModification) DelLn(n int) EscSegment { return NewCSI(strconv.Itoa(n) + "M") }

// CharSet holds the select/designate/invoke character-set constructors.
var CharSet = charSet{}

type charSet struct{}

// Invoke selects which designated character set (G1/G2/G3) is active in
// GL/GR: one of "n", "o", "|", "}", "~".
func (charSet) Invoke(param string) EscSegment { return NewFsFpnF(param) }

// Select switches between the default (ISO 8859-1) and UTF-8 character
// set interpretation.
func (charSet) Select(utf8 bool) EscSegment {
	if utf8 {
		return NewFsFpnF("%G")
	}
	return NewFsFpnF("%@")
}

// DesignateG0VT100 designates param as the G0 character set (VT100).
func (charSet) DesignateG0VT100(param string) EscSegment { return NewFsFpnF("(" + param) }

// DesignateG1VT100 designates param as the G1 character set (VT100).
func (charSet) DesignateG1VT100(param string) EscSegment { return NewFsFpnF(")" + param) }

// DesignateG2VT220 designates param as the G2 character set (VT220).
func (charSet) DesignateG2VT220(param string) EscSegment { return NewFsFpnF("*" + param) }

// DesignateG3VT220 designates param as the G3 character set (VT220).
func (charSet) DesignateG3VT220(param string) EscSegment { return NewFsFpnF("+" + param) }

// DesignateG1VT300 designates param as the G1 character set (VT300+).
func (charSet) DesignateG1VT300(param string) EscSegment { return NewFsFpnF("-" + param) }

// DesignateG2VT300 designates param as the G2 character set (VT300+).
func (charSet) DesignateG2VT300(param string) EscSegment { return NewFsFpnF("." + param) }

// DesignateG3VT300 designates param as the G3 character set (VT300+).
func (charSet) DesignateG3VT300(param string) EscSegment { return NewFsFpnF("/" + param) }
