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

// RequestDevice holds the device-identity request constructors (DA
// primary/secondary/tertiary, DECCKSR). Replies are decoded by
// DecodeReplyDA/DecodeReplyTIC/DecodeReplyTID/DecodeReplyCKS (see
// reply.go).
var RequestDevice = requestDevice{}

type requestDevice struct{}

// TermAttrDA requests the primary device attributes (CSI 0 c).
func (requestDevice) TermAttrDA() EscSegment { return NewCSI("0c") }

// TermIDTIC requests the secondary device attributes (CSI > 0 c).
func (requestDevice) TermIDTIC() EscSegment { return NewCSI(">0c") }

// TermUIDTID requests the tertiary device attributes (CSI = 0 c).
func (requestDevice) TermUIDTID() EscSegment { return NewCSI("=0c") }

// ChecksumCKS requests a memory checksum (DECCKSR). If id is non-nil,
// the request includes it so the reply can be correlated.
func (requestDevice) ChecksumCKS(id *int) EscSegment {
	if id != nil {
		return NewCSI(fmt.Sprintf("?63;%dn", *id))
	}
	return NewCSI("?63n")
}

// RequestGeo holds the cursor-position and window-geometry request
// constructors (CPR/DECXCPR, XTWINOPS reporting variants).
var RequestGeo = requestGeo{}

type requestGeo struct{}

// CursorPosCP requests the cursor position (CPR, or DECXCPR if cpr is
// false).
func (requestGeo) CursorPosCP(cpr bool) EscSegment {
	if cpr {
		return NewCSI("6n")
	}
	return NewCSI("?6n")
}

// XTWINOPS report-size parameter values for RequestGeo.Window.
const (
	WindowReportTextAreaPixels   = 14
	WindowReportScreenPixels     = 15
	WindowReportCellSizePixels   = 16
	WindowReportTextAreaChars    = 18
	WindowReportScreenChars      = 19
)

// Window requests a window-geometry report via XTWINOPS; param must be
// one of the WindowReport* constants.
func (requestGeo) Window(param int) EscSegment { return NewCSI(fmt.Sprintf("%dt", param)) }

// RequestDECPM holds the DEC private mode status request constructor
// (DECRQM).
var RequestDECPM = requestDECPM{}

type requestDECPM struct{}

// PrivModeDECPM requests the current status of DEC private mode (DECRQM).
func (requestDECPM) PrivModeDECPM(mode int) EscSegment {
	return NewCSI(fmt.Sprintf("?%d$p", mode))
}

// RequestOSColor holds the OSC color-query constructors (the "?"
// variants of OSColorControl's setters).
var RequestOSColor = requestOSColor{}

type requestOSColor struct{}

// RelBySlot requests the color of a named ANSI slot (OSC 4 ; slot ; ?).
func (requestOSColor) RelBySlot(slot string, bright bool) (EscSegment, error) {
	pair, ok := osColorSlots[slot]
	if !ok {
		return EscSegment{}, &LookupError{Name: slot}
	}
	idx := pair[0]
	if bright {
		idx = pair[1]
	}
	return NewOSC(fmt.Sprintf("%d;?", idx), "4;"), nil
}

// RelByIndex requests the color at a 256-table index (OSC 4 ; index ; ?).
func (requestOSColor) RelByIndex(index int) EscSegment {
	return NewOSC(fmt.Sprintf("%d;?", index), "4;")
}

// Environment requests the VT100 (or Tektronix) text foreground or
// background color (OSC 10/11/15/16 ; ?).
func (requestOSColor) Environment(fore, tektronix bool) EscSegment {
	if fore {
		code := "10;"
		if tektronix {
			code = "15;"
		}
		return NewOSC("?", code)
	}
	code := "11;"
	if tektronix {
		code = "16;"
	}
	return NewOSC("?", code)
}

// Cursor requests the VT100 (or Tektronix) cursor color (OSC 12/18 ; ?).
func (requestOSColor) Cursor(tektronix bool) EscSegment {
	code := "12;"
	if tektronix {
		code = "18;"
	}
	return NewOSC("?", code)
}

// Highlight requests the highlight foreground or background color (OSC
// 17/19 ; ?).
func (requestOSColor) Highlight(fore bool) EscSegment {
	if fore {
		return NewOSC("?", "19;")
	}
	return NewOSC("?", "17;")
}

// Pointer requests the mouse-pointer foreground or background color
// (OSC 13/14 ; ?).
func (requestOSColor) Pointer(fore bool) EscSegment {
	if fore {
		return NewOSC("?", "13;")
	}
	return NewOSC("?", "14;")
}
