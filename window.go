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

// CtrlByteConversion switches between 7-bit and 8-bit C1 control
// character transmission (S7C1T/S8C1T).
var CtrlByteConversion = ctrlByteConversion{}

type ctrlByteConversion struct{}

// Conversion selects 8-bit (default) or 7-bit C1 transmission.
func (ctrlByteConversion) Conversion(eightBit bool) EscSegment {
	if eightBit {
		return NewFsFpnF(" G")
	}
	return NewFsFpnF(" F")
}

// WindowManipulation holds the XTWINOPS resize and window/icon-title
// constructors.
var WindowManipulation = windowManipulation{}

type windowManipulation struct{}

// Resize requests the text area be resized to (x, y) characters (XTWINOPS 8).
func (windowManipulation) Resize(x, y int) EscSegment {
	return NewCSI(fmt.Sprintf("8;%d;%dt", y, x))
}

// ResizeLn requests the window be resized to n lines (DECSLPP); n must
// be at least 24.
func (windowManipulation) ResizeLn(n int) (EscSegment, error) {
	if n < 24 {
		return EscSegment{}, &GeometryError{Reason: "DECSLPP line count must be at least 24"}
	}
	return NewCSI(fmt.Sprintf("%dt", n)), nil
}

// ChangeIconAndTitle changes both the icon name and the window title
// (OSC 0).
func (windowManipulation) ChangeIconAndTitle(title string) EscSegment {
	return NewOSC(title, "0;")
}

// ChangeTitle changes only the window title (OSC 2).
func (windowManipulation) ChangeTitle(title string) EscSegment {
	return NewOSC(title, "2;")
}
