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
	"os"
	"sync"
)

// DECPModeIds collects the DEC private mode numbers referenced by
// DECPrivateMode.High/Low and the named DECPMHandler bundles below.
var DECPModeIds = struct {
	ApplicationCursorKeys, DesignateUSASCII, Column132Mode, SmoothScroll, ReverseVideo,
	OriginMode, AutoWrapMode, AutoRepeatKeys, SendMousePressX10, ShowToolbar,
	StartBlinkingCursor, EnableXORBlinkingCursor, PrintFormFeed, PrintFullScreen, ShowCursor,
	ShowScrollbar, EnableFontShifting, EnterTektronixMode, Allow80To132Mode, CursesMoreFix,
	NationalReplacementCharacter, ExpandedPrintMode, MarginBell, ReverseWraparound, StartLogging,
	AlternateScreenBuffer47, ApplicationKeypad, BackarrowKeySendsBackspace, EnableLRMargin,
	DisableSixelScrolling, NotClearScreenDECCOLM, SendMousePressX11, HighlightMouseTracking,
	CellMotionMouseTracking, AllMotionMouseTracking, SendFocusInFocusOut, UTF8MouseMode,
	SGRMouseMode, AlternateScrollMode, TTYOutScrollToBottom, KeyPressScrollToBottom,
	UrxvtMouseMode, SGRMousePixelMode, InterpretMetaKey, SpecialModifiers, SendESCMetaModifies,
	SendDELEditingKeypad, SendESCAltModifies, KeepSelection, SelectToClipboard, BellIsUrgent,
	PopOnBell, KeepClipboard, SwitchingAlternateScreenBuffer, AlternateScreenBuffer,
	SaveCursor, SaveCursorAlternateScreenBuffer, TerminfoTermcapKey, SunFKey, HPFKey, SCOFKey,
	LegacyKeyboard, VT220Keyboard, BracketedPasteMode int
}{
	ApplicationCursorKeys: 1, DesignateUSASCII: 2, Column132Mode: 3, SmoothScroll: 4, ReverseVideo: 5,
	OriginMode: 6, AutoWrapMode: 7, AutoRepeatKeys: 8, SendMousePressX10: 9, ShowToolbar: 10,
	StartBlinkingCursor: 12, EnableXORBlinkingCursor: 14, PrintFormFeed: 18, PrintFullScreen: 19, ShowCursor: 25,
	ShowScrollbar: 30, EnableFontShifting: 35, EnterTektronixMode: 38, Allow80To132Mode: 40, CursesMoreFix: 41,
	NationalReplacementCharacter: 42, ExpandedPrintMode: 43, MarginBell: 44, ReverseWraparound: 45, StartLogging: 46,
	AlternateScreenBuffer47: 47, ApplicationKeypad: 66, BackarrowKeySendsBackspace: 67, EnableLRMargin: 69,
	DisableSixelScrolling: 80, NotClearScreenDECCOLM: 95, SendMousePressX11: 1000, HighlightMouseTracking: 1001,
	CellMotionMouseTracking: 1002, AllMotionMouseTracking: 1003, SendFocusInFocusOut: 1004, UTF8MouseMode: 1005,
	SGRMouseMode: 1006, AlternateScrollMode: 1007, TTYOutScrollToBottom: 1010, KeyPressScrollToBottom: 1011,
	UrxvtMouseMode: 1015, SGRMousePixelMode: 1016, InterpretMetaKey: 1034, SpecialModifiers: 1035, SendESCMetaModifies: 1036,
	SendDELEditingKeypad: 1037, SendESCAltModifies: 1039, KeepSelection: 1040, SelectToClipboard: 1041, BellIsUrgent: 1042,
	PopOnBell: 1043, KeepClipboard: 1044, SwitchingAlternateScreenBuffer: 1046, AlternateScreenBuffer: 1047,
	SaveCursor: 1048, SaveCursorAlternateScreenBuffer: 1049, TerminfoTermcapKey: 1050, SunFKey: 1051, HPFKey: 1052, SCOFKey: 1053,
	LegacyKeyboard: 1060, VT220Keyboard: 1061, BracketedPasteMode: 2004,
}

// decpmReplyCache is the process-wide store of the last known state for
// each DEC private mode number, filled by the reply decoder (see
// ReplyDECPM in reply.go) and consulted by DECPrivateMode.ReplyCache.
var decpmReplyCache = struct {
	mu sync.RWMutex
	m  map[int]int
}{m: make(map[int]int)}

// recordDECPMReply stores the last reported status for mode, called by
// the reply decoder upon a successful DECRPM parse.
func recordDECPMReply(mode, status int) {
	decpmReplyCache.mu.Lock()
	decpmReplyCache.m[mode] = status
	decpmReplyCache.mu.Unlock()
}

// DECPrivateMode builds DECSET/DECRST sequences (CSI ? mode h / CSI ?
// mode l) and exposes the reply cache lookup.
var DECPrivateMode = decPrivateMode{}

type decPrivateMode struct{}

// High builds "CSI ? mode h" (DECSET), or the zero-value segment if
// DECPMGate is closed.
func (decPrivateMode) High(mode int) EscSegment {
	if !DECPMGate.Open() {
		return EscSegment{}
	}
	return NewCSI(fmt.Sprintf("?%dh", mode))
}

// Low builds "CSI ? mode l" (DECRST), or the zero-value segment if
// DECPMGate is closed.
func (decPrivateMode) Low(mode int) EscSegment {
	if !DECPMGate.Open() {
		return EscSegment{}
	}
	return NewCSI(fmt.Sprintf("?%dl", mode))
}

// ReplyCache returns the last known status reported for mode, if any
// DECRPM reply for it has been decoded.
func (decPrivateMode) ReplyCache(mode int) (status int, ok bool) {
	decpmReplyCache.mu.RLock()
	defer decpmReplyCache.mu.RUnlock()
	status, ok = decpmReplyCache.m[mode]
	return
}

var (
	atExitMu    sync.Mutex
	atExitFuncs []func()
)

// registerAtExit queues fn to run when RunAtExit is called. Go has no
// interpreter-level atexit hook; callers that want the original's
// leave-the-terminal-sane behavior must defer vtcore.RunAtExit() (or
// call it from a signal handler) in main.
func registerAtExit(fn func()) {
	atExitMu.Lock()
	atExitFuncs = append(atExitFuncs, fn)
	atExitMu.Unlock()
}

// RunAtExit runs every cleanup callback registered by a DECPMHandler
// constructed with a non-empty atExit argument, in registration order.
// Call this once, deferred from main, to restore DEC private modes the
// program enabled (or disabled) for the lifetime of the process.
func RunAtExit() {
	atExitMu.Lock()
	fns := atExitFuncs
	atExitFuncs = nil
	atExitMu.Unlock()
	for _, fn := range fns {
		fn()
	}
}

// DECPMHandler binds a single DEC private mode number to its High/Low
// constructors and optional process-exit restoration.
type DECPMHandler struct {
	Mode int
}

// NewDECPMHandler builds a handler for mode. If atExit is "h" or "l", a
// cleanup callback that writes CSI ? mode h/l to os.Stdout is queued via
// registerAtExit (run by RunAtExit, not automatically at process exit).
func NewDECPMHandler(mode int, atExit string) DECPMHandler {
	h := DECPMHandler{Mode: mode}
	switch atExit {
	case "h":
		registerAtExit(func() { fmt.Fprint(os.Stdout, DECPrivateMode.High(mode).Bytes()) })
	case "l":
		registerAtExit(func() { fmt.Fprint(os.Stdout, DECPrivateMode.Low(mode).Bytes()) })
	}
	return h
}

// High builds "CSI ? mode h".
func (h DECPMHandler) High() EscSegment { return DECPrivateMode.High(h.Mode) }

// Low builds "CSI ? mode l".
func (h DECPMHandler) Low() EscSegment { return DECPrivateMode.Low(h.Mode) }

// HighOut writes High() to os.Stdout.
func (h DECPMHandler) HighOut() { fmt.Fprint(os.Stdout, h.High().Bytes()) }

// LowOut writes Low() to os.Stdout.
func (h DECPMHandler) LowOut() { fmt.Fprint(os.Stdout, h.Low().Bytes()) }

// The named DECPMHandler bundles below mirror decpm.py's module-level
// factory functions. Each takes the atExit direction ("h", "l", or "")
// from the caller and passes it to NewDECPMHandler unchanged; there is
// no default direction.

func MouseSendPress(atExit string) DECPMHandler { return NewDECPMHandler(DECPModeIds.SendMousePressX10, atExit) }
func MouseSendPressNRelease(atExit string) DECPMHandler {
	return NewDECPMHandler(DECPModeIds.SendMousePressX11, atExit)
}
func MouseHighlightTracking(atExit string) DECPMHandler {
	return NewDECPMHandler(DECPModeIds.HighlightMouseTracking, atExit)
}
func MouseCellMotionTracking(atExit string) DECPMHandler {
	return NewDECPMHandler(DECPModeIds.CellMotionMouseTracking, atExit)
}
func MouseAllTracking(atExit string) DECPMHandler {
	return NewDECPMHandler(DECPModeIds.AllMotionMouseTracking, atExit)
}
func ScreenReverseVideo(atExit string) DECPMHandler { return NewDECPMHandler(DECPModeIds.ReverseVideo, atExit) }
func ScreenAlternateBuffer(atExit string) DECPMHandler {
	return NewDECPMHandler(DECPModeIds.SaveCursorAlternateScreenBuffer, atExit)
}
func CursorAutowrapMode(atExit string) DECPMHandler { return NewDECPMHandler(DECPModeIds.AutoWrapMode, atExit) }
func CursorBlinking(atExit string) DECPMHandler     { return NewDECPMHandler(DECPModeIds.StartBlinkingCursor, atExit) }
func CursorShow(atExit string) DECPMHandler         { return NewDECPMHandler(DECPModeIds.ShowCursor, atExit) }
func CursorSaveDEC(atExit string) DECPMHandler       { return NewDECPMHandler(DECPModeIds.SaveCursor, atExit) }
func ApplicationCursorKeys(atExit string) DECPMHandler {
	return NewDECPMHandler(DECPModeIds.ApplicationCursorKeys, atExit)
}
func BracketedPasteMode(atExit string) DECPMHandler {
	return NewDECPMHandler(DECPModeIds.BracketedPasteMode, atExit)
}
