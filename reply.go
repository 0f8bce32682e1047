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
import "strings"

// Reply decoders turn a complete escape sequence captured by the byte
// interpreter into a typed report. Each Reply* struct doubles, like
// Key and Mouse, as both a decoded event and a hand-built match pattern
// for a Binder: nil pointer fields and zero-value Coords are wildcards.

var daVTClassTable = map[int]int{1: 100, 4: 132, 6: 102, 7: 131, 12: 125, 62: 220, 63: 320, 64: 420}
var ticVTClassTable = map[int]int{0: 100, 1: 220, 2: 240, 18: 330, 19: 340, 24: 320, 32: 382, 41: 420, 61: 510, 64: 520, 65: 525}

// vtClassToLevel resolves a DA/DA2 class code to a known terminal
// level, or (if the raw code exceeds maxRaw) reports it unconverted.
func vtClassToLevel(item string, table map[int]int, maxRaw int) (level int, raw string, hasLevel, hasRaw bool, err error) {
	n, err := strconv.Atoi(item)
	if err != nil {
		return 0, "", false, false, err
	}
	if lvl, ok := table[n]; ok {
		return lvl, "", true, false, nil
	}
	if n > maxRaw {
		return 0, item, false, true, nil
	}
	return 0, "", false, false, nil
}

func containsInt(set []int, v int) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

// ReplyDA is the primary device attributes report (DA1).
type ReplyDA struct {
	Seqs   string
	VT     *int
	VTRaw  *string
	Params []int
}

// DecodeReplyDA parses a "CSI ? Pc ; Pa ... c" primary-DA reply.
func DecodeReplyDA(seqs string) (ReplyDA, error) {
	if len(seqs) < 4 || seqs[len(seqs)-1] != 'c' {
		return ReplyDA{}, &InvalidReplyError{Reply: "DA", Payload: seqs}
	}
	fields := strings.Split(seqs[3:len(seqs)-1], ";")
	if len(fields) == 0 {
		return ReplyDA{}, &InvalidReplyError{Reply: "DA", Payload: seqs}
	}
	lvl, raw, hasLvl, hasRaw, err := vtClassToLevel(fields[0], daVTClassTable, 64)
	if err != nil {
		return ReplyDA{}, &InvalidReplyError{Reply: "DA", Payload: seqs}
	}
	var params []int
	for _, f := range fields[1:] {
		n, err := strconv.Atoi(f)
		if err != nil {
			return ReplyDA{}, &InvalidReplyError{Reply: "DA", Payload: seqs}
		}
		if f == "0" && hasLvl && lvl == 100 {
			lvl = 101
		}
		params = append(params, n)
	}
	out := ReplyDA{Seqs: seqs, Params: params}
	if hasLvl {
		out.VT = &lvl
	} else if hasRaw {
		out.VTRaw = &raw
	}
	return out, nil
}

// Matches reports whether event satisfies the pattern (nil fields
// wildcard; Params is required to be a subset of event's params).
func (pattern ReplyDA) Matches(event ReplyDA) bool {
	if pattern.VT != nil && (event.VT == nil || *pattern.VT != *event.VT) {
		return false
	}
	if pattern.VTRaw != nil && (event.VTRaw == nil || *pattern.VTRaw != *event.VTRaw) {
		return false
	}
	for _, p := range pattern.Params {
		if !containsInt(event.Params, p) {
			return false
		}
	}
	return true
}

// ReplyTID is the tertiary device attributes report (DA3).
type ReplyTID struct {
	Seqs               string
	ManufacturingSide  *string
	TerminalID         *string
}

// DecodeReplyTID parses a "DCS ! | MM TTTTTT ST" tertiary-DA reply: a
// two-character manufacturing site followed by a six-character terminal id.
func DecodeReplyTID(seqs string) (ReplyTID, error) {
	if len(seqs) < 8 {
		return ReplyTID{}, &InvalidReplyError{Reply: "TID", Payload: seqs}
	}
	mfg := seqs[4:6]
	tid := seqs[6 : len(seqs)-2]
	if len(mfg) != 2 || len(tid) != 6 {
		return ReplyTID{}, &InvalidReplyError{Reply: "TID", Payload: seqs}
	}
	return ReplyTID{Seqs: seqs, ManufacturingSide: &mfg, TerminalID: &tid}, nil
}

// Matches reports whether event satisfies the pattern.
func (pattern ReplyTID) Matches(event ReplyTID) bool {
	if pattern.ManufacturingSide != nil && (event.ManufacturingSide == nil || *pattern.ManufacturingSide != *event.ManufacturingSide) {
		return false
	}
	if pattern.TerminalID != nil && (event.TerminalID == nil || *pattern.TerminalID != *event.TerminalID) {
		return false
	}
	return true
}

// ReplyTIC is the secondary device attributes report (DA2).
type ReplyTIC struct {
	Seqs     string
	VT       *int
	VTRaw    *string
	Firmware *int
	Keyboard *bool
}

// DecodeReplyTIC parses a "CSI > Pc ; Pv ; Pk c" secondary-DA reply.
func DecodeReplyTIC(seqs string) (ReplyTIC, error) {
	if len(seqs) < 4 || seqs[len(seqs)-1] != 'c' {
		return ReplyTIC{}, &InvalidReplyError{Reply: "TIC", Payload: seqs}
	}
	fields := strings.Split(seqs[3:len(seqs)-1], ";")
	if len(fields) != 3 {
		return ReplyTIC{}, &InvalidReplyError{Reply: "TIC", Payload: seqs}
	}
	lvl, raw, hasLvl, hasRaw, err := vtClassToLevel(fields[0], ticVTClassTable, 65)
	if err != nil {
		return ReplyTIC{}, &InvalidReplyError{Reply: "TIC", Payload: seqs}
	}
	firmware, err := strconv.Atoi(fields[1])
	if err != nil {
		return ReplyTIC{}, &InvalidReplyError{Reply: "TIC", Payload: seqs}
	}
	var keyboard bool
	switch fields[2] {
	case "0":
		keyboard = false
	case "1":
		keyboard = true
	default:
		return ReplyTIC{}, &InvalidReplyError{Reply: "TIC", Payload: seqs}
	}
	out := ReplyTIC{Seqs: seqs, Firmware: &firmware, Keyboard: &keyboard}
	if hasLvl {
		out.VT = &lvl
	} else if hasRaw {
		out.VTRaw = &raw
	}
	return out, nil
}

// Matches reports whether event satisfies the pattern.
func (pattern ReplyTIC) Matches(event ReplyTIC) bool {
	if pattern.VT != nil && (event.VT == nil || *pattern.VT != *event.VT) {
		return false
	}
	if pattern.VTRaw != nil && (event.VTRaw == nil || *pattern.VTRaw != *event.VTRaw) {
		return false
	}
	if pattern.Firmware != nil && (event.Firmware == nil || *pattern.Firmware != *event.Firmware) {
		return false
	}
	if pattern.Keyboard != nil && (event.Keyboard == nil || *pattern.Keyboard != *event.Keyboard) {
		return false
	}
	return true
}

// ReplyCP is the cursor position report (CPR/DECXCPR).
type ReplyCP struct {
	Seqs string
	Page Coord
	X, Y Coord
}

// DecodeReplyCP parses a "CSI y ; x R" or "CSI ? y ; x ; page R" reply.
func DecodeReplyCP(seqs string) (ReplyCP, error) {
	if len(seqs) < 3 {
		return ReplyCP{}, &InvalidReplyError{Reply: "CP", Payload: seqs}
	}
	out := ReplyCP{Seqs: seqs}
	var fields []string
	if seqs[2] == '?' {
		fields = strings.Split(seqs[3:len(seqs)-1], ";")
		if len(fields) != 3 {
			return ReplyCP{}, &InvalidReplyError{Reply: "CP", Payload: seqs}
		}
		page, err := strconv.Atoi(fields[2])
		if err != nil {
			return ReplyCP{}, &InvalidReplyError{Reply: "CP", Payload: seqs}
		}
		out.Page = ExactCoord(page)
	} else {
		fields = strings.Split(seqs[2:len(seqs)-1], ";")
		if len(fields) != 2 {
			return ReplyCP{}, &InvalidReplyError{Reply: "CP", Payload: seqs}
		}
	}
	y, err := strconv.Atoi(fields[0])
	if err != nil {
		return ReplyCP{}, &InvalidReplyError{Reply: "CP", Payload: seqs}
	}
	x, err := strconv.Atoi(fields[1])
	if err != nil {
		return ReplyCP{}, &InvalidReplyError{Reply: "CP", Payload: seqs}
	}
	out.X, out.Y = ExactCoord(x), ExactCoord(y)
	return out, nil
}

// Matches reports whether event satisfies the pattern.
func (pattern ReplyCP) Matches(event ReplyCP) bool {
	return pattern.Page.matches(event.Page) && pattern.X.matches(event.X) && pattern.Y.matches(event.Y)
}

// ReplyCKS is the memory checksum report (DECCKSR).
type ReplyCKS struct {
	Seqs     string
	ID       *int
	Checksum *string
}

// DecodeReplyCKS parses a "DSR ... ! ~ hexhexhexhex" checksum reply.
func DecodeReplyCKS(seqs string) (ReplyCKS, error) {
	if len(seqs) < 3 {
		return ReplyCKS{}, &InvalidReplyError{Reply: "CKS", Payload: seqs}
	}
	out := ReplyCKS{Seqs: seqs}
	if seqs[2] != '!' {
		idField := strings.SplitN(seqs[2:], "!", 2)[0]
		id, err := strconv.Atoi(idField)
		if err != nil {
			return ReplyCKS{}, &InvalidReplyError{Reply: "CKS", Payload: seqs}
		}
		out.ID = &id
	}
	parts := strings.Split(seqs[:len(seqs)-2], "~")
	checksum := parts[len(parts)-1]
	out.Checksum = &checksum
	return out, nil
}

// Matches reports whether event satisfies the pattern.
func (pattern ReplyCKS) Matches(event ReplyCKS) bool {
	if pattern.ID != nil && (event.ID == nil || *pattern.ID != *event.ID) {
		return false
	}
	if pattern.Checksum != nil && (event.Checksum == nil || *pattern.Checksum != *event.Checksum) {
		return false
	}
	return true
}

// ReplyDECPM is a DEC private mode status report (DECRPM).
type ReplyDECPM struct {
	Seqs  string
	Mode  *int
	Value *int
}

// DecodeReplyDECPM parses a "CSI ? mode ; value $ y" DECRPM reply and
// records the result in the process-wide DECPM reply cache.
func DecodeReplyDECPM(seqs string) (ReplyDECPM, error) {
	if len(seqs) < 5 {
		return ReplyDECPM{}, &InvalidReplyError{Reply: "DECPM", Payload: seqs}
	}
	fields := strings.Split(seqs[3:len(seqs)-2], ";")
	if len(fields) != 2 {
		return ReplyDECPM{}, &InvalidReplyError{Reply: "DECPM", Payload: seqs}
	}
	mode, err := strconv.Atoi(fields[0])
	if err != nil {
		return ReplyDECPM{}, &InvalidReplyError{Reply: "DECPM", Payload: seqs}
	}
	value, err := strconv.Atoi(fields[1])
	if err != nil {
		return ReplyDECPM{}, &InvalidReplyError{Reply: "DECPM", Payload: seqs}
	}
	recordDECPMReply(mode, value)
	return ReplyDECPM{Seqs: seqs, Mode: &mode, Value: &value}, nil
}

// Matches reports whether event satisfies the pattern.
func (pattern ReplyDECPM) Matches(event ReplyDECPM) bool {
	if pattern.Mode != nil && (event.Mode == nil || *pattern.Mode != *event.Mode) {
		return false
	}
	if pattern.Value != nil && (event.Value == nil || *pattern.Value != *event.Value) {
		return false
	}
	return true
}

// ReplyWindow is an XTWINOPS window/text-area geometry report.
type ReplyWindow struct {
	Seqs string
	Mode *int
	X, Y Coord
}

// DecodeReplyWindow parses a "CSI mode ; y ; x t" XTWINOPS reply.
func DecodeReplyWindow(seqs string) (ReplyWindow, error) {
	if len(seqs) < 3 {
		return ReplyWindow{}, &InvalidReplyError{Reply: "Window", Payload: seqs}
	}
	fields := strings.Split(seqs[2:len(seqs)-1], ";")
	if len(fields) != 3 {
		return ReplyWindow{}, &InvalidReplyError{Reply: "Window", Payload: seqs}
	}
	mode, err := strconv.Atoi(fields[0])
	if err != nil {
		return ReplyWindow{}, &InvalidReplyError{Reply: "Window", Payload: seqs}
	}
	y, err := strconv.Atoi(fields[1])
	if err != nil {
		return ReplyWindow{}, &InvalidReplyError{Reply: "Window", Payload: seqs}
	}
	x, err := strconv.Atoi(fields[2])
	if err != nil {
		return ReplyWindow{}, &InvalidReplyError{Reply: "Window", Payload: seqs}
	}
	return ReplyWindow{Seqs: seqs, Mode: &mode, X: ExactCoord(x), Y: ExactCoord(y)}, nil
}

// Matches reports whether event satisfies the pattern.
func (pattern ReplyWindow) Matches(event ReplyWindow) bool {
	if pattern.Mode != nil && (event.Mode == nil || *pattern.Mode != *event.Mode) {
		return false
	}
	return pattern.X.matches(event.X) && pattern.Y.matches(event.Y)
}

// ReplyOSColor is an OSC color query reply (palette, environment,
// cursor, highlight, or pointer color).
type ReplyOSColor struct {
	Seqs       string
	Target     *int
	R, G, B Coord
}

// DecodeReplyOSColor parses a "OSC target ; rgb:rr/gg/bb ST" color
// reply. Palette-slot targets (OSC 4) are reported as their negated
// index so they sort distinctly from the environment/cursor/highlight/
// pointer target numbers.
func DecodeReplyOSColor(seqs string) (ReplyOSColor, error) {
	if len(seqs) < 4 {
		return ReplyOSColor{}, &InvalidReplyError{Reply: "OSColor", Payload: seqs}
	}
	fields := strings.Split(seqs[2:len(seqs)-2], ";")
	if len(fields) < 2 {
		return ReplyOSColor{}, &InvalidReplyError{Reply: "OSColor", Payload: seqs}
	}
	last := fields[len(fields)-1]
	if len(last) < 4 {
		return ReplyOSColor{}, &InvalidReplyError{Reply: "OSColor", Payload: seqs}
	}
	rgb := strings.Split(last[4:], "/")
	if len(rgb) != 3 {
		return ReplyOSColor{}, &InvalidReplyError{Reply: "OSColor", Payload: seqs}
	}
	r, g, b, err := parseHexTriple(padHex(rgb[0]) + padHex(rgb[1]) + padHex(rgb[2]))
	if err != nil {
		return ReplyOSColor{}, &InvalidReplyError{Reply: "OSColor", Payload: seqs}
	}
	var target int
	if fields[0] == "4" {
		idx, err := strconv.Atoi(fields[1])
		if err != nil {
			return ReplyOSColor{}, &InvalidReplyError{Reply: "OSColor", Payload: seqs}
		}
		target = -idx
	} else {
		idx, err := strconv.Atoi(fields[0])
		if err != nil {
			return ReplyOSColor{}, &InvalidReplyError{Reply: "OSColor", Payload: seqs}
		}
		target = idx
	}
	return ReplyOSColor{Seqs: seqs, Target: &target, R: ExactCoord(r), G: ExactCoord(g), B: ExactCoord(b)}, nil
}

// padHex truncates (or, if short, leaves as-is) a color-channel hex
// field to its first two digits, matching the original's r[:2] slice.
func padHex(s string) string {
	if len(s) >= 2 {
		return s[:2]
	}
	return s
}

// Matches reports whether event satisfies the pattern.
func (pattern ReplyOSColor) Matches(event ReplyOSColor) bool {
	if pattern.Target != nil && (event.Target == nil || *pattern.Target != *event.Target) {
		return false
	}
	return pattern.R.matches(event.R) && pattern.G.matches(event.G) && pattern.B.matches(event.B)
}
