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

package layout

import (
	vtcore "github.com/vtcore/vtcore"
)

// PadSpec is a frame band's fill pattern: Pattern repeats (and is
// truncated) to the needed length; Filler pads any remainder when
// Pattern is empty or does not divide evenly. Grounded on
// video/frame.py's (pattern, filler) band descriptors.
type PadSpec struct {
	Pattern string
	Filler  rune
}

func (p PadSpec) render(n int) string {
	if n <= 0 {
		return ""
	}
	if p.Pattern == "" {
		return vtcore.PadTo("", n, p.Filler)
	}
	runes := []rune(p.Pattern)
	var b []rune
	w := 0
	for i := 0; w < n; i++ {
		r := runes[i%len(runes)]
		b = append(b, r)
		w += vtcore.RuneWidth(r)
	}
	// A trailing wide rune may have overshot n by one column; widen to n
	// with the filler rather than splitting it, matching vtcore.PadTo's
	// overflow rule.
	return vtcore.PadTo(string(b), n, p.Filler)
}

// Frame holds the eight directional padding bands around a Cell's
// Widget, an orientation preference for how surplus/deficit space is
// distributed, a mutability policy, and the two GeoCalculators that size
// the widget area within the cell. Grounded on spec.md 4.7's Frame
// description and video/frame.py.
type Frame struct {
	bands   map[Direction]PadSpec
	orient  map[Direction]bool // sides named by SetOrient: extended last
	mutable bool

	widthCalc, heightCalc *GeoCalculator

	cellW, cellH     int
	widgetW, widgetH int
	originX, originY int

	nRows, sRows []string
	eCol, oCol   []string
}

// NewFrame constructs a Frame. widthCalc/heightCalc size the widget area
// from the cell's total size; nil defaults to consuming the whole cell
// on that axis (GeoCalculator(None) in video/frame.py's common case).
func NewFrame(widthCalc, heightCalc *GeoCalculator) *Frame {
	if widthCalc == nil {
		widthCalc = NewRemaining(WithCompareProgram("always:use remain"))
	}
	if heightCalc == nil {
		heightCalc = NewRemaining(WithCompareProgram("always:use remain"))
	}
	return &Frame{
		bands:     map[Direction]PadSpec{},
		orient:    map[Direction]bool{},
		mutable:   true,
		widthCalc: widthCalc, heightCalc: heightCalc,
	}
}

// SetBand sets the pattern/filler for one of the eight directional
// bands (N, O, S, E, NO, NE, SO, SE).
func (f *Frame) SetBand(dir Direction, spec PadSpec) { f.bands[dir] = spec }

// SetMutable sets whether the frame may shrink its widget area when the
// cell does not have room for the configured widget size plus padding.
// An immutable frame that does not fit fails resize with GeometryError.
func (f *Frame) SetMutable(mutable bool) { f.mutable = mutable }

// SetOrient marks dirs (a subset of N/O/S/E) as the sides to extend
// last on a surplus; the remaining sides absorb surplus first.
// Orientation has no effect on a deficit: Resize then clamps the widget
// area to the cell and every band is empty. Grounded on spec.md 4.7's
// widget_orient preference ("e.g. NO").
func (f *Frame) SetOrient(dirs ...Direction) {
	f.orient = map[Direction]bool{}
	for _, d := range dirs {
		f.orient[d] = true
	}
}

// WidgetSize returns the widget area computed by the most recent
// Resize.
func (f *Frame) WidgetSize() (w, h int) { return f.widgetW, f.widgetH }

// WidgetOrigin returns the widget area's offset from the cell origin,
// i.e. the E-band width and N-band height.
func (f *Frame) WidgetOrigin() (x, y int) { return f.originX, f.originY }

// Resize fits the widget area within a cell of size (cellW, cellH) and
// materializes the four band-row arrays used by Compose. Grounded on
// spec.md 4.7's "Frame composition".
func (f *Frame) Resize(cellW, cellH int) error {
	f.cellW, f.cellH = cellW, cellH

	widgetW := f.widthCalc.Call(cellW, cellW)
	widgetH := f.heightCalc.Call(cellH, cellH)
	remW := cellW - widgetW
	remH := cellH - widgetH
	if remW < 0 || remH < 0 {
		if !f.mutable {
			return &vtcore.GeometryError{Reason: "frame does not fit remaining cell space"}
		}
		if widgetW > cellW {
			widgetW = cellW
		}
		if widgetH > cellH {
			widgetH = cellH
		}
		remW = cellW - widgetW
		remH = cellH - widgetH
	}
	f.widgetW, f.widgetH = widgetW, widgetH

	eWidth, oWidth := f.distribute(remW, DirE, DirO)
	nHeight, sHeight := f.distribute(remH, DirN, DirS)
	f.originX, f.originY = eWidth, nHeight

	f.nRows = bandRows(f.bands[DirN], widgetW, nHeight)
	f.sRows = bandRows(f.bands[DirS], widgetW, sHeight)
	f.eCol = bandRows(f.bands[DirE], eWidth, cellH)
	f.oCol = bandRows(f.bands[DirO], oWidth, cellH)
	return nil
}

func bandRows(spec PadSpec, width, n int) []string {
	rows := make([]string, n)
	for i := range rows {
		rows[i] = spec.render(width)
	}
	return rows
}

// distribute splits remainder between first and second. When exactly
// one of them is named by SetOrient, that side gets the smaller half
// and the other side the larger; otherwise first gets the smaller half.
func (f *Frame) distribute(remainder int, first, second Direction) (firstLen, secondLen int) {
	switch {
	case f.orient[second] && !f.orient[first]:
		firstLen = remainder - remainder/2
		secondLen = remainder / 2
	case f.orient[first] && !f.orient[second]:
		secondLen = remainder - remainder/2
		firstLen = remainder / 2
	default:
		firstLen = remainder / 2
		secondLen = remainder - remainder/2
	}
	return
}

// Compose wraps widgetRows (exactly WidgetSize() rows, already padded
// to WidgetSize() width by the widget) with the frame's materialized
// bands to produce the full cell display.
func (f *Frame) Compose(widgetRows []vtcore.EscContainer) []vtcore.EscContainer {
	rows := make([]vtcore.EscContainer, 0, f.cellH)
	idx := 0
	for _, s := range f.nRows {
		rows = append(rows, f.wrapRow(idx, vtcore.NewContainer(vtcore.NewSegment("", s, ""))))
		idx++
	}
	for _, wr := range widgetRows {
		rows = append(rows, f.wrapRow(idx, wr))
		idx++
	}
	for _, s := range f.sRows {
		rows = append(rows, f.wrapRow(idx, vtcore.NewContainer(vtcore.NewSegment("", s, ""))))
		idx++
	}
	return rows
}

func (f *Frame) wrapRow(i int, middle vtcore.EscContainer) vtcore.EscContainer {
	left := ""
	right := ""
	if i < len(f.eCol) {
		left = f.eCol[i]
	}
	if i < len(f.oCol) {
		right = f.oCol[i]
	}
	row := vtcore.NewContainer(vtcore.NewSegment("", left, ""))
	row = row.Concat(middle)
	row = row.Concat(vtcore.NewSegment("", right, ""))
	return row
}
