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
	"sort"
	"sync"
)

// CellTraceEntry records one level of grid nesting a coordinate trace
// passed through: the cell entered and the coordinate relative to that
// cell's widget area.
type CellTraceEntry struct {
	Cell *Cell
	X, Y int
}

// VisualTarget is the result of tracing a window coordinate down
// through nested grids to the cell that ultimately occupies it.
// Grounded on spec.md 4.7's "Coordinate tracing" and video/items.py.
type VisualTarget struct {
	Cell      *Cell
	X, Y      int
	Traceable bool
	CellTrace []CellTraceEntry
}

// relativeCache memoizes RealTargetRelativeToCell results per
// (cell, x, y), per spec.md 4.7's "Results are memoized per (cell,
// origin-coord)".
var (
	relativeCacheMu sync.Mutex
	relativeCache   = map[relativeCacheKey]relativeResult{}
)

type relativeCacheKey struct {
	cell *Cell
	x, y int
}

type relativeResult struct {
	quarter Direction
	hasQuarter bool
	x, y    int
}

// GetVisualTarget translates a window coordinate (x, y) into the
// occupant cell at that position, then asks it to trace into any
// nested grid. Grounded on video/items.py's get_visualtarget.
func (g *Grid) GetVisualTarget(x, y int) VisualTarget {
	col := searchAxis(g.colRanges, x)
	row := searchAxis(g.rowRanges, y)
	if col < 0 || row < 0 {
		return VisualTarget{Traceable: false}
	}
	cell := g.grid[row][col]
	localX := x - g.colRanges[col].start
	localY := y - g.rowRanges[row].start
	vt := VisualTarget{Cell: cell, X: localX, Y: localY, Traceable: true}
	return vt.Trace()
}

// searchAxis binary-searches ranges for the index whose [start, end)
// contains pos, or -1 if pos falls outside every range.
func searchAxis(ranges []axisRange, pos int) int {
	i := sort.Search(len(ranges), func(i int) bool { return ranges[i].end > pos })
	if i >= len(ranges) || pos < ranges[i].start {
		return -1
	}
	return i
}

// Trace descends into vt.Cell if it is a Grid (embedded via a Widget
// that is itself *Grid) and not configured to stop tracing, appending
// each level to CellTrace. Grounded on spec.md 4.7's "trace()" /
// "_trace_vistarg".
func (vt VisualTarget) Trace() VisualTarget {
	if vt.Cell == nil || vt.Cell.IsNull() {
		return vt
	}
	inner, ok := vt.Cell.widget.(*Grid)
	if !ok || inner.stopTrace {
		return vt
	}
	vt.CellTrace = append(vt.CellTrace, CellTraceEntry{Cell: vt.Cell, X: vt.X, Y: vt.Y})
	widgetX := vt.X - vt.Cell.widgetInCell.X
	widgetY := vt.Y - vt.Cell.widgetInCell.Y
	next := inner.GetVisualTarget(widgetX, widgetY)
	next.CellTrace = append(vt.CellTrace, next.CellTrace...)
	return next
}

// RealTargetRelativeToCell computes the outer-quarter a coordinate
// falls in relative to cell's widget area ("" | N | O | S | E | NO |
// NE | SO | SE), and the coordinate within that quarter: a local
// in-widget coordinate when quarter is "", or the signed distance from
// the widget edge in the named direction otherwise. Grounded on
// video/items.py's real_target_relative_to_cell.
func RealTargetRelativeToCell(cell *Cell, x, y int) (quarter Direction, hasQuarter bool, rx, ry int) {
	key := relativeCacheKey{cell: cell, x: x, y: y}
	relativeCacheMu.Lock()
	defer relativeCacheMu.Unlock()
	if r, ok := relativeCache[key]; ok {
		return r.quarter, r.hasQuarter, r.x, r.y
	}
	wa := cell.widgetInCell
	switch {
	case x >= wa.X && x < wa.X+wa.W && y >= wa.Y && y < wa.Y+wa.H:
		rx, ry = x-wa.X, y-wa.Y
		relativeCache[key] = relativeResult{x: rx, y: ry}
		return 0, false, rx, ry
	case y < wa.Y && x < wa.X:
		quarter, hasQuarter = DirNO, true
		rx, ry = x-wa.X, y-wa.Y
	case y < wa.Y && x >= wa.X+wa.W:
		quarter, hasQuarter = DirNE, true
		rx, ry = x-(wa.X+wa.W), y-wa.Y
	case y >= wa.Y+wa.H && x < wa.X:
		quarter, hasQuarter = DirSO, true
		rx, ry = x-wa.X, y-(wa.Y+wa.H)
	case y >= wa.Y+wa.H && x >= wa.X+wa.W:
		quarter, hasQuarter = DirSE, true
		rx, ry = x-(wa.X+wa.W), y-(wa.Y+wa.H)
	case y < wa.Y:
		quarter, hasQuarter = DirN, true
		rx, ry = x-wa.X, y-wa.Y
	case y >= wa.Y+wa.H:
		quarter, hasQuarter = DirS, true
		rx, ry = x-wa.X, y-(wa.Y+wa.H)
	case x < wa.X:
		quarter, hasQuarter = DirO, true
		rx, ry = x-wa.X, y-wa.Y
	default: // x >= wa.X+wa.W
		quarter, hasQuarter = DirE, true
		rx, ry = x-(wa.X+wa.W), y-wa.Y
	}
	relativeCache[key] = relativeResult{quarter: quarter, hasQuarter: hasQuarter, x: rx, y: ry}
	return
}
