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

// Package layout implements the grid/cell layout engine: declarative axis
// sizing via GeoCalculator, a Grid of Cells each framing a Widget, and
// coordinate tracing from window position back to the occupying cell.
// Grounded on video/geocalc.py, video/grid.py, video/frame.py and
// video/items.py, cross-checked against tcell's views subpackage
// (boxlayout.go, cellarea.go) for the idiomatic Go shape of a container
// Widget.
package layout

import vtcore "github.com/vtcore/vtcore"

// Direction names a cardinal or corner band around a Cell's Widget, or a
// traversal direction between neighboring cells in a Grid.
type Direction int

const (
	DirN Direction = iota
	DirO
	DirS
	DirE
	DirNO
	DirNE
	DirSO
	DirSE
)

func (d Direction) String() string {
	switch d {
	case DirN:
		return "N"
	case DirO:
		return "O"
	case DirS:
		return "S"
	case DirE:
		return "E"
	case DirNO:
		return "NO"
	case DirNE:
		return "NE"
	case DirSO:
		return "SO"
	case DirSE:
		return "SE"
	default:
		return ""
	}
}

// cardinalDirections are the four edges a Cell borders its Grid
// neighbors along; the four corners are frame bands only, not
// Grid.Neighbor directions.
var cardinalDirections = [4]Direction{DirN, DirO, DirS, DirE}

// Widget is the content a Cell frames. Display must return exactly
// height rows (as reported by Size) each of printable length width,
// padding with the Cell's null rune as needed — the layout engine never
// pads on the widget's behalf. Grounded on spec.md 4.7's "Rendering"
// paragraph and cross-checked against tcell views' Widget/CellModel
// contract (cellarea.go) for the Size/Draw split.
type Widget interface {
	Size() (w, h int)
	Display() []vtcore.EscContainer
	Cursor() (x, y int, visible bool)
}

// Rect is an axis-aligned rectangle in character cells.
type Rect struct {
	X, Y, W, H int
}

// Cell owns a Frame around a Widget and the post-layout geometry
// computed when its master Grid resizes. Grounded on spec.md 4.7's Cell
// description and video/grid.py's Cell class.
type Cell struct {
	masterGrid *Grid
	frame      *Frame
	widget     Widget
	nullChar   rune

	row, col, rowSpan, colSpan int
	yRows, xColumns            []*GeoCalculator

	widgetSize Rect // X,Y unused; W,H populated
	cellSize   Rect // X,Y unused; W,H populated

	inWindow, inGrid, inCell, widgetInCell Rect
	cursorInWidget                         [2]int
	cursorVisible                          bool

	display []vtcore.EscContainer

	neighbors map[Direction]*Cell
}

// NewCell constructs a Cell framing widget with frame, using null as the
// filler rune for any NullCell substitutes created around it.
func NewCell(widget Widget, frame *Frame, null rune) *Cell {
	return &Cell{widget: widget, frame: frame, nullChar: null, neighbors: map[Direction]*Cell{}}
}

// IsNull reports whether c is a NullCell placeholder: one with no
// widget, printing its grid's null rune across its whole area.
func (c *Cell) IsNull() bool { return c != nil && c.widget == nil }

// NewNullCell builds the placeholder occupant video/grid.py's
// make_grid installs at every unassigned grid coordinate.
func NewNullCell(null rune) *Cell {
	return &Cell{nullChar: null, neighbors: map[Direction]*Cell{}}
}

// Neighbor returns the adjacent cell across dir in the master grid, or
// nil at a grid boundary. Grounded on video/grid.py's make_grid
// boundary_cells construction.
func (c *Cell) Neighbor(dir Direction) *Cell { return c.neighbors[dir] }

// MasterGrid returns the Grid that owns c, or nil if c is unplaced.
func (c *Cell) MasterGrid() *Grid { return c.masterGrid }

// Span returns the row/column span c occupies in its master grid.
func (c *Cell) Span() (row, col, rowSpan, colSpan int) {
	return c.row, c.col, c.rowSpan, c.colSpan
}

// resize recomputes cell_size from the axis stamps the cell spans, asks
// its Frame to fit the widget within that space, and caches the four
// geometry rectangles. Grounded on spec.md 4.7's "Cell layout" and
// video/grid.py's Cell._resize.
func (c *Cell) resize(originX, originY int) error {
	w, h := 0, 0
	for _, g := range c.xColumns {
		w += g.Size()
	}
	for _, g := range c.yRows {
		h += g.Size()
	}
	c.cellSize = Rect{W: w, H: h}

	if c.IsNull() {
		c.inCell = Rect{X: 0, Y: 0, W: w, H: h}
		c.widgetInCell = c.inCell
		c.inGrid = Rect{X: originX, Y: originY, W: w, H: h}
		return nil
	}

	if c.frame == nil {
		c.frame = NewFrame(nil, nil)
	}
	if err := c.frame.Resize(w, h); err != nil {
		return err
	}
	ww, wh := c.frame.WidgetSize()
	c.widgetSize = Rect{W: ww, H: wh}
	ex, ey := c.frame.WidgetOrigin()
	c.widgetInCell = Rect{X: ex, Y: ey, W: ww, H: wh}
	c.inCell = Rect{X: 0, Y: 0, W: w, H: h}
	c.inGrid = Rect{X: originX, Y: originY, W: w, H: h}
	return nil
}

// setWindowOrigin stamps in_window from the grid's own in_window origin
// plus this cell's in_grid offset; called after the whole grid has been
// resized so nested grids compose correctly.
func (c *Cell) setWindowOrigin(gridOriginX, gridOriginY int) {
	c.inWindow = Rect{X: gridOriginX + c.inGrid.X, Y: gridOriginY + c.inGrid.Y, W: c.inGrid.W, H: c.inGrid.H}
}

// NewDisplay recomputes and caches the composed rows for this cell:
// frame bands wrapped around each widget row, per spec.md 4.7
// "Rendering".
func (c *Cell) NewDisplay() []vtcore.EscContainer {
	if c.IsNull() {
		row := vtcore.NewContainer(vtcore.NewSegment("", vtcore.PadTo("", c.cellSize.W, c.nullChar), ""))
		rows := make([]vtcore.EscContainer, c.cellSize.H)
		for i := range rows {
			rows[i] = row
		}
		c.display = rows
		return rows
	}
	widgetRows := c.widget.Display()
	c.display = c.frame.Compose(widgetRows)
	return c.display
}

// Display returns the most recently composed rows, computing them on
// first use.
func (c *Cell) Display() []vtcore.EscContainer {
	if c.display == nil {
		return c.NewDisplay()
	}
	return c.display
}

// NewCursor re-reads the widget-reported cursor position and caches it
// in widget coordinates only; CursorInWindow translates it into window
// coordinates on each call. No in-cell or in-grid variant is cached.
func (c *Cell) NewCursor() {
	if c.IsNull() {
		return
	}
	x, y, visible := c.widget.Cursor()
	c.cursorInWidget = [2]int{x, y}
	c.cursorVisible = visible
}

// CursorInWindow returns the cursor position translated into window
// coordinates, and whether the widget reports it visible.
func (c *Cell) CursorInWindow() (x, y int, visible bool) {
	ex, ey := c.frame.WidgetOrigin()
	return c.inWindow.X + ex + c.cursorInWidget[0], c.inWindow.Y + ey + c.cursorInWidget[1], c.cursorVisible
}
