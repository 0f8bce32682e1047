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

	vtcore "github.com/vtcore/vtcore"
)

// axisRange is the stamped [start, end) character range a single row or
// column occupies along its axis, per spec.md 4.7's __grid_char_range__.
type axisRange struct{ start, end int }

// Grid is a Cell that additionally owns a 2-D matrix of occupant Cells,
// one GeoCalculator per row and one per column (each with its own
// priority-ordered evaluation list), and the back-pointer bookkeeping
// make_grid installs. A Grid satisfies Widget so it may itself be
// nested as another Cell's content. Grounded on spec.md 4.7 and
// video/grid.py's Grid class.
type Grid struct {
	Cell

	occupants map[*Cell]struct{}
	grid      [][]*Cell

	rowCalcs, colCalcs       []*GeoCalculator
	rowPriority, colPriority []int
	rowRanges, colRanges     []axisRange

	nullChar rune

	// stopTrace prevents get_visualtarget from recursing into this
	// grid's children; used for grids that present themselves as an
	// opaque leaf to outer coordinate tracing.
	stopTrace bool
}

// NewGrid builds an empty rows x cols grid, every position occupied by
// a NullCell that prints null. Row and column GeoCalculators default to
// an even fractional split of the axis and must be replaced with
// SetRowCalculators/SetColumnCalculators for anything else.
func NewGrid(rows, cols int, null rune) *Grid {
	g := &Grid{
		occupants: map[*Cell]struct{}{},
		grid:      make([][]*Cell, rows),
		nullChar:  null,
	}
	g.Cell.nullChar = null
	g.Cell.neighbors = map[Direction]*Cell{}
	for r := range g.grid {
		g.grid[r] = make([]*Cell, cols)
		for c := range g.grid[r] {
			g.grid[r][c] = NewNullCell(null)
		}
	}
	g.rowCalcs = evenSplit(rows)
	g.colCalcs = evenSplit(cols)
	g.rowPriority = identityOrder(rows)
	g.colPriority = identityOrder(cols)
	return g
}

func evenSplit(n int) []*GeoCalculator {
	calcs := make([]*GeoCalculator, n)
	for i := range calcs {
		frac := 0.0
		if n > 0 {
			frac = 1.0 / float64(n)
		}
		calcs[i] = NewFraction(frac)
	}
	return calcs
}

func identityOrder(n int) []int {
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	return order
}

// SetRowCalculators replaces the grid's row axis. priority may be nil
// to evaluate rows in positional order.
func (g *Grid) SetRowCalculators(calcs []*GeoCalculator, priority []int) {
	g.rowCalcs = calcs
	if priority == nil {
		priority = identityOrder(len(calcs))
	}
	g.rowPriority = priority
}

// SetColumnCalculators replaces the grid's column axis. priority may be
// nil to evaluate columns in positional order.
func (g *Grid) SetColumnCalculators(calcs []*GeoCalculator, priority []int) {
	g.colCalcs = calcs
	if priority == nil {
		priority = identityOrder(len(calcs))
	}
	g.colPriority = priority
}

func sizeAxis(calcs []*GeoCalculator, priority []int, total int) ([]axisRange, error) {
	remaining := total
	for _, idx := range priority {
		calcs[idx].Call(total, remaining)
		remaining -= calcs[idx].Size()
	}
	ranges := make([]axisRange, len(calcs))
	pos, sum := 0, 0
	for i, c := range calcs {
		size := c.Size()
		ranges[i] = axisRange{start: pos, end: pos + size}
		pos += size
		sum += size
	}
	if sum > total {
		return nil, &vtcore.GeometryError{Reason: "axis GeoCalculators exceed axis total"}
	}
	return ranges, nil
}

// Resize runs the grid sizing algorithm on both axes, stamps each
// calculator's char range, then resizes every occupant (including
// NullCells) from those stamps. Grounded on spec.md 4.7's "Grid sizing
// algorithm" and "Cell layout".
func (g *Grid) Resize(w, h int) error {
	colRanges, err := sizeAxis(g.colCalcs, g.colPriority, w)
	if err != nil {
		return err
	}
	rowRanges, err := sizeAxis(g.rowCalcs, g.rowPriority, h)
	if err != nil {
		return err
	}
	g.colRanges, g.rowRanges = colRanges, rowRanges
	g.Cell.cellSize = Rect{W: w, H: h}

	for r := range g.grid {
		for c := range g.grid[r] {
			cell := g.grid[r][c]
			row, col, rowSpan, colSpan := r, c, 1, 1
			if !cell.IsNull() {
				if cell.row != r || cell.col != c {
					continue // continuation of a span rooted elsewhere
				}
				row, col, rowSpan, colSpan = cell.Span()
			}
			cell.xColumns = g.colCalcs[col : col+colSpan]
			cell.yRows = g.rowCalcs[row : row+rowSpan]
			if err := cell.resize(g.colRanges[col].start, g.rowRanges[row].start); err != nil {
				return err
			}
		}
	}
	g.makeGrid()
	return nil
}

// makeGrid walks the occupant matrix and populates each cell's
// boundary_cells neighbor lists, per spec.md 4.7's "Grid.make_grid".
func (g *Grid) makeGrid() {
	rows := len(g.grid)
	if rows == 0 {
		return
	}
	cols := len(g.grid[0])
	at := func(r, c int) *Cell {
		if r < 0 || r >= rows || c < 0 || c >= cols {
			return nil
		}
		return g.grid[r][c]
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			cell := g.grid[r][c]
			if cell == nil {
				continue
			}
			setNeighbor(cell, DirN, at(r-1, c))
			setNeighbor(cell, DirS, at(r+1, c))
			setNeighbor(cell, DirO, at(r, c-1))
			setNeighbor(cell, DirE, at(r, c+1))
		}
	}
}

func setNeighbor(cell *Cell, dir Direction, n *Cell) {
	if n != nil && n != cell {
		cell.neighbors[dir] = n
	}
}

// PlaceCell inserts cell at (row, col) spanning rowSpan x colSpan
// (minimum 1x1). Fails with GridConfigurationError if the target
// rectangle is out of bounds or any position in it is already
// occupied. Grounded on spec.md 4.7's "Grid.place_cell".
func (g *Grid) PlaceCell(cell *Cell, row, col, rowSpan, colSpan int) error {
	if rowSpan <= 0 {
		rowSpan = 1
	}
	if colSpan <= 0 {
		colSpan = 1
	}
	if row < 0 || col < 0 || row+rowSpan > len(g.rowCalcs) || col+colSpan > len(g.colCalcs) {
		return &vtcore.GridConfigurationError{Reason: "placement out of grid bounds"}
	}
	for r := row; r < row+rowSpan; r++ {
		for c := col; c < col+colSpan; c++ {
			if !g.grid[r][c].IsNull() {
				return &vtcore.GridConfigurationError{Reason: "position already occupied"}
			}
		}
	}
	cell.masterGrid = g
	cell.row, cell.col, cell.rowSpan, cell.colSpan = row, col, rowSpan, colSpan
	for r := row; r < row+rowSpan; r++ {
		for c := col; c < col+colSpan; c++ {
			g.grid[r][c] = cell
		}
	}
	g.occupants[cell] = struct{}{}
	return nil
}

// EraseCell removes the occupant at (row, col). With no directions, the
// whole cell is replaced by NullCells. With directions, only the
// footprint from (row, col) onward in the named cardinal directions is
// replaced, per spec.md 4.7's partial-erasure picture and
// video/grid.py's erase_cell/partial_orient.
func (g *Grid) EraseCell(row, col int, dirs ...Direction) error {
	cell := g.grid[row][col]
	if cell.IsNull() {
		return nil
	}
	if len(dirs) == 0 {
		return g.eraseCellFull(cell)
	}
	r0, c0, rs, cs := cell.Span()
	for _, dir := range dirs {
		switch dir {
		case DirN:
			for r := r0; r <= row; r++ {
				g.grid[r][col] = NewNullCell(g.nullChar)
			}
		case DirS:
			for r := row; r < r0+rs; r++ {
				g.grid[r][col] = NewNullCell(g.nullChar)
			}
		case DirO:
			for c := c0; c <= col; c++ {
				g.grid[row][c] = NewNullCell(g.nullChar)
			}
		case DirE:
			for c := col; c < c0+cs; c++ {
				g.grid[row][c] = NewNullCell(g.nullChar)
			}
		default:
			return &vtcore.GridConfigurationError{Reason: "partial erase direction must be a cardinal direction"}
		}
	}
	if !g.cellStillPresent(cell, r0, c0, rs, cs) {
		delete(g.occupants, cell)
	}
	return nil
}

func (g *Grid) cellStillPresent(cell *Cell, r0, c0, rs, cs int) bool {
	for r := r0; r < r0+rs; r++ {
		for c := c0; c < c0+cs; c++ {
			if g.grid[r][c] == cell {
				return true
			}
		}
	}
	return false
}

func (g *Grid) eraseCellFull(cell *Cell) error {
	r0, c0, rs, cs := cell.Span()
	for r := r0; r < r0+rs; r++ {
		for c := c0; c < c0+cs; c++ {
			g.grid[r][c] = NewNullCell(g.nullChar)
		}
	}
	delete(g.occupants, cell)
	return nil
}

// EraseRow removes row from the grid together with its occupants and
// its row calculator; the rows after it shift up by one. Fails with GridConfigurationError if a cell spanning multiple rows
// would be split, or if row is the grid's only remaining row.
func (g *Grid) EraseRow(row int) error {
	if len(g.rowCalcs) <= 1 {
		return &vtcore.GridConfigurationError{Reason: "cannot remove the last row of a grid"}
	}
	for c := range g.grid[row] {
		cell := g.grid[row][c]
		if !cell.IsNull() {
			_, _, rs, _ := cell.Span()
			if rs > 1 {
				return &vtcore.GridConfigurationError{Reason: "erasing row would split a row-spanning cell"}
			}
		}
	}
	for c := range g.grid[row] {
		g.occupants2remove(g.grid[row][c])
	}
	g.grid = append(g.grid[:row], g.grid[row+1:]...)
	g.rowCalcs = append(g.rowCalcs[:row], g.rowCalcs[row+1:]...)
	g.rowPriority = removeAndShift(g.rowPriority, row)
	for _, cell := range g.occupantsAbove(row) {
		cell.row--
	}
	return nil
}

// EraseColumn removes col from the grid together with its occupants
// and its column calculator; the columns after it shift left by one.
// Fails with GridConfigurationError if a cell spanning
// multiple columns would be split, or if col is the grid's only
// remaining column.
func (g *Grid) EraseColumn(col int) error {
	if len(g.colCalcs) <= 1 {
		return &vtcore.GridConfigurationError{Reason: "cannot remove the last column of a grid"}
	}
	for r := range g.grid {
		cell := g.grid[r][col]
		if !cell.IsNull() {
			_, _, _, cs := cell.Span()
			if cs > 1 {
				return &vtcore.GridConfigurationError{Reason: "erasing column would split a column-spanning cell"}
			}
		}
	}
	for r := range g.grid {
		g.occupants2remove(g.grid[r][col])
		g.grid[r] = append(g.grid[r][:col], g.grid[r][col+1:]...)
	}
	g.colCalcs = append(g.colCalcs[:col], g.colCalcs[col+1:]...)
	g.colPriority = removeAndShift(g.colPriority, col)
	for cell := range g.occupants {
		if cell.col > col {
			cell.col--
		}
	}
	return nil
}

func (g *Grid) occupants2remove(cell *Cell) {
	if cell != nil && !cell.IsNull() {
		delete(g.occupants, cell)
	}
}

func (g *Grid) occupantsAbove(row int) []*Cell {
	var out []*Cell
	for cell := range g.occupants {
		if cell.row > row {
			out = append(out, cell)
		}
	}
	return out
}

func removeAndShift(order []int, removed int) []int {
	out := make([]int, 0, len(order))
	for _, idx := range order {
		switch {
		case idx == removed:
			continue
		case idx > removed:
			out = append(out, idx-1)
		default:
			out = append(out, idx)
		}
	}
	return out
}

// Size implements Widget so a Grid may be nested as another Cell's
// content.
func (g *Grid) Size() (w, h int) {
	w, h = 0, 0
	for _, c := range g.colCalcs {
		w += c.Size()
	}
	for _, c := range g.rowCalcs {
		h += c.Size()
	}
	return
}

// Cursor implements Widget; a Grid does not itself track focus, so it
// always reports no visible cursor. Compose the cursor from the
// focused child cell's CursorInWindow if a widget needs one.
func (g *Grid) Cursor() (x, y int, visible bool) { return 0, 0, false }

// Display implements Widget by compositing every occupant cell's
// display at its stamped axis offsets into one rectangular block.
func (g *Grid) Display() []vtcore.EscContainer {
	if len(g.rowRanges) == 0 || len(g.colRanges) == 0 {
		return nil
	}
	totalH := g.rowRanges[len(g.rowRanges)-1].end
	type piece struct {
		col int
		row vtcore.EscContainer
	}
	pieces := make([][]piece, totalH)
	seen := map[*Cell]bool{}
	for r := range g.grid {
		for c := range g.grid[r] {
			cell := g.grid[r][c]
			if (!cell.IsNull() && (cell.row != r || cell.col != c)) || seen[cell] {
				continue
			}
			seen[cell] = true
			disp := cell.Display()
			for i, rowContent := range disp {
				absRow := g.rowRanges[r].start + i
				if absRow >= totalH {
					continue
				}
				pieces[absRow] = append(pieces[absRow], piece{col: g.colRanges[c].start, row: rowContent})
			}
		}
	}
	rows := make([]vtcore.EscContainer, totalH)
	for i, row := range pieces {
		sort.Slice(row, func(a, b int) bool { return row[a].col < row[b].col })
		var out vtcore.EscContainer
		for j, p := range row {
			if j == 0 {
				out = p.row
				continue
			}
			out = out.Concat(p.row)
		}
		rows[i] = out
	}
	return rows
}
