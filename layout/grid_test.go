package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewGridStartsAllNull(t *testing.T) {
	g := NewGrid(2, 2, ' ')
	assert.True(t, g.grid[0][0].IsNull())
	assert.True(t, g.grid[1][1].IsNull())
}

func TestGridPlaceCellOccupiesSpan(t *testing.T) {
	g := NewGrid(3, 3, ' ')
	c := NewCell(&stubWidget{w: 1, h: 1}, nil, ' ')
	assert.NoError(t, g.PlaceCell(c, 0, 0, 2, 2))
	assert.Same(t, c, g.grid[0][0])
	assert.Same(t, c, g.grid[1][1])
	assert.True(t, g.grid[0][2].IsNull())
}

func TestGridPlaceCellRejectsOutOfBounds(t *testing.T) {
	g := NewGrid(2, 2, ' ')
	c := NewCell(&stubWidget{w: 1, h: 1}, nil, ' ')
	err := g.PlaceCell(c, 0, 0, 3, 1)
	assert.Error(t, err)
}

func TestGridPlaceCellRejectsOverlap(t *testing.T) {
	g := NewGrid(2, 2, ' ')
	c1 := NewCell(&stubWidget{w: 1, h: 1}, nil, ' ')
	c2 := NewCell(&stubWidget{w: 1, h: 1}, nil, ' ')
	assert.NoError(t, g.PlaceCell(c1, 0, 0, 2, 1))
	assert.Error(t, g.PlaceCell(c2, 0, 0, 1, 1))
}

func TestGridResizeStampsAxisRangesEvenly(t *testing.T) {
	g := NewGrid(1, 2, ' ')
	assert.NoError(t, g.Resize(10, 4))
	assert.Equal(t, axisRange{0, 5}, g.colRanges[0])
	assert.Equal(t, axisRange{5, 10}, g.colRanges[1])
	assert.Equal(t, axisRange{0, 4}, g.rowRanges[0])
}

func TestGridResizeFailsWhenAxisOverflows(t *testing.T) {
	g := NewGrid(1, 1, ' ')
	g.SetColumnCalculators([]*GeoCalculator{NewFixed(20)}, nil)
	err := g.Resize(5, 5)
	assert.Error(t, err)
}

func TestGridEraseCellFullRestoresNull(t *testing.T) {
	g := NewGrid(2, 2, ' ')
	c := NewCell(&stubWidget{w: 1, h: 1}, nil, ' ')
	assert.NoError(t, g.PlaceCell(c, 0, 0, 2, 2))
	assert.NoError(t, g.EraseCell(0, 0))
	assert.True(t, g.grid[0][0].IsNull())
	assert.True(t, g.grid[1][1].IsNull())
	assert.NotContains(t, g.occupants, c)
}

func TestGridEraseCellPartialDirectionTrimsFootprint(t *testing.T) {
	g := NewGrid(1, 3, ' ')
	c := NewCell(&stubWidget{w: 1, h: 1}, nil, ' ')
	assert.NoError(t, g.PlaceCell(c, 0, 0, 1, 3))
	assert.NoError(t, g.EraseCell(0, 1, DirO))
	assert.True(t, g.grid[0][0].IsNull())
	assert.Same(t, c, g.grid[0][2])
}

func TestGridEraseRowRejectsLastRow(t *testing.T) {
	g := NewGrid(1, 2, ' ')
	err := g.EraseRow(0)
	assert.Error(t, err)
}

func TestGridEraseRowRejectsSplittingSpanningCell(t *testing.T) {
	g := NewGrid(2, 2, ' ')
	c := NewCell(&stubWidget{w: 1, h: 1}, nil, ' ')
	assert.NoError(t, g.PlaceCell(c, 0, 0, 2, 1))
	err := g.EraseRow(0)
	assert.Error(t, err)
}

func TestGridEraseRowShiftsRemainingCells(t *testing.T) {
	g := NewGrid(3, 1, ' ')
	c := NewCell(&stubWidget{w: 1, h: 1}, nil, ' ')
	assert.NoError(t, g.PlaceCell(c, 2, 0, 1, 1))
	assert.NoError(t, g.EraseRow(0))
	assert.Equal(t, 1, c.row, "cell below the erased row must shift up by one")
	assert.Len(t, g.grid, 2)
}

func TestGridEraseColumnRejectsLastColumn(t *testing.T) {
	g := NewGrid(2, 1, ' ')
	err := g.EraseColumn(0)
	assert.Error(t, err)
}

func TestGridSizeSumsAxisCalculators(t *testing.T) {
	g := NewGrid(2, 2, ' ')
	assert.NoError(t, g.Resize(10, 6))
	w, h := g.Size()
	assert.Equal(t, 10, w)
	assert.Equal(t, 6, h)
}

func TestGridCursorReportsInvisible(t *testing.T) {
	g := NewGrid(1, 1, ' ')
	_, _, visible := g.Cursor()
	assert.False(t, visible)
}

func TestGridDisplayComposesOccupantsAtStampedOffsets(t *testing.T) {
	g := NewGrid(1, 2, '.')
	wa := &stubWidget{w: 2, h: 1}
	wb := &stubWidget{w: 2, h: 1}
	assert.NoError(t, g.PlaceCell(NewCell(wa, NewFrame(NewFixed(2), NewFixed(1)), ' '), 0, 0, 1, 1))
	assert.NoError(t, g.PlaceCell(NewCell(wb, NewFrame(NewFixed(2), NewFixed(1)), ' '), 0, 1, 1, 1))
	assert.NoError(t, g.Resize(4, 1))

	rows := g.Display()
	assert.Len(t, rows, 1)
	assert.Equal(t, 4, rows[0].Len())
}

func TestGridDisplayEmptyBeforeResizeReturnsNil(t *testing.T) {
	g := NewGrid(1, 1, ' ')
	assert.Nil(t, g.Display())
}
