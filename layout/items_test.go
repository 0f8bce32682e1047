package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSearchAxisFindsContainingRange(t *testing.T) {
	ranges := []axisRange{{0, 3}, {3, 7}, {7, 10}}
	assert.Equal(t, 0, searchAxis(ranges, 0))
	assert.Equal(t, 1, searchAxis(ranges, 5))
	assert.Equal(t, 2, searchAxis(ranges, 9))
}

func TestSearchAxisOutOfRangeReturnsNegativeOne(t *testing.T) {
	ranges := []axisRange{{0, 3}, {3, 7}}
	assert.Equal(t, -1, searchAxis(ranges, 10))
}

func TestGetVisualTargetOutsideGridIsNotTraceable(t *testing.T) {
	g := NewGrid(1, 1, ' ')
	assert.NoError(t, g.Resize(4, 4))
	vt := g.GetVisualTarget(100, 100)
	assert.False(t, vt.Traceable)
}

func TestGetVisualTargetLocatesOccupantAndLocalCoords(t *testing.T) {
	g := NewGrid(1, 2, ' ')
	c := NewCell(&stubWidget{w: 2, h: 2}, NewFrame(NewFixed(2), NewFixed(2)), ' ')
	assert.NoError(t, g.PlaceCell(c, 0, 1, 1, 1))
	assert.NoError(t, g.Resize(4, 2))

	vt := g.GetVisualTarget(3, 1)
	assert.True(t, vt.Traceable)
	assert.Same(t, c, vt.Cell)
	assert.Equal(t, 1, vt.X) // col range for idx1 starts at 2: 3-2=1
	assert.Equal(t, 1, vt.Y)
}

func TestVisualTargetTraceDescendsNestedGrid(t *testing.T) {
	inner := NewGrid(1, 1, ' ')
	innerWidget := &stubWidget{w: 2, h: 2}
	assert.NoError(t, inner.PlaceCell(NewCell(innerWidget, NewFrame(NewFixed(2), NewFixed(2)), ' '), 0, 0, 1, 1))
	assert.NoError(t, inner.Resize(2, 2))

	outer := NewGrid(1, 1, ' ')
	outerCell := NewCell(inner, NewFrame(NewFixed(2), NewFixed(2)), ' ')
	assert.NoError(t, outer.PlaceCell(outerCell, 0, 0, 1, 1))
	assert.NoError(t, outer.Resize(2, 2))

	vt := outer.GetVisualTarget(1, 1)
	assert.True(t, vt.Traceable)
	assert.Len(t, vt.CellTrace, 1)
	assert.Same(t, outerCell, vt.CellTrace[0].Cell)
}

func TestVisualTargetTraceStopsOnNonGridWidget(t *testing.T) {
	g := NewGrid(1, 1, ' ')
	c := NewCell(&stubWidget{w: 2, h: 2}, NewFrame(NewFixed(2), NewFixed(2)), ' ')
	assert.NoError(t, g.PlaceCell(c, 0, 0, 1, 1))
	assert.NoError(t, g.Resize(2, 2))

	vt := g.GetVisualTarget(1, 1)
	assert.Empty(t, vt.CellTrace)
	assert.Same(t, c, vt.Cell)
}

func TestRealTargetRelativeToCellInsideWidgetHasNoQuarter(t *testing.T) {
	c := NewCell(&stubWidget{w: 2, h: 2}, nil, ' ')
	c.widgetInCell = Rect{X: 1, Y: 1, W: 2, H: 2}
	_, hasQuarter, rx, ry := RealTargetRelativeToCell(c, 1, 1)
	assert.False(t, hasQuarter)
	assert.Equal(t, 0, rx)
	assert.Equal(t, 0, ry)
}

func TestRealTargetRelativeToCellEachQuarter(t *testing.T) {
	cases := []struct {
		name    string
		x, y    int
		quarter Direction
	}{
		{"north", 1, -1, DirN},
		{"south", 1, 5, DirS},
		{"west", -1, 1, DirO},
		{"east", 5, 1, DirE},
		{"northwest", -1, -1, DirNO},
		{"northeast", 5, -1, DirNE},
		{"southwest", -1, 5, DirSO},
		{"southeast", 5, 5, DirSE},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cell := NewCell(&stubWidget{w: 2, h: 2}, nil, ' ')
			cell.widgetInCell = Rect{X: 1, Y: 1, W: 2, H: 2}
			quarter, hasQuarter, _, _ := RealTargetRelativeToCell(cell, c.x, c.y)
			assert.True(t, hasQuarter)
			assert.Equal(t, c.quarter, quarter)
		})
	}
}

func TestRealTargetRelativeToCellCachesPerCellAndCoord(t *testing.T) {
	cell := NewCell(&stubWidget{w: 2, h: 2}, nil, ' ')
	cell.widgetInCell = Rect{X: 0, Y: 0, W: 2, H: 2}
	q1, has1, _, _ := RealTargetRelativeToCell(cell, 0, 0)
	q2, has2, _, _ := RealTargetRelativeToCell(cell, 0, 0)
	assert.Equal(t, q1, q2)
	assert.Equal(t, has1, has2)
}
