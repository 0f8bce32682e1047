package layout

import (
	"testing"

	vtcore "github.com/vtcore/vtcore"
	"github.com/stretchr/testify/assert"
)

// stubWidget is a fixed-size Widget test double that reports a static
// cursor position and renders blank rows of its declared size.
type stubWidget struct {
	w, h             int
	cx, cy           int
	cursorVisible    bool
	displayCallCount int
}

func (s *stubWidget) Size() (int, int) { return s.w, s.h }

func (s *stubWidget) Display() []vtcore.EscContainer {
	s.displayCallCount++
	rows := make([]vtcore.EscContainer, s.h)
	for i := range rows {
		rows[i] = vtcore.NewContainer(vtcore.NewSegment("", vtcore.PadTo("", s.w, ' '), ""))
	}
	return rows
}

func (s *stubWidget) Cursor() (int, int, bool) { return s.cx, s.cy, s.cursorVisible }

func TestNewNullCellIsNull(t *testing.T) {
	c := NewNullCell(' ')
	assert.True(t, c.IsNull())
	assert.Nil(t, c.MasterGrid())
}

func TestNewCellIsNotNull(t *testing.T) {
	c := NewCell(&stubWidget{w: 2, h: 1}, nil, ' ')
	assert.False(t, c.IsNull())
}

func TestCellResizeNullCellFillsWithNullRune(t *testing.T) {
	c := NewNullCell('.')
	c.xColumns = []*GeoCalculator{NewFixed(3)}
	c.yRows = []*GeoCalculator{NewFixed(2)}
	for _, g := range c.xColumns {
		g.Call(3, 3)
	}
	for _, g := range c.yRows {
		g.Call(2, 2)
	}
	assert.NoError(t, c.resize(0, 0))
	rows := c.NewDisplay()
	assert.Len(t, rows, 2)
	assert.Equal(t, "...", rows[0].Printable())
}

func TestCellResizeComposesWidgetThroughFrame(t *testing.T) {
	w := &stubWidget{w: 3, h: 1}
	c := NewCell(w, NewFrame(NewFixed(3), NewFixed(1)), ' ')
	c.xColumns = []*GeoCalculator{NewFixed(3)}
	c.yRows = []*GeoCalculator{NewFixed(1)}
	for _, g := range c.xColumns {
		g.Call(3, 3)
	}
	for _, g := range c.yRows {
		g.Call(1, 1)
	}
	assert.NoError(t, c.resize(5, 7))
	rows := c.Display()
	assert.Len(t, rows, 1)
	assert.Equal(t, 1, w.displayCallCount)
}

func TestCellDisplayCachesUntilNewDisplay(t *testing.T) {
	w := &stubWidget{w: 1, h: 1}
	c := NewCell(w, NewFrame(NewFixed(1), NewFixed(1)), ' ')
	c.xColumns = []*GeoCalculator{NewFixed(1)}
	c.yRows = []*GeoCalculator{NewFixed(1)}
	for _, g := range c.xColumns {
		g.Call(1, 1)
	}
	for _, g := range c.yRows {
		g.Call(1, 1)
	}
	assert.NoError(t, c.resize(0, 0))

	c.Display()
	c.Display()
	assert.Equal(t, 1, w.displayCallCount, "Display must not recompute once cached")

	c.NewDisplay()
	assert.Equal(t, 2, w.displayCallCount, "NewDisplay always recomputes")
}

func TestCellCursorInWindowTranslatesThroughFrameOrigin(t *testing.T) {
	w := &stubWidget{w: 4, h: 4, cx: 1, cy: 1, cursorVisible: true}
	c := NewCell(w, NewFrame(NewFixed(2), NewFixed(2)), ' ')
	c.xColumns = []*GeoCalculator{NewFixed(4)}
	c.yRows = []*GeoCalculator{NewFixed(4)}
	for _, g := range c.xColumns {
		g.Call(4, 4)
	}
	for _, g := range c.yRows {
		g.Call(4, 4)
	}
	assert.NoError(t, c.resize(10, 20))
	c.setWindowOrigin(0, 0)
	c.NewCursor()

	x, y, visible := c.CursorInWindow()
	assert.True(t, visible)
	// cell origin in window is (10,20); frame widget origin is (1,1)
	// (remW=remH=2, split 1/1); cursor in widget is (1,1).
	assert.Equal(t, 12, x)
	assert.Equal(t, 22, y)
}

func TestCellNeighborReturnsNilAtBoundary(t *testing.T) {
	c := NewNullCell(' ')
	assert.Nil(t, c.Neighbor(DirN))
}
