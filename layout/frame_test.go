package layout

import (
	"testing"

	vtcore "github.com/vtcore/vtcore"
	"github.com/stretchr/testify/assert"
)

func plainRows(rows ...string) []vtcore.EscContainer {
	out := make([]vtcore.EscContainer, len(rows))
	for i, r := range rows {
		out[i] = vtcore.NewContainer(vtcore.NewSegment("", r, ""))
	}
	return out
}

func TestFrameResizeDefaultsConsumeWholeCell(t *testing.T) {
	f := NewFrame(nil, nil)
	assert.NoError(t, f.Resize(10, 4))
	w, h := f.WidgetSize()
	assert.Equal(t, 10, w)
	assert.Equal(t, 4, h)
	ox, oy := f.WidgetOrigin()
	assert.Equal(t, 0, ox)
	assert.Equal(t, 0, oy)
}

func TestFrameResizeDistributesPaddingEvenly(t *testing.T) {
	f := NewFrame(NewFixed(4), NewFixed(2))
	assert.NoError(t, f.Resize(10, 4))
	// remW=6 split 3/3 across E/O, remH=2 split 1/1 across N/S.
	ox, oy := f.WidgetOrigin()
	assert.Equal(t, 3, ox)
	assert.Equal(t, 1, oy)
}

func TestFrameSetOrientShrinksOrientedSideFirst(t *testing.T) {
	f := NewFrame(NewFixed(4), NewFixed(2))
	f.SetOrient(DirE)
	assert.NoError(t, f.Resize(9, 4))
	// remW=5, odd: E is oriented -> E takes the smaller half (2), O the
	// larger (3).
	ox, _ := f.WidgetOrigin()
	assert.Equal(t, 2, ox)
}

func TestFrameResizeFailsWhenImmutableAndTooSmall(t *testing.T) {
	f := NewFrame(NewFixed(20), NewFixed(20))
	f.SetMutable(false)
	err := f.Resize(5, 5)
	assert.Error(t, err)
	var geomErr *vtcore.GeometryError
	assert.ErrorAs(t, err, &geomErr)
}

func TestFrameResizeShrinksWhenMutableAndTooSmall(t *testing.T) {
	f := NewFrame(NewFixed(20), NewFixed(20))
	assert.NoError(t, f.Resize(5, 5))
	w, h := f.WidgetSize()
	assert.Equal(t, 5, w)
	assert.Equal(t, 5, h)
}

func TestFrameComposeWrapsBandsAroundWidgetRows(t *testing.T) {
	f := NewFrame(NewFixed(2), NewFixed(1))
	f.SetBand(DirN, PadSpec{Filler: '-'})
	f.SetBand(DirS, PadSpec{Filler: '-'})
	f.SetBand(DirE, PadSpec{Filler: '|'})
	f.SetBand(DirO, PadSpec{Filler: '|'})
	assert.NoError(t, f.Resize(4, 3))

	rows := f.Compose(plainRows("ab"))
	assert.Len(t, rows, 3)
	// E/O bands run the full cell height, so they wrap the N/S band rows
	// too, not just the widget row.
	assert.Equal(t, "|--|", rows[0].Printable())
	assert.Equal(t, "|ab|", rows[1].Printable())
	assert.Equal(t, "|--|", rows[2].Printable())
}

func TestPadSpecRenderRepeatsPattern(t *testing.T) {
	p := PadSpec{Pattern: "ab"}
	assert.Equal(t, "ababa", p.render(5))
}

func TestPadSpecRenderEmptyPatternUsesFiller(t *testing.T) {
	p := PadSpec{Filler: '.'}
	assert.Equal(t, "...", p.render(3))
}
