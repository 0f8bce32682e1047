package vtcore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMouseModHasDetectsCombination(t *testing.T) {
	combo := MouseModShift.And(MouseModCtrl)
	assert.True(t, combo.Has(MouseModShift))
	assert.True(t, combo.Has(MouseModCtrl))
	assert.False(t, combo.Has(MouseModAlt))
}

func TestCoordMatchesExactValues(t *testing.T) {
	a := ExactCoord(5)
	b := ExactCoord(5)
	assert.True(t, a.matches(b))
	assert.False(t, a.matches(ExactCoord(6)))
}

func TestCoordAnyMatchesEverything(t *testing.T) {
	assert.True(t, AnyCoord().matches(ExactCoord(9)))
	assert.True(t, ExactCoord(9).matches(AnyCoord()))
}

func TestCoordRangeMatchesWithinBounds(t *testing.T) {
	r := RangeCoord(3, 7)
	assert.True(t, r.matches(ExactCoord(5)))
	assert.False(t, r.matches(ExactCoord(8)))
}

func TestCoordRangeNeverMatchesAnotherRange(t *testing.T) {
	assert.False(t, RangeCoord(0, 5).matches(RangeCoord(0, 5)))
}

func TestPosTripleRequiresAllThreeToMatch(t *testing.T) {
	p := AtTriple(ExactCoord(1), ExactCoord(2), ExactCoord(3))
	same := AtTriple(ExactCoord(1), ExactCoord(2), ExactCoord(3))
	diff := AtTriple(ExactCoord(1), ExactCoord(9), ExactCoord(3))
	assert.True(t, p.matches(same))
	assert.False(t, p.matches(diff))
}

func TestPosTripleNeverMatchesPlainCoord(t *testing.T) {
	triple := AtTriple(ExactCoord(1), ExactCoord(2), ExactCoord(3))
	plain := AtCoord(ExactCoord(1))
	assert.False(t, triple.matches(plain))
}

func TestMouseMatchesConcreteEvent(t *testing.T) {
	event := NewMouse(ButtonLeftPress, MouseModShift, 10, 20)
	pattern := NewMouse(ButtonLeftPress, MouseModShift, 10, 20)
	assert.True(t, pattern.Matches(event))
}

func TestMouseMatchesWildcardButton(t *testing.T) {
	event := NewMouse(ButtonLeftPress, MouseModShift, 10, 20)
	pattern := Mouse{X: AtCoord(AnyCoord()), Y: AtCoord(AnyCoord())}
	assert.True(t, pattern.Matches(event))
}

func TestMouseMatchesRejectsDifferentButton(t *testing.T) {
	event := NewMouse(ButtonLeftPress, MouseModShift, 10, 20)
	pattern := NewMouse(ButtonRightPress, MouseModShift, 10, 20)
	assert.False(t, pattern.Matches(event))
}

func TestMouseHighlightMatchesTriplePositions(t *testing.T) {
	event := NewMouseHighlight(ButtonLeftPress, MouseModShift, 1, 2, 3, 4, 5, 6)
	pattern := NewMouseHighlight(ButtonLeftPress, MouseModShift, 1, 2, 3, 4, 5, 6)
	assert.True(t, pattern.Matches(event))
}
