package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewFixedAlwaysReturnsSameSize(t *testing.T) {
	g := NewFixed(5)
	assert.Equal(t, 5, g.Call(100, 100))
	assert.Equal(t, 5, g.Call(3, 3))
}

func TestNewRemainingConsumesWhateverIsLeft(t *testing.T) {
	g := NewRemaining(WithCompareProgram("always:use remain"))
	assert.Equal(t, 7, g.Call(20, 7))
}

func TestNewFractionComputesPercentage(t *testing.T) {
	g := NewFraction(0.5)
	assert.Equal(t, 10, g.Call(20, 20))
}

func TestNewFractionWithRoundBiasesUp(t *testing.T) {
	g := NewFraction(1.0/3, WithRound(true))
	assert.Equal(t, 3, g.Call(10, 10)) // 3.33+0.5 truncates to 3
}

func TestNewFractionWithRangeClampsToRule(t *testing.T) {
	g := NewFraction(0.9, WithRange(Range{Start: 0, Stop: 5, Step: 1}))
	assert.Equal(t, 4, g.Call(10, 10)) // 9 clamped to stop-1
}

func TestNewFractionWithAdjustmentOffsetsRawValue(t *testing.T) {
	g := NewFraction(0.5, WithAdjustment(2))
	assert.Equal(t, 12, g.Call(20, 20))
}

func TestGeoCalculatorRemainNonPositiveAlwaysRunsFirst(t *testing.T) {
	g := NewFixed(5, WithCompare(
		CompareStep{Pred: PredValGreaterRemain, Act: ActionUseRemain},
		CompareStep{Pred: PredRemainNonPositive, Act: ActionSetZero},
	))
	// remain <= 0 must win even though it was declared second; had
	// "val > remain" run first it would have returned remain (-3).
	assert.Equal(t, 0, g.Call(10, -3))
}

func TestGeoCalculatorValGreaterRemainUsesRemain(t *testing.T) {
	g := NewFixed(10, WithCompare(CompareStep{Pred: PredValGreaterRemain, Act: ActionUseRemain}))
	assert.Equal(t, 3, g.Call(10, 3))
}

func TestParseCompareProgramAlwaysUseRemain(t *testing.T) {
	steps, err := ParseCompareProgram("always:use remain")
	assert.NoError(t, err)
	assert.Len(t, steps, 1)
}

func TestClampToRangeRoundsToStepBoundary(t *testing.T) {
	assert.Equal(t, 15, clampToRange(11, Range{Start: 0, Stop: 20, Step: 5}))
	assert.Equal(t, 0, clampToRange(-5, Range{Start: 0, Stop: 20, Step: 5}))
	assert.Equal(t, 19, clampToRange(25, Range{Start: 0, Stop: 20, Step: 5}))
}
