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
	"fmt"
	"strings"
)

// Predicate decides, given a calculator's raw computed value and the space
// remaining on the axis, whether an Action should run.
type Predicate func(val, remain int) bool

// Action produces the final size from a calculator's raw value and the
// space remaining on the axis.
type Action func(val, remain int) int

// Builtin predicates, grounded on video/geocalc.py's comp_remain grammar.
var (
	PredAlways          Predicate = func(val, remain int) bool { return true }
	PredValGreaterRemain Predicate = func(val, remain int) bool { return val > remain }
	PredValLessRemain    Predicate = func(val, remain int) bool { return val < remain }
	PredValEqualRemain   Predicate = func(val, remain int) bool { return val == remain }
	PredRemainNonPositive Predicate = func(val, remain int) bool { return remain <= 0 }
)

// Builtin actions.
var (
	ActionUseVal    Action = func(val, remain int) int { return val }
	ActionUseRemain Action = func(val, remain int) int { return remain }
	ActionSetZero   Action = func(val, remain int) int { return 0 }
)

// CompareStep pairs a Predicate with the Action to run when it matches.
// A GeoCalculator evaluates a list of CompareSteps in order; the first
// matching Predicate's Action supplies the final size.
type CompareStep struct {
	Pred Predicate
	Act  Action
}

// compareFn is the internal guarded-or-unconditional comparison function
// shape: it returns (value, true) when it wants to supply the final size,
// or (_, false) to let the next step run. This mirrors the Optional[int]
// short-circuit in geocalc.py's __call__ loop.
type compareFn func(val, remain int) (int, bool)

func stepsToFns(steps []CompareStep) []compareFn {
	// "if remain <= 0" always runs first, wherever the caller wrote it,
	// per geocalc.py's settings() reordering of comp_remain.
	ordered := make([]CompareStep, 0, len(steps))
	var remainStep *CompareStep
	for i := range steps {
		if isRemainNonPositive(steps[i].Pred) && remainStep == nil {
			s := steps[i]
			remainStep = &s
			continue
		}
		ordered = append(ordered, steps[i])
	}
	if remainStep != nil {
		ordered = append([]CompareStep{*remainStep}, ordered...)
	}
	fns := make([]compareFn, len(ordered))
	for i, s := range ordered {
		pred, act := s.Pred, s.Act
		fns[i] = func(val, remain int) (int, bool) {
			if pred(val, remain) {
				return act(val, remain), true
			}
			return 0, false
		}
	}
	return fns
}

// isRemainNonPositive identifies the builtin PredRemainNonPositive by
// pointer identity; a caller-supplied equivalent predicate is left in
// its declared position.
func isRemainNonPositive(p Predicate) bool {
	return fmt.Sprintf("%p", p) == fmt.Sprintf("%p", PredRemainNonPositive)
}

// ParseCompareProgram parses the "cond:action:cond:action..." string
// grammar that video/geocalc.py accepts for comp_remain, e.g.
// "always:use remain" or "if remain <= 0:set 0:if val > remain:use remain".
func ParseCompareProgram(s string) ([]CompareStep, error) {
	toks := strings.Split(s, ":")
	for i := range toks {
		toks[i] = strings.TrimSpace(toks[i])
	}
	if len(toks)%2 != 0 {
		return nil, fmt.Errorf("layout: malformed compare program %q: condition/action must pair", s)
	}
	preds := map[string]Predicate{
		"always":          PredAlways,
		"if val > remain": PredValGreaterRemain,
		"if val < remain": PredValLessRemain,
		"if val == remain": PredValEqualRemain,
		"if remain <= 0":  PredRemainNonPositive,
	}
	acts := map[string]Action{
		"use remain": ActionUseRemain,
		"set 0":      ActionSetZero,
		"use val":    ActionUseVal,
	}
	steps := make([]CompareStep, 0, len(toks)/2)
	for i := 0; i < len(toks); i += 2 {
		pred, ok := preds[toks[i]]
		if !ok {
			return nil, fmt.Errorf("layout: unknown compare condition %q", toks[i])
		}
		act, ok := acts[toks[i+1]]
		if !ok {
			return nil, fmt.Errorf("layout: unknown compare action %q", toks[i+1])
		}
		steps = append(steps, CompareStep{Pred: pred, Act: act})
	}
	return steps, nil
}

// Range describes the optional clamp/step adjustment applied to a
// fractional GeoCalculator's raw value, mirroring Python's range object
// as used by geocalc.py's perc_spec_range_rule.
type Range struct {
	Start, Stop, Step int
}

// GeoCalculator is a sizing rule for one axis position. It is constructed
// with NewFixed, NewFraction, NewRemaining, or NewFunc, optionally refined
// with options, then evaluated repeatedly via Call. Grounded on
// video/geocalc.py's GeoCalculator.
type GeoCalculator struct {
	sizing  func(total int) int
	compare []compareFn
	size    int
}

// Option configures a GeoCalculator at construction time.
type Option func(*GeoCalculator)

// WithCompare sets the remain-comparison program from explicit steps.
func WithCompare(steps ...CompareStep) Option {
	return func(g *GeoCalculator) { g.compare = stepsToFns(steps) }
}

// WithCompareProgram sets the remain-comparison program from the
// "cond:action:cond:action" string grammar. It panics if the program
// cannot be parsed, since malformed wiring is a programmer error fixed
// once at construction, not a runtime condition callers should need to
// check for.
func WithCompareProgram(program string) Option {
	steps, err := ParseCompareProgram(program)
	if err != nil {
		panic(err)
	}
	return WithCompare(steps...)
}

// WithCompareFunc installs a single always-matching comparison function,
// for the "more extensive algorithm" escape hatch geocalc.py documents:
// an arbitrary func(val, remain) -> size.
func WithCompareFunc(fn func(val, remain int) int) Option {
	return func(g *GeoCalculator) {
		g.compare = []compareFn{func(val, remain int) (int, bool) { return fn(val, remain), true }}
	}
}

func defaultCompare() []compareFn {
	return []compareFn{func(val, remain int) (int, bool) { return val, true }}
}

// NewFixed builds a GeoCalculator whose raw value is always n cells.
func NewFixed(n int, opts ...Option) *GeoCalculator {
	g := &GeoCalculator{sizing: func(int) int { return n }, compare: defaultCompare()}
	for _, o := range opts {
		o(g)
	}
	return g
}

// NewRemaining builds a GeoCalculator whose raw value is the axis total
// itself (base_spec=None in geocalc.py); typically paired with
// WithCompareProgram("always:use remain") to consume whatever space is
// left on the axis.
func NewRemaining(opts ...Option) *GeoCalculator {
	g := &GeoCalculator{sizing: func(total int) int { return total }, compare: defaultCompare()}
	for _, o := range opts {
		o(g)
	}
	return g
}

// NewFunc builds a GeoCalculator that delegates its raw value entirely to
// fn, given the axis total.
func NewFunc(fn func(total int) int, opts ...Option) *GeoCalculator {
	g := &GeoCalculator{sizing: fn, compare: defaultCompare()}
	for _, o := range opts {
		o(g)
	}
	return g
}

// FractionOption further parameterizes NewFraction.
type FractionOption func(*fractionSpec)

type fractionSpec struct {
	round          bool
	rule           *Range
	adjustBefore   int
	adjustAfter    int
	ruleBeforeAdj  bool // true: apply rule, then adjustAfter; false: apply adjustBefore, then rule
}

// WithRound rounds the fractional computation to nearest instead of
// truncating.
func WithRound(round bool) FractionOption {
	return func(f *fractionSpec) { f.round = round }
}

// WithRangeThenAdjust clamps the raw fractional value against rule first,
// then adds adj. This corresponds to geocalc.py's
// "tuple[float, range, int]" parameterization order.
func WithRangeThenAdjust(rule Range, adj int) FractionOption {
	return func(f *fractionSpec) { f.rule = &rule; f.adjustAfter = adj; f.ruleBeforeAdj = true }
}

// WithAdjustThenRange adds adj to the raw fractional value first, then
// clamps against rule. This corresponds to geocalc.py's
// "tuple[float, int, range]" parameterization order.
func WithAdjustThenRange(adj int, rule Range) FractionOption {
	return func(f *fractionSpec) { f.rule = &rule; f.adjustBefore = adj; f.ruleBeforeAdj = false }
}

// WithRange clamps the raw fractional value against rule with no
// adjustment.
func WithRange(rule Range) FractionOption {
	return func(f *fractionSpec) { f.rule = &rule }
}

// WithAdjustment adds adj to the raw fractional value with no range
// clamp.
func WithAdjustment(adj int) FractionOption {
	return func(f *fractionSpec) { f.adjustAfter = adj }
}

// NewFraction builds a GeoCalculator whose raw value is a fraction of the
// axis total (0.325 == 32.5%), optionally clamped to a Range and/or
// adjusted by a fixed offset. Grounded on video/geocalc.py's float
// base_spec handling.
func NewFraction(frac float64, opts ...FractionOption) *GeoCalculator {
	var f fractionSpec
	for _, o := range opts {
		o(&f)
	}
	bias := 0.0
	if f.round {
		bias = 0.5
	}
	sizing := func(total int) int {
		val := int(float64(total)*frac + bias)
		if f.rule == nil {
			return val + f.adjustAfter + f.adjustBefore
		}
		if !f.ruleBeforeAdj {
			val += f.adjustBefore
		}
		val = clampToRange(val, *f.rule)
		if f.ruleBeforeAdj {
			val += f.adjustAfter
		}
		return val
	}
	g := &GeoCalculator{sizing: sizing, compare: defaultCompare()}
	return g
}

// clampToRange reproduces geocalc.py's range-clamp/step rounding: a value
// inside [start, stop) by step is returned unchanged; above stop clamps to
// stop-1; below start clamps to start; otherwise the value is rounded to
// the nearest step boundary, rounding up when step is positive and down
// when step is non-positive.
func clampToRange(val int, r Range) int {
	step := r.Step
	if step == 0 {
		step = 1
	}
	absStep := step
	if absStep < 0 {
		absStep = -absStep
	}
	inRange := val >= r.Start && val < r.Stop
	if !inRange {
		if val >= r.Stop {
			return r.Stop - 1
		}
		if val < r.Start {
			return r.Start
		}
	}
	if m := val % absStep; m != 0 {
		addStep := 0
		if step > 0 {
			addStep = absStep
		}
		return (val - m) + addStep
	}
	return val
}

// ApplyOptions installs behavioral Options (compare program, etc.) on an
// already-constructed GeoCalculator, for the rare case a caller builds one
// via NewFraction and still wants a custom compare program.
func (g *GeoCalculator) ApplyOptions(opts ...Option) *GeoCalculator {
	for _, o := range opts {
		o(g)
	}
	return g
}

// Call evaluates the calculator against the axis total and the space
// remaining on the axis, stores the result, and returns it.
func (g *GeoCalculator) Call(total, remain int) int {
	val := g.sizing(total)
	for _, cmp := range g.compare {
		if v, ok := cmp(val, remain); ok {
			val = v
			break
		}
	}
	g.size = val
	return val
}

// Size returns the value computed by the most recent Call.
func (g *GeoCalculator) Size() int { return g.size }
