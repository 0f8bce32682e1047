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

package vtcore

import "strings"

// printRange is a half-open [start, stop) range of cumulative printable
// offsets, one per segment in an EscContainer.
type printRange struct {
	start, stop int
}

// EscContainer is an ordered sequence of EscSegment values plus a parallel
// print-index giving each segment's cumulative printable offset range.
// Concatenation, slicing, and formatting all lift from EscSegment to
// EscContainer while preserving the print-index invariants: index[0].start
// == 0, index[i].start == index[i-1].stop, and index[len-1].stop equals the
// sum of each segment's printable length.
//
// An empty container holds one empty EscSegment with index (0, 0).
type EscContainer struct {
	segs  []EscSegment
	index []printRange
}

// NewContainer builds a single-segment EscContainer.
func NewContainer(seg EscSegment) EscContainer {
	return EscContainer{segs: []EscSegment{seg}, index: []printRange{{0, seg.Len()}}}
}

// emptyContainer is the canonical empty container value.
func emptyContainer() EscContainer {
	return EscContainer{segs: []EscSegment{{}}, index: []printRange{{0, 0}}}
}

// containerFromParts rebuilds the index from a slice of segments, assuming
// the segments are already in the correct concatenation order.
func containerFromParts(segs []EscSegment) EscContainer {
	if len(segs) == 0 {
		return emptyContainer()
	}
	idx := make([]printRange, len(segs))
	pos := 0
	for i, seg := range segs {
		idx[i] = printRange{pos, pos + seg.Len()}
		pos += seg.Len()
	}
	return EscContainer{segs: segs, index: idx}
}

// Segments returns the container's segments (a copy of the slice header
// only; the backing array is shared). Print ranges are not returned.
func (c EscContainer) Segments() []EscSegment { return c.segs }

// NSegments returns the number of segments held by the container.
func (c EscContainer) NSegments() int { return len(c.segs) }

// Len returns the total printable length across all segments.
func (c EscContainer) Len() int {
	if len(c.index) == 0 {
		return 0
	}
	return c.index[len(c.index)-1].stop
}

// EscLen returns the sum of each segment's combined escape-field length.
func (c EscContainer) EscLen() int {
	n := 0
	for _, s := range c.segs {
		n += s.EscLen()
	}
	return n
}

// AbsLen returns Len()+EscLen().
func (c EscContainer) AbsLen() int { return c.Len() + c.EscLen() }

// Bytes returns the on-wire byte form of the whole container.
func (c EscContainer) Bytes() string {
	var b strings.Builder
	for _, s := range c.segs {
		b.WriteString(s.Bytes())
	}
	return b.String()
}

// String implements fmt.Stringer.
func (c EscContainer) String() string { return c.Bytes() }

// Printable returns the concatenation of every segment's printable string.
func (c EscContainer) Printable() string {
	var b strings.Builder
	for _, s := range c.segs {
		b.WriteString(s.string)
	}
	return b.String()
}

// HasEscape reports whether any segment carries an escape field.
func (c EscContainer) HasEscape() bool {
	for _, s := range c.segs {
		if s.HasEscape() {
			return true
		}
	}
	return false
}

// StartsWithEsc reports whether the first segment carries an escape field.
func (c EscContainer) StartsWithEsc() bool { return c.segs[0].HasEscape() }

// EndsWithEsc reports whether the last segment carries an escape field.
func (c EscContainer) EndsWithEsc() bool { return c.segs[len(c.segs)-1].HasEscape() }

// IsZero reports whether the container is empty (holds only the canonical
// empty segment).
func (c EscContainer) IsZero() bool {
	for _, s := range c.segs {
		if !s.IsZero() {
			return false
		}
	}
	return true
}

// Wrap extends the container's outer escape fields. If cellular is true,
// Wrap is applied to every segment individually; otherwise only the first
// segment's intro and the last segment's outro are extended.
func (c EscContainer) Wrap(prefix, suffix string, inner, cellular bool) EscContainer {
	if len(c.segs) == 1 {
		return EscContainer{segs: []EscSegment{c.segs[0].Wrap(prefix, suffix, inner)}, index: append([]printRange(nil), c.index...)}
	}
	segs := make([]EscSegment, len(c.segs))
	copy(segs, c.segs)
	if cellular {
		for i := range segs {
			segs[i] = segs[i].Wrap(prefix, suffix, inner)
		}
	} else {
		segs[0] = segs[0].Wrap(prefix, "", inner)
		segs[len(segs)-1] = segs[len(segs)-1].Wrap("", suffix, inner)
	}
	return EscContainer{segs: segs, index: append([]printRange(nil), c.index...)}
}

// Concat appends other (string, EscSegment, or EscContainer) as new
// segment(s), without attempting any merging.
func (c EscContainer) Concat(other any) EscContainer {
	segs := append([]EscSegment(nil), c.segs...)
	switch o := other.(type) {
	case string:
		segs = append(segs, EscSegment{string: o})
	case EscSegment:
		segs = append(segs, o)
	case EscContainer:
		segs = append(segs, o.segs...)
	default:
		panic("vtcore: Concat requires string, EscSegment, or EscContainer")
	}
	return containerFromParts(segs)
}

// Assimilate merges other into c at the segment boundary, reusing the
// trailing segment when escape fields allow it; otherwise behaves like
// Concat. This is the higher-level gradation described in EscSegment's
// Assimilate doc comment, lifted to containers.
func (c EscContainer) Assimilate(other any) EscContainer {
	last := c.segs[len(c.segs)-1]
	switch o := other.(type) {
	case string:
		if o == "" {
			return c
		}
		if last.outro != "" {
			return c.Concat(o)
		}
		segs := append([]EscSegment(nil), c.segs...)
		segs[len(segs)-1] = last.And(o)
		return containerFromParts(segs)
	case EscSegment:
		if o.IsZero() {
			return c
		}
		if last.outro != "" || o.intro != "" {
			if last.intro == o.intro && last.outro == o.outro {
				segs := append([]EscSegment(nil), c.segs...)
				segs[len(segs)-1] = last.And(o.string)
				return containerFromParts(segs)
			}
			return c.Concat(o)
		}
		segs := append([]EscSegment(nil), c.segs...)
		segs[len(segs)-1] = last.And(o.string).Wrap("", o.outro, false)
		return containerFromParts(segs)
	case EscContainer:
		if o.IsZero() {
			return c
		}
		first := o.segs[0]
		if last.outro != "" || first.intro != "" {
			if last.intro == first.intro && last.outro == first.outro {
				segs := append([]EscSegment(nil), c.segs...)
				segs[len(segs)-1] = last.And(first.string)
				segs = append(segs, o.segs[1:]...)
				return containerFromParts(segs)
			}
			segs := append([]EscSegment(nil), c.segs...)
			segs = append(segs, o.segs...)
			return containerFromParts(segs)
		}
		segs := append([]EscSegment(nil), c.segs...)
		segs[len(segs)-1] = last.And(first.string).Wrap("", first.outro, false)
		segs = append(segs, o.segs[1:]...)
		return containerFromParts(segs)
	default:
		panic("vtcore: Assimilate requires string, EscSegment, or EscContainer")
	}
}

// clamp bounds i to [0, n].
func clamp(i, n int) int {
	if i < 0 {
		i = 0
	}
	if i > n {
		i = n
	}
	return i
}

// binarySearchIndex finds the leftmost segment index i such that
// pred(index[i].stop) holds, using a binary search over the print-index
// (grounded on the original's _binsearch).
func binarySearchIndex(idx []printRange, pred func(int) bool) int {
	lo, hi := 0, len(idx)
	for lo < hi {
		mid := (lo + hi) / 2
		if pred(idx[mid].stop) {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	if lo >= len(idx) {
		lo = len(idx) - 1
	}
	return lo
}

// Slice returns the sub-container spanning printable offsets [start, stop)
// (half-open), preserving escape fields of the edge segments and passing
// interior segments through unmodified. Bounds are clamped to [0, Len()];
// a range that is empty after clamping yields the empty container.
func (c EscContainer) Slice(start, stop int) EscContainer {
	n := c.Len()
	if start < 0 {
		start += n
	}
	if stop < 0 {
		stop += n
	}
	start = clamp(start, n)
	stop = clamp(stop, n)
	if start >= stop {
		return emptyContainer()
	}

	startSeg := 0
	if start > 0 {
		startSeg = binarySearchIndex(c.index, func(v int) bool { return v > start })
	}
	endSeg := binarySearchIndex(c.index, func(v int) bool { return v >= stop })

	segs := append([]EscSegment(nil), c.segs[startSeg:endSeg+1]...)
	if len(segs) == 1 {
		localStart := start - c.index[startSeg].start
		localStop := stop - c.index[startSeg].start
		segs[0] = segs[0].Slice(localStart, localStop)
		return containerFromParts(segs)
	}
	firstLocalStart := start - c.index[startSeg].start
	segs[0] = segs[0].Slice(firstLocalStart, segs[0].Len())
	lastLocalStop := stop - c.index[endSeg].start
	segs[len(segs)-1] = segs[len(segs)-1].Slice(0, lastLocalStop)
	return containerFromParts(segs)
}

// At returns the single-byte-wide sub-container at printable byte index i.
func (c EscContainer) At(i int) EscContainer { return c.Slice(i, i+1) }

// Clean removes segments that are entirely empty (no intro/string/outro),
// in place semantics expressed functionally: returns a new container with
// rudimentary segments elided. If every segment is empty, the canonical
// empty container is returned.
func (c EscContainer) Clean() EscContainer {
	segs := make([]EscSegment, 0, len(c.segs))
	for _, s := range c.segs {
		if !s.IsZero() {
			segs = append(segs, s)
		}
	}
	if len(segs) == 0 {
		return emptyContainer()
	}
	return containerFromParts(segs)
}

// Format lifts EscSegment.Format across every segment, substituting
// %-directives left to right across the whole container in segment order.
func (c EscContainer) Format(args ...any) (EscContainer, error) {
	segs := make([]EscSegment, len(c.segs))
	argIdx := 0
	for i, s := range c.segs {
		directives := scanPrintfDirectives(s.string)
		n := len(directives)
		if argIdx+n > len(args) {
			return EscContainer{}, &FormatError{Reason: "not enough arguments to format"}
		}
		formatted, err := s.Format(args[argIdx : argIdx+n]...)
		if err != nil {
			return EscContainer{}, err
		}
		segs[i] = formatted
		argIdx += n
	}
	if argIdx != len(args) {
		return EscContainer{}, &FormatError{Reason: "not all arguments converted during formatting"}
	}
	return containerFromParts(segs), nil
}
