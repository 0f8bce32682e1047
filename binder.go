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

import (
	"fmt"
	"reflect"
)

// BindFunc receives an event (a Char, Key, Mouse, a Reply* decoder
// result, or an EscSegment) and the return value of the previously
// executed function in the same Binding, and returns its own result
// to feed the next function in the chain.
type BindFunc func(event any, prev any) any

// BindMode selects how a function is inserted into a Binding's
// execution order. Grounded on io/binder.py's bind() mode literals.
type BindMode int

const (
	BindAppend            BindMode = iota // "a"
	BindInsert                            // "i"
	BindReplace                           // "r"
	BindExclusive                         // "x"
	BindProtectedAppend                   // "~a"
	BindProtectedInsert                   // "~i"
	BindProtectedReplace                  // "~r"
)

// BindItem handles one bound function: it can be unbound or rebound,
// and carries a reference back to its owning Binding. Grounded on
// io/binder.py's BindItem.
type BindItem struct {
	binding *Binding
	fn      BindFunc
	id      int
}

// Unbind removes the function from its Binding's execution order.
func (it *BindItem) Unbind() {
	delete(it.binding.bindings, it.id)
	it.binding.callOrder = removeInt(it.binding.callOrder, it.id)
}

// Rebind re-binds the function's execution to its Binding in mode at
// index, updating it in place to track the new id.
func (it *BindItem) Rebind(mode BindMode, index int) error {
	next, err := it.binding.Bind(it.fn, mode, index)
	if err != nil {
		return err
	}
	if next != nil {
		it.id = next.id
	}
	return nil
}

// Index returns it's position in its Binding's execution order, or -1
// if it is not (or no longer) bound there.
func (it *BindItem) Index() int {
	for i, id := range it.binding.callOrder {
		if id == it.id {
			return i
		}
	}
	return -1
}

// PurgeBinding reinitializes the whole owning Binding, removing every
// bound function except the protected ones.
func (it *BindItem) PurgeBinding() { it.binding.initBinding() }

// BindChainItem manages several BindItems bound together as one unit,
// returned by Binder.BindChain. Grounded on io/binder.py's
// BindChainItem.
type BindChainItem []*BindItem

// Unbind unbinds every function in the chain.
func (c BindChainItem) Unbind() {
	for _, it := range c {
		it.Unbind()
	}
}

// Rebind rebinds the chain starting at index; mode governs the first
// item, subsequent items append (or follow mode if it is not
// exclusive), mirroring io/binder.py's BindChainItem.rebind.
func (c BindChainItem) Rebind(mode BindMode, index int) error {
	future := mode
	if mode == BindExclusive {
		future = BindAppend
	}
	for i, it := range c {
		m := future
		if i == 0 {
			m = mode
		}
		if err := it.Rebind(m, index+i); err != nil {
			return err
		}
	}
	return nil
}

// Range returns the chain's [first, last] position range in the
// execution order.
func (c BindChainItem) Range() (first, last int) {
	if len(c) == 0 {
		return -1, -1
	}
	return c[0].Index(), c[len(c)-1].Index()
}

// PurgeBinding reinitializes the chain's owning Binding.
func (c BindChainItem) PurgeBinding() {
	if len(c) > 0 {
		c[0].PurgeBinding()
	}
}

// Binding manages the functions bound to one reference: either a
// reflect.Type (type-match binding) or a concrete comparable event
// value (exact-match binding, compared via reflect.DeepEqual since
// the event structs carry pointer fields). A protected memory of
// functions always runs first and can only be appended to or reset,
// independent of the dynamic one. Grounded on io/binder.py's Binding;
// Go has no subclassing, so a type reference matches only events of
// that exact concrete type rather than Python's isinstance() subtree.
type Binding struct {
	reference any
	isType    bool
	refType   reflect.Type

	bindings  map[int]BindFunc
	callOrder []int
	protected []BindFunc
	nextID    int
}

// NewBinding constructs a Binding for classOrInstance: pass a
// reflect.Type to bind by type, or an event value to bind by exact
// value.
func NewBinding(classOrInstance any) *Binding {
	b := &Binding{reference: classOrInstance}
	if t, ok := classOrInstance.(reflect.Type); ok {
		b.isType = true
		b.refType = t
	}
	b.initBinding()
	return b
}

func (b *Binding) initBinding() {
	b.bindings = map[int]BindFunc{}
	b.callOrder = nil
	b.nextID = 0
}

// matches reports whether event satisfies b's reference.
func (b *Binding) matches(event any) bool {
	if b.isType {
		return reflect.TypeOf(event) == b.refType
	}
	return reflect.DeepEqual(b.reference, event)
}

// Call runs the protected functions, then (if comp is false, or
// b.matches(event) is true) the dynamic bindings in call order,
// threading each function's return value into the next. It returns
// whether the comparison matched (always true when comp is false).
func (b *Binding) Call(event any, prevRval any, comp bool) (bool, any) {
	if comp && !b.matches(event) {
		return false, prevRval
	}
	for _, pb := range b.protected {
		prevRval = pb(event, prevRval)
	}
	for _, id := range b.callOrder {
		prevRval = b.bindings[id](event, prevRval)
	}
	return true, prevRval
}

// Bind attaches fn to b in mode at index; see BindMode for the
// semantics of each mode. Protected modes return a nil BindItem since
// protected functions cannot be unbound or rebound individually.
func (b *Binding) Bind(fn BindFunc, mode BindMode, index int) (*BindItem, error) {
	switch mode {
	case BindAppend:
		id := b.nextID
		b.bindings[id] = fn
		b.callOrder = append(b.callOrder, id)
		b.nextID++
		return &BindItem{binding: b, fn: fn, id: id}, nil
	case BindInsert:
		id := b.nextID
		b.bindings[id] = fn
		b.callOrder = insertInt(b.callOrder, index, id)
		b.nextID++
		return &BindItem{binding: b, fn: fn, id: id}, nil
	case BindReplace:
		if index < 0 || index >= len(b.callOrder) {
			return nil, &BindError{Reason: fmt.Sprintf("no bound function at index %d", index)}
		}
		id := b.callOrder[index]
		b.bindings[id] = fn
		return &BindItem{binding: b, fn: fn, id: id}, nil
	case BindExclusive:
		id := b.nextID
		b.bindings = map[int]BindFunc{id: fn}
		b.callOrder = []int{id}
		b.nextID++
		return &BindItem{binding: b, fn: fn, id: id}, nil
	case BindProtectedAppend:
		b.protected = append(b.protected, fn)
		return nil, nil
	case BindProtectedInsert:
		p := make([]BindFunc, 0, len(b.protected)+1)
		p = append(p, b.protected[:index]...)
		p = append(p, fn)
		p = append(p, b.protected[index:]...)
		b.protected = p
		return nil, nil
	case BindProtectedReplace:
		if index < 0 || index >= len(b.protected) {
			return nil, &BindError{Reason: fmt.Sprintf("no protected function at index %d", index)}
		}
		b.protected[index] = fn
		return nil, nil
	default:
		return nil, &BindError{Reason: "invalid bind mode"}
	}
}

// Len returns the number of dynamic (non-protected) bound functions.
func (b *Binding) Len() int { return len(b.bindings) }

func removeInt(s []int, v int) []int {
	for i, x := range s {
		if x == v {
			return append(s[:i], s[i+1:]...)
		}
	}
	return s
}

func insertInt(s []int, index, v int) []int {
	if index >= len(s) {
		return append(s, v)
	}
	if index < 0 {
		index = 0
	}
	s = append(s, 0)
	copy(s[index+1:], s[index:])
	s[index] = v
	return s
}

// matchCacheSize bounds the hand-rolled get-match cache. Grounded on
// io/binder.py's @lru_cache(20); a real LRU package is not wired here
// since the cache key is not a plain comparable value (events carry
// pointer fields compared by reflect.DeepEqual, not map-key identity),
// so the cache is a small slice scanned linearly (a hit moves to the back,
// the oldest entry is evicted from the front) rather
// than a hash-keyed stdlib/third-party LRU (see DESIGN.md).
const matchCacheSize = 20

type matchCacheEntry struct {
	event  any
	result [][]*Binding
	found  bool
}

// Binder binds functions to reference types or instances and
// dispatches events to them. Two caches separate instance bindings
// (bucketed by event concrete type for speed) from type bindings.
// Grounded on io/binder.py's Binder.
type Binder struct {
	findAllMatches        bool
	findInstanceMatchOnly bool
	findClassMatchFirst   bool

	instanceCache map[reflect.Type][]*Binding
	classCache    []*Binding

	cache []matchCacheEntry
}

// BinderOption configures a Binder at construction.
type BinderOption func(*Binder)

// WithFindAllMatches makes GetMatch collect every matching Binding
// instead of stopping at the first.
func WithFindAllMatches() BinderOption { return func(b *Binder) { b.findAllMatches = true } }

// WithFindInstanceMatchOnly stops GetMatch from also searching the
// type cache once an instance match has been found.
func WithFindInstanceMatchOnly() BinderOption {
	return func(b *Binder) { b.findInstanceMatchOnly = true }
}

// WithFindClassMatchFirst orders type matches before instance matches
// when both occur.
func WithFindClassMatchFirst() BinderOption {
	return func(b *Binder) { b.findClassMatchFirst = true }
}

// NewBinder constructs a Binder. alter_bindings from io/binder.py's
// BindingT is not carried forward: Go's Binding is already a plain
// map+slice with no meaningfully more wasteful alternative to offer.
func NewBinder(opts ...BinderOption) *Binder {
	b := &Binder{instanceCache: map[reflect.Type][]*Binding{}}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// InitBinder clears every binding and the match cache.
func (b *Binder) InitBinder() {
	b.instanceCache = map[reflect.Type][]*Binding{}
	b.classCache = nil
	b.cache = nil
}

func (b *Binder) cacheClear() { b.cache = nil }

// GetBinding returns the Binding for classOrInstance, or nil.
func (b *Binder) GetBinding(classOrInstance any) *Binding {
	if t, ok := classOrInstance.(reflect.Type); ok {
		for _, bd := range b.classCache {
			if bd.isType && bd.refType == t {
				return bd
			}
		}
		return nil
	}
	for _, bd := range b.instanceCache[reflect.TypeOf(classOrInstance)] {
		if !bd.isType && reflect.DeepEqual(bd.reference, classOrInstance) {
			return bd
		}
	}
	return nil
}

// Bind binds fn to classOrInstance's Binding (creating it if absent)
// in mode at index.
func (b *Binder) Bind(classOrInstance any, fn BindFunc, mode BindMode, index int) (*BindItem, error) {
	binding := b.getOrCreateBinding(classOrInstance)
	return binding.Bind(fn, mode, index)
}

// BindChain binds fns to classOrInstance's Binding as one chain,
// starting at index in mode (subsequent functions append, per
// BindChainItem.Rebind's convention).
func (b *Binder) BindChain(classOrInstance any, fns []BindFunc, mode BindMode, index int) (BindChainItem, error) {
	binding := b.getOrCreateBinding(classOrInstance)
	future := mode
	if mode == BindExclusive {
		future = BindAppend
	}
	chain := make(BindChainItem, 0, len(fns))
	for i, fn := range fns {
		m := future
		if i == 0 {
			m = mode
		}
		item, err := binding.Bind(fn, m, index+i)
		if err != nil {
			return nil, err
		}
		if item != nil {
			chain = append(chain, item)
		}
	}
	return chain, nil
}

func (b *Binder) getOrCreateBinding(classOrInstance any) *Binding {
	if binding := b.GetBinding(classOrInstance); binding != nil {
		return binding
	}
	binding := NewBinding(classOrInstance)
	if t, ok := classOrInstance.(reflect.Type); ok {
		_ = t
		b.classCache = append(b.classCache, binding)
	} else {
		et := reflect.TypeOf(classOrInstance)
		b.instanceCache[et] = append(b.instanceCache[et], binding)
	}
	b.cacheClear()
	return binding
}

// GetMatch returns the groups of Bindings applicable to event,
// arranged per the Binder's find* options, or nil if nothing matches.
// Results are cached for the most recent matchCacheSize distinct
// events.
func (b *Binder) GetMatch(event any) [][]*Binding {
	for i, e := range b.cache {
		if reflect.DeepEqual(e.event, event) {
			entry := b.cache[i]
			b.cache = append(b.cache[:i], b.cache[i+1:]...)
			b.cache = append(b.cache, entry)
			if !entry.found {
				return nil
			}
			return entry.result
		}
	}
	result := b.computeMatch(event)
	entry := matchCacheEntry{event: event, result: result, found: result != nil}
	b.cache = append(b.cache, entry)
	if len(b.cache) > matchCacheSize {
		b.cache = b.cache[1:]
	}
	return result
}

func (b *Binder) computeMatch(event any) [][]*Binding {
	instBindings := b.instanceCache[reflect.TypeOf(event)]
	var instMatch []*Binding
	for _, bd := range instBindings {
		if bd.matches(event) {
			instMatch = append(instMatch, bd)
			if !b.findAllMatches {
				break
			}
		}
	}
	var clsMatch []*Binding
	if !(b.findInstanceMatchOnly && len(instMatch) > 0) {
		for _, bd := range b.classCache {
			if bd.matches(event) {
				clsMatch = append(clsMatch, bd)
				if !b.findAllMatches {
					break
				}
			}
		}
	}
	switch {
	case len(instMatch) > 0 && len(clsMatch) > 0:
		if b.findClassMatchFirst {
			return [][]*Binding{clsMatch, instMatch}
		}
		return [][]*Binding{instMatch, clsMatch}
	case len(instMatch) > 0:
		return [][]*Binding{instMatch}
	case len(clsMatch) > 0:
		return [][]*Binding{clsMatch}
	default:
		return nil
	}
}

// Send executes the functions bound to event via GetMatch, threading
// each group's return values independently, and reports whether
// anything executed. This is the Binder's dispatch gate.
func (b *Binder) Send(event any) bool {
	match := b.GetMatch(event)
	if match == nil {
		return false
	}
	for _, group := range match {
		var rval any
		for _, bd := range group {
			_, rval = bd.Call(event, rval, false)
		}
	}
	return true
}
