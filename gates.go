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

import "sync/atomic"

// gateState is the tri-state lifecycle of a process-wide output gate:
// enabled, disabled, or permanently disabled (one-way).
type gateState int32

const (
	gateEnabled gateState = iota
	gateDisabled
	gatePermanentlyDisabled
)

// Gate is a process-wide switch that constructors consult before emitting
// output. Grounded on iosys/gates.py: two gates exist in the core, one for
// SGR/style output and one for DEC-private-mode output, so that an
// application piping its output elsewhere can suppress either without
// threading a flag through every call site.
type Gate struct {
	state atomic.Int32
}

// StyleGate disables color/style SGR output process-wide. Useful when
// output is being piped to a file or a non-terminal consumer.
var StyleGate Gate

// DECPMGate disables DECSET/DECRST (DEC private mode) output process-wide.
var DECPMGate Gate

// Enable re-enables the gate, unless it was permanently disabled.
func (g *Gate) Enable() {
	for {
		cur := gateState(g.state.Load())
		if cur == gatePermanentlyDisabled {
			return
		}
		if g.state.CompareAndSwap(int32(cur), int32(gateEnabled)) {
			return
		}
	}
}

// Disable disables the gate. Reversible by a later Enable call, unless the
// gate is later permanently disabled.
func (g *Gate) Disable() {
	for {
		cur := gateState(g.state.Load())
		if cur == gatePermanentlyDisabled {
			return
		}
		if g.state.CompareAndSwap(int32(cur), int32(gateDisabled)) {
			return
		}
	}
}

// DisablePermanently disables the gate irreversibly: no later Enable call
// can reopen it. The CAS loop refuses to transition out of this state.
func (g *Gate) DisablePermanently() {
	g.state.Store(int32(gatePermanentlyDisabled))
}

// Open reports whether constructors gated by g should emit their output.
func (g *Gate) Open() bool {
	return gateState(g.state.Load()) == gateEnabled
}
