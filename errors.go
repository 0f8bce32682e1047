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

import "errors"

// Sentinel errors for the five error kinds named by the core's error-handling
// design, plus ErrBind for binder misuse. Use errors.Is against these; the
// concrete error returned by a failing call is one of the typed errors
// below, each of which unwraps to its sentinel.
var (
	// ErrInvalidReply is returned by a reply constructor given a malformed
	// payload. The interpreter swallows this locally and falls through to
	// the next decoder or to a generic CSI/DCS/OSC value.
	ErrInvalidReply = errors.New("vtcore: invalid reply payload")

	// ErrFormat is returned by EscSegment/EscContainer Format when argument
	// count mismatches, or an unsupported flag/conversion is used with an
	// escape-valued argument. Format has no mapping-keyed ("%(name)s")
	// directives, so no mapping check is made.
	ErrFormat = errors.New("vtcore: format error")

	// ErrLookup is returned by color name resolution when the name is not
	// present in the loaded color table.
	ErrLookup = errors.New("vtcore: name not found")

	// ErrGeometry is returned when a Frame cannot fit the remaining space
	// and is not mutable, or when an axis's GeoCalculators sum to more
	// than the axis total.
	ErrGeometry = errors.New("vtcore: geometry does not fit")

	// ErrGridConfiguration is returned when placing a cell over an
	// occupied position, erasing a row/column that would split a cell, or
	// removing the last remaining row or column of a grid.
	ErrGridConfiguration = errors.New("vtcore: invalid grid configuration")

	// ErrBind is returned by Binding/Binder operations given an invalid
	// bind mode or an out-of-range index. Router operations return no
	// errors.
	ErrBind = errors.New("vtcore: invalid bind operation")
)

// InvalidReplyError reports which reply type a payload failed to parse as.
type InvalidReplyError struct {
	Reply   string
	Payload string
}

func (e *InvalidReplyError) Error() string {
	return "vtcore: invalid " + e.Reply + " reply: " + e.Payload
}

func (e *InvalidReplyError) Unwrap() error { return ErrInvalidReply }

// FormatError reports detail about a failed EscSegment/EscContainer Format call.
type FormatError struct {
	Reason string
}

func (e *FormatError) Error() string { return "vtcore: format error: " + e.Reason }

func (e *FormatError) Unwrap() error { return ErrFormat }

// LookupError reports a color name that could not be resolved.
type LookupError struct {
	Name string
}

func (e *LookupError) Error() string { return "vtcore: color name not found: " + e.Name }

func (e *LookupError) Unwrap() error { return ErrLookup }

// GeometryError reports an axis or frame sizing failure.
type GeometryError struct {
	Reason string
}

func (e *GeometryError) Error() string { return "vtcore: geometry error: " + e.Reason }

func (e *GeometryError) Unwrap() error { return ErrGeometry }

// GridConfigurationError reports an invalid placement or erasure in a Grid.
type GridConfigurationError struct {
	Reason string
}

func (e *GridConfigurationError) Error() string {
	return "vtcore: grid configuration error: " + e.Reason
}

func (e *GridConfigurationError) Unwrap() error { return ErrGridConfiguration }

// BindError reports an invalid bind mode or out-of-range index passed
// to a Binding or Binder operation.
type BindError struct {
	Reason string
}

func (e *BindError) Error() string { return "vtcore: bind error: " + e.Reason }

func (e *BindError) Unwrap() error { return ErrBind }
