/*
Copyright 2018 The pdfcpu Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package model defines the typed configuration tree a watch face
// container's parameters are transformed into, plus the runtime-values
// and output placement types the renderer consumes and produces.
package model

// Alignment is the closed, bit-flag-derived set of anchor positions a
// NumberInRect or StatusPosition can declare. It is read from the wire as
// a plain integer; Left/Right/Top/Bottom/HCenter/VCenter are individual
// flags and the remaining constants are their declared combinations.
type Alignment int32

// The alignment constants, closed per the wire format. An Alignment field
// the wire never sets keeps the value 0, not AlignmentCenter; 0 matches
// no flag, so the layout math centers it just as it centers
// AlignmentCenter.
const (
	AlignmentLeft         Alignment = 2
	AlignmentRight        Alignment = 4
	AlignmentHCenter      Alignment = 8
	AlignmentTop          Alignment = 16
	AlignmentBottom       Alignment = 32
	AlignmentVCenter      Alignment = 64
	AlignmentTopLeft      Alignment = 18
	AlignmentBottomLeft   Alignment = 34
	AlignmentCenterLeft   Alignment = 66
	AlignmentTopRight     Alignment = 20
	AlignmentBottomRight  Alignment = 36
	AlignmentCenterRight  Alignment = 68
	AlignmentTopCenter    Alignment = 24
	AlignmentBottomCenter Alignment = 40
	AlignmentCenter       Alignment = 72

	// AlignmentUnknown is not a wire value; ParseAlignment returns it for
	// any integer outside the closed set above. Its Flags() is 0, which
	// the layout math treats as "no flags set" (falls through to center
	// alignment behavior by virtue of matching neither the left nor the
	// right flag).
	AlignmentUnknown Alignment = -1
)

// ParseAlignment maps a wire integer to its Alignment, or AlignmentUnknown
// if the value isn't one of the declared constants. This is never an
// error: unknown alignment values are observed in real data and must be
// tolerated (spec §9 "Ambiguities").
func ParseAlignment(v int64) Alignment {
	switch Alignment(v) {
	case AlignmentLeft, AlignmentRight, AlignmentHCenter, AlignmentTop, AlignmentBottom, AlignmentVCenter,
		AlignmentTopLeft, AlignmentBottomLeft, AlignmentCenterLeft,
		AlignmentTopRight, AlignmentBottomRight, AlignmentCenterRight,
		AlignmentTopCenter, AlignmentBottomCenter, AlignmentCenter:
		return Alignment(v)
	default:
		return AlignmentUnknown
	}
}

// Flags returns the numeric bit flags used by the layout math. For
// AlignmentUnknown this is 0, matching no flag.
func (a Alignment) Flags() int32 {
	if a == AlignmentUnknown {
		return 0
	}
	return int32(a)
}
