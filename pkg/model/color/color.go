/*
Copyright 2022 The pdfcpu Authors.

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

// Package color provides the RGBA color type shared by the config tree's
// vector shapes and the rasterizer.
package color

import "fmt"

// RGBA is a simple 8-bit-per-channel color wrapper, as carried on the wire
// for analog hand fill/stroke colors.
type RGBA struct {
	R, G, B, A uint8
}

func (c RGBA) String() string {
	return fmt.Sprintf("r=%d g=%d b=%d a=%d", c.R, c.G, c.B, c.A)
}

// FromUint32 returns an RGBA for a packed 0xRRGGBBAA value.
func FromUint32(v uint32) RGBA {
	return RGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}
}
