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

// Package vector rasterizes an analog hand's VectorShape polygon,
// rotated to its current reading, into a small standalone bitmap the
// renderer can place like any image-table entry.
package vector

import (
	stdimage "image"
	"image/draw"
	"math"

	"golang.org/x/image/vector"

	wfcolor "github.com/mechiko/watchface/pkg/model/color"
	"github.com/mechiko/watchface/pkg/model/matrix"
	wfimage "github.com/mechiko/watchface/pkg/wire/image"
)

// strokeInsetPx is how far (in device pixels) the inner outline used to
// carve a stroke-only hand is inset from the filled polygon's edge.
const strokeInsetPx = 1.5

// directColorFormat marks the rasterized hand bitmap as 32-bit direct
// RGBA, matching the format wfimage.Decode recognizes for 32bpp pixels.
const directColorFormat = 0x10

// Hand is a rotated, rasterized analog hand ready to be placed on the
// preview canvas at (OriginX, OriginY).
type Hand struct {
	Image            wfimage.Image
	OriginX, OriginY int32
}

// Render rotates shape (points relative to center) by angleDeg around
// the origin, translates the result to center, and rasterizes the
// filled (or stroked, if onlyBorder) polygon into a tightly cropped
// RGBA bitmap.
func Render(center matrix.Point, shape []matrix.Point, col wfcolor.RGBA, onlyBorder bool, angleDeg float64) (*Hand, bool) {
	if len(shape) < 3 {
		return nil, false
	}

	m := matrix.RotateAroundAndTranslate(angleDeg, center.X, center.Y)
	abs := make([]matrix.Point, len(shape))
	minX, minY := math.MaxFloat64, math.MaxFloat64
	maxX, maxY := -math.MaxFloat64, -math.MaxFloat64
	for i, p := range shape {
		tp := m.Transform(p)
		abs[i] = tp
		minX, maxX = math.Min(minX, tp.X), math.Max(maxX, tp.X)
		minY, maxY = math.Min(minY, tp.Y), math.Max(maxY, tp.Y)
	}

	const pad = 2.0
	ox := int32(math.Floor(minX - pad))
	oy := int32(math.Floor(minY - pad))
	w := int(math.Ceil(maxX-minX+2*pad)) + 1
	h := int(math.Ceil(maxY-minY+2*pad)) + 1
	if w <= 0 || h <= 0 {
		return nil, false
	}

	local := make([]matrix.Point, len(abs))
	for i, p := range abs {
		local[i] = matrix.Point{X: p.X - float64(ox), Y: p.Y - float64(oy)}
	}

	mask := rasterizePolygon(local, w, h)
	if onlyBorder {
		inner := rasterizePolygon(insetPolygon(local, strokeInsetPx), w, h)
		mask = subtractMask(mask, inner)
	}

	pixels := make([]byte, 4*w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			a := mask.AlphaAt(x, y).A
			if a == 0 {
				continue
			}
			pos := 4 * (y*w + x)
			pixels[pos] = col.R
			pixels[pos+1] = col.G
			pixels[pos+2] = col.B
			pixels[pos+3] = scale8(col.A, a)
		}
	}

	return &Hand{
		Image: wfimage.Image{
			Width:        uint16(w),
			Height:       uint16(h),
			BitsPerPixel: 32,
			PixelFormat:  directColorFormat,
			Pixels:       pixels,
		},
		OriginX: ox,
		OriginY: oy,
	}, true
}

func rasterizePolygon(pts []matrix.Point, w, h int) *stdimage.Alpha {
	z := vector.NewRasterizer(w, h)
	z.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		z.LineTo(float32(p.X), float32(p.Y))
	}
	z.ClosePath()
	dst := stdimage.NewAlpha(stdimage.Rect(0, 0, w, h))
	z.Draw(dst, dst.Bounds(), stdimage.Opaque, stdimage.Point{})
	return dst
}

// insetPolygon nudges each vertex toward the polygon's centroid by d
// device pixels, producing the inner boundary a stroke-only hand
// subtracts to leave just the outline.
func insetPolygon(pts []matrix.Point, d float64) []matrix.Point {
	var cx, cy float64
	for _, p := range pts {
		cx += p.X
		cy += p.Y
	}
	cx /= float64(len(pts))
	cy /= float64(len(pts))

	out := make([]matrix.Point, len(pts))
	for i, p := range pts {
		dx, dy := cx-p.X, cy-p.Y
		length := math.Hypot(dx, dy)
		if length < d {
			out[i] = matrix.Point{X: cx, Y: cy}
			continue
		}
		out[i] = matrix.Point{X: p.X + dx/length*d, Y: p.Y + dy/length*d}
	}
	return out
}

func subtractMask(full, inner *stdimage.Alpha) *stdimage.Alpha {
	out := stdimage.NewAlpha(full.Bounds())
	draw.Draw(out, out.Bounds(), full, stdimage.Point{}, draw.Src)
	b := out.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if inner.AlphaAt(x, y).A > 0 {
				out.SetAlpha(x, y, stdimage.Alpha{A: 0})
			}
		}
	}
	return out
}

func scale8(a, b uint8) uint8 {
	return uint8(uint16(a) * uint16(b) / 255)
}
