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

package render

import (
	"math"

	"github.com/mechiko/watchface/pkg/model"
)

// glyphRun is one strip of evenly spaced, left-to-right glyphs: the
// shared shape behind composeNumber's digit strings and the optional
// prefix/suffix/decimal-point glyphs that bracket them.
type glyphRun struct {
	ids    []model.ImgId
	widths []int32
	height int32
}

func (c Context) digitsOf(value int64, minDigits int) []int {
	if value < 0 {
		value = -value
	}
	digits := []int{}
	for value > 0 {
		digits = append([]int{int(value % 10)}, digits...)
		value /= 10
	}
	if len(digits) == 0 {
		digits = []int{0}
	}
	for len(digits) < minDigits {
		digits = append([]int{0}, digits...)
	}
	return digits
}

// composeNumber lays out a NumberInRect: an optional leading sign glyph,
// an optional leading prefix glyph (e.g. a currency or unit marker drawn
// before the digits), the zero-padded decimal digits of trunc(abs(value))
// (digit d is glyph rect.ImageIndex+d), an optional decimal point plus
// two fractional digits (only appended when decimalPointIndex is
// configured and the integer part used fewer than 3 digit glyphs), and
// an optional trailing suffix glyph. The run is anchored as one block
// within rect per rect.Alignment, but each glyph's vertical position is
// independently anchored on its own height and then offset by
// i*rect.SpacingY, so a run can step diagonally as well as across.
func (c Context) composeNumber(rect *model.NumberInRect, value float64, minDigits int, signIndex, prefixIndex, suffixIndex, decimalPointIndex *model.ImgId) []model.ImageWithCoords {
	if rect == nil {
		return nil
	}

	var run glyphRun
	addGlyph := func(id model.ImgId) {
		if w, h, ok := c.glyphSize(id); ok {
			run.ids = append(run.ids, id)
			run.widths = append(run.widths, w)
			run.height = maxInt32(run.height, h)
		}
	}

	negative := value < 0
	absValue := value
	if negative {
		absValue = -absValue
	}
	intPart := int64(math.Trunc(absValue))

	if negative && signIndex != nil {
		addGlyph(*signIndex)
	}
	if prefixIndex != nil {
		addGlyph(*prefixIndex)
	}

	digits := c.digitsOf(intPart, minDigits)
	for _, d := range digits {
		addGlyph(model.ImgId(int64(rect.ImageIndex) + int64(d)))
	}

	if decimalPointIndex != nil && len(digits) < 3 {
		if _, _, ok := c.glyphSize(*decimalPointIndex); ok {
			addGlyph(*decimalPointIndex)
			frac := int(math.Round((absValue - float64(intPart)) * 100))
			if frac > 99 {
				frac = 99
			}
			for _, d := range c.digitsOf(int64(frac), 2) {
				addGlyph(model.ImgId(int64(rect.ImageIndex) + int64(d)))
			}
		}
	}

	if suffixIndex != nil {
		addGlyph(*suffixIndex)
	}

	if len(run.ids) == 0 {
		return nil
	}

	totalWidth := int32(0)
	for i, w := range run.widths {
		totalWidth += w
		if i > 0 {
			totalWidth += rect.SpacingX
		}
	}

	x, _ := anchorPosition(rect.Alignment, rect.TopLeftX, rect.TopLeftY, rect.BottomRightX, rect.BottomRightY, totalWidth, run.height)

	placements := make([]model.ImageWithCoords, 0, len(run.ids))
	cursor := x
	for i, id := range run.ids {
		w, h, _ := c.glyphSize(id)
		_, gy := anchorPosition(rect.Alignment, rect.TopLeftX, rect.TopLeftY, rect.BottomRightX, rect.BottomRightY, totalWidth, h)
		gy += int32(i) * rect.SpacingY
		placements = append(placements, c.place(id, cursor, gy))
		cursor += w + rect.SpacingX
	}
	return placements
}

func maxInt32(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}
