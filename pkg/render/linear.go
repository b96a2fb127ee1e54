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

// scaledIndex maps value (clamped to [0, max]) onto one of count
// discrete image indices: frame round(value/max * (count-1)), used for
// battery icons and progress bar fill caps. count == 0
// means "no images configured".
func scaledIndex(value, max, count uint32) uint32 {
	if count == 0 {
		return 0
	}
	if max == 0 {
		return 0
	}
	if value > max {
		value = max
	}
	idx := uint32(math.Round(float64(value) / float64(max) * float64(count-1)))
	if idx >= count {
		idx = count - 1
	}
	return idx
}

// composeLinearProgress draws a discrete progress bar: given percent
// and the ordered Segments, progress = round(percent/100*(len-1)), and
// StartImageIndex+i is placed at segments[i] for i = 0..=progress —
// an incrementing trail of frame images, not a single moving dot. A
// scale-selected image from LineScale, chosen by the same percentage,
// is placed alongside it.
func (c Context) composeLinearProgress(lin *model.Linear, scale *model.ImageRange, percent uint32) []model.ImageWithCoords {
	var out []model.ImageWithCoords

	if lin != nil && len(lin.Segments) > 0 {
		if percent > 100 {
			percent = 100
		}
		progress := 0
		if n := len(lin.Segments) - 1; n > 0 {
			progress = int(math.Round(float64(percent) / 100 * float64(n)))
			if progress > n {
				progress = n
			}
		}
		for i := 0; i <= progress; i++ {
			id := lin.StartImageIndex + model.ImgId(i)
			if _, _, ok := c.glyphSize(id); ok {
				out = append(out, c.place(id, lin.Segments[i].X, lin.Segments[i].Y))
			}
		}
	}

	if scale != nil && scale.ImagesCount > 0 {
		idx := scaledIndex(percent, 100, scale.ImagesCount)
		id := scale.ImageIndex + model.ImgId(idx)
		if _, _, ok := c.glyphSize(id); ok {
			out = append(out, c.place(id, scale.X, scale.Y))
		}
	}

	return out
}

// composeScaledRange places the image at rect.ImageIndex + an index
// chosen by scaling value against max across rect.ImagesCount images —
// a battery icon strip.
func (c Context) composeScaledRange(rect *model.ImageRange, value, max uint32) *model.ImageWithCoords {
	if rect == nil || rect.ImagesCount == 0 {
		return nil
	}
	idx := scaledIndex(value, max, rect.ImagesCount)
	id := rect.ImageIndex + model.ImgId(idx)
	if _, _, ok := c.glyphSize(id); !ok {
		return nil
	}
	p := c.place(id, rect.X, rect.Y)
	return &p
}

// composeDirectRange places the image at rect.ImageIndex + index,
// clamped to the configured range — used for the weekday name and the
// weather icon, where the reading is already a direct index rather than
// a value to rescale.
func (c Context) composeDirectRange(rect *model.ImageRange, index uint32) *model.ImageWithCoords {
	if rect == nil || rect.ImagesCount == 0 {
		return nil
	}
	if index >= rect.ImagesCount {
		index = rect.ImagesCount - 1
	}
	id := rect.ImageIndex + model.ImgId(index)
	if _, _, ok := c.glyphSize(id); !ok {
		return nil
	}
	p := c.place(id, rect.X, rect.Y)
	return &p
}
