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
	"github.com/mechiko/watchface/pkg/devprofile"
	"github.com/mechiko/watchface/pkg/model"
	wfimage "github.com/mechiko/watchface/pkg/wire/image"
)

// Context is the fixed input a Compose pass reads from: the decoded
// image table (for glyph sizing) and the target device's canvas
// profile. It carries no mutable state of its own.
type Context struct {
	Images  []wfimage.Image
	Profile devprofile.Profile
}

// glyphSize returns the pixel dimensions of image table entry id, or
// (0, 0, false) if id is out of range. Number runs, status images, image
// ranges, progress bars and AM/PM glyphs skip an out-of-range id rather
// than fail; placements made directly through place (background, time
// digits, weekday icons, other, hand center images) are not checked.
func (c Context) glyphSize(id model.ImgId) (w, h int32, ok bool) {
	i := int(id)
	if i < 0 || i >= len(c.Images) {
		return 0, 0, false
	}
	img := c.Images[i]
	return int32(img.Width), int32(img.Height), true
}

func (c Context) place(id model.ImgId, x, y int32) model.ImageWithCoords {
	return model.ImageWithCoords{X: x, Y: y, Type: model.ImageTypeID, ID: id}
}
