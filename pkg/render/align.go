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

// Package render walks a parsed watch face's typed configuration tree
// and a set of runtime readings into an ordered list of image
// placements — a preview frame.
package render

import "github.com/mechiko/watchface/pkg/model"

// anchorPosition returns the top-left corner a content box of size
// (w, h) is placed at within [left,top]-[right,bottom], per align.
// Horizontal and vertical anchoring are independent: Left/Right pick an
// edge, anything else (HCenter, or an unrecognized/absent alignment)
// centers. Same for Top/Bottom/VCenter.
func anchorPosition(align model.Alignment, left, top, right, bottom, w, h int32) (x, y int32) {
	flags := align.Flags()

	switch {
	case flags&int32(model.AlignmentLeft) != 0:
		x = left
	case flags&int32(model.AlignmentRight) != 0:
		x = right - w
	default:
		x = left + (right-left-w)/2
	}

	switch {
	case flags&int32(model.AlignmentTop) != 0:
		y = top
	case flags&int32(model.AlignmentBottom) != 0:
		y = bottom - h
	default:
		y = top + (bottom-top-h)/2
	}

	return x, y
}
