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

package model

import "github.com/mechiko/watchface/pkg/wire"

// Coordinates is a bare (X, Y) placement, used for polyline segments and
// for an analog hand's center and outline points.
type Coordinates struct {
	X, Y int32
}

func (c *Coordinates) applyField(tag uint8, values []wire.Param) error {
	switch tag {
	case 1:
		return transformInt32(&c.X, values)
	case 2:
		return transformInt32(&c.Y, values)
	}
	return nil
}

// ImageReference places a single image by table index at (X, Y).
type ImageReference struct {
	X, Y       int32
	ImageIndex ImgId
}

func (r *ImageReference) applyField(tag uint8, values []wire.Param) error {
	switch tag {
	case 1:
		return transformInt32(&r.X, values)
	case 2:
		return transformInt32(&r.Y, values)
	case 3:
		return transformImgId(&r.ImageIndex, values)
	}
	return nil
}

// ImageRange places one of ImagesCount consecutive images (starting at
// ImageIndex) at (X, Y), selected at render time by a runtime reading
// (e.g. battery level, weather icon).
type ImageRange struct {
	X, Y        int32
	ImageIndex  ImgId
	ImagesCount uint32
}

func (r *ImageRange) applyField(tag uint8, values []wire.Param) error {
	switch tag {
	case 1:
		return transformInt32(&r.X, values)
	case 2:
		return transformInt32(&r.Y, values)
	case 3:
		return transformImgId(&r.ImageIndex, values)
	case 4:
		return transformUint32(&r.ImagesCount, values)
	}
	return nil
}

// NumberInRect composes a multi-digit decimal number from per-digit
// glyph images, anchored within a rectangle per Alignment.
type NumberInRect struct {
	TopLeftX, TopLeftY         int32
	BottomRightX, BottomRightY int32
	Alignment                  Alignment
	SpacingX, SpacingY         int32
	ImageIndex                 ImgId
	ImagesCount                uint32
}

func (n *NumberInRect) applyField(tag uint8, values []wire.Param) error {
	switch tag {
	case 1:
		return transformInt32(&n.TopLeftX, values)
	case 2:
		return transformInt32(&n.TopLeftY, values)
	case 3:
		return transformInt32(&n.BottomRightX, values)
	case 4:
		return transformInt32(&n.BottomRightY, values)
	case 5:
		return transformAlignment(&n.Alignment, values)
	case 6:
		return transformInt32(&n.SpacingX, values)
	case 7:
		return transformInt32(&n.SpacingY, values)
	case 8:
		return transformImgId(&n.ImageIndex, values)
	case 9:
		return transformUint32(&n.ImagesCount, values)
	}
	return nil
}

// StatusPosition anchors a StatusImage within the dial.
type StatusPosition struct {
	X, Y      int32
	Alignment Alignment
}

func (p *StatusPosition) applyField(tag uint8, values []wire.Param) error {
	switch tag {
	case 1:
		return transformInt32(&p.X, values)
	case 2:
		return transformInt32(&p.Y, values)
	case 3:
		return transformAlignment(&p.Alignment, values)
	}
	return nil
}

// StatusImage is a binary (on/off) status indicator: bluetooth, lock, or
// do-not-disturb, each choosing between two images by a boolean reading.
type StatusImage struct {
	Position                 *StatusPosition
	OnImageIndex, OffImageIndex ImgId
}

func (s *StatusImage) applyField(tag uint8, values []wire.Param) error {
	switch tag {
	case 1:
		return transformRecord(&s.Position, values, (*StatusPosition).applyField)
	case 2:
		return transformImgId(&s.OnImageIndex, values)
	case 3:
		return transformImgId(&s.OffImageIndex, values)
	}
	return nil
}
