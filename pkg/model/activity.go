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

// Steps is the daily step count, an optional unit suffix glyph.
type Steps struct {
	Number             *NumberInRect
	SuffixImageIndex   ImgId
}

func (s *Steps) applyField(tag uint8, values []wire.Param) error {
	switch tag {
	case 1:
		return transformRecord(&s.Number, values, (*NumberInRect).applyField)
	case 2:
		return transformImgId(&s.SuffixImageIndex, values)
	}
	return nil
}

// Pulse is the heart-rate reading, beats per minute.
type Pulse struct {
	Number           *NumberInRect
	SuffixImageIndex ImgId
}

func (p *Pulse) applyField(tag uint8, values []wire.Param) error {
	switch tag {
	case 1:
		return transformRecord(&p.Number, values, (*NumberInRect).applyField)
	case 2:
		return transformImgId(&p.SuffixImageIndex, values)
	}
	return nil
}

// Calories is the burned-calories reading.
type Calories struct {
	Number           *NumberInRect
	SuffixImageIndex ImgId
}

func (c *Calories) applyField(tag uint8, values []wire.Param) error {
	switch tag {
	case 1:
		return transformRecord(&c.Number, values, (*NumberInRect).applyField)
	case 2:
		return transformImgId(&c.SuffixImageIndex, values)
	}
	return nil
}

// PAI is the Personal Activity Intelligence score.
type PAI struct {
	Number *NumberInRect
}

func (p *PAI) applyField(tag uint8, values []wire.Param) error {
	switch tag {
	case 1:
		return transformRecord(&p.Number, values, (*NumberInRect).applyField)
	}
	return nil
}

// Distance is the walked/run distance reading, in km, with a decimal
// point glyph and a "km" suffix glyph.
type Distance struct {
	Number                   *NumberInRect
	DecimalPointImageIndex   ImgId
	SuffixImageIndex         ImgId
}

func (d *Distance) applyField(tag uint8, values []wire.Param) error {
	switch tag {
	case 1:
		return transformRecord(&d.Number, values, (*NumberInRect).applyField)
	case 2:
		return transformImgId(&d.DecimalPointImageIndex, values)
	case 3:
		return transformImgId(&d.SuffixImageIndex, values)
	}
	return nil
}

// Activity groups the activity-ring readings drawn together: steps,
// calories, pulse, distance, and PAI.
type Activity struct {
	Steps    *Steps
	Calories *Calories
	Pulse    *Pulse
	Distance *Distance
	PAI      *PAI
}

func (a *Activity) applyField(tag uint8, values []wire.Param) error {
	switch tag {
	case 1:
		return transformRecord(&a.Steps, values, (*Steps).applyField)
	case 2:
		return transformRecord(&a.Calories, values, (*Calories).applyField)
	case 3:
		return transformRecord(&a.Pulse, values, (*Pulse).applyField)
	case 4:
		return transformRecord(&a.Distance, values, (*Distance).applyField)
	case 5:
		return transformRecord(&a.PAI, values, (*PAI).applyField)
	}
	return nil
}

// Linear is a progress-bar drawn as a sequence of fixed polyline segment
// points; StartImageIndex is the first of consecutive frame images, one
// per segment point.
type Linear struct {
	StartImageIndex ImgId
	Segments        []Coordinates
}

func (l *Linear) applyField(tag uint8, values []wire.Param) error {
	switch tag {
	case 1:
		return transformImgId(&l.StartImageIndex, values)
	case 2:
		return transformSequence(&l.Segments, values, (*Coordinates).applyField)
	}
	return nil
}

// HeartProgress draws the heart-rate zone progress bar: a Linear path
// plus an ImageRange that selects the filled-length cap image.
type HeartProgress struct {
	Linear    *Linear
	LineScale *ImageRange
}

func (h *HeartProgress) applyField(tag uint8, values []wire.Param) error {
	switch tag {
	case 1:
		return transformRecord(&h.Linear, values, (*Linear).applyField)
	case 2:
		return transformRecord(&h.LineScale, values, (*ImageRange).applyField)
	}
	return nil
}

// StepsProgress draws the daily step-goal progress bar, shaped exactly
// like HeartProgress.
type StepsProgress struct {
	Linear    *Linear
	LineScale *ImageRange
}

func (s *StepsProgress) applyField(tag uint8, values []wire.Param) error {
	switch tag {
	case 1:
		return transformRecord(&s.Linear, values, (*Linear).applyField)
	case 2:
		return transformRecord(&s.LineScale, values, (*ImageRange).applyField)
	}
	return nil
}
