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

import (
	wfcolor "github.com/mechiko/watchface/pkg/model/color"
	"github.com/mechiko/watchface/pkg/wire"
)

func transformColor(dst *wfcolor.RGBA, values []wire.Param) error {
	n, err := firstNumber(values)
	if err != nil {
		return err
	}
	*dst = wfcolor.FromUint32(uint32(n))
	return nil
}

// VectorShape is an analog hand: a polygon (Shape, relative to Center)
// filled with Color, optionally stroked-only, rotated around Center by
// the hand's current reading and drawn at the dial's pivot point.
type VectorShape struct {
	Center      *Coordinates
	Shape       []Coordinates
	Color       wfcolor.RGBA
	OnlyBorder  bool
	CenterImage *ImageReference
}

func (v *VectorShape) applyField(tag uint8, values []wire.Param) error {
	switch tag {
	case 1:
		return transformRecord(&v.Center, values, (*Coordinates).applyField)
	case 2:
		return transformSequence(&v.Shape, values, (*Coordinates).applyField)
	case 3:
		return transformColor(&v.Color, values)
	case 4:
		return transformBool(&v.OnlyBorder, values)
	case 5:
		return transformRecord(&v.CenterImage, values, (*ImageReference).applyField)
	}
	return nil
}

// AnalogDialFace is the analog clock: hour, minute, and second hands,
// each an independently shaped, colored VectorShape rotated by its own
// reading (HandAngleDegrees in package matrix computes the rotation).
type AnalogDialFace struct {
	HourHand, MinuteHand, SecondHand *VectorShape
}

func (a *AnalogDialFace) applyField(tag uint8, values []wire.Param) error {
	switch tag {
	case 1:
		return transformRecord(&a.HourHand, values, (*VectorShape).applyField)
	case 2:
		return transformRecord(&a.MinuteHand, values, (*VectorShape).applyField)
	case 3:
		return transformRecord(&a.SecondHand, values, (*VectorShape).applyField)
	}
	return nil
}

// AnimationFrame is one frame of a looping animation sequence (e.g. a
// loading spinner or a "steps goal reached" celebration); Duration is in
// milliseconds.
type AnimationFrame struct {
	Image    *ImageReference
	Duration uint32
}

func (f *AnimationFrame) applyField(tag uint8, values []wire.Param) error {
	switch tag {
	case 1:
		return transformRecord(&f.Image, values, (*ImageReference).applyField)
	case 2:
		return transformUint32(&f.Duration, values)
	}
	return nil
}
