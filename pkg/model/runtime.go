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

import wfimage "github.com/mechiko/watchface/pkg/wire/image"

// ImgId is a non-negative index into a Watchface's image table.
type ImgId uint32

// PreviewParams is the flat set of optional runtime readings a preview
// rendering is driven by. Every field is a pointer so "not supplied" is
// distinguishable from the reading's zero value.
type PreviewParams struct {
	Hours, Minutes, Seconds *uint32
	Day, Month               *uint32
	Weekday                  *uint32 // 0 = Monday .. 6 = Sunday
	Time12h, AM              *bool

	Steps, Calories, Pulse *uint32
	Distance               *float32 // km
	PAI                    *uint32
	Battery                *uint32 // 0..=100
	HeartProgress          *uint32
	StepsProgress          *uint32

	WeatherIcon                                         *uint32
	Temperature, DayTemperature, NightTemperature        *int32
	Humidity, Wind, UV                                   *uint32

	AnimationFrame *uint32

	AlarmOn               *bool
	AlarmHours, AlarmMinutes *uint32

	DoNotDisturb, Lock, Bluetooth *bool
}

// Watchface is the parsed file: a typed configuration root plus the
// ordered image table referenced from it.
type Watchface struct {
	Root   Root
	Images []wfimage.Image
}

// ImageType discriminates whether an ImageWithCoords references the
// shared image table or carries a freshly rasterized Image (analog
// hands).
type ImageType int

const (
	ImageTypeID ImageType = iota
	ImageTypeInline
)

// ImageWithCoords is one placement in a rendered preview.
type ImageWithCoords struct {
	X, Y      int32
	Type      ImageType
	ID        ImgId
	Inline    *wfimage.Image
}
