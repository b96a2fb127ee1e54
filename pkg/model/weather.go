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

// TemperatureType composes a signed temperature reading: a minus-sign
// glyph shown only when the reading is negative, and a degree-unit
// suffix glyph.
type TemperatureType struct {
	Number             *NumberInRect
	MinusImageIndex    ImgId
	SuffixImageIndex   ImgId
}

func (t *TemperatureType) applyField(tag uint8, values []wire.Param) error {
	switch tag {
	case 1:
		return transformRecord(&t.Number, values, (*NumberInRect).applyField)
	case 2:
		return transformImgId(&t.MinusImageIndex, values)
	case 3:
		return transformImgId(&t.SuffixImageIndex, values)
	}
	return nil
}

// Weather groups the current-conditions icon and the temperature,
// day-temperature, night-temperature, humidity, wind, and UV-index
// readings, each independently optional.
type Weather struct {
	Icon            *ImageRange
	Temperature     *TemperatureType
	DayTemperature  *TemperatureType
	NightTemperature *TemperatureType
	Humidity        *NumberInRect
	Wind            *NumberInRect
	UV              *NumberInRect
}

func (w *Weather) applyField(tag uint8, values []wire.Param) error {
	switch tag {
	case 1:
		return transformRecord(&w.Icon, values, (*ImageRange).applyField)
	case 2:
		return transformRecord(&w.Temperature, values, (*TemperatureType).applyField)
	case 3:
		return transformRecord(&w.DayTemperature, values, (*TemperatureType).applyField)
	case 4:
		return transformRecord(&w.NightTemperature, values, (*TemperatureType).applyField)
	case 5:
		return transformRecord(&w.Humidity, values, (*NumberInRect).applyField)
	case 6:
		return transformRecord(&w.Wind, values, (*NumberInRect).applyField)
	case 7:
		return transformRecord(&w.UV, values, (*NumberInRect).applyField)
	}
	return nil
}
