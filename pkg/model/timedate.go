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

// TimeNumbers is one time field (hours, minutes, or seconds) split into
// its tens and ones digit image ranges.
type TimeNumbers struct {
	Tens, Ones *ImageRange
}

func (t *TimeNumbers) applyField(tag uint8, values []wire.Param) error {
	switch tag {
	case 1:
		return transformRecord(&t.Tens, values, (*ImageRange).applyField)
	case 2:
		return transformRecord(&t.Ones, values, (*ImageRange).applyField)
	}
	return nil
}

// Time is the digital clock face: hours/minutes/seconds digit pairs plus
// an optional delimiter glyph drawn between hours and minutes.
type Time struct {
	Hours, Minutes, Seconds *TimeNumbers
	DelimiterImage          *ImageReference
}

func (t *Time) applyField(tag uint8, values []wire.Param) error {
	switch tag {
	case 1:
		return transformRecord(&t.Hours, values, (*TimeNumbers).applyField)
	case 2:
		return transformRecord(&t.Minutes, values, (*TimeNumbers).applyField)
	case 3:
		return transformRecord(&t.Seconds, values, (*TimeNumbers).applyField)
	case 4:
		return transformRecord(&t.DelimiterImage, values, (*ImageReference).applyField)
	}
	return nil
}

// Separate is a month/day pair of independently laid out numbers.
type Separate struct {
	Month, Day *NumberInRect
}

func (s *Separate) applyField(tag uint8, values []wire.Param) error {
	switch tag {
	case 1:
		return transformRecord(&s.Month, values, (*NumberInRect).applyField)
	case 2:
		return transformRecord(&s.Day, values, (*NumberInRect).applyField)
	}
	return nil
}

// MonthAndDayAndYear governs numeric date rendering: whether month/day
// are zero-padded to two digits, and a Separate month/day pair. It has no
// combined single-string (delimited) date layout; only Separate is drawn.
type MonthAndDayAndYear struct {
	TwoDigitsMonth, TwoDigitsDay bool
	Separate                     *Separate
}

func (m *MonthAndDayAndYear) applyField(tag uint8, values []wire.Param) error {
	switch tag {
	case 1:
		return transformBool(&m.TwoDigitsMonth, values)
	case 2:
		return transformBool(&m.TwoDigitsDay, values)
	case 3:
		return transformRecord(&m.Separate, values, (*Separate).applyField)
	}
	return nil
}

// DayAmPm places a 4-way AM/PM glyph (Chinese and English each have
// distinct AM and PM images) at a fixed point.
type DayAmPm struct {
	X, Y                                     int32
	ImageIndexAMCN, ImageIndexPMCN           ImgId
	ImageIndexAMEN, ImageIndexPMEN           ImgId
}

func (d *DayAmPm) applyField(tag uint8, values []wire.Param) error {
	switch tag {
	case 1:
		return transformInt32(&d.X, values)
	case 2:
		return transformInt32(&d.Y, values)
	case 3:
		return transformImgId(&d.ImageIndexAMCN, values)
	case 4:
		return transformImgId(&d.ImageIndexPMCN, values)
	case 5:
		return transformImgId(&d.ImageIndexAMEN, values)
	case 6:
		return transformImgId(&d.ImageIndexPMEN, values)
	}
	return nil
}

// Date is the full date module: numeric month/day/year layout, an
// optional AM/PM glyph, and an optional weekday name image range (one
// image per weekday, selected by PreviewParams.Weekday).
type Date struct {
	MonthAndDayAndYear *MonthAndDayAndYear
	DayAmPm            *DayAmPm
	WeekDayName        *ImageRange
}

func (d *Date) applyField(tag uint8, values []wire.Param) error {
	switch tag {
	case 1:
		return transformRecord(&d.MonthAndDayAndYear, values, (*MonthAndDayAndYear).applyField)
	case 2:
		return transformRecord(&d.DayAmPm, values, (*DayAmPm).applyField)
	case 3:
		return transformRecord(&d.WeekDayName, values, (*ImageRange).applyField)
	}
	return nil
}

// WeekDaysIcons is the week strip: one fixed image reference per weekday,
// typically rendered with the current day highlighted by the caller
// choosing a different image table range per day.
type WeekDaysIcons struct {
	Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday *ImageReference
}

func (w *WeekDaysIcons) applyField(tag uint8, values []wire.Param) error {
	switch tag {
	case 1:
		return transformRecord(&w.Monday, values, (*ImageReference).applyField)
	case 2:
		return transformRecord(&w.Tuesday, values, (*ImageReference).applyField)
	case 3:
		return transformRecord(&w.Wednesday, values, (*ImageReference).applyField)
	case 4:
		return transformRecord(&w.Thursday, values, (*ImageReference).applyField)
	case 5:
		return transformRecord(&w.Friday, values, (*ImageReference).applyField)
	case 6:
		return transformRecord(&w.Saturday, values, (*ImageReference).applyField)
	case 7:
		return transformRecord(&w.Sunday, values, (*ImageReference).applyField)
	}
	return nil
}

// Alarm renders the configured wake time plus an on/off indicator image.
type Alarm struct {
	OnImage, OffImage *ImageReference
	Number            *NumberInRect
	DelimiterImageIndex ImgId
}

func (a *Alarm) applyField(tag uint8, values []wire.Param) error {
	switch tag {
	case 1:
		return transformRecord(&a.OnImage, values, (*ImageReference).applyField)
	case 2:
		return transformRecord(&a.OffImage, values, (*ImageReference).applyField)
	case 3:
		return transformRecord(&a.Number, values, (*NumberInRect).applyField)
	case 4:
		return transformImgId(&a.DelimiterImageIndex, values)
	}
	return nil
}
