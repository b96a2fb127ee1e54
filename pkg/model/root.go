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

// Background is the full-screen dial backdrop, drawn first.
type Background struct {
	Image *ImageReference
}

func (b *Background) applyField(tag uint8, values []wire.Param) error {
	switch tag {
	case 1:
		return transformRecord(&b.Image, values, (*ImageReference).applyField)
	}
	return nil
}

// Root is the complete typed configuration tree a container's top-level
// sections transform into. Every field is independently optional: a
// field left nil was never configured for this watch face and the
// renderer skips it entirely.
//
// Root's drawable fields are declared in the order the renderer composes
// them, background-to-foreground; Animations is not drawn by the renderer.
type Root struct {
	Background     *Background
	Time           *Time
	Activity       *Activity
	HeartProgress  *HeartProgress
	WeekDaysIcons  *WeekDaysIcons
	Alarm          *Alarm
	Status         *Status
	Date           *Date
	Weather        *Weather
	StepsProgress  *StepsProgress
	Battery        *Battery
	AnalogDialFace *AnalogDialFace
	Other          []ImageReference
	Status2        *Status2
	Animations     []AnimationFrame
}

// applyTopLevel dispatches one of the container's top-level sections —
// already its own unwrapped ParamMap, per wire.RawWatchface.Sections —
// onto the matching Root field. Record-shaped modules dispatch their
// section's tags directly; the two list-shaped modules (Other,
// Animations) read their elements from the section's tag 1, each
// occurrence of which is one list entry (the wire format's ordinary
// repeated-tag convention, same as any other sequence<T> field).
func (r *Root) applyTopLevel(tag uint8, section wire.ParamMap) error {
	switch tag {
	case 1:
		return transformRecordFromMap(&r.Background, section, (*Background).applyField)
	case 2:
		return transformRecordFromMap(&r.Time, section, (*Time).applyField)
	case 3:
		return transformRecordFromMap(&r.Activity, section, (*Activity).applyField)
	case 4:
		return transformRecordFromMap(&r.HeartProgress, section, (*HeartProgress).applyField)
	case 5:
		return transformRecordFromMap(&r.WeekDaysIcons, section, (*WeekDaysIcons).applyField)
	case 6:
		return transformRecordFromMap(&r.Alarm, section, (*Alarm).applyField)
	case 7:
		return transformRecordFromMap(&r.Status, section, (*Status).applyField)
	case 8:
		return transformRecordFromMap(&r.Date, section, (*Date).applyField)
	case 9:
		return transformRecordFromMap(&r.Weather, section, (*Weather).applyField)
	case 10:
		return transformRecordFromMap(&r.StepsProgress, section, (*StepsProgress).applyField)
	case 11:
		return transformRecordFromMap(&r.Battery, section, (*Battery).applyField)
	case 12:
		return transformRecordFromMap(&r.AnalogDialFace, section, (*AnalogDialFace).applyField)
	case 13:
		return transformSequence(&r.Other, section[1], (*ImageReference).applyField)
	case 14:
		return transformRecordFromMap(&r.Status2, section, (*Status2).applyField)
	case 15:
		return transformSequence(&r.Animations, section[1], (*AnimationFrame).applyField)
	}
	return nil
}
