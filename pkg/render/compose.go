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
	"github.com/mechiko/watchface/internal/log"
	"github.com/mechiko/watchface/pkg/devprofile"
	"github.com/mechiko/watchface/pkg/model"
	"github.com/mechiko/watchface/pkg/model/matrix"
	"github.com/mechiko/watchface/pkg/render/vector"
)

// Compose walks wf.Root in render order — background, time, activity,
// heart-rate progress, week-day icons, alarm, status, date, weather,
// steps progress, battery, analog dial face, other, status2 — and
// returns the ordered list of image placements a caller draws to
// produce one preview frame. Any module left unconfigured (nil) in the
// tree is skipped.
func Compose(wf *model.Watchface, profile devprofile.Profile, params model.PreviewParams) []model.ImageWithCoords {
	c := Context{Images: wf.Images, Profile: profile}
	var out []model.ImageWithCoords

	r := wf.Root
	out = append(out, c.composeBackground(r.Background)...)
	out = append(out, c.composeTime(r.Time, params)...)
	out = append(out, c.composeActivity(r.Activity, params)...)
	out = append(out, c.composeHeartProgress(r.HeartProgress, params)...)
	out = append(out, c.composeWeekDaysIcons(r.WeekDaysIcons, params)...)
	out = append(out, c.composeAlarm(r.Alarm, params)...)
	out = append(out, c.composeStatus(r.Status, params)...)
	out = append(out, c.composeDate(r.Date, params)...)
	out = append(out, c.composeWeather(r.Weather, params)...)
	out = append(out, c.composeStepsProgress(r.StepsProgress, params)...)
	out = append(out, c.composeBattery(r.Battery, params)...)
	out = append(out, c.composeAnalogDialFace(r.AnalogDialFace, params)...)
	out = append(out, c.composeOther(r.Other)...)
	out = append(out, c.composeStatus2(r.Status2, params)...)

	log.Render.Printf("Compose: %d placements\n", len(out))
	return out
}

func (c Context) composeBackground(b *model.Background) []model.ImageWithCoords {
	if b == nil || b.Image == nil {
		return nil
	}
	return []model.ImageWithCoords{c.place(b.Image.ImageIndex, b.Image.X, b.Image.Y)}
}

func (c Context) composeTimeNumbers(tn *model.TimeNumbers, value uint32) []model.ImageWithCoords {
	if tn == nil {
		return nil
	}
	var out []model.ImageWithCoords
	tens, ones := value/10, value%10
	if tn.Tens != nil {
		out = append(out, c.place(tn.Tens.ImageIndex+model.ImgId(tens), tn.Tens.X, tn.Tens.Y))
	}
	if tn.Ones != nil {
		out = append(out, c.place(tn.Ones.ImageIndex+model.ImgId(ones), tn.Ones.X, tn.Ones.Y))
	}
	return out
}

func (c Context) composeTime(t *model.Time, params model.PreviewParams) []model.ImageWithCoords {
	if t == nil {
		return nil
	}
	var out []model.ImageWithCoords
	if params.Hours != nil {
		hours := *params.Hours
		if params.Time12h != nil && *params.Time12h {
			hours %= 12
			if hours == 0 {
				hours = 12
			}
		}
		out = append(out, c.composeTimeNumbers(t.Hours, hours)...)
	}
	if params.Minutes != nil {
		out = append(out, c.composeTimeNumbers(t.Minutes, *params.Minutes)...)
	}
	if params.Seconds != nil {
		out = append(out, c.composeTimeNumbers(t.Seconds, *params.Seconds)...)
	}
	if t.DelimiterImage != nil {
		out = append(out, c.place(t.DelimiterImage.ImageIndex, t.DelimiterImage.X, t.DelimiterImage.Y))
	}
	return out
}

func (c Context) composeActivity(a *model.Activity, params model.PreviewParams) []model.ImageWithCoords {
	if a == nil {
		return nil
	}
	var out []model.ImageWithCoords
	if a.Steps != nil && params.Steps != nil {
		suffix := &a.Steps.SuffixImageIndex
		out = append(out, c.composeNumber(a.Steps.Number, float64(*params.Steps), 1, nil, nil, suffix, nil)...)
	}
	if a.Calories != nil && params.Calories != nil {
		suffix := &a.Calories.SuffixImageIndex
		out = append(out, c.composeNumber(a.Calories.Number, float64(*params.Calories), 1, nil, nil, suffix, nil)...)
	}
	if a.Pulse != nil && params.Pulse != nil {
		suffix := &a.Pulse.SuffixImageIndex
		out = append(out, c.composeNumber(a.Pulse.Number, float64(*params.Pulse), 1, nil, nil, suffix, nil)...)
	}
	if a.PAI != nil && params.PAI != nil {
		out = append(out, c.composeNumber(a.PAI.Number, float64(*params.PAI), 1, nil, nil, nil, nil)...)
	}
	if a.Distance != nil && params.Distance != nil {
		out = append(out, c.composeNumber(a.Distance.Number, float64(*params.Distance), 1, nil, nil, &a.Distance.SuffixImageIndex, &a.Distance.DecimalPointImageIndex)...)
	}
	return out
}

func (c Context) composeHeartProgress(h *model.HeartProgress, params model.PreviewParams) []model.ImageWithCoords {
	if h == nil || params.HeartProgress == nil {
		return nil
	}
	return c.composeLinearProgress(h.Linear, h.LineScale, *params.HeartProgress)
}

func (c Context) composeStepsProgress(s *model.StepsProgress, params model.PreviewParams) []model.ImageWithCoords {
	if s == nil || params.StepsProgress == nil {
		return nil
	}
	return c.composeLinearProgress(s.Linear, s.LineScale, *params.StepsProgress)
}

func (c Context) composeWeekDaysIcons(w *model.WeekDaysIcons, params model.PreviewParams) []model.ImageWithCoords {
	if w == nil || params.Weekday == nil {
		return nil
	}
	days := [...]*model.ImageReference{w.Monday, w.Tuesday, w.Wednesday, w.Thursday, w.Friday, w.Saturday, w.Sunday}
	idx := *params.Weekday % 7
	ref := days[idx]
	if ref == nil {
		return nil
	}
	return []model.ImageWithCoords{c.place(ref.ImageIndex, ref.X, ref.Y)}
}

func (c Context) composeAlarm(a *model.Alarm, params model.PreviewParams) []model.ImageWithCoords {
	if a == nil {
		return nil
	}
	var out []model.ImageWithCoords
	if params.AlarmOn != nil {
		ref := a.OffImage
		if *params.AlarmOn {
			ref = a.OnImage
		}
		if ref != nil {
			out = append(out, c.place(ref.ImageIndex, ref.X, ref.Y))
		}
	}
	if a.Number != nil && params.AlarmHours != nil && params.AlarmMinutes != nil {
		// Alarm carries a single NumberInRect for the whole "HH:MM"
		// reading rather than Time's separate hour/minute rects, so
		// hours and minutes compose as one packed 4-digit number
		// (e.g. 9:05 -> 0905) anchored together within it.
		packed := float64(*params.AlarmHours)*100 + float64(*params.AlarmMinutes)
		out = append(out, c.composeNumber(a.Number, packed, 4, nil, nil, nil, nil)...)
		if dw, dh, ok := c.glyphSize(a.DelimiterImageIndex); ok {
			n := a.Number
			cx := (n.TopLeftX + n.BottomRightX - dw) / 2
			cy := n.TopLeftY + (n.BottomRightY-n.TopLeftY-dh)/2
			out = append(out, c.place(a.DelimiterImageIndex, cx, cy))
		}
	}
	return out
}

func (c Context) composeStatusImage(s *model.StatusImage, on *bool) *model.ImageWithCoords {
	if s == nil || s.Position == nil || on == nil {
		return nil
	}
	id := s.OffImageIndex
	if *on {
		id = s.OnImageIndex
	}
	if _, _, ok := c.glyphSize(id); !ok {
		return nil
	}
	p := c.place(id, s.Position.X, s.Position.Y)
	return &p
}

func (c Context) composeStatus(s *model.Status, params model.PreviewParams) []model.ImageWithCoords {
	if s == nil {
		return nil
	}
	var out []model.ImageWithCoords
	for _, p := range []*model.ImageWithCoords{
		c.composeStatusImage(s.DoNotDisturb, params.DoNotDisturb),
		c.composeStatusImage(s.Lock, params.Lock),
		c.composeStatusImage(s.Bluetooth, params.Bluetooth),
	} {
		if p != nil {
			out = append(out, *p)
		}
	}
	return out
}

func (c Context) composeStatus2(s *model.Status2, params model.PreviewParams) []model.ImageWithCoords {
	if s == nil {
		return nil
	}
	return c.composeStatus(&model.Status{DoNotDisturb: s.DoNotDisturb, Lock: s.Lock, Bluetooth: s.Bluetooth}, params)
}

func (c Context) composeDate(d *model.Date, params model.PreviewParams) []model.ImageWithCoords {
	if d == nil {
		return nil
	}
	var out []model.ImageWithCoords

	if m := d.MonthAndDayAndYear; m != nil && m.Separate != nil {
		monthDigits, dayDigits := 1, 1
		if m.TwoDigitsMonth {
			monthDigits = 2
		}
		if m.TwoDigitsDay {
			dayDigits = 2
		}
		if params.Month != nil {
			out = append(out, c.composeNumber(m.Separate.Month, float64(*params.Month), monthDigits, nil, nil, nil, nil)...)
		}
		if params.Day != nil {
			out = append(out, c.composeNumber(m.Separate.Day, float64(*params.Day), dayDigits, nil, nil, nil, nil)...)
		}
	}

	if ap := d.DayAmPm; ap != nil && params.Time12h != nil && *params.Time12h && params.AM != nil {
		id := ap.ImageIndexPMEN
		if *params.AM {
			id = ap.ImageIndexAMEN
		}
		if _, _, ok := c.glyphSize(id); ok {
			out = append(out, c.place(id, ap.X, ap.Y))
		}
	}

	if d.WeekDayName != nil && params.Weekday != nil {
		if p := c.composeDirectRange(d.WeekDayName, *params.Weekday); p != nil {
			out = append(out, *p)
		}
	}

	return out
}

func (c Context) composeTemperature(t *model.TemperatureType, value *int32) []model.ImageWithCoords {
	if t == nil || value == nil {
		return nil
	}
	var sign *model.ImgId
	if *value < 0 {
		sign = &t.MinusImageIndex
	}
	return c.composeNumber(t.Number, float64(*value), 1, sign, nil, &t.SuffixImageIndex, nil)
}

func (c Context) composeWeather(w *model.Weather, params model.PreviewParams) []model.ImageWithCoords {
	if w == nil {
		return nil
	}
	var out []model.ImageWithCoords
	if w.Icon != nil && params.WeatherIcon != nil {
		if p := c.composeDirectRange(w.Icon, *params.WeatherIcon); p != nil {
			out = append(out, *p)
		}
	}
	out = append(out, c.composeTemperature(w.Temperature, params.Temperature)...)
	out = append(out, c.composeTemperature(w.DayTemperature, params.DayTemperature)...)
	out = append(out, c.composeTemperature(w.NightTemperature, params.NightTemperature)...)
	if w.Humidity != nil && params.Humidity != nil {
		out = append(out, c.composeNumber(w.Humidity, float64(*params.Humidity), 1, nil, nil, nil, nil)...)
	}
	if w.Wind != nil && params.Wind != nil {
		out = append(out, c.composeNumber(w.Wind, float64(*params.Wind), 1, nil, nil, nil, nil)...)
	}
	if w.UV != nil && params.UV != nil {
		out = append(out, c.composeNumber(w.UV, float64(*params.UV), 1, nil, nil, nil, nil)...)
	}
	return out
}

func (c Context) composeBattery(b *model.Battery, params model.PreviewParams) []model.ImageWithCoords {
	if b == nil || params.Battery == nil {
		return nil
	}
	var out []model.ImageWithCoords
	if p := c.composeScaledRange(b.Icon, *params.Battery, 100); p != nil {
		out = append(out, *p)
	}
	if b.Number != nil {
		out = append(out, c.composeNumber(b.Number, float64(*params.Battery), 1, nil, nil, &b.SuffixImageIndex, nil)...)
	}
	return out
}

func (c Context) composeOther(refs []model.ImageReference) []model.ImageWithCoords {
	out := make([]model.ImageWithCoords, 0, len(refs))
	for _, r := range refs {
		out = append(out, c.place(r.ImageIndex, r.X, r.Y))
	}
	return out
}

func (c Context) composeHand(shape *model.VectorShape, angleDeg float64) (model.ImageWithCoords, bool) {
	if shape == nil || shape.Center == nil || len(shape.Shape) < 3 {
		return model.ImageWithCoords{}, false
	}
	center := matrix.Point{X: float64(shape.Center.X), Y: float64(shape.Center.Y)}
	pts := make([]matrix.Point, len(shape.Shape))
	for i, p := range shape.Shape {
		pts[i] = matrix.Point{X: float64(p.X), Y: float64(p.Y)}
	}
	hand, ok := vector.Render(center, pts, shape.Color, shape.OnlyBorder, angleDeg)
	if !ok {
		return model.ImageWithCoords{}, false
	}
	return model.ImageWithCoords{
		X: hand.OriginX, Y: hand.OriginY,
		Type:   model.ImageTypeInline,
		Inline: &hand.Image,
	}, true
}

func (c Context) composeHandWithCenter(shape *model.VectorShape, angleDeg float64) []model.ImageWithCoords {
	var out []model.ImageWithCoords
	if p, ok := c.composeHand(shape, angleDeg); ok {
		out = append(out, p)
	}
	if shape != nil && shape.CenterImage != nil {
		ci := shape.CenterImage
		out = append(out, c.place(ci.ImageIndex, ci.X, ci.Y))
	}
	return out
}

func (c Context) composeAnalogDialFace(a *model.AnalogDialFace, params model.PreviewParams) []model.ImageWithCoords {
	if a == nil {
		return nil
	}
	var out []model.ImageWithCoords

	if a.HourHand != nil && params.Hours != nil {
		hours := float64(*params.Hours % 12)
		if params.Minutes != nil {
			hours += float64(*params.Minutes) / 60
		}
		out = append(out, c.composeHandWithCenter(a.HourHand, matrix.HandAngleDegrees(hours, 12))...)
	}
	if a.MinuteHand != nil && params.Minutes != nil {
		out = append(out, c.composeHandWithCenter(a.MinuteHand, matrix.HandAngleDegrees(float64(*params.Minutes), 60))...)
	}
	if a.SecondHand != nil && params.Seconds != nil {
		out = append(out, c.composeHandWithCenter(a.SecondHand, matrix.HandAngleDegrees(float64(*params.Seconds), 60))...)
	}

	return out
}
