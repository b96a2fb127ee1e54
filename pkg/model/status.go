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

// Status is the top status icon row: do-not-disturb, lock, and
// bluetooth-connected indicators, each independently optional.
type Status struct {
	DoNotDisturb *StatusImage
	Lock         *StatusImage
	Bluetooth    *StatusImage
}

func (s *Status) applyField(tag uint8, values []wire.Param) error {
	switch tag {
	case 1:
		return transformRecord(&s.DoNotDisturb, values, (*StatusImage).applyField)
	case 2:
		return transformRecord(&s.Lock, values, (*StatusImage).applyField)
	case 3:
		return transformRecord(&s.Bluetooth, values, (*StatusImage).applyField)
	}
	return nil
}

// Status2 is a second, independently positioned status row carrying the
// same three indicators. Some dial layouts repeat the row at two screen
// locations (e.g. one for the always-on display, one for full wake).
type Status2 struct {
	DoNotDisturb *StatusImage
	Lock         *StatusImage
	Bluetooth    *StatusImage
}

func (s *Status2) applyField(tag uint8, values []wire.Param) error {
	switch tag {
	case 1:
		return transformRecord(&s.DoNotDisturb, values, (*StatusImage).applyField)
	case 2:
		return transformRecord(&s.Lock, values, (*StatusImage).applyField)
	case 3:
		return transformRecord(&s.Bluetooth, values, (*StatusImage).applyField)
	}
	return nil
}
