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

// Battery draws the charge icon (an ImageRange scaled 0..=100 by the
// current level) plus an optional percentage number.
type Battery struct {
	Icon             *ImageRange
	Number           *NumberInRect
	SuffixImageIndex ImgId
}

func (b *Battery) applyField(tag uint8, values []wire.Param) error {
	switch tag {
	case 1:
		return transformRecord(&b.Icon, values, (*ImageRange).applyField)
	case 2:
		return transformRecord(&b.Number, values, (*NumberInRect).applyField)
	case 3:
		return transformImgId(&b.SuffixImageIndex, values)
	}
	return nil
}
