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

package wire

import (
	"encoding/binary"

	"github.com/pkg/errors"

	wfimage "github.com/mechiko/watchface/pkg/wire/image"
)

// ErrUnexpectedValue is returned when a container's first parameter was
// not the Param kind a section of the grammar requires.
var ErrUnexpectedValue = errors.New("watchface/wire: unexpected param kind")

const (
	offSignature  = 0
	offHeader     = 4
	headerLen     = 75
	offBufferSize = 79
	offParamInfoSize = 83
	offParamInfo  = 87
)

// RawWatchface is the result of parsing a container's framing: the
// per-top-level-tag ParamMap the transform engine consumes, and the
// decoded image table.
type RawWatchface struct {
	Sections map[uint8]ParamMap
	Images   []wfimage.Image
}

// firstChild returns the ParamMap of the single Child param expected at
// values[0], or ErrUnexpectedValue.
func firstChild(values []Param) (ParamMap, error) {
	if len(values) == 0 {
		return nil, errors.Wrap(ErrUnexpectedValue, "empty value list, expected child")
	}
	child, ok := values[0].ChildMap()
	if !ok {
		return nil, errors.Wrap(ErrUnexpectedValue, "first param is not a child")
	}
	return child, nil
}

// firstInt returns the Number value of the single Number param expected
// at values[0], or ErrUnexpectedValue.
func firstInt(values []Param) (int64, error) {
	if len(values) == 0 {
		return 0, errors.Wrap(ErrUnexpectedValue, "empty value list, expected number")
	}
	n, ok := values[0].Int()
	if !ok {
		return 0, errors.Wrap(ErrUnexpectedValue, "first param is not a number")
	}
	return n, nil
}

// ParseContainer parses the file layout described in the container
// format's section table: a fixed header, a parameter-info ParamMap that
// names the offset/size of every top-level section's own parameter
// stream, and an image offset table.
func ParseContainer(data []byte) (*RawWatchface, error) {
	if len(data) < offParamInfo {
		return nil, errors.Wrap(ErrTruncatedInput, "container shorter than fixed header")
	}

	paramInfoSize := int64(binary.LittleEndian.Uint32(data[offParamInfoSize : offParamInfoSize+4]))
	if paramInfoSize < 0 {
		return nil, errors.Errorf("watchface/wire: negative parameter-info size %d", paramInfoSize)
	}

	paramInfo, err := ParseParamMap(data, offParamInfo, paramInfoSize)
	if err != nil {
		return nil, errors.Wrap(err, "watchface/wire: parameter-info region")
	}

	sizing, err := firstChild(paramInfo[1])
	if err != nil {
		return nil, errors.Wrap(err, "watchface/wire: parameter-info tag 1 (sizing)")
	}
	paramsRegionSize, err := firstInt(sizing[1])
	if err != nil {
		return nil, errors.Wrap(err, "watchface/wire: parameters-region size")
	}
	imageCount, err := firstInt(sizing[2])
	if err != nil {
		return nil, errors.Wrap(err, "watchface/wire: image count")
	}
	if paramsRegionSize < 0 || imageCount < 0 {
		return nil, errors.Errorf("watchface/wire: negative sizing fields size=%d count=%d", paramsRegionSize, imageCount)
	}

	paramsRegionStart := offParamInfo + int(paramInfoSize)

	sections := make(map[uint8]ParamMap)
	for tag, values := range paramInfo {
		if tag == 1 {
			continue
		}
		entry, err := firstChild(values)
		if err != nil {
			return nil, errors.Wrapf(err, "watchface/wire: section %d descriptor", tag)
		}
		offset, err := firstInt(entry[1])
		if err != nil {
			return nil, errors.Wrapf(err, "watchface/wire: section %d offset", tag)
		}
		size, err := firstInt(entry[2])
		if err != nil {
			return nil, errors.Wrapf(err, "watchface/wire: section %d size", tag)
		}
		if offset < 0 || size < 0 {
			return nil, errors.Errorf("watchface/wire: section %d has negative offset/size", tag)
		}

		section, err := ParseParamMap(data, paramsRegionStart+int(offset), size)
		if err != nil {
			return nil, errors.Wrapf(err, "watchface/wire: section %d parameters", tag)
		}
		sections[tag] = section
	}

	imagesRegionStart := paramsRegionStart + int(paramsRegionSize)
	offsetTableLen := 4 * int(imageCount)
	if imagesRegionStart+offsetTableLen > len(data) {
		return nil, errors.Wrap(ErrTruncatedInput, "image offset table")
	}

	imagesStart := imagesRegionStart + offsetTableLen
	images := make([]wfimage.Image, imageCount)
	for i := 0; i < int(imageCount); i++ {
		off := binary.LittleEndian.Uint32(data[imagesRegionStart+i*4 : imagesRegionStart+i*4+4])
		start := imagesStart + int(off)
		if start > len(data) {
			return nil, errors.Wrapf(ErrTruncatedInput, "image %d offset %d past end of file", i, off)
		}
		img, err := wfimage.Decode(data[start:])
		if err != nil {
			return nil, errors.Wrapf(err, "watchface/wire: image %d", i)
		}
		images[i] = *img
	}

	return &RawWatchface{Sections: sections, Images: images}, nil
}
