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
	"math"

	"github.com/pkg/errors"

	"github.com/mechiko/watchface/internal/log"
)

// ErrOverrunContainer is returned when a container's declared byte budget
// is exceeded by the records parsed from it.
var ErrOverrunContainer = errors.New("watchface/wire: parameter parse overran container")

// ParamKind identifies which variant of Param is populated.
type ParamKind int

// The three closed variants of Param.
const (
	ParamKindNumber ParamKind = iota
	ParamKindFloat
	ParamKindChild
)

// Param is a tagged value: either a signed integer, a 32-bit float, or a
// nested ParamMap. Exactly one of the corresponding fields is meaningful,
// selected by Kind.
type Param struct {
	Kind   ParamKind
	Number int64
	Float  float32
	Child  ParamMap
}

// Int returns the Number value and true if Kind is ParamKindNumber.
func (p Param) Int() (int64, bool) {
	if p.Kind != ParamKindNumber {
		return 0, false
	}
	return p.Number, true
}

// Float32 returns the Float value and true if Kind is ParamKindFloat.
func (p Param) Float32() (float32, bool) {
	if p.Kind != ParamKindFloat {
		return 0, false
	}
	return p.Float, true
}

// ChildMap returns the Child value and true if Kind is ParamKindChild.
func (p Param) ChildMap() (ParamMap, bool) {
	if p.Kind != ParamKindChild {
		return nil, false
	}
	return p.Child, true
}

// ParamMap is a mapping from 8-bit tag id to an ordered sequence of Param
// values. A tag repeated within one container appends to its sequence,
// representing a logical list.
type ParamMap map[uint8][]Param

// field descriptor wire flags (low 3 bits of the varint).
const (
	flagHasChild = 0x02
	flagFloat    = 0x05
)

// ParseParamMap parses size bytes of buf starting at off as a sequence of
// tag-value records, per the container grammar: a record is a varint field
// descriptor (tag id in the high bits, wire flags in the low 3 bits)
// followed by either a raw little-endian float32, a varint number, or
// (when the has-child flag is set) a varint byte length followed by that
// many bytes of nested records. It returns the populated ParamMap; on
// success the records consumed exactly size bytes, and a record that runs
// past size yields ErrOverrunContainer.
func ParseParamMap(buf []byte, off int, size int64) (ParamMap, error) {
	if size < 0 {
		return nil, errors.Errorf("watchface/wire: negative container size %d", size)
	}

	m := make(ParamMap)
	remaining := size
	cur := off

	for remaining > 0 {
		val, n, err := parseOneParam(buf, cur, &m)
		if err != nil {
			return nil, err
		}
		cur += n
		remaining -= int64(n)
		log.Parse.Printf("ParseParamMap: consumed %d bytes, %d remaining\n", n, remaining)
		_ = val
	}

	if remaining < 0 {
		return nil, errors.Wrapf(ErrOverrunContainer, "container of size %d overran by %d bytes", size, -remaining)
	}

	return m, nil
}

// parseOneParam parses a single tag-value record starting at off, appends
// its value to m under its tag, and returns the number of bytes consumed.
func parseOneParam(buf []byte, off int, m *ParamMap) (Param, int, error) {
	descriptor, descLen, err := ReadVarint(buf, off)
	if err != nil {
		return Param{}, 0, errors.Wrap(err, "watchface/wire: field descriptor")
	}

	tag := uint8((descriptor >> 3) & 0xFF)
	hasChild := descriptor&flagHasChild == flagHasChild
	isFloat := descriptor&flagFloat == flagFloat

	total := descLen
	var p Param

	if isFloat {
		if off+total+4 > len(buf) {
			return Param{}, 0, errors.Wrapf(ErrTruncatedInput, "float value at offset %d", off+total)
		}
		bits := binary.LittleEndian.Uint32(buf[off+total : off+total+4])
		p = Param{Kind: ParamKindFloat, Float: math.Float32frombits(bits)}
		total += 4
	} else {
		fieldValue, valLen, err := ReadVarint(buf, off+total)
		if err != nil {
			return Param{}, 0, errors.Wrap(err, "watchface/wire: field value")
		}
		total += valLen

		if hasChild {
			childSize := fieldValue
			child, err := ParseParamMap(buf, off+total, childSize)
			if err != nil {
				return Param{}, 0, errors.Wrapf(err, "watchface/wire: child of tag %d", tag)
			}
			p = Param{Kind: ParamKindChild, Child: child}
			total += int(childSize)
		} else {
			p = Param{Kind: ParamKindNumber, Number: fieldValue}
		}
	}

	(*m)[tag] = append((*m)[tag], p)
	return p, total, nil
}
