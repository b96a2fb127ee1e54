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
	"github.com/pkg/errors"

	"github.com/mechiko/watchface/internal/log"
	"github.com/mechiko/watchface/pkg/wire"
)

// ErrUnexpectedValue mirrors wire.ErrUnexpectedValue for transform-stage
// failures: a value wasn't the Param kind the field's type requires.
var ErrUnexpectedValue = errors.New("watchface/model: unexpected param kind")

// fieldSetter applies one tag's values onto a record that already exists.
// Every generated per-field dispatch table in this package has this shape.
type fieldSetter[T any] func(t *T, tag uint8, values []wire.Param) error

// transformRecord is the data-driven transform engine's core: given the
// single-element (Child) value a record's own tag carries, it lazily
// default-initializes *dst on first touch and dispatches each of the
// child container's tags through apply. Unknown child tags are ignored
// (forward compatibility).
func transformRecord[T any](dst **T, values []wire.Param, apply fieldSetter[T]) error {
	child, err := firstChild(values)
	if err != nil {
		return err
	}
	if *dst == nil {
		*dst = new(T)
	}
	for tag, vals := range child {
		if err := apply(*dst, tag, vals); err != nil {
			return errors.Wrapf(err, "tag %d", tag)
		}
	}
	return nil
}

// transformSequence appends one T per value in values (each expected to
// be a Child), waiving the usual single-slice contract: every element of
// values is its own record. Used for polyline segments and the animation
// list (spec §4.4 "sequence<T>").
func transformSequence[T any](dst *[]T, values []wire.Param, apply fieldSetter[T]) error {
	for i, v := range values {
		child, ok := v.ChildMap()
		if !ok {
			return errors.Wrapf(ErrUnexpectedValue, "sequence element %d is not a child", i)
		}
		var item T
		for tag, vals := range child {
			if err := apply(&item, tag, vals); err != nil {
				return errors.Wrapf(err, "sequence element %d tag %d", i, tag)
			}
		}
		*dst = append(*dst, item)
	}
	return nil
}

func firstChild(values []wire.Param) (wire.ParamMap, error) {
	if len(values) == 0 {
		return nil, errors.Wrap(ErrUnexpectedValue, "expected a child value, got none")
	}
	m, ok := values[0].ChildMap()
	if !ok {
		return nil, errors.Wrap(ErrUnexpectedValue, "expected a child value")
	}
	return m, nil
}

func firstNumber(values []wire.Param) (int64, error) {
	if len(values) == 0 {
		return 0, errors.Wrap(ErrUnexpectedValue, "expected a number value, got none")
	}
	n, ok := values[0].Int()
	if !ok {
		return 0, errors.Wrap(ErrUnexpectedValue, "expected a number value")
	}
	return n, nil
}

// Primitive field transforms. Each takes the first value of the tag's
// sequence, per spec §4.4.

func transformInt32(dst *int32, values []wire.Param) error {
	n, err := firstNumber(values)
	if err != nil {
		return err
	}
	*dst = int32(n)
	return nil
}

func transformUint32(dst *uint32, values []wire.Param) error {
	n, err := firstNumber(values)
	if err != nil {
		return err
	}
	*dst = uint32(n)
	return nil
}

func transformImgId(dst *ImgId, values []wire.Param) error {
	n, err := firstNumber(values)
	if err != nil {
		return err
	}
	*dst = ImgId(n)
	return nil
}

func transformBool(dst *bool, values []wire.Param) error {
	n, err := firstNumber(values)
	if err != nil {
		return err
	}
	*dst = n != 0
	return nil
}

func transformAlignment(dst *Alignment, values []wire.Param) error {
	n, err := firstNumber(values)
	if err != nil {
		return err
	}
	*dst = ParseAlignment(n)
	return nil
}

// transformRecordFromMap is transformRecord's counterpart for a record
// whose fields are already unwrapped into a ParamMap, rather than
// carried as the first value of some parent tag. Root's top-level
// sections arrive this way: wire.ParseContainer hands back one ParamMap
// per top-level tag directly.
func transformRecordFromMap[T any](dst **T, section wire.ParamMap, apply fieldSetter[T]) error {
	if *dst == nil {
		*dst = new(T)
	}
	for tag, vals := range section {
		if err := apply(*dst, tag, vals); err != nil {
			return errors.Wrapf(err, "tag %d", tag)
		}
	}
	return nil
}

// Apply runs the transform engine over a container's parsed sections,
// populating the typed Root. Unknown top-level tags are ignored.
func (r *Root) Apply(sections map[uint8]wire.ParamMap) error {
	for tag, section := range sections {
		if err := r.applyTopLevel(tag, section); err != nil {
			return errors.Wrapf(err, "root tag %d", tag)
		}
		log.Parse.Printf("Root.Apply: tag %d (%d fields)\n", tag, len(section))
	}
	return nil
}
