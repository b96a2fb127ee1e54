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

// Package wire implements the watch face container's wire format: the
// variable-width integer codec, the tagged-parameter record grammar, and
// the top-level container layout.
package wire

import "github.com/pkg/errors"

// ErrTruncatedInput is returned when fewer bytes are available than the
// grammar requires.
var ErrTruncatedInput = errors.New("watchface/wire: truncated input")

// maxVarintBytes bounds a varint to 10 bytes (70 payload bits, enough for
// 64 bits plus sign extension slack).
const maxVarintBytes = 10

// ReadVarint reads a little-endian base-128 varint with a high-bit
// continuation flag from buf starting at offset off. It returns the
// decoded value reinterpreted as a signed 64-bit integer, the number of
// bytes consumed, and ErrTruncatedInput if buf runs out while the
// continuation bit is still set or before 10 bytes are read.
func ReadVarint(buf []byte, off int) (int64, int, error) {
	var value uint64
	for i := 0; i < maxVarintBytes; i++ {
		if off+i >= len(buf) {
			return 0, 0, errors.Wrapf(ErrTruncatedInput, "varint: need byte %d, have %d", off+i, len(buf))
		}
		b := buf[off+i]
		value |= uint64(b&0x7f) << uint(i*7)
		if b&0x80 == 0 {
			return int64(value), i + 1, nil
		}
	}
	return 0, 0, errors.Wrapf(ErrTruncatedInput, "varint: continuation bit set past %d bytes", maxVarintBytes)
}

// AppendVarint encodes v as a little-endian base-128 varint with a
// high-bit continuation flag and appends it to buf. Negative values are
// reinterpreted as unsigned 64-bit, which for the encoder always emits
// the full 10-byte form (the sign bits fill the upper 63rd/64th bit).
func AppendVarint(buf []byte, v int64) []byte {
	value := uint64(v)
	for i := 0; i < maxVarintBytes; i++ {
		b := byte(value & 0x7f)
		value >>= 7
		if value == 0 {
			return append(buf, b)
		}
		buf = append(buf, b|0x80)
	}
	return buf
}
