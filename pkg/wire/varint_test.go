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

import "testing"

func TestReadVarint(t *testing.T) {
	tests := []struct {
		name    string
		buf     []byte
		want    int64
		wantLen int
	}{
		{"single byte", []byte{0x73}, 0x73, 1},
		{"two bytes", []byte{0xF3, 0x42}, 0x2173, 2},
		{"negative -13", []byte{0xF3, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0x01}, -13, 10},
		{"31 bit value", []byte{0x80, 0x80, 0x80, 0x80, 0x04}, 1073741824, 5},
		{"32 bit value", []byte{0x80, 0x80, 0x80, 0x80, 0x08}, 2147483648, 5},
		{"33 bit value", []byte{0x80, 0x80, 0x80, 0x80, 0x10}, 4294967296, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, n, err := ReadVarint(tt.buf, 0)
			if err != nil {
				t.Fatalf("ReadVarint() error = %v", err)
			}
			if got != tt.want || n != tt.wantLen {
				t.Errorf("ReadVarint() = (%d, %d), want (%d, %d)", got, n, tt.want, tt.wantLen)
			}
		})
	}
}

func TestReadVarintTruncated(t *testing.T) {
	_, _, err := ReadVarint([]byte{0xF3}, 0)
	if err == nil {
		t.Fatal("expected truncated input error")
	}
}

func TestAppendVarint(t *testing.T) {
	tests := []struct {
		name string
		v    int64
		want []byte
	}{
		{"small value", 0x73, []byte{0x73}},
		{"bigger value", 0x2173, []byte{0xF3, 0x42}},
		{"negative", -13, []byte{0xF3, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0x01}},
		{"31 bit", 1073741824, []byte{0x80, 0x80, 0x80, 0x80, 0x04}},
		{"32 bit", 2147483648, []byte{0x80, 0x80, 0x80, 0x80, 0x08}},
		{"33 bit", 4294967296, []byte{0x80, 0x80, 0x80, 0x80, 0x10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AppendVarint(nil, tt.v)
			if string(got) != string(tt.want) {
				t.Errorf("AppendVarint(%d) = % X, want % X", tt.v, got, tt.want)
			}
		})
	}
}

func TestVarintRoundTrip(t *testing.T) {
	values := []int64{0, 1, -1, 127, 128, -128, 1 << 20, -(1 << 20), 1 << 40, -(1 << 40)}
	for _, v := range values {
		buf := AppendVarint(nil, v)
		got, n, err := ReadVarint(buf, 0)
		if err != nil {
			t.Fatalf("round trip %d: %v", v, err)
		}
		if got != v || n != len(buf) {
			t.Errorf("round trip %d: got (%d, %d), want (%d, %d)", v, got, n, v, len(buf))
		}
	}
}
