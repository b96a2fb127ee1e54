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

func numberParam(n int64) Param { return Param{Kind: ParamKindNumber, Number: n} }

func TestParseParamMapKeyValuePair(t *testing.T) {
	buf := []byte{0x08, 0x04, 0x10, 0x6B}

	got, err := ParseParamMap(buf, 0, int64(len(buf)))
	if err != nil {
		t.Fatalf("ParseParamMap() error = %v", err)
	}

	want := ParamMap{
		1: {numberParam(0x04)},
		2: {numberParam(0x6B)},
	}
	assertParamMapEqual(t, got, want)
}

func TestParseParamMapNestedChild(t *testing.T) {
	buf := []byte{0x0A, 0x05, 0x08, 0xBC, 0x04, 0x10, 0x6B}

	got, err := ParseParamMap(buf, 0, int64(len(buf)))
	if err != nil {
		t.Fatalf("ParseParamMap() error = %v", err)
	}

	want := ParamMap{
		1: {{Kind: ParamKindChild, Child: ParamMap{
			1: {numberParam(0x23C)},
			2: {numberParam(0x6B)},
		}}},
	}
	assertParamMapEqual(t, got, want)
}

func TestParseParamMapRepeatedTagAppendsList(t *testing.T) {
	buf := []byte{0x08, 0x04, 0x08, 0x7F, 0x10, 0x6B}

	got, err := ParseParamMap(buf, 0, int64(len(buf)))
	if err != nil {
		t.Fatalf("ParseParamMap() error = %v", err)
	}

	want := ParamMap{
		1: {numberParam(0x04), numberParam(0x7F)},
		2: {numberParam(0x6B)},
	}
	assertParamMapEqual(t, got, want)
}

func TestParseParamMapMultiByteTag(t *testing.T) {
	buf := []byte{0x80, 0x02, 0x04}

	got, err := ParseParamMap(buf, 0, int64(len(buf)))
	if err != nil {
		t.Fatalf("ParseParamMap() error = %v", err)
	}

	want := ParamMap{32: {numberParam(0x04)}}
	assertParamMapEqual(t, got, want)
}

func TestParseParamMapFloatValues(t *testing.T) {
	buf := []byte{
		0x0A, 0x0A, 0x0D, 0x00, 0x00, 0xA0, 0x3F, 0x3D, 0x00, 0x00, 0xB4, 0x43,
	}

	got, err := ParseParamMap(buf, 0, int64(len(buf)))
	if err != nil {
		t.Fatalf("ParseParamMap() error = %v", err)
	}

	want := ParamMap{
		1: {{Kind: ParamKindChild, Child: ParamMap{
			1: {{Kind: ParamKindFloat, Float: 1.25}},
			7: {{Kind: ParamKindFloat, Float: 360.0}},
		}}},
	}
	assertParamMapEqual(t, got, want)
}

func TestParseParamMapOverrun(t *testing.T) {
	buf := []byte{0x08, 0x04, 0x10, 0x6B}
	if _, err := ParseParamMap(buf, 0, int64(len(buf))-1); err == nil {
		t.Fatal("expected an error for an overrunning container")
	}
}

func TestParseParamMapTruncated(t *testing.T) {
	buf := []byte{0x08}
	if _, err := ParseParamMap(buf, 0, 2); err == nil {
		t.Fatal("expected an error for a truncated container")
	}
}

func assertParamMapEqual(t *testing.T, got, want ParamMap) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("ParamMap length = %d, want %d (got %#v)", len(got), len(want), got)
	}
	for tag, wantValues := range want {
		gotValues, ok := got[tag]
		if !ok {
			t.Fatalf("missing tag %d", tag)
		}
		if len(gotValues) != len(wantValues) {
			t.Fatalf("tag %d: got %d values, want %d", tag, len(gotValues), len(wantValues))
		}
		for i := range wantValues {
			if !paramEqual(gotValues[i], wantValues[i]) {
				t.Errorf("tag %d value %d: got %#v, want %#v", tag, i, gotValues[i], wantValues[i])
			}
		}
	}
}

func paramEqual(a, b Param) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case ParamKindNumber:
		return a.Number == b.Number
	case ParamKindFloat:
		return a.Float == b.Float
	case ParamKindChild:
		if len(a.Child) != len(b.Child) {
			return false
		}
		for tag, av := range a.Child {
			bv, ok := b.Child[tag]
			if !ok || len(av) != len(bv) {
				return false
			}
			for i := range av {
				if !paramEqual(av[i], bv[i]) {
					return false
				}
			}
		}
		return true
	}
	return false
}
