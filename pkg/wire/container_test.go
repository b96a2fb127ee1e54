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
	"bytes"
	"encoding/binary"
	"testing"
)

// buildMinimalContainer assembles a container with zero sections and a
// single image, reusing the two-pixel 32bpp image bytes from the format's
// worked example.
func buildMinimalContainer(t *testing.T) []byte {
	t.Helper()

	// parameter-info ParamMap: tag 1 -> child{1: Number(0), 2: Number(1)}
	// (parameters-region size 0, image count 1).
	paramInfo := []byte{0x0A, 0x04, 0x08, 0x00, 0x10, 0x01}

	imageBlob := []byte{
		0x42, 0x4D, 0x10, 0x00, 0x02, 0x00, 0x01, 0x00, 0x08, 0x00, 0x20, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x11, 0x21, 0x31, 0x41, 0x12, 0x22, 0x32, 0x42,
	}

	var buf bytes.Buffer
	buf.Write(make([]byte, 4))  // signature
	buf.Write(make([]byte, 75)) // header
	var le4 [4]byte
	binary.LittleEndian.PutUint32(le4[:], 0)
	buf.Write(le4[:]) // buffer size, unused
	binary.LittleEndian.PutUint32(le4[:], uint32(len(paramInfo)))
	buf.Write(le4[:]) // parameter-info size
	buf.Write(paramInfo)
	binary.LittleEndian.PutUint32(le4[:], 0)
	buf.Write(le4[:]) // image offset table: single offset 0
	buf.Write(imageBlob)

	return buf.Bytes()
}

func TestParseContainerTwoPixelImage(t *testing.T) {
	data := buildMinimalContainer(t)

	raw, err := ParseContainer(data)
	if err != nil {
		t.Fatalf("ParseContainer() error = %v", err)
	}

	if len(raw.Sections) != 0 {
		t.Fatalf("Sections = %v, want empty", raw.Sections)
	}
	if len(raw.Images) != 1 {
		t.Fatalf("len(Images) = %d, want 1", len(raw.Images))
	}

	img := raw.Images[0]
	if img.Width != 2 || img.Height != 1 || img.BitsPerPixel != 32 || img.PixelFormat != 0x10 {
		t.Fatalf("image header = %+v", img)
	}
	want := []byte{0x11, 0x21, 0x31, 0xBE, 0x12, 0x22, 0x32, 0xBD}
	if !bytes.Equal(img.Pixels, want) {
		t.Errorf("Pixels = % X, want % X", img.Pixels, want)
	}
}
