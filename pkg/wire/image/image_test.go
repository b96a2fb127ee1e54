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

package image

import (
	"bytes"
	"testing"
)

func TestDecodeTwoPixel32Bit(t *testing.T) {
	buf := []byte{
		0x42, 0x4D, 0x10, 0x00, 0x02, 0x00, 0x01, 0x00, 0x08, 0x00, 0x20, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x11, 0x21, 0x31, 0x41, 0x12, 0x22, 0x32, 0x42,
	}

	img, err := Decode(buf)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	if img.Width != 2 || img.Height != 1 || img.BitsPerPixel != 32 || img.PixelFormat != 0x10 {
		t.Fatalf("header = %+v", img)
	}

	want := []byte{0x11, 0x21, 0x31, 0xBE, 0x12, 0x22, 0x32, 0xBD}
	if !bytes.Equal(img.Pixels, want) {
		t.Errorf("Pixels = % X, want % X", img.Pixels, want)
	}
	if len(img.Pixels) != 4*int(img.Width)*int(img.Height) {
		t.Errorf("Pixels length = %d, want %d", len(img.Pixels), 4*int(img.Width)*int(img.Height))
	}
}

func TestDecodeInvalidSignature(t *testing.T) {
	buf := make([]byte, headerSize)
	buf[0], buf[1] = 0x00, 0x00
	if _, err := Decode(buf); err == nil {
		t.Fatal("expected invalid signature error")
	}
}

func TestDecodeReservedFormatsUnsupported(t *testing.T) {
	for _, pf := range []uint16{pixelFormatCompressed, pixelFormatAlt32} {
		buf := make([]byte, headerSize)
		buf[0], buf[1] = 0x42, 0x4D
		buf[2] = byte(pf)
		buf[3] = byte(pf >> 8)
		if _, err := Decode(buf); err == nil {
			t.Errorf("pixel format 0x%04X: expected unsupported error", pf)
		}
	}
}

func TestDecodeRowSizeMismatch(t *testing.T) {
	buf := []byte{
		0x42, 0x4D, 0x10, 0x00, 0x02, 0x00, 0x01, 0x00, 0x09 /* wrong row size */, 0x00, 0x20, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x11, 0x21, 0x31, 0x41, 0x12, 0x22, 0x32, 0x42,
	}
	if _, err := Decode(buf); err == nil {
		t.Fatal("expected row size mismatch error")
	}
}

func Test1BitPalette(t *testing.T) {
	// 3x1 image, 1 bpp, 2 palette colors. Pixel bits packed MSB-first: 1,0,1 -> byte 0b101_00000 = 0xA0.
	buf := []byte{
		0x42, 0x4D, // signature
		0x64, 0x00, // pixel format 0x64 (palette)
		0x03, 0x00, // width 3
		0x01, 0x00, // height 1
		0x01, 0x00, // row size ceil(1*3/8) = 1
		0x01, 0x00, // bpp 1
		0x02, 0x00, // palette colors count
		0x02, 0x00, // transparent palette color = index 2 (1-based)
		// palette entry 0: black, opaque (not transparent index)
		0x00, 0x00, 0x00, 0x00,
		// palette entry 1: white, transparent index (1-based index 2)
		0xFF, 0xFF, 0xFF, 0x00,
		// packed pixel byte: bits 1,0,1 from MSB
		0xA0,
	}

	img, err := Decode(buf)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if img.Width != 3 || img.Height != 1 {
		t.Fatalf("dims = %dx%d", img.Width, img.Height)
	}
	// pixel 0: index 1 (white, transparent) -> alpha inverted 0xFF-0xFF=0x00
	if img.Pixels[3] != 0x00 {
		t.Errorf("pixel 0 alpha = 0x%02X, want 0x00", img.Pixels[3])
	}
	// pixel 1: index 0 (black, opaque) -> alpha inverted 0xFF-0x00=0xFF
	if img.Pixels[7] != 0xFF {
		t.Errorf("pixel 1 alpha = 0x%02X, want 0xFF", img.Pixels[7])
	}
	// pixel 2: index 1 (white, transparent) -> alpha inverted 0xFF-0xFF=0x00
	if img.Pixels[11] != 0x00 {
		t.Errorf("pixel 2 alpha = 0x%02X, want 0x00", img.Pixels[11])
	}
}
