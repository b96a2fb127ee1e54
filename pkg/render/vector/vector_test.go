/*
Copyright 2022 The pdfcpu Authors.

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

package vector

import (
	"testing"

	"github.com/stretchr/testify/require"

	wfcolor "github.com/mechiko/watchface/pkg/model/color"
	"github.com/mechiko/watchface/pkg/model/matrix"
)

func triangleHand() []matrix.Point {
	return []matrix.Point{
		{X: 0, Y: -20},
		{X: 4, Y: 0},
		{X: -4, Y: 0},
	}
}

func TestRenderProducesOpaquePixels(t *testing.T) {
	hand, ok := Render(matrix.Point{X: 50, Y: 50}, triangleHand(), wfcolor.RGBA{R: 255, A: 255}, false, 0)
	require.True(t, ok)
	require.Greater(t, hand.Image.Width, uint16(0))
	require.Greater(t, hand.Image.Height, uint16(0))

	found := false
	for i := 3; i < len(hand.Image.Pixels); i += 4 {
		if hand.Image.Pixels[i] != 0 {
			found = true
			break
		}
	}
	require.True(t, found, "expected at least one non-transparent pixel")
}

func TestRenderRejectsDegenerateShape(t *testing.T) {
	_, ok := Render(matrix.Point{}, []matrix.Point{{X: 0, Y: 0}, {X: 1, Y: 1}}, wfcolor.RGBA{}, false, 0)
	require.False(t, ok)
}

func TestRenderStrokeHasFewerPixelsThanFill(t *testing.T) {
	fill, ok := Render(matrix.Point{X: 50, Y: 50}, triangleHand(), wfcolor.RGBA{A: 255}, false, 0)
	require.True(t, ok)
	stroke, ok := Render(matrix.Point{X: 50, Y: 50}, triangleHand(), wfcolor.RGBA{A: 255}, true, 0)
	require.True(t, ok)

	require.Less(t, countOpaque(stroke.Image.Pixels), countOpaque(fill.Image.Pixels))
}

func countOpaque(pixels []byte) int {
	n := 0
	for i := 3; i < len(pixels); i += 4 {
		if pixels[i] != 0 {
			n++
		}
	}
	return n
}
