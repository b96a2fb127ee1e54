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

// Package matrix provides the affine transform used to rotate and
// translate an analog hand's polygon around its dial center.
package matrix

import (
	"fmt"
	"math"
)

const (
	DegToRad = math.Pi / 180
	RadToDeg = 180 / math.Pi
)

// Point is a 2D coordinate in device pixels.
type Point struct {
	X, Y float64
}

// Matrix is a row-major 3x3 affine transform matrix.
type Matrix [3][3]float64

// Ident is the identity matrix.
var Ident = Matrix{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}

// Multiply returns the product of m and n.
func (m Matrix) Multiply(n Matrix) Matrix {
	var p Matrix
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				p[i][j] += m[i][k] * n[k][j]
			}
		}
	}
	return p
}

// Transform applies m to p.
func (m Matrix) Transform(p Point) Point {
	x := p.X*m[0][0] + p.Y*m[1][0] + m[2][0]
	y := p.X*m[0][1] + p.Y*m[1][1] + m[2][1]
	return Point{X: x, Y: y}
}

func (m Matrix) String() string {
	return fmt.Sprintf("%3.2f %3.2f %3.2f\n%3.2f %3.2f %3.2f\n%3.2f %3.2f %3.2f\n",
		m[0][0], m[0][1], m[0][2],
		m[1][0], m[1][1], m[1][2],
		m[2][0], m[2][1], m[2][2])
}

// CalcTransformMatrix returns a scale + rotate (cos/sin) + translate matrix.
func CalcTransformMatrix(sx, sy, sin, cos, dx, dy float64) Matrix {
	m1 := Ident
	m1[0][0] = sx
	m1[1][1] = sy

	m2 := Ident
	m2[0][0] = cos
	m2[0][1] = sin
	m2[1][0] = -sin
	m2[1][1] = cos

	m3 := Ident
	m3[2][0] = dx
	m3[2][1] = dy

	return m1.Multiply(m2).Multiply(m3)
}

// RotateAroundAndTranslate returns a matrix that rotates by degrees
// rotationDeg and translates by (dx, dy) — the transform an analog hand's
// polygon is drawn through: rotate first around the origin, then move to
// the dial center.
func RotateAroundAndTranslate(rotationDeg, dx, dy float64) Matrix {
	sin := math.Sin(rotationDeg * DegToRad)
	cos := math.Cos(rotationDeg * DegToRad)
	return CalcTransformMatrix(1, 1, sin, cos, dx, dy)
}

// HandAngleDegrees returns the rotation in degrees for a hand reading
// value out of a full scale (12 for hours, 60 for minutes/seconds). A
// value of 0 gives -90, which turns a shape drawn along +X to point
// straight up on a Y-down canvas; larger values turn it clockwise.
func HandAngleDegrees(value, fullScale float64) float64 {
	return (2*math.Pi*value/fullScale - math.Pi/2) * RadToDeg
}
