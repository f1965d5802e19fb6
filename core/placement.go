// SPDX-License-Identifier: MIT
//
// File: placement.go
// Role: Deterministic initial placement for nodes the provider left unplaced.

package core

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

const (
	spiralStep = 10.0
)

// spiralAngle is the golden angle in radians.
var spiralAngle = math.Pi * (3 - math.Sqrt(5))

// Spiral returns the i-th point of a phyllotaxis spiral around center.
// Consecutive points never coincide, which keeps the kernels away from
// zero-length displacements on the first tick.
func Spiral(center r2.Vec, i int) r2.Vec {
	radius := spiralStep * math.Sqrt(0.5+float64(i))
	angle := float64(i) * spiralAngle
	return r2.Vec{
		X: center.X + radius*math.Cos(angle),
		Y: center.Y + radius*math.Sin(angle),
	}
}
