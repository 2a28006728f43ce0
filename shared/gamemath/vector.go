// Package gamemath holds the pure math shared by the flight core, the
// desktop host and the simulator. It must not depend on ebiten so the
// headless binaries stay headless.
package gamemath

import "math"

// Vector is a 2D vector in world units. Y grows downward.
type Vector struct {
	X, Y float64
}

// Vec is shorthand for Vector{X: x, Y: y}.
func Vec(x, y float64) Vector {
	return Vector{X: x, Y: y}
}

func (v Vector) Add(o Vector) Vector {
	return Vector{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vector) Sub(o Vector) Vector {
	return Vector{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vector) Scale(s float64) Vector {
	return Vector{X: v.X * s, Y: v.Y * s}
}

func (v Vector) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Rotate returns v rotated by angle radians (clockwise on screen).
func (v Vector) Rotate(angle float64) Vector {
	sin, cos := math.Sincos(angle)
	return Vector{X: v.X*cos - v.Y*sin, Y: v.X*sin + v.Y*cos}
}

// FromAngle returns the unit vector pointing at angle radians.
func FromAngle(angle float64) Vector {
	sin, cos := math.Sincos(angle)
	return Vector{X: cos, Y: sin}
}
