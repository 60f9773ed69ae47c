package geometry

import (
	"errors"
	"math"
)

// ErrDegenerateVector is returned when a zero-length vector has to be normalized.
var ErrDegenerateVector = errors.New("geometry: zero-length vector cannot be normalized")

// Vector represents a 2D direction or coordinate
type Vector struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Norm returns the Euclidean length of v
func (v Vector) Norm() float64 {
	return math.Hypot(v.X, v.Y)
}

// Scale returns v multiplied by s
func (v Vector) Scale(s float64) Vector {
	return Vector{X: v.X * s, Y: v.Y * s}
}

// Perp returns v rotated by +90 degrees
func (v Vector) Perp() Vector {
	return Vector{X: -v.Y, Y: v.X}
}

// Normalize returns v scaled to unit length
func Normalize(v Vector) (Vector, error) {
	l := v.Norm()
	if l == 0 || math.IsNaN(l) {
		return Vector{}, ErrDegenerateVector
	}
	return v.Scale(1 / l), nil
}

// Dot returns the 2D dot product of a and b
func Dot(a, b Vector) float64 {
	return a.X*b.X + a.Y*b.Y
}

// Lerp interpolates linearly between lo and hi.
// t = 0 gives lo, t = 1 gives hi; values outside [0,1] extrapolate.
func Lerp(lo, hi, t float64) float64 {
	return (1-t)*lo + t*hi
}
