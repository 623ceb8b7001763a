package vmath

import "math"

// Vec2 is a float64 2D vector used for all board-space positions and velocities
type Vec2 struct {
	X, Y float64
}

func V2(x, y float64) Vec2 { return Vec2{x, y} }

func (a Vec2) Add(b Vec2) Vec2 { return Vec2{a.X + b.X, a.Y + b.Y} }

func (a Vec2) Sub(b Vec2) Vec2 { return Vec2{a.X - b.X, a.Y - b.Y} }

func (a Vec2) Scale(s float64) Vec2 { return Vec2{a.X * s, a.Y * s} }

func (a Vec2) Dot(b Vec2) float64 { return a.X*b.X + a.Y*b.Y }

func (a Vec2) MagSq() float64 { return a.X*a.X + a.Y*a.Y }

func (a Vec2) Mag() float64 { return math.Sqrt(a.MagSq()) }

// Normalize returns the unit vector, zero-safe
func (a Vec2) Normalize() Vec2 {
	mag := a.Mag()
	if mag == 0 {
		return Vec2{}
	}
	inv := 1.0 / mag
	return Vec2{a.X * inv, a.Y * inv}
}

// Dist returns the Euclidean distance between two points
func Dist(a, b Vec2) float64 {
	return a.Sub(b).Mag()
}

// FromAngle returns the unit vector for angle in radians, 0 = +X, π/2 = +Y (screen down)
func FromAngle(angle float64) Vec2 {
	return Vec2{math.Cos(angle), math.Sin(angle)}
}

// Polar returns center + FromAngle(angle)*radius
func Polar(center Vec2, angle, radius float64) Vec2 {
	return center.Add(FromAngle(angle).Scale(radius))
}
