package vmath

// Box is an axis-aligned rectangle, both bounds inclusive
type Box struct {
	Min, Max Vec2
}

// BoxAround returns a square box of the given side centred on c
func BoxAround(c Vec2, side float64) Box {
	half := side / 2
	return Box{
		Min: Vec2{c.X - half, c.Y - half},
		Max: Vec2{c.X + half, c.Y + half},
	}
}

// Contains reports whether p lies inside or on the edge of the box
func (b Box) Contains(p Vec2) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X && p.Y >= b.Min.Y && p.Y <= b.Max.Y
}

// Closest returns the point of the box nearest to p, p itself when inside
func (b Box) Closest(p Vec2) Vec2 {
	return Vec2{
		X: Clamp(p.X, b.Min.X, b.Max.X),
		Y: Clamp(p.Y, b.Min.Y, b.Max.Y),
	}
}

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
