package physics

import (
	"math"
	"testing"

	"github.com/lixenwraith/hippo-arena/component"
	"github.com/lixenwraith/hippo-arena/vmath"
)

const eps = 1e-9

func sphere(x, y, vx, vy float64) *component.Sphere {
	return &component.Sphere{
		Pos:     vmath.V2(x, y),
		Vel:     vmath.V2(vx, vy),
		Radius:  15,
		EatenBy: component.NoOwner,
	}
}

func nearVec(a, b vmath.Vec2) bool {
	return math.Abs(a.X-b.X) < eps && math.Abs(a.Y-b.Y) < eps
}

func TestResolvePairHeadOn(t *testing.T) {
	a := sphere(100, 100, 1, 0)
	b := sphere(120, 100, -1, 0)

	if !ResolvePair(a, b, 0.8) {
		t.Fatal("Expected overlapping pair to resolve")
	}

	if d := vmath.Dist(a.Pos, b.Pos); d < 30-eps {
		t.Errorf("Spheres still overlap after resolution, distance %v", d)
	}
	if !nearVec(a.Vel, vmath.V2(-0.8, 0)) {
		t.Errorf("Expected a velocity (-0.8,0), got %v", a.Vel)
	}
	if !nearVec(b.Vel, vmath.V2(0.8, 0)) {
		t.Errorf("Expected b velocity (0.8,0), got %v", b.Vel)
	}
	// Symmetric push of half the overlap each
	if !nearVec(a.Pos, vmath.V2(95, 100)) || !nearVec(b.Pos, vmath.V2(125, 100)) {
		t.Errorf("Unexpected positions a=%v b=%v", a.Pos, b.Pos)
	}
}

func TestResolvePairNoContact(t *testing.T) {
	a := sphere(0, 0, 1, 0)
	b := sphere(30, 0, -1, 0)
	if ResolvePair(a, b, 0.8) {
		t.Error("Touching spheres should not resolve")
	}
	if a.Vel != vmath.V2(1, 0) {
		t.Errorf("Velocity changed without contact: %v", a.Vel)
	}
}

func TestResolvePairCoincident(t *testing.T) {
	a := sphere(50, 50, 0, 0)
	b := sphere(50, 50, 0, 0)
	ResolvePair(a, b, 0.8)
	if math.IsNaN(a.Pos.X) || math.IsNaN(b.Pos.X) {
		t.Fatal("Coincident spheres produced NaN")
	}
	if d := vmath.Dist(a.Pos, b.Pos); math.Abs(d-30) > eps {
		t.Errorf("Expected full separation 30, got %v", d)
	}
}

func TestAttractSkipsCentre(t *testing.T) {
	s := sphere(300, 300, 0, 0)
	Attract(s, vmath.V2(300, 300), 0.05)
	if s.Vel != (vmath.Vec2{}) {
		t.Errorf("Sphere at centre should not be attracted, got %v", s.Vel)
	}

	s = sphere(200, 300, 0, 0)
	Attract(s, vmath.V2(300, 300), 0.05)
	if !nearVec(s.Vel, vmath.V2(0.05, 0)) {
		t.Errorf("Expected (0.05,0), got %v", s.Vel)
	}
}

func TestReflectBounds(t *testing.T) {
	tests := []struct {
		name    string
		s       *component.Sphere
		wantPos vmath.Vec2
		wantVel vmath.Vec2
	}{
		{"left wall", sphere(10, 300, -2, 0), vmath.V2(15, 300), vmath.V2(1.8, 0)},
		{"right wall", sphere(590, 300, 2, 1), vmath.V2(585, 300), vmath.V2(-1.8, 1)},
		{"top wall", sphere(300, 5, 0, -1), vmath.V2(300, 15), vmath.V2(0, 0.9)},
		{"inside", sphere(300, 300, 3, 3), vmath.V2(300, 300), vmath.V2(3, 3)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ReflectBounds(tt.s, 600, 0.9)
			if !nearVec(tt.s.Pos, tt.wantPos) || !nearVec(tt.s.Vel, tt.wantVel) {
				t.Errorf("got pos=%v vel=%v, want pos=%v vel=%v", tt.s.Pos, tt.s.Vel, tt.wantPos, tt.wantVel)
			}
		})
	}
}

func TestStepSkipsEaten(t *testing.T) {
	eaten := sphere(100, 100, 5, 5)
	eaten.Eaten = true
	live := sphere(110, 100, 0, 0)

	Step([]*component.Sphere{eaten, live}, Params{
		Center:          vmath.V2(300, 300),
		BoardSize:       600,
		Attraction:      0.05,
		Damping:         0.98,
		WallRestitution: 0.9,
		CollisionScale:  0.8,
	})

	if eaten.Pos != vmath.V2(100, 100) || eaten.Vel != vmath.V2(5, 5) {
		t.Errorf("Eaten sphere moved: pos=%v vel=%v", eaten.Pos, eaten.Vel)
	}
	if live.Pos == vmath.V2(110, 100) {
		t.Error("Live sphere did not move")
	}
}

func TestStepBoundsSpeed(t *testing.T) {
	s := sphere(300, 100, 20, 0)
	p := Params{
		Center:          vmath.V2(300, 300),
		BoardSize:       600,
		Attraction:      0.05,
		Damping:         0.98,
		WallRestitution: 0.9,
		CollisionScale:  0.8,
	}
	for i := 0; i < 2000; i++ {
		Step([]*component.Sphere{s}, p)
		if s.Pos.X < s.Radius || s.Pos.X > 600-s.Radius || s.Pos.Y < s.Radius || s.Pos.Y > 600-s.Radius {
			t.Fatalf("Sphere escaped board at tick %d: %v", i, s.Pos)
		}
	}
	// Damping with attraction a: steady speed is bounded by a*d/(1-d)
	if speed := s.Vel.Mag(); speed > 0.05*0.98/(1-0.98)+eps {
		t.Errorf("Speed not bounded by damping: %v", speed)
	}
}
