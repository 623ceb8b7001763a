package system

import (
	"math"

	"github.com/lixenwraith/hippo-arena/component"
	"github.com/lixenwraith/hippo-arena/engine"
	"github.com/lixenwraith/hippo-arena/parameter"
	"github.com/lixenwraith/hippo-arena/vmath"
)

// seat is the fixed placement of one board side
type seat struct {
	direction component.Direction
	pos       vmath.Vec2
	angle     float64
	player    bool
}

// seats lists the four hippos in slice order; the player sits on N
var seats = [4]seat{
	{component.DirectionN, vmath.V2(parameter.CenterX, parameter.BoardSize-parameter.HippoOffset), -math.Pi / 2, true},
	{component.DirectionE, vmath.V2(parameter.HippoOffset, parameter.CenterY), 0, false},
	{component.DirectionS, vmath.V2(parameter.CenterX, parameter.HippoOffset), math.Pi / 2, false},
	{component.DirectionW, vmath.V2(parameter.BoardSize-parameter.HippoOffset, parameter.CenterY), math.Pi, false},
}

// PlaceHippos creates the four hippos with random personalities for the autonomous ones
func PlaceHippos(w *engine.World) {
	w.Hippos = make([]*component.Hippo, 0, len(seats))
	for i, st := range seats {
		h := &component.Hippo{
			ID:        i,
			Direction: st.direction,
			Pos:       st.pos,
			Angle:     st.angle,
		}
		h.BaseHead = vmath.Polar(st.pos, st.angle, parameter.HeadSize)
		h.Head = h.BaseHead
		if st.player {
			h.Personality = component.PersonalityPlayer
		} else {
			h.Personality = randomPersonality(w)
		}
		w.Hippos = append(w.Hippos, h)
	}
}

// ResetHippos clears scores, timers, buffs and animations and re-rolls autonomous personalities
func ResetHippos(w *engine.World) {
	for _, h := range w.Hippos {
		h.Retract()
		h.Score = 0
		h.LastAction = 0
		h.NextAction = 0
		h.RhythmPhase = 0
		h.Buff = component.PowerUpNone
		h.BuffEnd = 0
		if !h.IsPlayer() {
			h.Personality = randomPersonality(w)
		}
	}
}

func randomPersonality(w *engine.World) component.Personality {
	return component.AIPersonalities[w.Rand.Intn(len(component.AIPersonalities))]
}

// SpawnSpheres appends a fresh batch in the spawn annulus
// Placement retries on overlap; after the last attempt the sphere is kept where it landed
func SpawnSpheres(w *engine.World) {
	center := vmath.V2(parameter.CenterX, parameter.CenterY)
	half := parameter.SpawnSpeedRange / 2

	for i := 0; i < w.Tuning.SphereCount; i++ {
		var pos vmath.Vec2
		for attempt := 0; attempt < parameter.SpawnMaxAttempts; attempt++ {
			angle := w.Rand.Angle()
			distance := w.Rand.Float64()*parameter.SpawnBandWidth + parameter.SpawnInnerRadius
			pos = vmath.Polar(center, angle, distance)
			if !overlapsAny(w.Spheres, pos) {
				break
			}
		}

		w.Spheres = append(w.Spheres, &component.Sphere{
			ID:      w.NextSphereID(),
			Pos:     pos,
			Vel:     vmath.V2(w.Rand.Range(-half, half), w.Rand.Range(-half, half)),
			Radius:  parameter.SphereRadius,
			Bonus:   w.Rand.Float64() > 1-w.Tuning.BonusChance,
			EatenBy: component.NoOwner,
		})
	}
}

func overlapsAny(spheres []*component.Sphere, pos vmath.Vec2) bool {
	for _, s := range spheres {
		if vmath.Dist(s.Pos, pos) < parameter.SphereDiameter {
			return true
		}
	}
	return false
}
