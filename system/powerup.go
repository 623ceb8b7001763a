package system

import (
	"time"

	"github.com/lixenwraith/hippo-arena/component"
	"github.com/lixenwraith/hippo-arena/engine"
	"github.com/lixenwraith/hippo-arena/event"
	"github.com/lixenwraith/hippo-arena/parameter"
	"github.com/lixenwraith/hippo-arena/vmath"
)

// PowerUpSystem occasionally drops a power-up sphere onto the board
type PowerUpSystem struct{}

func NewPowerUpSystem() *PowerUpSystem {
	return &PowerUpSystem{}
}

func (s *PowerUpSystem) Name() string {
	return "powerup"
}

func (s *PowerUpSystem) Priority() int {
	return parameter.PriorityPowerUpSpawn
}

// Update rolls the spawn chance every tick; the cap is checked after the roll
func (s *PowerUpSystem) Update(w *engine.World, _ time.Duration) {
	if w.Rand.Float64() < w.Tuning.PowerUpSpawnChance && w.LivePowerUps() < w.Tuning.PowerUpMaxLive {
		SpawnPowerUp(w)
	}
}

// SpawnPowerUp appends a stationary power-up of random type in the outer spawn band
func SpawnPowerUp(w *engine.World) *component.Sphere {
	kind := component.PowerUpTypes[w.Rand.Intn(len(component.PowerUpTypes))]
	angle := w.Rand.Angle()
	distance := parameter.PowerUpInnerRadius + w.Rand.Float64()*parameter.PowerUpBandWidth

	sp := &component.Sphere{
		ID:      w.NextSphereID(),
		Pos:     vmath.Polar(vmath.V2(parameter.CenterX, parameter.CenterY), angle, distance),
		Radius:  parameter.PowerUpRadius,
		EatenBy: component.NoOwner,
		PowerUp: &component.PowerUp{
			Type:      kind,
			SpawnTime: w.GameTime,
		},
	}
	w.Spheres = append(w.Spheres, sp)

	w.Events.Emit(event.EventPowerUpSpawned, &event.PowerUpPayload{
		HippoID:  component.NoOwner,
		SphereID: sp.ID,
		Type:     kind,
	})
	return sp
}
