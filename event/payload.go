package event

import "github.com/lixenwraith/hippo-arena/component"

// HippoPayload identifies the hippo an event is about
type HippoPayload struct {
	HippoID int
}

// SphereEatenPayload describes a capture
type SphereEatenPayload struct {
	HippoID  int
	SphereID int
	Points   int
	Bonus    bool
}

// PowerUpPayload describes a power-up spawn or collection, HippoID is NoOwner on spawn
type PowerUpPayload struct {
	HippoID  int
	SphereID int
	Type     component.PowerUpType
}

// PhasePayload carries the phase names of a transition
type PhasePayload struct {
	From string
	To   string
}
