// Package vehicle defines the player and enemy cars that share the track.
package vehicle

import (
	"github.com/golangdaddy/lanedash/pkg/geometry"
	"github.com/golangdaddy/lanedash/pkg/road"
)

// ID identifies a vehicle for its whole lifetime.
type ID uint64

// PlayerID is reserved for the player vehicle; enemies are numbered from FirstEnemyID.
const (
	PlayerID     ID = 0
	FirstEnemyID ID = 1
)

// Kind only affects how a vehicle is drawn and how fast it drives.
type Kind int

const (
	KindOrdinary Kind = iota
	// KindFast is the ambulance variant.
	KindFast
)

func (k Kind) String() string {
	switch k {
	case KindOrdinary:
		return "ordinary"
	case KindFast:
		return "fast"
	default:
		return "unknown"
	}
}

// Vehicle is the state shared by every car on the track.
// Speed is in pixels per 60Hz frame.
type Vehicle struct {
	ID       ID               `json:"id"`
	Position geometry.Vector2 `json:"position"`
	Size     geometry.Extent  `json:"size"`
	Lane     road.Lane        `json:"lane"`
	Speed    float64          `json:"speed"`
	Kind     Kind             `json:"kind"`
}

// Box returns the collision box of the vehicle.
func (v Vehicle) Box() geometry.Box {
	return geometry.ToBox(v.Position, v.Size)
}
