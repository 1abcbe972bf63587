package vehicle

import (
	"github.com/golangdaddy/lanedash/pkg/config"
	"github.com/golangdaddy/lanedash/pkg/road"
)

// StartLane is where every run begins.
const StartLane = road.LaneCenter

// Player is the vehicle under the driver's control. TargetLane differs from
// Lane only while Transitioning is set.
type Player struct {
	Vehicle
	TargetLane    road.Lane `json:"targetLane"`
	Transitioning bool      `json:"transitioning"`
}

// NewPlayer places a fresh player in the centre lane near the bottom of the track.
func NewPlayer(cfg config.Simulation) Player {
	v := Vehicle{
		ID:    PlayerID,
		Size:  cfg.VehicleSize(),
		Lane:  StartLane,
		Speed: cfg.PlayerLaneChangeSpeed,
		Kind:  KindOrdinary,
	}
	v.Position.X = cfg.Track().LaneCenterX(StartLane)
	v.Position.Y = cfg.PlayerY()

	return Player{
		Vehicle:    v,
		TargetLane: StartLane,
	}
}

// BeginLaneChange starts moving toward lane. It does nothing while a change is
// already in progress or when lane is off the track.
func (p Player) BeginLaneChange(lane road.Lane) Player {
	if p.Transitioning || !lane.Valid() || lane == p.Lane {
		return p
	}
	p.TargetLane = lane
	p.Transitioning = true
	return p
}
