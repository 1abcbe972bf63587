package traffic

import (
	"github.com/golangdaddy/lanedash/pkg/config"
	"github.com/golangdaddy/lanedash/pkg/road"
	"github.com/golangdaddy/lanedash/pkg/vehicle"
)

// LaneCounts returns how many enemies occupy each lane.
func LaneCounts(enemies []vehicle.Enemy) [road.NumLanes]int {
	var counts [road.NumLanes]int
	for _, e := range enemies {
		if e.Lane.Valid() {
			counts[e.Lane]++
		}
	}
	return counts
}

// Advance moves every enemy down the track and drops those that have left it.
// It returns the remaining enemies in a new slice and how many were dropped.
func Advance(enemies []vehicle.Enemy, speedMultiplier, dt float64, cfg config.Simulation) ([]vehicle.Enemy, int) {
	track := cfg.Track()
	active := make([]vehicle.Enemy, 0, len(enemies)+1)
	removed := 0

	for _, e := range enemies {
		e.Position.Y += e.Speed * speedMultiplier * dt * cfg.FrameScale
		// keep car centred in its lane
		e.Position.X = track.LaneCenterX(e.Lane)

		if track.IsOffTrack(e.Position.Y, e.Size.Height) {
			removed++
			continue
		}
		active = append(active, e)
	}

	return active, removed
}
