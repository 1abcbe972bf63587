package vehicle

import (
	"github.com/golangdaddy/lanedash/pkg/config"
	"github.com/golangdaddy/lanedash/pkg/road"
)

// Enemy is a traffic car driving down the track.
type Enemy struct {
	Vehicle
}

// NewEnemy creates an enemy of the given kind just above the top of the track in lane.
func NewEnemy(id ID, lane road.Lane, kind Kind, cfg config.Simulation) Enemy {
	speed := cfg.EnemySpeed
	if kind == KindFast {
		speed *= cfg.FastSpeedFactor
	}

	v := Vehicle{
		ID:    id,
		Size:  cfg.VehicleSize(),
		Lane:  lane,
		Speed: speed,
		Kind:  kind,
	}
	v.Position.X = cfg.Track().LaneCenterX(lane)
	v.Position.Y = cfg.SpawnY()

	return Enemy{Vehicle: v}
}
