package traffic

import (
	"testing"

	"github.com/golangdaddy/lanedash/pkg/config"
	"github.com/golangdaddy/lanedash/pkg/road"
	"github.com/golangdaddy/lanedash/pkg/vehicle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdvance_MovesDownTrack(t *testing.T) {
	cfg := config.DefaultSimulation()
	enemies := []vehicle.Enemy{enemyAt(1, road.LaneLeft, 100)}

	moved, removed := Advance(enemies, 1.5, 1.0/60, cfg)
	require.Len(t, moved, 1)
	assert.Zero(t, removed)
	assert.InDelta(t, 103.0, moved[0].Position.Y, 1e-9)
	assert.Equal(t, 100.0, enemies[0].Position.Y, "input is not mutated")
}

func TestAdvance_RemovesCarsPastBottom(t *testing.T) {
	cfg := config.DefaultSimulation()
	enemies := []vehicle.Enemy{
		enemyAt(1, road.LaneLeft, 679),
		enemyAt(2, road.LaneCenter, 300),
		enemyAt(3, road.LaneRight, 700),
	}

	moved, removed := Advance(enemies, 1, 1.0/60, cfg)
	assert.Equal(t, 2, removed)
	require.Len(t, moved, 1)
	assert.Equal(t, vehicle.ID(2), moved[0].ID)
}

func TestLaneCounts(t *testing.T) {
	counts := LaneCounts([]vehicle.Enemy{
		enemyAt(1, road.LaneLeft, 0),
		enemyAt(2, road.LaneLeft, 200),
		enemyAt(3, road.LaneRight, 0),
	})
	assert.Equal(t, [road.NumLanes]int{2, 0, 1}, counts)
}
