// Package sim advances the traffic game by one fixed step at a time. Every
// step takes an immutable World and returns a new one.
package sim

import (
	"github.com/golangdaddy/lanedash/pkg/config"
	"github.com/golangdaddy/lanedash/pkg/models"
	"github.com/golangdaddy/lanedash/pkg/vehicle"
)

// World is a snapshot of everything on the track plus the run bookkeeping.
type World struct {
	Player  vehicle.Player  `json:"player"`
	Enemies []vehicle.Enemy `json:"enemies"`
	Run     models.RunState `json:"run"`
	Frame   uint64          `json:"frame"`
	NextID  vehicle.ID      `json:"next_id"`
}

// NewWorld returns the world shown behind the start screen.
func NewWorld(cfg config.Simulation, bestScore int) World {
	return World{
		Player: vehicle.NewPlayer(cfg),
		Run:    models.NewRunState(bestScore),
		NextID: vehicle.FirstEnemyID,
	}
}

// FreshWorld returns the world at the first frame of a new run.
func FreshWorld(cfg config.Simulation, bestScore int) World {
	w := NewWorld(cfg, bestScore)
	w.Run = models.Fresh(bestScore)
	return w
}

// ControlIntent is the normalised player input for one step.
type ControlIntent struct {
	Left                    bool
	Right                   bool
	PauseRequested          bool
	StartOrRestartRequested bool
}
