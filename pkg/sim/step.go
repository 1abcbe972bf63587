package sim

import (
	"math"

	"github.com/golangdaddy/lanedash/pkg/config"
	"github.com/golangdaddy/lanedash/pkg/geometry"
	"github.com/golangdaddy/lanedash/pkg/models"
	"github.com/golangdaddy/lanedash/pkg/traffic"
	"github.com/golangdaddy/lanedash/pkg/vehicle"
)

// StepResult is the outcome of a single Step.
type StepResult struct {
	World World

	// Skipped is set when the delta was rejected and nothing was simulated.
	Skipped bool
	// Idle is set when the run was not active.
	Idle bool

	Collided     bool
	Spawn        traffic.Outcome
	Avoided      int
	LevelChanged bool
	BestChanged  bool
}

// Step advances prev by dt seconds. Deltas above cfg.MaxFrameDelta, negative
// deltas and NaN are dropped without touching the world.
func Step(prev World, intent ControlIntent, dt float64, cfg config.Simulation, rng traffic.Rand) StepResult {
	res := StepResult{World: prev}
	if !(dt >= 0) || dt > cfg.MaxFrameDelta {
		res.Skipped = true
		return res
	}
	if !prev.Run.Active() {
		res.Idle = true
		return res
	}

	next := prev
	next.Player = UpdatePlayer(prev.Player, intent, dt, cfg)

	enemies, avoided := traffic.Advance(prev.Enemies, prev.Run.SpeedMultiplier, dt, cfg)
	res.Avoided = avoided

	next.Frame = prev.Frame + 1
	enemy, outcome := traffic.Spawn(next.Frame, prev.Run.Level, enemies, next.Player.Lane, next.NextID, cfg, rng)
	if outcome == traffic.OutcomeSpawned {
		enemies = append(enemies, enemy)
		next.NextID++
	}
	res.Spawn = outcome
	next.Enemies = enemies

	next.Run, res.LevelChanged, res.BestChanged = UpdateRunState(prev.Run, dt, avoided, cfg)

	if DetectCollision(next.Player, next.Enemies) {
		res.Collided = true
		next.Run = next.Run.EndRun()
	}

	res.World = next
	return res
}

// UpdatePlayer applies lane change input and moves the player toward its target lane.
func UpdatePlayer(p vehicle.Player, intent ControlIntent, dt float64, cfg config.Simulation) vehicle.Player {
	if !p.Transitioning {
		if intent.Left {
			if lane, ok := p.Lane.Left(); ok {
				p = p.BeginLaneChange(lane)
			}
		} else if intent.Right {
			if lane, ok := p.Lane.Right(); ok {
				p = p.BeginLaneChange(lane)
			}
		}
	}

	if !p.Transitioning {
		return p
	}

	targetX := cfg.Track().LaneCenterX(p.TargetLane)
	moveSpeed := p.Speed * dt * cfg.FrameScale
	if math.Abs(targetX-p.Position.X) < moveSpeed {
		p.Position.X = targetX
		p.Lane = p.TargetLane
		p.Transitioning = false
		return p
	}

	p.Position.X = geometry.Lerp(p.Position.X, targetX, laneSmoothing(dt, cfg))
	return p
}

// laneSmoothing is the blend factor for one step. Without frame-rate
// correction it is the configured factor regardless of dt.
func laneSmoothing(dt float64, cfg config.Simulation) float64 {
	if !cfg.FrameRateCorrectedSmoothing {
		return cfg.LaneSmoothing
	}
	return 1 - math.Pow(1-cfg.LaneSmoothing, dt*cfg.FrameScale)
}

// UpdateRunState adds time, survival points and points for avoided cars, and
// levels up every cfg.LevelPeriod seconds.
func UpdateRunState(rs models.RunState, dt float64, avoided int, cfg config.Simulation) (next models.RunState, levelChanged, bestChanged bool) {
	rs.ElapsedTime += dt
	rs.Score += cfg.PointsPerSecond*dt + float64(avoided)*cfg.PointsPerCar

	level := int(math.Floor(rs.ElapsedTime/cfg.LevelPeriod)) + 1
	if level > rs.Level {
		rs.SpeedMultiplier += float64(level-rs.Level) * cfg.SpeedIncrement
		rs.Level = level
		levelChanged = true
	}

	if best := rs.FlooredScore(); best > rs.BestScore {
		rs.BestScore = best
		bestChanged = true
	}
	return rs, levelChanged, bestChanged
}

// DetectCollision reports whether the player's box overlaps any enemy.
func DetectCollision(p vehicle.Player, enemies []vehicle.Enemy) bool {
	box := p.Box()
	for _, e := range enemies {
		if geometry.Overlaps(box, e.Box()) {
			return true
		}
	}
	return false
}
