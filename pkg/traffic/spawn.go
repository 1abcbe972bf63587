// Package traffic decides when and where enemy cars enter the track. Every
// placement keeps at least one lane beside the player clear of traffic in the
// lower part of the track.
package traffic

import (
	"github.com/golangdaddy/lanedash/pkg/config"
	"github.com/golangdaddy/lanedash/pkg/road"
	"github.com/golangdaddy/lanedash/pkg/vehicle"
)

// Rand is the source of randomness for lane and kind draws. *rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// Outcome records what the spawner did on a step.
type Outcome int

const (
	// OutcomeOffCadence means the frame was not a spawn tick.
	OutcomeOffCadence Outcome = iota
	// OutcomeRefused means a spawn tick was vetoed by ShouldSpawn.
	OutcomeRefused
	// OutcomeNoLane means no lane could take a new car this tick.
	OutcomeNoLane
	OutcomeSpawned
)

func (o Outcome) String() string {
	switch o {
	case OutcomeOffCadence:
		return "off_cadence"
	case OutcomeRefused:
		return "refused"
	case OutcomeNoLane:
		return "no_lane"
	case OutcomeSpawned:
		return "spawned"
	default:
		return "unknown"
	}
}

// SpawnCadence returns the number of frames between spawn ticks at level.
func SpawnCadence(level int, cfg config.Simulation) int {
	cadence := cfg.BaseSpawnInterval - (level-1)*cfg.LevelSpawnDecay
	if cadence < cfg.MinSpawnInterval {
		return cfg.MinSpawnInterval
	}
	return cadence
}

// ShouldSpawn reports whether frame is a spawn tick on which a new enemy is allowed.
func ShouldSpawn(frame uint64, level int, enemies []vehicle.Enemy, playerLane road.Lane, cfg config.Simulation) bool {
	if frame%uint64(SpawnCadence(level, cfg)) != 0 {
		return false
	}
	if !HasEscapeRoute(enemies, playerLane, cfg) {
		return false
	}
	return len(enemies) < cfg.MaxTotalEnemies
}

// HasEscapeRoute reports whether a lane next to playerLane has no enemy inside
// the danger band.
func HasEscapeRoute(enemies []vehicle.Enemy, playerLane road.Lane, cfg config.Simulation) bool {
	track := cfg.Track()
	for _, lane := range road.AdjacentLanes(playerLane) {
		clear := true
		for _, e := range enemies {
			if e.Lane == lane && track.InDangerBand(e.Position.Y, cfg.DangerBandStart) {
				clear = false
				break
			}
		}
		if clear {
			return true
		}
	}
	return false
}

// CanSpawnInLane reports whether lane has room below its occupancy limit and
// no car close to the spawn point.
func CanSpawnInLane(enemies []vehicle.Enemy, lane road.Lane, cfg config.Simulation) bool {
	count := 0
	for _, e := range enemies {
		if e.Lane != lane {
			continue
		}
		count++
		if e.Position.Y > -cfg.VehicleHeight && e.Position.Y < cfg.MinSpawnSpacing {
			return false
		}
	}
	return count < cfg.MaxEnemiesPerLane
}

// WouldPreserveEscapeRoute reports whether the player keeps an escape route
// once a car is added at the top of candidate. enemies is not modified.
func WouldPreserveEscapeRoute(enemies []vehicle.Enemy, candidate, playerLane road.Lane, cfg config.Simulation) bool {
	probed := make([]vehicle.Enemy, len(enemies), len(enemies)+1)
	copy(probed, enemies)
	probed = append(probed, vehicle.NewEnemy(0, candidate, vehicle.KindOrdinary, cfg))
	return HasEscapeRoute(probed, playerLane, cfg)
}

// SelectSpawnLane picks a lane for a new enemy uniformly among the safe ones.
// It returns false when every lane is unsafe or full.
func SelectSpawnLane(enemies []vehicle.Enemy, playerLane road.Lane, cfg config.Simulation, rng Rand) (road.Lane, bool) {
	eligible := make([]road.Lane, 0, road.NumLanes)

	if !HasEscapeRoute(enemies, playerLane, cfg) {
		// only lanes well away from the player
		for _, lane := range road.AllLanes {
			if lane == playerLane || road.IsAdjacent(lane, playerLane) {
				continue
			}
			if CanSpawnInLane(enemies, lane, cfg) {
				eligible = append(eligible, lane)
			}
		}
		return pick(eligible, rng)
	}

	for _, lane := range road.AllLanes {
		if CanSpawnInLane(enemies, lane, cfg) && WouldPreserveEscapeRoute(enemies, lane, playerLane, cfg) {
			eligible = append(eligible, lane)
		}
	}
	if len(eligible) > 0 {
		return pick(eligible, rng)
	}

	return leastOccupiedLane(enemies, cfg)
}

// leastOccupiedLane returns the spawnable lane with the fewest cars, lowest index first.
func leastOccupiedLane(enemies []vehicle.Enemy, cfg config.Simulation) (road.Lane, bool) {
	counts := LaneCounts(enemies)
	best, found := road.LaneLeft, false
	for _, lane := range road.AllLanes {
		if !CanSpawnInLane(enemies, lane, cfg) {
			continue
		}
		if !found || counts[lane] < counts[best] {
			best, found = lane, true
		}
	}
	return best, found
}

func pick(lanes []road.Lane, rng Rand) (road.Lane, bool) {
	if len(lanes) == 0 {
		return 0, false
	}
	return lanes[rng.Intn(len(lanes))], true
}

// DrawKind picks the enemy variant.
func DrawKind(rng Rand, cfg config.Simulation) vehicle.Kind {
	if rng.Float64() < cfg.FastKindChance {
		return vehicle.KindFast
	}
	return vehicle.KindOrdinary
}

// Spawn runs one spawn decision for frame. On OutcomeSpawned the returned
// enemy carries id and should be appended to the traffic.
func Spawn(frame uint64, level int, enemies []vehicle.Enemy, playerLane road.Lane, id vehicle.ID, cfg config.Simulation, rng Rand) (vehicle.Enemy, Outcome) {
	if frame%uint64(SpawnCadence(level, cfg)) != 0 {
		return vehicle.Enemy{}, OutcomeOffCadence
	}
	if !ShouldSpawn(frame, level, enemies, playerLane, cfg) {
		return vehicle.Enemy{}, OutcomeRefused
	}
	lane, ok := SelectSpawnLane(enemies, playerLane, cfg, rng)
	if !ok {
		return vehicle.Enemy{}, OutcomeNoLane
	}
	return vehicle.NewEnemy(id, lane, DrawKind(rng, cfg), cfg), OutcomeSpawned
}
