package config

import (
	"fmt"

	"github.com/golangdaddy/lanedash/pkg/geometry"
	"github.com/golangdaddy/lanedash/pkg/road"
)

// Simulation holds the tuning constants of the traffic simulation.
// A Simulation is treated as immutable once a run has started.
type Simulation struct {
	TrackWidth  float64 `json:"trackWidth" mapstructure:"trackWidth"`
	TrackHeight float64 `json:"trackHeight" mapstructure:"trackHeight"`
	LaneWidth   float64 `json:"laneWidth" mapstructure:"laneWidth"`

	VehicleWidth  float64 `json:"vehicleWidth" mapstructure:"vehicleWidth"`
	VehicleHeight float64 `json:"vehicleHeight" mapstructure:"vehicleHeight"`

	// PlayerBottomOffset is the distance from the bottom of the track to the player's centre.
	PlayerBottomOffset float64 `json:"playerBottomOffset" mapstructure:"playerBottomOffset"`
	// PlayerLaneChangeSpeed is in pixels per 60Hz frame; once the remaining
	// distance to the target lane drops below it the player snaps into the lane.
	PlayerLaneChangeSpeed float64 `json:"playerLaneChangeSpeed" mapstructure:"playerLaneChangeSpeed"`
	LaneSmoothing         float64 `json:"laneSmoothing" mapstructure:"laneSmoothing"`
	// FrameRateCorrectedSmoothing scales LaneSmoothing by the frame delta instead
	// of applying it once per step.
	FrameRateCorrectedSmoothing bool `json:"frameRateCorrectedSmoothing" mapstructure:"frameRateCorrectedSmoothing"`

	// EnemySpeed is in pixels per 60Hz frame.
	EnemySpeed      float64 `json:"enemySpeed" mapstructure:"enemySpeed"`
	FastKindChance  float64 `json:"fastKindChance" mapstructure:"fastKindChance"`
	FastSpeedFactor float64 `json:"fastSpeedFactor" mapstructure:"fastSpeedFactor"`

	// Spawn cadence, in frames.
	BaseSpawnInterval int `json:"baseSpawnInterval" mapstructure:"baseSpawnInterval"`
	MinSpawnInterval  int `json:"minSpawnInterval" mapstructure:"minSpawnInterval"`
	LevelSpawnDecay   int `json:"levelSpawnDecay" mapstructure:"levelSpawnDecay"`

	MinSpawnSpacing   float64 `json:"minSpawnSpacing" mapstructure:"minSpawnSpacing"`
	MaxEnemiesPerLane int     `json:"maxEnemiesPerLane" mapstructure:"maxEnemiesPerLane"`
	MaxTotalEnemies   int     `json:"maxTotalEnemies" mapstructure:"maxTotalEnemies"`
	DangerBandStart   float64 `json:"dangerBandStart" mapstructure:"dangerBandStart"`

	LevelPeriod     float64 `json:"levelPeriod" mapstructure:"levelPeriod"`
	SpeedIncrement  float64 `json:"speedIncrement" mapstructure:"speedIncrement"`
	PointsPerSecond float64 `json:"pointsPerSecond" mapstructure:"pointsPerSecond"`
	PointsPerCar    float64 `json:"pointsPerCar" mapstructure:"pointsPerCar"`

	// FrameScale converts per-frame speeds into per-second motion.
	FrameScale float64 `json:"frameScale" mapstructure:"frameScale"`
	// MaxFrameDelta is the largest delta, in seconds, that is simulated.
	// Longer frames are dropped.
	MaxFrameDelta float64 `json:"maxFrameDelta" mapstructure:"maxFrameDelta"`
}

// DefaultSimulation returns the portrait mobile tuning the game ships with.
func DefaultSimulation() Simulation {
	return Simulation{
		TrackWidth:  360,
		TrackHeight: 640,
		LaneWidth:   120,

		VehicleWidth:  45,
		VehicleHeight: 80,

		PlayerBottomOffset:    100,
		PlayerLaneChangeSpeed: 10,
		LaneSmoothing:         0.15,

		EnemySpeed:      2.0,
		FastKindChance:  0.08,
		FastSpeedFactor: 1.1,

		BaseSpawnInterval: 120,
		MinSpawnInterval:  60,
		LevelSpawnDecay:   8,

		MinSpawnSpacing:   160,
		MaxEnemiesPerLane: 4,
		MaxTotalEnemies:   8,
		DangerBandStart:   0.3,

		LevelPeriod:     30,
		SpeedIncrement:  0.2,
		PointsPerSecond: 1,
		PointsPerCar:    10,

		FrameScale:    60,
		MaxFrameDelta: 0.1,
	}
}

// Track returns the road geometry described by the configuration.
func (s Simulation) Track() road.Track {
	return road.Track{
		Width:     s.TrackWidth,
		Height:    s.TrackHeight,
		LaneWidth: s.LaneWidth,
	}
}

// VehicleSize returns the extent shared by every vehicle.
func (s Simulation) VehicleSize() geometry.Extent {
	return geometry.Extent{Width: s.VehicleWidth, Height: s.VehicleHeight}
}

// SpawnY is the centre Y at which new enemies appear, just above the track.
func (s Simulation) SpawnY() float64 {
	return -s.VehicleHeight / 2
}

// PlayerY is the fixed centre Y of the player vehicle.
func (s Simulation) PlayerY() float64 {
	return s.TrackHeight - s.PlayerBottomOffset
}

// Validate checks that the configuration describes a playable track.
func (s Simulation) Validate() error {
	positive := []struct {
		name  string
		value float64
	}{
		{"trackWidth", s.TrackWidth},
		{"trackHeight", s.TrackHeight},
		{"laneWidth", s.LaneWidth},
		{"vehicleWidth", s.VehicleWidth},
		{"vehicleHeight", s.VehicleHeight},
		{"playerLaneChangeSpeed", s.PlayerLaneChangeSpeed},
		{"enemySpeed", s.EnemySpeed},
		{"levelPeriod", s.LevelPeriod},
		{"frameScale", s.FrameScale},
		{"maxFrameDelta", s.MaxFrameDelta},
	}
	for _, p := range positive {
		if p.value <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %v", ErrInvalid, p.name, p.value)
		}
	}

	if s.LaneWidth*road.NumLanes > s.TrackWidth {
		return fmt.Errorf("%w: %d lanes of %v do not fit a track %v wide", ErrInvalid, road.NumLanes, s.LaneWidth, s.TrackWidth)
	}
	if s.VehicleWidth > s.LaneWidth {
		return fmt.Errorf("%w: vehicleWidth %v exceeds laneWidth %v", ErrInvalid, s.VehicleWidth, s.LaneWidth)
	}
	if s.LaneSmoothing <= 0 || s.LaneSmoothing > 1 {
		return fmt.Errorf("%w: laneSmoothing must be in (0,1], got %v", ErrInvalid, s.LaneSmoothing)
	}
	if s.DangerBandStart < 0 || s.DangerBandStart >= 1 {
		return fmt.Errorf("%w: dangerBandStart must be in [0,1), got %v", ErrInvalid, s.DangerBandStart)
	}
	if s.FastKindChance < 0 || s.FastKindChance > 1 {
		return fmt.Errorf("%w: fastKindChance must be in [0,1], got %v", ErrInvalid, s.FastKindChance)
	}
	if s.BaseSpawnInterval <= 0 || s.MinSpawnInterval <= 0 {
		return fmt.Errorf("%w: spawn intervals must be positive", ErrInvalid)
	}
	if s.LevelSpawnDecay < 0 {
		return fmt.Errorf("%w: levelSpawnDecay must not be negative", ErrInvalid)
	}
	if s.MaxEnemiesPerLane <= 0 || s.MaxTotalEnemies <= 0 {
		return fmt.Errorf("%w: enemy limits must be positive", ErrInvalid)
	}
	if s.MinSpawnSpacing < 0 || s.SpeedIncrement < 0 || s.PointsPerSecond < 0 || s.PointsPerCar < 0 {
		return fmt.Errorf("%w: spacing, speed increment and points must not be negative", ErrInvalid)
	}
	return nil
}
