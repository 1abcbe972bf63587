// Package session owns the running game: the current world snapshot, the
// random source, the best score store and the commands the UI can issue.
// It is not safe for concurrent use; the driver calls it from one loop.
package session

import (
	"math/rand"
	"time"

	"github.com/golangdaddy/lanedash/pkg/config"
	"github.com/golangdaddy/lanedash/pkg/models"
	"github.com/golangdaddy/lanedash/pkg/sim"
	"github.com/golangdaddy/lanedash/pkg/telemetry"
	"github.com/golangdaddy/lanedash/pkg/traffic"
	"github.com/golangdaddy/lanedash/pkg/vehicle"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// BestScoreStore persists the best score. Implementations swallow their own
// failures: Load returns 0 and Save does nothing.
type BestScoreStore interface {
	LoadBestScore() int
	SaveBestScore(score int)
}

// Input is what the driver supplies on each tick.
type Input struct {
	DT       float64
	Controls sim.ControlIntent
}

// Output is what the presentation layer draws after a tick.
type Output struct {
	Player        vehicle.Player
	Enemies       []vehicle.Enemy
	RunState      models.RunState
	Status        models.Status
	StatusChanged bool
	Collided      bool
	Skipped       bool
}

type Option func(*Session)

// WithRand sets the traffic random source. Seeded sources make runs reproducible.
func WithRand(rng traffic.Rand) Option {
	return func(s *Session) {
		s.rng = rng
	}
}

func WithLogger(log zerolog.Logger) Option {
	return func(s *Session) {
		s.log = log
	}
}

func WithMetrics(m *telemetry.Metrics) Option {
	return func(s *Session) {
		s.metrics = m
	}
}

// WithIDGenerator sets how run identifiers are minted.
func WithIDGenerator(gen func() uuid.UUID) Option {
	return func(s *Session) {
		s.newID = gen
	}
}

// Session drives one player's sequence of runs.
type Session struct {
	cfg     config.Simulation
	store   BestScoreStore
	rng     traffic.Rand
	log     zerolog.Logger
	metrics *telemetry.Metrics
	newID   func() uuid.UUID

	world sim.World
	runID uuid.UUID
}

// New loads the best score from store and puts the session on the start screen.
// A nil store keeps the best score in memory only.
func New(cfg config.Simulation, store BestScoreStore, opts ...Option) *Session {
	s := &Session{
		cfg:   cfg,
		store: store,
		log:   zerolog.Nop(),
		newID: uuid.New,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	s.world = sim.NewWorld(cfg, s.loadBest())
	s.log.Info().Int("best_score", s.world.Run.BestScore).Msg("Session ready")
	return s
}

func (s *Session) loadBest() int {
	if s.store == nil {
		return 0
	}
	return s.store.LoadBestScore()
}

func (s *Session) saveBest(score int) {
	if s.store == nil {
		return
	}
	s.store.SaveBestScore(score)
}

// Snapshot returns the current world. Callers must not modify the enemy slice.
func (s *Session) Snapshot() sim.World {
	return s.world
}

func (s *Session) Status() models.Status {
	return s.world.Run.Status()
}

// RunID identifies the current run. It is the zero UUID before the first start.
func (s *Session) RunID() uuid.UUID {
	return s.runID
}

func (s *Session) Config() config.Simulation {
	return s.cfg
}

// Start begins the first run. It only works from the start screen.
func (s *Session) Start() bool {
	if _, ok := s.world.Run.Start(); !ok {
		return false
	}
	s.beginRun()
	return true
}

// Restart throws away the current run and begins a fresh one from any state.
func (s *Session) Restart() bool {
	s.beginRun()
	return true
}

// TogglePause pauses or resumes a run in progress.
func (s *Session) TogglePause() bool {
	rs, ok := s.world.Run.TogglePause()
	if !ok {
		return false
	}
	s.world.Run = rs
	s.log.Debug().Str("run_id", s.runID.String()).Bool("paused", rs.Paused).Msg("Pause toggled")
	return true
}

// beginRun rebuilds every entity. The best score is the higher of the one in
// memory and the stored one, in case another session raised it.
func (s *Session) beginRun() {
	best := s.world.Run.BestScore
	if stored := s.loadBest(); stored > best {
		best = stored
	}

	s.world = sim.FreshWorld(s.cfg, best)
	s.runID = s.newID()
	s.metrics.RunStarted()
	s.log.Info().
		Str("run_id", s.runID.String()).
		Int("best_score", best).
		Msg("Run started")
}

// Tick applies the commands carried by in, then advances the simulation by in.DT.
func (s *Session) Tick(in Input) Output {
	before := s.world.Run.Status()

	if in.Controls.StartOrRestartRequested {
		switch before {
		case models.StatusStartScreen:
			s.Start()
		case models.StatusGameOver:
			s.Restart()
		}
	}
	if in.Controls.PauseRequested {
		s.TogglePause()
	}

	res := sim.Step(s.world, in.Controls, in.DT, s.cfg, s.rng)
	s.world = res.World

	switch {
	case res.Skipped:
		s.metrics.FrameDropped()
		s.log.Debug().Float64("dt", in.DT).Msg("Dropped frame")
	case !res.Idle:
		s.record(res)
	}

	after := s.world.Run.Status()
	return Output{
		Player:        s.world.Player,
		Enemies:       s.world.Enemies,
		RunState:      s.world.Run,
		Status:        after,
		StatusChanged: after != before,
		Collided:      res.Collided,
		Skipped:       res.Skipped,
	}
}

func (s *Session) record(res sim.StepResult) {
	rs := res.World.Run

	s.metrics.SpawnTick(res.Spawn)
	s.metrics.SetEnemies(len(res.World.Enemies))

	if res.Spawn == traffic.OutcomeNoLane {
		s.log.Debug().Uint64("frame", res.World.Frame).Msg("No safe lane for spawn")
	}
	if res.LevelChanged {
		s.metrics.LevelUp()
		s.log.Debug().
			Str("run_id", s.runID.String()).
			Int("level", rs.Level).
			Float64("speed", rs.SpeedMultiplier).
			Msg("Level up")
	}
	if res.BestChanged {
		s.saveBest(rs.BestScore)
	}
	if res.Collided {
		s.metrics.Collision(rs.Level)
		s.log.Info().
			Str("run_id", s.runID.String()).
			Int("score", rs.FlooredScore()).
			Int("level", rs.Level).
			Float64("elapsed", rs.ElapsedTime).
			Bool("new_best", rs.IsNewBest()).
			Msg("Run ended")
	}
}
