// Package telemetry records gameplay counters through OpenTelemetry.
// Without a configured provider the global meter is a no-op.
package telemetry

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/golangdaddy/lanedash/pkg/traffic"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "github.com/golangdaddy/lanedash/pkg/telemetry"

// Metrics holds the game instruments. A nil *Metrics records nothing.
type Metrics struct {
	runsStarted   metric.Int64Counter
	spawnTicks    metric.Int64Counter
	collisions    metric.Int64Counter
	levelsGained  metric.Int64Counter
	framesDropped metric.Int64Counter
	enemiesGauge  metric.Int64ObservableGauge

	enemies atomic.Int64
}

// NewGlobal creates Metrics on the global meter provider.
func NewGlobal() (*Metrics, error) {
	return New(otel.Meter(instrumentationName))
}

// New creates every instrument on m.
func New(m metric.Meter) (*Metrics, error) {
	t := &Metrics{}

	var err error
	t.runsStarted, err = m.Int64Counter(
		"lanedash.runs.started",
		metric.WithDescription("Runs started or restarted"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating runs counter: %w", err)
	}

	t.spawnTicks, err = m.Int64Counter(
		"lanedash.spawn.ticks",
		metric.WithDescription("Spawn ticks by outcome"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating spawn counter: %w", err)
	}

	t.collisions, err = m.Int64Counter(
		"lanedash.collisions",
		metric.WithDescription("Runs ended by a collision"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating collision counter: %w", err)
	}

	t.levelsGained, err = m.Int64Counter(
		"lanedash.levels.gained",
		metric.WithDescription("Level ups across all runs"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating level counter: %w", err)
	}

	t.framesDropped, err = m.Int64Counter(
		"lanedash.frames.dropped",
		metric.WithDescription("Frames skipped because the delta was out of range"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating dropped frame counter: %w", err)
	}

	t.enemiesGauge, err = m.Int64ObservableGauge(
		"lanedash.enemies.active",
		metric.WithDescription("Enemies currently on the track"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating enemies gauge: %w", err)
	}

	_, err = m.RegisterCallback(
		func(ctx context.Context, o metric.Observer) error {
			o.ObserveInt64(t.enemiesGauge, t.enemies.Load())
			return nil
		},
		t.enemiesGauge,
	)
	if err != nil {
		return nil, fmt.Errorf("registering enemies callback: %w", err)
	}

	return t, nil
}

func (t *Metrics) RunStarted() {
	if t == nil {
		return
	}
	t.runsStarted.Add(context.Background(), 1)
}

// SpawnTick records the outcome of a spawn decision. Off-cadence frames are ignored.
func (t *Metrics) SpawnTick(outcome traffic.Outcome) {
	if t == nil || outcome == traffic.OutcomeOffCadence {
		return
	}
	t.spawnTicks.Add(context.Background(), 1,
		metric.WithAttributes(attribute.String("outcome", outcome.String())))
}

func (t *Metrics) Collision(level int) {
	if t == nil {
		return
	}
	t.collisions.Add(context.Background(), 1,
		metric.WithAttributes(attribute.Int("level", level)))
}

func (t *Metrics) LevelUp() {
	if t == nil {
		return
	}
	t.levelsGained.Add(context.Background(), 1)
}

func (t *Metrics) FrameDropped() {
	if t == nil {
		return
	}
	t.framesDropped.Add(context.Background(), 1)
}

// SetEnemies updates the value reported by the enemies gauge.
func (t *Metrics) SetEnemies(n int) {
	if t == nil {
		return
	}
	t.enemies.Store(int64(n))
}
