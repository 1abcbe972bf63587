package telemetry

import (
	"context"
	"sync"
	"testing"

	"github.com/golangdaddy/lanedash/pkg/traffic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

type recordingCounter struct {
	noop.Int64Counter
	meter *recordingMeter
	name  string
}

func (c recordingCounter) Add(_ context.Context, incr int64, opts ...metric.AddOption) {
	cfg := metric.NewAddConfig(opts)
	key := c.name
	attrs := cfg.Attributes()
	if v, ok := attrs.Value("outcome"); ok {
		key += "/" + v.AsString()
	}

	c.meter.mu.Lock()
	c.meter.counts[key] += incr
	c.meter.mu.Unlock()
}

type recordingMeter struct {
	noop.Meter
	mu     sync.Mutex
	counts map[string]int64
}

func newRecordingMeter() *recordingMeter {
	return &recordingMeter{counts: make(map[string]int64)}
}

func (m *recordingMeter) Int64Counter(name string, _ ...metric.Int64CounterOption) (metric.Int64Counter, error) {
	return recordingCounter{meter: m, name: name}, nil
}

func TestNew_NoopMeter(t *testing.T) {
	m, err := New(noop.Meter{})
	require.NoError(t, err)

	m.RunStarted()
	m.SpawnTick(traffic.OutcomeSpawned)
	m.Collision(3)
	m.LevelUp()
	m.FrameDropped()
	m.SetEnemies(4)
	assert.Equal(t, int64(4), m.enemies.Load())
}

func TestNewGlobal(t *testing.T) {
	m, err := NewGlobal()
	require.NoError(t, err)
	assert.NotNil(t, m)
}

func TestMetrics_Counts(t *testing.T) {
	rec := newRecordingMeter()
	m, err := New(rec)
	require.NoError(t, err)

	m.RunStarted()
	m.RunStarted()
	m.SpawnTick(traffic.OutcomeOffCadence)
	m.SpawnTick(traffic.OutcomeSpawned)
	m.SpawnTick(traffic.OutcomeSpawned)
	m.SpawnTick(traffic.OutcomeRefused)
	m.Collision(2)
	m.LevelUp()
	m.FrameDropped()

	assert.Equal(t, map[string]int64{
		"lanedash.runs.started":        2,
		"lanedash.spawn.ticks/spawned": 2,
		"lanedash.spawn.ticks/refused": 1,
		"lanedash.collisions":          1,
		"lanedash.levels.gained":       1,
		"lanedash.frames.dropped":      1,
	}, rec.counts)
}

func TestMetrics_NilIsSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.RunStarted()
		m.SpawnTick(traffic.OutcomeSpawned)
		m.Collision(1)
		m.LevelUp()
		m.FrameDropped()
		m.SetEnemies(1)
	})
}
