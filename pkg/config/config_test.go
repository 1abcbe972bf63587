package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultValues(t *testing.T) {
	s, err := Load(New(), "")
	require.NoError(t, err)

	assert.Equal(t, "info", s.LogLevel)
	assert.True(t, s.ConsoleLog)
	assert.Equal(t, "sqlite", s.Scores.Backend)
	assert.Equal(t, "lanedash.db", s.Scores.Path)
	assert.Equal(t, "Lane Dash", s.Window.Title)
	assert.Equal(t, 1.0, s.Window.Scale)
	assert.Equal(t, DefaultSimulation(), s.Simulation)
}

func TestLoad_WithValidConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfg := `{
		"logLevel": "debug",
		"scores": { "backend": "file", "path": "best.json" },
		"simulation": { "maxTotalEnemies": 5, "dangerBandStart": 0.4 }
	}`
	path := filepath.Join(dir, "lanedash.json")
	require.NoError(t, os.WriteFile(path, []byte(cfg), 0644))

	s, err := Load(New(), path)
	require.NoError(t, err)

	assert.Equal(t, "debug", s.LogLevel)
	assert.Equal(t, "file", s.Scores.Backend)
	assert.Equal(t, "best.json", s.Scores.Path)
	assert.Equal(t, 5, s.Simulation.MaxTotalEnemies)
	assert.Equal(t, 0.4, s.Simulation.DangerBandStart)
	assert.Equal(t, 120.0, s.Simulation.LaneWidth, "untouched keys keep their defaults")
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("LANEDASH_SCORES_BACKEND", "memory")

	s, err := Load(New(), "")
	require.NoError(t, err)
	assert.Equal(t, "memory", s.Scores.Backend)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(New(), "/nonexistent/path/lanedash.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

func TestLoad_InvalidSimulation(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lanedash.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"simulation": {"laneWidth": 200}}`), 0644))

	_, err := Load(New(), path)
	require.ErrorIs(t, err, ErrInvalid)
}

func TestBindFlags(t *testing.T) {
	fs := pflag.NewFlagSet("lanedash", pflag.ContinueOnError)
	Flags(fs)
	require.NoError(t, fs.Parse([]string{"--log-level", "warn", "--seed", "42"}))

	v := New()
	require.NoError(t, BindFlags(v, fs))

	s, err := Load(v, "")
	require.NoError(t, err)
	assert.Equal(t, "warn", s.LogLevel)
	assert.Equal(t, int64(42), s.Seed)
}

func TestSettingsValidate(t *testing.T) {
	base, err := Load(New(), "")
	require.NoError(t, err)

	tests := []struct {
		name   string
		mutate func(*Settings)
	}{
		{"unknown backend", func(s *Settings) { s.Scores.Backend = "redis" }},
		{"postgres without dsn", func(s *Settings) { s.Scores.Backend = "postgres" }},
		{"file without path", func(s *Settings) { s.Scores.Backend = "file"; s.Scores.Path = "" }},
		{"zero window scale", func(s *Settings) { s.Window.Scale = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := base
			tt.mutate(&s)
			assert.ErrorIs(t, s.Validate(), ErrInvalid)
		})
	}
}

func TestSimulationValidate(t *testing.T) {
	require.NoError(t, DefaultSimulation().Validate())

	tests := []struct {
		name   string
		mutate func(*Simulation)
	}{
		{"negative lane width", func(s *Simulation) { s.LaneWidth = -1 }},
		{"vehicle wider than lane", func(s *Simulation) { s.VehicleWidth = 130 }},
		{"danger band at bottom", func(s *Simulation) { s.DangerBandStart = 1 }},
		{"zero smoothing", func(s *Simulation) { s.LaneSmoothing = 0 }},
		{"fast chance above one", func(s *Simulation) { s.FastKindChance = 1.5 }},
		{"zero spawn interval", func(s *Simulation) { s.MinSpawnInterval = 0 }},
		{"no enemies allowed", func(s *Simulation) { s.MaxTotalEnemies = 0 }},
		{"negative points", func(s *Simulation) { s.PointsPerCar = -10 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultSimulation()
			tt.mutate(&s)
			assert.ErrorIs(t, s.Validate(), ErrInvalid)
		})
	}
}

func TestSimulationDerived(t *testing.T) {
	s := DefaultSimulation()
	assert.Equal(t, -40.0, s.SpawnY())
	assert.Equal(t, 540.0, s.PlayerY())
	assert.Equal(t, 180.0, s.Track().LaneCenterX(1))
}
