package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// ErrInvalid is returned when a configuration value is out of range.
var ErrInvalid = errors.New("invalid configuration")

// EnvPrefix prefixes environment overrides, e.g. LANEDASH_LOGLEVEL.
const EnvPrefix = "LANEDASH"

// ScoresConfig selects where the best score is kept.
type ScoresConfig struct {
	// Backend is one of "file", "sqlite", "postgres" or "memory".
	Backend string `json:"backend" mapstructure:"backend"`
	// Path is the file used by the file and sqlite backends.
	Path string `json:"path" mapstructure:"path"`
	// DSN is the connection string used by the postgres backend.
	DSN string `json:"dsn" mapstructure:"dsn"`
}

// WindowConfig controls the desktop window.
type WindowConfig struct {
	Title string  `json:"title" mapstructure:"title"`
	Scale float64 `json:"scale" mapstructure:"scale"`
}

// Settings is the full application configuration.
type Settings struct {
	LogLevel   string       `json:"logLevel" mapstructure:"logLevel"`
	ConsoleLog bool         `json:"consoleLog" mapstructure:"consoleLog"`
	Seed       int64        `json:"seed" mapstructure:"seed"`
	Scores     ScoresConfig `json:"scores" mapstructure:"scores"`
	Window     WindowConfig `json:"window" mapstructure:"window"`
	Simulation Simulation   `json:"simulation" mapstructure:"simulation"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logLevel", "info")
	v.SetDefault("consoleLog", true)
	v.SetDefault("seed", 0)

	v.SetDefault("scores.backend", "sqlite")
	v.SetDefault("scores.path", "lanedash.db")
	v.SetDefault("scores.dsn", "")

	v.SetDefault("window.title", "Lane Dash")
	v.SetDefault("window.scale", 1.0)

	sim := DefaultSimulation()
	v.SetDefault("simulation.trackWidth", sim.TrackWidth)
	v.SetDefault("simulation.trackHeight", sim.TrackHeight)
	v.SetDefault("simulation.laneWidth", sim.LaneWidth)
	v.SetDefault("simulation.vehicleWidth", sim.VehicleWidth)
	v.SetDefault("simulation.vehicleHeight", sim.VehicleHeight)
	v.SetDefault("simulation.playerBottomOffset", sim.PlayerBottomOffset)
	v.SetDefault("simulation.playerLaneChangeSpeed", sim.PlayerLaneChangeSpeed)
	v.SetDefault("simulation.laneSmoothing", sim.LaneSmoothing)
	v.SetDefault("simulation.frameRateCorrectedSmoothing", sim.FrameRateCorrectedSmoothing)
	v.SetDefault("simulation.enemySpeed", sim.EnemySpeed)
	v.SetDefault("simulation.fastKindChance", sim.FastKindChance)
	v.SetDefault("simulation.fastSpeedFactor", sim.FastSpeedFactor)
	v.SetDefault("simulation.baseSpawnInterval", sim.BaseSpawnInterval)
	v.SetDefault("simulation.minSpawnInterval", sim.MinSpawnInterval)
	v.SetDefault("simulation.levelSpawnDecay", sim.LevelSpawnDecay)
	v.SetDefault("simulation.minSpawnSpacing", sim.MinSpawnSpacing)
	v.SetDefault("simulation.maxEnemiesPerLane", sim.MaxEnemiesPerLane)
	v.SetDefault("simulation.maxTotalEnemies", sim.MaxTotalEnemies)
	v.SetDefault("simulation.dangerBandStart", sim.DangerBandStart)
	v.SetDefault("simulation.levelPeriod", sim.LevelPeriod)
	v.SetDefault("simulation.speedIncrement", sim.SpeedIncrement)
	v.SetDefault("simulation.pointsPerSecond", sim.PointsPerSecond)
	v.SetDefault("simulation.pointsPerCar", sim.PointsPerCar)
	v.SetDefault("simulation.frameScale", sim.FrameScale)
	v.SetDefault("simulation.maxFrameDelta", sim.MaxFrameDelta)
}

// New returns a viper instance with every default registered and
// environment overrides enabled.
func New() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Flags registers the command line flags understood by BindFlags.
func Flags(fs *pflag.FlagSet) {
	fs.String("config", "", "path to a JSON, YAML or TOML configuration file")
	fs.String("log-level", "", "log level (debug, info, warn, error)")
	fs.Int64("seed", 0, "random seed for traffic; 0 picks one from the clock")
}

// BindFlags maps parsed flags onto configuration keys.
func BindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	if err := v.BindPFlag("logLevel", fs.Lookup("log-level")); err != nil {
		return fmt.Errorf("binding log-level flag: %w", err)
	}
	if err := v.BindPFlag("seed", fs.Lookup("seed")); err != nil {
		return fmt.Errorf("binding seed flag: %w", err)
	}
	return nil
}

// Load reads the optional configuration file at path into v and decodes the result.
// An empty path uses defaults and environment overrides only.
func Load(v *viper.Viper, path string) (Settings, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Settings{}, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("error decoding config: %w", err)
	}
	// an empty flag value must not override the default
	if s.LogLevel == "" {
		s.LogLevel = "info"
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate checks the application settings and the simulation tuning.
func (s Settings) Validate() error {
	switch s.Scores.Backend {
	case "file", "sqlite":
		if s.Scores.Path == "" {
			return fmt.Errorf("%w: scores.path is required for the %s backend", ErrInvalid, s.Scores.Backend)
		}
	case "postgres":
		if s.Scores.DSN == "" {
			return fmt.Errorf("%w: scores.dsn is required for the postgres backend", ErrInvalid)
		}
	case "memory":
	default:
		return fmt.Errorf("%w: unknown scores.backend %q", ErrInvalid, s.Scores.Backend)
	}
	if s.Window.Scale <= 0 {
		return fmt.Errorf("%w: window.scale must be positive", ErrInvalid)
	}
	return s.Simulation.Validate()
}
