package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/golangdaddy/lanedash/pkg/config"
	"github.com/golangdaddy/lanedash/pkg/game"
	"github.com/golangdaddy/lanedash/pkg/logging"
	"github.com/golangdaddy/lanedash/pkg/scores"
	"github.com/golangdaddy/lanedash/pkg/session"
	"github.com/golangdaddy/lanedash/pkg/telemetry"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/pflag"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := pflag.NewFlagSet("lanedash", pflag.ContinueOnError)
	config.Flags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	v := config.New()
	if err := config.BindFlags(v, fs); err != nil {
		return err
	}
	configPath, _ := fs.GetString("config")
	settings, err := config.Load(v, configPath)
	if err != nil {
		return err
	}

	log := logging.New(settings.LogLevel, os.Stdout, settings.ConsoleLog)

	// a broken store only costs persistence, never the game
	backend, err := scores.Open(settings.Scores, log)
	if err != nil {
		log.Warn().Err(err).Str("backend", settings.Scores.Backend).Msg("Falling back to in-memory best score")
		backend = scores.NewMemoryBackend()
	}
	keeper := scores.NewKeeper(backend, log)
	defer keeper.Close()

	metrics, err := telemetry.NewGlobal()
	if err != nil {
		return fmt.Errorf("creating metrics: %w", err)
	}

	seed := settings.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Info().Int64("seed", seed).Str("scores", settings.Scores.Backend).Msg("Starting")

	sess := session.New(settings.Simulation, keeper,
		session.WithRand(rand.New(rand.NewSource(seed))),
		session.WithLogger(log),
		session.WithMetrics(metrics),
	)

	sim := settings.Simulation
	ebiten.SetWindowSize(int(sim.TrackWidth*settings.Window.Scale), int(sim.TrackHeight*settings.Window.Scale))
	ebiten.SetWindowTitle(settings.Window.Title)

	if err := ebiten.RunGame(game.NewGame(sess, log)); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
