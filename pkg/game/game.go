package game

import (
	"time"

	"github.com/golangdaddy/lanedash/pkg/models"
	"github.com/golangdaddy/lanedash/pkg/session"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
)

// Screen represents a UI screen interface
type Screen interface {
	Update() error
	Draw(screen *ebiten.Image)
}

// Game implements the ebiten.Game interface and feeds wall clock deltas into the session
type Game struct {
	session *session.Session
	log     zerolog.Logger
	now     func() time.Time
	last    time.Time

	width, height int

	gameplay *GameplayScreen
	overlay  *OverlayScreen
}

// NewGame creates a new game instance
func NewGame(sess *session.Session, log zerolog.Logger) *Game {
	cfg := sess.Config()
	r := newRenderer()

	return &Game{
		session:  sess,
		log:      log.With().Str("component", "game").Logger(),
		now:      time.Now,
		width:    int(cfg.TrackWidth),
		height:   int(cfg.TrackHeight),
		gameplay: NewGameplayScreen(sess, r),
		overlay:  NewOverlayScreen(sess, r),
	}
}

// Update reads input, advances the session and then the screens.
// Update is called every tick (1/60 [s] by default).
func (g *Game) Update() error {
	// time.Now carries a monotonic reading so Sub is immune to clock changes
	now := g.now()
	dt := 0.0
	if !g.last.IsZero() {
		dt = now.Sub(g.last).Seconds()
	}
	g.last = now

	intent := readControls(float64(g.width), g.session.Status())
	out := g.session.Tick(session.Input{DT: dt, Controls: intent})

	if out.StatusChanged {
		g.log.Debug().Stringer("status", out.Status).Msg("Status changed")
		if out.Status == models.StatusGameOver {
			g.log.Info().Int("score", out.RunState.FlooredScore()).Msg("Game over")
		}
	}

	if err := g.gameplay.Update(); err != nil {
		return err
	}
	return g.overlay.Update()
}

// Draw renders the track and any overlay on top of it
func (g *Game) Draw(screen *ebiten.Image) {
	g.gameplay.Draw(screen)
	g.overlay.Draw(screen)
}

// Layout returns the track size; ebiten scales it to the window
func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return g.width, g.height
}
