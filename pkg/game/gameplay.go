package game

import (
	"image/color"
	"math"
	"time"

	"github.com/golangdaddy/lanedash/pkg/hud"
	"github.com/golangdaddy/lanedash/pkg/session"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	asphaltColor = color.RGBA{0x2d, 0x37, 0x48, 0xff}
	dividerColor = color.RGBA{0xfb, 0xbf, 0x24, 0xff}
	edgeColor    = color.RGBA{0xff, 0xff, 0xff, 0xff}
	panelColor   = color.RGBA{0x00, 0x00, 0x00, 0xb3}
	scoreColor   = color.RGBA{0xfa, 0xcc, 0x15, 0xff}
	bestColor    = color.RGBA{0x4a, 0xde, 0x80, 0xff}
)

const (
	dashLength = 15.0
	dashGap    = 15.0
)

// GameplayScreen draws the track, the traffic and the in-game HUD
type GameplayScreen struct {
	session   *session.Session
	r         *renderer
	dashShift float64 // scroll offset of the lane dashes
}

// NewGameplayScreen creates a new gameplay screen
func NewGameplayScreen(sess *session.Session, r *renderer) *GameplayScreen {
	return &GameplayScreen{
		session: sess,
		r:       r,
	}
}

// Update scrolls the lane markings at the current traffic speed
func (gs *GameplayScreen) Update() error {
	w := gs.session.Snapshot()
	if !w.Run.Active() {
		return nil
	}
	cfg := gs.session.Config()
	gs.dashShift = math.Mod(gs.dashShift+cfg.EnemySpeed*w.Run.SpeedMultiplier, dashLength+dashGap)
	return nil
}

// Draw renders the road, the enemies and then the player on top
func (gs *GameplayScreen) Draw(screen *ebiten.Image) {
	w := gs.session.Snapshot()
	now := time.Now()

	gs.drawRoad(screen)
	for _, e := range w.Enemies {
		gs.r.drawEnemy(screen, e, now)
	}
	gs.r.drawPlayer(screen, w.Player)

	if w.Run.Playing || w.Run.Paused {
		gs.drawUI(screen)
	}
}

func (gs *GameplayScreen) drawRoad(screen *ebiten.Image) {
	track := gs.session.Config().Track()
	screen.Fill(asphaltColor)

	// dashed dividers
	for _, x := range track.DividerXs() {
		for y := gs.dashShift - dashLength; y < track.Height; y += dashLength + dashGap {
			gs.r.fillRect(screen, x-1, y, 2, dashLength, dividerColor)
		}
	}

	// road edges
	gs.r.fillRect(screen, 0, 0, 3, track.Height, edgeColor)
	gs.r.fillRect(screen, track.Width-3, 0, 3, track.Height, edgeColor)
}

// drawUI draws the stats panel on the left and the best score on the right
func (gs *GameplayScreen) drawUI(screen *ebiten.Image) {
	rs := gs.session.Snapshot().Run
	lines := hud.Stats(rs)

	const (
		pad        = 8.0
		lineHeight = 16.0
		textScale  = 1.0
	)
	panelW := 120.0
	for _, l := range lines {
		panelW = math.Max(panelW, gs.r.textWidth(l.String(), textScale)+2*pad)
	}
	gs.r.fillRect(screen, pad, pad, panelW, float64(len(lines))*lineHeight+pad, panelColor)

	for i, l := range lines {
		c := color.Color(color.White)
		if i == 0 {
			c = scoreColor
		}
		gs.r.drawText(screen, l.String(), 2*pad, 1.5*pad+float64(i)*lineHeight, textScale, c)
	}

	if best := hud.Best(rs); best != "" {
		bw := gs.r.textWidth(best, textScale) + 2*pad
		x := float64(screen.Bounds().Dx()) - bw - pad
		gs.r.fillRect(screen, x, pad, bw, lineHeight+pad, panelColor)
		gs.r.drawText(screen, best, x+pad, 1.5*pad, textScale, bestColor)
	}
}
