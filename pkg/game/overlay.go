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
	dimColor       = color.RGBA{0x00, 0x00, 0x00, 0xcc}
	boxColor       = color.RGBA{0x11, 0x18, 0x27, 0xff}
	titleColor     = color.RGBA{0xef, 0x44, 0x44, 0xff}
	highlightColor = color.RGBA{0xfa, 0xcc, 0x15, 0xff}
	lineColor      = color.RGBA{0xd1, 0xd5, 0xdb, 0xff}
	actionColor    = color.RGBA{0x96, 0xc8, 0xff, 0xff}
)

// OverlayScreen draws the start, pause and game over panels over the track
type OverlayScreen struct {
	session   *session.Session
	r         *renderer
	startTime time.Time
}

// NewOverlayScreen creates a new overlay screen
func NewOverlayScreen(sess *session.Session, r *renderer) *OverlayScreen {
	return &OverlayScreen{
		session:   sess,
		r:         r,
		startTime: time.Now(),
	}
}

// Update has nothing to do; input is read once per frame by Game
func (o *OverlayScreen) Update() error {
	return nil
}

// Draw renders the panel for the current status, if there is one
func (o *OverlayScreen) Draw(screen *ebiten.Image) {
	panel, ok := hud.Overlay(o.session.Snapshot().Run)
	if !ok {
		return
	}

	width, height := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())
	elapsed := time.Since(o.startTime).Seconds()
	centerX := width / 2

	o.r.fillRect(screen, 0, 0, width, height, dimColor)

	const (
		lineHeight = 16.0
		pad        = 16.0
	)
	boxW := width - 2*pad
	boxH := 3*lineHeight + float64(len(panel.Lines))*lineHeight + 4*lineHeight
	if panel.Highlight != "" {
		boxH += 2 * lineHeight
	}
	boxY := (height - boxH) / 2
	o.r.fillRect(screen, pad, boxY, boxW, boxH, boxColor)

	// pulsing title between 2.0x and 2.2x
	titleScale := 2.0 + 0.2*math.Max(0, sinWave(elapsed*2.0))
	y := boxY + lineHeight
	o.r.drawCenteredText(screen, panel.Title, centerX, y, titleScale, titleColor)
	y += 3 * lineHeight

	if panel.Highlight != "" {
		if int(elapsed*4)%2 == 0 {
			o.r.drawCenteredText(screen, panel.Highlight, centerX, y, 1.5, highlightColor)
		}
		y += 2 * lineHeight
	}

	for _, line := range panel.Lines {
		o.r.drawCenteredText(screen, line, centerX, y, 1, lineColor)
		y += lineHeight
	}

	// blink every 0.5 seconds
	if int(elapsed*2)%2 == 0 {
		o.r.drawCenteredText(screen, panel.Action, centerX, y+lineHeight, 1, actionColor)
	}
}

// sinWave returns a sine wave value between -1 and 1
func sinWave(t float64) float64 {
	return math.Sin(t)
}
