package game

import (
	"image/color"
	"time"

	"github.com/golangdaddy/lanedash/pkg/vehicle"
	"github.com/hajimehoshi/bitmapfont/v4"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

var (
	playerColor     = color.RGBA{0xdc, 0x26, 0x26, 0xff}
	ambulanceColor  = color.RGBA{0xff, 0xff, 0xff, 0xff}
	outlineColor    = color.RGBA{0x00, 0x00, 0x00, 0xff}
	markingColor    = color.RGBA{0xff, 0x00, 0x00, 0xff}
	windshieldColor = color.RGBA{0x87, 0xce, 0xeb, 0xff}
	ambulanceGlass  = color.RGBA{0xe6, 0xf3, 0xff, 0xff}
	wheelColor      = color.RGBA{0x1a, 0x1a, 0x1a, 0xff}
	headlightColor  = color.RGBA{0xff, 0xff, 0xcc, 0xff}
	taillightColor  = color.RGBA{0xff, 0x44, 0x44, 0xff}
	sirenBlue       = color.RGBA{0x00, 0x00, 0xff, 0xff}
)

// enemyPalette is indexed by vehicle ID so a car keeps its paint for life.
var enemyPalette = []color.RGBA{
	{0x3b, 0x82, 0xf6, 0xff}, // blue
	{0x10, 0xb9, 0x81, 0xff}, // green
	{0xf5, 0x9e, 0x0b, 0xff}, // yellow
	{0xef, 0x44, 0x44, 0xff}, // red
	{0x8b, 0x5c, 0xf6, 0xff}, // purple
	{0x06, 0xb6, 0xd4, 0xff}, // cyan
	{0xf9, 0x73, 0x16, 0xff}, // orange
}

func enemyPaint(id vehicle.ID) color.RGBA {
	return enemyPalette[int(id%vehicle.ID(len(enemyPalette)))]
}

// renderer draws flat rectangles and bitmap text. Every rectangle is a
// scaled and tinted copy of one white pixel.
type renderer struct {
	pixel *ebiten.Image
	face  *text.GoXFace
}

func newRenderer() *renderer {
	pixel := ebiten.NewImage(1, 1)
	pixel.Fill(color.White)
	return &renderer{
		pixel: pixel,
		face:  text.NewGoXFace(bitmapfont.Face),
	}
}

func (r *renderer) fillRect(dst *ebiten.Image, x, y, w, h float64, c color.Color) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	dst.DrawImage(r.pixel, op)
}

func (r *renderer) strokeRect(dst *ebiten.Image, x, y, w, h, width float64, c color.Color) {
	r.fillRect(dst, x, y, w, width, c)
	r.fillRect(dst, x, y+h-width, w, width, c)
	r.fillRect(dst, x, y, width, h, c)
	r.fillRect(dst, x+w-width, y, width, h, c)
}

// textWidth returns the width of s drawn at scale.
func (r *renderer) textWidth(s string, scale float64) float64 {
	return text.Advance(s, r.face) * scale
}

func (r *renderer) drawText(dst *ebiten.Image, s string, x, y, scale float64, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(dst, s, r.face, op)
}

func (r *renderer) drawCenteredText(dst *ebiten.Image, s string, centerX, y, scale float64, c color.Color) {
	r.drawText(dst, s, centerX-r.textWidth(s, scale)/2, y, scale, c)
}

// drawPlayer renders the player's car facing up the track
func (r *renderer) drawPlayer(dst *ebiten.Image, p vehicle.Player) {
	x, y, w, h := r.body(dst, p.Vehicle, playerColor)

	// headlights
	r.fillRect(dst, x+6, y-2, 8, 4, headlightColor)
	r.fillRect(dst, x+w-14, y-2, 8, 4, headlightColor)

	r.fillRect(dst, x+5, y+5, w-10, h/3, windshieldColor)
}

// drawEnemy renders a traffic car; the fast kind gets ambulance markings
func (r *renderer) drawEnemy(dst *ebiten.Image, e vehicle.Enemy, now time.Time) {
	if e.Kind == vehicle.KindFast {
		r.drawAmbulance(dst, e, now)
		return
	}

	x, y, w, h := r.body(dst, e.Vehicle, enemyPaint(e.ID))

	// front and rear windows
	r.fillRect(dst, x+5, y+5, w-10, h/3, windshieldColor)
	r.fillRect(dst, x+5, y+h-5-h/3, w-10, h/3, windshieldColor)

	// taillights face the player
	r.fillRect(dst, x+6, y+h-2, 8, 4, taillightColor)
	r.fillRect(dst, x+w-14, y+h-2, 8, 4, taillightColor)
}

func (r *renderer) drawAmbulance(dst *ebiten.Image, e vehicle.Enemy, now time.Time) {
	x, y, w, h := r.body(dst, e.Vehicle, ambulanceColor)
	cx, cy := e.Position.X, e.Position.Y

	// side stripes
	r.fillRect(dst, x, cy-8, w, 2, markingColor)
	r.fillRect(dst, x, cy+8, w, 2, markingColor)

	r.fillRect(dst, x+5, y+5, w-10, h/3, ambulanceGlass)
	r.fillRect(dst, x+5, y+h-5-h/3, w-10, h/3, ambulanceGlass)

	// cross on the roof
	const cross = 8.0
	r.fillRect(dst, cx-1.5, cy-cross/2, 3, cross, markingColor)
	r.fillRect(dst, cx-cross/2, cy-1.5, cross, 3, markingColor)

	// sirens alternate every 200ms
	siren := markingColor
	if (now.UnixMilli()/200)%2 == 1 {
		siren = sirenBlue
	}
	r.fillRect(dst, x+6, y-2, 8, 4, siren)
	r.fillRect(dst, x+w-14, y-2, 8, 4, siren)
}

// body draws the paint, outline and wheels shared by every car and returns
// its top-left corner and size.
func (r *renderer) body(dst *ebiten.Image, v vehicle.Vehicle, paint color.Color) (x, y, w, h float64) {
	box := v.Box()
	x, y, w, h = box.X, box.Y, box.W, box.H

	r.fillRect(dst, x, y, w, h, paint)
	r.strokeRect(dst, x, y, w, h, 2, outlineColor)

	const wheelWidth, wheelHeight = 6.0, 12.0
	cy := v.Position.Y
	r.fillRect(dst, x-1, cy-h/3, wheelWidth, wheelHeight, wheelColor)
	r.fillRect(dst, x+w-5, cy-h/3, wheelWidth, wheelHeight, wheelColor)
	r.fillRect(dst, x-1, cy+h/6, wheelWidth, wheelHeight, wheelColor)
	r.fillRect(dst, x+w-5, cy+h/6, wheelWidth, wheelHeight, wheelColor)

	return x, y, w, h
}
