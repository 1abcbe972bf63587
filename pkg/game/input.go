package game

import (
	"github.com/golangdaddy/lanedash/pkg/controls"
	"github.com/golangdaddy/lanedash/pkg/models"
	"github.com/golangdaddy/lanedash/pkg/sim"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var (
	touchIDs    []ebiten.TouchID
	newTouchIDs []ebiten.TouchID
)

// readControls polls the keyboard, mouse and touch screen for this frame.
func readControls(width float64, status models.Status) sim.ControlIntent {
	s := controls.State{
		LeftHeld:  ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
		RightHeld: ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD),
		PausePressed: inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
			inpututil.IsKeyJustPressed(ebiten.KeyP),
		StartPressed: inpututil.IsKeyJustPressed(ebiten.KeyEnter),
		Width:        width,
	}

	touchIDs = ebiten.AppendTouchIDs(touchIDs[:0])
	for _, id := range touchIDs {
		x, _ := ebiten.TouchPosition(id)
		s.HeldTouches = append(s.HeldTouches, float64(x))
	}
	newTouchIDs = inpututil.AppendJustPressedTouchIDs(newTouchIDs[:0])
	for _, id := range newTouchIDs {
		x, _ := ebiten.TouchPosition(id)
		s.NewTouches = append(s.NewTouches, float64(x))
	}

	// the mouse behaves like a single touch
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		x, _ := ebiten.CursorPosition()
		s.HeldTouches = append(s.HeldTouches, float64(x))
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			s.NewTouches = append(s.NewTouches, float64(x))
		}
	}

	return controls.Intent(s, status)
}
