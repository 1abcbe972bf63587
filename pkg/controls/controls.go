// Package controls turns raw keyboard and touch state into a control intent.
package controls

import (
	"github.com/golangdaddy/lanedash/pkg/models"
	"github.com/golangdaddy/lanedash/pkg/sim"
)

// Zone is a third of the screen width.
type Zone int

const (
	ZoneLeft Zone = iota
	ZoneMiddle
	ZoneRight
)

// ZoneAt returns the zone containing x on a screen of the given width.
func ZoneAt(x, width float64) Zone {
	switch {
	case x < width/3:
		return ZoneLeft
	case x > width*2/3:
		return ZoneRight
	default:
		return ZoneMiddle
	}
}

// State is the raw input for one frame. Held values are level triggered,
// Pressed values are true only on the frame the key or touch went down.
type State struct {
	LeftHeld     bool
	RightHeld    bool
	PausePressed bool
	StartPressed bool

	// X positions of touches currently down and of those that began this frame.
	HeldTouches []float64
	NewTouches  []float64
	// Width is the logical screen width used to split touches into zones.
	Width float64
}

// Intent maps s onto a control intent. On the start and game over screens any
// new touch starts a run; while a run is in progress the middle third pauses.
func Intent(s State, status models.Status) sim.ControlIntent {
	intent := sim.ControlIntent{
		Left:                    s.LeftHeld,
		Right:                   s.RightHeld,
		PauseRequested:          s.PausePressed,
		StartOrRestartRequested: s.StartPressed,
	}

	for _, x := range s.HeldTouches {
		switch ZoneAt(x, s.Width) {
		case ZoneLeft:
			intent.Left = true
		case ZoneRight:
			intent.Right = true
		}
	}

	for _, x := range s.NewTouches {
		switch status {
		case models.StatusStartScreen, models.StatusGameOver:
			intent.StartOrRestartRequested = true
		case models.StatusPlaying, models.StatusPaused:
			if ZoneAt(x, s.Width) == ZoneMiddle {
				intent.PauseRequested = true
			}
		}
	}

	return intent
}
