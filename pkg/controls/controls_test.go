package controls

import (
	"testing"

	"github.com/golangdaddy/lanedash/pkg/models"
	"github.com/golangdaddy/lanedash/pkg/sim"
	"github.com/stretchr/testify/assert"
)

func TestZoneAt(t *testing.T) {
	tests := []struct {
		x    float64
		want Zone
	}{
		{0, ZoneLeft},
		{119, ZoneLeft},
		{120, ZoneMiddle},
		{180, ZoneMiddle},
		{240, ZoneMiddle},
		{241, ZoneRight},
		{359, ZoneRight},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ZoneAt(tt.x, 360), "x=%v", tt.x)
	}
}

func TestIntent_Keyboard(t *testing.T) {
	got := Intent(State{LeftHeld: true, PausePressed: true, Width: 360}, models.StatusPlaying)
	assert.Equal(t, sim.ControlIntent{Left: true, PauseRequested: true}, got)

	got = Intent(State{RightHeld: true, StartPressed: true, Width: 360}, models.StatusGameOver)
	assert.Equal(t, sim.ControlIntent{Right: true, StartOrRestartRequested: true}, got)
}

func TestIntent_HeldTouchesSteer(t *testing.T) {
	got := Intent(State{HeldTouches: []float64{30}, Width: 360}, models.StatusPlaying)
	assert.Equal(t, sim.ControlIntent{Left: true}, got)

	got = Intent(State{HeldTouches: []float64{330}, Width: 360}, models.StatusPlaying)
	assert.Equal(t, sim.ControlIntent{Right: true}, got)

	got = Intent(State{HeldTouches: []float64{180}, Width: 360}, models.StatusPlaying)
	assert.Equal(t, sim.ControlIntent{}, got, "holding the middle does not steer")
}

func TestIntent_NewTouches(t *testing.T) {
	tests := []struct {
		name   string
		x      float64
		status models.Status
		want   sim.ControlIntent
	}{
		{"middle pauses", 180, models.StatusPlaying, sim.ControlIntent{PauseRequested: true}},
		{"middle resumes", 180, models.StatusPaused, sim.ControlIntent{PauseRequested: true}},
		{"side does not pause", 20, models.StatusPlaying, sim.ControlIntent{}},
		{"any tap starts", 20, models.StatusStartScreen, sim.ControlIntent{StartOrRestartRequested: true}},
		{"any tap restarts", 300, models.StatusGameOver, sim.ControlIntent{StartOrRestartRequested: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Intent(State{NewTouches: []float64{tt.x}, Width: 360}, tt.status)
			assert.Equal(t, tt.want, got)
		})
	}
}
