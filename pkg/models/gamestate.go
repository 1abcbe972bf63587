package models

import "math"

// Status is the screen-level state of a run, derived from RunState flags.
type Status int

const (
	StatusStartScreen Status = iota
	StatusPlaying
	StatusPaused
	StatusGameOver
)

func (s Status) String() string {
	switch s {
	case StatusStartScreen:
		return "START_SCREEN"
	case StatusPlaying:
		return "PLAYING"
	case StatusPaused:
		return "PAUSED"
	case StatusGameOver:
		return "GAME_OVER"
	default:
		return "UNKNOWN"
	}
}

// RunState is the score and progress bookkeeping of a single run.
// GameOver implies !Playing.
type RunState struct {
	Playing  bool `json:"playing"`
	Paused   bool `json:"paused"`
	GameOver bool `json:"game_over"`

	Score     float64 `json:"score"`
	BestScore int     `json:"best_score"`

	Level           int     `json:"level"`
	SpeedMultiplier float64 `json:"speed_multiplier"`
	ElapsedTime     float64 `json:"elapsed_time"`
}

// NewRunState returns the idle state shown on the start screen.
func NewRunState(bestScore int) RunState {
	return RunState{
		BestScore:       bestScore,
		Level:           1,
		SpeedMultiplier: 1.0,
	}
}

// Fresh returns the state at the first frame of a new run.
func Fresh(bestScore int) RunState {
	rs := NewRunState(bestScore)
	rs.Playing = true
	return rs
}

// Status derives the screen state.
func (rs RunState) Status() Status {
	switch {
	case rs.GameOver:
		return StatusGameOver
	case rs.Paused:
		return StatusPaused
	case rs.Playing:
		return StatusPlaying
	default:
		return StatusStartScreen
	}
}

// Active reports whether the simulation should advance.
func (rs RunState) Active() bool {
	return rs.Playing && !rs.Paused
}

// Start leaves the start screen. It reports false from any other state.
func (rs RunState) Start() (RunState, bool) {
	if rs.Status() != StatusStartScreen {
		return rs, false
	}
	return Fresh(rs.BestScore), true
}

// Restart begins a new run from any state, keeping the best score.
func (rs RunState) Restart() RunState {
	return Fresh(rs.BestScore)
}

// TogglePause pauses a playing run or resumes a paused one.
func (rs RunState) TogglePause() (RunState, bool) {
	if !rs.Playing {
		return rs, false
	}
	rs.Paused = !rs.Paused
	return rs, true
}

// EndRun freezes the run after a collision. The score is floored.
func (rs RunState) EndRun() RunState {
	rs.Playing = false
	rs.Paused = false
	rs.GameOver = true
	rs.Score = math.Floor(rs.Score)
	return rs
}

// FlooredScore is the score as shown and persisted.
func (rs RunState) FlooredScore() int {
	return int(math.Floor(rs.Score))
}

// IsNewBest reports whether the finished run set the best score.
func (rs RunState) IsNewBest() bool {
	return rs.FlooredScore() > 0 && rs.FlooredScore() == rs.BestScore
}
