// Package hud turns run state into the text shown over the track.
package hud

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"
	"github.com/golangdaddy/lanedash/pkg/models"
)

// Title is shown on the start screen.
const Title = "LANE DASH"

// Line is a labelled value in the stats panel.
type Line struct {
	Label string
	Value string
}

func (l Line) String() string {
	return l.Label + ": " + l.Value
}

// Panel is a centred overlay box. Highlight is drawn emphasised when set.
type Panel struct {
	Title     string
	Highlight string
	Lines     []string
	Action    string
}

// FormatScore floors score and groups thousands with commas.
func FormatScore(score float64) string {
	if math.IsNaN(score) || score < 0 {
		score = 0
	}
	return humanize.Comma(int64(math.Floor(score)))
}

// FormatTime renders seconds as MM:SS. Minutes are not wrapped at an hour.
func FormatTime(seconds float64) string {
	if math.IsNaN(seconds) || seconds < 0 {
		seconds = 0
	}
	total := int(math.Floor(seconds))
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

// FormatSpeed renders the speed multiplier as e.g. "1.2x".
func FormatSpeed(multiplier float64) string {
	return fmt.Sprintf("%.1fx", multiplier)
}

// Stats returns the in-game stats panel.
func Stats(rs models.RunState) []Line {
	return []Line{
		{Label: "Score", Value: FormatScore(rs.Score)},
		{Label: "Time", Value: FormatTime(rs.ElapsedTime)},
		{Label: "Lvl", Value: fmt.Sprint(rs.Level)},
		{Label: "Speed", Value: FormatSpeed(rs.SpeedMultiplier)},
	}
}

// Best returns the best score label, or "" before anything has been scored.
func Best(rs models.RunState) string {
	if rs.BestScore <= 0 {
		return ""
	}
	return "Best: " + humanize.Comma(int64(rs.BestScore))
}

// Overlay returns the panel drawn over the track for rs, if any.
func Overlay(rs models.RunState) (Panel, bool) {
	switch rs.Status() {
	case models.StatusStartScreen:
		p := Panel{
			Title: Title,
			Lines: []string{
				"Weave through traffic!",
				"LEFT/RIGHT or A/D to change lanes",
				"SPACE or P to pause",
				"Tap the sides to steer, the middle to pause",
				"Ambulances are faster!",
			},
			Action: "Press ENTER or tap to start",
		}
		if rs.BestScore > 0 {
			p.Lines = append(p.Lines, "High Score: "+humanize.Comma(int64(rs.BestScore)))
		}
		return p, true

	case models.StatusGameOver:
		p := Panel{
			Title: "GAME OVER",
			Lines: []string{
				"Score: " + FormatScore(rs.Score),
				"Time: " + FormatTime(rs.ElapsedTime),
				fmt.Sprintf("Level: %d", rs.Level),
			},
			Action: "Press ENTER or tap to play again",
		}
		if rs.IsNewBest() {
			p.Highlight = "NEW HIGH SCORE!"
		}
		if rs.BestScore > 0 {
			p.Lines = append(p.Lines, "High Score: "+humanize.Comma(int64(rs.BestScore)))
		}
		return p, true

	case models.StatusPaused:
		return Panel{
			Title:  "PAUSED",
			Action: "Tap the middle or press SPACE",
		}, true
	}
	return Panel{}, false
}
