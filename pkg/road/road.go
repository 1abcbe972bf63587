package road

// NumLanes is the number of lanes on the track.
const NumLanes = 3

// Lane is a discrete horizontal position on the track, 0 being the leftmost.
type Lane int

const (
	LaneLeft Lane = iota
	LaneCenter
	LaneRight
)

// AllLanes lists every lane from left to right.
var AllLanes = [NumLanes]Lane{LaneLeft, LaneCenter, LaneRight}

// Valid reports whether the lane exists on the track.
func (l Lane) Valid() bool {
	return l >= 0 && l < NumLanes
}

// Left returns the lane to the left, or false at the left edge.
func (l Lane) Left() (Lane, bool) {
	if l <= LaneLeft {
		return l, false
	}
	return l - 1, true
}

// Right returns the lane to the right, or false at the right edge.
func (l Lane) Right() (Lane, bool) {
	if l >= LaneRight {
		return l, false
	}
	return l + 1, true
}

// AdjacentLanes returns the neighbours of lane, clipped to the track.
func AdjacentLanes(lane Lane) []Lane {
	adjacent := make([]Lane, 0, 2)
	if left, ok := lane.Left(); ok {
		adjacent = append(adjacent, left)
	}
	if right, ok := lane.Right(); ok {
		adjacent = append(adjacent, right)
	}
	return adjacent
}

// IsAdjacent reports whether a and b are neighbouring lanes.
func IsAdjacent(a, b Lane) bool {
	d := a - b
	return d == 1 || d == -1
}

// LaneCenterX returns the screen X coordinate of the centre of the given lane.
func LaneCenterX(lane Lane, laneWidth float64) float64 {
	return float64(lane)*laneWidth + laneWidth/2
}

// Track describes the visible stretch of road the simulation runs on.
type Track struct {
	Width     float64
	Height    float64
	LaneWidth float64
}

// LaneCenterX returns the centre of lane on this track.
func (t Track) LaneCenterX(lane Lane) float64 {
	return LaneCenterX(lane, t.LaneWidth)
}

// DividerXs returns the X positions of the dashed lines between lanes.
func (t Track) DividerXs() []float64 {
	xs := make([]float64, 0, NumLanes-1)
	for i := 1; i < NumLanes; i++ {
		xs = append(xs, float64(i)*t.LaneWidth)
	}
	return xs
}

// IsOffTrack reports whether something centred at centerY with the given height
// has its top edge below the bottom of the track.
func (t Track) IsOffTrack(centerY, height float64) bool {
	return centerY-height/2 > t.Height
}

// InDangerBand reports whether y lies in the lower part of the track where the
// player drives. bandStart is the fraction of the track height where the band begins.
func (t Track) InDangerBand(y, bandStart float64) bool {
	return y > t.Height*bandStart && y < t.Height
}
