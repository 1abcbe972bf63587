// Package geometry holds the box maths used for drawing and collision.
package geometry

// Vector2 is a position in track space. X grows to the right, Y grows down-track.
type Vector2 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Extent is the bounding size of a vehicle.
type Extent struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Box is an axis-aligned rectangle anchored at its top-left corner.
type Box struct {
	X, Y, W, H float64
}

// ToBox converts a centre position and size into an axis-aligned box.
func ToBox(center Vector2, size Extent) Box {
	return Box{
		X: center.X - size.Width/2,
		Y: center.Y - size.Height/2,
		W: size.Width,
		H: size.Height,
	}
}

// Overlaps reports whether two boxes intersect on both axes.
// Boxes that only touch along an edge do not overlap.
func Overlaps(a, b Box) bool {
	return a.X < b.X+b.W &&
		a.X+a.W > b.X &&
		a.Y < b.Y+b.H &&
		a.Y+a.H > b.Y
}

// Lerp blends start toward end by factor.
func Lerp(start, end, factor float64) float64 {
	return start + (end-start)*factor
}

// Clamp limits value to [min, max].
func Clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
