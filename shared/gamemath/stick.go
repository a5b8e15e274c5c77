package gamemath

import "math"

// ApplyDeadzone returns 0 when |v| is inside the deadzone, v otherwise.
func ApplyDeadzone(v, deadzone float64) float64 {
	if math.Abs(v) <= deadzone {
		return 0
	}
	return v
}

// KeyAxis turns a pair of opposing buttons into -1, 0 or 1.
func KeyAxis(negative, positive bool) float64 {
	switch {
	case positive && !negative:
		return 1
	case negative && !positive:
		return -1
	}
	return 0
}

// StickAxes converts a knob offset from the stick center (screen space, y
// down) into normalized (horizontal, vertical) readings with up positive.
// Offsets beyond radius are clamped to the unit circle.
func StickAxes(dx, dy, radius float64) (horizontal, vertical float64) {
	if radius <= 0 {
		return 0, 0
	}
	h, v := dx/radius, -dy/radius
	if l := math.Hypot(h, v); l > 1 {
		h, v = h/l, v/l
	}
	return h, v
}

// ClampToRadius limits an offset to the given radius, keeping its direction.
func ClampToRadius(dx, dy, radius float64) (float64, float64) {
	l := math.Hypot(dx, dy)
	if l <= radius || l == 0 {
		return dx, dy
	}
	return dx / l * radius, dy / l * radius
}
