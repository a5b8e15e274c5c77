package gamemath

import "github.com/go-gl/mathgl/mgl64"

// ApplyDrag damps velocity the way a rigid body's linear drag does:
// v * 1/(1 + drag*dt).
func ApplyDrag(v mgl64.Vec3, drag, dt float64) mgl64.Vec3 {
	if drag <= 0 || dt <= 0 {
		return v
	}
	return v.Mul(1 / (1 + drag*dt))
}

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	if speed > max {
		return max
	}
	if speed < -max {
		return -max
	}
	return speed
}

// SnapToZero returns 0 for values smaller than epsilon in magnitude.
func SnapToZero(v, epsilon float64) float64 {
	if v < epsilon && v > -epsilon {
		return 0
	}
	return v
}
