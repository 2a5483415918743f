package scene

import "math"

// TurntableRate is the fixed angular rate of the inspection rotation in
// radians per second.
const TurntableRate = 0.15

// YawAt returns the turntable yaw for the given elapsed time, wrapped into
// [0, 2*pi). The yaw is a pure function of elapsed time rather than an
// accumulated step, so it stays smooth regardless of frame pacing.
func YawAt(elapsedSeconds float64) float64 {
	yaw := math.Mod(TurntableRate*elapsedSeconds, 2*math.Pi)
	if yaw < 0 {
		yaw += 2 * math.Pi
	}
	return yaw
}

// Rotate sets the scene yaw for the given elapsed time.
func Rotate(s *Scene, elapsedSeconds float64) {
	s.Yaw = YawAt(elapsedSeconds)
}
