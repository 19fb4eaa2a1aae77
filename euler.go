package navconv

import "math"

// HPR converts the unit quaternion q back to heading, pitch and roll in
// degrees. It inverts HPRToQuaternion for pitch strictly inside (-90, 90).
//
// The output ranges are:
//
//	Heading: (-180, 180]
//	Pitch:   [-90, 90]
//	Roll:    (-180, 180]
func (q Quaternion) HPR() (heading, pitch, roll float64) {
	// These calculations rely on the assumption that q is a unit quaternion!

	// Calculate pitch
	stheta := 2.0 * (q.W*q.Y - q.Z*q.X)

	// Coerce stheta to [-1,1]
	if stheta >= 1 {
		stheta = 1
	} else if stheta <= -1 {
		stheta = -1
	}

	pitch = math.Asin(stheta)

	// Calculate heading and roll
	ysq := q.Y * q.Y
	heading = math.Atan2(q.W*q.Z+q.X*q.Y, 0.5-(ysq+q.Z*q.Z))
	roll = math.Atan2(q.W*q.X+q.Y*q.Z, 0.5-(ysq+q.X*q.X))

	return heading * rad2deg, pitch * rad2deg, roll * rad2deg
}

// Heading returns the heading of q in degrees (1st of the three ZYX Euler angles).
func (q Quaternion) Heading() float64 {
	h, _, _ := q.HPR()
	return h
}

// Pitch returns the pitch of q in degrees (2nd of the three ZYX Euler angles).
func (q Quaternion) Pitch() float64 {
	_, p, _ := q.HPR()
	return p
}

// Roll returns the roll of q in degrees (3rd of the three ZYX Euler angles).
func (q Quaternion) Roll() float64 {
	_, _, r := q.HPR()
	return r
}
