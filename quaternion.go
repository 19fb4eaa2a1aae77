package navconv

import (
	"math"

	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Quaternion is an attitude quaternion with vector part (X, Y, Z) and scalar
// part W. Component order everywhere in this package is (x, y, z, w).
type Quaternion struct {
	X, Y, Z, W float64
}

// IdentityQuaternion is the zero rotation.
var IdentityQuaternion = Quaternion{W: 1}

// HPRToQuaternion converts heading, pitch and roll (degrees) to a unit
// quaternion.
//
// The angles follow the navigation convention: heading clockwise from north,
// pitch positive nose up and roll positive right wing down. They are applied
// as intrinsic ZYX rotations (heading, then pitch, then roll), so the result
// rotates the North-East-Down navigation frame onto the body frame.
//
// Finite input always yields a quaternion of unit norm; NaN in gives NaN out.
func HPRToQuaternion(heading, pitch, roll float64) Quaternion {
	// halve the heading, pitch and roll values and convert them to radians
	heading *= 0.5 * deg2rad
	pitch *= 0.5 * deg2rad
	roll *= 0.5 * deg2rad

	// precalculate the required sin and cos values
	spsi, cpsi := math.Sincos(heading)
	sth, cth := math.Sincos(pitch)
	sphi, cphi := math.Sincos(roll)

	// calculate the required quaternion components
	return Quaternion{
		X: cpsi*cth*sphi - spsi*sth*cphi,
		Y: cpsi*sth*cphi + spsi*cth*sphi,
		Z: spsi*cth*cphi - cpsi*sth*sphi,
		W: cpsi*cth*cphi + spsi*sth*sphi,
	}
}

// QuaternionFromNumber converts a gonum quaternion to a Quaternion.
func QuaternionFromNumber(n quat.Number) Quaternion {
	return Quaternion{X: n.Imag, Y: n.Jmag, Z: n.Kmag, W: n.Real}
}

// Number returns q as a gonum quaternion.
func (q Quaternion) Number() quat.Number {
	return quat.Number{Real: q.W, Imag: q.X, Jmag: q.Y, Kmag: q.Z}
}

// Slice returns the components in (x, y, z, w) order.
func (q Quaternion) Slice() []float64 {
	return []float64{q.X, q.Y, q.Z, q.W}
}

func (q Quaternion) Norm() float64 {
	return quat.Abs(q.Number())
}

// Normalize returns q scaled to unit norm. A quaternion too close to zero to
// be normalised (see QuaternionNormToleranceSquared) yields the identity.
func (q Quaternion) Normalize() Quaternion {
	qscale := q.W*q.W + q.X*q.X + q.Y*q.Y + q.Z*q.Z // calculate the quaternion square norm

	if qscale < QuaternionNormToleranceSquared {
		return IdentityQuaternion
	}

	qscale = 1.0 / math.Sqrt(qscale)
	return Quaternion{
		X: qscale * q.X,
		Y: qscale * q.Y,
		Z: qscale * q.Z,
		W: qscale * q.W,
	}
}

// Conj returns the conjugate of q, which for a unit quaternion is the
// inverse rotation.
func (q Quaternion) Conj() Quaternion {
	return QuaternionFromNumber(quat.Conj(q.Number()))
}

// Mul returns the Hamilton product q⋅r, the rotation r followed by q.
func (q Quaternion) Mul(r Quaternion) Quaternion {
	return QuaternionFromNumber(quat.Mul(q.Number(), r.Number()))
}

// Rotate returns v rotated by q, i.e. the vector part of q⋅v⋅q*. q must be a
// unit quaternion.
func (q Quaternion) Rotate(v r3.Vec) r3.Vec {
	return r3.Rotation(q.Number()).Rotate(v)
}

// Mat returns the rotation matrix of the unit quaternion q.
func (q Quaternion) Mat() *r3.Mat {
	return r3.Rotation(q.Number()).Mat()
}
