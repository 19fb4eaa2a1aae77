// Package navconv converts inertial-navigation positions and attitudes between
// frames.
//
// Positions move between WGS-84 geodetic coordinates (degrees, degrees,
// metres), Earth-Centered-Earth-Fixed cartesian coordinates, a local
// East-North-Up tangent plane and a heading-rotated local reference frame
// (LRF). Attitudes given as heading, pitch and roll are converted to unit
// quaternions.
//
// Every angle crossing the package boundary is in degrees and every length is
// in metres. Nothing in the package validates its input: NaN and Inf propagate
// to the output, and degenerate geometry (the polar axis, the Earth's centre)
// resolves to the conventions documented on each function.
package navconv

import "math"

const (
	// If a quaternion has norm-squared less than this during normalisation, then it is considered to be zero and the identity rotation is returned instead.
	QuaternionNormToleranceSquared = 1e-12 * 1e-12

	// If the distance of an ECEF point from the polar axis (metres) is less than this, then the point is treated as lying on the axis: latitude is ±90° and longitude is 0.
	PolarAxisTolerance = 1e-9

	// The geodetic latitude iteration stops once two successive estimates differ by less than this (radians).
	LatitudeConvergence = 1e-11

	// Upper bound on the number of latitude refinements in EcefToGeodetic. The fixed point iteration contracts by roughly e² per step, so this is never reached for finite input.
	MaxGeodeticIterations = 10
)

const (
	deg2rad = math.Pi / 180
	rad2deg = 180 / math.Pi
)
