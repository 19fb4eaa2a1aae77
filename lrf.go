package navconv

import "math"

// EnuToLrf converts East-North-Up coordinates to the local reference frame
// sharing the same origin but rotated about the negative up axis by
// refHeading degrees.
//
// Heading is measured clockwise from north, as in HPRToQuaternion. The LRF +y
// axis points along refHeading and +x points 90° clockwise of it; z stays up.
// With refHeading = 90 an east pointing vector becomes (0, 1, 0). Any heading
// is accepted and acts modulo 360.
func EnuToLrf(east, north, up, refHeading float64) Cartesian {
	s, c := math.Sincos(refHeading * deg2rad)
	return NewCartesian(
		east*c-north*s,
		east*s+north*c,
		up,
	)
}

// LrfToEnu is the inverse of EnuToLrf.
func LrfToEnu(x, y, z, refHeading float64) Cartesian {
	s, c := math.Sincos(refHeading * deg2rad)
	return NewCartesian(
		x*c+y*s,
		-x*s+y*c,
		z,
	)
}
