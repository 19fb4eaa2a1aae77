package navconv

import "math"

// PrimeVerticalRadius returns the WGS-84 radius of curvature in the prime
// vertical, N, at geodetic latitude latRad (radians).
func PrimeVerticalRadius(latRad float64) float64 {
	return primeVertical(math.Sin(latRad))
}

// primeVertical is PrimeVerticalRadius for a latitude given by its sine.
func primeVertical(sinLat float64) float64 {
	return SemiMajorAxis / math.Sqrt(1-EccentricitySquared*sinLat*sinLat)
}

// GeodeticToEcef converts a WGS-84 geodetic position (lat and lon in degrees,
// alt in metres above the ellipsoid) to ECEF coordinates in metres.
//
// The conversion is closed form and has no singularity, the poles included.
// Latitudes outside [-90, 90] are not rejected; they produce a well defined
// but physically meaningless point.
func GeodeticToEcef(lat, lon, alt float64) Cartesian {
	// convert to radians and precalculate the required sin and cos values
	sinLat, cosLat := math.Sincos(lat * deg2rad)
	sinLon, cosLon := math.Sincos(lon * deg2rad)

	n := primeVertical(sinLat)

	return NewCartesian(
		(n+alt)*cosLat*cosLon,
		(n+alt)*cosLat*sinLon,
		((1-EccentricitySquared)*n+alt)*sinLat,
	)
}

// LLAToECEF is GeodeticToEcef returning the ECEF point as the slice (x, y, z).
func LLAToECEF(lat, lon, alt float64) []float64 {
	return GeodeticToEcef(lat, lon, alt).Slice()
}

// EcefToGeodetic converts ECEF coordinates in metres to a WGS-84 geodetic
// position (degrees, degrees, metres).
//
// Longitude is atan2(y, x). Latitude starts from atan2(z, p(1-e²)), the
// geodetic latitude of the surface point with geocentric direction (p, z),
// and is refined by fixed point iteration until two successive estimates
// agree to within LatitudeConvergence, with at most MaxGeodeticIterations
// refinements.
// Altitude is recovered through whichever of cos(lat) and sin(lat) is the
// larger, so it stays accurate near both the equator and the poles.
//
// Points closer than PolarAxisTolerance to the polar axis have no defined
// longitude. They are returned as (±90, 0, |z|-b), where the sign follows z
// and the Earth's centre maps to (90, 0, -b). A NaN z on the axis yields NaN
// in all three components.
func EcefToGeodetic(x, y, z float64) Geodetic {
	p := math.Hypot(x, y)

	if p < PolarAxisTolerance {
		if math.IsNaN(z) {
			return NewGeodetic(z, z, z)
		}
		lat := 90.0
		if math.Signbit(z) {
			lat = -90
		}
		return NewGeodetic(lat, 0, math.Abs(z)-SemiMinorAxis)
	}

	lon := math.Atan2(y, x)

	// initial estimate
	lat := math.Atan2(z, p*(1-EccentricitySquared))

	for i := 0; i < MaxGeodeticIterations; i++ {
		prev := lat
		s := math.Sin(lat)
		lat = math.Atan2(z+EccentricitySquared*primeVertical(s)*s, p)
		if math.Abs(lat-prev) < LatitudeConvergence {
			break
		}
	}

	sinLat, cosLat := math.Sincos(lat)
	n := primeVertical(sinLat)

	var alt float64
	if math.Abs(cosLat) > math.Abs(sinLat) {
		alt = p/cosLat - n
	} else {
		alt = z/sinLat - n*(1-EccentricitySquared)
	}

	return NewGeodetic(lat*rad2deg, lon*rad2deg, alt)
}
