package navconv

// WGS-84 reference ellipsoid.
const (
	// Semi-major (equatorial) axis in metres.
	SemiMajorAxis = 6378137.0

	// Flattening of the ellipsoid.
	Flattening = 1 / 298.257223563

	// Semi-minor (polar) axis in metres.
	SemiMinorAxis = SemiMajorAxis * (1 - Flattening)

	// First eccentricity squared, e² = f(2-f).
	EccentricitySquared = Flattening * (2 - Flattening)
)
