package navconv

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// LocalTangentPlane is an East-North-Up frame anchored at a geodetic origin.
// The origin's ECEF position and the ECEF to ENU rotation are computed once
// by NewLocalTangentPlane. A plane is a small value with no references, so it
// lives on the stack and may be copied and shared between goroutines freely.
type LocalTangentPlane struct {
	origin Geodetic
	ecef   r3.Vec

	// rows of the ECEF -> ENU rotation
	east, north, up r3.Vec
}

// NewLocalTangentPlane returns the ENU frame whose origin is the WGS-84
// position (lat0, lon0, alt0), in degrees, degrees and metres.
//
// At the poles the east and north axes depend on lon0 alone, which is the
// usual WGS-84 convention.
func NewLocalTangentPlane(lat0, lon0, alt0 float64) LocalTangentPlane {
	sinPhi, cosPhi := math.Sincos(lat0 * deg2rad)
	sinLam, cosLam := math.Sincos(lon0 * deg2rad)

	return LocalTangentPlane{
		origin: NewGeodetic(lat0, lon0, alt0),
		ecef:   GeodeticToEcef(lat0, lon0, alt0).Vec(),
		east:   r3.Vec{X: -sinLam, Y: cosLam},
		north:  r3.Vec{X: -sinPhi * cosLam, Y: -sinPhi * sinLam, Z: cosPhi},
		up:     r3.Vec{X: cosPhi * cosLam, Y: cosPhi * sinLam, Z: sinPhi},
	}
}

// Origin returns the geodetic origin of the plane.
func (l LocalTangentPlane) Origin() Geodetic { return l.origin }

// OriginEcef returns the ECEF position of the plane's origin.
func (l LocalTangentPlane) OriginEcef() Cartesian { return CartesianFromVec(l.ecef) }

// Mat returns the ECEF to ENU rotation as a gonum matrix whose rows are the
// east, north and up unit vectors. The conversions themselves never build it.
func (l LocalTangentPlane) Mat() *r3.Mat {
	return r3.NewMat([]float64{
		l.east.X, l.east.Y, l.east.Z,
		l.north.X, l.north.Y, l.north.Z,
		l.up.X, l.up.Y, l.up.Z,
	})
}

// FromEcef expresses the ECEF point p in the plane's ENU frame.
func (l LocalTangentPlane) FromEcef(p Cartesian) Cartesian {
	d := r3.Sub(p.Vec(), l.ecef)
	return NewCartesian(r3.Dot(l.east, d), r3.Dot(l.north, d), r3.Dot(l.up, d))
}

// ToEcef returns the ECEF position of the ENU point p. The rotation is
// orthonormal, so ToEcef inverts FromEcef up to rounding.
func (l LocalTangentPlane) ToEcef(p Cartesian) Cartesian {
	d := r3.Add(r3.Scale(p.X(), l.east), r3.Scale(p.Y(), l.north))
	d = r3.Add(d, r3.Scale(p.Z(), l.up))
	return CartesianFromVec(r3.Add(d, l.ecef))
}

// FromGeodetic expresses the geodetic position g in the plane's ENU frame.
func (l LocalTangentPlane) FromGeodetic(g Geodetic) Cartesian {
	return l.FromEcef(GeodeticToEcef(g.Lat(), g.Lon(), g.Alt()))
}

// ToGeodetic returns the geodetic position of the ENU point p.
func (l LocalTangentPlane) ToGeodetic(p Cartesian) Geodetic {
	e := l.ToEcef(p)
	return EcefToGeodetic(e.X(), e.Y(), e.Z())
}

// EcefToEnu converts the ECEF point (x, y, z) to East-North-Up coordinates in
// the tangent plane centred at the geodetic point (lat0, lon0, alt0).
func EcefToEnu(x, y, z, lat0, lon0, alt0 float64) Cartesian {
	return NewLocalTangentPlane(lat0, lon0, alt0).FromEcef(NewCartesian(x, y, z))
}

// EnuToEcef is the inverse of EcefToEnu: it converts (east, north, up) in the
// tangent plane centred at (lat0, lon0, alt0) back to ECEF.
func EnuToEcef(east, north, up, lat0, lon0, alt0 float64) Cartesian {
	return NewLocalTangentPlane(lat0, lon0, alt0).ToEcef(NewCartesian(east, north, up))
}

// GeodeticToEnu converts the geodetic point (lat, lon, alt) to East-North-Up
// coordinates in the tangent plane centred at (lat0, lon0, alt0).
func GeodeticToEnu(lat, lon, alt, lat0, lon0, alt0 float64) Cartesian {
	return NewLocalTangentPlane(lat0, lon0, alt0).FromGeodetic(NewGeodetic(lat, lon, alt))
}

// EnuToGeodetic converts (east, north, up) in the tangent plane centred at
// (lat0, lon0, alt0) to a geodetic position.
func EnuToGeodetic(east, north, up, lat0, lon0, alt0 float64) Geodetic {
	return NewLocalTangentPlane(lat0, lon0, alt0).ToGeodetic(NewCartesian(east, north, up))
}
