package navconv

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

// Tuple3 is a plain triple of components. Cartesian and Geodetic give the
// same three slots their named meanings.
type Tuple3 struct {
	x0, x1, x2 float64
}

// NewTuple3 returns the triple (x0, x1, x2).
func NewTuple3(x0, x1, x2 float64) Tuple3 {
	return Tuple3{x0: x0, x1: x1, x2: x2}
}

func (t Tuple3) X0() float64 { return t.x0 }
func (t Tuple3) X1() float64 { return t.x1 }
func (t Tuple3) X2() float64 { return t.x2 }

func (t *Tuple3) SetX0(v float64) { t.x0 = v }
func (t *Tuple3) SetX1(v float64) { t.x1 = v }
func (t *Tuple3) SetX2(v float64) { t.x2 = v }

// Array returns the components in order.
func (t Tuple3) Array() [3]float64 {
	return [3]float64{t.x0, t.x1, t.x2}
}

// Slice returns the components in order as a freshly allocated slice.
func (t Tuple3) Slice() []float64 {
	return []float64{t.x0, t.x1, t.x2}
}

// Vec returns the components as an r3 vector.
func (t Tuple3) Vec() r3.Vec {
	return r3.Vec{X: t.x0, Y: t.x1, Z: t.x2}
}

// Cartesian is a point (x, y, z) in metres. Which frame the axes belong to
// (ECEF, ENU or LRF) is documented by the function that produced it.
type Cartesian struct {
	p Tuple3
}

// NewCartesian returns the point (x, y, z).
func NewCartesian(x, y, z float64) Cartesian {
	return Cartesian{p: NewTuple3(x, y, z)}
}

// CartesianFromVec returns the point with the components of v.
func CartesianFromVec(v r3.Vec) Cartesian {
	return NewCartesian(v.X, v.Y, v.Z)
}

func (c Cartesian) X() float64 { return c.p.X0() }
func (c Cartesian) Y() float64 { return c.p.X1() }
func (c Cartesian) Z() float64 { return c.p.X2() }

func (c *Cartesian) SetX(x float64) { c.p.SetX0(x) }
func (c *Cartesian) SetY(y float64) { c.p.SetX1(y) }
func (c *Cartesian) SetZ(z float64) { c.p.SetX2(z) }

// Tuple returns the underlying components.
func (c Cartesian) Tuple() Tuple3 { return c.p }

// Array returns (x, y, z).
func (c Cartesian) Array() [3]float64 { return c.p.Array() }

// Slice returns (x, y, z) as a freshly allocated slice.
func (c Cartesian) Slice() []float64 { return c.p.Slice() }

// Vec returns the point as an r3 vector.
func (c Cartesian) Vec() r3.Vec { return c.p.Vec() }

func (c Cartesian) String() string {
	return fmt.Sprintf("(%.4f, %.4f, %.4f)", c.X(), c.Y(), c.Z())
}

// Geodetic is a WGS-84 position: latitude and longitude in degrees, altitude
// in metres above the ellipsoid. Setters accept any value; range checking is
// left to the caller.
type Geodetic struct {
	p Tuple3
}

// NewGeodetic returns the position (lat, lon, alt).
func NewGeodetic(lat, lon, alt float64) Geodetic {
	return Geodetic{p: NewTuple3(lat, lon, alt)}
}

func (g Geodetic) Lat() float64 { return g.p.X0() }
func (g Geodetic) Lon() float64 { return g.p.X1() }
func (g Geodetic) Alt() float64 { return g.p.X2() }

func (g *Geodetic) SetLat(lat float64) { g.p.SetX0(lat) }
func (g *Geodetic) SetLon(lon float64) { g.p.SetX1(lon) }
func (g *Geodetic) SetAlt(alt float64) { g.p.SetX2(alt) }

// Tuple returns the underlying components.
func (g Geodetic) Tuple() Tuple3 { return g.p }

// Array returns (lat, lon, alt).
func (g Geodetic) Array() [3]float64 { return g.p.Array() }

// Slice returns (lat, lon, alt) as a freshly allocated slice.
func (g Geodetic) Slice() []float64 { return g.p.Slice() }

func (g Geodetic) String() string {
	return fmt.Sprintf("(%.8f°, %.8f°, %.4f m)", g.Lat(), g.Lon(), g.Alt())
}
