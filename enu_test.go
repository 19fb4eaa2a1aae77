package navconv

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestEcefToEnu(t *testing.T) {
	tests := []struct {
		name      string
		p         [3]float64 // geodetic point
		origin    [3]float64
		want      [3]float64
		tolerance float64
	}{
		{
			name:      "origin maps to zero",
			p:         [3]float64{51.5, -0.1, 100},
			origin:    [3]float64{51.5, -0.1, 100},
			want:      [3]float64{0, 0, 0},
			tolerance: 1e-6,
		},
		{
			name:      "straight up",
			p:         [3]float64{10, 20, 1500},
			origin:    [3]float64{10, 20, 500},
			want:      [3]float64{0, 0, 1000},
			tolerance: 1e-6,
		},
		{
			name:      "one degree north of the equator",
			p:         [3]float64{1, 0, 0},
			origin:    [3]float64{0, 0, 0},
			want:      [3]float64{0, 110568.77482456664, -964.9195715896785},
			tolerance: 1e-6,
		},
		{
			name:      "small offset north east of london",
			p:         [3]float64{51.501, -0.1, 110},
			origin:    [3]float64{51.5, -0.1, 100},
			want:      [3]float64{0, 111.25976304012372, 9.999029075617436},
			tolerance: 1e-6,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := GeodeticToEcef(tt.p[0], tt.p[1], tt.p[2])
			got := EcefToEnu(e.X(), e.Y(), e.Z(), tt.origin[0], tt.origin[1], tt.origin[2]).Array()
			if diff := cmp.Diff(tt.want, got, cmpopts.EquateApprox(0, tt.tolerance)); diff != "" {
				t.Errorf("EcefToEnu mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestEnuAxesAtEquator(t *testing.T) {
	// at (0, 0) east is +y, north is +z and up is +x in ECEF
	origin := GeodeticToEcef(0, 0, 0)

	east := EnuToEcef(1, 0, 0, 0, 0, 0)
	north := EnuToEcef(0, 1, 0, 0, 0, 0)
	up := EnuToEcef(0, 0, 1, 0, 0, 0)

	approx := cmpopts.EquateApprox(0, 1e-9)
	assert.True(t, cmp.Equal(r3.Vec{Y: 1}, r3.Sub(east.Vec(), origin.Vec()), approx))
	assert.True(t, cmp.Equal(r3.Vec{Z: 1}, r3.Sub(north.Vec(), origin.Vec()), approx))
	assert.True(t, cmp.Equal(r3.Vec{X: 1}, r3.Sub(up.Vec(), origin.Vec()), approx))
}

func TestEnuAtPole(t *testing.T) {
	e := GeodeticToEcef(89, 0, 0)
	got := EcefToEnu(e.X(), e.Y(), e.Z(), 90, 0, 0)
	for _, v := range got.Slice() {
		assert.False(t, math.IsNaN(v))
	}
	// one degree of latitude towards lon 0 from the north pole is due south
	assert.InDelta(t, 0, got.X(), 1e-6)
	assert.Less(t, got.Y(), -100000.0)
}

func TestEnuRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	approx := cmpopts.EquateApprox(0, 1e-6)

	for i := 0; i < 10000; i++ {
		p := [3]float64{
			-7e6 + 14e6*rng.Float64(),
			-7e6 + 14e6*rng.Float64(),
			-7e6 + 14e6*rng.Float64(),
		}
		lat0 := -90 + 180*rng.Float64()
		lon0 := -180 + 360*rng.Float64()
		alt0 := -1000 + 11000*rng.Float64()

		enu := EcefToEnu(p[0], p[1], p[2], lat0, lon0, alt0)
		back := EnuToEcef(enu.X(), enu.Y(), enu.Z(), lat0, lon0, alt0).Array()
		if !cmp.Equal(p, back, approx) {
			t.Fatalf("round trip of %v about (%v, %v, %v) gave %v", p, lat0, lon0, alt0, back)
		}
	}
}

func TestEnuPreservesDistance(t *testing.T) {
	a := GeodeticToEcef(48.85, 2.35, 35)
	b := GeodeticToEcef(48.86, 2.36, 80)

	ea := EcefToEnu(a.X(), a.Y(), a.Z(), 48.8, 2.3, 0)
	eb := EcefToEnu(b.X(), b.Y(), b.Z(), 48.8, 2.3, 0)

	assert.InDelta(t, r3.Norm(r3.Sub(a.Vec(), b.Vec())), r3.Norm(r3.Sub(ea.Vec(), eb.Vec())), 1e-6)
}

func TestGeodeticToEnu(t *testing.T) {
	t.Run("same point is the origin", func(t *testing.T) {
		for _, o := range [][3]float64{{0, 0, 0}, {51.5, -0.1, 100}, {-33.8688, 151.2093, 58}, {90, 0, 0}, {-89.5, 179.9, 8000}} {
			got := GeodeticToEnu(o[0], o[1], o[2], o[0], o[1], o[2])
			assert.InDelta(t, 0, r3.Norm(got.Vec()), 1e-6, "origin %v", o)
		}
	})

	t.Run("matches the two step conversion", func(t *testing.T) {
		e := GeodeticToEcef(51.501, -0.1, 110)
		want := EcefToEnu(e.X(), e.Y(), e.Z(), 51.5, -0.1, 100)
		assert.Equal(t, want, GeodeticToEnu(51.501, -0.1, 110, 51.5, -0.1, 100))
	})
}

func TestEnuToGeodetic(t *testing.T) {
	g := EnuToGeodetic(0, 111.25976304012372, 9.999029075617436, 51.5, -0.1, 100)
	assert.InDelta(t, 51.501, g.Lat(), 1e-9)
	assert.InDelta(t, -0.1, g.Lon(), 1e-9)
	assert.InDelta(t, 110, g.Alt(), 1e-6)
}

func TestLocalTangentPlane(t *testing.T) {
	ltp := NewLocalTangentPlane(51.5, -0.1, 100)

	assert.Equal(t, NewGeodetic(51.5, -0.1, 100), ltp.Origin())
	assert.Equal(t, GeodeticToEcef(51.5, -0.1, 100), ltp.OriginEcef())
	assert.InDelta(t, 0, r3.Norm(ltp.FromEcef(ltp.OriginEcef()).Vec()), 1e-9)

	t.Run("agrees with the free functions", func(t *testing.T) {
		e := GeodeticToEcef(51.6, -0.2, 40)
		assert.Equal(t, EcefToEnu(e.X(), e.Y(), e.Z(), 51.5, -0.1, 100), ltp.FromEcef(e))
		assert.Equal(t, EnuToEcef(10, 20, 30, 51.5, -0.1, 100), ltp.ToEcef(NewCartesian(10, 20, 30)))
	})

	t.Run("geodetic round trip", func(t *testing.T) {
		g := NewGeodetic(51.49, -0.09, 250)
		back := ltp.ToGeodetic(ltp.FromGeodetic(g))
		assert.InDelta(t, g.Lat(), back.Lat(), 1e-9)
		assert.InDelta(t, g.Lon(), back.Lon(), 1e-9)
		assert.InDelta(t, g.Alt(), back.Alt(), 1e-6)
	})
}

func TestLocalTangentPlaneMat(t *testing.T) {
	ltp := NewLocalTangentPlane(51.5, -0.1, 100)
	m := ltp.Mat()
	assert.InDelta(t, 1, m.Det(), 1e-12)

	e := GeodeticToEcef(51.6, -0.2, 40)
	want := m.MulVec(r3.Sub(e.Vec(), ltp.OriginEcef().Vec()))
	assert.True(t, cmp.Equal(want, ltp.FromEcef(e).Vec(), cmpopts.EquateApprox(0, 1e-9)))

	back := r3.Add(m.MulVecTrans(r3.Vec{X: 10, Y: 20, Z: 30}), ltp.OriginEcef().Vec())
	assert.True(t, cmp.Equal(back, ltp.ToEcef(NewCartesian(10, 20, 30)).Vec(), cmpopts.EquateApprox(0, 1e-9)))
}

var (
	cartesianSink Cartesian
	geodeticSink  Geodetic
)

func TestConversionsDoNotAllocate(t *testing.T) {
	tests := []struct {
		name string
		fn   func()
	}{
		{"EcefToEnu", func() { cartesianSink = EcefToEnu(3978704.7, -6944.1, 4968440.7, 51.5, -0.1, 100) }},
		{"EnuToEcef", func() { cartesianSink = EnuToEcef(10, 20, 30, 51.5, -0.1, 100) }},
		{"GeodeticToEnu", func() { cartesianSink = GeodeticToEnu(51.501, -0.1, 110, 51.5, -0.1, 100) }},
		{"EnuToGeodetic", func() { geodeticSink = EnuToGeodetic(10, 20, 30, 51.5, -0.1, 100) }},
		{"GeodeticToEcef", func() { cartesianSink = GeodeticToEcef(51.5, -0.1, 100) }},
		{"EcefToGeodetic", func() { geodeticSink = EcefToGeodetic(3978704.7, -6944.1, 4968440.7) }},
		{"EnuToLrf", func() { cartesianSink = EnuToLrf(1, 2, 3, 45) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Zero(t, testing.AllocsPerRun(100, tt.fn))
		})
	}
}

func BenchmarkEcefToEnu(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		EcefToEnu(3978704.7, -6944.1, 4968440.7, 51.5, -0.1, 100)
	}
}

func BenchmarkLocalTangentPlaneFromEcef(b *testing.B) {
	ltp := NewLocalTangentPlane(51.5, -0.1, 100)
	p := NewCartesian(3978704.7, -6944.1, 4968440.7)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ltp.FromEcef(p)
	}
}
