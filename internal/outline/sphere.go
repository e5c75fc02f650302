package outline

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"odd-one-out/internal/geometry"
)

// Band spacing for sphere outlines.
const (
	MeridianStep = math.Pi / 4 // azimuth
	LatitudeStep = math.Pi / 6 // polar angle
)

// Spherical holds spherical coordinates with Y as the polar axis.
// Theta is the polar angle from +Y in [0, π]; Phi is atan2(z, x) in (-π, π].
type Spherical struct {
	Radius float64
	Theta  float64
	Phi    float64
}

// ToSpherical converts a cartesian point. The origin has a NaN Theta.
// Band membership is decided against a 0.1 rad tolerance on values that land
// close to its edge, so the angles are computed in float64.
func ToSpherical(p mgl32.Vec3) Spherical {
	x, y, z := float64(p[0]), float64(p[1]), float64(p[2])
	r := math.Sqrt(x*x + y*y + z*z)
	return Spherical{
		Radius: r,
		Theta:  math.Acos(y / r),
		Phi:    math.Atan2(z, x),
	}
}

// sphereEdges keeps an edge when both endpoints sit on a meridian band, or both
// sit on a latitude band.
func sphereEdges(edges geometry.EdgeSet) geometry.EdgeSet {
	out := geometry.EdgeSet{}
	for _, e := range edges {
		a, b := ToSpherical(e.A), ToSpherical(e.B)
		if (onBand(a.Phi, MeridianStep) && onBand(b.Phi, MeridianStep)) ||
			(onBand(a.Theta, LatitudeStep) && onBand(b.Theta, LatitudeStep)) {
			out = append(out, e)
		}
	}
	return out
}

// onBand reports whether angle lies within AngleTolerance past a multiple of
// step. The remainder is truncated (it takes the sign of angle), so the band
// extends away from zero on both sides of the axis. NaN never matches.
func onBand(angle, step float64) bool {
	return math.Abs(math.Mod(angle, step)) < AngleTolerance
}
