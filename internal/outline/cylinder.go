package outline

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"odd-one-out/internal/geometry"
)

// RibAngles are the azimuths (radians, atan2(z, x)) of the vertical ribs kept on
// a cylinder.
var RibAngles = [8]float32{
	0,
	math32.Pi / 4,
	math32.Pi / 2,
	3 * math32.Pi / 4,
	math32.Pi,
	5 * math32.Pi / 4,
	3 * math32.Pi / 2,
	7 * math32.Pi / 4,
}

// cylinderEdges keeps rim edges first, then vertical ribs. An edge that
// qualifies as both is emitted once, in the rim group.
func cylinderEdges(edges geometry.EdgeSet, minY, maxY float32) geometry.EdgeSet {
	rims := geometry.EdgeSet{}
	var ribs geometry.EdgeSet
	for _, e := range edges {
		if isHorizontal(e, minY, maxY) {
			rims = append(rims, e)
			continue
		}
		if isRib(e) {
			ribs = append(ribs, e)
		}
	}
	return append(rims, ribs...)
}

func isHorizontal(e geometry.Edge, minY, maxY float32) bool {
	return (isNear(e.A[1], maxY) && isNear(e.B[1], maxY)) ||
		(isNear(e.A[1], minY) && isNear(e.B[1], minY))
}

func isRib(e geometry.Edge) bool {
	return nearRib(azimuth(e.A)) && nearRib(azimuth(e.B))
}

func azimuth(p mgl32.Vec3) float32 {
	return math32.Atan2(p[2], p[0])
}

func nearRib(phi float32) bool {
	for _, target := range RibAngles {
		if isNearAngle(phi, target) {
			return true
		}
	}
	return false
}

func isNear(value, target float32) bool {
	return math32.Abs(value-target) < HeightTolerance
}

// isNearAngle compares two angles, treating values a full turn apart as equal.
func isNearAngle(value, target float32) bool {
	d := value - target
	return math32.Abs(d) < AngleTolerance ||
		math32.Abs(d-2*math32.Pi) < AngleTolerance ||
		math32.Abs(d+2*math32.Pi) < AngleTolerance
}
