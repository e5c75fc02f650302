// Package outline selects which wireframe edges of a solid are drawn as its
// outline. Boxes and pyramids keep every crease; spheres and cylinders keep a
// sparse subset so they read like a quick pen sketch instead of a dense mesh.
package outline

import (
	"odd-one-out/internal/geometry"
)

// Kind selects the filtering policy.
type Kind int

const (
	// Other keeps the full wireframe (boxes, cones, prisms).
	Other Kind = iota
	// Sphere keeps meridians every 45° and latitudes every 30°.
	Sphere
	// Cylinder keeps the top and bottom rims plus eight vertical ribs.
	Cylinder
)

func (k Kind) String() string {
	switch k {
	case Sphere:
		return "sphere"
	case Cylinder:
		return "cylinder"
	default:
		return "other"
	}
}

// Tolerances are tuned for 32-segment spheres and cylinders: they are narrower
// than the vertex spacing so each band or rib picks a single column of edges.
const (
	HeightTolerance = 0.001
	AngleTolerance  = 0.1
)

// Filter returns the subset of edges to draw for a solid of the given kind.
// bounds must be the bounding box of the solid the edges came from; only the
// cylinder policy reads it. The input is never modified and the result is a
// new slice (empty, not nil, when nothing matches).
func Filter(edges geometry.EdgeSet, kind Kind, bounds geometry.Box3) geometry.EdgeSet {
	switch kind {
	case Sphere:
		return sphereEdges(edges)
	case Cylinder:
		return cylinderEdges(edges, bounds.Min[1], bounds.Max[1])
	default:
		out := make(geometry.EdgeSet, len(edges))
		copy(out, edges)
		return out
	}
}
