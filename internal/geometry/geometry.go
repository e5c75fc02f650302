package geometry

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

// ErrMalformed is returned when indices do not describe a valid triangle list.
var ErrMalformed = errors.New("malformed geometry")

// Geometry is an indexed triangle list. Every three entries of Indices form one
// triangle, wound counter-clockwise when seen from outside the solid.
type Geometry struct {
	Positions []mgl32.Vec3
	Indices   []uint32
}

// Box3 is an axis-aligned bounding box.
type Box3 struct {
	Min, Max mgl32.Vec3
}

// Edge is one line of a wireframe: a pair of points.
type Edge struct {
	A, B mgl32.Vec3
}

// EdgeSet is an ordered list of edge segments.
type EdgeSet []Edge

// Flatten returns the segments as a flat x,y,z,x,y,z... array (6 floats per edge),
// the layout line renderers expect for a position attribute.
func (s EdgeSet) Flatten() []float32 {
	out := make([]float32, 0, len(s)*6)
	for _, e := range s {
		out = append(out, e.A[0], e.A[1], e.A[2], e.B[0], e.B[1], e.B[2])
	}
	return out
}

// Points returns the segment endpoints in order (A0, B0, A1, B1, ...).
func (s EdgeSet) Points() []mgl32.Vec3 {
	out := make([]mgl32.Vec3, 0, len(s)*2)
	for _, e := range s {
		out = append(out, e.A, e.B)
	}
	return out
}

// TriangleCount returns the number of triangles described by Indices.
func (g *Geometry) TriangleCount() int {
	return len(g.Indices) / 3
}

// Validate checks that the index list is a whole number of triangles and that
// every index refers to an existing position.
func (g *Geometry) Validate() error {
	if g == nil {
		return fmt.Errorf("nil geometry: %w", ErrMalformed)
	}
	if len(g.Indices)%3 != 0 {
		return fmt.Errorf("index count %d is not a multiple of 3: %w", len(g.Indices), ErrMalformed)
	}
	n := uint32(len(g.Positions))
	for i, idx := range g.Indices {
		if idx >= n {
			return fmt.Errorf("index %d at %d out of range (%d positions): %w", idx, i, n, ErrMalformed)
		}
	}
	return nil
}

// BoundingBox returns the component-wise min/max over all positions.
// An empty geometry yields a zero box.
func (g *Geometry) BoundingBox() Box3 {
	if len(g.Positions) == 0 {
		return Box3{}
	}
	inf := math32.Inf(1)
	b := Box3{
		Min: mgl32.Vec3{inf, inf, inf},
		Max: mgl32.Vec3{-inf, -inf, -inf},
	}
	for _, p := range g.Positions {
		for axis := 0; axis < 3; axis++ {
			if p[axis] < b.Min[axis] {
				b.Min[axis] = p[axis]
			}
			if p[axis] > b.Max[axis] {
				b.Max[axis] = p[axis]
			}
		}
	}
	return b
}

// appendTriangle appends one triangle to the index list.
func (g *Geometry) appendTriangle(a, b, c uint32) {
	g.Indices = append(g.Indices, a, b, c)
}

// appendPosition appends a vertex and returns its index.
func (g *Geometry) appendPosition(p mgl32.Vec3) uint32 {
	g.Positions = append(g.Positions, p)
	return uint32(len(g.Positions) - 1)
}

// widen converts a stored position to float64 for normal math.
func widen(p mgl32.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{float64(p[0]), float64(p[1]), float64(p[2])}
}

// faceNormal returns the unit normal of triangle a,b,c, or the zero vector for a
// degenerate triangle. Shallow creases such as the sphere's pole fans sit well
// under a degree, so the normal is computed in float64.
func faceNormal(a, b, c mgl32.Vec3) mgl64.Vec3 {
	wa, wb, wc := widen(a), widen(b), widen(c)
	n := wc.Sub(wb).Cross(wa.Sub(wb))
	if n.LenSqr() == 0 {
		return mgl64.Vec3{}
	}
	return n.Normalize()
}
