// Package assembler turns shape descriptors into scene groups: a flat-colored
// solid plus its filtered black outline.
package assembler

import (
	"fmt"
	"image/color"

	"github.com/go-gl/mathgl/mgl32"

	"odd-one-out/internal/geometry"
	"odd-one-out/internal/outline"
	"odd-one-out/internal/scene"
	"odd-one-out/internal/shapes"
)

// Solid depth offset, in the polygon-offset sense (factor, units).
const (
	OffsetFactor = 1
	OffsetUnits  = 1
)

// OutlineColor is the color of every edge outline.
var OutlineColor = color.RGBA{A: 0xff}

// Assembler builds groups into a scene and tracks them until DisposeAll.
type Assembler struct {
	scene  *scene.Scene
	groups []*scene.Group
}

// New returns an assembler adding to s.
func New(s *scene.Scene) *Assembler {
	return &Assembler{scene: s}
}

// Create builds d's solid in color c with its outline, positions it at
// (x, y, 0), adds it to the scene and tracks it.
func (a *Assembler) Create(d shapes.Descriptor, c color.RGBA, x, y float32) (*scene.Group, error) {
	g, err := d.Geometry()
	if err != nil {
		return nil, fmt.Errorf("assemble %v: %w", d.Kind, err)
	}
	edges, err := g.Edges(geometry.DefaultEdgeThreshold)
	if err != nil {
		return nil, fmt.Errorf("assemble %v: %w", d.Kind, err)
	}
	lines := outline.Filter(edges, d.Outline(), g.BoundingBox())

	mat := a.scene.NewMaterial(c)
	mat.PolygonOffset = true
	mat.OffsetFactor = OffsetFactor
	mat.OffsetUnits = OffsetUnits
	solid := &scene.Mesh{Geometry: a.scene.NewTriangleGeometry(g), Material: mat}
	edgeLines := &scene.LineSegments{
		Geometry: a.scene.NewSegmentGeometry(lines),
		Material: a.scene.NewMaterial(OutlineColor),
	}

	group := a.scene.NewGroup(solid, edgeLines)
	group.Position = mgl32.Vec3{x, y, 0}
	a.scene.Add(group)
	a.groups = append(a.groups, group)
	return group, nil
}

// HideAll marks every tracked group invisible without releasing anything.
func (a *Assembler) HideAll() {
	for _, g := range a.groups {
		g.Visible = false
	}
}

// DisposeAll hides every tracked group, then releases each one's resources and
// detaches it from the scene. The tracked list is empty afterwards.
func (a *Assembler) DisposeAll() {
	a.HideAll()
	for _, g := range a.groups {
		g.Dispose()
		a.scene.Remove(g)
	}
	a.groups = nil
}

// Groups returns the tracked groups in creation order.
func (a *Assembler) Groups() []*scene.Group {
	out := make([]*scene.Group, len(a.groups))
	copy(out, a.groups)
	return out
}

// Spin adds delta radians to the X and Y rotation of every tracked group.
func (a *Assembler) Spin(delta float32) {
	for _, g := range a.groups {
		g.Rotate(mgl32.Vec3{delta, delta, 0})
	}
}
