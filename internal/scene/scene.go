// Package scene is a render-neutral scene graph: positioned groups of a solid
// mesh and its outline, plus the resources they own. The renderer reads it;
// nothing here touches the window.
package scene

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl32"

	"odd-one-out/internal/geometry"
)

// Camera is a perspective camera. FovY is in degrees.
type Camera struct {
	Position mgl32.Vec3
	Target   mgl32.Vec3
	Up       mgl32.Vec3
	FovY     float32
}

// Group is one positioned, rotatable shape: its solid and its outline move together.
type Group struct {
	ID       int
	Solid    *Mesh
	Outline  *LineSegments
	Position mgl32.Vec3
	Rotation mgl32.Vec3 // Euler XYZ, radians
	Visible  bool
}

// Matrix returns the model transform: translate, then rotate X, Y, Z.
func (g *Group) Matrix() mgl32.Mat4 {
	return mgl32.Translate3D(g.Position[0], g.Position[1], g.Position[2]).
		Mul4(mgl32.HomogRotate3DX(g.Rotation[0])).
		Mul4(mgl32.HomogRotate3DY(g.Rotation[1])).
		Mul4(mgl32.HomogRotate3DZ(g.Rotation[2]))
}

// Rotate adds delta to the group's Euler angles.
func (g *Group) Rotate(delta mgl32.Vec3) {
	g.Rotation = g.Rotation.Add(delta)
}

// Dispose releases the geometry and material of both the solid and the outline.
func (g *Group) Dispose() {
	if g.Solid != nil {
		g.Solid.Geometry.Dispose()
		g.Solid.Material.Dispose()
	}
	if g.Outline != nil {
		g.Outline.Geometry.Dispose()
		g.Outline.Material.Dispose()
	}
}

// Scene holds the camera, the background and the groups in draw order.
type Scene struct {
	Background color.RGBA
	Camera     Camera
	groups     []*Group
	tracker    *Tracker
	nextID     int
}

// New returns an empty white scene with the camera at (0,0,100) looking at the
// origin, fovy 75°.
func New() *Scene {
	return &Scene{
		Background: color.RGBA{0xff, 0xff, 0xff, 0xff},
		Camera: Camera{
			Position: mgl32.Vec3{0, 0, 100},
			Up:       mgl32.Vec3{0, 1, 0},
			FovY:     75,
		},
		tracker: NewTracker(),
	}
}

// Tracker returns the resource tracker shared by everything created through s.
func (s *Scene) Tracker() *Tracker { return s.tracker }

// NewTriangleGeometry wraps a solid's triangles in a tracked resource.
func (s *Scene) NewTriangleGeometry(g *geometry.Geometry) *BufferGeometry {
	return &BufferGeometry{resource: s.newResource(GeometryResource), Triangles: g}
}

// NewSegmentGeometry wraps outline segments in a tracked resource.
func (s *Scene) NewSegmentGeometry(edges geometry.EdgeSet) *BufferGeometry {
	return &BufferGeometry{resource: s.newResource(GeometryResource), Segments: edges}
}

// NewMaterial returns a tracked material of color c.
func (s *Scene) NewMaterial(c color.RGBA) *Material {
	return &Material{resource: s.newResource(MaterialResource), Color: c}
}

func (s *Scene) newResource(kind ResourceKind) resource {
	return resource{id: s.tracker.acquire(kind), tracker: s.tracker}
}

// NewGroup returns a visible group with a fresh ID. It is not added to the scene.
func (s *Scene) NewGroup(solid *Mesh, outline *LineSegments) *Group {
	s.nextID++
	return &Group{ID: s.nextID, Solid: solid, Outline: outline, Visible: true}
}

// Add appends g to the draw list.
func (s *Scene) Add(g *Group) {
	s.groups = append(s.groups, g)
}

// Remove detaches g from the scene. It reports whether g was present.
func (s *Scene) Remove(g *Group) bool {
	for i, cur := range s.groups {
		if cur == g {
			s.groups = append(s.groups[:i], s.groups[i+1:]...)
			return true
		}
	}
	return false
}

// Groups returns the groups in draw order. The slice is a copy.
func (s *Scene) Groups() []*Group {
	out := make([]*Group, len(s.groups))
	copy(out, s.groups)
	return out
}
