// Package render draws a scene.Scene with raylib. It owns no game state: every
// frame it reads the scene's camera and groups and draws them.
package render

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"

	"odd-one-out/internal/scene"
)

// offsetUnit converts polygon offset (factor + units) into world units the
// solid is pushed away from the camera, so coplanar outlines stay on top.
const offsetUnit = 0.05

// Renderer draws solids as flat unlit triangles and outlines as 3D lines.
type Renderer struct {
	camera      rl.Camera3D
	GridVisible bool
}

// New returns a renderer with a perspective camera. The camera is replaced by
// the scene's camera on every Draw.
func New() *Renderer {
	r := &Renderer{}
	r.camera.Projection = rl.CameraPerspective
	return r
}

// SetGridVisible sets whether the reference grid is drawn behind the shapes.
func (r *Renderer) SetGridVisible(visible bool) {
	r.GridVisible = visible
}

func vec(v mgl32.Vec3) rl.Vector3 {
	return rl.NewVector3(v[0], v[1], v[2])
}

func (r *Renderer) syncCamera(c scene.Camera) {
	r.camera.Position = vec(c.Position)
	r.camera.Target = vec(c.Target)
	r.camera.Up = vec(c.Up)
	r.camera.Fovy = c.FovY
}

// Draw renders the scene's visible groups between BeginMode3D and EndMode3D.
// Call after ClearBackground and before the 2D HUD.
func (r *Renderer) Draw(s *scene.Scene) {
	r.syncCamera(s.Camera)
	rl.BeginMode3D(r.camera)
	if r.GridVisible {
		drawGrid()
	}
	for _, g := range s.Groups() {
		if !g.Visible {
			continue
		}
		m := g.Matrix()
		if g.Solid != nil {
			drawSolid(g.Solid, m, s.Camera.Position)
		}
		if g.Outline != nil {
			drawOutline(g.Outline, m)
		}
	}
	rl.EndMode3D()
}

func transform(m mgl32.Mat4, p mgl32.Vec3) mgl32.Vec3 {
	return m.Mul4x1(p.Vec4(1)).Vec3()
}

// drawSolid draws every triangle of the mesh in its flat material color.
// With PolygonOffset set, vertices are pushed back along the view ray.
func drawSolid(mesh *scene.Mesh, m mgl32.Mat4, eye mgl32.Vec3) {
	g := mesh.Geometry.Triangles
	if g == nil {
		return
	}
	mat := mesh.Material
	push := float32(0)
	if mat.PolygonOffset {
		push = (mat.OffsetFactor + mat.OffsetUnits) * offsetUnit
	}
	place := func(i uint32) rl.Vector3 {
		p := transform(m, g.Positions[i])
		if push != 0 {
			if away := p.Sub(eye); away.Len() > 0 {
				p = p.Add(away.Normalize().Mul(push))
			}
		}
		return vec(p)
	}
	for i := 0; i+2 < len(g.Indices); i += 3 {
		rl.DrawTriangle3D(place(g.Indices[i]), place(g.Indices[i+1]), place(g.Indices[i+2]), mat.Color)
	}
}

func drawOutline(lines *scene.LineSegments, m mgl32.Mat4) {
	c := lines.Material.Color
	for _, e := range lines.Geometry.Segments {
		rl.DrawLine3D(vec(transform(m, e.A)), vec(transform(m, e.B)), c)
	}
}
