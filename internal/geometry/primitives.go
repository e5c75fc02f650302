package geometry

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// fullTurn is the sweep of a full revolution.
const fullTurn = 2 * math.Pi

// vertex narrows a float64 position for storage. Generators compute in float64
// so stored positions are the correctly rounded values of the exact layout.
func vertex(x, y, z float64) mgl32.Vec3 {
	return mgl32.Vec3{float32(x), float32(y), float32(z)}
}

const (
	minSphereWidthSegments  = 3
	minSphereHeightSegments = 2
	minRadialSegments       = 3
)

// Sphere builds a UV sphere centered at the origin with its poles on the Y axis.
// widthSegments is the number of meridian slices, heightSegments the number of
// latitude bands. The seam column is duplicated (u=0 and u=1 share positions).
func Sphere(radius float32, widthSegments, heightSegments int) *Geometry {
	widthSegments = max(minSphereWidthSegments, widthSegments)
	heightSegments = max(minSphereHeightSegments, heightSegments)

	g := &Geometry{
		Positions: make([]mgl32.Vec3, 0, (widthSegments+1)*(heightSegments+1)),
		Indices:   make([]uint32, 0, widthSegments*heightSegments*6),
	}
	r := float64(radius)
	grid := make([][]uint32, heightSegments+1)
	for iy := 0; iy <= heightSegments; iy++ {
		row := make([]uint32, widthSegments+1)
		theta := float64(iy) / float64(heightSegments) * math.Pi
		sinTheta, cosTheta := math.Sin(theta), math.Cos(theta)
		for ix := 0; ix <= widthSegments; ix++ {
			phi := float64(ix) / float64(widthSegments) * fullTurn
			row[ix] = g.appendPosition(vertex(
				-r*math.Cos(phi)*sinTheta,
				r*cosTheta,
				r*math.Sin(phi)*sinTheta,
			))
		}
		grid[iy] = row
	}

	for iy := 0; iy < heightSegments; iy++ {
		for ix := 0; ix < widthSegments; ix++ {
			a := grid[iy][ix+1]
			b := grid[iy][ix]
			c := grid[iy+1][ix]
			d := grid[iy+1][ix+1]
			// pole rows collapse to a single triangle per quad
			if iy != 0 {
				g.appendTriangle(a, b, d)
			}
			if iy != heightSegments-1 {
				g.appendTriangle(b, c, d)
			}
		}
	}
	return g
}

// Cylinder builds a closed frustum centered at the origin along the Y axis with
// one height segment. A zero radiusTop (or radiusBottom) produces a cone/pyramid
// apex and omits that cap; three radial segments produce a triangular prism.
func Cylinder(radiusTop, radiusBottom, height float32, radialSegments int) *Geometry {
	radialSegments = max(minRadialSegments, radialSegments)
	halfHeight := height / 2
	h := float64(height)

	g := &Geometry{}
	var rows [2][]uint32
	for y := 0; y <= 1; y++ {
		v := float64(y)
		radius := v*(float64(radiusBottom)-float64(radiusTop)) + float64(radiusTop)
		row := make([]uint32, radialSegments+1)
		for x := 0; x <= radialSegments; x++ {
			theta := float64(x) / float64(radialSegments) * fullTurn
			row[x] = g.appendPosition(vertex(
				radius*math.Sin(theta),
				-v*h+h/2,
				radius*math.Cos(theta),
			))
		}
		rows[y] = row
	}
	for x := 0; x < radialSegments; x++ {
		a := rows[0][x]
		b := rows[1][x]
		c := rows[1][x+1]
		d := rows[0][x+1]
		if radiusTop > 0 {
			g.appendTriangle(a, b, d)
		}
		if radiusBottom > 0 {
			g.appendTriangle(b, c, d)
		}
	}

	if radiusTop > 0 {
		g.appendCap(true, radiusTop, halfHeight, radialSegments)
	}
	if radiusBottom > 0 {
		g.appendCap(false, radiusBottom, halfHeight, radialSegments)
	}
	return g
}

// appendCap adds a triangle fan closing the top or bottom of a cylinder.
func (g *Geometry) appendCap(top bool, radius, halfHeight float32, radialSegments int) {
	sign := float32(1)
	if !top {
		sign = -1
	}
	centerStart := uint32(len(g.Positions))
	for x := 1; x <= radialSegments; x++ {
		g.appendPosition(mgl32.Vec3{0, halfHeight * sign, 0})
	}
	centerEnd := uint32(len(g.Positions))
	r := float64(radius)
	for x := 0; x <= radialSegments; x++ {
		theta := float64(x) / float64(radialSegments) * fullTurn
		g.appendPosition(vertex(
			r*math.Sin(theta),
			float64(halfHeight*sign),
			r*math.Cos(theta),
		))
	}
	for x := uint32(0); x < uint32(radialSegments); x++ {
		c := centerStart + x
		i := centerEnd + x
		if top {
			g.appendTriangle(i, i+1, c)
		} else {
			g.appendTriangle(i+1, i, c)
		}
	}
}

// Box builds an axis-aligned box centered at the origin: six faces of four
// vertices each, two triangles per face.
func Box(width, height, depth float32) *Geometry {
	g := &Geometry{
		Positions: make([]mgl32.Vec3, 0, 24),
		Indices:   make([]uint32, 0, 36),
	}
	// axis order (u, v, w), directions and extents per face: +x, -x, +y, -y, +z, -z
	g.appendBoxFace(2, 1, 0, -1, -1, depth, height, width)
	g.appendBoxFace(2, 1, 0, 1, -1, depth, height, -width)
	g.appendBoxFace(0, 2, 1, 1, 1, width, depth, height)
	g.appendBoxFace(0, 2, 1, 1, -1, width, depth, -height)
	g.appendBoxFace(0, 1, 2, 1, -1, width, height, depth)
	g.appendBoxFace(0, 1, 2, -1, -1, width, height, -depth)
	return g
}

// appendBoxFace adds one quad lying on the plane w = depth/2, spanned by axes u
// and v. Signs on udir/vdir/depth select the face orientation.
func (g *Geometry) appendBoxFace(u, v, w int, udir, vdir, width, height, depth float32) {
	start := uint32(len(g.Positions))
	for iy := 0; iy <= 1; iy++ {
		y := float32(iy)*height - height/2
		for ix := 0; ix <= 1; ix++ {
			x := float32(ix)*width - width/2
			var p mgl32.Vec3
			p[u] = x * udir
			p[v] = y * vdir
			p[w] = depth / 2
			g.appendPosition(p)
		}
	}
	a := start
	b := start + 2
	c := start + 3
	d := start + 1
	g.appendTriangle(a, b, d)
	g.appendTriangle(b, c, d)
}
