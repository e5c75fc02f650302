package geometry

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestEdgesCounts(t *testing.T) {
	tests := []struct {
		name string
		g    *Geometry
		want int
	}{
		// 12 box edges; face diagonals are coplanar and dropped
		{"box", Box(30, 15, 10), 12},
		// 32 side creases plus the top and bottom rims
		{"cylinder", Cylinder(10, 10, 30, 32), 32 * 3},
		// 6 slant edges plus the base rim
		{"hexagonal cone", Cylinder(0, 10, 30, 6), 12},
		// inverted square pyramid
		{"spike", Cylinder(10, 0, 25, 4), 8},
		// triangular prism
		{"prism", Cylinder(10, 10, 40, 3), 9},
		// 31 latitude rings plus the meridian segments between them; the pole
		// fans crease under 1°, so their meridian segments are dropped
		{"sphere", Sphere(10, 32, 32), 32*31 + 32*30},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			edges, err := tt.g.Edges(DefaultEdgeThreshold)
			if err != nil {
				t.Fatalf("edges: %v", err)
			}
			if len(edges) != tt.want {
				t.Fatalf("got %d edges want %d", len(edges), tt.want)
			}
		})
	}
}

func TestEdgesOpenSurfaceKeepsBoundary(t *testing.T) {
	// a single quad split into two coplanar triangles: only the 4 border edges remain
	g := &Geometry{
		Positions: []mgl32.Vec3{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0}},
		Indices:   []uint32{0, 1, 2, 0, 2, 3},
	}
	edges, err := g.Edges(DefaultEdgeThreshold)
	if err != nil {
		t.Fatal(err)
	}
	if len(edges) != 4 {
		t.Fatalf("got %d edges want 4: %v", len(edges), edges)
	}
	for _, e := range edges {
		if (e.A == mgl32.Vec3{0, 0, 0} && e.B == mgl32.Vec3{1, 1, 0}) ||
			(e.A == mgl32.Vec3{1, 1, 0} && e.B == mgl32.Vec3{0, 0, 0}) {
			t.Fatalf("diagonal should not be an edge")
		}
	}
}

func TestEdgesSkipDegenerateTriangles(t *testing.T) {
	g := &Geometry{
		Positions: []mgl32.Vec3{{0, 0, 0}, {0, 0, 0}, {1, 0, 0}},
		Indices:   []uint32{0, 1, 2},
	}
	edges, err := g.Edges(DefaultEdgeThreshold)
	if err != nil {
		t.Fatal(err)
	}
	if len(edges) != 0 {
		t.Fatalf("expected no edges from a degenerate triangle, got %v", edges)
	}
}

func TestEdgesThresholdDropsShallowCreases(t *testing.T) {
	// cylinder side creases are 11.25° apart; a 20° threshold removes them
	edges, err := Cylinder(10, 10, 30, 32).Edges(20)
	if err != nil {
		t.Fatal(err)
	}
	if len(edges) != 64 {
		t.Fatalf("got %d edges want only the 64 rim edges", len(edges))
	}
}
