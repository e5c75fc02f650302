package assembler

import (
	"errors"
	"image/color"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"odd-one-out/internal/scene"
	"odd-one-out/internal/shapes"
)

var red = color.RGBA{0xff, 0, 0, 0xff}

func mustDescriptor(t *testing.T, k shapes.Kind) shapes.Descriptor {
	t.Helper()
	d, err := shapes.New(k)
	if err != nil {
		t.Fatal(err)
	}
	return d
}

func TestCreate(t *testing.T) {
	s := scene.New()
	a := New(s)
	g, err := a.Create(mustDescriptor(t, shapes.Cylinder), red, -50, 30)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if g.Position != (mgl32.Vec3{-50, 30, 0}) || !g.Visible {
		t.Fatalf("group %+v", g)
	}
	if g.Solid.Material.Color != red || !g.Solid.Material.PolygonOffset {
		t.Fatalf("solid material %+v", g.Solid.Material)
	}
	if g.Outline.Material.Color != OutlineColor {
		t.Fatalf("outline color %v", g.Outline.Material.Color)
	}
	if n := len(g.Outline.Geometry.Segments); n != 72 {
		t.Fatalf("cylinder outline has %d segments want 72", n)
	}
	if got := s.Groups(); len(got) != 1 || got[0] != g {
		t.Fatalf("scene groups %v", got)
	}
	if s.Tracker().LiveCount() != 4 {
		t.Fatalf("live handles %d", s.Tracker().LiveCount())
	}
}

func TestCreateBoxKeepsAllEdges(t *testing.T) {
	a := New(scene.New())
	g, err := a.Create(mustDescriptor(t, shapes.Box), red, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if n := len(g.Outline.Geometry.Segments); n != 12 {
		t.Fatalf("box outline has %d segments want 12", n)
	}
}

func TestCreateRejectsUnknownKind(t *testing.T) {
	s := scene.New()
	a := New(s)
	if _, err := a.Create(shapes.Descriptor{Kind: shapes.Kind(42)}, red, 0, 0); !errors.Is(err, shapes.ErrUnknownKind) {
		t.Fatalf("got %v want ErrUnknownKind", err)
	}
	if s.Tracker().Created() != 0 || len(s.Groups()) != 0 {
		t.Fatalf("failed create left resources behind")
	}
}

func TestDisposeAllReleasesEverything(t *testing.T) {
	s := scene.New()
	a := New(s)
	var created []*scene.Group
	for _, k := range shapes.Kinds() {
		g, err := a.Create(mustDescriptor(t, k), red, 0, 0)
		if err != nil {
			t.Fatal(err)
		}
		created = append(created, g)
	}
	a.DisposeAll()

	if len(a.Groups()) != 0 || len(s.Groups()) != 0 {
		t.Fatalf("groups left: tracked %d scene %d", len(a.Groups()), len(s.Groups()))
	}
	tr := s.Tracker()
	if tr.Created() != 4*len(created) || tr.LiveCount() != 0 {
		t.Fatalf("created=%d live=%d", tr.Created(), tr.LiveCount())
	}
	for _, g := range created {
		if g.Visible {
			t.Errorf("group %d still visible", g.ID)
		}
	}
}

func TestSpin(t *testing.T) {
	a := New(scene.New())
	g, _ := a.Create(mustDescriptor(t, shapes.Spike), red, 0, 0)
	a.Spin(0.01)
	a.Spin(0.01)
	if g.Rotation != (mgl32.Vec3{0.02, 0.02, 0}) {
		t.Fatalf("rotation %v", g.Rotation)
	}
}
