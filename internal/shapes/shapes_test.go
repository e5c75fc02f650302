package shapes

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"odd-one-out/internal/outline"
)

func TestEveryKindHasFactory(t *testing.T) {
	for _, k := range Kinds() {
		d, err := New(k)
		if err != nil {
			t.Fatalf("%s: %v", k, err)
		}
		if d.Kind != k {
			t.Fatalf("%s: descriptor kind %s", k, d.Kind)
		}
		g, err := d.Geometry()
		if err != nil {
			t.Fatalf("%s geometry: %v", k, err)
		}
		if err := g.Validate(); err != nil {
			t.Fatalf("%s geometry invalid: %v", k, err)
		}
		if g.TriangleCount() == 0 {
			t.Fatalf("%s: empty geometry", k)
		}
	}
}

func TestNewRejectsUnknownKind(t *testing.T) {
	for _, k := range []Kind{-1, kindCount, 99} {
		if _, err := New(k); !errors.Is(err, ErrUnknownKind) {
			t.Fatalf("New(%d): got %v want ErrUnknownKind", int(k), err)
		}
	}
}

func TestOutlinePolicy(t *testing.T) {
	want := map[Kind]outline.Kind{
		Sphere:   outline.Sphere,
		Cylinder: outline.Cylinder,
		Cone:     outline.Other,
		Box:      outline.Other,
		Spike:    outline.Other,
		Triangle: outline.Other,
	}
	for k, w := range want {
		d, _ := New(k)
		if got := d.Outline(); got != w {
			t.Errorf("%s: outline %s want %s", k, got, w)
		}
	}
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		in      string
		want    Kind
		wantErr bool
	}{
		{"sphere", Sphere, false},
		{"  Cone ", Cone, false},
		{"TRIANGLE", Triangle, false},
		{"torus", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseKind(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownKind) {
					t.Fatalf("got %v want ErrUnknownKind", err)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Fatalf("got %v, %v want %v", got, err, tt.want)
			}
		})
	}
}

func TestDefaultCatalog(t *testing.T) {
	c := DefaultCatalog()
	if len(c.Entries) != 6 {
		t.Fatalf("got %d entries", len(c.Entries))
	}
	wantKinds := []Kind{Sphere, Cylinder, Cone, Box, Spike, Triangle}
	wantColors := []color.RGBA{
		{0x00, 0x00, 0xff, 0xff},
		{0x93, 0x70, 0xdb, 0xff},
		{0x00, 0x80, 0x00, 0xff},
		{0xff, 0xa5, 0x00, 0xff},
		{0x87, 0xce, 0xeb, 0xff},
		{0xff, 0xff, 0xf1, 0xff},
	}
	for i, e := range c.Entries {
		if e.Kind != wantKinds[i] {
			t.Errorf("entry %d kind %s want %s", i, e.Kind, wantKinds[i])
		}
		if e.Color != wantColors[i] {
			t.Errorf("entry %d color %v want %v", i, e.Color, wantColors[i])
		}
	}
	if c.Slots != [DecoyCount]float32{-50, 0, 50} || c.SlotY != 0 {
		t.Errorf("slots %v y=%v", c.Slots, c.SlotY)
	}
	if c.Reveal != [2]float32{0, 50} {
		t.Errorf("reveal %v", c.Reveal)
	}
	if c.Entries[0].Reference != [2]float32{-50, 30} || c.Entries[5].Reference != [2]float32{50, -30} {
		t.Errorf("reference positions %v %v", c.Entries[0].Reference, c.Entries[5].Reference)
	}
}

func TestParseCatalogRejectsShortList(t *testing.T) {
	data := []byte("shapes:\n  - kind: sphere\n    color: blue\nslots: [-50, 0, 50]\n")
	if _, err := ParseCatalog(data); !errors.Is(err, ErrInvalidCatalog) {
		t.Fatalf("got %v want ErrInvalidCatalog", err)
	}
}

func TestParseCatalogRejectsUnknownKind(t *testing.T) {
	data := []byte("shapes:\n  - kind: torus\n    color: blue\n")
	if _, err := ParseCatalog(data); err == nil {
		t.Fatalf("expected an error for an unknown kind")
	}
}

func TestLoadCatalog(t *testing.T) {
	c, err := LoadCatalog("")
	if err != nil || len(c.Entries) != 6 {
		t.Fatalf("empty path: %v %v", c, err)
	}

	path := filepath.Join(t.TempDir(), "shapes.yaml")
	if err := os.WriteFile(path, defaultCatalog, 0o644); err != nil {
		t.Fatal(err)
	}
	c, err = LoadCatalog(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.Entries[3].Kind != Box {
		t.Fatalf("entry 3 is %s", c.Entries[3].Kind)
	}

	if _, err := LoadCatalog(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected an error for a missing file")
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    color.RGBA
		wantErr bool
	}{
		{"skyblue", color.RGBA{0x87, 0xce, 0xeb, 0xff}, false},
		{"MediumPurple", color.RGBA{0x93, 0x70, 0xdb, 0xff}, false},
		{"#fffff1", color.RGBA{0xff, 0xff, 0xf1, 0xff}, false},
		{"0x008000", color.RGBA{0x00, 0x80, 0x00, 0xff}, false},
		{"#f0a", color.RGBA{0xff, 0x00, 0xaa, 0xff}, false},
		{"notacolor", color.RGBA{}, true},
		{"#12345", color.RGBA{}, true},
		{"#gggggg", color.RGBA{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %v", got)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Fatalf("got %v, %v want %v", got, err, tt.want)
			}
		})
	}
}
