package shapes

import (
	_ "embed"
	"errors"
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

//go:embed shapes.yaml
var defaultCatalog []byte

// DecoyCount is the number of decoys shown in a round.
const DecoyCount = 3

// minEntries: the answer plus five others, because decoy colors are taken from
// the third to fifth remaining index.
const minEntries = 6

// ErrInvalidCatalog is returned when a catalog cannot drive a round.
var ErrInvalidCatalog = errors.New("invalid shape catalog")

// PrimitiveDef is one catalog entry as written in YAML.
type PrimitiveDef struct {
	Kind      Kind       `yaml:"kind"`
	Color     string     `yaml:"color"`
	Reference [2]float32 `yaml:"reference"`
}

// Entry is a resolved catalog entry.
type Entry struct {
	Kind      Kind
	ColorName string
	Color     color.RGBA
	// Reference is the entry's position on the start-up reference sheet.
	Reference [2]float32
}

// Catalog is the fixed shape set the game draws from. Entry indices are the
// answer index space.
type Catalog struct {
	Entries []Entry
	Slots   [DecoyCount]float32
	SlotY   float32
	Reveal  [2]float32
}

type catalogFile struct {
	Shapes []PrimitiveDef      `yaml:"shapes"`
	Slots  [DecoyCount]float32 `yaml:"slots"`
	SlotY  float32             `yaml:"slot_y"`
	Reveal [2]float32          `yaml:"reveal"`
}

// DefaultCatalog returns the built-in six-shape catalog.
func DefaultCatalog() *Catalog {
	c, err := ParseCatalog(defaultCatalog)
	if err != nil {
		panic(fmt.Sprintf("embedded catalog: %v", err))
	}
	return c
}

// LoadCatalog reads a catalog file. An empty path returns the built-in catalog.
func LoadCatalog(path string) (*Catalog, error) {
	if path == "" {
		return DefaultCatalog(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	c, err := ParseCatalog(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// ParseCatalog decodes and validates catalog YAML.
func ParseCatalog(data []byte) (*Catalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if len(f.Shapes) < minEntries {
		return nil, fmt.Errorf("%d shapes, need at least %d: %w", len(f.Shapes), minEntries, ErrInvalidCatalog)
	}
	c := &Catalog{Slots: f.Slots, SlotY: f.SlotY, Reveal: f.Reveal}
	for i, def := range f.Shapes {
		rgba, err := ParseColor(def.Color)
		if err != nil {
			return nil, fmt.Errorf("shape %d: %w", i, err)
		}
		c.Entries = append(c.Entries, Entry{
			Kind:      def.Kind,
			ColorName: def.Color,
			Color:     rgba,
			Reference: def.Reference,
		})
	}
	return c, nil
}

// ParseColor accepts an SVG color name ("skyblue"), "#rrggbb", "#rgb" or
// "0xrrggbb". The result is opaque.
func ParseColor(s string) (color.RGBA, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := colornames.Map[s]; ok {
		return c, nil
	}
	hex := strings.TrimPrefix(strings.TrimPrefix(s, "#"), "0x")
	if hex == s && !strings.HasPrefix(s, "#") {
		return color.RGBA{}, fmt.Errorf("unknown color %q", s)
	}
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("bad hex color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("bad hex color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}
