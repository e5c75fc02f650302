package shapes

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownKind is returned when a shape name or index does not map to a Kind.
var ErrUnknownKind = errors.New("unknown shape kind")

// Kind identifies one of the game's primitive solids.
type Kind int

const (
	Sphere Kind = iota
	Cylinder
	Cone     // hexagonal pyramid, apex up
	Box      // flat cuboid
	Spike    // square pyramid, apex down
	Triangle // triangular prism
	kindCount
)

var kindNames = [kindCount]string{
	Sphere:   "sphere",
	Cylinder: "cylinder",
	Cone:     "cone",
	Box:      "box",
	Spike:    "spike",
	Triangle: "triangle",
}

// Kinds returns every kind in index order.
func Kinds() []Kind {
	out := make([]Kind, kindCount)
	for i := range out {
		out[i] = Kind(i)
	}
	return out
}

// Valid reports whether k is one of the defined kinds.
func (k Kind) Valid() bool {
	return k >= 0 && k < kindCount
}

func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind maps a catalog name (case-insensitive) to a Kind.
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range kindNames {
		if n == name {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("%q: %w", s, ErrUnknownKind)
}

// UnmarshalText lets catalog files name kinds directly.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// MarshalText writes the catalog name of k.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("%d: %w", int(k), ErrUnknownKind)
	}
	return []byte(kindNames[k]), nil
}
