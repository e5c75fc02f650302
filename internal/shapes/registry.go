package shapes

import (
	"fmt"

	"odd-one-out/internal/geometry"
	"odd-one-out/internal/outline"
)

// Resolution of the round solids. The outline tolerances are tuned for 32.
const (
	defaultSphereSegments   = 32
	defaultCylinderSegments = 32
)

// Descriptor is an immutable description of a solid: its kind plus the
// parameters its geometry generator needs. Sizes are world units.
type Descriptor struct {
	Kind Kind

	Radius         float32 // sphere
	WidthSegments  int     // sphere
	HeightSegments int     // sphere

	RadiusTop      float32 // cylinder family
	RadiusBottom   float32 // cylinder family
	Height         float32 // cylinder family and box
	RadialSegments int     // cylinder family

	Width float32 // box
	Depth float32 // box
}

// factories maps each kind to its descriptor constructor. The array is sized by
// kindCount so a new kind without an entry is caught by TestEveryKindHasFactory.
var factories = [kindCount]func() Descriptor{
	Sphere: func() Descriptor {
		return Descriptor{Kind: Sphere, Radius: 10, WidthSegments: defaultSphereSegments, HeightSegments: defaultSphereSegments}
	},
	Cylinder: func() Descriptor {
		return Descriptor{Kind: Cylinder, RadiusTop: 10, RadiusBottom: 10, Height: 30, RadialSegments: defaultCylinderSegments}
	},
	Cone: func() Descriptor {
		return Descriptor{Kind: Cone, RadiusTop: 0, RadiusBottom: 10, Height: 30, RadialSegments: 6}
	},
	Box: func() Descriptor {
		return Descriptor{Kind: Box, Width: 30, Height: 15, Depth: 10}
	},
	Spike: func() Descriptor {
		return Descriptor{Kind: Spike, RadiusTop: 10, RadiusBottom: 0, Height: 25, RadialSegments: 4}
	},
	Triangle: func() Descriptor {
		return Descriptor{Kind: Triangle, RadiusTop: 10, RadiusBottom: 10, Height: 40, RadialSegments: 3}
	},
}

// New returns the default descriptor for k.
func New(k Kind) (Descriptor, error) {
	if !k.Valid() || factories[k] == nil {
		return Descriptor{}, fmt.Errorf("new %v: %w", k, ErrUnknownKind)
	}
	return factories[k](), nil
}

// Geometry builds the triangle geometry for d.
func (d Descriptor) Geometry() (*geometry.Geometry, error) {
	switch d.Kind {
	case Sphere:
		return geometry.Sphere(d.Radius, d.WidthSegments, d.HeightSegments), nil
	case Cylinder, Cone, Spike, Triangle:
		return geometry.Cylinder(d.RadiusTop, d.RadiusBottom, d.Height, d.RadialSegments), nil
	case Box:
		return geometry.Box(d.Width, d.Height, d.Depth), nil
	default:
		return nil, fmt.Errorf("geometry for %v: %w", d.Kind, ErrUnknownKind)
	}
}

// Outline returns the edge filtering policy for d. Only the smooth solids get a
// sparse outline; prisms and pyramids keep every crease.
func (d Descriptor) Outline() outline.Kind {
	switch d.Kind {
	case Sphere:
		return outline.Sphere
	case Cylinder:
		return outline.Cylinder
	default:
		return outline.Other
	}
}
