package scene

import (
	"image/color"
	"sync"

	"odd-one-out/internal/geometry"
)

// ResourceKind tells geometry and material handles apart in the tracker.
type ResourceKind int

const (
	GeometryResource ResourceKind = iota
	MaterialResource
)

func (k ResourceKind) String() string {
	if k == MaterialResource {
		return "material"
	}
	return "geometry"
}

// Tracker records every resource handle ever created and whether it has been
// released. A handle is live from creation until its Dispose.
type Tracker struct {
	mu       sync.Mutex
	next     int
	created  int
	released map[int]bool
	kinds    map[int]ResourceKind
}

// NewTracker returns an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{released: make(map[int]bool), kinds: make(map[int]ResourceKind)}
}

func (t *Tracker) acquire(kind ResourceKind) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.next++
	t.created++
	t.released[t.next] = false
	t.kinds[t.next] = kind
	return t.next
}

func (t *Tracker) release(id int) {
	t.mu.Lock()
	t.released[id] = true
	t.mu.Unlock()
}

// Created returns the number of handles ever created.
func (t *Tracker) Created() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.created
}

// Live returns the number of handles not yet released, per kind.
func (t *Tracker) Live() map[ResourceKind]int {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := map[ResourceKind]int{}
	for id, done := range t.released {
		if !done {
			out[t.kinds[id]]++
		}
	}
	return out
}

// LiveCount returns the total number of unreleased handles.
func (t *Tracker) LiveCount() int {
	n := 0
	for _, c := range t.Live() {
		n += c
	}
	return n
}

// Released reports whether the handle id was released. Unknown ids report false.
func (t *Tracker) Released(id int) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.released[id]
}

type resource struct {
	id       int
	tracker  *Tracker
	released bool
}

// ID returns the tracker handle.
func (r *resource) ID() int { return r.id }

// Released reports whether Dispose was called.
func (r *resource) Released() bool { return r.released }

// Dispose releases the handle. Repeated calls are no-ops.
func (r *resource) Dispose() {
	if r.released {
		return
	}
	r.released = true
	r.tracker.release(r.id)
}

// BufferGeometry is the drawable data of a mesh or a line set: triangles for
// solids, segments for outlines.
type BufferGeometry struct {
	resource
	Triangles *geometry.Geometry
	Segments  geometry.EdgeSet
}

// Material describes how a mesh or line set is colored. Solids use a flat,
// unlit color.
type Material struct {
	resource
	Color color.RGBA
	// PolygonOffset pushes solid fragments back so coplanar lines win the depth test.
	PolygonOffset bool
	OffsetFactor  float32
	OffsetUnits   float32
}

// Mesh is an opaque solid.
type Mesh struct {
	Geometry *BufferGeometry
	Material *Material
}

// LineSegments draws each pair of points as a separate line.
type LineSegments struct {
	Geometry *BufferGeometry
	Material *Material
}
