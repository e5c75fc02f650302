package geometry

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

// DefaultEdgeThreshold is the crease angle, in degrees, above which an edge
// shared by two faces is kept.
const DefaultEdgeThreshold = 1

// edgePrecision is the number of decimal places used when matching vertex
// positions across triangles. Duplicated seam vertices collapse to one key.
const edgePrecision = 1e4

type vertexKey [3]int64

type edgeKey struct {
	from, to vertexKey
}

type pendingEdge struct {
	a, b   uint32
	normal mgl64.Vec3
	open   bool
}

func keyOf(p mgl32.Vec3) vertexKey {
	return vertexKey{
		int64(math.Round(float64(p[0]) * edgePrecision)),
		int64(math.Round(float64(p[1]) * edgePrecision)),
		int64(math.Round(float64(p[2]) * edgePrecision)),
	}
}

// Edges extracts the wireframe outline of the geometry: every edge shared by two
// faces whose normals differ by more than thresholdDegrees, followed by every
// boundary edge (used by a single face) in first-seen order. Degenerate
// triangles are skipped. Positions are matched, not indices, so duplicated
// seam vertices are stitched together.
func (g *Geometry) Edges(thresholdDegrees float32) (EdgeSet, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	thresholdDot := math.Cos(float64(thresholdDegrees) * math.Pi / 180)

	seen := make(map[edgeKey]int, len(g.Indices))
	pending := make([]pendingEdge, 0, len(g.Indices))
	var out EdgeSet

	for t := 0; t+2 < len(g.Indices); t += 3 {
		idx := [3]uint32{g.Indices[t], g.Indices[t+1], g.Indices[t+2]}
		pos := [3]mgl32.Vec3{g.Positions[idx[0]], g.Positions[idx[1]], g.Positions[idx[2]]}
		keys := [3]vertexKey{keyOf(pos[0]), keyOf(pos[1]), keyOf(pos[2])}
		if keys[0] == keys[1] || keys[1] == keys[2] || keys[2] == keys[0] {
			continue
		}
		normal := faceNormal(pos[0], pos[1], pos[2])

		for j := 0; j < 3; j++ {
			next := (j + 1) % 3
			key := edgeKey{keys[j], keys[next]}
			reverse := edgeKey{keys[next], keys[j]}
			if i, ok := seen[reverse]; ok && pending[i].open {
				if normal.Dot(pending[i].normal) <= thresholdDot {
					out = append(out, Edge{A: pos[j], B: pos[next]})
				}
				pending[i].open = false
				continue
			}
			if _, ok := seen[key]; !ok {
				seen[key] = len(pending)
				pending = append(pending, pendingEdge{a: idx[j], b: idx[next], normal: normal, open: true})
			}
		}
	}

	for _, e := range pending {
		if e.open {
			out = append(out, Edge{A: g.Positions[e.a], B: g.Positions[e.b]})
		}
	}
	return out, nil
}
