// Package scene models the generated-layer store: each successful
// generation becomes a Layer with its mesh buffer, material, and bounds,
// addressable by a monotonically increasing id, plus spatial-relationship
// queries between layers.
package scene

import (
	"fmt"
	"sync/atomic"

	"scenecore/core"
	"scenecore/math"
	"scenecore/mesh"
)

// nextLayerSeq is the zero-based counter layer ids are formatted from:
// the first layer created in a process is "layer-0", the next "layer-1",
// and so on.
var nextLayerSeq uint64

// LayerMeta is the lightweight, copyable summary of a Layer returned by
// list_meta — no mesh data, safe to hand back across the sandbox boundary.
type LayerMeta struct {
	ID          string
	seq         uint64
	VertexCount uint32
	Bounds      math.AABB
	Material    core.MaterialHints
}

// Layer is one generated piece of geometry: its buffer, accumulated
// material hints, and cached bounds.
type Layer struct {
	ID       string
	seq      uint64 // insertion order, for list_meta/nearest tie-breaking
	Buffer   *mesh.Buffer
	Material core.MaterialHints
	Bounds   math.AABB
}

// NewLayer assigns the next id and computes bounds from the builder's
// buffer at the moment of creation; later mutation of the buffer (there is
// none, in practice — builders are consumed once) would not update Bounds.
func NewLayer(b *mesh.Builder) *Layer {
	seq := atomic.AddUint64(&nextLayerSeq, 1) - 1
	return &Layer{
		ID:       fmt.Sprintf("layer-%d", seq),
		seq:      seq,
		Buffer:   b.Buffer,
		Material: b.Material,
		Bounds:   b.Buffer.Bounds(),
	}
}

// Meta projects a Layer down to its LayerMeta summary.
func (l *Layer) Meta() LayerMeta {
	return LayerMeta{
		ID:          l.ID,
		seq:         l.seq,
		VertexCount: l.Buffer.VertexCount,
		Bounds:      l.Bounds,
		Material:    l.Material,
	}
}

// SceneBounds is the user-declared working volume generated geometry is
// expected (but not enforced) to stay within. meshcheck's off-scene
// warning does not consult it: that check uses a fixed distance-from-origin
// threshold instead.
type SceneBounds struct {
	Min, Max math.Vec3
}

// Contains reports whether p falls within the declared scene bounds.
func (s SceneBounds) Contains(p math.Vec3) bool {
	return p.X >= s.Min.X && p.X <= s.Max.X &&
		p.Y >= s.Min.Y && p.Y <= s.Max.Y &&
		p.Z >= s.Min.Z && p.Z <= s.Max.Z
}

// SpatialRelationship is a pairwise layer comparison: either the two
// layers' AABBs overlap with a given penetration axis/depth, or they're
// separated by a gap on a given axis.
type SpatialRelationship struct {
	LayerA, LayerB string
	Overlapping    bool
	Axis           string
	Magnitude      float32
}

// Relationship computes the spatial relationship between two layers'
// bounds: overlap penetration if they intersect on every axis, or
// separating gap otherwise.
func Relationship(a, b *Layer) SpatialRelationship {
	rel := SpatialRelationship{LayerA: a.ID, LayerB: b.ID}
	if a.Bounds.Overlaps(b.Bounds) {
		pen := math.Penetration(a.Bounds, b.Bounds)
		rel.Overlapping = true
		rel.Axis = math.AxisName(pen.Axis)
		rel.Magnitude = pen.Magnitude
		return rel
	}
	gap := math.Gap(a.Bounds, b.Bounds)
	rel.Overlapping = false
	rel.Axis = math.AxisName(gap.Axis)
	rel.Magnitude = gap.Magnitude
	return rel
}
