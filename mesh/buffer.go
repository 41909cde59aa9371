// Package mesh implements the growable vertex buffer that every emitter
// (marching cubes, lathe, extrude-path, grid) writes into, plus the three
// emission primitives exposed to procedural code.
package mesh

import (
	"scenecore/core"
	"scenecore/math"
)

// InitialCapacityVertices is the buffer's starting slot count; growth
// doubles from here rather than relying on Go's append-growth heuristics,
// so capacity is predictable and cheap to reason about at 500k+ vertices.
const InitialCapacityVertices = 300000

// Buffer is three parallel growable float32 arrays plus a vertex counter.
// positions.len() == colors.len() == normals.len() == vertex_count*3 always
// holds. Triangles are implicit: vertices 3k,3k+1,3k+2 form triangle k.
type Buffer struct {
	Positions        []float32
	Colors           []float32
	Normals          []float32
	VertexCount      uint32
	HasCustomNormals bool

	capacity uint32 // in vertices, not floats
}

// NewBuffer allocates a buffer with InitialCapacityVertices slots reserved.
func NewBuffer() *Buffer {
	return &Buffer{
		Positions: make([]float32, 0, InitialCapacityVertices*3),
		Colors:    make([]float32, 0, InitialCapacityVertices*3),
		Normals:   make([]float32, 0, InitialCapacityVertices*3),
		capacity:  InitialCapacityVertices,
	}
}

// ensureCapacity doubles capacity (from InitialCapacityVertices) until at
// least extra more vertex slots are available, preserving emitted order.
func (b *Buffer) ensureCapacity(extra uint32) {
	needed := b.VertexCount + extra
	if needed <= b.capacity {
		return
	}
	newCap := b.capacity
	if newCap == 0 {
		newCap = InitialCapacityVertices
	}
	for newCap < needed {
		newCap *= 2
	}
	b.capacity = newCap
	grown := make([]float32, len(b.Positions), int(newCap)*3)
	copy(grown, b.Positions)
	b.Positions = grown
	grown = make([]float32, len(b.Colors), int(newCap)*3)
	copy(grown, b.Colors)
	b.Colors = grown
	grown = make([]float32, len(b.Normals), int(newCap)*3)
	copy(grown, b.Normals)
	b.Normals = grown
}

func (b *Buffer) appendVertex(p math.Vec3, n math.Vec3, c core.Color) {
	b.Positions = append(b.Positions, p.X, p.Y, p.Z)
	b.Colors = append(b.Colors, c.R, c.G, c.B)
	b.Normals = append(b.Normals, n.X, n.Y, n.Z)
	b.VertexCount++
}

// EmitTriangle appends one triangle with a single color applied to all
// three vertices and no explicit normal (HasCustomNormals is left alone).
func (b *Buffer) EmitTriangle(p1, p2, p3 math.Vec3, color core.Color) {
	b.ensureCapacity(3)
	b.appendVertex(p1, math.Vec3Zero, color)
	b.appendVertex(p2, math.Vec3Zero, color)
	b.appendVertex(p3, math.Vec3Zero, color)
}

// EmitQuad emits two triangles, (p1,p2,p3) and (p1,p3,p4), preserving the
// caller's winding. p1..p4 should already be wound consistently.
func (b *Buffer) EmitQuad(p1, p2, p3, p4 math.Vec3, color core.Color) {
	b.EmitTriangle(p1, p2, p3, color)
	b.EmitTriangle(p1, p3, p4, color)
}

// EmitSmoothTriangle appends one triangle with a per-vertex normal and sets
// HasCustomNormals — used by marching cubes for gradient normals.
func (b *Buffer) EmitSmoothTriangle(p1, n1, p2, n2, p3, n3 math.Vec3, color core.Color) {
	b.ensureCapacity(3)
	b.appendVertex(p1, n1, color)
	b.appendVertex(p2, n2, color)
	b.appendVertex(p3, n3, color)
	b.HasCustomNormals = true
}

// Bounds scans all positions and returns the mesh's AABB; an empty buffer
// yields the zero-valued AABB.
func (b *Buffer) Bounds() math.AABB {
	return math.BoundsFromPositions(b.Positions)
}

// Builder wraps a Buffer with the material hints the procedural code may
// set alongside it; set_material replaces previous values field-by-field.
type Builder struct {
	Buffer   *Buffer
	Material core.MaterialHints
}

// NewBuilder returns a Builder around a freshly allocated Buffer.
func NewBuilder() *Builder {
	return &Builder{Buffer: NewBuffer()}
}

// SetMaterial merges patch into the builder's accumulated material hints.
func (bd *Builder) SetMaterial(patch core.MaterialHints) {
	bd.Material.Apply(patch)
}
