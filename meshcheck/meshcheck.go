// Package meshcheck validates a generated mesh buffer before it's accepted
// into the scene: hard failures (MeshValidationError-worthy) versus soft
// warnings threaded back to the caller alongside a successful result.
package meshcheck

import (
	"fmt"

	"scenecore/math"
	"scenecore/mesh"
)

// degenerateSampleLimit bounds how many triangles the degenerate-area scan
// inspects, so a multi-million-triangle mesh doesn't make validation the
// slow part of generation.
const degenerateSampleLimit = 1000

// degenerateAreaEpsilon is the cross-product-length threshold below which a
// triangle is considered degenerate (collinear or duplicate vertices).
const degenerateAreaEpsilon = 1e-10

// MinVertexCount is the smallest vertex count that doesn't trigger the
// "suspiciously small" warning — one triangle.
const MinVertexCount = 3

// MaxVertexCountHard is the hard ceiling on vertex count: at or above this,
// the mesh is rejected outright.
const MaxVertexCountHard = 500000

// MaxVertexCountWarn is the soft ceiling: at or above this (but below
// MaxVertexCountHard), the mesh is accepted with a warning.
const MaxVertexCountWarn = 100000

// positionMagnitudeWarnThreshold is the fixed sanity threshold for a
// vertex's distance from the origin, independent of the caller's declared
// SceneBounds — it catches a numerically blown-up mesh even when
// SceneBounds happens to be large, and doesn't fire on shapes merely
// outside the small conventional scene volume.
const positionMagnitudeWarnThreshold = 1000

// Result is the outcome of validating a buffer: Errors are fatal (the
// engine facade rejects the generation), Warnings are informational and
// ride along with an otherwise-successful result.
type Result struct {
	Errors   []string
	Warnings []string
}

// OK reports whether the buffer passed validation (no hard errors).
func (r Result) OK() bool {
	return len(r.Errors) == 0
}

// Check runs every validation rule against b. sceneBounds is currently
// unused by any check here (the off-scene warning uses a fixed position
// magnitude threshold instead, independent of the caller's declared
// bounds) but is kept in the signature for callers that scope other
// decisions to it.
func Check(b *mesh.Buffer, sceneBounds math.AABB) Result {
	var res Result

	if b.VertexCount == 0 {
		res.Warnings = append(res.Warnings, "mesh has no vertices: the script emitted no geometry")
		return res
	}
	if b.VertexCount%3 != 0 {
		res.Errors = append(res.Errors, fmt.Sprintf("vertex count %d is not a multiple of 3: buffers must contain whole triangles", b.VertexCount))
	}
	if b.VertexCount < MinVertexCount {
		res.Warnings = append(res.Warnings, fmt.Sprintf("mesh has only %d vertices, suspiciously small", b.VertexCount))
	}
	if b.VertexCount >= MaxVertexCountHard {
		res.Errors = append(res.Errors, fmt.Sprintf("vertex count %d meets or exceeds the hard limit of %d", b.VertexCount, MaxVertexCountHard))
	} else if b.VertexCount >= MaxVertexCountWarn {
		res.Warnings = append(res.Warnings, fmt.Sprintf("vertex count %d meets or exceeds %d, consider a coarser resolution", b.VertexCount, MaxVertexCountWarn))
	}

	checkFinite(b, &res)
	checkPositionMagnitude(b, &res)
	checkDegenerateTriangles(b, &res)

	return res
}

func checkFinite(b *mesh.Buffer, res *Result) {
	nonFinitePositions := 0
	nonFiniteColors := 0
	nonFiniteNormals := 0

	for i := 0; i+2 < len(b.Positions); i += 3 {
		if !finite3(b.Positions[i], b.Positions[i+1], b.Positions[i+2]) {
			nonFinitePositions++
		}
	}
	for i := 0; i+2 < len(b.Colors); i += 3 {
		if !finite3(b.Colors[i], b.Colors[i+1], b.Colors[i+2]) {
			nonFiniteColors++
		}
	}
	if b.HasCustomNormals {
		for i := 0; i+2 < len(b.Normals); i += 3 {
			if !finite3(b.Normals[i], b.Normals[i+1], b.Normals[i+2]) {
				nonFiniteNormals++
			}
		}
	}

	if nonFinitePositions > 0 {
		res.Errors = append(res.Errors, fmt.Sprintf("%d vertex positions are NaN or infinite", nonFinitePositions))
	}
	if nonFiniteColors > 0 {
		res.Errors = append(res.Errors, fmt.Sprintf("%d vertex colors are NaN or infinite", nonFiniteColors))
	}
	if nonFiniteNormals > 0 {
		res.Errors = append(res.Errors, fmt.Sprintf("%d vertex normals are NaN or infinite", nonFiniteNormals))
	}
}

// checkPositionMagnitude flags vertices whose distance from the origin
// exceeds the fixed sanity threshold — a scene-bounds-independent check,
// since a legitimately large SceneBounds should not suppress the warning
// for a mesh whose coordinates have blown up numerically.
func checkPositionMagnitude(b *mesh.Buffer, res *Result) {
	outside := 0
	for i := 0; i+2 < len(b.Positions); i += 3 {
		p := math.Vec3{X: b.Positions[i], Y: b.Positions[i+1], Z: b.Positions[i+2]}
		if !p.IsFinite() {
			continue
		}
		if p.Length() > positionMagnitudeWarnThreshold {
			outside++
		}
	}
	if outside > 0 {
		res.Warnings = append(res.Warnings, fmt.Sprintf("%d vertices exceed a position magnitude of %d from the origin", outside, positionMagnitudeWarnThreshold))
	}
}

func checkDegenerateTriangles(b *mesh.Buffer, res *Result) {
	triCount := int(b.VertexCount) / 3
	sampled := triCount
	if sampled > degenerateSampleLimit {
		sampled = degenerateSampleLimit
	}

	degenerate := 0
	for t := 0; t < sampled; t++ {
		i := t * 9
		if i+8 >= len(b.Positions) {
			break
		}
		p0 := math.Vec3{X: b.Positions[i], Y: b.Positions[i+1], Z: b.Positions[i+2]}
		p1 := math.Vec3{X: b.Positions[i+3], Y: b.Positions[i+4], Z: b.Positions[i+5]}
		p2 := math.Vec3{X: b.Positions[i+6], Y: b.Positions[i+7], Z: b.Positions[i+8]}

		cross := p1.Sub(p0).Cross(p2.Sub(p0))
		if cross.LengthSqr() < degenerateAreaEpsilon*degenerateAreaEpsilon {
			degenerate++
		}
	}

	if degenerate > 0 {
		res.Warnings = append(res.Warnings, fmt.Sprintf("%d of %d sampled triangles are degenerate (near-zero area)", degenerate, sampled))
	}
}

func finite3(x, y, z float32) bool {
	v := math.Vec3{X: x, Y: y, Z: z}
	return v.IsFinite()
}
