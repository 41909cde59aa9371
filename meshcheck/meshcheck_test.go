package meshcheck

import (
	stdmath "math"
	"testing"

	"scenecore/core"
	"scenecore/math"
	"scenecore/mesh"
)

func TestCheckEmptyBufferWarnsOnly(t *testing.T) {
	b := mesh.NewBuffer()
	res := Check(b, math.AABB{})
	if !res.OK() {
		t.Errorf("empty buffer should not be a hard error, got %v", res.Errors)
	}
	if len(res.Warnings) == 0 {
		t.Error("expected a warning for an empty mesh")
	}
}

func TestCheckHealthyTriangle(t *testing.T) {
	b := mesh.NewBuffer()
	b.EmitTriangle(
		math.Vec3{X: 0, Y: 0, Z: 0},
		math.Vec3{X: 1, Y: 0, Z: 0},
		math.Vec3{X: 0, Y: 1, Z: 0},
		core.ColorWhite,
	)
	res := Check(b, math.AABB{Min: math.Vec3{X: -10, Y: -10, Z: -10}, Max: math.Vec3{X: 10, Y: 10, Z: 10}})
	if !res.OK() {
		t.Errorf("expected a healthy triangle to pass, got errors %v", res.Errors)
	}
}

func TestCheckNonFiniteVertexIsError(t *testing.T) {
	b := mesh.NewBuffer()
	nan := float32(stdmath.NaN())
	b.EmitTriangle(
		math.Vec3{X: nan, Y: 0, Z: 0},
		math.Vec3{X: 1, Y: 0, Z: 0},
		math.Vec3{X: 0, Y: 1, Z: 0},
		core.ColorWhite,
	)
	res := Check(b, math.AABB{})
	if res.OK() {
		t.Error("expected NaN position to be a hard error")
	}
}

func TestCheckOffSceneVertexWarns(t *testing.T) {
	b := mesh.NewBuffer()
	b.EmitTriangle(
		math.Vec3{X: 1000, Y: 0, Z: 0},
		math.Vec3{X: 1001, Y: 0, Z: 0},
		math.Vec3{X: 1000, Y: 1, Z: 0},
		core.ColorWhite,
	)
	res := Check(b, math.AABB{Min: math.Vec3{X: -1, Y: -1, Z: -1}, Max: math.Vec3{X: 1, Y: 1, Z: 1}})
	if !res.OK() {
		t.Errorf("off-scene geometry should warn, not error, got %v", res.Errors)
	}
	if len(res.Warnings) == 0 {
		t.Error("expected an off-scene warning")
	}
}

func TestCheckPositionMagnitudeIgnoresSceneBounds(t *testing.T) {
	b := mesh.NewBuffer()
	b.EmitTriangle(
		math.Vec3{X: 2000, Y: 0, Z: 0},
		math.Vec3{X: 2001, Y: 0, Z: 0},
		math.Vec3{X: 2000, Y: 1, Z: 0},
		core.ColorWhite,
	)
	// A huge declared SceneBounds must not suppress the magnitude warning.
	res := Check(b, math.AABB{Min: math.Vec3{X: -100000, Y: -100000, Z: -100000}, Max: math.Vec3{X: 100000, Y: 100000, Z: 100000}})
	if len(res.Warnings) == 0 {
		t.Error("expected a position-magnitude warning regardless of declared scene bounds")
	}
}

func TestCheckSmallMeshInsideSmallSceneBoundsDoesNotWarnOffScene(t *testing.T) {
	b := mesh.NewBuffer()
	b.EmitTriangle(
		math.Vec3{X: 5, Y: 0, Z: 0},
		math.Vec3{X: 6, Y: 0, Z: 0},
		math.Vec3{X: 5, Y: 1, Z: 0},
		core.ColorWhite,
	)
	// Outside a small declared SceneBounds, but well under the fixed
	// magnitude threshold — should not warn.
	res := Check(b, math.AABB{Min: math.Vec3{X: -1, Y: -1, Z: -1}, Max: math.Vec3{X: 1, Y: 1, Z: 1}})
	if len(res.Warnings) != 0 {
		t.Errorf("expected no warnings for geometry well under the magnitude threshold, got %v", res.Warnings)
	}
}

func TestCheckVertexCountHardLimitIsError(t *testing.T) {
	// 500001 is both >= MaxVertexCountHard and a clean multiple of 3, so the
	// hard-limit check (not the unrelated multiple-of-3 check) is what's
	// under test here.
	b := &mesh.Buffer{
		VertexCount: MaxVertexCountHard + 1,
	}
	res := Check(b, math.AABB{})
	if res.OK() {
		t.Error("expected vertex count at the hard limit to be an error")
	}
}

func TestCheckVertexCountSoftLimitIsWarning(t *testing.T) {
	// 100002 is both >= MaxVertexCountWarn and a clean multiple of 3.
	b := &mesh.Buffer{
		VertexCount: MaxVertexCountWarn + 2,
	}
	res := Check(b, math.AABB{})
	if !res.OK() {
		t.Errorf("expected vertex count at the soft limit to still pass, got errors %v", res.Errors)
	}
	if len(res.Warnings) == 0 {
		t.Error("expected a warning for vertex count at the soft limit")
	}
}

func TestCheckDegenerateTriangleWarns(t *testing.T) {
	b := mesh.NewBuffer()
	b.EmitTriangle(
		math.Vec3{X: 0, Y: 0, Z: 0},
		math.Vec3{X: 0, Y: 0, Z: 0},
		math.Vec3{X: 0, Y: 0, Z: 0},
		core.ColorWhite,
	)
	res := Check(b, math.AABB{})
	found := false
	for _, w := range res.Warnings {
		if w != "" {
			found = true
		}
	}
	if !found {
		t.Error("expected at least one warning for a degenerate triangle")
	}
}

func TestCheckOddVertexCountIsError(t *testing.T) {
	b := &mesh.Buffer{
		Positions:   []float32{0, 0, 0, 1, 0, 0},
		Colors:      []float32{1, 1, 1, 1, 1, 1},
		Normals:     []float32{0, 0, 0, 0, 0, 0},
		VertexCount: 2,
	}
	res := Check(b, math.AABB{})
	if res.OK() {
		t.Error("expected a non-multiple-of-3 vertex count to be an error")
	}
}
