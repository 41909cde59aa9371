package sweep

import (
	stdmath "math"
	"testing"

	"scenecore/core"
	"scenecore/math"
	"scenecore/mesh"
)

func TestLatheShortProfileEmitsNothing(t *testing.T) {
	b := mesh.NewBuilder()
	Lathe(b, math.Vec3{}, []math.Vec2{{X: 1, Y: 0}}, 8, 0, core.ColorWhite)
	if b.Buffer.VertexCount != 0 {
		t.Errorf("expected no geometry for a single-point profile, got %d vertices", b.Buffer.VertexCount)
	}
}

func TestLatheCylinderProducesQuads(t *testing.T) {
	b := mesh.NewBuilder()
	profile := []math.Vec2{{X: 1, Y: -1}, {X: 1, Y: 1}}
	Lathe(b, math.Vec3{}, profile, 12, 0, core.ColorWhite)
	if b.Buffer.VertexCount == 0 {
		t.Fatal("expected a ring of quads for a two-point cylindrical profile")
	}
	if b.Buffer.VertexCount != 12*2*3 {
		t.Errorf("expected %d vertices, got %d", 12*2*3, b.Buffer.VertexCount)
	}
}

func TestLatheWithPoleEmitsTriangleFan(t *testing.T) {
	b := mesh.NewBuilder()
	profile := []math.Vec2{{X: 0, Y: 1}, {X: 1, Y: 0}}
	Lathe(b, math.Vec3{}, profile, 10, 0, core.ColorWhite)
	if b.Buffer.VertexCount != 10*3 {
		t.Errorf("expected a 10-triangle fan (%d vertices), got %d", 10*3, b.Buffer.VertexCount)
	}
}

func TestLatheAppliesCenterOffset(t *testing.T) {
	b := mesh.NewBuilder()
	profile := []math.Vec2{{X: 1, Y: -1}, {X: 1, Y: 1}}
	center := math.Vec3{X: 5, Y: 10, Z: -3}
	Lathe(b, center, profile, 12, 0, core.ColorWhite)

	minY, maxY := b.Buffer.Positions[1], b.Buffer.Positions[1]
	for i := uint32(0); i < b.Buffer.VertexCount; i++ {
		x := b.Buffer.Positions[i*3]
		y := b.Buffer.Positions[i*3+1]
		z := b.Buffer.Positions[i*3+2]
		if y < minY {
			minY = y
		}
		if y > maxY {
			maxY = y
		}
		// radius 1 around (center.X, center.Z): distance from the axis
		// should stay close to 1 regardless of angle.
		dx, dz := x-center.X, z-center.Z
		r := float32(stdmath.Sqrt(float64(dx*dx + dz*dz)))
		if r < 0.99 || r > 1.01 {
			t.Errorf("expected radius ~1 around the offset axis, got %v", r)
		}
	}
	if minY != center.Y-1 || maxY != center.Y+1 {
		t.Errorf("expected y range [%v,%v], got [%v,%v]", center.Y-1, center.Y+1, minY, maxY)
	}
}

func TestLatheAngleOffsetRotatesSeam(t *testing.T) {
	b0 := mesh.NewBuilder()
	profile := []math.Vec2{{X: 1, Y: -1}, {X: 1, Y: 1}}
	Lathe(b0, math.Vec3{}, profile, 12, 0, core.ColorWhite)

	bOffset := mesh.NewBuilder()
	Lathe(bOffset, math.Vec3{}, profile, 12, 1.0, core.ColorWhite)

	if b0.Buffer.Positions[0] == bOffset.Buffer.Positions[0] {
		t.Error("expected a nonzero angle offset to rotate the first ring vertex")
	}
}

func TestExtrudePathShortPathEmitsNothing(t *testing.T) {
	b := mesh.NewBuilder()
	profile := []math.Vec2{{X: -1, Y: -1}, {X: 1, Y: -1}, {X: 1, Y: 1}, {X: -1, Y: 1}}
	path := []math.Vec3{{X: 0, Y: 0, Z: 0}}
	ExtrudePath(b, profile, path, true, core.ColorWhite)
	if b.Buffer.VertexCount != 0 {
		t.Errorf("expected no geometry for a single-point path, got %d vertices", b.Buffer.VertexCount)
	}
}

func TestExtrudePathStraightLineProducesGeometry(t *testing.T) {
	b := mesh.NewBuilder()
	profile := []math.Vec2{{X: -1, Y: -1}, {X: 1, Y: -1}, {X: 1, Y: 1}, {X: -1, Y: 1}}
	path := []math.Vec3{{X: 0, Y: 0, Z: 0}, {X: 0, Y: 0, Z: 5}, {X: 0, Y: 0, Z: 10}}
	ExtrudePath(b, profile, path, true, core.ColorWhite)

	expectedVerts := uint32(len(path)-1) * uint32(len(profile)) * 2 * 3
	if b.Buffer.VertexCount != expectedVerts {
		t.Errorf("expected %d vertices, got %d", expectedVerts, b.Buffer.VertexCount)
	}
}

func TestExtrudePathDuplicatePointInheritsFrame(t *testing.T) {
	path := []math.Vec3{
		{X: 0, Y: 0, Z: 0},
		{X: 0, Y: 0, Z: 1},
		{X: 0, Y: 0, Z: 1}, // duplicate
		{X: 0, Y: 0, Z: 2},
	}
	frames := computeRMF(path)
	if frames[2].n != frames[1].n || frames[2].bi != frames[1].bi {
		t.Errorf("expected duplicate path point to inherit the prior frame exactly")
	}
}

func TestComputeRMFKeepsFramesOrthonormal(t *testing.T) {
	path := []math.Vec3{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 2, Z: 0},
		{X: 2, Y: 2, Z: 3},
		{X: 2, Y: 0, Z: 5},
	}
	frames := computeRMF(path)
	for i, fr := range frames {
		if d := fr.t.Dot(fr.n); d > 1e-3 || d < -1e-3 {
			t.Errorf("frame %d: tangent/normal not orthogonal, dot=%v", i, d)
		}
		if l := fr.n.Length(); l < 0.99 || l > 1.01 {
			t.Errorf("frame %d: normal not unit length, got %v", i, l)
		}
	}
}
