package marching

import (
	"testing"

	"scenecore/core"
	"scenecore/math"
	"scenecore/mesh"
)

func sphereSDF(p math.Vec3) float32 {
	return p.Length() - 1
}

func whiteColor(p math.Vec3) core.Color {
	return core.ColorWhite
}

func TestMarchSphereProducesTriangles(t *testing.T) {
	b := mesh.NewBuilder()
	March(b, sphereSDF, whiteColor, math.Vec3{X: -1.5, Y: -1.5, Z: -1.5}, math.Vec3{X: 1.5, Y: 1.5, Z: 1.5}, 12)

	if b.Buffer.VertexCount == 0 {
		t.Fatal("expected marching cubes to emit triangles for a sphere")
	}
	if b.Buffer.VertexCount%3 != 0 {
		t.Fatalf("vertex count must be a multiple of 3, got %d", b.Buffer.VertexCount)
	}
	if !b.Buffer.HasCustomNormals {
		t.Error("expected marching cubes output to set custom (gradient) normals")
	}
}

func TestMarchVerticesLieNearUnitSphere(t *testing.T) {
	b := mesh.NewBuilder()
	March(b, sphereSDF, whiteColor, math.Vec3{X: -1.5, Y: -1.5, Z: -1.5}, math.Vec3{X: 1.5, Y: 1.5, Z: 1.5}, 20)

	for i := uint32(0); i < b.Buffer.VertexCount; i++ {
		p := math.Vec3{
			X: b.Buffer.Positions[i*3],
			Y: b.Buffer.Positions[i*3+1],
			Z: b.Buffer.Positions[i*3+2],
		}
		r := p.Length()
		if r < 0.85 || r > 1.15 {
			t.Errorf("vertex %d radius %v too far from 1.0", i, r)
		}
	}
}

func TestMarchEmptyFieldEmitsNothing(t *testing.T) {
	b := mesh.NewBuilder()
	always := func(p math.Vec3) float32 { return 1 }
	March(b, always, whiteColor, math.Vec3{X: -1, Y: -1, Z: -1}, math.Vec3{X: 1, Y: 1, Z: 1}, 4)

	if b.Buffer.VertexCount != 0 {
		t.Errorf("expected no geometry when the field never crosses zero, got %d vertices", b.Buffer.VertexCount)
	}
}

func TestInterpolateEdgeMidpointOnTie(t *testing.T) {
	a := math.Vec3{X: 0, Y: 0, Z: 0}
	bpt := math.Vec3{X: 2, Y: 0, Z: 0}
	got := interpolateEdge(a, 1, bpt, 1)
	if got.X != 1 {
		t.Errorf("expected midpoint x=1 when values tie, got %v", got.X)
	}
}

func TestInterpolateEdgeLinear(t *testing.T) {
	a := math.Vec3{X: 0, Y: 0, Z: 0}
	bpt := math.Vec3{X: 1, Y: 0, Z: 0}
	got := interpolateEdge(a, 1, bpt, -1)
	if !approxEqualF(got.X, 0.5, 1e-4) {
		t.Errorf("expected crossing at x=0.5, got %v", got.X)
	}
}

func approxEqualF(a, b, tol float32) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= tol
}
