package engine

import (
	"testing"

	"scenecore/math"
	"scenecore/scene"
)

func testBounds() scene.SceneBounds {
	return scene.SceneBounds{
		Min: math.Vec3{X: -3, Y: -1.5, Z: -6},
		Max: math.Vec3{X: 3, Y: 1.5, Z: -1},
	}
}

func TestGenerateEmptySourceYieldsZeroVertexLayerWithWarning(t *testing.T) {
	e := New(0)
	res, err := e.Generate("", testBounds(), 1)
	if err != nil {
		t.Fatalf("expected empty source to succeed, got %v", err)
	}
	if res.VertexCount != 0 {
		t.Errorf("expected 0 vertices, got %d", res.VertexCount)
	}
	if len(res.Warnings) == 0 {
		t.Error("expected a 'no geometry' warning")
	}
}

func TestGenerateForbiddenIdentifierIsValidationError(t *testing.T) {
	e := New(0)
	_, err := e.Generate(`fetch('https://example.com')`, testBounds(), 1)
	if err == nil {
		t.Fatal("expected a validation error")
	}
	if _, ok := err.(*ValidationError); !ok {
		t.Errorf("expected *ValidationError, got %T: %v", err, err)
	}
}

func TestGenerateSphereProducesLayer(t *testing.T) {
	e := New(0)
	res, err := e.Generate(`sphere_mesh(0, 0, -3, 0.5, 0.8, 0.3, 0.2, 48);`, testBounds(), 7)
	if err != nil {
		t.Fatalf("expected sphere generation to succeed, got %v", err)
	}
	if res.VertexCount == 0 {
		t.Error("expected sphere_mesh to emit geometry")
	}
	if res.Triangles != res.VertexCount/3 {
		t.Errorf("expected triangles = vertex_count/3")
	}
}

func TestGenerateIsDeterministicForSameSeed(t *testing.T) {
	e := New(0)
	code := `sphere_mesh(0, 0, -3, 0.5, 1, 1, 1, 24);`
	r1, err := e.Generate(code, testBounds(), 42)
	if err != nil {
		t.Fatalf("first generation failed: %v", err)
	}
	e2 := New(0)
	r2, err := e2.Generate(code, testBounds(), 42)
	if err != nil {
		t.Fatalf("second generation failed: %v", err)
	}
	if r1.VertexCount != r2.VertexCount {
		t.Errorf("expected identical vertex counts for identical seed/code, got %d vs %d", r1.VertexCount, r2.VertexCount)
	}
}

func TestRemoveAndClear(t *testing.T) {
	e := New(0)
	res, err := e.Generate(`sphere_mesh(0, 0, -3, 0.5, 1, 1, 1, 16);`, testBounds(), 1)
	if err != nil {
		t.Fatalf("generation failed: %v", err)
	}
	if len(e.ListMeta()) != 1 {
		t.Fatalf("expected 1 layer, got %d", len(e.ListMeta()))
	}
	if !e.Remove(res.LayerID) {
		t.Error("expected Remove to succeed")
	}
	if len(e.ListMeta()) != 0 {
		t.Error("expected layer removed")
	}

	e.Generate(`sphere_mesh(0, 0, -3, 0.5, 1, 1, 1, 16);`, testBounds(), 1)
	e.Generate(`sphere_mesh(1, 0, -3, 0.5, 1, 1, 1, 16);`, testBounds(), 2)
	e.Clear()
	if len(e.ListMeta()) != 0 {
		t.Error("expected Clear to empty the store")
	}
}

func TestGenerateOverlappingSpheresReportsPenetration(t *testing.T) {
	e := New(0)
	if _, err := e.Generate(`sphere_mesh(0, 0, -3, 0.5, 1, 1, 1, 32);`, testBounds(), 1); err != nil {
		t.Fatalf("first generation failed: %v", err)
	}
	res, err := e.Generate(`sphere_mesh(0.3, 0, -3, 0.5, 1, 1, 1, 32);`, testBounds(), 2)
	if err != nil {
		t.Fatalf("second generation failed: %v", err)
	}
	if len(res.Spatial) != 1 {
		t.Fatalf("expected 1 spatial relationship, got %d", len(res.Spatial))
	}
	if !res.Spatial[0].Overlaps {
		t.Error("expected overlapping spheres to report overlap")
	}
}
