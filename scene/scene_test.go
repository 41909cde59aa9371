package scene

import (
	"testing"

	"scenecore/core"
	"scenecore/math"
	"scenecore/mesh"
)

func TestNewLayerAssignsIncreasingIDs(t *testing.T) {
	b1 := mesh.NewBuilder()
	b2 := mesh.NewBuilder()
	l1 := NewLayer(b1)
	l2 := NewLayer(b2)
	if l2.seq <= l1.seq {
		t.Errorf("expected increasing layer sequence numbers, got %d then %d", l1.seq, l2.seq)
	}
	if l1.ID == l2.ID {
		t.Errorf("expected distinct layer ids, got %q twice", l1.ID)
	}
}

func TestRelationshipOverlapping(t *testing.T) {
	b1 := mesh.NewBuilder()
	b1.Buffer.EmitTriangle(math.Vec3{X: 0, Y: 0, Z: 0}, math.Vec3{X: 1, Y: 0, Z: 0}, math.Vec3{X: 0, Y: 1, Z: 1}, core.ColorWhite)
	b2 := mesh.NewBuilder()
	b2.Buffer.EmitTriangle(math.Vec3{X: 0.5, Y: 0, Z: 0}, math.Vec3{X: 1.5, Y: 0, Z: 0}, math.Vec3{X: 0.5, Y: 1, Z: 1}, core.ColorWhite)

	l1 := NewLayer(b1)
	l2 := NewLayer(b2)

	rel := Relationship(l1, l2)
	if !rel.Overlapping {
		t.Error("expected overlapping bounds")
	}
}

func TestRelationshipGap(t *testing.T) {
	b1 := mesh.NewBuilder()
	b1.Buffer.EmitTriangle(math.Vec3{X: 0, Y: 0, Z: 0}, math.Vec3{X: 1, Y: 0, Z: 0}, math.Vec3{X: 0, Y: 1, Z: 0}, core.ColorWhite)
	b2 := mesh.NewBuilder()
	b2.Buffer.EmitTriangle(math.Vec3{X: 10, Y: 0, Z: 0}, math.Vec3{X: 11, Y: 0, Z: 0}, math.Vec3{X: 10, Y: 1, Z: 0}, core.ColorWhite)

	l1 := NewLayer(b1)
	l2 := NewLayer(b2)

	rel := Relationship(l1, l2)
	if rel.Overlapping {
		t.Error("expected separated bounds")
	}
	if rel.Magnitude <= 0 {
		t.Errorf("expected positive gap magnitude, got %v", rel.Magnitude)
	}
}

func TestStoreAddRemoveClear(t *testing.T) {
	s := NewStore()
	l := NewLayer(mesh.NewBuilder())
	s.Add(l)

	if _, ok := s.Get(l.ID); !ok {
		t.Fatal("expected layer to be retrievable after Add")
	}
	if len(s.ListMeta()) != 1 {
		t.Fatalf("expected 1 layer, got %d", len(s.ListMeta()))
	}
	if !s.Remove(l.ID) {
		t.Error("expected Remove to report success")
	}
	if _, ok := s.Get(l.ID); ok {
		t.Error("expected layer gone after Remove")
	}

	s.Add(NewLayer(mesh.NewBuilder()))
	s.Add(NewLayer(mesh.NewBuilder()))
	s.Clear()
	if len(s.ListMeta()) != 0 {
		t.Errorf("expected Clear to empty the store, got %d remaining", len(s.ListMeta()))
	}
}

func TestSceneBoundsContains(t *testing.T) {
	b := SceneBounds{Min: math.Vec3{X: -1, Y: -1, Z: -1}, Max: math.Vec3{X: 1, Y: 1, Z: 1}}
	if !b.Contains(math.Vec3{X: 0, Y: 0, Z: 0}) {
		t.Error("expected origin inside bounds")
	}
	if b.Contains(math.Vec3{X: 5, Y: 0, Z: 0}) {
		t.Error("expected x=5 outside bounds")
	}
}
