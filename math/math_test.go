package math

import "testing"

func TestVec3Operations(t *testing.T) {
	v1 := NewVec3(1, 2, 3)
	v2 := NewVec3(4, 5, 6)

	result := v1.Add(v2)
	expected := NewVec3(5, 7, 9)
	if result != expected {
		t.Errorf("Add: expected %v, got %v", expected, result)
	}

	result = v2.Sub(v1)
	expected = NewVec3(3, 3, 3)
	if result != expected {
		t.Errorf("Sub: expected %v, got %v", expected, result)
	}

	dot := v1.Dot(v2)
	expectedDot := float32(32) // 1*4 + 2*5 + 3*6
	if dot != expectedDot {
		t.Errorf("Dot: expected %v, got %v", expectedDot, dot)
	}

	cross := Vec3Right.Cross(Vec3Up)
	if cross != Vec3Front {
		t.Errorf("Cross: expected %v, got %v", Vec3Front, cross)
	}
}

func TestVec3MinMaxAbs(t *testing.T) {
	a := NewVec3(-1, 5, -3)
	b := NewVec3(2, -5, -1)

	if got := a.Min(b); got != (Vec3{-1, -5, -3}) {
		t.Errorf("Min: got %v", got)
	}
	if got := a.Max(b); got != (Vec3{2, 5, -1}) {
		t.Errorf("Max: got %v", got)
	}
	if got := a.Abs(); got != (Vec3{1, 5, 3}) {
		t.Errorf("Abs: got %v", got)
	}
}

func TestVec3IsFinite(t *testing.T) {
	if !NewVec3(1, 2, 3).IsFinite() {
		t.Errorf("expected finite vector to report finite")
	}
	nan := NewVec3(float32(nanValue()), 0, 0)
	if nan.IsFinite() {
		t.Errorf("expected NaN vector to report non-finite")
	}
}

func nanValue() float64 {
	var zero float64
	return zero / zero
}

func TestBoundsFromPositionsEmpty(t *testing.T) {
	b := BoundsFromPositions(nil)
	if b != (AABB{}) {
		t.Errorf("expected zero AABB for empty input, got %v", b)
	}
}

func TestBoundsFromPositions(t *testing.T) {
	positions := []float32{
		-1, -2, -3,
		1, 2, 3,
		0, 5, -5,
	}
	b := BoundsFromPositions(positions)
	if b.Min != (Vec3{-1, -2, -5}) {
		t.Errorf("Min: got %v", b.Min)
	}
	if b.Max != (Vec3{1, 5, 3}) {
		t.Errorf("Max: got %v", b.Max)
	}
}

func TestGapSymmetric(t *testing.T) {
	a := AABB{Min: Vec3{0, 0, 0}, Max: Vec3{1, 1, 1}}
	b := AABB{Min: Vec3{3, 0, 0}, Max: Vec3{4, 1, 1}}

	g1 := Gap(a, b)
	g2 := Gap(b, a)
	if g1.Axis != g2.Axis || g1.Magnitude != g2.Magnitude {
		t.Errorf("gap should be symmetric under argument swap: %v vs %v", g1, g2)
	}
	if g1.Axis != 0 || g1.Magnitude != 2 {
		t.Errorf("expected gap of 2 on X, got %v", g1)
	}
}

func TestPenetrationShallowestAxis(t *testing.T) {
	a := AABB{Min: Vec3{0, 0, 0}, Max: Vec3{1, 1, 1}}
	b := AABB{Min: Vec3{0.3, 0, 0}, Max: Vec3{1.3, 0.9, 0.9}}

	if !a.Overlaps(b) {
		t.Fatalf("expected boxes to overlap")
	}
	p := Penetration(a, b)
	if p.Axis != 0 {
		t.Errorf("expected shallowest overlap on X, got axis %d (%v)", p.Axis, p)
	}
}
