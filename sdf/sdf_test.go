package sdf

import "testing"

const eps = 1e-4

func approxEqual(a, b, tol float32) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= tol
}

func TestSphereSurfaceAndInterior(t *testing.T) {
	if got := Sphere(2, 0, 0, 2); !approxEqual(got, 0, eps) {
		t.Errorf("expected 0 on surface, got %v", got)
	}
	if got := Sphere(0, 0, 0, 2); got >= 0 {
		t.Errorf("expected negative at center, got %v", got)
	}
	if got := Sphere(4, 0, 0, 2); got <= 0 {
		t.Errorf("expected positive outside, got %v", got)
	}
}

func TestBoxExactAtFaceCenter(t *testing.T) {
	if got := Box(1, 0, 0, 1, 1, 1); !approxEqual(got, 0, eps) {
		t.Errorf("expected 0 on face, got %v", got)
	}
	if got := Box(0, 0, 0, 1, 1, 1); got >= 0 {
		t.Errorf("expected negative inside box, got %v", got)
	}
}

func TestCapsuleAtAxisMidpoint(t *testing.T) {
	got := Capsule(0, 0, 0, 0, -1, 0, 0, 1, 0, 0.5)
	if !approxEqual(got, -0.5, eps) {
		t.Errorf("expected -0.5 at capsule axis midpoint, got %v", got)
	}
}

func TestTorusSurface(t *testing.T) {
	got := Torus(1.5, 0, 0, 1, 0.5)
	if !approxEqual(got, 0, eps) {
		t.Errorf("expected 0 on torus ring, got %v", got)
	}
}

func TestPlaneHalfSpace(t *testing.T) {
	if got := Plane(0, 1, 0, 0, 1, 0, 0); got <= 0 {
		t.Errorf("expected positive above plane, got %v", got)
	}
	if got := Plane(0, -1, 0, 0, 1, 0, 0); got >= 0 {
		t.Errorf("expected negative below plane, got %v", got)
	}
}

func TestCylinderAxisInterior(t *testing.T) {
	if got := Cylinder(0, 0, 0, 1, 1); got >= 0 {
		t.Errorf("expected negative at cylinder center, got %v", got)
	}
}

func TestUnionIsMinimum(t *testing.T) {
	if got := Union(1, -2); got != -2 {
		t.Errorf("expected min(1,-2)=-2, got %v", got)
	}
}

func TestSubtractCarvesOutSecondShape(t *testing.T) {
	// Inside d1, also inside d2: subtraction must be non-negative (carved out).
	got := Subtract(-1, -1)
	if got < 0 {
		t.Errorf("expected non-negative where d2 carves d1, got %v", got)
	}
}

func TestSmoothUnionApproachesHardUnionAsKShrinks(t *testing.T) {
	hard := Union(1, 2)
	smooth := SmoothUnion(1, 2, 0.001)
	if !approxEqual(hard, smooth, 0.01) {
		t.Errorf("expected smooth union to approach hard union for small k: %v vs %v", hard, smooth)
	}
}

func TestRoundShrinksDistance(t *testing.T) {
	if got := Round(1, 0.3); !approxEqual(got, 0.7, eps) {
		t.Errorf("expected 0.7, got %v", got)
	}
}

func TestShellIsOnionedThickness(t *testing.T) {
	if got := Shell(0.5, 0.1); !approxEqual(got, 0.4, eps) {
		t.Errorf("expected 0.4, got %v", got)
	}
}

func TestMirrorFoldsNegativeToPositive(t *testing.T) {
	if got := Mirror(-3); got != 3 {
		t.Errorf("expected 3, got %v", got)
	}
}

func TestRepeatTilesAroundZero(t *testing.T) {
	got := Repeat(0, 4)
	if !approxEqual(got, -2, eps) {
		t.Errorf("expected Repeat(0,4)=-2, got %v", got)
	}
}

func TestRotateYPreservesLength(t *testing.T) {
	x, z := RotateY(1, 0, 1.5707963)
	length := x*x + z*z
	if !approxEqual(length, 1, 1e-3) {
		t.Errorf("expected unit length preserved, got %v", length)
	}
}

func TestTwistLeavesYUnchanged(t *testing.T) {
	_, y, _ := Twist(1, 2, 3, 0.5)
	if y != 2 {
		t.Errorf("expected twist to leave y unchanged, got %v", y)
	}
}
