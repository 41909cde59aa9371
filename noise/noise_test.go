package noise

import "testing"

func TestRNGDeterministic(t *testing.T) {
	a := New(42)
	b := New(42)
	for i := 0; i < 100; i++ {
		va := a.NextUint32()
		vb := b.NextUint32()
		if va != vb {
			t.Fatalf("call %d: expected identical sequences, got %d vs %d", i, va, vb)
		}
	}
}

func TestRNGRange(t *testing.T) {
	r := New(7)
	for i := 0; i < 1000; i++ {
		v := r.Next()
		if v < 0 || v >= 1 {
			t.Fatalf("Next() out of [0,1): %v", v)
		}
	}
}

func TestNoise2DRange(t *testing.T) {
	for ix := -5; ix <= 5; ix++ {
		for iy := -5; iy <= 5; iy++ {
			v := Noise2D(float32(ix)*0.37, float32(iy)*0.23, 11)
			if v < -1 || v > 1 {
				t.Fatalf("Noise2D(%d,%d) out of range: %v", ix, iy, v)
			}
		}
	}
}

func TestNoise3DRange(t *testing.T) {
	v := Noise3D(1.25, -3.5, 0.75, 99)
	if v < -1 || v > 1 {
		t.Fatalf("Noise3D out of range: %v", v)
	}
}

func TestNoiseDeterministicAcrossCalls(t *testing.T) {
	a := Noise2D(1.5, 2.5, 5)
	b := Noise2D(1.5, 2.5, 5)
	if a != b {
		t.Errorf("expected identical output for identical inputs: %v vs %v", a, b)
	}
}

func TestFBM2DRangeAndDefaults(t *testing.T) {
	for i := 0; i < 50; i++ {
		x := float32(i) * 0.1
		v := FBM2D(x, -x, 3, DefaultFBMParams())
		if v < -1 || v > 1 {
			t.Fatalf("FBM2D(%v) out of [-1,1]: %v", x, v)
		}
	}
}

func TestFBM3DMatchesSingleOctaveNoise(t *testing.T) {
	params := FBMParams{Octaves: 1, Gain: 0.5, Lacunarity: 2.0}
	got := FBM3D(0.3, 0.4, 0.5, 8, params)
	want := Noise3D(0.3, 0.4, 0.5, 8)
	if got != want {
		t.Errorf("single-octave FBM should equal raw noise: got %v want %v", got, want)
	}
}
