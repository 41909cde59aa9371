// Package noise provides a deterministic seeded PRNG and value-noise /
// fractal Brownian motion functions for procedural SDF and heightfield code.
//
// Every function here is a pure function of its seed and inputs: the same
// seed and call sequence produce bitwise-identical output across runs and
// platforms, since all intermediate arithmetic is done in 32-bit precision.
package noise

import stdmath "math"

// RNG is a mulberry32 generator: a single uint32 state, one multiply-xorshift
// step per call. Small, fast, and good enough for procedural placement —
// it is not a cryptographic generator.
type RNG struct {
	state uint32
}

// New returns an RNG seeded with seed.
func New(seed uint32) *RNG {
	return &RNG{state: seed}
}

// NextUint32 advances the generator and returns the raw 32-bit output.
func (r *RNG) NextUint32() uint32 {
	r.state += 0x6D2B79F5
	t := r.state
	t = (t ^ (t >> 15)) * (t | 1)
	t ^= t + (t^(t>>7))*(t|61)
	return t ^ (t >> 14)
}

// Next returns a float32 in [0,1).
func (r *RNG) Next() float32 {
	return float32(r.NextUint32()>>8) / (1 << 24)
}

// smoothstep is Perlin's smoothstep used to interpolate lattice corners:
// s(t) = t*t*(3-2t).
func smoothstep(t float32) float32 {
	return t * t * (3 - 2*t)
}

func lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

// hash2 mixes an integer lattice coordinate and a seed into [0,1).
func hash2(ix, iy int32, seed uint32) float32 {
	h := uint32(ix)*374761393 + uint32(iy)*668265263 + seed*2246822519
	h = (h ^ (h >> 13)) * 1274126177
	h ^= h >> 16
	return float32(h>>8) / (1 << 24)
}

// hash3 mixes a 3D integer lattice coordinate and a seed into [0,1).
func hash3(ix, iy, iz int32, seed uint32) float32 {
	h := uint32(ix)*374761393 + uint32(iy)*668265263 + uint32(iz)*2147483647 + seed*2246822519
	h = (h ^ (h >> 13)) * 1274126177
	h ^= h >> 16
	return float32(h>>8) / (1 << 24)
}

// Noise2D is value noise: hash the four lattice corners around (x,y) with
// seed, then smoothstep-interpolate. Range is [-1,1].
func Noise2D(x, y float32, seed uint32) float32 {
	x0 := int32(stdmath.Floor(float64(x)))
	y0 := int32(stdmath.Floor(float64(y)))
	x1, y1 := x0+1, y0+1

	fx := x - float32(x0)
	fy := y - float32(y0)

	v00 := hash2(x0, y0, seed)
	v10 := hash2(x1, y0, seed)
	v01 := hash2(x0, y1, seed)
	v11 := hash2(x1, y1, seed)

	sx := smoothstep(fx)
	sy := smoothstep(fy)

	top := lerp(v00, v10, sx)
	bottom := lerp(v01, v11, sx)
	n := lerp(top, bottom, sy)
	return n*2 - 1
}

// Noise3D is the 3D analogue of Noise2D: trilinear interpolation of the
// eight corners of the enclosing lattice cell. Range is [-1,1].
func Noise3D(x, y, z float32, seed uint32) float32 {
	x0 := int32(stdmath.Floor(float64(x)))
	y0 := int32(stdmath.Floor(float64(y)))
	z0 := int32(stdmath.Floor(float64(z)))
	x1, y1, z1 := x0+1, y0+1, z0+1

	fx := x - float32(x0)
	fy := y - float32(y0)
	fz := z - float32(z0)

	v000 := hash3(x0, y0, z0, seed)
	v100 := hash3(x1, y0, z0, seed)
	v010 := hash3(x0, y1, z0, seed)
	v110 := hash3(x1, y1, z0, seed)
	v001 := hash3(x0, y0, z1, seed)
	v101 := hash3(x1, y0, z1, seed)
	v011 := hash3(x0, y1, z1, seed)
	v111 := hash3(x1, y1, z1, seed)

	sx := smoothstep(fx)
	sy := smoothstep(fy)
	sz := smoothstep(fz)

	x00 := lerp(v000, v100, sx)
	x10 := lerp(v010, v110, sx)
	x01 := lerp(v001, v101, sx)
	x11 := lerp(v011, v111, sx)

	y0Interp := lerp(x00, x10, sy)
	y1Interp := lerp(x01, x11, sy)

	n := lerp(y0Interp, y1Interp, sz)
	return n*2 - 1
}

// FBMParams configures fractal Brownian motion octave summation.
type FBMParams struct {
	Octaves     int     // default 4
	Gain        float32 // amplitude decay per octave, default 0.5
	Lacunarity  float32 // frequency growth per octave, default 2.0
}

// DefaultFBMParams matches spec defaults: 4 octaves, gain 0.5, lacunarity 2.0.
func DefaultFBMParams() FBMParams {
	return FBMParams{Octaves: 4, Gain: 0.5, Lacunarity: 2.0}
}

func (p FBMParams) normalize() FBMParams {
	if p.Octaves <= 0 {
		p.Octaves = 4
	}
	if p.Gain == 0 {
		p.Gain = 0.5
	}
	if p.Lacunarity == 0 {
		p.Lacunarity = 2.0
	}
	return p
}

// FBM2D sums Octaves octaves of Noise2D, halving amplitude and doubling
// frequency (by default) each octave, normalized by the sum of amplitudes
// so the result stays in [-1,1] even if an octave's contribution underflows.
func FBM2D(x, y float32, seed uint32, params FBMParams) float32 {
	params = params.normalize()
	var sum, amplitude, frequency, norm float32 = 0, 1, 1, 0
	for o := 0; o < params.Octaves; o++ {
		n := Noise2D(x*frequency, y*frequency, seed+uint32(o)*101)
		if !isFinite(n) {
			n = 0
		}
		sum += n * amplitude
		norm += amplitude
		amplitude *= params.Gain
		frequency *= params.Lacunarity
	}
	if norm == 0 {
		return 0
	}
	return sum / norm
}

// FBM3D is the 3D analogue of FBM2D.
func FBM3D(x, y, z float32, seed uint32, params FBMParams) float32 {
	params = params.normalize()
	var sum, amplitude, frequency, norm float32 = 0, 1, 1, 0
	for o := 0; o < params.Octaves; o++ {
		n := Noise3D(x*frequency, y*frequency, z*frequency, seed+uint32(o)*101)
		if !isFinite(n) {
			n = 0
		}
		sum += n * amplitude
		norm += amplitude
		amplitude *= params.Gain
		frequency *= params.Lacunarity
	}
	if norm == 0 {
		return 0
	}
	return sum / norm
}

func isFinite(f float32) bool {
	return f == f && f*0 == 0
}
