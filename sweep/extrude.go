package sweep

import (
	"scenecore/core"
	"scenecore/math"
	"scenecore/mesh"
)

// frame is a rotation-minimizing frame at one path vertex: tangent t,
// and two mutually orthogonal vectors (normal n, binormal bi) spanning the
// cross-section plane.
type frame struct {
	origin math.Vec3
	t      math.Vec3
	n      math.Vec3
	bi     math.Vec3
}

// ExtrudePath sweeps profile (a closed or open 2D polyline, interpreted in
// each frame's normal/binormal plane) along path, orienting the
// cross-section with a rotation-minimizing frame computed via the
// double-reflection method so the profile doesn't twist along the path.
//
// Paths or profiles shorter than 2 points emit nothing. A path point
// identical to its predecessor is treated as a zero-length segment: its
// frame is inherited unchanged from the previous point (there's no direction
// to reflect against).
func ExtrudePath(b *mesh.Builder, profile []math.Vec2, path []math.Vec3, closedProfile bool, color core.Color) {
	if len(profile) < 2 || len(path) < 2 {
		return
	}

	frames := computeRMF(path)

	rings := make([][]math.Vec3, len(path))
	for i, fr := range frames {
		ring := make([]math.Vec3, len(profile))
		for j, p := range profile {
			ring[j] = fr.origin.Add(fr.n.Mul(p.X)).Add(fr.bi.Mul(p.Y))
		}
		rings[i] = ring
	}

	segCount := len(profile) - 1
	if closedProfile {
		segCount = len(profile)
	}

	for i := 0; i < len(path)-1; i++ {
		r0, r1 := rings[i], rings[i+1]
		for j := 0; j < segCount; j++ {
			jn := (j + 1) % len(profile)
			b.Buffer.EmitQuad(r0[j], r0[jn], r1[jn], r1[j], color)
		}
	}
}

// computeRMF builds one frame per path point using the double-reflection
// method (Wang, Jüttler, Zheng, Liu 2008), seeded from an arbitrary vector
// perpendicular to the initial tangent.
func computeRMF(path []math.Vec3) []frame {
	frames := make([]frame, len(path))

	t0 := tangentAt(path, 0)
	n0 := arbitraryPerpendicular(t0)
	frames[0] = frame{origin: path[0], t: t0, n: n0, bi: t0.Cross(n0).Normalize()}

	for i := 0; i < len(path)-1; i++ {
		prev := frames[i]
		if path[i+1].Sub(path[i]).LengthSqr() == 0 {
			frames[i+1] = frame{origin: path[i+1], t: prev.t, n: prev.n, bi: prev.bi}
			continue
		}

		tNext := tangentAt(path, i+1)

		v1 := path[i+1].Sub(path[i])
		c1 := v1.Dot(v1)
		rL := prev.n
		tL := prev.t
		if c1 != 0 {
			rL = prev.n.Sub(v1.Mul(2 * v1.Dot(prev.n) / c1))
			tL = prev.t.Sub(v1.Mul(2 * v1.Dot(prev.t) / c1))
		}

		v2 := tNext.Sub(tL)
		c2 := v2.Dot(v2)
		rNext := rL
		if c2 != 0 {
			rNext = rL.Sub(v2.Mul(2 * v2.Dot(rL) / c2))
		}
		rNext = rNext.Normalize()
		biNext := tNext.Cross(rNext).Normalize()

		frames[i+1] = frame{origin: path[i+1], t: tNext, n: rNext, bi: biNext}
	}

	return frames
}

// tangentAt returns the unit tangent at path index i: the single segment
// direction at an endpoint, or the normalized sum of the two adjacent
// segment directions at an interior point (skipping any zero-length
// neighbor segment, since duplicate points carry no direction).
func tangentAt(path []math.Vec3, i int) math.Vec3 {
	n := len(path)
	switch {
	case i == 0:
		return directionOrFallback(path[0], path[1])
	case i == n-1:
		return directionOrFallback(path[n-2], path[n-1])
	default:
		d0 := path[i].Sub(path[i-1])
		d1 := path[i+1].Sub(path[i])
		sum := d0.Normalize().Add(d1.Normalize())
		if sum.Length() == 0 {
			return directionOrFallback(path[i], path[i+1])
		}
		return sum.Normalize()
	}
}

func directionOrFallback(a, b math.Vec3) math.Vec3 {
	d := b.Sub(a)
	if d.Length() == 0 {
		return math.Vec3Up
	}
	return d.Normalize()
}

// arbitraryPerpendicular returns some unit vector perpendicular to t, used
// only to seed the very first frame (the sweep has no preferred "up").
func arbitraryPerpendicular(t math.Vec3) math.Vec3 {
	ref := math.Vec3Up
	if absF(t.Dot(ref)) > 0.99 {
		ref = math.Vec3Right
	}
	return ref.Sub(t.Mul(t.Dot(ref))).Normalize()
}

func absF(a float32) float32 {
	if a < 0 {
		return -a
	}
	return a
}
