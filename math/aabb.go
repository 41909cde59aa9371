package math

// AABB is an axis-aligned bounding box: Min[i] <= Max[i] on every axis.
// An empty box (no vertices contributed) is the zero value.
type AABB struct {
	Min, Max Vec3
}

// Center returns (Min+Max)/2.
func (b AABB) Center() Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Size returns Max-Min.
func (b AABB) Size() Vec3 {
	return b.Max.Sub(b.Min)
}

// BoundsFromPositions scans a flat xyz-interleaved position buffer and
// returns its AABB. An empty buffer yields the zero-valued AABB.
func BoundsFromPositions(positions []float32) AABB {
	if len(positions) < 3 {
		return AABB{}
	}
	min := Vec3{X: positions[0], Y: positions[1], Z: positions[2]}
	max := min
	for i := 3; i+2 < len(positions); i += 3 {
		p := Vec3{X: positions[i], Y: positions[i+1], Z: positions[i+2]}
		min = min.Min(p)
		max = max.Max(p)
	}
	return AABB{Min: min, Max: max}
}

// Overlaps reports whether two boxes have a positive intersection on every axis.
func (b AABB) Overlaps(other AABB) bool {
	for i := 0; i < 3; i++ {
		if minF(b.Max.Axis(i), other.Max.Axis(i))-maxF(b.Min.Axis(i), other.Min.Axis(i)) <= 0 {
			return false
		}
	}
	return true
}

// AxisMagnitude pairs a reported axis with a signed magnitude.
type AxisMagnitude struct {
	Axis      int // 0=X, 1=Y, 2=Z
	Magnitude float32
}

// Gap computes the separating gap between two non-overlapping boxes: on each
// axis, gap = max(0, minA-maxB, minB-maxA); the reported axis is whichever has
// the largest positive value. Callers should check Overlaps first — if the
// boxes overlap every axis gap is 0 and the result is meaningless.
func Gap(a, b AABB) AxisMagnitude {
	best := AxisMagnitude{Axis: 0, Magnitude: 0}
	for i := 0; i < 3; i++ {
		g := maxF(0, maxF(a.Min.Axis(i)-b.Max.Axis(i), b.Min.Axis(i)-a.Max.Axis(i)))
		if g > best.Magnitude {
			best = AxisMagnitude{Axis: i, Magnitude: g}
		}
	}
	return best
}

// Penetration computes the shallowest overlap axis between two overlapping
// boxes: on each axis, overlap = min(maxA,maxB) - max(minA,minB); the
// reported axis is whichever has the smallest positive overlap.
func Penetration(a, b AABB) AxisMagnitude {
	best := AxisMagnitude{Axis: 0, Magnitude: -1}
	for i := 0; i < 3; i++ {
		o := minF(a.Max.Axis(i), b.Max.Axis(i)) - maxF(a.Min.Axis(i), b.Min.Axis(i))
		if o < 0 {
			continue
		}
		if best.Magnitude < 0 || o < best.Magnitude {
			best = AxisMagnitude{Axis: i, Magnitude: o}
		}
	}
	if best.Magnitude < 0 {
		best.Magnitude = 0
	}
	return best
}

// AxisName renders 0/1/2 as the single-character axis label the external
// interface expects ("X"|"Y"|"Z").
func AxisName(axis int) string {
	switch axis {
	case 0:
		return "X"
	case 1:
		return "Y"
	default:
		return "Z"
	}
}
