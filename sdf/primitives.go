// Package sdf implements the signed-distance-function primitive library:
// translation-invariant distance primitives (the caller pre-translates the
// query point by subtracting the desired center), boolean/smooth/domain
// combinators, and the domain-warping operators consumed by marching cubes.
//
// Every primitive returns a signed scalar: negative inside the surface,
// positive outside, approximately zero on the surface.
package sdf

import stdmath "math"

// Sphere: ||p|| - r.
func Sphere(x, y, z, r float32) float32 {
	return length3(x, y, z) - r
}

// Box: exact distance to an axis-aligned box of half-extents (sx,sy,sz).
func Box(x, y, z, sx, sy, sz float32) float32 {
	qx := absF(x) - sx
	qy := absF(y) - sy
	qz := absF(z) - sz
	outside := length3(maxF(qx, 0), maxF(qy, 0), maxF(qz, 0))
	inside := minF(maxF(qx, maxF(qy, qz)), 0)
	return outside + inside
}

// Capsule: distance to the segment A->B, minus r.
func Capsule(px, py, pz, ax, ay, az, bx, by, bz, r float32) float32 {
	pax, pay, paz := px-ax, py-ay, pz-az
	bax, bay, baz := bx-ax, by-ay, bz-az
	babaDot := bax*bax + bay*bay + baz*baz
	var h float32
	if babaDot > 0 {
		h = clampF((pax*bax+pay*bay+paz*baz)/babaDot, 0, 1)
	}
	dx := pax - bax*h
	dy := pay - bay*h
	dz := paz - baz*h
	return length3(dx, dy, dz) - r
}

// Torus: standard XZ-plane torus with major radius R, minor radius r.
func Torus(x, y, z, majorR, minorR float32) float32 {
	qx := length2(x, z) - majorR
	return length2(qx, y) - minorR
}

// Cone: tip at origin, apex pointing down -Y; the base (radius r) sits at
// y=-h. Standard bound (not capped) cone distance (Quilez).
func Cone(x, y, z, r, h float32) float32 {
	qx, qy := r, -h
	wx, wy := length2(x, z), y

	dotWQ := wx*qx + wy*qy
	dotQQ := qx*qx + qy*qy
	var t float32
	if dotQQ > 0 {
		t = clampF(dotWQ/dotQQ, 0, 1)
	}
	ax, ay := wx-qx*t, wy-qy*t

	tb := clampF(wx/qx, 0, 1)
	bx, by := wx-qx*tb, wy-qy

	k := sign(qy)
	d := minF(ax*ax+ay*ay, bx*bx+by*by)
	s := maxF(k*(wx*qy-wy*qx), k*(wy-qy))
	return float32(stdmath.Sqrt(float64(d))) * sign(s)
}

// Plane: half-space p.n - d. n is expected (but not enforced) to be unit.
func Plane(x, y, z, nx, ny, nz, d float32) float32 {
	return x*nx + y*ny + z*nz - d
}

// Cylinder: capped cylinder about the Y axis, radius r, half-height halfH.
func Cylinder(x, y, z, r, halfH float32) float32 {
	dx := length2(x, z) - r
	dy := absF(y) - halfH
	outside := length2(maxF(dx, 0), maxF(dy, 0))
	inside := minF(maxF(dx, dy), 0)
	return outside + inside
}

// Ellipsoid: sign-correct approximate distance (not a true distance field).
func Ellipsoid(x, y, z, rx, ry, rz float32) float32 {
	k0 := length3(x/rx, y/ry, z/rz)
	if k0 == 0 {
		return -minF(rx, minF(ry, rz))
	}
	k1 := length3(x/(rx*rx), y/(ry*ry), z/(rz*rz))
	if k1 == 0 {
		return k0 - 1
	}
	return k0 * (k0 - 1) / k1
}

// Octahedron: exact distance to a regular octahedron of "radius" s.
func Octahedron(x, y, z, s float32) float32 {
	ax, ay, az := absF(x), absF(y), absF(z)
	m := ax + ay + az - s
	var qx, qy, qz float32
	switch {
	case 3*ax < m:
		qx, qy, qz = ax, ay, az
	case 3*ay < m:
		qx, qy, qz = ay, az, ax
	case 3*az < m:
		qx, qy, qz = az, ax, ay
	default:
		return m * 0.57735027
	}
	k := clampF(0.5*(qz-qy+s), 0, s)
	return length3(qx, qy-s+k, qz-k)
}

// HexPrism: approximate distance to a hexagonal prism of height h, radius r.
func HexPrism(x, y, z, h, r float32) float32 {
	const kx, ky, kz = -0.8660254, 0.5, 0.57735027
	ax, ay := absF(x), absF(y)
	px := ax - 2*kx*minF(kx*ax+ky*ay, 0)
	py := ay - 2*ky*minF(kx*ax+ky*ay, 0)
	dx := length2(px-clampF(px, -kz*r, kz*r), py-r) * sign(py-r)
	dy := absF(z) - h
	return minF(maxF(dx, dy), 0) + length2(maxF(dx, 0), maxF(dy, 0))
}

// TaperedCylinder: radius r1 at y=-h, radius r2 at y=+h. Approximate.
func TaperedCylinder(x, y, z, r1, r2, h float32) float32 {
	q := length2(x, z)
	t := clampF((y+h)/(2*h), 0, 1)
	r := r1 + (r2-r1)*t
	dy := absF(y) - h
	return maxF(q-r, dy)
}

func length2(x, y float32) float32 {
	return float32(stdmath.Sqrt(float64(x*x + y*y)))
}

func length3(x, y, z float32) float32 {
	return float32(stdmath.Sqrt(float64(x*x + y*y + z*z)))
}

func absF(a float32) float32 {
	if a < 0 {
		return -a
	}
	return a
}

func minF(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func maxF(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

func clampF(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func sign(a float32) float32 {
	if a < 0 {
		return -1
	}
	if a > 0 {
		return 1
	}
	return 0
}
