// Package marching turns an implicit signed-distance field into a triangle
// mesh via the classic Marching Cubes algorithm: a dense grid of the field
// is sampled, each cell is classified against edgeTable/triTable, and the
// crossed edges are interpolated and emitted as smooth-shaded triangles.
package marching

import (
	"scenecore/core"
	"scenecore/math"
	"scenecore/mesh"
)

// DistanceFunc evaluates a signed distance field at a world-space point.
type DistanceFunc func(p math.Vec3) float32

// ColorFunc evaluates a surface color at a world-space point.
type ColorFunc func(p math.Vec3) core.Color

var cornerOffset = [8]math.Vec3{
	{X: 0, Y: 0, Z: 0},
	{X: 1, Y: 0, Z: 0},
	{X: 1, Y: 1, Z: 0},
	{X: 0, Y: 1, Z: 0},
	{X: 0, Y: 0, Z: 1},
	{X: 1, Y: 0, Z: 1},
	{X: 1, Y: 1, Z: 1},
	{X: 0, Y: 1, Z: 1},
}

// edgeCorners[e] gives the two corner indices edge e connects.
var edgeCorners = [12][2]int{
	{0, 1}, {1, 2}, {2, 3}, {3, 0},
	{4, 5}, {5, 6}, {6, 7}, {7, 4},
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

// March samples sdfFn over a dense (resolution+1)^3 grid spanning
// [bMin,bMax] and emits the resulting iso-surface (at value 0) into the
// given mesh builder, coloring each vertex via colorFn. resolution must be
// >= 1; a lower value is clamped up rather than rejected.
func March(b *mesh.Builder, sdfFn DistanceFunc, colorFn ColorFunc, bMin, bMax math.Vec3, resolution int) {
	if resolution < 1 {
		resolution = 1
	}
	n := resolution + 1
	size := bMax.Sub(bMin)
	cell := math.Vec3{
		X: size.X / float32(resolution),
		Y: size.Y / float32(resolution),
		Z: size.Z / float32(resolution),
	}

	field := make([]float32, n*n*n)
	idx := func(ix, iy, iz int) int { return (iz*n+iy)*n + ix }
	point := func(ix, iy, iz int) math.Vec3 {
		return math.Vec3{
			X: bMin.X + float32(ix)*cell.X,
			Y: bMin.Y + float32(iy)*cell.Y,
			Z: bMin.Z + float32(iz)*cell.Z,
		}
	}

	for iz := 0; iz < n; iz++ {
		for iy := 0; iy < n; iy++ {
			for ix := 0; ix < n; ix++ {
				field[idx(ix, iy, iz)] = sdfFn(point(ix, iy, iz))
			}
		}
	}

	gradEps := maxF(cell.X, maxF(cell.Y, cell.Z)) * 0.5
	normalAt := func(p math.Vec3) math.Vec3 {
		dx := sdfFn(math.Vec3{X: p.X + gradEps, Y: p.Y, Z: p.Z}) - sdfFn(math.Vec3{X: p.X - gradEps, Y: p.Y, Z: p.Z})
		dy := sdfFn(math.Vec3{X: p.X, Y: p.Y + gradEps, Z: p.Z}) - sdfFn(math.Vec3{X: p.X, Y: p.Y - gradEps, Z: p.Z})
		dz := sdfFn(math.Vec3{X: p.X, Y: p.Y, Z: p.Z + gradEps}) - sdfFn(math.Vec3{X: p.X, Y: p.Y, Z: p.Z - gradEps})
		g := math.Vec3{X: dx, Y: dy, Z: dz}
		if g.Length() == 0 {
			return math.Vec3{X: 0, Y: 1, Z: 0}
		}
		return g.Normalize()
	}

	var corners [8]math.Vec3
	var values [8]float32

	for iz := 0; iz < resolution; iz++ {
		for iy := 0; iy < resolution; iy++ {
			for ix := 0; ix < resolution; ix++ {
				cubeIndex := 0
				for c := 0; c < 8; c++ {
					off := cornerOffset[c]
					cx, cy, cz := ix+int(off.X), iy+int(off.Y), iz+int(off.Z)
					corners[c] = point(cx, cy, cz)
					values[c] = field[idx(cx, cy, cz)]
					if values[c] < 0 {
						cubeIndex |= 1 << uint(c)
					}
				}

				mask := edgeTable[cubeIndex]
				if mask == 0 {
					continue
				}

				var edgeVertex [12]math.Vec3
				for e := 0; e < 12; e++ {
					if mask&(1<<uint(e)) == 0 {
						continue
					}
					c0, c1 := edgeCorners[e][0], edgeCorners[e][1]
					edgeVertex[e] = interpolateEdge(corners[c0], values[c0], corners[c1], values[c1])
				}

				tris := triTable[cubeIndex]
				for t := 0; t+2 < 16 && tris[t] != -1; t += 3 {
					p0 := edgeVertex[tris[t]]
					p1 := edgeVertex[tris[t+1]]
					p2 := edgeVertex[tris[t+2]]

					centroid := p0.Add(p1).Add(p2).Mul(1.0 / 3.0)
					col := colorFn(centroid)

					n0 := normalAt(p0)
					n1 := normalAt(p1)
					n2 := normalAt(p2)

					b.Buffer.EmitSmoothTriangle(p0, n0, p1, n1, p2, n2, col)
				}
			}
		}
	}
}

// interpolateEdge finds the zero crossing along segment (pA,vA)-(pB,vB).
// When the two endpoint values are equal it falls back to the midpoint.
func interpolateEdge(pA math.Vec3, vA float32, pB math.Vec3, vB float32) math.Vec3 {
	if vA == vB {
		return pA.Lerp(pB, 0.5)
	}
	t := clampF(vA/(vA-vB), 0, 1)
	return pA.Lerp(pB, t)
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
