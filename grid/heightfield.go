// Package grid emits a heightfield as a quad mesh: a regular (cols+1) x
// (rows+1) lattice of XZ sample points, each displaced in Y by a height
// function and colored by a color function, connected into quads.
package grid

import (
	"scenecore/core"
	"scenecore/math"
	"scenecore/mesh"
)

// HeightFunc returns the Y displacement at a given (x,z) world position.
type HeightFunc func(x, z float32) float32

// ColorFunc returns the color at a given (x,z) world position.
type ColorFunc func(x, z float32) core.Color

// Emit tiles [xMin,xMax] x [zMin,zMax] into a cols x rows grid of quads,
// sampling heightFn at each of the (cols+1)*(rows+1) lattice points and
// colorFn once per cell at that cell's centroid. Per-vertex normals are
// left at zero (HasCustomNormals stays false); the renderer is expected to
// derive flat-shaded normals from triangle winding, matching the rest of
// the emit_triangle/emit_quad contract. cols or rows < 1 emits nothing.
func Emit(b *mesh.Builder, xMin, xMax, zMin, zMax float32, cols, rows int, heightFn HeightFunc, colorFn ColorFunc) {
	if cols < 1 || rows < 1 {
		return
	}

	nx, nz := cols+1, rows+1
	points := make([]math.Vec3, nx*nz)
	xs := make([]float32, nx)
	zs := make([]float32, nz)

	idx := func(ix, iz int) int { return iz*nx + ix }

	for iz := 0; iz < nz; iz++ {
		z := lerpF(zMin, zMax, float32(iz)/float32(rows))
		zs[iz] = z
		for ix := 0; ix < nx; ix++ {
			x := lerpF(xMin, xMax, float32(ix)/float32(cols))
			xs[ix] = x
			points[idx(ix, iz)] = math.Vec3{X: x, Y: heightFn(x, z), Z: z}
		}
	}

	for iz := 0; iz < rows; iz++ {
		for ix := 0; ix < cols; ix++ {
			p00 := points[idx(ix, iz)]
			p10 := points[idx(ix+1, iz)]
			p11 := points[idx(ix+1, iz+1)]
			p01 := points[idx(ix, iz+1)]

			cx := (xs[ix] + xs[ix+1]) / 2
			cz := (zs[iz] + zs[iz+1]) / 2
			c := colorFn(cx, cz)
			b.Buffer.EmitQuad(p00, p10, p11, p01, c)
		}
	}
}

func lerpF(a, b, t float32) float32 {
	return a + (b-a)*t
}
