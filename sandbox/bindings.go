package sandbox

import (
	stdmath "math"

	"github.com/dop251/goja"

	"scenecore/core"
	"scenecore/grid"
	"scenecore/marching"
	mvec "scenecore/math"
	"scenecore/mesh"
	"scenecore/noise"
	"scenecore/scene"
	"scenecore/sdf"
	"scenecore/sweep"
)

type mVec3 = mvec.Vec3

// consoleSink accumulates console.log/console.warn output as warnings,
// per spec §7's "everything else is surfaced, not silently swallowed" —
// user snippets that print diagnostics shouldn't panic for lacking a
// console global, and shouldn't vanish silently either.
type consoleSink struct {
	lines []string
}

func (c *consoleSink) add(prefix string, call goja.FunctionCall) {
	parts := make([]string, 0, len(call.Arguments))
	for _, a := range call.Arguments {
		parts = append(parts, a.String())
	}
	line := prefix
	for _, p := range parts {
		line += " " + p
	}
	c.lines = append(c.lines, line)
}

// bind installs every binding spec §4.9 names into rt: noise/RNG (C1), SDF
// primitives/operators/domain-warps (C2), emission + set_material (C3),
// sdf_mesh (C4), lathe/extrude_path (C5), grid (C6), scene constants, the
// sphere_mesh/box_mesh/cylinder_mesh/torus_mesh convenience wrappers, a
// math helper set, and a console sink.
func bind(rt *goja.Runtime, b *mesh.Builder, bounds scene.SceneBounds, seed uint32, console *consoleSink) {
	rng := noise.New(seed)

	consoleObj := rt.NewObject()
	consoleObj.Set("log", func(call goja.FunctionCall) goja.Value {
		console.add("[console]", call)
		return goja.Undefined()
	})
	consoleObj.Set("warn", func(call goja.FunctionCall) goja.Value {
		console.add("[console.warn]", call)
		return goja.Undefined()
	})
	rt.Set("console", consoleObj)

	// --- C1: noise & RNG ---
	rt.Set("random", func() float32 { return rng.Next() })
	rt.Set("noise2D", func(x, y float32) float32 { return noise.Noise2D(x, y, seed) })
	rt.Set("noise3D", func(x, y, z float32) float32 { return noise.Noise3D(x, y, z, seed) })
	rt.Set("fbm2D", func(x, y float32, octaves int, gain, lacunarity float32) float32 {
		return noise.FBM2D(x, y, seed, noise.FBMParams{Octaves: octaves, Gain: gain, Lacunarity: lacunarity})
	})
	rt.Set("fbm3D", func(x, y, z float32, octaves int, gain, lacunarity float32) float32 {
		return noise.FBM3D(x, y, z, seed, noise.FBMParams{Octaves: octaves, Gain: gain, Lacunarity: lacunarity})
	})

	// --- C2: SDF primitives ---
	rt.Set("sdSphere", sdf.Sphere)
	rt.Set("sdBox", sdf.Box)
	rt.Set("sdCapsule", sdf.Capsule)
	rt.Set("sdTorus", sdf.Torus)
	rt.Set("sdCone", sdf.Cone)
	rt.Set("sdPlane", sdf.Plane)
	rt.Set("sdCylinder", sdf.Cylinder)
	rt.Set("sdEllipsoid", sdf.Ellipsoid)
	rt.Set("sdOctahedron", sdf.Octahedron)
	rt.Set("sdHexPrism", sdf.HexPrism)
	rt.Set("sdTaperedCylinder", sdf.TaperedCylinder)

	// --- C2: operators ---
	rt.Set("opUnion", sdf.Union)
	rt.Set("opSubtract", sdf.Subtract)
	rt.Set("opIntersect", sdf.Intersect)
	rt.Set("opSmoothUnion", sdf.SmoothUnion)
	rt.Set("opSmoothSubtract", sdf.SmoothSubtract)
	rt.Set("opSmoothIntersect", sdf.SmoothIntersect)
	rt.Set("opRound", sdf.Round)
	rt.Set("opDisplace", sdf.Displace)
	rt.Set("opShell", sdf.Shell)
	rt.Set("opXor", sdf.Xor)
	rt.Set("opChamfer", sdf.Chamfer)
	rt.Set("opStairs", sdf.Stairs)

	// --- C2: domain operators ---
	rt.Set("mirror", sdf.Mirror)
	rt.Set("repeat", sdf.Repeat)
	rt.Set("twist", sdf.Twist)
	rt.Set("bend", sdf.Bend)
	rt.Set("rotateY", sdf.RotateY)

	// --- C3: emission primitives ---
	rt.Set("emit_triangle", func(p1, p2, p3, color goja.Value) error {
		v1, err := vecFromValue(p1)
		if err != nil {
			return err
		}
		v2, err := vecFromValue(p2)
		if err != nil {
			return err
		}
		v3, err := vecFromValue(p3)
		if err != nil {
			return err
		}
		c, err := colorFromValue(color)
		if err != nil {
			return err
		}
		b.Buffer.EmitTriangle(v1, v2, v3, c)
		return nil
	})
	rt.Set("emit_quad", func(p1, p2, p3, p4, color goja.Value) error {
		v1, err := vecFromValue(p1)
		if err != nil {
			return err
		}
		v2, err := vecFromValue(p2)
		if err != nil {
			return err
		}
		v3, err := vecFromValue(p3)
		if err != nil {
			return err
		}
		v4, err := vecFromValue(p4)
		if err != nil {
			return err
		}
		c, err := colorFromValue(color)
		if err != nil {
			return err
		}
		b.Buffer.EmitQuad(v1, v2, v3, v4, c)
		return nil
	})
	rt.Set("emit_smooth_triangle", func(p1, n1, p2, n2, p3, n3, color goja.Value) error {
		vp1, err := vecFromValue(p1)
		if err != nil {
			return err
		}
		vn1, err := vecFromValue(n1)
		if err != nil {
			return err
		}
		vp2, err := vecFromValue(p2)
		if err != nil {
			return err
		}
		vn2, err := vecFromValue(n2)
		if err != nil {
			return err
		}
		vp3, err := vecFromValue(p3)
		if err != nil {
			return err
		}
		vn3, err := vecFromValue(n3)
		if err != nil {
			return err
		}
		c, err := colorFromValue(color)
		if err != nil {
			return err
		}
		b.Buffer.EmitSmoothTriangle(vp1, vn1, vp2, vn2, vp3, vn3, c)
		return nil
	})
	rt.Set("set_material", func(call goja.FunctionCall) goja.Value {
		b.SetMaterial(optionalMaterialHints(call.Argument(0)))
		return goja.Undefined()
	})

	// --- C4: marching cubes ---
	rt.Set("sdf_mesh", func(sdfFn, colorFn goja.Callable, bMin, bMax goja.Value, resolution int) error {
		min, err := vecFromValue(bMin)
		if err != nil {
			return err
		}
		max, err := vecFromValue(bMax)
		if err != nil {
			return err
		}
		marching.March(b, wrapDistanceFn(rt, sdfFn), wrapColorFn(rt, colorFn), min, max, resolution)
		return nil
	})

	// --- C5: sweep & revolve ---
	rt.Set("lathe", func(cx, cy, cz float32, profile goja.Value, segments int, angleOffset float32, color goja.Value) error {
		pts, err := vec2ListFromValue(profile)
		if err != nil {
			return err
		}
		c, err := colorFromValue(color)
		if err != nil {
			return err
		}
		sweep.Lathe(b, mVec3{X: cx, Y: cy, Z: cz}, pts, segments, angleOffset, c)
		return nil
	})
	rt.Set("extrude_path", func(profile, path goja.Value, closed bool, color goja.Value) error {
		pts, err := vec2ListFromValue(profile)
		if err != nil {
			return err
		}
		spine, err := vec3ListFromValue(path)
		if err != nil {
			return err
		}
		c, err := colorFromValue(color)
		if err != nil {
			return err
		}
		sweep.ExtrudePath(b, pts, spine, closed, c)
		return nil
	})

	// --- C6: grid heightfield ---
	rt.Set("grid", func(x0, z0, x1, z1 float32, resX, resZ int, heightFn, colorFn goja.Callable) {
		grid.Emit(b, x0, x1, z0, z1, resX, resZ, wrapHeightFn(rt, heightFn), wrapGridColorFn(rt, colorFn))
	})

	// --- scene constants, derived from SceneBounds ---
	rt.Set("SCENE_MIN_X", bounds.Min.X)
	rt.Set("SCENE_MIN_Y", bounds.Min.Y)
	rt.Set("SCENE_MIN_Z", bounds.Min.Z)
	rt.Set("SCENE_MAX_X", bounds.Max.X)
	rt.Set("SCENE_MAX_Y", bounds.Max.Y)
	rt.Set("SCENE_MAX_Z", bounds.Max.Z)
	center := bounds.Min.Add(bounds.Max).Mul(0.5)
	rt.Set("SCENE_CENTER_X", center.X)
	rt.Set("SCENE_CENTER_Y", center.Y)
	rt.Set("SCENE_CENTER_Z", center.Z)

	// --- convenience wrappers: padded sdf_mesh calls for common primitives ---
	rt.Set("sphere_mesh", func(cx, cy, cz, r float32, cr, cg, cbv float32, resolution int) {
		pad := r * 1.3
		color := core.Color{R: cr, G: cg, B: cbv}
		marching.March(b,
			func(p mVec3) float32 { return sdf.Sphere(p.X-cx, p.Y-cy, p.Z-cz, r) },
			func(p mVec3) core.Color { return color },
			mVec3{X: cx - pad, Y: cy - pad, Z: cz - pad},
			mVec3{X: cx + pad, Y: cy + pad, Z: cz + pad},
			resolution,
		)
	})
	rt.Set("box_mesh", func(cx, cy, cz, sx, sy, sz, cr, cg, cbv float32, resolution int) {
		pad := maxF(sx, maxF(sy, sz)) * 0.3
		color := core.Color{R: cr, G: cg, B: cbv}
		marching.March(b,
			func(p mVec3) float32 { return sdf.Box(p.X-cx, p.Y-cy, p.Z-cz, sx, sy, sz) },
			func(p mVec3) core.Color { return color },
			mVec3{X: cx - sx - pad, Y: cy - sy - pad, Z: cz - sz - pad},
			mVec3{X: cx + sx + pad, Y: cy + sy + pad, Z: cz + sz + pad},
			resolution,
		)
	})
	rt.Set("cylinder_mesh", func(cx, cy, cz, r, halfH, cr, cg, cbv float32, resolution int) {
		pad := maxF(r, halfH) * 0.3
		color := core.Color{R: cr, G: cg, B: cbv}
		marching.March(b,
			func(p mVec3) float32 { return sdf.Cylinder(p.X-cx, p.Y-cy, p.Z-cz, r, halfH) },
			func(p mVec3) core.Color { return color },
			mVec3{X: cx - r - pad, Y: cy - halfH - pad, Z: cz - r - pad},
			mVec3{X: cx + r + pad, Y: cy + halfH + pad, Z: cz + r + pad},
			resolution,
		)
	})
	rt.Set("torus_mesh", func(cx, cy, cz, majorR, minorR, cr, cg, cbv float32, resolution int) {
		outer := majorR + minorR
		pad := outer * 0.3
		color := core.Color{R: cr, G: cg, B: cbv}
		marching.March(b,
			func(p mVec3) float32 { return sdf.Torus(p.X-cx, p.Y-cy, p.Z-cz, majorR, minorR) },
			func(p mVec3) core.Color { return color },
			mVec3{X: cx - outer - pad, Y: cy - minorR - pad, Z: cz - outer - pad},
			mVec3{X: cx + outer + pad, Y: cy + minorR + pad, Z: cz + outer + pad},
			resolution,
		)
	})

	// --- math helpers ---
	rt.Set("sin", func(x float64) float64 { return stdmath.Sin(x) })
	rt.Set("cos", func(x float64) float64 { return stdmath.Cos(x) })
	rt.Set("tan", func(x float64) float64 { return stdmath.Tan(x) })
	rt.Set("sqrt", func(x float64) float64 { return stdmath.Sqrt(x) })
	rt.Set("pow", func(x, y float64) float64 { return stdmath.Pow(x, y) })
	rt.Set("abs", func(x float64) float64 { return stdmath.Abs(x) })
	rt.Set("clamp", func(v, lo, hi float64) float64 {
		if v < lo {
			return lo
		}
		if v > hi {
			return hi
		}
		return v
	})
	rt.Set("mix", func(a, b, t float64) float64 { return a + (b-a)*t })
	rt.Set("smoothstep", func(t float64) float64 { return t * t * (3 - 2*t) })
	rt.Set("PI", stdmath.Pi)
}

func maxF(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
