package sandbox

import (
	stdmath "math"

	"github.com/dop251/goja"

	"scenecore/core"
	"scenecore/marching"
	"scenecore/math"
)

var positiveInfinity = float32(stdmath.Inf(1))

// wrapDistanceFn adapts a user-supplied JS (x,y,z) -> number function into a
// marching.DistanceFunc. A non-numeric or erroring result degrades to +Inf
// (treated as "outside"), since a thrown error here would otherwise escape
// the middle of a marching-cubes pass with no useful context.
func wrapDistanceFn(rt *goja.Runtime, fn goja.Callable) marching.DistanceFunc {
	return func(p math.Vec3) float32 {
		result, err := fn(goja.Undefined(), rt.ToValue(p.X), rt.ToValue(p.Y), rt.ToValue(p.Z))
		if err != nil {
			return positiveInfinity
		}
		d := float32(result.ToFloat())
		if d != d { // NaN: the result was not a number
			return positiveInfinity
		}
		return d
	}
}

// wrapColorFn adapts a user-supplied JS (x,y,z) -> color function into a
// marching.ColorFunc.
func wrapColorFn(rt *goja.Runtime, fn goja.Callable) marching.ColorFunc {
	return func(p math.Vec3) core.Color {
		result, err := fn(goja.Undefined(), rt.ToValue(p.X), rt.ToValue(p.Y), rt.ToValue(p.Z))
		if err != nil {
			return core.ColorWhite
		}
		c, cerr := colorFromValue(result)
		if cerr != nil {
			return core.ColorWhite
		}
		return c
	}
}

// wrapHeightFn adapts a user-supplied JS (x,z) -> number function.
func wrapHeightFn(rt *goja.Runtime, fn goja.Callable) func(x, z float32) float32 {
	return func(x, z float32) float32 {
		result, err := fn(goja.Undefined(), rt.ToValue(x), rt.ToValue(z))
		if err != nil {
			return 0
		}
		return float32(result.ToFloat())
	}
}

// wrapGridColorFn adapts a user-supplied JS (x,z) -> color function.
func wrapGridColorFn(rt *goja.Runtime, fn goja.Callable) func(x, z float32) core.Color {
	return func(x, z float32) core.Color {
		result, err := fn(goja.Undefined(), rt.ToValue(x), rt.ToValue(z))
		if err != nil {
			return core.ColorWhite
		}
		c, cerr := colorFromValue(result)
		if cerr != nil {
			return core.ColorWhite
		}
		return c
	}
}
