package sandbox

import (
	"fmt"

	"github.com/dop251/goja"

	"scenecore/core"
	"scenecore/math"
)

// vecFromValue converts a JS value into a Vec3. User code may pass either
// a 3-element array [x,y,z] or an object {x,y,z} — both are common
// conventions for LLM-authored snippets and neither should be a surprise
// rejection.
func vecFromValue(v goja.Value) (math.Vec3, error) {
	exported := v.Export()
	switch e := exported.(type) {
	case []interface{}:
		if len(e) < 3 {
			return math.Vec3{}, fmt.Errorf("expected a 3-element vector, got %d elements", len(e))
		}
		x, err := toFloat32(e[0])
		if err != nil {
			return math.Vec3{}, err
		}
		y, err := toFloat32(e[1])
		if err != nil {
			return math.Vec3{}, err
		}
		z, err := toFloat32(e[2])
		if err != nil {
			return math.Vec3{}, err
		}
		return math.Vec3{X: x, Y: y, Z: z}, nil
	case map[string]interface{}:
		x, errX := toFloat32(e["x"])
		y, errY := toFloat32(e["y"])
		z, errZ := toFloat32(e["z"])
		if errX != nil || errY != nil || errZ != nil {
			return math.Vec3{}, fmt.Errorf("expected a vector object with numeric x,y,z fields")
		}
		return math.Vec3{X: x, Y: y, Z: z}, nil
	default:
		return math.Vec3{}, fmt.Errorf("expected a vector ([x,y,z] or {x,y,z}), got %T", exported)
	}
}

// vec2FromValue is vecFromValue's 2D analogue, used for lathe/extrude_path
// profile points.
func vec2FromValue(v goja.Value) (math.Vec2, error) {
	exported := v.Export()
	switch e := exported.(type) {
	case []interface{}:
		if len(e) < 2 {
			return math.Vec2{}, fmt.Errorf("expected a 2-element point, got %d elements", len(e))
		}
		x, errX := toFloat32(e[0])
		y, errY := toFloat32(e[1])
		if errX != nil || errY != nil {
			return math.Vec2{}, fmt.Errorf("expected numeric point coordinates")
		}
		return math.Vec2{X: x, Y: y}, nil
	case map[string]interface{}:
		x, errX := toFloat32(e["x"])
		y, errY := toFloat32(e["y"])
		if errX != nil || errY != nil {
			return math.Vec2{}, fmt.Errorf("expected a point object with numeric x,y fields")
		}
		return math.Vec2{X: x, Y: y}, nil
	default:
		return math.Vec2{}, fmt.Errorf("expected a point ([x,y] or {x,y}), got %T", exported)
	}
}

func vec2ListFromValue(v goja.Value) ([]math.Vec2, error) {
	exported := v.Export()
	items, ok := exported.([]interface{})
	if !ok {
		return nil, fmt.Errorf("expected an array of points, got %T", exported)
	}
	out := make([]math.Vec2, 0, len(items))
	for i, item := range items {
		p, err := vec2FromExported(item)
		if err != nil {
			return nil, fmt.Errorf("point %d: %w", i, err)
		}
		out = append(out, p)
	}
	return out, nil
}

func vec3ListFromValue(v goja.Value) ([]math.Vec3, error) {
	exported := v.Export()
	items, ok := exported.([]interface{})
	if !ok {
		return nil, fmt.Errorf("expected an array of vectors, got %T", exported)
	}
	out := make([]math.Vec3, 0, len(items))
	for i, item := range items {
		p, err := vec3FromExported(item)
		if err != nil {
			return nil, fmt.Errorf("vector %d: %w", i, err)
		}
		out = append(out, p)
	}
	return out, nil
}

func vec3FromExported(item interface{}) (math.Vec3, error) {
	switch e := item.(type) {
	case []interface{}:
		if len(e) < 3 {
			return math.Vec3{}, fmt.Errorf("expected a 3-element vector")
		}
		x, errX := toFloat32(e[0])
		y, errY := toFloat32(e[1])
		z, errZ := toFloat32(e[2])
		if errX != nil || errY != nil || errZ != nil {
			return math.Vec3{}, fmt.Errorf("expected numeric vector coordinates")
		}
		return math.Vec3{X: x, Y: y, Z: z}, nil
	case map[string]interface{}:
		x, errX := toFloat32(e["x"])
		y, errY := toFloat32(e["y"])
		z, errZ := toFloat32(e["z"])
		if errX != nil || errY != nil || errZ != nil {
			return math.Vec3{}, fmt.Errorf("expected a vector object with numeric x,y,z fields")
		}
		return math.Vec3{X: x, Y: y, Z: z}, nil
	default:
		return math.Vec3{}, fmt.Errorf("unsupported vector representation %T", item)
	}
}

func vec2FromExported(item interface{}) (math.Vec2, error) {
	switch e := item.(type) {
	case []interface{}:
		if len(e) < 2 {
			return math.Vec2{}, fmt.Errorf("expected a 2-element point")
		}
		x, errX := toFloat32(e[0])
		y, errY := toFloat32(e[1])
		if errX != nil || errY != nil {
			return math.Vec2{}, fmt.Errorf("expected numeric point coordinates")
		}
		return math.Vec2{X: x, Y: y}, nil
	case map[string]interface{}:
		x, errX := toFloat32(e["x"])
		y, errY := toFloat32(e["y"])
		if errX != nil || errY != nil {
			return math.Vec2{}, fmt.Errorf("expected a point object with numeric x,y fields")
		}
		return math.Vec2{X: x, Y: y}, nil
	default:
		return math.Vec2{}, fmt.Errorf("unsupported point representation %T", item)
	}
}

// colorFromValue converts a JS value into a Color: [r,g,b] or {r,g,b}.
func colorFromValue(v goja.Value) (core.Color, error) {
	exported := v.Export()
	switch e := exported.(type) {
	case []interface{}:
		if len(e) < 3 {
			return core.Color{}, fmt.Errorf("expected a 3-element color, got %d elements", len(e))
		}
		r, errR := toFloat32(e[0])
		g, errG := toFloat32(e[1])
		bch, errB := toFloat32(e[2])
		if errR != nil || errG != nil || errB != nil {
			return core.Color{}, fmt.Errorf("expected numeric color channels")
		}
		return core.Color{R: r, G: g, B: bch}, nil
	case map[string]interface{}:
		r, errR := toFloat32(firstOf(e, "r", "R"))
		g, errG := toFloat32(firstOf(e, "g", "G"))
		bch, errB := toFloat32(firstOf(e, "b", "B"))
		if errR != nil || errG != nil || errB != nil {
			return core.Color{}, fmt.Errorf("expected a color object with numeric r,g,b fields")
		}
		return core.Color{R: r, G: g, B: bch}, nil
	default:
		return core.Color{}, fmt.Errorf("expected a color ([r,g,b] or {r,g,b}), got %T", exported)
	}
}

func firstOf(m map[string]interface{}, keys ...string) interface{} {
	for _, k := range keys {
		if v, ok := m[k]; ok {
			return v
		}
	}
	return nil
}

func toFloat32(v interface{}) (float32, error) {
	switch n := v.(type) {
	case float64:
		return float32(n), nil
	case float32:
		return n, nil
	case int64:
		return float32(n), nil
	case int:
		return float32(n), nil
	default:
		return 0, fmt.Errorf("expected a number, got %T", v)
	}
}

// optionalMaterialHints parses a JS {roughness?, metalness?, opacity?}
// object into MaterialHints, leaving unset fields nil.
func optionalMaterialHints(v goja.Value) core.MaterialHints {
	var hints core.MaterialHints
	if v == nil || goja.IsUndefined(v) || goja.IsNull(v) {
		return hints
	}
	m, ok := v.Export().(map[string]interface{})
	if !ok {
		return hints
	}
	if raw, ok := m["roughness"]; ok {
		if f, err := toFloat32(raw); err == nil {
			hints.Roughness = &f
		}
	}
	if raw, ok := m["metalness"]; ok {
		if f, err := toFloat32(raw); err == nil {
			hints.Metalness = &f
		}
	}
	if raw, ok := m["opacity"]; ok {
		if f, err := toFloat32(raw); err == nil {
			hints.Opacity = &f
		}
	}
	return hints
}
