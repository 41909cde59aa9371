// Package sweep builds meshes by sweeping a 2D profile through space: lathe
// revolves a profile around the Y axis, extrude_path carries a profile
// along a 3D path using a rotation-minimizing frame so the cross-section
// doesn't twist.
package sweep

import (
	stdmath "math"

	"scenecore/core"
	"scenecore/math"
	"scenecore/mesh"
)

// Lathe revolves profile (ordered bottom->top, X expected >= 0, X is the
// radius and Y a vertical offset from center.Y) around a vertical axis
// through center in segments steps starting at angleOffset, emitting a
// closed surface of revolution. Profile points with X==0 are poles:
// instead of a degenerate quad ring, a triangle fan is emitted to avoid
// zero-area geometry.
//
// Profiles shorter than 2 points emit nothing.
func Lathe(b *mesh.Builder, center math.Vec3, profile []math.Vec2, segments int, angleOffset float32, color core.Color) {
	if len(profile) < 2 || segments < 3 {
		return
	}

	rings := make([][]math.Vec3, len(profile))
	for i, p := range profile {
		ring := make([]math.Vec3, segments)
		for s := 0; s < segments; s++ {
			theta := float64(angleOffset) + 2*stdmath.Pi*float64(s)/float64(segments)
			c := float32(stdmath.Cos(theta))
			sn := float32(stdmath.Sin(theta))
			ring[s] = math.Vec3{X: center.X + p.X*c, Y: center.Y + p.Y, Z: center.Z + p.X*sn}
		}
		rings[i] = ring
	}

	for i := 0; i < len(profile)-1; i++ {
		p0, p1 := profile[i], profile[i+1]
		ring0, ring1 := rings[i], rings[i+1]

		switch {
		case p0.X == 0 && p1.X == 0:
			continue // degenerate segment, both ends on the axis
		case p0.X == 0:
			apex := math.Vec3{X: center.X, Y: center.Y + p0.Y, Z: center.Z}
			for s := 0; s < segments; s++ {
				next := (s + 1) % segments
				b.Buffer.EmitTriangle(apex, ring1[s], ring1[next], color)
			}
		case p1.X == 0:
			apex := math.Vec3{X: center.X, Y: center.Y + p1.Y, Z: center.Z}
			for s := 0; s < segments; s++ {
				next := (s + 1) % segments
				b.Buffer.EmitTriangle(ring0[s], apex, ring0[next], color)
			}
		default:
			for s := 0; s < segments; s++ {
				next := (s + 1) % segments
				b.Buffer.EmitQuad(ring0[s], ring0[next], ring1[next], ring1[s], color)
			}
		}
	}
}
