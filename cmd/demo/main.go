// Command demo is a small CLI around the engine facade: it reads a
// procedural-geometry snippet from a file (or stdin), runs one generation
// against a fixed scene volume, and prints the resulting layer summary.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"scenecore/engine"
	scenemath "scenecore/math"
	"scenecore/scene"
)

func main() {
	var (
		scriptPath = flag.String("script", "", "path to a JS snippet to run (defaults to stdin)")
		seed       = flag.Uint64("seed", 1, "deterministic RNG seed")
		timeout    = flag.Duration("timeout", 10*time.Second, "sandbox wall-clock budget")
	)
	flag.Parse()

	source, err := readSource(*scriptPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "demo: %v\n", err)
		os.Exit(1)
	}

	bounds := scene.SceneBounds{
		Min: scenemath.Vec3{X: -3, Y: -1.5, Z: -6},
		Max: scenemath.Vec3{X: 3, Y: 1.5, Z: -1},
	}

	e := engine.New(*timeout)
	result, err := e.Generate(source, bounds, uint32(*seed))
	if err != nil {
		fmt.Fprintf(os.Stderr, "demo: generation failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("layer %s: %d vertices, %d triangles\n", result.LayerID, result.VertexCount, result.Triangles)
	fmt.Printf("bounds: min=%s max=%s size=%s\n", fmtVec3(result.Bounds.Min), fmtVec3(result.Bounds.Max), fmtVec3(result.Size))
	fmt.Printf("top center: %s   bottom center: %s\n", fmtVec3(result.TopCenter), fmtVec3(result.BottomCenter))

	for _, w := range result.Warnings {
		fmt.Printf("warning: %s\n", w)
	}
	for _, s := range result.Spatial {
		if s.Overlaps {
			fmt.Printf("overlaps layer %s on axis %s (penetration %.3f)\n", s.LayerID, s.Axis, s.PenetrationMag)
		} else {
			fmt.Printf("clear of layer %s on axis %s (gap %.3f)\n", s.LayerID, s.Axis, s.GapMagnitude)
		}
	}
	if result.Nearest != nil {
		fmt.Printf("nearest layer: %s\n", *result.Nearest)
	}
}

func readSource(path string) (string, error) {
	if path == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}

func fmtVec3(v scenemath.Vec3) string {
	return fmt.Sprintf("(%.3f, %.3f, %.3f)", v.X, v.Y, v.Z)
}
