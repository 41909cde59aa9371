// Package engine is the facade orchestrating one generation end to end:
// static validation, sandboxed execution, output validation, and layer
// creation, per spec §4.11. It also owns the layer store and exposes
// remove/clear/list_meta bookkeeping to the host application.
package engine

import (
	"fmt"
	"sync"
	"time"

	"scenecore/math"
	"scenecore/mesh"
	"scenecore/meshcheck"
	"scenecore/sandbox"
	"scenecore/scene"
)

// ValidationError wraps a static-validation rejection (spec §7). It's a
// distinct type from sandbox.ValidationError so callers can errors.As
// against the facade's own error taxonomy without reaching into sandbox.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return fmt.Sprintf("validation error: %s", e.Reason) }

// MeshValidationError wraps one or more hard C8 failures; the mesh that
// triggered them is discarded, not added as a layer.
type MeshValidationError struct {
	Reasons []string
}

func (e *MeshValidationError) Error() string {
	msg := "mesh validation failed:"
	for _, r := range e.Reasons {
		msg += " " + r + ";"
	}
	return msg
}

// GenerationResult is what a successful generate() call returns.
type GenerationResult struct {
	LayerID      string
	VertexCount  uint32
	Triangles    uint32
	Bounds       math.AABB
	TopCenter    math.Vec3
	BottomCenter math.Vec3
	Size         math.Vec3
	Spatial      []SpatialSummary
	Nearest      *string
	Warnings     []string
}

// SpatialSummary is one prior-layer relationship, shaped for the external
// interface in spec §6.
type SpatialSummary struct {
	LayerID        string
	Overlaps       bool
	Axis           string
	GapMagnitude   float32
	PenetrationMag float32
	CenterDistance float32
}

// Engine owns the layer store and serializes generations: spec §5 requires
// at most one generation per store in flight at a time.
type Engine struct {
	store   *scene.Store
	mu      sync.Mutex // held for the duration of one generate() call
	cancel  chan struct{}
	timeout time.Duration
}

// New returns an Engine with an empty layer store and the given sandbox
// timeout (sandbox.DefaultTimeout if zero).
func New(timeout time.Duration) *Engine {
	return &Engine{store: scene.NewStore(), timeout: timeout}
}

// Generate runs the full C7->C9->C8->C10 pipeline for one snippet against
// sceneBounds, seeded deterministically by seed.
func (e *Engine) Generate(source string, sceneBounds scene.SceneBounds, seed uint32) (*GenerationResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := sandbox.Validate(source); err != nil {
		return nil, &ValidationError{Reason: err.Error()}
	}

	cancelCh := make(chan struct{})
	e.cancel = cancelCh

	runResult, err := sandbox.Run(source, sceneBounds, seed, e.timeout, cancelCh)
	e.cancel = nil
	if err != nil {
		return nil, err
	}

	check := meshcheck.Check(runResult.Buffer, math.AABB{Min: sceneBounds.Min, Max: sceneBounds.Max})
	if !check.OK() {
		return nil, &MeshValidationError{Reasons: check.Errors}
	}

	builder := &mesh.Builder{Buffer: runResult.Buffer, Material: runResult.Material}
	layer := scene.NewLayer(builder)
	e.store.Add(layer)

	result := summarize(layer, e.store, check.Warnings, runResult.ConsoleLogs)
	return result, nil
}

// Cancel requests termination of whatever generation is currently in
// flight, if any. It's a no-op if nothing is running.
func (e *Engine) Cancel() {
	if ch := e.cancel; ch != nil {
		close(ch)
	}
}

// Remove drops a layer by id.
func (e *Engine) Remove(id string) bool {
	return e.store.Remove(id)
}

// Clear drops every layer.
func (e *Engine) Clear() {
	e.store.Clear()
}

// ListMeta returns every live layer's metadata.
func (e *Engine) ListMeta() []scene.LayerMeta {
	return e.store.ListMeta()
}

func summarize(layer *scene.Layer, store *scene.Store, meshWarnings, consoleWarnings []string) *GenerationResult {
	warnings := append([]string{}, meshWarnings...)
	warnings = append(warnings, consoleWarnings...)

	result := &GenerationResult{
		LayerID:     layer.ID,
		VertexCount: layer.Buffer.VertexCount,
		Triangles:   layer.Buffer.VertexCount / 3,
		Bounds:      layer.Bounds,
		Size:        layer.Bounds.Size(),
		Warnings:    warnings,
	}
	center := layer.Bounds.Center()
	result.TopCenter = math.Vec3{X: center.X, Y: layer.Bounds.Max.Y, Z: center.Z}
	result.BottomCenter = math.Vec3{X: center.X, Y: layer.Bounds.Min.Y, Z: center.Z}

	others := make([]*scene.Layer, 0)
	for _, l := range store.All() {
		if l.ID != layer.ID {
			others = append(others, l)
		}
	}
	if len(others) == 0 {
		return result
	}

	var nearestID string
	var nearestDist float32 = -1
	for _, other := range others {
		rel := scene.Relationship(layer, other)
		dist := layer.Bounds.Center().Distance(other.Bounds.Center())
		summary := SpatialSummary{LayerID: other.ID, CenterDistance: dist}
		if rel.Overlapping {
			summary.Overlaps = true
			summary.Axis = rel.Axis
			summary.PenetrationMag = rel.Magnitude
		} else {
			summary.Axis = rel.Axis
			summary.GapMagnitude = rel.Magnitude
		}
		result.Spatial = append(result.Spatial, summary)

		if nearestDist < 0 || dist < nearestDist {
			nearestDist = dist
			nearestID = other.ID
		}
	}
	result.Nearest = &nearestID
	return result
}
