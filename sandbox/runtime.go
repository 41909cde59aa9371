package sandbox

import (
	"fmt"
	"regexp"
	"time"

	"github.com/dop251/goja"

	"scenecore/core"
	"scenecore/mesh"
	"scenecore/scene"
)

// prologueLines counts the lines the runner injects ahead of user source
// when wrapping it in an IIFE, so reported error line numbers can be
// translated back to the user's own input (spec §9, "Error line numbers").
const prologueLines = 1

// DefaultTimeout is the sandbox's wall-clock execution budget. spec.md
// recommends 60-300s; 60s is the floor, chosen so a runaway snippet never
// blocks a generation for longer than a minute.
const DefaultTimeout = 60 * time.Second

// RuntimeError reports a user-code exception: its message, the line
// number within the user's own source (not the wrapped program), and how
// many vertices had already been emitted before the throw.
type RuntimeError struct {
	Message       string
	Line          int
	VerticesSoFar uint32
}

func (e *RuntimeError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("runtime error at line %d: %s", e.Line, e.Message)
	}
	return fmt.Sprintf("runtime error: %s", e.Message)
}

// TimeoutError reports that a generation exceeded its wall-clock budget.
type TimeoutError struct {
	Timeout time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("sandbox exceeded its %s timeout", e.Timeout)
}

// CancelledError reports an explicitly cancelled generation.
type CancelledError struct{}

func (e *CancelledError) Error() string { return "generation cancelled" }

// RunResult is everything the sandbox produces on a clean run.
type RunResult struct {
	Buffer      *mesh.Buffer
	Material    core.MaterialHints
	ConsoleLogs []string
}

// Run validates nothing itself (callers must run Validate first) —  it
// constructs a fresh goja runtime, injects every binding, wraps source in
// a one-line IIFE prologue, and executes it under a wall-clock timeout.
// cancel, if non-nil, is closed to request early termination; it races
// the timeout and whichever fires first determines the returned error.
func Run(source string, bounds scene.SceneBounds, seed uint32, timeout time.Duration, cancel <-chan struct{}) (*RunResult, error) {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	rt := goja.New()
	builder := mesh.NewBuilder()
	console := &consoleSink{}
	bind(rt, builder, bounds, seed, console)

	wrapped := "(function(){\n" + source + "\n})()"

	done := make(chan struct{})
	timer := time.AfterFunc(timeout, func() {
		rt.Interrupt(&TimeoutError{Timeout: timeout})
	})
	defer timer.Stop()

	if cancel != nil {
		go func() {
			select {
			case <-cancel:
				rt.Interrupt(&CancelledError{})
			case <-done:
			}
		}()
	}

	_, err := rt.RunString(wrapped)
	close(done)

	if err != nil {
		return nil, translateError(err, builder.Buffer.VertexCount)
	}

	return &RunResult{
		Buffer:      builder.Buffer,
		Material:    builder.Material,
		ConsoleLogs: console.lines,
	}, nil
}

var lineNumberPattern = regexp.MustCompile(`:(\d+):\d+`)

// translateError classifies a goja execution error into one of the
// facade's typed error kinds, adjusting any line number it can find back
// to the user's own source by subtracting the injected prologue.
func translateError(err error, verticesSoFar uint32) error {
	if interrupted, ok := err.(*goja.InterruptedError); ok {
		switch v := interrupted.Value().(type) {
		case *TimeoutError:
			return v
		case *CancelledError:
			return v
		}
		return &RuntimeError{Message: interrupted.Error(), VerticesSoFar: verticesSoFar}
	}

	if exc, ok := err.(*goja.Exception); ok {
		line := 0
		if m := lineNumberPattern.FindStringSubmatch(exc.String()); m != nil {
			if n, perr := parseLine(m[1]); perr == nil {
				line = n - prologueLines
				if line < 0 {
					line = 0
				}
			}
		}
		return &RuntimeError{
			Message:       exc.Value().String(),
			Line:          line,
			VerticesSoFar: verticesSoFar,
		}
	}

	return &RuntimeError{Message: err.Error(), VerticesSoFar: verticesSoFar}
}

func parseLine(s string) (int, error) {
	n := 0
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("not a number: %q", s)
		}
		n = n*10 + int(c-'0')
	}
	return n, nil
}
