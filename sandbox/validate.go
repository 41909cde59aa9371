// Package sandbox parses, statically validates, and executes untrusted
// procedural-geometry snippets. Validation (this file) and execution
// (runtime.go) share the same JavaScript grammar via goja's parser, so a
// construct the validator sees is exactly the construct the runtime would
// have run — there's no separate, driftable IR between the two stages.
package sandbox

import (
	"fmt"
	"reflect"
	"regexp"

	"github.com/dop251/goja/ast"
	"github.com/dop251/goja/file"
	"github.com/dop251/goja/parser"
)

// forbiddenIdentifiers names every global the static validator rejects:
// browser/Worker APIs, dynamic code loading, and timers that would let a
// snippet escape its time budget or reach outside the sandbox.
var forbiddenIdentifiers = map[string]bool{
	"fetch": true, "XMLHttpRequest": true, "Worker": true, "eval": true,
	"Function": true, "import": true, "require": true, "globalThis": true,
	"window": true, "document": true, "self": true, "postMessage": true,
	"importScripts": true, "SharedArrayBuffer": true, "Atomics": true,
	"WebSocket": true, "EventSource": true, "navigator": true, "location": true,
	"localStorage": true, "sessionStorage": true, "indexedDB": true,
	"crypto": true, "setTimeout": true, "setInterval": true,
	"requestAnimationFrame": true,
}

var forbiddenURLPattern = regexp.MustCompile(`^(data:|blob:|https?:)`)

// maxNestingDepth is the AST depth ceiling spec.md requires a snippet to
// stay under; exceeding it is rejected rather than risking a stack
// overflow deep in the interpreter.
const maxNestingDepth = 64

// ValidationError reports why static validation rejected a snippet.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s", e.Reason)
}

// Validate parses source as a JavaScript program and walks the resulting
// AST, rejecting forbidden identifiers, forbidden URL string literals, and
// excessive nesting depth. A parse error is itself a validation failure —
// there is no construct the validator should accept that the parser can't
// also produce a tree for.
func Validate(source string) error {
	var program *ast.Program
	var err error
	program, err = parser.ParseFile(file.NewFileSet(), "generated.js", source, 0)
	if err != nil {
		return &ValidationError{Reason: fmt.Sprintf("parse error: %v", err)}
	}

	v := &validator{maxDepth: 0}
	v.walk(reflect.ValueOf(program), 0)

	if v.err != nil {
		return v.err
	}
	if v.maxDepth > maxNestingDepth {
		return &ValidationError{Reason: fmt.Sprintf("AST nesting depth %d exceeds limit of %d", v.maxDepth, maxNestingDepth)}
	}
	return nil
}

type validator struct {
	maxDepth int
	err      error
}

// walk recurses generically over the AST's exported struct fields via
// reflection rather than a hand-maintained type switch over every
// ast.Statement/ast.Expression variant: goja's grammar has dozens of node
// types and a missed case in a hardcoded switch would silently pass
// dangerous constructs through. Reflection sees every field regardless of
// which concrete node type it belongs to.
func (v *validator) walk(rv reflect.Value, depth int) {
	if v.err != nil {
		return
	}
	if depth > v.maxDepth {
		v.maxDepth = depth
	}
	if !rv.IsValid() {
		return
	}

	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface:
		if rv.IsNil() {
			return
		}
		v.walk(rv.Elem(), depth)
	case reflect.Slice, reflect.Array:
		for i := 0; i < rv.Len(); i++ {
			v.walk(rv.Index(i), depth+1)
		}
	case reflect.Struct:
		v.inspectNode(rv)
		if v.err != nil {
			return
		}
		for i := 0; i < rv.NumField(); i++ {
			field := rv.Type().Field(i)
			if field.PkgPath != "" {
				continue // unexported
			}
			v.walk(rv.Field(i), depth+1)
		}
	}
}

// inspectNode checks a single struct node (by its reflected type name,
// since ast.Identifier/ast.StringLiteral aren't exported as interfaces we
// can type-switch on from outside the ast package in a future-proof way)
// for the two leaf cases the validator cares about.
func (v *validator) inspectNode(rv reflect.Value) {
	typeName := rv.Type().Name()

	switch typeName {
	case "Identifier":
		name := fieldString(rv, "Name")
		if name != "" && forbiddenIdentifiers[name] {
			v.err = &ValidationError{Reason: fmt.Sprintf("forbidden identifier %q", name)}
		}
	case "StringLiteral":
		value := fieldString(rv, "Value")
		if forbiddenURLPattern.MatchString(value) {
			v.err = &ValidationError{Reason: fmt.Sprintf("forbidden URL-like string literal %q", value)}
		}
	}
}

// fieldString reads a named field off a reflected struct as a string,
// tolerating goja's unistring.String (a defined string type) and plain
// string fields alike. Returns "" if the field is absent or not a string.
func fieldString(rv reflect.Value, name string) string {
	f := rv.FieldByName(name)
	if !f.IsValid() {
		return ""
	}
	if f.Kind() == reflect.String {
		return f.String()
	}
	return ""
}
