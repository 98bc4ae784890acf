// Package compile wires the loader, merge, resolve and emit phases into the
// single-shot compilation pipeline the CLI drives.
package compile

import (
	"fmt"

	"modelgen/internal/diagnostic"
	"modelgen/internal/emit"
	"modelgen/internal/gen"
	"modelgen/internal/loader"
	"modelgen/internal/merge"
	"modelgen/internal/registry"
	"modelgen/internal/resolve"
)

// Options is the invocation surface of one compilation run.
type Options struct {
	// Input is the schema file or directory to load.
	Input string
	// Recurse enables recursive schema discovery under a directory input.
	Recurse bool
	// Output is the directory artifacts are written into.
	Output string
	// Package is the target namespace string applied to every artifact.
	Package string
	// Clean deletes the non-directory entries directly inside the output
	// directory before writing. Not recursive.
	Clean bool
	// Validate and StrictNames are accepted for invocation compatibility
	// and do not affect emission.
	Validate    bool
	StrictNames bool
	// Overrides pins scalar type names to kinds ahead of classification.
	Overrides map[string]resolve.ScalarKind
}

// Run executes one compilation: load the schema graph, build the scalar
// table, merge and emit every type, render and write the artifacts. All
// state lives in the registry and caches created here; nothing survives the
// call.
func Run(opts Options, diags *diagnostic.Diagnostics) error {
	reg := registry.New()

	if err := loader.New(reg, diags).Load(opts.Input, opts.Recurse); err != nil {
		return err
	}

	resolver := resolve.New(reg, diags, opts.Overrides)
	resolver.BuildTable()

	merger := merge.New(reg, diags)
	artifacts := emit.New(reg, merger, resolver, diags).EmitAll()

	files, err := gen.Render(artifacts, opts.Package)
	if err != nil {
		return err
	}

	if err := gen.WriteFiles(files, opts.Output, opts.Clean); err != nil {
		return err
	}

	diags.AddInfo("done", fmt.Sprintf("%d artifacts written to %s", len(files), opts.Output), "", "")

	return nil
}
