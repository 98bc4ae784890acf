//go:build ignore

package main

import (
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"

	"modelgen/internal/diagnostic"
	"modelgen/internal/emit"
	"modelgen/internal/loader"
	"modelgen/internal/merge"
	"modelgen/internal/registry"
	"modelgen/internal/resolve"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("usage: go run debug_dump_registries.go <schema-file-or-dir>")
		os.Exit(1)
	}

	reg := registry.New()
	var diags diagnostic.Diagnostics

	if err := loader.New(reg, &diags).Load(os.Args[1], true); err != nil {
		fmt.Println("load:", err)
		os.Exit(1)
	}

	fmt.Println("=== structural types ===")
	spew.Dump(reg.StructuralTypes)
	fmt.Println("=== scalar types ===")
	spew.Dump(reg.ScalarTypes)

	resolver := resolve.New(reg, &diags, nil)
	resolver.BuildTable()

	artifacts := emit.New(reg, merge.New(reg, &diags), resolver, &diags).EmitAll()

	fmt.Println("=== artifacts ===")
	spew.Dump(artifacts)

	diags.Report(os.Stderr)
}
