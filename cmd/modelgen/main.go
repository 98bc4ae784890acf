// Package main provides the CLI entrypoint for modelgen.
//
// modelgen compiles a graph of XSD schema documents into Go model types:
//   - Loads schema files and resolves import/include references transitively
//   - Merges same-named complex type definitions split across files
//   - Classifies simple types onto a small set of scalar representations
//   - Emits one Go source file per enum and per structural type, tagged for
//     round-trip XML serialization
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"modelgen/internal/compile"
	"modelgen/internal/config"
	"modelgen/internal/diagnostic"
)

var flags struct {
	input       string
	recurse     bool
	output      string
	pkg         string
	clean       bool
	validate    bool
	strictNames bool
	configPath  string
}

var rootCmd = &cobra.Command{
	Use:   "modelgen",
	Short: "Compile XSD schema documents into Go model types",
	Long: `modelgen loads a schema file or directory, resolves imports and includes,
and writes one Go source file per generated enum and structural type.

Recoverable conditions (missing import targets, dangling type references)
are reported on stderr and never fail the run; only malformed schema
documents do.`,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVarP(&flags.input, "input", "i", "", "schema file or directory to compile (required)")
	rootCmd.Flags().BoolVarP(&flags.recurse, "recurse", "r", false, "discover schema files recursively under the input directory")
	rootCmd.Flags().StringVarP(&flags.output, "output", "o", "", "output directory for generated files")
	rootCmd.Flags().StringVarP(&flags.pkg, "pkg", "p", "", "target namespace applied to every emitted artifact (the generated package name)")
	rootCmd.Flags().BoolVar(&flags.clean, "clean", false, "delete files directly inside the output directory before writing (not recursive)")
	rootCmd.Flags().BoolVar(&flags.validate, "validate", false, "accepted for compatibility; has no effect on emission")
	rootCmd.Flags().BoolVar(&flags.strictNames, "strict-names", false, "accepted for compatibility; has no effect on emission")
	rootCmd.Flags().StringVarP(&flags.configPath, "config", "c", "", "optional YAML config file")

	_ = rootCmd.MarkFlagRequired("input")
}

func run(cmd *cobra.Command, _ []string) error {
	cfg := config.Default()
	if flags.configPath != "" {
		loaded, err := config.LoadFile(flags.configPath)
		if err != nil {
			return err
		}

		cfg = loaded
	}

	// flags win over config file values
	if flags.output == "" {
		flags.output = cfg.Output
	}

	if flags.pkg == "" {
		flags.pkg = cfg.Package
	}

	overrides, err := cfg.KindOverrides()
	if err != nil {
		return err
	}

	var diags diagnostic.Diagnostics
	defer diags.Report(cmd.ErrOrStderr())

	return compile.Run(compile.Options{
		Input:       flags.input,
		Recurse:     flags.recurse,
		Output:      flags.output,
		Package:     flags.pkg,
		Clean:       flags.clean,
		Validate:    flags.validate,
		StrictNames: flags.strictNames,
		Overrides:   overrides,
	}, &diags)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "modelgen:", err)
		os.Exit(1)
	}
}
