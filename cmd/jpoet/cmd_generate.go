package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jhump/jpoet"
	"github.com/jhump/jpoet/internal/sink"
)

func newGenerateCmd() *cobra.Command {
	var outDir string
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "generate <file>...",
		Short: "Write the Java source of every class defined in the given files",
		Long: `Write the Java source of every class defined in the given YAML or
TOML definition files. Each class is written to
<out>/<package directories>/<Name>.java. Files that already have the
generated content are not rewritten.

All files share one set of type names, so the same type may be referenced
from several files.

Examples:
  jpoet generate --out src/main/java model.yaml
  jpoet generate --out file:///tmp/gen --dry-run a.yaml b.toml`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, args, outDir, dryRun)
		},
	}

	cmd.Flags().StringVarP(&outDir, "out", "o", ".", "output directory or URL")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "report what would be written without writing")

	return cmd
}

func runGenerate(cmd *cobra.Command, files []string, outDir string, dryRun bool) error {
	reg := jpoet.NewRegistry()
	var classes []*jpoet.Class
	for _, file := range files {
		cs, err := loadClasses(cmd, reg, file)
		if err != nil {
			return err
		}
		classes = append(classes, cs...)
	}

	if !strings.Contains(outDir, "://") {
		abs, err := filepath.Abs(outDir)
		if err != nil {
			return fmt.Errorf("cannot resolve path %s: %w", outDir, err)
		}
		outDir = abs
	}
	w := sink.NewWriter(outDir, dryRun)
	results, err := w.WriteAll(cmd.Context(), classes...)
	out := cmd.OutOrStdout()
	for _, r := range results {
		fmt.Fprintf(out, "%-9s %s\n", r.Status, r.URL)
	}
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}
	return nil
}
