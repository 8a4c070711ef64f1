package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/jhump/jpoet"
	"github.com/jhump/jpoet/internal/classdef"
)

func newRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render <file>",
		Short: "Print the Java source of every class defined in a file",
		Long: `Print the Java source of every class defined in a YAML or TOML
definition file. Classes are separated by a blank line.

Examples:
  jpoet render shapes.yaml
  jpoet render -vv model.toml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, args[0], cmd.OutOrStdout())
		},
	}
	return cmd
}

func runRender(cmd *cobra.Command, file string, out io.Writer) error {
	classes, err := loadClasses(cmd, jpoet.NewRegistry(), file)
	if err != nil {
		return err
	}
	for i, c := range classes {
		if i > 0 {
			fmt.Fprintln(out)
		}
		if err := jpoet.WriteJavaFile(out, c); err != nil {
			return fmt.Errorf("render %s: %w", c.Name(), err)
		}
	}
	return nil
}

func loadClasses(cmd *cobra.Command, reg *jpoet.Registry, file string) ([]*jpoet.Class, error) {
	f, err := classdef.Load(cmd.Context(), file)
	if err != nil {
		return nil, err
	}
	return f.Build(reg)
}
