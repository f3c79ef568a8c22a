package main

import (
	"fmt"

	"github.com/philipparndt/prints/pkg/analysis"
	"github.com/philipparndt/prints/pkg/stl"
	"github.com/spf13/cobra"
)

func (c *cli) inspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <file.stl>",
		Short: "Show mesh statistics of an existing STL file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			model, err := stl.Parse(args[0])
			if err != nil {
				return fmt.Errorf("failed to parse %s: %w", args[0], err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "File: %s\n", args[0])
			if model.Name != "" {
				fmt.Fprintf(out, "Name: %s\n", model.Name)
			}
			for _, line := range analysis.AnalyzeModel(model).Lines() {
				fmt.Fprintf(out, "  %s\n", line)
			}
			return nil
		},
	}
}
