package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *cli) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the available designs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			names := c.registry.Names()
			width := 0
			for _, name := range names {
				width = max(width, len(name))
			}

			out := cmd.OutOrStdout()
			for _, name := range names {
				m, err := c.registry.Lookup(name)
				if err != nil {
					fmt.Fprintf(out, "%-*s  (unusable: %v)\n", width, name, err)
					continue
				}
				fmt.Fprintf(out, "%-*s  %s\n", width, name, m.Summary())
			}
			return nil
		},
	}
}
