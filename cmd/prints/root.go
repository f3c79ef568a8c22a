package main

import (
	"fmt"

	"github.com/philipparndt/prints/internal/ctxlog"
	"github.com/philipparndt/prints/internal/design"
	"github.com/philipparndt/prints/internal/pipeline"
	"github.com/philipparndt/prints/version"
	"github.com/spf13/cobra"
)

// cli carries what every command needs: the designs to choose from and the
// parameter tokens split off the command line.
type cli struct {
	registry   *design.Registry
	parameters []string
	logLevel   string
	logFormat  string
}

func newRootCmd(registry *design.Registry, parameters []string) *cobra.Command {
	c := &cli{registry: registry, parameters: parameters}

	root := &cobra.Command{
		Use:   "prints <design> <export|view|preview|describe|info> [flags] [-- parameters]",
		Short: "Parametric designs for 3D printing",
		Long: `prints generates printable parts from parametric designs.

Every design takes its parameters as flags after "--":

  prints ring export -o out/ring -- --outer_r=25 --height=4

Run "prints <design> describe" to see which parameters a design has.`,
		Version:           version.String(),
		Args:              cobra.ArbitraryArgs,
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: c.setupLogging,
		RunE:              c.runUnknown,
	}
	root.PersistentFlags().StringVar(&c.logLevel, "log-level", "info", "log level: debug, info, warn or error")
	root.PersistentFlags().StringVar(&c.logFormat, "log-format", "text", "log format: text or json")

	for _, name := range registry.Names() {
		root.AddCommand(c.designCmd(name))
	}
	root.AddCommand(c.listCmd(), c.inspectCmd(), newCompletionCmd())
	return root
}

func (c *cli) setupLogging(cmd *cobra.Command, _ []string) error {
	logger, err := ctxlog.New(c.logLevel, c.logFormat, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	cmd.SetContext(ctxlog.WithLogger(cmd.Context(), logger))
	return nil
}

// runUnknown handles a first argument that is not a registered design, so
// the error says whether the name is malformed or merely unknown.
func (c *cli) runUnknown(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return cmd.Help()
	}
	if _, err := c.registry.Lookup(args[0]); err != nil {
		return err
	}
	return fmt.Errorf("%w: %s is missing an action", pipeline.ErrInput, args[0])
}
