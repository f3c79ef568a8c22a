package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/philipparndt/prints/internal/design"
	_ "github.com/philipparndt/prints/internal/designs/all"
	"github.com/philipparndt/prints/internal/pipeline"
)

func main() {
	if err := Execute(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// Execute runs one command line against the registered designs. Tokens
// after the first "--" are design parameters and never reach cobra.
func Execute(args []string, stdout, stderr io.Writer) error {
	command, parameters := pipeline.SplitArgs(args)

	root := newRootCmd(design.Default(), parameters)
	root.SetArgs(command)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.Execute()
	var help *pipeline.HelpError
	if errors.As(err, &help) {
		fmt.Fprintf(stdout, "Parameters of %s:\n%s", help.Module, help.Usage)
		return nil
	}
	return err
}
