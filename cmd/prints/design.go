package main

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/philipparndt/prints/internal/ctxlog"
	"github.com/philipparndt/prints/internal/params"
	"github.com/philipparndt/prints/internal/pipeline"
	"github.com/philipparndt/prints/pkg/analysis"
	"github.com/philipparndt/prints/pkg/export"
	"github.com/philipparndt/prints/pkg/viewer"
	"github.com/philipparndt/prints/pkg/watcher"
	"github.com/spf13/cobra"
)

const watchDebounce = 200 * time.Millisecond

// designCmd groups the actions available for one registered design.
func (c *cli) designCmd(name string) *cobra.Command {
	short := "Generate the " + name + " design"
	if m, err := c.registry.Lookup(name); err == nil && m.Summary() != "" {
		short = m.Summary()
	}

	cmd := &cobra.Command{
		Use:   name + " <action>",
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return fmt.Errorf("%w: %s is missing an action; want export, view, preview, describe or info", pipeline.ErrInput, name)
			}
			return fmt.Errorf("%w: unknown action %q for %s", pipeline.ErrInput, args[0], name)
		},
	}
	cmd.AddCommand(
		c.exportCmd(name),
		c.viewCmd(name),
		c.previewCmd(name),
		c.describeCmd(name),
		c.infoCmd(name),
	)
	return cmd
}

// generate looks the design up and runs it with the command line's
// parameters.
func (c *cli) generate(cmd *cobra.Command, name, preset string) (*pipeline.Generation, error) {
	m, err := c.registry.Lookup(name)
	if err != nil {
		return nil, err
	}
	return pipeline.Generate(cmd.Context(), m, c.parameters, preset)
}

func (c *cli) exportCmd(name string) *cobra.Command {
	opts := pipeline.Options{Format: export.Format3MF}
	var preset string

	cmd := &cobra.Command{
		Use:   "export -o <out> [flags] [-- parameters]",
		Short: "Write the design's results to files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			gen, err := c.generate(cmd, name, preset)
			if err != nil {
				return err
			}
			_, err = pipeline.Export(cmd.Context(), cmd.OutOrStdout(), gen, opts)
			return err
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.Out, "out", "o", "", "output path without extension, or an existing directory")
	f.BoolVarP(&opts.Force, "force", "f", false, "overwrite existing files")
	f.BoolVarP(&opts.Mkdirp, "mkdirp", "m", false, "create missing parent directories")
	f.BoolVarP(&opts.SerializeParameters, "serialize-parameters", "p", true, "append the given parameters to file names")
	f.StringArrayVar(&opts.Only, "only", nil, "export only the named result (repeatable)")
	f.VarP(&opts.Format, "type", "t", "file format: 3mf, stl or step")
	f.StringVar(&preset, "preset", "", "YAML or HCL file with parameter values")
	_ = cmd.MarkFlagRequired("out")
	return cmd
}

func (c *cli) previewCmd(name string) *cobra.Command {
	opts := pipeline.Options{SerializeParameters: true}
	var preset string
	var size int

	cmd := &cobra.Command{
		Use:   "preview -o <out> [flags] [-- parameters]",
		Short: "Render a PNG image of each result",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			gen, err := c.generate(cmd, name, preset)
			if err != nil {
				return err
			}
			_, err = pipeline.Emit(cmd.Context(), cmd.OutOrStdout(), gen, opts, ".png", func(w io.Writer, out pipeline.Output) error {
				label := out.Result.Label(out.Index)
				return viewer.WritePNG(w, out.Result.Part.Model(label), size, name+" "+label)
			})
			return err
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.Out, "out", "o", "", "output path without extension, or an existing directory")
	f.IntVar(&size, "size", 512, "image width and height in pixels")
	f.BoolVarP(&opts.Force, "force", "f", false, "overwrite existing files")
	f.BoolVarP(&opts.Mkdirp, "mkdirp", "m", false, "create missing parent directories")
	f.StringVar(&preset, "preset", "", "YAML or HCL file with parameter values")
	_ = cmd.MarkFlagRequired("out")
	return cmd
}

func (c *cli) viewCmd(name string) *cobra.Command {
	var preset string
	var watch bool

	cmd := &cobra.Command{
		Use:   "view [flags] [-- parameters]",
		Short: "Open the design's results in a window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if watch && preset == "" {
				return fmt.Errorf("%w: --watch needs a --preset to watch", pipeline.ErrInput)
			}

			gen, err := c.generate(cmd, name, preset)
			if err != nil {
				return err
			}

			if !watch {
				viewer.Run(name, viewParts(gen), nil)
				return nil
			}

			feed := newPartFeed()
			fw, err := c.watchPreset(cmd, name, preset, feed)
			if err != nil {
				return err
			}
			viewer.Run(name, viewParts(gen), feed.updates)

			err = fw.Close()
			feed.close()
			return err
		},
	}

	cmd.Flags().StringVar(&preset, "preset", "", "YAML or HCL file with parameter values")
	cmd.Flags().BoolVar(&watch, "watch", false, "regenerate whenever the preset file changes")
	return cmd
}

// watchPreset regenerates the design on every change to preset and sends
// the new parts to feed. A failed regeneration is logged and the window
// keeps showing the previous parts.
func (c *cli) watchPreset(cmd *cobra.Command, name, preset string, feed *partFeed) (*watcher.FileWatcher, error) {
	ctx := cmd.Context()
	logger := ctxlog.FromContext(ctx)

	fw, err := watcher.NewFileWatcher(watchDebounce)
	if err != nil {
		return nil, err
	}
	err = fw.Watch([]string{preset}, func(string) {
		gen, err := c.generate(cmd, name, preset)
		if err != nil {
			logger.Error("Regeneration failed.", "module", name, "error", err)
			return
		}
		logger.Info("Regenerated design.", "module", name, "preset", preset)
		if !feed.send(viewParts(gen)) {
			logger.Warn("Viewer is busy; skipping update.", "module", name)
		}
	})
	if err != nil {
		_ = fw.Close()
		return nil, err
	}
	fw.Start(ctx)
	return fw, nil
}

// partFeed hands regenerated parts to the viewer. A regeneration still
// running when the window closes must not send on the closed channel, so
// sends and close are serialized.
type partFeed struct {
	mu      sync.Mutex
	closed  bool
	updates chan []viewer.Part
}

func newPartFeed() *partFeed {
	return &partFeed{updates: make(chan []viewer.Part, 1)}
}

// send reports whether parts were queued. It never blocks.
func (f *partFeed) send(parts []viewer.Part) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return false
	}
	select {
	case f.updates <- parts:
		return true
	default:
		return false
	}
}

func (f *partFeed) close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.closed {
		f.closed = true
		close(f.updates)
	}
}

func viewParts(gen *pipeline.Generation) []viewer.Part {
	parts := make([]viewer.Part, 0, len(gen.Results))
	for i, r := range gen.Results {
		label := r.Label(i)
		parts = append(parts, viewer.Part{Name: label, Model: r.Part.Model(label), Locals: r.Locals})
	}
	return parts
}

func (c *cli) describeCmd(name string) *cobra.Command {
	var preset string

	cmd := &cobra.Command{
		Use:   "describe [flags] [-- parameters]",
		Short: "List the design's parameters and their defaults",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := c.registry.Lookup(name)
			if err != nil {
				return err
			}
			_, fs, err := pipeline.NewParamFlagSet(m)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s: %s\n", m.Name, m.Summary())
			if _, rest, ok := strings.Cut(strings.TrimSpace(m.Doc), "\n"); ok {
				fmt.Fprintf(out, "\n%s\n", strings.TrimSpace(rest))
			}
			fmt.Fprintf(out, "\nParameters:\n%s", fs.FlagUsages())

			if len(c.parameters) == 0 && preset == "" {
				return nil
			}
			p, err := pipeline.ParseParams(m, c.parameters, preset)
			if err != nil {
				return err
			}
			flat, err := params.Flatten(p)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, "\nValues:")
			for _, line := range flatLines(flat) {
				fmt.Fprintf(out, "  %s\n", line)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&preset, "preset", "", "YAML or HCL file with parameter values")
	return cmd
}

func flatLines(flat map[string]any) []string {
	lines := make([]string, 0, len(flat))
	for k, v := range flat {
		lines = append(lines, k+"="+params.FormatValue(v))
	}
	sort.Strings(lines)
	return lines
}

func (c *cli) infoCmd(name string) *cobra.Command {
	var preset string

	cmd := &cobra.Command{
		Use:   "info [flags] [-- parameters]",
		Short: "Show mesh statistics of each result",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			gen, err := c.generate(cmd, name, preset)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for i, r := range gen.Results {
				label := r.Label(i)
				fmt.Fprintf(out, "%s %s\n", name, label)
				for _, line := range analysis.AnalyzeModel(r.Part.Model(label)).Lines() {
					fmt.Fprintf(out, "  %s\n", line)
				}
				if len(r.Locals) > 0 {
					fmt.Fprintln(out, "  Locals:")
					for _, line := range analysis.LocalLines(r.Locals) {
						fmt.Fprintf(out, "    %s\n", line)
					}
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&preset, "preset", "", "YAML or HCL file with parameter values")
	return cmd
}
