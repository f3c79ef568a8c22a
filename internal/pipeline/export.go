package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/philipparndt/prints/internal/ctxlog"
	"github.com/philipparndt/prints/internal/design"
	"github.com/philipparndt/prints/internal/params"
	"github.com/philipparndt/prints/pkg/export"
	"github.com/philipparndt/prints/version"
)

// ErrExists reports a destination file that exists without --force.
var ErrExists = errors.New("destination exists")

// Options are the command-level export settings.
type Options struct {
	Out                 string
	Force               bool
	Mkdirp              bool
	SerializeParameters bool
	Only                []string
	Format              export.Format
}

// Output is one file to write.
type Output struct {
	Index  int
	Result design.Result
	Path   string
}

// OutputPaths computes the destination of every selected result:
// <out>[-<name or index>][-<serialized params>]<ext>. The name part is only
// added when the module generated more than one result, and the --only
// filter is ignored for a single result. An existing directory, or an out
// ending in a path separator, gets the module name as file stem.
func OutputPaths(gen *Generation, opts Options, ext string) []Output {
	base := opts.Out
	if isDirectory(base) {
		base = filepath.Join(base, gen.Module.Name)
	}

	suffix := ""
	if opts.SerializeParameters && gen.Suffix != "" {
		suffix = "-" + gen.Suffix
	}

	if len(gen.Results) == 1 {
		return []Output{{Index: 0, Result: gen.Results[0], Path: base + suffix + ext}}
	}

	var outputs []Output
	for i, r := range gen.Results {
		if len(opts.Only) > 0 && !slices.Contains(opts.Only, r.Name) {
			continue
		}
		outputs = append(outputs, Output{
			Index:  i,
			Result: r,
			Path:   base + "-" + r.Label(i) + suffix + ext,
		})
	}
	return outputs
}

func isDirectory(path string) bool {
	if strings.HasSuffix(path, string(filepath.Separator)) || strings.HasSuffix(path, "/") {
		return true
	}
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// WriteFunc writes one selected result to w.
type WriteFunc func(w io.Writer, out Output) error

// Emit writes every selected result of gen to a file with extension ext
// through write and reports each written path to w. All destinations are
// checked before the first file is created.
func Emit(ctx context.Context, w io.Writer, gen *Generation, opts Options, ext string, write WriteFunc) ([]string, error) {
	logger := ctxlog.FromContext(ctx)

	// The parent of out has to exist before OutputPaths decides whether out
	// names a directory.
	if opts.Mkdirp && opts.Out != "" {
		if err := os.MkdirAll(filepath.Dir(opts.Out), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create directory for %s: %w", opts.Out, err)
		}
	}

	outputs := OutputPaths(gen, opts, ext)
	if len(outputs) == 0 {
		return nil, fmt.Errorf("%w: no results match --only %v", ErrInput, opts.Only)
	}
	if err := checkDestinations(outputs, opts.Force); err != nil {
		return nil, err
	}

	var written []string
	for _, out := range outputs {
		if opts.Mkdirp {
			if err := os.MkdirAll(filepath.Dir(out.Path), 0o755); err != nil {
				return written, fmt.Errorf("failed to create directory for %s: %w", out.Path, err)
			}
		}
		if err := writeFile(out, write); err != nil {
			return written, err
		}

		logger.Debug("Wrote result.", "module", gen.Module.Name, "result", out.Result.Label(out.Index), "path", out.Path)
		fmt.Fprintf(w, "[%s] generated: %s\n", time.Now().Format(time.DateTime), out.Path)
		written = append(written, out.Path)
	}
	return written, nil
}

// Export writes every selected result of gen in opts.Format (3MF when
// unset), with the flattened parameters as file metadata.
func Export(ctx context.Context, w io.Writer, gen *Generation, opts Options) ([]string, error) {
	format := opts.Format
	if format == "" {
		format = export.Format3MF
	}
	if _, err := export.ParseFormat(string(format)); err != nil {
		return nil, err
	}

	flat, err := params.Flatten(gen.Params)
	if err != nil {
		return nil, err
	}

	return Emit(ctx, w, gen, opts, format.Extension(), func(w io.Writer, out Output) error {
		label := out.Result.Label(out.Index)
		meta := export.Metadata{
			Title:       gen.Module.Name + " " + label,
			Application: version.Application(),
			Params:      flat,
		}
		return export.Write(w, format, out.Result.Part.Model(label), meta)
	})
}

func checkDestinations(outputs []Output, force bool) error {
	seen := map[string]bool{}
	for _, out := range outputs {
		if seen[out.Path] {
			return fmt.Errorf("%w: %s would be written twice; give the results distinct names", ErrInput, out.Path)
		}
		seen[out.Path] = true

		if force {
			continue
		}
		if _, err := os.Stat(out.Path); err == nil {
			return fmt.Errorf("%w: %s exists; use --force to overwrite", ErrExists, out.Path)
		} else if !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("failed to check %s: %w", out.Path, err)
		}
	}
	return nil
}

func writeFile(out Output, write WriteFunc) (err error) {
	f, err := os.Create(out.Path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", out.Path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", out.Path, cerr)
		}
	}()

	if err := write(f, out); err != nil {
		return fmt.Errorf("failed to write %s: %w", out.Path, err)
	}
	return nil
}
