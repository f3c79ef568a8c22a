package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/philipparndt/prints/internal/ctxlog"
	"github.com/philipparndt/prints/internal/design"
	"github.com/philipparndt/prints/internal/params"
	"github.com/spf13/pflag"
)

// ErrGeneration reports an entry function that failed or returned
// something other than one or more Results.
var ErrGeneration = errors.New("invalid generation")

// HelpError is returned when the parameter tokens ask for help. Usage lists
// the module's parameter flags.
type HelpError struct {
	Module string
	Usage  string
}

func (e *HelpError) Error() string {
	return "parameter help requested for " + e.Module
}

func (e *HelpError) Unwrap() error {
	return pflag.ErrHelp
}

// Generation is the outcome of one invocation of a design module.
type Generation struct {
	Module  *design.Module
	Params  any
	Results []design.Result
	// Suffix is the serialized parameter tokens, empty when none were given.
	Suffix string
}

// NewParamFlagSet returns a fresh parameter instance for m and the flag set
// bound to it.
func NewParamFlagSet(m *design.Module) (any, *pflag.FlagSet, error) {
	p := m.NewParams()
	fs, _, err := params.NewFlagSet(m.Name, p)
	if err != nil {
		return nil, nil, err
	}
	fs.SetOutput(io.Discard)
	return p, fs, nil
}

// ParseParams builds a parameter instance from the module's defaults, the
// preset file (if any) and then the parameter tokens.
func ParseParams(m *design.Module, tokens []string, presetPath string) (any, error) {
	p, fs, err := NewParamFlagSet(m)
	if err != nil {
		return nil, err
	}

	if presetPath != "" {
		preset, err := params.LoadPreset(presetPath)
		if err != nil {
			return nil, err
		}
		if err := preset.Apply(fs); err != nil {
			return nil, err
		}
	}

	if err := fs.Parse(tokens); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil, &HelpError{Module: m.Name, Usage: fs.FlagUsages()}
		}
		return nil, fmt.Errorf("%w: %s: %w", ErrInput, m.Name, err)
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("%w: unexpected parameter arguments %s", ErrInput, strings.Join(fs.Args(), " "))
	}
	return p, nil
}

// Generate parses the parameters, calls the module's entry function and
// normalizes what it returns.
func Generate(ctx context.Context, m *design.Module, tokens []string, presetPath string) (*Generation, error) {
	logger := ctxlog.FromContext(ctx)

	suffix, err := SerializeParams(tokens)
	if err != nil {
		return nil, err
	}

	p, err := ParseParams(m, tokens, presetPath)
	if err != nil {
		return nil, err
	}

	logger.Debug("Generating design.", "module", m.Name, "params", tokens, "preset", presetPath)
	out, err := m.Call(p)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrGeneration, m.Name, err)
	}

	results, err := Normalize(out)
	if err != nil {
		return nil, err
	}
	logger.Debug("Generated design.", "module", m.Name, "results", len(results))

	return &Generation{Module: m, Params: p, Results: results, Suffix: suffix}, nil
}

// Normalize turns an entry function's return value into a non-empty slice
// of Results.
func Normalize(out any) ([]design.Result, error) {
	var results []design.Result
	switch v := out.(type) {
	case design.Result:
		results = []design.Result{v}
	case *design.Result:
		if v == nil {
			return nil, fmt.Errorf("%w: received a nil result", ErrGeneration)
		}
		results = []design.Result{*v}
	case []design.Result:
		results = v
	case []*design.Result:
		for i, r := range v {
			if r == nil {
				return nil, fmt.Errorf("%w: result %d is nil", ErrGeneration, i)
			}
			results = append(results, *r)
		}
	case []any:
		for i, elem := range v {
			switch r := elem.(type) {
			case design.Result:
				results = append(results, r)
			case *design.Result:
				if r == nil {
					return nil, fmt.Errorf("%w: result %d is nil", ErrGeneration, i)
				}
				results = append(results, *r)
			default:
				return nil, fmt.Errorf("%w: result %d was %T, not a design.Result", ErrGeneration, i, elem)
			}
		}
	default:
		return nil, fmt.Errorf("%w: received unexpected type %T from module", ErrGeneration, out)
	}

	if len(results) == 0 {
		return nil, fmt.Errorf("%w: received empty list of results", ErrGeneration)
	}
	for i, r := range results {
		if r.Part == nil {
			return nil, fmt.Errorf("%w: result %s has no part", ErrGeneration, r.Label(i))
		}
	}
	return results, nil
}
