package pipeline

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInput reports malformed command-line input.
var ErrInput = errors.New("invalid input")

// SplitArgs splits raw tokens on the first literal "--" into command tokens
// and parameter tokens. Without a separator every token is a command token.
func SplitArgs(args []string) (command, parameters []string) {
	for i, arg := range args {
		if arg == "--" {
			return args[:i], args[i+1:]
		}
	}
	return args, nil
}

// SerializeParams renders parameter tokens for use in a file name, e.g.
// ["--one=1", "--two", "--three", "3"] becomes "one=1&two&three=3".
// Values are grouped under the most recent --name in first-seen order. Path
// separators become "_" so the result stays within one file name.
func SerializeParams(tokens []string) (string, error) {
	var order []string
	values := map[string][]string{}
	last := ""

	for _, token := range flattenTokens(tokens) {
		if name, ok := strings.CutPrefix(token, "--"); ok {
			last = name
			if _, seen := values[name]; !seen {
				order = append(order, name)
				values[name] = nil
			}
			continue
		}
		if last == "" {
			return "", fmt.Errorf("%w: parameter value %q comes before any --name", ErrInput, token)
		}
		values[last] = append(values[last], token)
	}

	parts := make([]string, 0, len(order))
	for _, name := range order {
		if v := values[name]; len(v) > 0 {
			parts = append(parts, name+"="+strings.Join(v, ","))
		} else {
			parts = append(parts, name)
		}
	}
	return pathSafe.Replace(strings.Join(parts, "&")), nil
}

var pathSafe = strings.NewReplacer("/", "_", "\\", "_")

func flattenTokens(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if key, val, ok := strings.Cut(token, "="); ok {
			out = append(out, key, val)
			continue
		}
		out = append(out, token)
	}
	return out
}
