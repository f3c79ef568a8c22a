package design

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// ErrInvalidName reports a module name that may not be resolved.
var ErrInvalidName = errors.New("invalid module name")

// ValidateName checks a user-supplied module name. Names are dot-separated
// identifiers; whitespace, empty segments and segments starting with an
// underscore (private modules) are rejected.
func ValidateName(name string) error {
	if strings.IndexFunc(name, unicode.IsSpace) >= 0 {
		return fmt.Errorf("%w; may not contain spaces", ErrInvalidName)
	}

	segments := strings.Split(name, ".")
	for _, s := range segments {
		if strings.HasPrefix(s, "_") {
			return fmt.Errorf("%w; may not import private modules", ErrInvalidName)
		}
	}
	for _, s := range segments {
		if !isIdentifier(s) {
			return fmt.Errorf("%w; invalid import", ErrInvalidName)
		}
	}
	return nil
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_' || unicode.IsLetter(r):
		case i > 0 && unicode.IsDigit(r):
		default:
			return false
		}
	}
	return true
}
