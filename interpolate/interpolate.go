package interpolate

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUndefined is reported when a placeholder names a property the environment does not define
	ErrUndefined = errors.New("property is not defined")
	// ErrMalformed is reported for unterminated or empty placeholders
	ErrMalformed = errors.New("malformed expression")
)

const (
	openToken  = "${"
	closeToken = "}"
)

// Lookup resolves property names
type Lookup interface {
	Lookup(name string) (string, bool)
}

// Error describes a failed interpolation of a version expression
type Error struct {
	Expression string
	Property   string
	Reason     error
}

func (e *Error) Error() string {
	if e.Property == "" {
		return fmt.Sprintf("failed to interpolate %q: %v", e.Expression, e.Reason)
	}
	return fmt.Sprintf("failed to interpolate %q: %v: %s", e.Expression, e.Reason, e.Property)
}

func (e *Error) Unwrap() error {
	return e.Reason
}

// Expand substitutes ${name} placeholders in expression with values from env.
// Resolved values are inserted verbatim, they are never interpolated again.
func Expand(expression string, env Lookup) (string, error) {
	if !strings.Contains(expression, openToken) {
		return expression, nil
	}
	builder := strings.Builder{}
	err := scan(expression, func(literal string) {
		builder.WriteString(literal)
	}, func(name string) error {
		var value string
		var ok bool
		if env != nil {
			value, ok = env.Lookup(name)
		}
		if !ok {
			return &Error{Expression: expression, Property: name, Reason: ErrUndefined}
		}
		builder.WriteString(value)
		return nil
	})
	if err != nil {
		return "", err
	}
	return builder.String(), nil
}

// Placeholders returns property names referenced by expression, in order of appearance
func Placeholders(expression string) ([]string, error) {
	var names []string
	err := scan(expression, func(string) {}, func(name string) error {
		names = append(names, name)
		return nil
	})
	return names, err
}

func scan(expression string, onLiteral func(string), onPlaceholder func(string) error) error {
	rest := expression
	for {
		start := strings.Index(rest, openToken)
		if start == -1 {
			onLiteral(rest)
			return nil
		}
		onLiteral(rest[:start])
		rest = rest[start+len(openToken):]
		end := strings.Index(rest, closeToken)
		if end == -1 {
			return &Error{Expression: expression, Reason: fmt.Errorf("%w: unterminated placeholder", ErrMalformed)}
		}
		name := strings.TrimSpace(rest[:end])
		if name == "" || strings.Contains(name, openToken) {
			return &Error{Expression: expression, Reason: fmt.Errorf("%w: invalid placeholder %q", ErrMalformed, rest[:end])}
		}
		if err := onPlaceholder(name); err != nil {
			return err
		}
		rest = rest[end+len(closeToken):]
	}
}
