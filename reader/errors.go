package reader

import "fmt"

// ParseError reports malformed descriptor content
type ParseError struct {
	Source string
	Line   int // 1-based line, 0 when unknown
	Err    error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("failed to parse %s at line %d: %v", e.Source, e.Line, e.Err)
	}
	return fmt.Sprintf("failed to parse %s: %v", e.Source, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// IOError reports a failed read, including failures of post-read processing
type IOError struct {
	Source  string
	Message string
	Err     error
}

func (e *IOError) Error() string {
	message := e.Message
	if message == "" {
		message = "failed to read"
	}
	if e.Source == "" {
		return fmt.Sprintf("%s: %v", message, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", message, e.Source, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}
