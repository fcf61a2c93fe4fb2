package model

import "fmt"

// SyntaxError is returned by the parser when the input is not valid source.
type SyntaxError struct {
	Path    Path
	Line    int
	Column  int
	Snippet string
}

// Error implements the error interface.
func (e *SyntaxError) Error() string {
	if e.Snippet == "" {
		return fmt.Sprintf("%s:%d:%d: syntax error", e.Path, e.Line, e.Column)
	}

	return fmt.Sprintf("%s:%d:%d: syntax error near %q", e.Path, e.Line, e.Column, e.Snippet)
}
