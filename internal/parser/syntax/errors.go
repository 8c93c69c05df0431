// File: internal/parser/syntax/errors.go
package syntax

import (
	"errors"
	"fmt"
)

// ErrSyntax is wrapped by every ParseError.
var ErrSyntax = errors.New("ontology syntax error")

// MaxNesting bounds how deeply a reader lets compound terms nest. It is far
// above the walker's default expression limit.
const MaxNesting = 4096

// ParseError reports malformed input at a position.
type ParseError struct {
	Format string
	Pos    Pos
	Msg    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Format, e.Pos, e.Msg)
}

func (e *ParseError) Unwrap() error { return ErrSyntax }

// Errorf builds a ParseError.
func Errorf(format string, pos Pos, msg string, args ...any) *ParseError {
	return &ParseError{Format: format, Pos: pos, Msg: fmt.Sprintf(msg, args...)}
}
