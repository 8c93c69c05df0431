// File: internal/vowl/errors.go
package vowl

import (
	"errors"
	"fmt"

	"github.com/WebVOWL/horned-owl-serializer/internal/owl"
)

var (
	// ErrIndexExhausted is wrapped by ExhaustedError.
	ErrIndexExhausted = errors.New("vowl: identifier index space exhausted")
	// ErrUnsupported is wrapped by UnsupportedError.
	ErrUnsupported = errors.New("vowl: unsupported construct")
)

// ExhaustedError is returned when a document holds more distinct identifiers
// than the cache can index.
type ExhaustedError struct {
	ID    string
	Limit uint64
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("vowl: cannot index %q: all %d indices are in use", e.ID, e.Limit)
}

func (e *ExhaustedError) Unwrap() error { return ErrIndexExhausted }

// UnsupportedError records a component the extractor recognises but cannot
// turn into graph elements. Nothing is emitted for it.
type UnsupportedError struct {
	Component owl.ComponentKind
	Reason    string
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("vowl: %s: %s", e.Component, e.Reason)
}

func (e *UnsupportedError) Unwrap() error { return ErrUnsupported }
