// File: internal/walker/errors.go
package walker

import (
	"errors"
	"fmt"

	"github.com/WebVOWL/horned-owl-serializer/internal/owl"
)

var (
	// ErrDepthExceeded is wrapped by DepthError.
	ErrDepthExceeded = errors.New("walker: expression nesting limit exceeded")
	// ErrUnknownNode is wrapped by NodeError.
	ErrUnknownNode = errors.New("walker: unknown grammar node")
)

// DepthError reports a class expression or data range nested deeper than the
// configured limit. The subtree below the limit is skipped; the rest of the
// document is still traversed.
type DepthError struct {
	Component owl.ComponentKind
	Limit     int
}

func (e *DepthError) Error() string {
	return fmt.Sprintf("walker: %s nests expressions deeper than %d", e.Component, e.Limit)
}

func (e *DepthError) Unwrap() error { return ErrDepthExceeded }

// noComponent marks a NodeError raised for an empty component slot, where there
// is no enclosing component kind to name.
const noComponent owl.ComponentKind = -1

// NodeError reports a nil or unrecognised value in a sum-typed slot.
type NodeError struct {
	Component owl.ComponentKind
	Slot      string
	Value     any
}

func (e *NodeError) Error() string {
	if e.Component == noComponent {
		return fmt.Sprintf("walker: unsupported %s %T", e.Slot, e.Value)
	}
	return fmt.Sprintf("walker: %s has unsupported %s %T", e.Component, e.Slot, e.Value)
}

func (e *NodeError) Unwrap() error { return ErrUnknownNode }
