// File: internal/walker/option.go
package walker

// Option is the single context slot passed from a hook to its children.
// The zero value is None.
type Option[T any] struct {
	value T
	ok    bool
}

// Some wraps a synthesized value.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, ok: true}
}

// None is the absence of a synthesized value.
func None[T any]() Option[T] {
	return Option[T]{}
}

// Get returns the value and whether one is present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.ok
}

// IsSome reports whether a value is present.
func (o Option[T]) IsSome() bool {
	return o.ok
}

// OrElse returns the value, or def when none is present.
func (o Option[T]) OrElse(def T) T {
	if o.ok {
		return o.value
	}
	return def
}
