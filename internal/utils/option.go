package utils

// Option - Holds either a value or nothing. Used where a slot may legitimately be empty, so that emptiness is
// carried by the type rather than by a reserved marker value.
type Option[T any] struct {
	some  bool
	value T
}

// Some - Returns an option holding val
func Some[T any](val T) Option[T] {
	return Option[T]{some: true, value: val}
}

// None - Returns an empty option
func None[T any]() Option[T] {
	return Option[T]{}
}

// HasValue - Returns true if the option holds a value
func (O Option[T]) HasValue() bool {
	return O.some
}

// IsEmpty - Returns true if the option holds no value
func (O Option[T]) IsEmpty() bool {
	return !O.some
}

// Unwrap - Returns the value held, it panics if the option is empty
func (O Option[T]) Unwrap() T {
	if O.some {
		return O.value
	}

	panic("cannot unwrap an empty option")
}
