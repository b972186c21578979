package fontapi

// Optional represents an optional value.
type Optional[T any] struct {
	value T
	ok    bool
}

// Some constructs an Optional with a value.
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, ok: true}
}

// None constructs an empty Optional.
func None[T any]() Optional[T] {
	var zero T
	return Optional[T]{value: zero, ok: false}
}

// IsSome reports whether the optional contains a value.
func (o Optional[T]) IsSome() bool {
	return o.ok
}

// IsNone reports whether the optional is empty.
func (o Optional[T]) IsNone() bool {
	return !o.ok
}

// Unwrap returns the value and a boolean indicating presence.
func (o Optional[T]) Unwrap() (T, bool) {
	return o.value, o.ok
}

// Or returns the contained value or a default.
func (o Optional[T]) Or(def T) T {
	if o.ok {
		return o.value
	}
	return def
}
