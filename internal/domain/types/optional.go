package types

// Optional is a value that is either present or absent.
//
// The zero value is absent.
type Optional[T any] struct {
	value T
	ok    bool
}

// Some returns a present Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, ok: true}
}

// None returns an absent Optional.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// Get returns the held value and whether it is present.
func (o Optional[T]) Get() (T, bool) { return o.value, o.ok }

// IsSome reports whether a value is present.
func (o Optional[T]) IsSome() bool { return o.ok }
