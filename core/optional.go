// SPDX-License-Identifier: MIT
//
// File: optional.go
// Role: Present/absent wrapper used for every optional record field.

package core

// Optional holds a value that may be absent. The zero value is absent.
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

// Get returns the value and whether it is present.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.ok
}

// IsSet reports whether a value is present.
func (o Optional[T]) IsSet() bool {
	return o.ok
}

// Or returns the held value, or fallback when absent.
func (o Optional[T]) Or(fallback T) T {
	if o.ok {
		return o.value
	}
	return fallback
}

// FromPtr converts a nullable pointer (as decoded from YAML/JSON) into an Optional.
func FromPtr[T any](p *T) Optional[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

// Ptr is the inverse of FromPtr; an absent value yields nil.
func (o Optional[T]) Ptr() *T {
	if !o.ok {
		return nil
	}
	v := o.value
	return &v
}
