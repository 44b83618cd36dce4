// Package optional provides a present/absent value used wherever the
// pipeline has to say "nothing was found" without resorting to empty
// strings or empty slices.
package optional

import (
	"bytes"
	"encoding/json"
)

// Value holds either a value of type T or nothing.
// The zero Value is absent.
type Value[T any] struct {
	v  T
	ok bool
}

// Present wraps v.
func Present[T any](v T) Value[T] {
	return Value[T]{v: v, ok: true}
}

// Absent returns an empty Value.
func Absent[T any]() Value[T] {
	return Value[T]{}
}

// FromPtr returns Present(*p), or Absent when p is nil.
func FromPtr[T any](p *T) Value[T] {
	if p == nil {
		return Absent[T]()
	}
	return Present(*p)
}

// Get returns the wrapped value and whether it is present.
func (o Value[T]) Get() (T, bool) {
	return o.v, o.ok
}

// IsPresent reports whether a value is held.
func (o Value[T]) IsPresent() bool {
	return o.ok
}

// OrElse returns the wrapped value, or def when absent.
func (o Value[T]) OrElse(def T) T {
	if o.ok {
		return o.v
	}
	return def
}

// Map applies fn to a present value. Absent stays absent.
func Map[T, U any](o Value[T], fn func(T) U) Value[U] {
	if !o.ok {
		return Absent[U]()
	}
	return Present(fn(o.v))
}

// FlatMap applies fn to a present value and returns its result.
func FlatMap[T, U any](o Value[T], fn func(T) Value[U]) Value[U] {
	if !o.ok {
		return Absent[U]()
	}
	return fn(o.v)
}

// MarshalJSON encodes an absent value as null.
func (o Value[T]) MarshalJSON() ([]byte, error) {
	if !o.ok {
		return []byte("null"), nil
	}
	return json.Marshal(o.v)
}

// UnmarshalJSON decodes null as absent.
func (o *Value[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*o = Absent[T]()
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*o = Present(v)
	return nil
}
