package data

import (
	"bytes"
	"encoding/json"
	"math"
)

// Optional is a JSON field that can be absent, explicitly null, or hold a
// value. Use it with the `omitzero` tag option so absent fields are left out
// of the output while explicit nulls are written back as null.
type Optional[T any] struct {
	Value T
	Set   bool // the key was present in the request body
	Null  bool // the key was present with a null value
}

// Some returns an Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Value: v, Set: true}
}

// Null returns an Optional that was supplied as JSON null.
func Null[T any]() Optional[T] {
	return Optional[T]{Set: true, Null: true}
}

// Present reports whether o holds a non-null value.
func (o Optional[T]) Present() bool {
	return o.Set && !o.Null
}

// IsZero reports whether the field was absent. encoding/json consults it for omitzero.
func (o Optional[T]) IsZero() bool {
	return !o.Set
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.Present() {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}

func (o *Optional[T]) UnmarshalJSON(b []byte) error {
	var zero T
	o.Value = zero
	o.Set = true
	o.Null = bytes.Equal(bytes.TrimSpace(b), []byte("null"))
	if o.Null {
		return nil
	}
	return json.Unmarshal(b, &o.Value)
}

// number converts a numeric field the way a loose numeric comparison does:
// absent is NaN and null is 0.
func number(o Optional[float64]) float64 {
	switch {
	case !o.Set:
		return math.NaN()
	case o.Null:
		return 0
	default:
		return o.Value
	}
}

// strictEqual compares two optionals with no type coercion: absent only
// equals absent and null only equals null.
func strictEqual[T comparable](a, b Optional[T]) bool {
	switch {
	case a.Set != b.Set:
		return false
	case !a.Set:
		return true
	case a.Null != b.Null:
		return false
	case a.Null:
		return true
	default:
		return a.Value == b.Value
	}
}
