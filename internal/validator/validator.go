// Package validator provides a Validator type for accumulating field-level
// validation errors in the order the checks ran.
package validator

// Validator holds a map of field names to their validation error messages,
// plus the order in which the fields first failed.
// A Validator with an empty Errors map is considered valid.
type Validator struct {
	Errors map[string]string
	order  []string
}

// New creates and returns a fresh, empty Validator.
func New() *Validator {
	return &Validator{Errors: make(map[string]string)}
}

// Valid returns true if the Errors map contains no entries.
func (v *Validator) Valid() bool {
	return len(v.Errors) == 0
}

// AddError records key as failing with the given message.
// If key already has an error it is not overwritten, so the first
// failure for a field is always the one that is reported.
func (v *Validator) AddError(key, message string) {
	if _, exists := v.Errors[key]; !exists {
		v.Errors[key] = message
		v.order = append(v.order, key)
	}
}

// Check adds an error for key with message only when ok is false.
// Use this as a single-line guard:
//
//	v.Check(name != "", "name", "Mohon isi nama buku")
func (v *Validator) Check(ok bool, key, message string) {
	if !ok {
		v.AddError(key, message)
	}
}

// First returns the message of the earliest failed check, or "" if valid.
func (v *Validator) First() string {
	if len(v.order) == 0 {
		return ""
	}
	return v.Errors[v.order[0]]
}
