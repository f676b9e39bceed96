// Package validation holds the client-side rule tables for every form. A
// Schema maps each field to an ordered list of rules; the first failing rule
// of a field produces that field's message.
package validation

import (
	"strings"
)

// Rule is one predicate with the message reported when it fails.
type Rule[T any] struct {
	Check   func(T) bool
	Message string
}

// Field is a named, ordered rule list.
type Field[T any] struct {
	Name  string
	Rules []Rule[T]
}

// Schema is a rule table for values of type T.
type Schema[T any] []Field[T]

// Validate runs every field and returns Errors, or nil when v is valid.
func (s Schema[T]) Validate(v T) error {
	var errs Errors
	for _, f := range s {
		for _, r := range f.Rules {
			if !r.Check(v) {
				errs = append(errs, FieldError{Field: f.Name, Message: r.Message})
				break
			}
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// FieldError is a failed rule of one field.
type FieldError struct {
	Field   string
	Message string
}

// Errors lists failed fields in schema order.
type Errors []FieldError

func (e Errors) Error() string {
	parts := make([]string, len(e))
	for i, fe := range e {
		parts[i] = fe.Field + ": " + fe.Message
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Message returns the message for field, or "" when it passed.
func (e Errors) Message(field string) string {
	for _, fe := range e {
		if fe.Field == field {
			return fe.Message
		}
	}
	return ""
}

// str lifts a string predicate over the field selected by get.
func str[T any](get func(T) string, check func(string) bool, msg string) Rule[T] {
	return Rule[T]{Check: func(v T) bool { return check(get(v)) }, Message: msg}
}
