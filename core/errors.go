package core

import (
	"errors"
	"strings"
)

var (
	ErrAuth     = errors.New("invalid username or password")
	ErrNotFound = errors.New("not found")
	ErrUnique   = errors.New("unique constraint violated")
)

// A FieldError refers to a single form field.
type FieldError struct {
	Field   string
	Message string
}

func (fe FieldError) String() string {
	return fe.Field + ": " + fe.Message
}

// ValidationError collects field errors of a submitted form. The zero value is valid and empty.
type ValidationError struct {
	Fields []FieldError
}

func (v *ValidationError) Add(field, message string) {
	v.Fields = append(v.Fields, FieldError{field, message})
}

// Has returns whether there is an error for the given field.
func (v *ValidationError) Has(field string) bool {
	for _, fe := range v.Fields {
		if fe.Field == field {
			return true
		}
	}
	return false
}

// Empty returns true if no field error has been added.
func (v *ValidationError) Empty() bool {
	return len(v.Fields) == 0
}

func (v *ValidationError) Error() string {
	var msgs = make([]string, len(v.Fields))
	for i, fe := range v.Fields {
		msgs[i] = fe.String()
	}
	return strings.Join(msgs, "; ")
}

// IsNotFound reports whether err is or wraps ErrNotFound.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
