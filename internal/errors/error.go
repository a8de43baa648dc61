package errors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrProductNotFound = errors.New("product is not found")
	ErrOutOfStock      = errors.New("product is out of stock")
)

// ValidationError aggregates every failing field of a request so the form can
// surface all of them at once instead of failing on the first.
type ValidationError struct {
	Fields map[string]string `json:"fields"`
}

func NewValidationError() *ValidationError {
	return &ValidationError{Fields: map[string]string{}}
}

func (e *ValidationError) Add(field, message string) {
	e.Fields[field] = message
}

func (e *ValidationError) HasErrors() bool {
	return len(e.Fields) > 0
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fmt.Sprintf("validation failed on fields: %s", strings.Join(fields, ", "))
}
