// Package schema holds the validation error types shared by the config and
// theme records.
package schema

import (
	"errors"
	"fmt"
	"strings"

	xstrings "github.com/charmbracelet/x/exp/strings"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid value")

// FieldError describes a single violated rule.
type FieldError struct {
	Field   string
	Message string
}

func (f FieldError) String() string {
	return f.Field + " " + f.Message
}

// ValidationError lists every field of a record that failed validation.
type ValidationError struct {
	Subject string
	Errors  []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		msgs = append(msgs, fe.String())
	}
	return fmt.Sprintf("invalid %s: %s", e.Subject, xstrings.EnglishJoin(msgs, true))
}

func (e *ValidationError) Unwrap() error { return ErrInvalid }

// Fields returns the names of the fields that failed.
func (e *ValidationError) Fields() []string {
	fields := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		fields = append(fields, fe.Field)
	}
	return fields
}

// Collector accumulates field errors for one record.
type Collector struct {
	subject string
	errs    []FieldError
}

// NewCollector returns a collector for the given record kind.
func NewCollector(subject string) *Collector {
	return &Collector{subject: subject}
}

// Add records a failure for field.
func (c *Collector) Add(field, format string, a ...any) {
	c.errs = append(c.errs, FieldError{Field: field, Message: fmt.Sprintf(format, a...)})
}

// Required records a failure if value is blank.
func (c *Collector) Required(field, value string) {
	if strings.TrimSpace(value) == "" {
		c.Add(field, "is required")
	}
}

// Err returns nil if nothing was recorded.
func (c *Collector) Err() error {
	if len(c.errs) == 0 {
		return nil
	}
	return &ValidationError{Subject: c.subject, Errors: c.errs}
}
