package errors

import (
	"fmt"
)

// ParseError represents a project document parsing failure with optional line
// metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures project validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// GenerationError reports that code could not be generated for a framework.
// No file has been delivered when it is returned.
type GenerationError struct {
	Framework string
	Err       error
}

// NewGenerationError constructs a GenerationError.
func NewGenerationError(framework string, err error) error {
	return &GenerationError{Framework: framework, Err: err}
}

func (e *GenerationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Framework != "" {
		return fmt.Sprintf("generation error [%s]: %v", e.Framework, e.Err)
	}
	return fmt.Sprintf("generation error: %v", e.Err)
}

// Unwrap exposes the root error.
func (e *GenerationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// DeliveryError reports that a generated file could not be delivered. The
// generated files are intact; delivery alone can be retried.
type DeliveryError struct {
	File string
	Err  error
}

// NewDeliveryError constructs a DeliveryError for the named file.
func NewDeliveryError(file string, err error) error {
	return &DeliveryError{File: file, Err: err}
}

func (e *DeliveryError) Error() string {
	if e == nil {
		return ""
	}
	if e.File != "" {
		return fmt.Sprintf("delivery error on %s: %v", e.File, e.Err)
	}
	return fmt.Sprintf("delivery error: %v", e.Err)
}

// Unwrap exposes the root error.
func (e *DeliveryError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
