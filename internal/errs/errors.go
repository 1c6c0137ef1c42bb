// Package errs defines the error taxonomy of reference resolution, type
// inference and entrypoint extraction.
//
// Each error type carries a Kind sentinel and matches both its Kind and its
// category sentinel through errors.Is:
//
//	if errors.Is(err, errs.ErrRecursiveReference) { ... }
//	if errors.Is(err, errs.ErrReference) { ... }
package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Category sentinels.
var (
	ErrReference  = errors.New("reference error")
	ErrType       = errors.New("type error")
	ErrExtraction = errors.New("extraction error")
)

// Reference error kinds.
var (
	ErrNotFound           = errors.New("reference not found")
	ErrInvalidPointer     = errors.New("invalid pointer")
	ErrRecursiveReference = errors.New("recursive reference")
	ErrNotConcrete        = errors.New("reference used where no registry exists")
)

// Type error kinds.
var (
	ErrAmbiguousTypeArray  = errors.New("ambiguous type array")
	ErrMissingItems        = errors.New("array schema has no items")
	ErrNullTypeUnsupported = errors.New("null type is not supported")
	ErrFormatTypeMismatch  = errors.New("format does not match type")
	ErrNoTypeSpecified     = errors.New("no type specified")
	ErrItemReference       = errors.New("array item reference")
)

// Extraction error kinds.
var (
	ErrMissingOperationID = errors.New("missing operationId")
)

// ReferenceError is a failure to resolve a $ref pointer.
type ReferenceError struct {
	Kind error
	// Ref is the pointer string being resolved
	Ref string
	// Name is the registry key parsed from Ref, if any
	Name string
}

func (e *ReferenceError) Error() string {
	msg := e.Kind.Error()
	if e.Ref != "" {
		msg += ": " + e.Ref
	}
	if e.Name != "" && e.Kind == ErrNotFound {
		msg += fmt.Sprintf(" (no component named %q)", e.Name)
	}
	return msg
}

func (e *ReferenceError) Is(target error) bool {
	return target == ErrReference || target == e.Kind
}

func NewNotFound(ref, name string) *ReferenceError {
	return &ReferenceError{Kind: ErrNotFound, Ref: ref, Name: name}
}

func NewInvalidPointer(ref string) *ReferenceError {
	return &ReferenceError{Kind: ErrInvalidPointer, Ref: ref}
}

func NewRecursiveReference(ref, name string) *ReferenceError {
	return &ReferenceError{Kind: ErrRecursiveReference, Ref: ref, Name: name}
}

func NewNotConcrete(ref string) *ReferenceError {
	return &ReferenceError{Kind: ErrNotConcrete, Ref: ref}
}

// TypeError is a failure to infer a native type from a schema.
type TypeError struct {
	Kind   error
	Types  []string
	Format string
	// Cause is the nested error that made an item schema fail, if any
	Cause error
}

func (e *TypeError) Error() string {
	msg := e.Kind.Error()
	if len(e.Types) > 0 {
		msg += " [" + strings.Join(e.Types, ", ") + "]"
	}
	if e.Format != "" {
		msg += " (format " + e.Format + ")"
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *TypeError) Is(target error) bool {
	return target == ErrType || target == e.Kind
}

func (e *TypeError) Unwrap() error {
	return e.Cause
}

// ExtractionError aborts a whole operation.
type ExtractionError struct {
	Kind   error
	Route  string
	Method string
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("%s %s: %s", e.Method, e.Route, e.Kind.Error())
}

func (e *ExtractionError) Is(target error) bool {
	return target == ErrExtraction || target == e.Kind
}
