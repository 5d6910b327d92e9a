package transform

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownTypeName matches every UnknownTypeNameError.
	ErrUnknownTypeName = errors.New("no transform for type name")
	// ErrNoCaptureGroupRegexps is returned when a transform is created without regexps.
	ErrNoCaptureGroupRegexps = errors.New("transform needs at least one capture group regexp")
	// ErrNoStringConstructor reports a type that cannot be built from a single string.
	ErrNoStringConstructor = errors.New("type has no string constructor")
)

// UnknownTypeNameError is returned when an explicitly named type has no transform.
type UnknownTypeNameError struct {
	TypeName string
}

func (e *UnknownTypeNameError) Error() string {
	return fmt.Sprintf("no transform for type name %q", e.TypeName)
}

func (e *UnknownTypeNameError) Is(target error) bool {
	return target == ErrUnknownTypeName
}

// ConversionError is returned by a Simple transform whose conversion failed.
type ConversionError struct {
	TypeName string
	Input    string
	Err      error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("transform %q failed for %q: %v", e.TypeName, e.Input, e.Err)
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}

// ConstructionError is returned by a Constructed transform.
type ConstructionError struct {
	Type  TypeID
	Input string
	Err   error
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("cannot construct %s from %q: %v", e.Type, e.Input, e.Err)
}

func (e *ConstructionError) Unwrap() error {
	return e.Err
}
