package numberparser

import (
	"errors"
	"fmt"

	"github.com/coderbyheart/cucumber/primitive"
)

var (
	// ErrSyntax reports text that is not a number in the parser's locale.
	ErrSyntax = errors.New("invalid number syntax")
	// ErrRange reports a number that does not fit the requested kind.
	ErrRange = errors.New("value out of range")
)

// NumberFormatError describes a failed conversion of Input to Kind.
type NumberFormatError struct {
	Input string
	Kind  primitive.KindEnum
	Err   error
}

func (e *NumberFormatError) Error() string {
	return fmt.Sprintf("cannot parse %q as %s: %v", e.Input, e.Kind.TypeName(), e.Err)
}

func (e *NumberFormatError) Unwrap() error {
	return e.Err
}
