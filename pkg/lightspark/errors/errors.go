package errors

import (
	"fmt"
	"strings"
)

var ErrDecode = fmt.Errorf("decode error")
var ErrComposition = fmt.Errorf("composition error")
var ErrNotFound = fmt.Errorf("not found")
var ErrUnknownVariant = fmt.Errorf("unknown variant")
var ErrTransport = fmt.Errorf("transport error")
var ErrGraphQL = fmt.Errorf("graphql error")
var ErrInvalidConfiguration = fmt.Errorf("invalid configuration")

type myError struct {
	msg    string
	target error
}

func (m myError) Error() string        { return m.msg }
func (m myError) Is(target error) bool { return target == m.target }

// DecodeError reports a required wire value that was missing or had the wrong shape.
// Path is the chain of wire keys leading to the offending value.
type DecodeError struct {
	Path []string
	msg  string
}

func (de DecodeError) Error() string {
	if len(de.Path) == 0 {
		return "decode error: " + de.msg
	}
	return fmt.Sprintf("decode error at %s: %s", strings.Join(de.Path, "."), de.msg)
}

func (de DecodeError) Is(target error) bool { return target == ErrDecode }

func NewDecodeError(path []string, msg string) error {
	p := make([]string, len(path))
	copy(p, path)

	return &DecodeError{
		Path: p,
		msg:  msg,
	}
}

func NewCompositionError(msg string) error {
	return &myError{
		msg:    msg,
		target: ErrComposition,
	}
}

func NewNotFoundError(msg string) error {
	return &myError{
		msg:    msg,
		target: ErrNotFound,
	}
}

func NewUnknownVariantError(msg string) error {
	return &myError{
		msg:    msg,
		target: ErrUnknownVariant,
	}
}

func NewInvalidConfigurationError(msg string) error {
	return &myError{
		msg:    msg,
		target: ErrInvalidConfiguration,
	}
}

// NewTransportError wraps a failure reported by the transport collaborator
func NewTransportError(cause error) error {
	return fmt.Errorf("%w: %w", ErrTransport, cause)
}
