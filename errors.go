package flexui

import (
	"errors"
	"fmt"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindConfiguration indicates invalid parameters supplied while building
	// a window, such as a spinner minimum above its maximum.
	KindConfiguration
	// KindInvalidOperation indicates an operation that is never allowed,
	// such as writing to a computed store.
	KindInvalidOperation
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfiguration:
		return "configuration"
	case KindInvalidOperation:
		return "invalid operation"
	default:
		return "unknown"
	}
}

// Error is the structured error returned by flexui operations.
type Error struct {
	// Op is the operation that failed (e.g., "flexui.Spinner").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
}

func (e *Error) Error() string {
	if e.Op == "" {
		return fmt.Sprintf("[%s] %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsKind reports whether any error in err's chain is an *Error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind == kind
	}
	return false
}

func configError(op, format string, args ...any) error {
	return &Error{Op: op, Kind: KindConfiguration, Err: fmt.Errorf(format, args...)}
}

// wrapConfig tags a parse error from the layout package as a configuration error.
func wrapConfig(op string, err error) error {
	if err == nil {
		return nil
	}
	var fe *Error
	if errors.As(err, &fe) {
		return err
	}
	return &Error{Op: op, Kind: KindConfiguration, Err: err}
}
