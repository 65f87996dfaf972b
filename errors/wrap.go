package errors

import (
	"errors"
	"fmt"
)

// Wrap adds context to err and returns nil for a nil err.
//
// Wrapping an *Error keeps its code, category, metadata, agent and round.
// Wrapping a *NotEnoughGoods yields a NOT_ENOUGH_GOODS error carrying the
// shortfall's agent and metadata. Any other error becomes INTERNAL.
func Wrap(err error, message string, opts ...Option) *Error {
	if err == nil {
		return nil
	}

	var base []Option
	var inner *Error
	var short *NotEnoughGoods
	code := ErrCodeInternal

	switch {
	case errors.As(err, &inner):
		code = inner.code
		base = []Option{
			WithMetadataMap(inner.metadata),
			WithAgent(inner.agent),
			WithRound(inner.round),
			func(e *Error) { e.category = inner.category },
		}
	case errors.As(err, &short):
		code = ErrCodeNotEnoughGoods
		base = []Option{
			WithMetadataMap(short.Metadata()),
			WithAgent(short.Agent),
		}
	}

	base = append(base, WithCause(err))
	return New(code, message, append(base, opts...)...)
}

// Wrapf is Wrap with a formatted message.
func Wrapf(err error, format string, args ...interface{}) *Error {
	return Wrap(err, fmt.Sprintf(format, args...))
}

// WrapWithCode wraps err under an explicit code, ignoring any code in its chain.
func WrapWithCode(err error, code ErrorCode, message string, opts ...Option) *Error {
	if err == nil {
		return nil
	}
	return New(code, message, append(opts, WithCause(err))...)
}

// As is errors.As from the standard library.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// AsSimError returns the first SimError in the chain, or nil.
func AsSimError(err error) SimError {
	var simErr SimError
	if errors.As(err, &simErr) {
		return simErr
	}
	return nil
}

// Is reports whether the first SimError in the chain has code.
func Is(err error, code ErrorCode) bool {
	return Code(err) == code && code != ""
}

// Code returns the code of the first SimError in the chain, or "".
func Code(err error) ErrorCode {
	if simErr := AsSimError(err); simErr != nil {
		return simErr.Code()
	}
	return ""
}

// Category returns the category of the first SimError in the chain, or "".
func Category(err error) ErrorCategory {
	if simErr := AsSimError(err); simErr != nil {
		return simErr.Category()
	}
	return ""
}

// GetMetadata returns the metadata of the first SimError in the chain, or nil.
func GetMetadata(err error) map[string]string {
	if simErr := AsSimError(err); simErr != nil {
		return simErr.Metadata()
	}
	return nil
}

// Cause follows Unwrap to the innermost error.
func Cause(err error) error {
	for {
		inner := errors.Unwrap(err)
		if inner == nil {
			return err
		}
		err = inner
	}
}
