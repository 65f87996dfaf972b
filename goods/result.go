package goods

import "github.com/vinayprograms/simkit/errors"

// Result holds either a value or a shortfall, never both.
type Result[T any] struct {
	value T
	short *errors.NotEnoughGoods
}

// Ok wraps a successful value.
func Ok[T any](value T) Result[T] {
	return Result[T]{value: value}
}

// Short wraps a shortfall. A nil shortfall yields an Ok zero value.
func Short[T any](short *errors.NotEnoughGoods) Result[T] {
	return Result[T]{short: short}
}

// IsOk reports whether the result holds a value.
func (r Result[T]) IsOk() bool {
	return r.short == nil
}

// Value returns the value, or the zero value on a shortfall.
func (r Result[T]) Value() T {
	return r.value
}

// Shortfall returns the shortfall, or nil.
func (r Result[T]) Shortfall() *errors.NotEnoughGoods {
	return r.short
}

// Unwrap returns the value and, on a shortfall, the shortfall as an error.
func (r Result[T]) Unwrap() (T, error) {
	if r.short != nil {
		return r.value, r.short
	}
	return r.value, nil
}

// Match calls ok or short depending on the outcome.
func (r Result[T]) Match(ok func(T), short func(*errors.NotEnoughGoods)) {
	if r.short != nil {
		short(r.short)
		return
	}
	ok(r.value)
}
