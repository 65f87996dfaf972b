package errors

// ErrorCategory groups error codes by how a caller should react.
type ErrorCategory string

const (
	// CategoryPermanent covers bad input: a malformed address, an unknown
	// group, an invalid config file. The same call fails again.
	CategoryPermanent ErrorCategory = "permanent"

	// CategoryResource covers an agent lacking what an operation consumes.
	// The caller may fall back to a smaller request or give up the operation.
	CategoryResource ErrorCategory = "resource"

	// CategoryInternal covers everything else.
	CategoryInternal ErrorCategory = "internal"
)

func (c ErrorCategory) String() string {
	return string(c)
}

// ErrorCode identifies one kind of failure.
type ErrorCode string

const (
	ErrCodeInvalidInput   ErrorCode = "INVALID_INPUT"    // Malformed flag, config or level
	ErrCodeInvalidAddress ErrorCode = "INVALID_ADDRESS"  // String is not an agent or group address
	ErrCodeNotFound       ErrorCode = "NOT_FOUND"        // Group not declared
	ErrCodeConflict       ErrorCode = "CONFLICT"         // Group declared twice
	ErrCodeNotEnoughGoods ErrorCode = "NOT_ENOUGH_GOODS" // Requested amount exceeds holdings
	ErrCodeInternal       ErrorCode = "INTERNAL"         // Anything Wrap cannot classify
)

func (c ErrorCode) String() string {
	return string(c)
}

// DefaultCategory returns the category an error with this code gets from New.
func (c ErrorCode) DefaultCategory() ErrorCategory {
	switch c {
	case ErrCodeInvalidInput, ErrCodeInvalidAddress, ErrCodeNotFound, ErrCodeConflict:
		return CategoryPermanent
	case ErrCodeNotEnoughGoods:
		return CategoryResource
	default:
		return CategoryInternal
	}
}
