package errors

import (
	"encoding/json"
	"fmt"
)

// SimError is implemented by every structured error in simkit.
type SimError interface {
	error
	Code() ErrorCode
	Category() ErrorCategory

	// Metadata returns a copy of the key-value context.
	Metadata() map[string]string

	Unwrap() error
}

// Error is the generic SimError. It may name the agent and simulation round
// it concerns.
type Error struct {
	code     ErrorCode
	category ErrorCategory
	message  string
	cause    error
	metadata map[string]string
	agent    string
	round    int
}

var (
	_ SimError         = (*Error)(nil)
	_ json.Marshaler   = (*Error)(nil)
	_ json.Unmarshaler = (*Error)(nil)
)

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

func (e *Error) Code() ErrorCode {
	return e.code
}

func (e *Error) Category() ErrorCategory {
	return e.category
}

func (e *Error) Metadata() map[string]string {
	result := make(map[string]string, len(e.metadata))
	for k, v := range e.metadata {
		result[k] = v
	}
	return result
}

func (e *Error) Unwrap() error {
	return e.cause
}

// Agent returns the address of the agent concerned, or "".
func (e *Error) Agent() string {
	return e.agent
}

// Round returns the simulation round, 0 when unknown.
func (e *Error) Round() int {
	return e.round
}

// wireError is the JSON form. A cause travels as its message only.
type wireError struct {
	Code     ErrorCode         `json:"code"`
	Category ErrorCategory     `json:"category"`
	Message  string            `json:"message"`
	Cause    string            `json:"cause,omitempty"`
	Metadata map[string]string `json:"metadata,omitempty"`
	Agent    string            `json:"agent,omitempty"`
	Round    int               `json:"round,omitempty"`
}

func (e *Error) MarshalJSON() ([]byte, error) {
	w := wireError{
		Code:     e.code,
		Category: e.category,
		Message:  e.message,
		Metadata: e.metadata,
		Agent:    e.agent,
		Round:    e.round,
	}
	if e.cause != nil {
		w.Cause = e.cause.Error()
	}
	return json.Marshal(w)
}

func (e *Error) UnmarshalJSON(data []byte) error {
	var w wireError
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	*e = Error{
		code:     w.Code,
		category: w.Category,
		message:  w.Message,
		metadata: w.Metadata,
		agent:    w.Agent,
		round:    w.Round,
	}
	if w.Cause != "" {
		e.cause = fmt.Errorf("%s", w.Cause)
	}
	return nil
}

// Option configures an Error at construction.
type Option func(*Error)

func WithMetadata(key, value string) Option {
	return func(e *Error) {
		if e.metadata == nil {
			e.metadata = make(map[string]string)
		}
		e.metadata[key] = value
	}
}

func WithMetadataMap(m map[string]string) Option {
	return func(e *Error) {
		for k, v := range m {
			WithMetadata(k, v)(e)
		}
	}
}

// WithAgent records the address of the agent concerned.
func WithAgent(addr string) Option {
	return func(e *Error) {
		e.agent = addr
	}
}

// WithRound records the simulation round.
func WithRound(round int) Option {
	return func(e *Error) {
		e.round = round
	}
}

func WithCause(cause error) Option {
	return func(e *Error) {
		e.cause = cause
	}
}

// New creates an Error in the code's default category.
func New(code ErrorCode, message string, opts ...Option) *Error {
	e := &Error{
		code:     code,
		category: code.DefaultCategory(),
		message:  message,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// InvalidInput reports a malformed flag, config value or level name.
func InvalidInput(message string, opts ...Option) *Error {
	return New(ErrCodeInvalidInput, message, opts...)
}

// InvalidAddress reports a string that is neither an agent nor a group
// address. The offending string is kept under the "address" key.
func InvalidAddress(addr, reason string, opts ...Option) *Error {
	opts = append([]Option{WithMetadata("address", addr)}, opts...)
	return New(ErrCodeInvalidAddress, fmt.Sprintf("invalid address %q: %s", addr, reason), opts...)
}

func NotFound(message string, opts ...Option) *Error {
	return New(ErrCodeNotFound, message, opts...)
}

func Conflict(message string, opts ...Option) *Error {
	return New(ErrCodeConflict, message, opts...)
}
