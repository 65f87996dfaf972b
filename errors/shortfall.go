package errors

import (
	"fmt"
	"strconv"
)

// Metadata keys set on the generic form of a shortfall.
const (
	MetaGood          = "good"
	MetaAmountMissing = "amount_missing"
)

// NotEnoughGoods reports that an agent holds less of a good than an
// operation requires. Produce, offer, sell and buy return it instead of
// proceeding.
type NotEnoughGoods struct {
	// Agent is the address of the agent that ran short.
	Agent string `json:"agent"`

	// Good names the missing good.
	Good string `json:"good"`

	// AmountMissing is requested minus available.
	AmountMissing float64 `json:"amount_missing"`
}

var _ SimError = (*NotEnoughGoods)(nil)

// NewNotEnoughGoods creates a shortfall error. Values are taken as given.
func NewNotEnoughGoods(agent, good string, amountMissing float64) *NotEnoughGoods {
	return &NotEnoughGoods{
		Agent:         agent,
		Good:          good,
		AmountMissing: amountMissing,
	}
}

// Error renders e.g. firm_3: '5 of good 'apple' missing.
func (e *NotEnoughGoods) Error() string {
	return fmt.Sprintf("%s '%s of good '%s' missing", e.Agent, FormatAmount(e.AmountMissing), e.Good)
}

// Code returns ErrCodeNotEnoughGoods.
func (e *NotEnoughGoods) Code() ErrorCode {
	return ErrCodeNotEnoughGoods
}

// Category returns CategoryResource.
func (e *NotEnoughGoods) Category() ErrorCategory {
	return CategoryResource
}

// Metadata returns the good and missing amount.
func (e *NotEnoughGoods) Metadata() map[string]string {
	return map[string]string{
		MetaGood:          e.Good,
		MetaAmountMissing: FormatAmount(e.AmountMissing),
	}
}

// Unwrap returns nil; a shortfall is always the root cause.
func (e *NotEnoughGoods) Unwrap() error {
	return nil
}

// AgentError converts the shortfall into a generic *Error so it can travel
// through code that only understands the taxonomy.
func (e *NotEnoughGoods) AgentError(opts ...Option) *Error {
	base := []Option{
		WithAgent(e.Agent),
		WithMetadataMap(e.Metadata()),
	}
	return New(ErrCodeNotEnoughGoods, e.Error(), append(base, opts...)...)
}

// AsNotEnoughGoods extracts a shortfall from an error chain. A generic
// *Error with code NOT_ENOUGH_GOODS (for example one decoded from JSON) is
// converted back using its agent and metadata.
func AsNotEnoughGoods(err error) (*NotEnoughGoods, bool) {
	var short *NotEnoughGoods
	if As(err, &short) {
		return short, true
	}
	var e *Error
	if As(err, &e) && e.code == ErrCodeNotEnoughGoods {
		amount, perr := strconv.ParseFloat(e.metadata[MetaAmountMissing], 64)
		if perr != nil {
			return nil, false
		}
		return NewNotEnoughGoods(e.agent, e.metadata[MetaGood], amount), true
	}
	return nil, false
}

// FormatAmount renders a quantity in its shortest exact form (5, 2.5, 1e-09).
func FormatAmount(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
