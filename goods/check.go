package goods

import (
	"github.com/vinayprograms/simkit/errors"
	"github.com/vinayprograms/simkit/tolerance"
)

// Operation names a goods-consuming operation.
type Operation string

const (
	OpProduce Operation = "produce"
	OpOffer   Operation = "offer"
	OpSell    Operation = "sell"
	OpBuy     Operation = "buy"
)

// MetaOperation is the metadata key CheckFor attaches to a shortfall.
const MetaOperation = "operation"

// Check reports whether agent can consume requested units of good when it
// holds available. On success the result holds what remains, snapped to 0
// when it is within tolerance of zero. Otherwise the shortfall carries
// requested - available.
//
// Amounts follow IEEE arithmetic and are not screened. An infinite request
// against a finite holding is short by +Inf, and an infinite holding covers
// any finite request with +Inf left. A NaN operand, or +Inf requested
// against +Inf held, gives Ok(NaN).
func Check(agent, good string, available, requested float64) Result[float64] {
	missing := requested - available
	if tolerance.IsPositive(missing) {
		return Short[float64](errors.NewNotEnoughGoods(agent, good, missing))
	}
	left := available - requested
	if tolerance.IsZero(left) {
		left = 0
	}
	return Ok(left)
}

// CheckFor is Check for a named operation. A shortfall is returned as a
// generic error tagged with the operation and round so it can be logged or
// shipped to another agent; errors.AsNotEnoughGoods still recovers it.
func CheckFor(op Operation, round int, agent, good string, available, requested float64) (float64, error) {
	left, err := Check(agent, good, available, requested).Unwrap()
	if err == nil {
		return left, nil
	}
	return 0, errors.Wrap(err, string(op)+" "+good,
		errors.WithMetadata(MetaOperation, string(op)),
		errors.WithRound(round),
	)
}
