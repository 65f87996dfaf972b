// Package errors provides the structured error taxonomy used by simkit.
//
// # Error Categories
//
//   - Permanent: bad input (malformed address, unknown group, bad config)
//   - Resource: an agent lacks something it needs (not enough goods)
//   - Internal: anything else
//
// # Not Enough Goods
//
// Operations that consume goods (produce, offer, sell, buy) fail with a
// *NotEnoughGoods when the requested quantity exceeds what the agent holds.
// The error carries the agent address, the good and the missing amount:
//
//	err := errors.NewNotEnoughGoods("firm_3:", "apple", 5)
//	err.Error() // firm_3: '5 of good 'apple' missing
//
// It survives wrapping:
//
//	wrapped := errors.Wrap(err, "producing cider")
//	if short, ok := errors.AsNotEnoughGoods(wrapped); ok {
//	    // short.Good == "apple", short.AmountMissing == 5
//	}
//
// Nothing in this package retries. Callers decide whether to fall back or to
// let the error end the operation.
//
// # JSON Serialization
//
// *Error and *NotEnoughGoods both marshal to JSON so they can be attached to
// messages between agents. A decoded *Error with code NOT_ENOUGH_GOODS turns
// back into a *NotEnoughGoods through AsNotEnoughGoods.
package errors
