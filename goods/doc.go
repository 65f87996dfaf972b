// Package goods detects shortfalls before an agent consumes a good.
//
// Producing, offering, selling and buying all need some quantity of a good.
// Check compares the requested quantity with what the agent holds and
// returns a Result: either the quantity left over, or a
// *errors.NotEnoughGoods describing what is missing.
//
//	res := goods.Check("firm_3:", "apple", held, 5)
//	left, err := res.Unwrap() // propagate
//
//	res.Match(                  // or fall back
//	    func(left float64) { ... },
//	    func(short *errors.NotEnoughGoods) { ... },
//	)
//
// Comparisons go through the tolerance package, so rounding noise never
// turns into a shortfall. Nothing is retried and nothing is moved; the
// caller owns the inventory.
package goods
