// Package tolerance classifies floating point values as zero, positive or
// negative within a fixed band around zero.
//
// Quantities in a simulation pass through many additions and
// multiplications, so a value that should be exactly zero often ends up as
// something like 9.999999999999966e-30. Comparing it with == 0 gives the
// wrong answer. The helpers here treat anything strictly inside
// (-Epsilon, Epsilon) as zero.
//
// # Boundaries
//
// The band is open on both ends. A value exactly equal to Epsilon is
// positive and a value exactly equal to -Epsilon is negative:
//
//	tolerance.IsZero(tolerance.Epsilon)     // false
//	tolerance.IsPositive(tolerance.Epsilon) // true
//
// NaN satisfies none of the three classifiers.
package tolerance
