package tolerance

const (
	// MachineEpsilon is the gap between 1.0 and the next larger float64.
	MachineEpsilon = 0x1p-52

	// Factor scales MachineEpsilon into the tolerance band.
	Factor = 10000

	// Epsilon is the half-width of the band treated as zero.
	Epsilon = Factor * MachineEpsilon
)

// IsZero reports whether x lies strictly between -Epsilon and Epsilon.
func IsZero(x float64) bool {
	return -Epsilon < x && x < Epsilon
}

// IsPositive reports whether x is at least Epsilon.
func IsPositive(x float64) bool {
	return x >= Epsilon
}

// IsNegative reports whether x is at most -Epsilon.
func IsNegative(x float64) bool {
	return x <= -Epsilon
}

// Sign returns +1 for positive, -1 for negative and 0 otherwise (NaN included).
func Sign(x float64) int {
	switch {
	case IsPositive(x):
		return 1
	case IsNegative(x):
		return -1
	default:
		return 0
	}
}
