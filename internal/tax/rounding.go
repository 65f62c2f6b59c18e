package tax

import "math"

// RoundTo5Sen rounds an amount to the nearest 5-sen increment following the
// Bank Negara rounding mechanism used by Malaysian retailers: a final digit
// of 1-2 sen rounds down, 3-7 rounds to 5, and 8-9 rounds up.
//
// The rounding is performed on integer cents. Multiplying in floating point
// would drift at boundary values (0.03 is stored as 0.029999...), which is
// exactly where this rule must be exact.
func RoundTo5Sen(amount float64) float64 {
	cents := int64(math.Round(amount * 100))
	base := (cents / 10) * 10
	switch d := cents - base; {
	case d <= 2:
		cents = base
	case d <= 7:
		cents = base + 5
	default:
		cents = base + 10
	}
	return float64(cents) / 100
}
