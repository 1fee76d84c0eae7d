package types

import (
	"math/bits"

	errorsmod "cosmossdk.io/errors"
)

// Percent share is expressed against a 1_000_000 denominator; 100_000 is 10%.
const (
	percentShareNumerator   = 100_000
	percentShareDenominator = 1_000_000
)

// SplitPolicy decides how much of a purchase goes to the reward pool.
type SplitPolicy interface {
	Share(amount uint64) (uint64, error)
}

// FixedShare forwards the same amount on every purchase.
type FixedShare struct {
	Amount uint64
}

func (s FixedShare) Share(uint64) (uint64, error) {
	return s.Amount, nil
}

// PercentShare forwards 10% of purchases above Threshold and a flat Minimum
// otherwise.
type PercentShare struct {
	Threshold uint64
	Minimum   uint64
}

func (s PercentShare) Share(amount uint64) (uint64, error) {
	if amount <= s.Threshold {
		return s.Minimum, nil
	}
	hi, lo := bits.Mul64(amount, percentShareNumerator)
	if hi != 0 {
		return 0, errorsmod.Wrapf(ErrArithmetic, "share of %d overflows", amount)
	}
	return lo / percentShareDenominator, nil
}
