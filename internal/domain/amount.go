package domain

import (
	"fmt"
	"math/big"
)

// Amount is a non-negative ledger amount in the currency's minor unit
// (wei). Amounts are kept in arbitrary precision and serialized as decimal
// strings so mirror arithmetic matches on-chain figures exactly; floating
// point is never involved.
type Amount struct {
	v big.Int
}

// ZeroAmount returns a zero amount.
func ZeroAmount() *Amount {
	return &Amount{}
}

// ParseAmount parses a decimal minor-unit string into an Amount.
// Negative values and non-decimal input are rejected.
func ParseAmount(s string) (*Amount, error) {
	if s == "" {
		return nil, fmt.Errorf("empty amount")
	}

	var v big.Int
	if _, ok := v.SetString(s, 10); !ok {
		return nil, fmt.Errorf("invalid amount %q", s)
	}
	if v.Sign() < 0 {
		return nil, fmt.Errorf("negative amount %q", s)
	}

	return &Amount{v: v}, nil
}

// MustParseAmount is ParseAmount for statically known values. It panics on
// invalid input and is intended for tests and constants.
func MustParseAmount(s string) *Amount {
	a, err := ParseAmount(s)
	if err != nil {
		panic(err)
	}
	return a
}

// NewAmountFromBig creates an Amount from a big.Int as returned by contract
// calls. The input is copied; nil is treated as zero.
func NewAmountFromBig(v *big.Int) (*Amount, error) {
	if v == nil {
		return ZeroAmount(), nil
	}
	if v.Sign() < 0 {
		return nil, fmt.Errorf("negative amount %s", v.String())
	}

	a := &Amount{}
	a.v.Set(v)
	return a, nil
}

// Add returns a new amount holding a + b.
func (a *Amount) Add(b *Amount) *Amount {
	sum := &Amount{}
	sum.v.Add(&a.v, &b.v)
	return sum
}

// Sub returns a new amount holding a - b. The second return value is false
// when the result would be negative; the returned amount is then zero.
func (a *Amount) Sub(b *Amount) (*Amount, bool) {
	if a.v.Cmp(&b.v) < 0 {
		return ZeroAmount(), false
	}

	diff := &Amount{}
	diff.v.Sub(&a.v, &b.v)
	return diff, true
}

// Cmp compares a and b, returning -1, 0 or 1.
func (a *Amount) Cmp(b *Amount) int {
	return a.v.Cmp(&b.v)
}

// IsZero reports whether the amount is zero.
func (a *Amount) IsZero() bool {
	return a.v.Sign() == 0
}

// BigInt returns a copy of the underlying integer value.
func (a *Amount) BigInt() *big.Int {
	return new(big.Int).Set(&a.v)
}

// String returns the decimal minor-unit representation.
func (a *Amount) String() string {
	return a.v.String()
}
