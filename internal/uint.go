package internal

import (
	"fmt"

	"github.com/holiman/uint256"
)

// Uint is a 256-bit unsigned integer quantity.
//
// All accumulator arithmetic runs at this width. Add and Mul are checked:
// a result that would wrap returns ErrValueOverflow instead.
type Uint struct {
	value uint256.Int
}

func NewUint(s string) (Uint, error) {
	v, err := uint256.FromDecimal(s)
	if err != nil {
		return Uint{}, fmt.Errorf("invalid quantity: %w", err)
	}
	return Uint{value: *v}, nil
}

func NewUintFromUint64(i uint64) Uint {
	var v uint256.Int
	v.SetUint64(i)
	return Uint{value: v}
}

func (u Uint) String() string {
	return u.value.Dec()
}

func (u Uint) IsZero() bool {
	return u.value.IsZero()
}

// Add returns the sum of u and other, or ErrValueOverflow if the sum
// exceeds the 256-bit range.
func (u Uint) Add(other Uint) (Uint, error) {
	var result uint256.Int
	if _, overflow := result.AddOverflow(&u.value, &other.value); overflow {
		return Uint{}, fmt.Errorf("%w: %s + %s", ErrValueOverflow, u.value.Dec(), other.value.Dec())
	}
	return Uint{value: result}, nil
}

// Mul returns the product of u and other, or ErrValueOverflow if the
// product exceeds the 256-bit range.
func (u Uint) Mul(other Uint) (Uint, error) {
	var result uint256.Int
	if _, overflow := result.MulOverflow(&u.value, &other.value); overflow {
		return Uint{}, fmt.Errorf("%w: %s * %s", ErrValueOverflow, u.value.Dec(), other.value.Dec())
	}
	return Uint{value: result}, nil
}

// Div returns u divided by other, truncating toward zero. Division by
// zero returns zero; callers guard the denominator before dividing.
func (u Uint) Div(other Uint) Uint {
	var result uint256.Int
	result.Div(&u.value, &other.value)
	return Uint{value: result}
}
