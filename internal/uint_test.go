package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUint(t *testing.T) {
	t.Run("parses decimal strings", func(t *testing.T) {
		u, err := NewUint("12345678901234567890")

		require.NoError(t, err)
		assert.Equal(t, "12345678901234567890", u.String())
	})

	t.Run("parses the full 256-bit range", func(t *testing.T) {
		u, err := NewUint(maxUint256)

		require.NoError(t, err)
		assert.Equal(t, maxUint256, u.String())
	})

	t.Run("rejects values past the 256-bit range", func(t *testing.T) {
		_, err := NewUint("115792089237316195423570985008687907853269984665640564039457584007913129639936")

		require.Error(t, err)
	})

	t.Run("rejects negative values", func(t *testing.T) {
		_, err := NewUint("-1")

		require.Error(t, err)
	})

	t.Run("rejects non-numeric strings", func(t *testing.T) {
		_, err := NewUint("12.5")
		require.Error(t, err)

		_, err = NewUint("abc")
		require.Error(t, err)

		_, err = NewUint("")
		require.Error(t, err)
	})
}

func TestUintArithmetic(t *testing.T) {
	t.Run("add returns exact sum", func(t *testing.T) {
		sum, err := NewUintFromUint64(40).Add(NewUintFromUint64(2))

		require.NoError(t, err)
		assert.Equal(t, "42", sum.String())
	})

	t.Run("add past the 256-bit range fails with value overflow", func(t *testing.T) {
		max := mustUint(t, maxUint256)

		_, err := max.Add(NewUintFromUint64(1))

		require.ErrorIs(t, err, ErrValueOverflow)
	})

	t.Run("mul returns exact product", func(t *testing.T) {
		product, err := NewUintFromUint64(6).Mul(NewUintFromUint64(7))

		require.NoError(t, err)
		assert.Equal(t, "42", product.String())
	})

	t.Run("mul past the 256-bit range fails with value overflow", func(t *testing.T) {
		max := mustUint(t, maxUint256)

		_, err := max.Mul(NewUintFromUint64(2))

		require.ErrorIs(t, err, ErrValueOverflow)
	})

	t.Run("div truncates toward zero", func(t *testing.T) {
		quotient := NewUintFromUint64(7).Div(NewUintFromUint64(2))

		assert.Equal(t, "3", quotient.String())
	})

	t.Run("div by zero returns zero", func(t *testing.T) {
		quotient := NewUintFromUint64(7).Div(NewUintFromUint64(0))

		assert.True(t, quotient.IsZero())
	})
}
