package internal

import (
	"fmt"

	"github.com/cockroachdb/apd/v3"
)

// Fixed-point quantities (weights and precision-scaled values) travel as
// raw integers; these helpers convert between that representation and
// human decimal strings. A 256-bit quantity needs at most 78 decimal
// digits, so the apd context is sized to hold any quotient exactly.
var scaleContext = apd.BaseContext.WithPrecision(78)

// FormatScaled renders quantity / precision as a decimal string.
//
// Example: quantity "1500000000000000000" at precision
// "1000000000000000000" renders as "1.5".
func FormatScaled(quantity Uint, precision Uint) (string, error) {
	if precision.IsZero() {
		return "", fmt.Errorf("precision must be positive")
	}

	var q, p, result apd.Decimal
	if _, _, err := q.SetString(quantity.String()); err != nil {
		return "", fmt.Errorf("invalid quantity: %w", err)
	}
	if _, _, err := p.SetString(precision.String()); err != nil {
		return "", fmt.Errorf("invalid precision: %w", err)
	}

	if _, err := scaleContext.Quo(&result, &q, &p); err != nil {
		return "", fmt.Errorf("failed to scale quantity: %w", err)
	}
	// Text('f') keeps the plain form; String() would switch large
	// quantities to scientific notation.
	reduced, _ := result.Reduce(&result)
	return reduced.Text('f'), nil
}

// ParseScaled converts a decimal string into a fixed-point quantity at
// the given precision, truncating any fraction finer than the scale.
//
// Example: "1.5" at precision "1000000000000000000" parses as
// 1500000000000000000.
func ParseScaled(s string, precision Uint) (Uint, error) {
	if precision.IsZero() {
		return Uint{}, fmt.Errorf("precision must be positive")
	}

	var d, p, product apd.Decimal
	if _, _, err := d.SetString(s); err != nil {
		return Uint{}, fmt.Errorf("invalid decimal: %w", err)
	}
	if d.Negative {
		return Uint{}, fmt.Errorf("quantity cannot be negative: %s", s)
	}
	if _, _, err := p.SetString(precision.String()); err != nil {
		return Uint{}, fmt.Errorf("invalid precision: %w", err)
	}

	if _, err := scaleContext.Mul(&product, &d, &p); err != nil {
		return Uint{}, fmt.Errorf("failed to scale quantity: %w", err)
	}

	var truncated apd.Decimal
	if _, err := scaleContext.Floor(&truncated, &product); err != nil {
		return Uint{}, fmt.Errorf("failed to truncate quantity: %w", err)
	}

	reduced, _ := truncated.Reduce(&truncated)
	return NewUint(reduced.Text('f'))
}
