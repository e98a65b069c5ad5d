package domain

import (
	"fmt"
	"math/big"
	"strings"
)

// UnitScaleExponent is the number of decimal places in the ledger's smallest
// currency unit. One whole unit equals 10^UnitScaleExponent smallest units.
const UnitScaleExponent = 24

var unitScale = pow10(UnitScaleExponent)

// ToSmallestUnit converts a non-negative decimal string ("1", "0.1", "2.5")
// into the ledger's smallest currency unit. No sign, exponent, or grouping
// separators are accepted, and the fractional part may not carry more digits
// than UnitScaleExponent.
func ToSmallestUnit(amount string) (*big.Int, error) {
	intPart, fracPart, hasFrac := strings.Cut(amount, ".")
	if !isDigits(intPart) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAmount, amount)
	}

	result, _ := new(big.Int).SetString(intPart, 10)
	result.Mul(result, unitScale)

	if !hasFrac {
		return result, nil
	}

	if !isDigits(fracPart) || len(fracPart) > UnitScaleExponent {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAmount, amount)
	}

	frac, _ := new(big.Int).SetString(fracPart, 10)
	frac.Mul(frac, pow10(UnitScaleExponent-len(fracPart)))

	return result.Add(result, frac), nil
}

// ParseSmallestUnit parses an amount already denominated in the smallest unit
// (a plain non-negative integer string, as carried on the wire).
func ParseSmallestUnit(amount string) (*big.Int, error) {
	if !isDigits(amount) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAmount, amount)
	}

	result, _ := new(big.Int).SetString(amount, 10)
	return result, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func pow10(exp int) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(exp)), nil)
}
