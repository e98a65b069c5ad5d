package domain_test

import (
	"errors"
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/space-ranger/ship-registry/internal/domain"
)

// bigPow returns base^exp as a big.Int for building expected values
func bigPow(base, exp int64) *big.Int {
	return new(big.Int).Exp(big.NewInt(base), big.NewInt(exp), nil)
}

func TestToSmallestUnit(t *testing.T) {
	tests := []struct {
		name     string
		amount   string
		expected *big.Int
	}{
		{
			name:     "whole unit",
			amount:   "1",
			expected: bigPow(10, 24),
		},
		{
			name:     "tenth of a unit",
			amount:   "0.1",
			expected: bigPow(10, 23),
		},
		{
			name:     "two and a half units",
			amount:   "2.5",
			expected: new(big.Int).Mul(big.NewInt(25), bigPow(10, 23)),
		},
		{
			name:     "zero",
			amount:   "0",
			expected: big.NewInt(0),
		},
		{
			name:     "full precision fraction",
			amount:   "0.000000000000000000000001",
			expected: big.NewInt(1),
		},
		{
			name:     "large whole amount",
			amount:   "1000000",
			expected: new(big.Int).Mul(big.NewInt(1000000), bigPow(10, 24)),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.ToSmallestUnit(tt.amount)
			require.NoError(t, err)
			assert.Zero(t, tt.expected.Cmp(got), "expected %s, got %s", tt.expected, got)
		})
	}
}

func TestToSmallestUnit_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		amount string
	}{
		{name: "empty string", amount: ""},
		{name: "not a number", amount: "abc"},
		{name: "negative", amount: "-1"},
		{name: "explicit plus sign", amount: "+1"},
		{name: "missing integer part", amount: ".5"},
		{name: "missing fractional part", amount: "1."},
		{name: "two decimal points", amount: "1.2.3"},
		{name: "grouping separator", amount: "1,000"},
		{name: "exponent notation", amount: "1e24"},
		{name: "fraction longer than unit scale", amount: "0.1" + strings.Repeat("0", 24)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.ToSmallestUnit(tt.amount)
			assert.Nil(t, got)
			assert.True(t, errors.Is(err, domain.ErrInvalidAmount))
		})
	}
}

func TestParseSmallestUnit(t *testing.T) {
	got, err := domain.ParseSmallestUnit("100000000000000000000000")
	require.NoError(t, err)
	assert.Zero(t, bigPow(10, 23).Cmp(got))

	_, err = domain.ParseSmallestUnit("0.1")
	assert.True(t, errors.Is(err, domain.ErrInvalidAmount))

	_, err = domain.ParseSmallestUnit("")
	assert.True(t, errors.Is(err, domain.ErrInvalidAmount))
}
