// Package amount converts between human-readable chain amounts and integer
// base units (satoshi, wei, drops). All arithmetic is arbitrary-precision;
// floating point is never used because base units are exact integers.
package amount

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/Klingon-tech/klinggive-wallet/pkg/chains"
)

var (
	ErrNegativeAmount   = errors.New("amount must not be negative")
	ErrMalformedAmount  = errors.New("malformed amount")
	ErrTooManyDecimals  = errors.New("more fractional digits than the chain supports")
	ErrUnsupportedChain = errors.New("unsupported chain")
)

// ten is the conversion radix.
var ten = big.NewInt(10)

// pow10 returns 10^n as a big.Int.
func pow10(n uint8) *big.Int {
	return new(big.Int).Exp(ten, big.NewInt(int64(n)), nil)
}

// ToBaseUnits parses a decimal amount string ("1.5", "0.000001") into
// integer base units for a chain with the given number of decimals.
// Negative amounts and excess fractional digits are rejected.
func ToBaseUnits(amount string, decimals uint8) (*big.Int, error) {
	s := strings.TrimSpace(amount)
	if s == "" {
		return nil, fmt.Errorf("%w: empty string", ErrMalformedAmount)
	}
	if s[0] == '-' {
		return nil, ErrNegativeAmount
	}
	if s[0] == '+' {
		return nil, fmt.Errorf("%w: leading sign", ErrMalformedAmount)
	}

	intPart := s
	fracPart := ""
	if dot := strings.IndexByte(s, '.'); dot >= 0 {
		intPart, fracPart = s[:dot], s[dot+1:]
		if strings.IndexByte(fracPart, '.') >= 0 {
			return nil, fmt.Errorf("%w: multiple decimal points", ErrMalformedAmount)
		}
	}
	if intPart == "" && fracPart == "" {
		return nil, fmt.Errorf("%w: no digits", ErrMalformedAmount)
	}
	if intPart == "" {
		intPart = "0"
	}
	if !isDigits(intPart) || (fracPart != "" && !isDigits(fracPart)) {
		return nil, fmt.Errorf("%w: non-digit character", ErrMalformedAmount)
	}
	if len(fracPart) > int(decimals) {
		return nil, fmt.Errorf("%w: got %d, chain allows %d",
			ErrTooManyDecimals, len(fracPart), decimals)
	}

	// Right-pad the fraction to exactly `decimals` digits, then treat the
	// whole string as one integer.
	padded := intPart + fracPart + strings.Repeat("0", int(decimals)-len(fracPart))
	n, ok := new(big.Int).SetString(padded, 10)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMalformedAmount, amount)
	}
	return n, nil
}

// FromBaseUnits renders integer base units as a decimal string with a
// fixed-width fractional part, e.g. 1000000 drops -> "1.000000".
func FromBaseUnits(n *big.Int, decimals uint8) (string, error) {
	if n == nil {
		return "", fmt.Errorf("%w: nil", ErrMalformedAmount)
	}
	if n.Sign() < 0 {
		return "", ErrNegativeAmount
	}
	if decimals == 0 {
		return n.String(), nil
	}
	quo, rem := new(big.Int).QuoRem(n, pow10(decimals), new(big.Int))
	frac := rem.String()
	if pad := int(decimals) - len(frac); pad > 0 {
		frac = strings.Repeat("0", pad) + frac
	}
	return quo.String() + "." + frac, nil
}

// ToBase converts a decimal amount to base units for a chain symbol
// (satoshi for BTC, wei for ETH-family, drops for XRP).
func ToBase(amount, symbol string) (*big.Int, error) {
	p, _, ok := chains.Resolve(symbol, chains.Mainnet)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedChain, symbol)
	}
	return ToBaseUnits(amount, p.Decimals)
}

// FromBase converts base units to a decimal amount for a chain symbol.
func FromBase(n *big.Int, symbol string) (string, error) {
	p, _, ok := chains.Resolve(symbol, chains.Mainnet)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedChain, symbol)
	}
	return FromBaseUnits(n, p.Decimals)
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
