package model

import (
	"errors"

	"github.com/holiman/uint256"
)

// PremiumThreshold is the minimal attached deposit, in yocto units, that
// makes a message premium: 100 milli-tokens, i.e. 0.1 of the base unit.
var PremiumThreshold = uint256.MustFromDecimal("100000000000000000000000")

var ErrTooWide = errors.New("value does not fit into 128 bits")

//ParseDeposit parses a decimal yocto amount as supplied by the host.
//Blank input means no deposit was attached.
func ParseDeposit(s string) (*uint256.Int, error) {
	if s == "" {
		return new(uint256.Int), nil
	}
	return ParseU128(s)
}

//ParseU128 parses an unsigned decimal which must fit into 128 bits
func ParseU128(s string) (*uint256.Int, error) {
	v, err := uint256.FromDecimal(s)
	if err != nil {
		return nil, err
	}
	if v.BitLen() > 128 {
		return nil, ErrTooWide
	}
	return v, nil
}

//IsPremium reports whether the deposit meets the premium threshold
func IsPremium(deposit *uint256.Int) bool {
	if deposit == nil {
		return false
	}
	return !deposit.Lt(PremiumThreshold)
}
