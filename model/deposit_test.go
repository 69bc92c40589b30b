package model

import (
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"
)

func TestIsPremium(t *testing.T) {
	require.False(t, IsPremium(nil))
	require.False(t, IsPremium(uint256.NewInt(0)))
	require.False(t, IsPremium(new(uint256.Int).SubUint64(PremiumThreshold, 1)))
	require.True(t, IsPremium(PremiumThreshold.Clone()))
	require.True(t, IsPremium(new(uint256.Int).AddUint64(PremiumThreshold, 1)))
	require.True(t, IsPremium(uint256.MustFromDecimal("1000000000000000000000000")))
}

func TestPremiumThresholdIsPointOneToken(t *testing.T) {
	oneToken := new(uint256.Int).Exp(uint256.NewInt(10), uint256.NewInt(24))
	tenth := new(uint256.Int).Div(oneToken, uint256.NewInt(10))

	require.True(t, tenth.Eq(PremiumThreshold))
}

func TestParseDeposit(t *testing.T) {
	d, err := ParseDeposit("")
	require.NoError(t, err)
	require.True(t, d.IsZero())

	d, err = ParseDeposit("100000000000000000000000")
	require.NoError(t, err)
	require.True(t, d.Eq(PremiumThreshold))

	_, err = ParseDeposit("-1")
	require.Error(t, err)

	_, err = ParseDeposit("abc")
	require.Error(t, err)
}

func TestParseU128(t *testing.T) {
	maxU128 := "340282366920938463463374607431768211455"
	v, err := ParseU128(maxU128)
	require.NoError(t, err)
	require.Equal(t, 128, v.BitLen())

	_, err = ParseU128("340282366920938463463374607431768211456")
	require.Equal(t, ErrTooWide, err)
}
