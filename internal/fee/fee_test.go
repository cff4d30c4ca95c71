package fee

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLamportsForUSD(t *testing.T) {
	// SOL = $100.00 → $20 = 0.2 SOL
	got, err := LamportsForUSD(20, 10000)
	require.NoError(t, err)
	assert.Equal(t, uint64(200_000_000), got)

	// SOL = $50.00 → $20 = 0.4 SOL
	got, err = LamportsForUSD(20, 5000)
	require.NoError(t, err)
	assert.Equal(t, uint64(400_000_000), got)

	// SOL = $200.00 → $20 = 0.1 SOL
	got, err = LamportsForUSD(20, 20000)
	require.NoError(t, err)
	assert.Equal(t, uint64(100_000_000), got)
}

// 除不尽时向上取整，绝不少付
func TestLamportsForUSDCeil(t *testing.T) {
	// 20*100*1e9 / 30000 = 66_666_666.66…
	got, err := LamportsForUSD(20, 30000)
	require.NoError(t, err)
	assert.Equal(t, uint64(66_666_667), got)

	// 整除时不加一
	got, err = LamportsForUSD(20, 10000)
	require.NoError(t, err)
	assert.Equal(t, uint64(200_000_000), got)
}

func TestLamportsForUSDPriceBounds(t *testing.T) {
	// 低于 $1.00
	_, err := LamportsForUSD(20, 99)
	assert.ErrorIs(t, err, ErrUnitPriceOutOfRange)

	// 高于 $10,000.00
	_, err = LamportsForUSD(20, 1_000_001)
	assert.ErrorIs(t, err, ErrUnitPriceOutOfRange)

	// 区间边界本身合法
	_, err = LamportsForUSD(20, 100)
	assert.NoError(t, err)
	_, err = LamportsForUSD(20, 1_000_000)
	assert.NoError(t, err)
}

func TestLamportsForUSDDeterministic(t *testing.T) {
	a, err := LamportsForUSD(20, 12345)
	require.NoError(t, err)
	b, err := LamportsForUSD(20, 12345)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
