package fees

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlatformFeeAndRevenueFor100(t *testing.T) {
	p := decimal.NewFromInt(100)
	require.True(t, PlatformFee(p).Equal(decimal.RequireFromString("10.00")))
	require.True(t, SellerRevenue(p).Equal(decimal.RequireFromString("90.00")))
}

func TestSplitSumsToPrice(t *testing.T) {
	// sweep cents from 15.00 to 250.00
	for cents := int64(1500); cents <= 25000; cents += 7 {
		p := decimal.New(cents, -2)
		fee, rev := Split(p)
		if !fee.Add(rev).Equal(Round2(p)) {
			t.Fatalf("fee %s + revenue %s != %s", fee, rev, p)
		}
		require.True(t, PlatformFee(p).Add(SellerRevenue(p)).Equal(Round2(p)), "price %s", p)
	}
}

func TestSeedPrices(t *testing.T) {
	cases := map[int64][2]string{
		49: {"4.9", "44.1"},
		65: {"6.5", "58.5"},
		79: {"7.9", "71.1"},
	}
	for price, want := range cases {
		p := decimal.NewFromInt(price)
		assert.True(t, PlatformFee(p).Equal(decimal.RequireFromString(want[0])), "fee for %d", price)
		assert.True(t, SellerRevenue(p).Equal(decimal.RequireFromString(want[1])), "revenue for %d", price)
	}
}

func TestRoundingHalfAwayFromZero(t *testing.T) {
	// 15.05 * 0.10 = 1.505 -> 1.51
	p := decimal.RequireFromString("15.05")
	assert.Equal(t, "1.51", PlatformFee(p).StringFixed(2))
	assert.Equal(t, "13.54", SellerRevenue(p).StringFixed(2))
}

func TestNewCalculatorRate(t *testing.T) {
	c := NewCalculator(decimal.RequireFromString("0.25"))
	assert.Equal(t, "25.00", c.PlatformFee(decimal.NewFromInt(100)).StringFixed(2))

	fallback := NewCalculator(decimal.Zero)
	assert.True(t, fallback.Rate.Equal(FeeRate))
}

func TestRound1(t *testing.T) {
	assert.Equal(t, 4.5, Round1(4.5))
	assert.Equal(t, 4.3, Round1(13.0/3.0))
	assert.Equal(t, 4.7, Round1(14.0/3.0))
	assert.Equal(t, 0.0, Round1(0))
}
