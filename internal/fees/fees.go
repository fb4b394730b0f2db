package fees

import "github.com/shopspring/decimal"

// FeeRate is the share of every sale kept by the platform.
var FeeRate = decimal.NewFromFloat(0.10)

// Calculator splits a sale price into platform fee and seller revenue.
type Calculator struct {
	Rate decimal.Decimal
}

// NewCalculator returns a calculator for the given rate; a zero or negative
// rate falls back to FeeRate.
func NewCalculator(rate decimal.Decimal) Calculator {
	if !rate.IsPositive() {
		rate = FeeRate
	}
	return Calculator{Rate: rate}
}

var defaultCalculator = Calculator{Rate: FeeRate}

// PlatformFee returns round2(price * rate).
func (c Calculator) PlatformFee(price decimal.Decimal) decimal.Decimal {
	return Round2(price.Mul(c.Rate))
}

// SellerRevenue returns round2(price - PlatformFee(price)).
func (c Calculator) SellerRevenue(price decimal.Decimal) decimal.Decimal {
	return Round2(price.Sub(c.PlatformFee(price)))
}

// Split returns fee and revenue together; fee + revenue == Round2(price).
func (c Calculator) Split(price decimal.Decimal) (fee, revenue decimal.Decimal) {
	fee = c.PlatformFee(price)
	return fee, Round2(price.Sub(fee))
}

func PlatformFee(price decimal.Decimal) decimal.Decimal {
	return defaultCalculator.PlatformFee(price)
}

func SellerRevenue(price decimal.Decimal) decimal.Decimal {
	return defaultCalculator.SellerRevenue(price)
}

func Split(price decimal.Decimal) (fee, revenue decimal.Decimal) {
	return defaultCalculator.Split(price)
}

// Round2 rounds to cents, half away from zero.
func Round2(v decimal.Decimal) decimal.Decimal { return v.Round(2) }

// Round1 rounds to one decimal, half away from zero. Used for ratings.
func Round1(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(1).Float64()
	return f
}
