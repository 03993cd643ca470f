// Package points holds the pure points arithmetic: earning, redemption cost and display.
package points

import (
	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// Store defaults: 10 points per dollar spent, 5 cents of value per point.
//
//nolint:gochecknoglobals
var (
	DefaultRate          = decimal.NewFromInt(10)
	DefaultCentsPerPoint = decimal.NewFromInt(5)
)

var hundred = decimal.NewFromInt(100) //nolint:gochecknoglobals

// Calculator converts prices to points and back using the configured rates.
type Calculator struct {
	rate          decimal.Decimal
	centsPerPoint decimal.Decimal
}

// NewCalculator creates a calculator for the store's configured rates.
// Non-positive values mean "not configured" and fall back to the store
// defaults; use ComputeBasePoints for an explicit rate, including 0.
func NewCalculator(rate, centsPerPoint decimal.Decimal) Calculator {
	if !rate.IsPositive() {
		rate = DefaultRate
	}
	if !centsPerPoint.IsPositive() {
		centsPerPoint = DefaultCentsPerPoint
	}

	return Calculator{rate: rate, centsPerPoint: centsPerPoint}
}

// DefaultCalculator uses the store defaults.
func DefaultCalculator() Calculator {
	return NewCalculator(DefaultRate, DefaultCentsPerPoint)
}

// Rate returns the earn rate in points per dollar.
func (c Calculator) Rate() decimal.Decimal {
	return c.rate
}

// CentsPerPoint returns the redemption value of one point in cents.
func (c Calculator) CentsPerPoint() decimal.Decimal {
	return c.centsPerPoint
}

// BasePoints returns ComputeBasePoints at the calculator's rate.
func (c Calculator) BasePoints(price decimal.Decimal) int {
	return ComputeBasePoints(price, c.rate)
}

// ComputeBasePoints returns round(price * rate / 100), half away from zero.
// The rate is taken as given: a zero rate earns nothing.
func ComputeBasePoints(price, rate decimal.Decimal) int {
	return int(price.Mul(rate).Div(hundred).Round(0).IntPart())
}

// PointsNeeded returns ceil(itemPrice * 100 / centsPerPoint).
func (c Calculator) PointsNeeded(itemPrice decimal.Decimal) int {
	return int(itemPrice.Mul(hundred).Div(c.centsPerPoint).Ceil().IntPart())
}

// CanRedeem reports whether balance covers the points needed for itemPrice.
func (c Calculator) CanRedeem(balance int, itemPrice decimal.Decimal) bool {
	return balance >= c.PointsNeeded(itemPrice)
}

// ApplyMultiplier returns round(base * multiplier), half away from zero.
func ApplyMultiplier(base int, multiplier decimal.Decimal) int {
	return int(decimal.NewFromInt(int64(base)).Mul(multiplier).Round(0).IntPart())
}

// PercentOf returns min(100, round(part / whole * 100)). A non-positive whole yields 0.
func PercentOf(part, whole int) int {
	if whole <= 0 {
		return 0
	}

	pct := int(decimal.NewFromInt(int64(part)).Mul(hundred).Div(decimal.NewFromInt(int64(whole))).Round(0).IntPart())
	if pct > 100 {
		return 100
	}

	return pct
}

// Format renders points with thousands separators.
func Format(points int) string {
	return humanize.Comma(int64(points))
}
