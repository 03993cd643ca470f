package points

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCalculator_BasePoints(t *testing.T) {
	calc := DefaultCalculator()

	tests := []struct {
		name     string
		price    string
		expected int
	}{
		{name: "whole dollars", price: "4.50", expected: 0},
		{name: "rounds half away from zero", price: "5", expected: 1},
		{name: "rounds down below half", price: "14.99", expected: 1},
		{name: "rounds up from half", price: "15", expected: 2},
		{name: "zero price", price: "0", expected: 0},
		{name: "large order", price: "123.45", expected: 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, calc.BasePoints(decimal.RequireFromString(tt.price)))
		})
	}
}

func TestCalculator_BasePoints_CustomRate(t *testing.T) {
	calc := NewCalculator(decimal.NewFromInt(100), DefaultCentsPerPoint)

	assert.Equal(t, 5, calc.BasePoints(decimal.RequireFromString("4.50")))
	assert.Equal(t, 50, calc.BasePoints(decimal.RequireFromString("50.00")))
}

func TestComputeBasePoints_ExplicitRate(t *testing.T) {
	tests := []struct {
		name     string
		price    string
		rate     string
		expected int
	}{
		{name: "zero rate earns nothing", price: "50.00", rate: "0", expected: 0},
		{name: "default rate", price: "50.00", rate: "10", expected: 5},
		{name: "fractional rate", price: "13.60", rate: "12.5", expected: 2},
		{name: "zero price", price: "0", rate: "25", expected: 0},
		{name: "half rounds away from zero", price: "2.50", rate: "20", expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeBasePoints(decimal.RequireFromString(tt.price), decimal.RequireFromString(tt.rate))
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestCalculator_BasePoints_FiftyDollarPurchase(t *testing.T) {
	calc := DefaultCalculator()

	assert.Equal(t, 5, calc.BasePoints(decimal.RequireFromString("50.00")))
	assert.Equal(t, 1, calc.BasePoints(decimal.RequireFromString("13.60")))
}

func TestCalculator_PointsNeeded(t *testing.T) {
	calc := DefaultCalculator()

	assert.Equal(t, 100, calc.PointsNeeded(decimal.RequireFromString("5.00")))
	assert.Equal(t, 90, calc.PointsNeeded(decimal.RequireFromString("4.50")))
	assert.Equal(t, 1, calc.PointsNeeded(decimal.RequireFromString("0.01")))
	assert.Equal(t, 0, calc.PointsNeeded(decimal.Zero))
}

func TestCalculator_CanRedeem(t *testing.T) {
	calc := DefaultCalculator()

	assert.True(t, calc.CanRedeem(100, decimal.RequireFromString("5.00")))
	assert.False(t, calc.CanRedeem(99, decimal.RequireFromString("5.00")))
}

func TestNewCalculator_FallsBackToDefaults(t *testing.T) {
	calc := NewCalculator(decimal.Zero, decimal.NewFromInt(-1))

	assert.True(t, calc.Rate().Equal(DefaultRate))
	assert.True(t, calc.CentsPerPoint().Equal(DefaultCentsPerPoint))
}

func TestApplyMultiplier(t *testing.T) {
	assert.Equal(t, 12, ApplyMultiplier(10, decimal.RequireFromString("1.2")))
	assert.Equal(t, 8, ApplyMultiplier(5, decimal.RequireFromString("1.5")))
	assert.Equal(t, 25, ApplyMultiplier(10, decimal.RequireFromString("2.5")))
	assert.Equal(t, 0, ApplyMultiplier(0, decimal.RequireFromString("2.0")))
}

func TestPercentOf(t *testing.T) {
	assert.Equal(t, 50, PercentOf(50, 100))
	assert.Equal(t, 100, PercentOf(250, 100))
	assert.Equal(t, 33, PercentOf(1, 3))
	assert.Equal(t, 0, PercentOf(10, 0))
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "0", Format(0))
	assert.Equal(t, "999", Format(999))
	assert.Equal(t, "1,250", Format(1250))
	assert.Equal(t, "-1,000", Format(-1000))
}
