package tax

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculate(t *testing.T) {
	tests := []struct {
		name  string
		items []Item
		want  Breakdown
	}{
		{
			name:  "empty bill",
			items: nil,
			want:  Breakdown{},
		},
		{
			name:  "sst only",
			items: []Item{{Amount: 100, HasSST: true}},
			want: Breakdown{
				Subtotal:            100,
				SST:                 6,
				TotalBeforeRounding: 106,
				Total:               106,
			},
		},
		{
			name:  "service charge only",
			items: []Item{{Amount: 100, HasServiceCharge: true}},
			want: Breakdown{
				Subtotal:            100,
				ServiceCharge:       10,
				TotalBeforeRounding: 110,
				Total:               110,
			},
		},
		{
			name:  "sst compounds on own service charge",
			items: []Item{{Amount: 100, HasSST: true, HasServiceCharge: true}},
			want: Breakdown{
				Subtotal:            100,
				ServiceCharge:       10,
				SST:                 6.6,
				TotalBeforeRounding: 116.6,
				Total:               116.6,
			},
		},
		{
			name: "exempt item counts toward subtotal only",
			items: []Item{
				{Amount: 50, HasSST: true, HasServiceCharge: true, Exempt: true},
				{Amount: 100, HasSST: true},
			},
			want: Breakdown{
				Subtotal:            150,
				SST:                 6,
				TotalBeforeRounding: 156,
				Total:               156,
			},
		},
		{
			name: "mixed flags with 5 sen rounding",
			items: []Item{
				{Amount: 12.30, HasSST: true, HasServiceCharge: true},
				{Amount: 8.20, HasServiceCharge: true},
				{Amount: 5.00},
			},
			want: Breakdown{
				Subtotal:            25.50,
				ServiceCharge:       2.05,
				SST:                 0.81,
				TotalBeforeRounding: 28.36,
				Total:               28.35,
				RoundingAdjustment:  -0.01,
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Calculate(tc.items)
			assert.InDelta(t, tc.want.Subtotal, got.Subtotal, 1e-9, "subtotal")
			assert.InDelta(t, tc.want.ServiceCharge, got.ServiceCharge, 1e-9, "service charge")
			assert.InDelta(t, tc.want.SST, got.SST, 1e-9, "sst")
			assert.InDelta(t, tc.want.TotalBeforeRounding, got.TotalBeforeRounding, 1e-9, "total before rounding")
			assert.InDelta(t, tc.want.Total, got.Total, 1e-9, "total")
			assert.InDelta(t, tc.want.RoundingAdjustment, got.RoundingAdjustment, 1e-9, "rounding adjustment")
		})
	}
}

func TestCalculateWithRates(t *testing.T) {
	items := []Item{{Amount: 200, HasSST: true, HasServiceCharge: true}}

	got := CalculateWithRates(items, 0.08, 0.05)

	assert.InDelta(t, 10.0, got.ServiceCharge, 1e-9)
	// SST base is 200 + 10 service charge, at 8%.
	assert.InDelta(t, 16.8, got.SST, 1e-9)
	assert.InDelta(t, 226.8, got.TotalBeforeRounding, 1e-9)
	assert.InDelta(t, 226.8, got.Total, 1e-9)
}

func TestCalculateWithRatesZeroServiceCharge(t *testing.T) {
	items := []Item{{Amount: 15, HasSST: true, HasServiceCharge: true}}

	got := CalculateWithRates(items, DefaultSSTRate, 0)

	assert.Zero(t, got.ServiceCharge)
	assert.InDelta(t, 0.9, got.SST, 1e-9)
	assert.InDelta(t, 15.9, got.Total, 1e-9)
}

func TestRoundTo5Sen(t *testing.T) {
	tests := []struct {
		amount float64
		want   float64
	}{
		{10.00, 10.00},
		{10.01, 10.00},
		{10.02, 10.00},
		{10.03, 10.05},
		{10.05, 10.05},
		{10.07, 10.05},
		{10.08, 10.10},
		{10.09, 10.10},
		{0.03, 0.05},
		{0.01, 0.00},
		{99.98, 100.00},
		{123.42, 123.40},
	}

	for _, tc := range tests {
		assert.InDelta(t, tc.want, RoundTo5Sen(tc.amount), 1e-9, "RoundTo5Sen(%v)", tc.amount)
	}
}

func TestRoundTo5SenProperties(t *testing.T) {
	for cents := int64(0); cents <= 2000; cents++ {
		amount := float64(cents) / 100
		rounded := RoundTo5Sen(amount)

		// Result is always a multiple of 0.05.
		units := math.Round(rounded * 100)
		assert.Zerof(t, math.Mod(units, 5), "%.2f rounded to %.2f is not a 5 sen multiple", amount, rounded)

		// Never moves more than 2.5 sen, and is idempotent.
		assert.LessOrEqualf(t, math.Abs(rounded-amount), 0.025+1e-9, "%.2f moved too far", amount)
		assert.InDelta(t, rounded, RoundTo5Sen(rounded), 1e-9)
	}
}
