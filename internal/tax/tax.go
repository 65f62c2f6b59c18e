// Package tax implements the Malaysian SST and service-charge scheme used
// on consumer bills: a 10% service charge on the base amount, and 6% SST
// charged on the base plus that item's own service charge when an item
// carries both. Final totals follow the Malaysian 5-sen rounding mechanism.
package tax

import "math"

// Default Malaysian rates.
const (
	DefaultSSTRate           = 0.06
	DefaultServiceChargeRate = 0.10
)

// Item is a single taxable line on a bill.
type Item struct {
	Amount           float64 `json:"amount"`
	HasSST           bool    `json:"has_sst"`
	HasServiceCharge bool    `json:"has_service_charge"`
	Exempt           bool    `json:"exempt"`
}

// Breakdown is the computed tax summary for a set of items.
type Breakdown struct {
	Subtotal            float64 `json:"subtotal"`
	ServiceCharge       float64 `json:"service_charge"`
	SST                 float64 `json:"sst"`
	TotalBeforeRounding float64 `json:"total_before_rounding"`
	Total               float64 `json:"total"`
	RoundingAdjustment  float64 `json:"rounding_adjustment"`
}

// Calculate computes the tax breakdown using the default Malaysian rates.
func Calculate(items []Item) Breakdown {
	return CalculateWithRates(items, DefaultSSTRate, DefaultServiceChargeRate)
}

// CalculateWithRates computes the tax breakdown with injected rates.
//
// Exempt items count toward the subtotal but contribute to neither tax base.
// Service charge is computed on the aggregate base of flagged items. SST is
// computed per item on the base plus that item's own service charge, so SST
// compounds on service charge only for items that carry both flags.
//
// The function never fails: an empty item list yields an all-zero breakdown,
// and amount validation is the caller's contract.
func CalculateWithRates(items []Item, sstRate, serviceChargeRate float64) Breakdown {
	var subtotal, serviceChargeBase, sst float64
	for _, item := range items {
		subtotal += item.Amount
		if item.Exempt {
			continue
		}
		if item.HasServiceCharge {
			serviceChargeBase += item.Amount
		}
		if item.HasSST {
			sstBase := item.Amount
			if item.HasServiceCharge {
				sstBase += item.Amount * serviceChargeRate
			}
			sst += sstBase * sstRate
		}
	}

	serviceCharge := roundToTwoDecimals(serviceChargeBase * serviceChargeRate)
	sst = roundToTwoDecimals(sst)

	totalBeforeRounding := subtotal + serviceCharge + sst
	total := RoundTo5Sen(totalBeforeRounding)

	return Breakdown{
		Subtotal:            roundToTwoDecimals(subtotal),
		ServiceCharge:       serviceCharge,
		SST:                 sst,
		TotalBeforeRounding: roundToTwoDecimals(totalBeforeRounding),
		Total:               total,
		RoundingAdjustment:  roundToTwoDecimals(total - totalBeforeRounding),
	}
}

// roundToTwoDecimals rounds a float to 2 decimal places
func roundToTwoDecimals(value float64) float64 {
	return math.Round(value*100) / 100
}
