// Package split computes per-participant balances and settle-up transfer
// plans for a session's bill items. The engine is pure: it holds no state
// beyond its configuration, performs no I/O, and may be called concurrently.
package split

import (
	"fmt"
	"math"
)

// Participant identifies one person in a session.
type Participant struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Item is one shared expense line. PaidBy need not appear in SharedBy;
// a payer is not necessarily a consumer.
type Item struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	TotalAmount float64  `json:"total_amount"`
	PaidBy      string   `json:"paid_by"`
	SharedBy    []string `json:"shared_by"`
	HasSST      bool     `json:"has_sst"`
}

// ItemShare records one item's contribution to a participant's balance,
// kept for audit display.
type ItemShare struct {
	ItemID        string  `json:"item_id"`
	ItemName      string  `json:"item_name"`
	Base          float64 `json:"base"`
	SST           float64 `json:"sst"`
	ServiceCharge float64 `json:"service_charge"`
}

// Balance is the computed position of one participant.
// Net is positive when the participant owes the group and negative when the
// group owes them.
type Balance struct {
	ParticipantID string      `json:"participant_id"`
	Name          string      `json:"name"`
	TotalOwed     float64     `json:"total_owed"`
	TotalPaid     float64     `json:"total_paid"`
	Net           float64     `json:"net_amount"`
	Items         []ItemShare `json:"item_breakdown,omitempty"`
}

// Summary aggregates session-level totals.
type Summary struct {
	TotalAmount        float64 `json:"total_amount"`
	TotalSST           float64 `json:"total_sst"`
	TotalServiceCharge float64 `json:"total_service_charge"`
	ItemCount          int     `json:"item_count"`
}

// Result is the output of a full session calculation.
type Result struct {
	Balances []Balance `json:"participants"`
	Summary  Summary   `json:"summary"`
}

// Engine computes balances and settlement plans under one Config.
type Engine struct {
	cfg Config
}

// New creates an engine with the given configuration.
func New(cfg Config) Engine {
	return Engine{cfg: cfg}
}

// Config returns the engine's active configuration.
func (e Engine) Config() Config {
	return e.cfg
}

// Calculate computes every participant's owed/paid/net balance from the
// session's current items.
//
// For each item: the base amount and SST are divided among the item's
// sharers; the service charge is divided among the scope population
// (all participants by default); the payer is credited the item's full
// tax-inclusive cost. Each division uses largest-remainder allocation:
// the first n-1 shares are round2(amount/n) and the final share absorbs
// the residue, so an item's shares always sum exactly to what its payer
// fronted and rounding drift cannot accumulate across items.
//
// Items whose SharedBy is empty after deduplication contribute nothing -
// that is a caller shape violation handled by degrading, not by failing.
// References to unknown participant IDs (e.g. a removed participant) are
// silently skipped for the same reason.
func (e Engine) Calculate(participants []Participant, items []Item) Result {
	balances := make([]Balance, len(participants))
	index := make(map[string]int, len(participants))
	for i, p := range participants {
		balances[i] = Balance{ParticipantID: p.ID, Name: p.Name}
		index[p.ID] = i
	}

	var summary Summary
	if len(participants) == 0 || len(items) == 0 {
		return Result{Balances: balances, Summary: summary}
	}

	for _, item := range items {
		sharers := dedupe(item.SharedBy)
		if len(sharers) == 0 {
			continue
		}

		var sst float64
		if item.HasSST {
			sst = roundToTwoDecimals(item.TotalAmount * e.cfg.SSTRate)
		}
		serviceCharge := roundToTwoDecimals(item.TotalAmount * e.cfg.ServiceChargeRate)

		summary.TotalAmount = roundToTwoDecimals(summary.TotalAmount + item.TotalAmount)
		summary.TotalSST = roundToTwoDecimals(summary.TotalSST + sst)
		summary.TotalServiceCharge = roundToTwoDecimals(summary.TotalServiceCharge + serviceCharge)
		summary.ItemCount++

		// The payer fronted the item's full tax-inclusive cost,
		// whether or not they consumed any of it.
		if i, ok := index[item.PaidBy]; ok {
			balances[i].TotalPaid = roundToTwoDecimals(balances[i].TotalPaid + item.TotalAmount + sst + serviceCharge)
		}

		shares := make([]ItemShare, len(balances))

		baseShares := splitAmount(item.TotalAmount, len(sharers))
		var sstShares []float64
		if sst > 0 {
			sstShares = splitAmount(sst, len(sharers))
		}
		for pos, id := range sharers {
			i, ok := index[id]
			if !ok {
				continue
			}
			shares[i].Base = baseShares[pos]
			if sst > 0 {
				shares[i].SST = sstShares[pos]
			}
		}

		if serviceCharge > 0 {
			if e.cfg.ServiceChargeScope == ScopeItemSharers {
				scShares := splitAmount(serviceCharge, len(sharers))
				for pos, id := range sharers {
					if i, ok := index[id]; ok {
						shares[i].ServiceCharge = scShares[pos]
					}
				}
			} else {
				scShares := splitAmount(serviceCharge, len(participants))
				for i := range balances {
					shares[i].ServiceCharge = scShares[i]
				}
			}
		}

		for i := range balances {
			owed := roundToTwoDecimals(shares[i].Base + shares[i].SST + shares[i].ServiceCharge)
			if owed == 0 {
				continue
			}
			shares[i].ItemID = item.ID
			shares[i].ItemName = item.Name
			balances[i].TotalOwed = roundToTwoDecimals(balances[i].TotalOwed + owed)
			balances[i].Items = append(balances[i].Items, shares[i])
		}
	}

	for i := range balances {
		balances[i].Net = roundToTwoDecimals(balances[i].TotalOwed - balances[i].TotalPaid)
	}

	return Result{Balances: balances, Summary: summary}
}

// ValidateResult checks the accounting invariants on a computed result:
// total owed matches total paid, and net balances sum to zero, both within
// the rounding tolerance. Non-finite values (from degenerate input amounts
// the caller failed to validate) are reported as errors rather than masked.
func ValidateResult(result Result) error {
	var owed, paid, net float64
	for _, b := range result.Balances {
		owed += b.TotalOwed
		paid += b.TotalPaid
		net += b.Net
	}
	for _, v := range []float64{owed, paid, net} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("balances contain a non-finite amount")
		}
	}
	if math.Abs(owed-paid) > settleTolerance {
		return fmt.Errorf("total owed %.2f does not match total paid %.2f", owed, paid)
	}
	if math.Abs(net) > settleTolerance {
		return fmt.Errorf("net balances sum to %.2f, want 0", net)
	}
	return nil
}

// splitAmount divides an amount into n shares by largest remainder: the
// first n-1 shares are round2(amount/n) and the last share absorbs the
// residue. The shares sum exactly to round2(amount), so dividing an item
// never creates or destroys sen.
func splitAmount(amount float64, n int) []float64 {
	shares := make([]float64, n)
	per := roundToTwoDecimals(amount / float64(n))
	for i := 0; i < n-1; i++ {
		shares[i] = per
		amount -= per
	}
	shares[n-1] = roundToTwoDecimals(amount)
	return shares
}

// dedupe collapses duplicate participant IDs, preserving first-seen order.
func dedupe(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

// roundToTwoDecimals rounds a float to 2 decimal places
func roundToTwoDecimals(value float64) float64 {
	return math.Round(value*100) / 100
}
