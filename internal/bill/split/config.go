package split

import "github.com/azmirfakkri/jomsplit/internal/tax"

// ServiceChargeScope selects which population shares an item's service charge.
type ServiceChargeScope string

const (
	// ScopeAllParticipants divides every item's service charge among all
	// session participants. Service charge is a venue-wide cost, so by
	// default everyone at the table carries it, consumers or not.
	ScopeAllParticipants ServiceChargeScope = "ALL_PARTICIPANTS"

	// ScopeItemSharers divides an item's service charge among that item's
	// sharers only.
	ScopeItemSharers ServiceChargeScope = "ITEM_SHARERS"
)

// Config carries the tax terms active for a calculation. The SST-only and
// SST+service-charge schemes are the same engine with different rates, not
// separate code paths.
type Config struct {
	SSTRate            float64            `json:"sst_rate"`
	ServiceChargeRate  float64            `json:"service_charge_rate"`
	ServiceChargeScope ServiceChargeScope `json:"service_charge_scope"`
}

// DefaultConfig returns the Malaysian defaults: 6% SST, 10% service charge
// shared by all participants.
func DefaultConfig() Config {
	return Config{
		SSTRate:            tax.DefaultSSTRate,
		ServiceChargeRate:  tax.DefaultServiceChargeRate,
		ServiceChargeScope: ScopeAllParticipants,
	}
}

// SSTOnlyConfig returns the scheme with no service charge term, used by call
// sites that quote SST-inclusive totals directly.
func SSTOnlyConfig() Config {
	return Config{
		SSTRate:            tax.DefaultSSTRate,
		ServiceChargeScope: ScopeAllParticipants,
	}
}
