package split

import (
	"math"
	"sort"
)

// Transfer is a directed settle-up payment between two participants.
type Transfer struct {
	From     string  `json:"from"`
	FromName string  `json:"from_name"`
	To       string  `json:"to"`
	ToName   string  `json:"to_name"`
	Amount   float64 `json:"amount"`
}

// settleTolerance is the slack below which a remaining balance counts as
// settled. It absorbs binary floating-point drift in the accumulated sums.
const settleTolerance = 0.01

// SettlementTransfers turns a set of balances into a settle-up plan.
//
// Debtors (positive net) are matched against creditors (negative net),
// largest remaining balance first, transferring min(debt, credit) each step.
// Sorting both queues by magnitude guarantees the plan never exceeds
// len(balances)-1 transfers. Every emitted transfer has a positive amount
// rounded to 2 decimals.
//
// Termination holds because total debt equals total credit (a session
// invariant) and each iteration retires at least one side of the match.
func (e Engine) SettlementTransfers(balances []Balance) []Transfer {
	type party struct {
		id        string
		name      string
		remaining float64
	}

	var debtors, creditors []party
	for _, b := range balances {
		switch {
		case b.Net > settleTolerance:
			debtors = append(debtors, party{b.ParticipantID, b.Name, b.Net})
		case b.Net < -settleTolerance:
			creditors = append(creditors, party{b.ParticipantID, b.Name, -b.Net})
		}
	}

	sort.SliceStable(debtors, func(i, j int) bool {
		return debtors[i].remaining > debtors[j].remaining
	})
	sort.SliceStable(creditors, func(i, j int) bool {
		return creditors[i].remaining > creditors[j].remaining
	})

	var transfers []Transfer
	i, j := 0, 0
	for i < len(debtors) && j < len(creditors) {
		amount := roundToTwoDecimals(math.Min(debtors[i].remaining, creditors[j].remaining))
		if amount > 0 {
			transfers = append(transfers, Transfer{
				From:     debtors[i].id,
				FromName: debtors[i].name,
				To:       creditors[j].id,
				ToName:   creditors[j].name,
				Amount:   amount,
			})
		}

		debtors[i].remaining -= amount
		creditors[j].remaining -= amount

		if debtors[i].remaining < settleTolerance {
			i++
		}
		if creditors[j].remaining < settleTolerance {
			j++
		}
	}

	return transfers
}
