package split

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettlementTransfers(t *testing.T) {
	engine := New(DefaultConfig())
	participants, items := mamakSession()

	result := engine.Calculate(participants, items)
	transfers := engine.SettlementTransfers(result.Balances)

	require.Len(t, transfers, 2)

	// Largest debtor is matched first.
	assert.Equal(t, "p3", transfers[0].From)
	assert.Equal(t, "p1", transfers[0].To)
	assert.InDelta(t, 19.45, transfers[0].Amount, 1e-9)

	assert.Equal(t, "p2", transfers[1].From)
	assert.Equal(t, "p1", transfers[1].To)
	assert.InDelta(t, 2.05, transfers[1].Amount, 1e-9)
}

func TestSettlementTransfersEmptyWhenSettled(t *testing.T) {
	engine := New(DefaultConfig())

	assert.Empty(t, engine.SettlementTransfers(nil))

	// Everyone paid exactly their own share.
	balances := []Balance{
		{ParticipantID: "p1", Name: "Aisyah", TotalOwed: 10, TotalPaid: 10, Net: 0},
		{ParticipantID: "p2", Name: "Ben", TotalOwed: 10, TotalPaid: 10, Net: 0},
	}
	assert.Empty(t, engine.SettlementTransfers(balances))
}

func TestSettlementTransfersIgnoresSubTolerance(t *testing.T) {
	engine := New(DefaultConfig())
	balances := []Balance{
		{ParticipantID: "p1", Net: 0.005},
		{ParticipantID: "p2", Net: -0.005},
	}

	assert.Empty(t, engine.SettlementTransfers(balances))
}

func TestSettlementTransfersManyParties(t *testing.T) {
	engine := New(DefaultConfig())
	balances := []Balance{
		{ParticipantID: "p1", Name: "Aisyah", Net: -50},
		{ParticipantID: "p2", Name: "Ben", Net: 20},
		{ParticipantID: "p3", Name: "Chong", Net: 15},
		{ParticipantID: "p4", Name: "Devi", Net: 35},
		{ParticipantID: "p5", Name: "Emil", Net: -20},
	}

	transfers := engine.SettlementTransfers(balances)

	assert.LessOrEqual(t, len(transfers), len(balances)-1)

	// Each debtor pays out exactly their net, each creditor receives theirs.
	paid := map[string]float64{}
	received := map[string]float64{}
	for _, tr := range transfers {
		assert.Greater(t, tr.Amount, 0.0)
		paid[tr.From] += tr.Amount
		received[tr.To] += tr.Amount
	}
	for _, b := range balances {
		switch {
		case b.Net > 0:
			assert.InDeltaf(t, b.Net, paid[b.ParticipantID], settleTolerance, "debtor %s", b.ParticipantID)
		case b.Net < 0:
			assert.InDeltaf(t, -b.Net, received[b.ParticipantID], settleTolerance, "creditor %s", b.ParticipantID)
		}
	}
}

func TestSettlementTransfersAmountsRounded(t *testing.T) {
	engine := New(DefaultConfig())
	balances := []Balance{
		{ParticipantID: "p1", Net: 10.333333},
		{ParticipantID: "p2", Net: -10.333333},
	}

	transfers := engine.SettlementTransfers(balances)

	require.Len(t, transfers, 1)
	cents := transfers[0].Amount * 100
	assert.InDelta(t, math.Round(cents), cents, 1e-6)
}
