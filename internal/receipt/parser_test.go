package receipt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMamakReceipt(t *testing.T) {
	text := `
Restoran Pelita
Jalan Ampang, KL

Nasi Kandar        12.50
2x Teh Tarik       5.00
Roti Canai RM 1.50

Subtotal           19.00
Service Charge     1.90
SST 6%             1.25
Rounding           -0.02
Total              22.15

Cash               50.00
Change             27.85
`

	got := Parse(text)

	require.Len(t, got.Items, 3)
	assert.Equal(t, ParsedItem{Name: "Nasi Kandar", Amount: 12.50, Quantity: 1}, got.Items[0])
	assert.Equal(t, ParsedItem{Name: "Teh Tarik", Amount: 5.00, Quantity: 2}, got.Items[1])
	assert.Equal(t, ParsedItem{Name: "Roti Canai", Amount: 1.50, Quantity: 1}, got.Items[2])

	assert.InDelta(t, 19.00, got.Subtotal, 1e-9)
	assert.InDelta(t, 1.90, got.ServiceCharge, 1e-9)
	assert.InDelta(t, 1.25, got.SST, 1e-9)
	assert.InDelta(t, -0.02, got.Rounding, 1e-9)
	assert.InDelta(t, 22.15, got.Total, 1e-9)
}

func TestParseQuantitySuffix(t *testing.T) {
	got := Parse("Milo Ais x2  6.00")

	require.Len(t, got.Items, 1)
	assert.Equal(t, "Milo Ais", got.Items[0].Name)
	assert.Equal(t, 2, got.Items[0].Quantity)
	assert.InDelta(t, 6.00, got.Items[0].Amount, 1e-9)
}

func TestParseThousandsSeparator(t *testing.T) {
	got := Parse("Catering Package  1,250.00")

	require.Len(t, got.Items, 1)
	assert.InDelta(t, 1250.00, got.Items[0].Amount, 1e-9)
}

func TestParseSkipsUnparseableLines(t *testing.T) {
	got := Parse("Thank you, come again!\n\n***\nTable 4\n")

	assert.Empty(t, got.Items)
	assert.Zero(t, got.Total)
}

func TestParseGrandTotalVariants(t *testing.T) {
	for _, line := range []string{"Grand Total 42.00", "TOTAL 42.00", "Amount Due 42.00"} {
		got := Parse(line)
		assert.InDeltaf(t, 42.00, got.Total, 1e-9, "line %q", line)
		assert.Empty(t, got.Items)
	}
}

func TestParseIgnoresPaymentLines(t *testing.T) {
	got := Parse("Cash 100.00\nChange 58.00\nVisa ****1234 42.00")

	assert.Empty(t, got.Items)
	assert.Zero(t, got.Total)
}

func TestParseZeroAndNegativeAmountsNotItems(t *testing.T) {
	got := Parse("Free Bubble Tea 0.00\nDiscount -5.00")

	assert.Empty(t, got.Items)
}

func TestParseEmptyText(t *testing.T) {
	got := Parse("")

	assert.NotNil(t, got.Items)
	assert.Empty(t, got.Items)
}

func TestParseKeywordNeedsWordBoundary(t *testing.T) {
	got := Parse("Taxi 10.00\nTax 1.20")

	require.Len(t, got.Items, 1)
	assert.Equal(t, "Taxi", got.Items[0].Name)
	assert.InDelta(t, 10.00, got.Items[0].Amount, 1e-9)

	assert.InDelta(t, 1.20, got.SST, 1e-9)
}
