package wallets

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var tableOrder = []string{
	"athena", "hermes", "chronos", "prometheus", "apollo", "gaia", "zeus", "olympus",
}

func TestValidateTotal(t *testing.T) {
	assert.True(t, ValidateTotal())
}

func TestAmountsSumToFixedTotal(t *testing.T) {
	var total float64
	for _, w := range All() {
		assert.Greater(t, w.Amount, 0.0, "wallet %s", w.Key)
		total += w.Amount
	}
	assert.InDelta(t, TotalPerTransaction, total, SumTolerance)
}

func TestPercentagesMatchAmounts(t *testing.T) {
	for _, w := range All() {
		derived := w.Amount / TotalPerTransaction * 100
		assert.InDelta(t, derived, w.Percentage, 0.01,
			"wallet %s stores %.2f%%, amount derives %.4f%%", w.Key, w.Percentage, derived)
	}
}

func TestNamesOrder(t *testing.T) {
	assert.Equal(t, tableOrder, Names())
	assert.Equal(t, len(tableOrder), Count())
}

func TestGet(t *testing.T) {
	w, err := Get("athena")
	require.NoError(t, err)
	assert.Equal(t, "Athena", w.Name)
	assert.Equal(t, 2.000, w.Amount)
	assert.Equal(t, DestFoundation, w.Destination)
	assert.False(t, w.Immutable)

	g, err := Get("gaia")
	require.NoError(t, err)
	assert.Equal(t, DestPropertyNFT, g.Destination)
	assert.NotEmpty(t, g.SpecialRule)
}

func TestGetUnknownKey(t *testing.T) {
	w, err := Get("hades")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, Wallet{}, w, "not-found must never return partial data")
}

func TestGetByRole(t *testing.T) {
	w, err := GetByRole("worker")
	require.NoError(t, err)
	assert.Equal(t, "prometheus", w.Key)

	d, err := GetByRole("dao")
	require.NoError(t, err)
	assert.Equal(t, "zeus", d.Key)
}

func TestGetByUnknownRole(t *testing.T) {
	w, err := GetByRole("oracle")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, Wallet{}, w)
}

func TestGroupsPartitionTheTable(t *testing.T) {
	seen := map[string]int{}
	for _, k := range UserWallets {
		seen[k]++
	}
	for _, k := range PropertyWallets {
		seen[k]++
	}
	for _, k := range SystemWallets {
		seen[k]++
	}
	for _, k := range Names() {
		assert.Equal(t, 1, seen[k], "wallet %s must appear in exactly one group", k)
	}
	assert.Len(t, seen, Count())
}

func TestImmutableFlags(t *testing.T) {
	assert.Equal(t, []string{"zeus", "olympus"}, ImmutableWallets)
	for _, w := range All() {
		immutable := w.Key == "zeus" || w.Key == "olympus"
		assert.Equal(t, immutable, w.Immutable, "wallet %s", w.Key)
	}
}

func TestEternalRules(t *testing.T) {
	assert.Equal(t, 1.00, EternalRules.ZeusPercentage)
	assert.Equal(t, 1.00, EternalRules.OlympusPercentage)
	assert.Equal(t, TotalPerTransaction, EternalRules.TotalFixed)
	assert.True(t, EternalRules.AuditedFromDay1)
	assert.Equal(t, SatoshiPrinciple, EternalRules.SatoshiPrinciple)
}

func TestAllReturnsCopy(t *testing.T) {
	a := All()
	a[0].Amount = math.Pi
	b, err := Get("athena")
	require.NoError(t, err)
	assert.Equal(t, 2.000, b.Amount, "mutating a returned slice must not touch the table")
}
