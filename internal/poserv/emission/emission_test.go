package emission

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poserv/internal/poserv/wallets"
)

func int64p(v int64) *int64 { return &v }

func TestDistributeFollowsTable(t *testing.T) {
	r := Distribute()

	table := wallets.All()
	require.Len(t, r.Emissions, len(table))
	for i, e := range r.Emissions {
		w := table[i]
		assert.Equal(t, w.Key, e.Wallet)
		assert.Equal(t, w.Name, e.Name)
		assert.Equal(t, w.Role, e.Role)
		assert.Equal(t, w.Amount, e.Amount)
		assert.Equal(t, w.Percentage, e.Percentage)
		assert.Equal(t, w.Destination, e.Destination)
		assert.Nil(t, e.DestinationID, "generic mode carries no destination ids")
	}
	assert.InDelta(t, wallets.TotalPerTransaction, r.Total, wallets.SumTolerance)
	assert.True(t, r.Verified)
	assert.False(t, r.Timestamp.IsZero())
	assert.Nil(t, r.Rules)
}

func TestDistributeForService(t *testing.T) {
	r := DistributeForService(ServiceParams{
		WorkerID:        42,
		ClientID:        7,
		PropertyID:      int64p(9),
		CertificateID:   int64p(100),
		ServiceValueUSD: 250.0,
		Origin:          "handyplan",
	})

	expected := map[string]struct {
		amount float64
		dest   *int64
	}{
		"athena":     {2.000, nil},
		"hermes":     {1.225, nil},
		"chronos":    {1.125, nil},
		"prometheus": {1.000, int64p(42)},
		"apollo":     {1.000, int64p(7)},
		"gaia":       {1.000, int64p(9)},
		"zeus":       {0.075, nil},
		"olympus":    {0.075, nil},
	}

	require.Len(t, r.Emissions, len(expected))
	for _, e := range r.Emissions {
		want, ok := expected[e.Wallet]
		require.True(t, ok, "unexpected wallet %s", e.Wallet)
		assert.Equal(t, want.amount, e.Amount, "wallet %s", e.Wallet)
		if want.dest == nil {
			assert.Nil(t, e.DestinationID, "wallet %s routes to a fixed destination", e.Wallet)
		} else {
			require.NotNil(t, e.DestinationID, "wallet %s", e.Wallet)
			assert.Equal(t, *want.dest, *e.DestinationID, "wallet %s", e.Wallet)
		}
	}

	assert.InDelta(t, 7.500, r.Total, wallets.SumTolerance)
	assert.True(t, r.Verified)
	require.NotNil(t, r.CertificateID)
	assert.Equal(t, int64(100), *r.CertificateID)
	assert.Equal(t, 250.0, r.ServiceValueUSD)
	assert.Equal(t, "handyplan", r.Origin)

	require.NotNil(t, r.Rules)
	assert.True(t, r.Rules.Zeus1Percent)
	assert.True(t, r.Rules.Olympus1Percent)
	assert.True(t, r.Rules.SatoshiPrinciple)
}

// The per-service path uses literal amounts; it must never disagree with
// the wallet table the generic path reads.
func TestServiceAgreesWithGeneric(t *testing.T) {
	generic := Distribute()
	service := DistributeForService(ServiceParams{WorkerID: 1, ClientID: 2})

	byWallet := func(r Result) map[string]Emission {
		m := make(map[string]Emission, len(r.Emissions))
		for _, e := range r.Emissions {
			m[e.Wallet] = e
		}
		return m
	}

	g, s := byWallet(generic), byWallet(service)
	require.Len(t, s, len(g))
	for key, ge := range g {
		se, ok := s[key]
		require.True(t, ok, "wallet %s missing from service distribution", key)
		assert.Equal(t, ge.Amount, se.Amount, "wallet %s", key)
		assert.Equal(t, ge.Destination, se.Destination, "wallet %s", key)
	}
}

func TestServiceWithoutProperty(t *testing.T) {
	r := DistributeForService(ServiceParams{WorkerID: 5, ClientID: 6})

	var gaia, prometheus *Emission
	for i := range r.Emissions {
		switch r.Emissions[i].Wallet {
		case "gaia":
			gaia = &r.Emissions[i]
		case "prometheus":
			prometheus = &r.Emissions[i]
		}
	}
	require.NotNil(t, gaia)
	require.NotNil(t, prometheus)
	assert.Nil(t, gaia.DestinationID, "no property context must stay explicitly absent")
	require.NotNil(t, prometheus.DestinationID)
	assert.Equal(t, int64(5), *prometheus.DestinationID)
	assert.True(t, r.Verified)
	assert.Nil(t, r.CertificateID)
}

func TestBalancedTolerance(t *testing.T) {
	assert.True(t, balanced(7.500))
	assert.True(t, balanced(7.5004))
	assert.False(t, balanced(7.502))
	assert.False(t, balanced(7.0))
}

func TestGetSummary(t *testing.T) {
	s := GetSummary()

	assert.Equal(t, "PSP - Proof Of Service Protocol", s.Protocol)
	assert.Equal(t, wallets.Version, s.Version)
	assert.Equal(t, 7.500, s.TotalPerTransaction)
	assert.Equal(t, 8, s.WalletCount)
	assert.Equal(t, wallets.Names(), s.Wallets)
	assert.Equal(t, wallets.EternalRules, s.EternalRules)

	require.Contains(t, s.Distribution, "athena")
	assert.Equal(t, 2.000, s.Distribution["athena"].Amount)
	assert.Equal(t, "PSP Foundation", s.Distribution["athena"].Role)

	assert.Equal(t, []string{"prometheus", "apollo"}, s.UserDestinations)
	assert.Equal(t, "gaia", s.PropertyDestination)
	assert.Equal(t, []string{"athena", "hermes", "chronos", "zeus", "olympus"}, s.SystemDestinations)
}

func TestGaiaProtocol(t *testing.T) {
	g := GaiaProtocol()
	assert.Equal(t, "gaia", g.Wallet)
	assert.Equal(t, 1.000, g.Amount)
	assert.Equal(t, wallets.DestPropertyNFT, g.Destination)
	assert.True(t, g.Portable)
	assert.Equal(t, "PSP remains with the property", g.OnTransfer)
}
