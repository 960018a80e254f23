package emission

import (
	"math"
	"time"

	"github.com/poserv/internal/poserv/metrics"
	"github.com/poserv/internal/poserv/wallets"
)

// Emission is one wallet's share of the 7.5 split. DestinationID is only
// set for caller-addressed wallets; nil means the funds route to the fixed
// system destination for that wallet.
type Emission struct {
	Wallet        string                  `json:"wallet"`
	Name          string                  `json:"name,omitempty"`
	Role          string                  `json:"role"`
	Amount        float64                 `json:"amount_psp"`
	Percentage    float64                 `json:"percentage,omitempty"`
	Destination   wallets.DestinationType `json:"destination_type"`
	DestinationID *int64                  `json:"destination_id,omitempty"`
}

// RuleFlags echoes back which eternal rules were applied to a result.
type RuleFlags struct {
	Zeus1Percent     bool `json:"zeus_1_percent"`
	Olympus1Percent  bool `json:"olympus_1_percent"`
	SatoshiPrinciple bool `json:"satoshi_principle"`
}

// Result is the outcome of one distribution call. It is plain data for an
// external ledger to act on; nothing here is persisted or transmitted.
type Result struct {
	CertificateID   *int64     `json:"certificate_id,omitempty"`
	Timestamp       time.Time  `json:"timestamp"`
	Total           float64    `json:"total_psp"`
	ServiceValueUSD float64    `json:"service_value_usd,omitempty"`
	Origin          string     `json:"dapp_origin,omitempty"`
	Emissions       []Emission `json:"emissions"`
	Verified        bool       `json:"verified"`
	Rules           *RuleFlags `json:"eternal_rules_applied,omitempty"`
}

// ServiceParams addresses one validated service certificate.
type ServiceParams struct {
	WorkerID        int64
	ClientID        int64
	PropertyID      *int64
	CertificateID   *int64
	ServiceValueUSD float64
	Origin          string
}

// Distribute executes the classic 7.5 PSP distribution straight from the
// wallet table, in table order, with no destination ids attached.
func Distribute() Result {
	metrics.DistributionsTotal.Inc()

	var emissions []Emission
	for _, w := range wallets.All() {
		emissions = append(emissions, Emission{
			Wallet:      w.Key,
			Name:        w.Name,
			Role:        w.Role,
			Amount:      w.Amount,
			Percentage:  w.Percentage,
			Destination: w.Destination,
		})
	}

	total := sum(emissions)
	verified := balanced(total)
	if !verified {
		metrics.DistributionsUnbalanced.Inc()
	}
	return Result{
		Timestamp: time.Now().UTC(),
		Total:     total,
		Emissions: emissions,
		Verified:  verified,
	}
}

// DistributeForService splits 7.500 PSP for one validated service.
// Amounts here are deliberately literal, not re-read from the table; the
// two paths are cross-checked by tests so a table edit cannot drift
// silently past either one.
//
// Verification of the underlying work happened before this call. Without
// verified physical work, there is no emission.
func DistributeForService(p ServiceParams) Result {
	metrics.ServiceDistributions.Inc()

	worker := p.WorkerID
	client := p.ClientID
	emissions := []Emission{
		{Wallet: "athena", Amount: 2.000, Destination: wallets.DestFoundation, Role: "PSP Foundation"},
		{Wallet: "hermes", Amount: 1.225, Destination: wallets.DestPlatform, Role: "Platform"},
		{Wallet: "chronos", Amount: 1.125, Destination: wallets.DestDevelopers, Role: "Developers"},
		{Wallet: "prometheus", Amount: 1.000, Destination: wallets.DestUser, DestinationID: &worker, Role: "Worker"},
		{Wallet: "apollo", Amount: 1.000, Destination: wallets.DestUser, DestinationID: &client, Role: "Client"},
		{Wallet: "gaia", Amount: 1.000, Destination: wallets.DestPropertyNFT, DestinationID: p.PropertyID, Role: "Property NFT"},
		{Wallet: "zeus", Amount: 0.075, Destination: wallets.DestDAO, Role: "DAO/Protocol"},
		{Wallet: "olympus", Amount: 0.075, Destination: wallets.DestLegal, Role: "Legal"},
	}

	total := sum(emissions)
	verified := balanced(total)
	if !verified {
		metrics.DistributionsUnbalanced.Inc()
	}

	return Result{
		CertificateID:   p.CertificateID,
		Timestamp:       time.Now().UTC(),
		Total:           total,
		ServiceValueUSD: p.ServiceValueUSD,
		Origin:          p.Origin,
		Emissions:       emissions,
		Verified:        verified,
		Rules: &RuleFlags{
			Zeus1Percent:     true,
			Olympus1Percent:  true,
			SatoshiPrinciple: true,
		},
	}
}

// WalletShare is one row of the distribution summary.
type WalletShare struct {
	Amount     float64 `json:"psp"`
	Percentage float64 `json:"percentage"`
	Role       string  `json:"role"`
}

// Summary describes the full distribution configuration.
type Summary struct {
	Protocol            string                 `json:"protocol"`
	Version             string                 `json:"version"`
	TotalPerTransaction float64                `json:"total_psp_per_transaction"`
	WalletCount         int                    `json:"wallet_count"`
	Wallets             []string               `json:"wallets"`
	EternalRules        wallets.Rules          `json:"eternal_rules"`
	Distribution        map[string]WalletShare `json:"distribution"`
	UserDestinations    []string               `json:"user_destinations"`
	PropertyDestination string                 `json:"property_destination"`
	SystemDestinations  []string               `json:"system_destinations"`
}

// GetSummary reports the distribution configuration as one document.
func GetSummary() Summary {
	shares := make(map[string]WalletShare, wallets.Count())
	for _, w := range wallets.All() {
		shares[w.Key] = WalletShare{
			Amount:     w.Amount,
			Percentage: w.Percentage,
			Role:       w.DisplayRole,
		}
	}
	return Summary{
		Protocol:            "PSP - " + wallets.ProtocolName,
		Version:             wallets.Version,
		TotalPerTransaction: wallets.TotalPerTransaction,
		WalletCount:         wallets.Count(),
		Wallets:             wallets.Names(),
		EternalRules:        wallets.EternalRules,
		Distribution:        shares,
		UserDestinations:    wallets.UserWallets,
		PropertyDestination: "gaia",
		SystemDestinations:  wallets.SystemWallets,
	}
}

// GaiaRule documents the portable property routing for the gaia share.
type GaiaRule struct {
	Wallet      string                  `json:"wallet"`
	Amount      float64                 `json:"psp_amount"`
	Destination wallets.DestinationType `json:"destination_type"`
	Description string                  `json:"description"`
	OnTransfer  string                  `json:"on_transfer"`
	Portable    bool                    `json:"portable"`
}

// GaiaProtocol returns the gaia routing rule: the share accumulates on the
// property itself, so an ownership change moves the history and the PSP
// together. Ledgers downstream key this share by property id, never by user.
func GaiaProtocol() GaiaRule {
	return GaiaRule{
		Wallet:      "gaia",
		Amount:      1.000,
		Destination: wallets.DestPropertyNFT,
		Description: "PSP accumulated in the property, not in the user",
		OnTransfer:  "PSP remains with the property",
		Portable:    true,
	}
}

func sum(emissions []Emission) float64 {
	var total float64
	for _, e := range emissions {
		total += e.Amount
	}
	return total
}

func balanced(total float64) bool {
	return math.Abs(total-wallets.TotalPerTransaction) < wallets.SumTolerance
}
