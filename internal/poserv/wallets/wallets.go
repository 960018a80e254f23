package wallets

import (
	"errors"
	"math"

	"github.com/poserv/internal/poserv/metrics"
)

// Protocol identity fields.
const (
	ProtocolName    = "Proof Of Service Protocol"
	Version         = "1.0.0"
	ProtocolVersion = "PSP-1.0"
)

// economy constants
const (
	// TotalPerTransaction is the classic 7.5 PSP split across the greek
	// wallets for every validated service. Nothing extra is ever created.
	TotalPerTransaction = 7.500

	// SumTolerance bounds the float drift allowed when re-checking the table.
	SumTolerance = 0.001
)

// DestinationType tags where an emission's funds route downstream.
type DestinationType string

const (
	DestFoundation  DestinationType = "foundation"
	DestPlatform    DestinationType = "platform"
	DestDevelopers  DestinationType = "developers"
	DestUser        DestinationType = "user"
	DestPropertyNFT DestinationType = "property_nft"
	DestDAO         DestinationType = "dao"
	DestLegal       DestinationType = "legal"
)

var ErrNotFound = errors.New("wallet not found")

// Wallet is one recipient of the per-service split. Entries are value
// types built once at package init; there is no setter path, so the two
// immutable records cannot be altered at runtime.
type Wallet struct {
	Key         string          `json:"wallet"`
	Name        string          `json:"name"`
	Role        string          `json:"role"`
	DisplayRole string          `json:"display_role"`
	Amount      float64         `json:"psp_amount"`
	Percentage  float64         `json:"percentage"`
	Description string          `json:"description"`
	Destination DestinationType `json:"destination_type"`
	Immutable   bool            `json:"immutable"`
	SpecialRule string          `json:"special_rule,omitempty"`
}

// greekWallets holds the fixed distribution table in canonical order.
// Percentages are stored alongside amounts, same as the protocol paper.
var greekWallets = [...]Wallet{
	{
		Key:         "athena",
		Name:        "Athena",
		Role:        "foundation",
		DisplayRole: "PSP Foundation",
		Amount:      2.000,
		Percentage:  26.67,
		Description: "Proof Of Service Protocol Foundation - Operational expenses",
		Destination: DestFoundation,
	},
	{
		Key:         "hermes",
		Name:        "Hermes",
		Role:        "platform",
		DisplayRole: "Platform Operations",
		Amount:      1.225,
		Percentage:  16.33,
		Description: "Platform operations and services",
		Destination: DestPlatform,
	},
	{
		Key:         "chronos",
		Name:        "Chronos",
		Role:        "development",
		DisplayRole: "Development Team",
		Amount:      1.125,
		Percentage:  15.00,
		Description: "Development team rewards",
		Destination: DestDevelopers,
	},
	{
		Key:         "prometheus",
		Name:        "Prometheus",
		Role:        "worker",
		DisplayRole: "Worker/Technician",
		Amount:      1.000,
		Percentage:  13.33,
		Description: "Worker rewards for completed services",
		Destination: DestUser,
	},
	{
		Key:         "apollo",
		Name:        "Apollo",
		Role:        "client",
		DisplayRole: "Client",
		Amount:      1.000,
		Percentage:  13.33,
		Description: "Client rewards for confirmed services",
		Destination: DestUser,
	},
	{
		Key:         "gaia",
		Name:        "Gaia",
		Role:        "property",
		DisplayRole: "Property NFT",
		Amount:      1.000,
		Percentage:  13.33,
		Description: "Property NFT rewards - Portable Protocol",
		Destination: DestPropertyNFT,
		SpecialRule: "PSP goes directly to PropertyNFT, not to user. Transfers with property ownership.",
	},
	{
		Key:         "zeus",
		Name:        "Zeus",
		Role:        "dao",
		DisplayRole: "DAO/Protocol",
		Amount:      0.075,
		Percentage:  1.00,
		Description: "Protocol DAO governance reserve - Immutable 1%",
		Destination: DestDAO,
		Immutable:   true,
	},
	{
		Key:         "olympus",
		Name:        "Olympus",
		Role:        "legal",
		DisplayRole: "Legal Operations",
		Amount:      0.075,
		Percentage:  1.00,
		Description: "Community legal operations - Immutable 1%",
		Destination: DestLegal,
		Immutable:   true,
	},
}

// Static key groupings used by downstream routing.
var (
	UserWallets      = []string{"prometheus", "apollo"}
	PropertyWallets  = []string{"gaia"}
	SystemWallets    = []string{"athena", "hermes", "chronos", "zeus", "olympus"}
	ImmutableWallets = []string{"zeus", "olympus"}
)

// Rules is the eternal rule block: fixed percentages audited from day 1.
type Rules struct {
	ZeusPercentage    float64 `json:"zeus_percentage"`
	OlympusPercentage float64 `json:"olympus_percentage"`
	TotalFixed        float64 `json:"total_psp_fixed"`
	AuditedFromDay1   bool    `json:"audited_from_day_1"`
	SatoshiPrinciple  string  `json:"satoshi_principle"`
}

// SatoshiPrinciple is enforced by the verification layer upstream, never here.
const SatoshiPrinciple = "Without verified physical work, there is no emission."

var EternalRules = Rules{
	ZeusPercentage:    1.00,
	OlympusPercentage: 1.00,
	TotalFixed:        TotalPerTransaction,
	AuditedFromDay1:   true,
	SatoshiPrinciple:  SatoshiPrinciple,
}

// Names returns the wallet keys in table order.
func Names() []string {
	names := make([]string, 0, len(greekWallets))
	for _, w := range greekWallets {
		names = append(names, w.Key)
	}
	return names
}

// All returns a copy of the full table in table order.
func All() []Wallet {
	out := make([]Wallet, len(greekWallets))
	copy(out, greekWallets[:])
	return out
}

// Count returns the number of configured wallets.
func Count() int {
	return len(greekWallets)
}

// Get returns the wallet for key or ErrNotFound. Callers always get a
// complete record or nothing, never partial data.
func Get(key string) (Wallet, error) {
	metrics.WalletLookups.Inc()
	for _, w := range greekWallets {
		if w.Key == key {
			return w, nil
		}
	}
	metrics.WalletLookupMisses.Inc()
	return Wallet{}, ErrNotFound
}

// GetByRole returns the first wallet with the given role or ErrNotFound.
func GetByRole(role string) (Wallet, error) {
	metrics.WalletLookups.Inc()
	for _, w := range greekWallets {
		if w.Role == role {
			return w, nil
		}
	}
	metrics.WalletLookupMisses.Inc()
	return Wallet{}, ErrNotFound
}

// ValidateTotal re-sums the table and reports whether it still matches
// the fixed 7.500 within tolerance. Side-effect free, callable at startup.
func ValidateTotal() bool {
	var total float64
	for _, w := range greekWallets {
		total += w.Amount
	}
	return math.Abs(total-TotalPerTransaction) < SumTolerance
}
