package genesis

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"

	"github.com/poserv/internal/poserv/metrics"
	"github.com/poserv/internal/poserv/wallets"
)

// Block is the fixed origin record of the protocol. Every field is a
// literal; the timestamp is a string constant, not wall-clock time, so the
// derived hash never drifts.
type Block struct {
	BlockNumber         int            `json:"block_number"`
	Version             string         `json:"version"`
	Timestamp           string         `json:"timestamp"`
	PreviousHash        string         `json:"previous_hash"`
	Protocol            string         `json:"protocol"`
	TotalPerTransaction float64        `json:"total_psp_per_transaction"`
	Message             string         `json:"message"`
	Principles          []string       `json:"principles"`
	SatoshiLegacy       string         `json:"satoshi_legacy"`
	Wallets             []string       `json:"wallets"`
	ImmutableRules      ImmutableRules `json:"immutable_rules"`
}

type ImmutableRules struct {
	ZeusPercentage    float64 `json:"zeus_percentage"`
	OlympusPercentage float64 `json:"olympus_percentage"`
	TotalFixed        float64 `json:"total_psp_fixed"`
}

var genesisBlock = Block{
	BlockNumber:         0,
	Version:             wallets.Version,
	Timestamp:           "2025-12-01T00:00:00Z",
	PreviousHash:        strings.Repeat("0", 64),
	Protocol:            wallets.ProtocolName,
	TotalPerTransaction: wallets.TotalPerTransaction,
	Message:             "SmartWork Always Leads To Greatness",
	Principles: []string{
		"Radical Trust",
		"Total Transparency",
		"Real Utility",
		"Shared Responsibility",
		"Progressive Inclusion",
		"Respect for Time and Effort",
	},
	SatoshiLegacy: wallets.SatoshiPrinciple,
	Wallets: []string{
		"athena",
		"hermes",
		"chronos",
		"prometheus",
		"apollo",
		"gaia",
		"zeus",
		"olympus",
	},
	ImmutableRules: ImmutableRules{
		ZeusPercentage:    1.00,
		OlympusPercentage: 1.00,
		TotalFixed:        wallets.TotalPerTransaction,
	},
}

var genesisHash = computeHash()

// GenesisBlock returns a copy of the origin record.
func GenesisBlock() Block {
	b := genesisBlock
	b.Principles = append([]string(nil), genesisBlock.Principles...)
	b.Wallets = append([]string(nil), genesisBlock.Wallets...)
	return b
}

// Hash returns the genesis digest computed at init.
func Hash() string {
	return genesisHash
}

// canonicalString builds the pre-hash string. Field order and the pipe
// delimiter are part of the protocol contract: reordering anything here
// silently changes every future digest, which is why this lives in one
// named function instead of inline formatting.
func canonicalString(b Block) string {
	var sb strings.Builder
	sb.WriteString("block:" + strconv.Itoa(b.BlockNumber))
	sb.WriteString("|version:" + b.Version)
	sb.WriteString("|timestamp:" + b.Timestamp)
	sb.WriteString("|protocol:" + b.Protocol)
	sb.WriteString("|psp:" + canonicalFloat(b.TotalPerTransaction))
	sb.WriteString("|message:" + b.Message)
	sb.WriteString("|satoshi:" + b.SatoshiLegacy)
	sb.WriteString("|wallets:" + strings.Join(b.Wallets, ","))
	sb.WriteString("|zeus:" + canonicalFloat(b.ImmutableRules.ZeusPercentage))
	sb.WriteString("|olympus:" + canonicalFloat(b.ImmutableRules.OlympusPercentage))
	return sb.String()
}

// canonicalFloat renders a float with the fewest digits that round-trip,
// always keeping one digit after the point: 7.500 -> "7.5", 1.00 -> "1.0".
// This rendering is baked into the published digest.
func canonicalFloat(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

func computeHash() string {
	digest := sha256.Sum256([]byte(canonicalString(genesisBlock)))
	return hex.EncodeToString(digest[:])
}

// VerifyResult reports a genesis integrity check.
type VerifyResult struct {
	Hash            string  `json:"genesis_hash"`
	BlockNumber     int     `json:"block_number"`
	Timestamp       string  `json:"timestamp"`
	ProtocolVersion string  `json:"protocol_version"`
	Total           float64 `json:"total_psp"`
	WalletCount     int     `json:"wallet_count"`
	ProvidedHash    string  `json:"provided_hash,omitempty"`
	Matches         *bool   `json:"matches,omitempty"`
	Verified        bool    `json:"verified"`
}

// Verify recomputes the genesis digest. With an empty provided hash the
// result is unconditionally verified (nothing external was asserted);
// otherwise Matches carries the comparison and drives Verified. A mismatch
// is advisory, never an error.
func Verify(provided string) VerifyResult {
	metrics.GenesisVerifications.Inc()

	computed := computeHash()
	result := VerifyResult{
		Hash:            computed,
		BlockNumber:     genesisBlock.BlockNumber,
		Timestamp:       genesisBlock.Timestamp,
		ProtocolVersion: genesisBlock.Version,
		Total:           genesisBlock.TotalPerTransaction,
		WalletCount:     len(genesisBlock.Wallets),
		Verified:        true,
	}

	if provided != "" {
		matches := computed == provided
		result.ProvidedHash = provided
		result.Matches = &matches
		result.Verified = matches
		if !matches {
			metrics.GenesisMismatches.Inc()
		}
	}

	return result
}

// Info is the public view of the genesis record.
type Info struct {
	Hash                string   `json:"hash"`
	BlockNumber         int      `json:"block_number"`
	Timestamp           string   `json:"timestamp"`
	Message             string   `json:"message"`
	Principles          []string `json:"principles"`
	SatoshiLegacy       string   `json:"satoshi_legacy"`
	TotalPerTransaction float64  `json:"total_psp_per_transaction"`
}

// GetInfo returns the public genesis information.
func GetInfo() Info {
	return Info{
		Hash:                genesisHash,
		BlockNumber:         genesisBlock.BlockNumber,
		Timestamp:           genesisBlock.Timestamp,
		Message:             genesisBlock.Message,
		Principles:          append([]string(nil), genesisBlock.Principles...),
		SatoshiLegacy:       genesisBlock.SatoshiLegacy,
		TotalPerTransaction: genesisBlock.TotalPerTransaction,
	}
}
