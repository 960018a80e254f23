package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/poserv/internal/poserv/genesis"
)

func main() {
	verifyHash := flag.String("verify", "", "hash to verify against the genesis record")
	showBlock := flag.Bool("block", false, "print the full genesis block fields")
	flag.Parse()

	fmt.Printf("=== PSP Genesis Hash Calculator and Verifier ===\r\n")

	info := genesis.GetInfo()
	fmt.Printf("Block Number: %d\n", info.BlockNumber)
	fmt.Printf("Timestamp: %s\n", info.Timestamp)
	fmt.Printf("Message: %s\n", info.Message)
	fmt.Printf("Total PSP per transaction: %.3f\n", info.TotalPerTransaction)
	fmt.Println()

	fmt.Printf("Genesis Hash (hex): %s\n", info.Hash)
	fmt.Printf("Genesis Hash (length): %d\n", len(info.Hash))
	fmt.Println()

	if *showBlock {
		fmt.Println("=== Genesis Block ===")
		b := genesis.GenesisBlock()
		fmt.Printf("Version: %s\n", b.Version)
		fmt.Printf("Previous Hash: %s\n", b.PreviousHash)
		fmt.Printf("Protocol: %s\n", b.Protocol)
		fmt.Printf("Wallets: %s\n", strings.Join(b.Wallets, ", "))
		fmt.Printf("Principles:\n")
		for _, p := range b.Principles {
			fmt.Printf("  - %s\n", p)
		}
		fmt.Printf("Satoshi Legacy: %s\n", b.SatoshiLegacy)
		fmt.Printf("Immutable Rules: zeus %.2f%%, olympus %.2f%%, total %.3f\n",
			b.ImmutableRules.ZeusPercentage,
			b.ImmutableRules.OlympusPercentage,
			b.ImmutableRules.TotalFixed)
		fmt.Println()
	}

	if *verifyHash != "" {
		fmt.Println("=== Verification ===")
		result := genesis.Verify(*verifyHash)
		fmt.Printf("Provided Hash: %s\n", result.ProvidedHash)
		fmt.Printf("Computed Hash: %s\n", result.Hash)
		if result.Verified {
			fmt.Println("✓ Genesis hash is VALID")
		} else {
			fmt.Println("✗ Genesis hash MISMATCH")
			os.Exit(1)
		}
	}
}
