package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"strings"

	"github.com/chzyer/readline"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/poserv/internal/poserv/config"
	"github.com/poserv/internal/poserv/genesis"
	"github.com/poserv/internal/poserv/logger"
	"github.com/poserv/internal/poserv/wallets"
)

var defaultOrigin = "generic"

func main() {
	metricsAddrParam := flag.String("metrics", "", "listen address for prometheus metrics (empty = disabled)")
	originParam := flag.String("origin", "", "default dapp origin tag for service distributions")
	flag.Parse()

	cfg := config.GenerateConfig()
	cfg.SetMetricsAddr(*metricsAddrParam)
	cfg.SetOrigin(*originParam)
	defaultOrigin = cfg.Origin

	if _, err := logger.Init(logger.Config{
		Path:    cfg.Log.Path,
		Level:   cfg.Log.Level,
		Console: false,
	}); err != nil {
		fmt.Printf("logger init failed: %v\r\n", err)
	}
	defer logger.Sync()
	log := logger.Named("poservctl")

	// startup self-test over the protocol constants
	if !wallets.ValidateTotal() {
		log.Errorw("wallet table does not sum to fixed total",
			"total", wallets.TotalPerTransaction)
		fmt.Printf("✗ Wallet table self-test FAILED\r\n")
	}
	info := genesis.GetInfo()
	log.Infow("protocol ready",
		"version", cfg.GetVersion(),
		"wallets", wallets.Count(),
		"genesis", info.Hash)

	if cfg.Metrics.Enabled {
		go func() {
			mux := http.NewServeMux()
			mux.Handle("/metrics", promhttp.Handler())
			if err := http.ListenAndServe(cfg.Metrics.Addr, mux); err != nil {
				log.Errorw("metrics server stopped", "err", err)
			}
		}()
		log.Infow("metrics listening", "addr", cfg.Metrics.Addr)
	}

	fmt.Printf("=== Proof Of Service Protocol Console %s ===\r\n", cfg.GetVersion())
	fmt.Printf("Genesis: %s\r\n", info.Hash)
	fmt.Printf("Type 'help' for available commands.\r\n\r\n")

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "poserv> ",
		HistoryFile:     ".poservctl_history",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		AutoComplete:    completer(),
	})
	if err != nil {
		fmt.Printf("readline init failed: %v\r\n", err)
		return
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF or readline.ErrInterrupt
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		method, params := fields[0], fields[1:]

		switch method {
		case "exit", "quit":
			return
		case "help":
			fmt.Print(Usage())
			continue
		case "status":
			printResult(statusReport(cfg.GetVersion()))
			continue
		}

		if _, ok := commands[method]; !ok {
			fmt.Printf("Unknown command %q, type 'help'\r\n", method)
			continue
		}

		result, err := Execute(method, params)
		if err != nil {
			fmt.Printf("Error: %v\r\n", err)
			continue
		}
		printResult(result)
	}
}

func statusReport(version string) interface{} {
	type status struct {
		Version     string `json:"version"`
		Protocol    string `json:"protocol"`
		WalletCount int    `json:"wallet_count"`
		TotalValid  bool   `json:"total_valid"`
		GenesisHash string `json:"genesis_hash"`
	}
	return status{
		Version:     version,
		Protocol:    wallets.ProtocolName,
		WalletCount: wallets.Count(),
		TotalValid:  wallets.ValidateTotal(),
		GenesisHash: genesis.Hash(),
	}
}

func printResult(result interface{}) {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		fmt.Printf("%+v\r\n", result)
		return
	}
	fmt.Printf("%s\r\n", data)
}

func completer() readline.AutoCompleter {
	items := make([]readline.PrefixCompleterInterface, 0, len(commands)+1)
	for k := range commands {
		if k == "wallet" {
			sub := make([]readline.PrefixCompleterInterface, 0, wallets.Count())
			for _, name := range wallets.Names() {
				sub = append(sub, readline.PcItem(name))
			}
			items = append(items, readline.PcItem(k, sub...))
			continue
		}
		items = append(items, readline.PcItem(k))
	}
	return readline.NewPrefixCompleter(items...)
}
