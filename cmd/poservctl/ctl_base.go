package main

import (
	"fmt"
	"sort"
	"strings"
)

var commands = map[string]int{
	"status":     1000,
	"wallets":    100,
	"wallet":     101,
	"role":       102,
	"groups":     103,
	"validate":   110,
	"distribute": 200,
	"service":    201,
	"summary":    202,
	"gaia":       203,
	"rules":      204,
	"genesis":    300,
	"verify":     301,
	"help":       1010,
	"exit":       1100,
}

var descriptions = map[string]string{
	"status":     "Print protocol status and self-test results",
	"wallets":    "List all wallet keys in table order",
	"wallet":     "Show wallet config: wallet <key>",
	"role":       "Find wallet by role: role <role>",
	"groups":     "Show user/property/system/immutable wallet groups",
	"validate":   "Re-check that wallet amounts sum to 7.500",
	"distribute": "Run the classic 7.5 distribution (no destination ids)",
	"service":    "Distribute for a service: service <worker> <client> [property] [certificate] [value_usd] [origin]",
	"summary":    "Show the full distribution configuration",
	"gaia":       "Show the Gaia portable property rule",
	"rules":      "Show the eternal rules",
	"genesis":    "Show public genesis information",
	"verify":     "Verify genesis hash: verify [hash]",
	"help":       "Show available commands",
	"exit":       "Exit the program",
}

func Usage() string {
	keys := make([]string, 0, len(commands))
	for k := range commands {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		desc := descriptions[k]
		if desc == "" {
			desc = "No description available"
		}
		lines = append(lines, fmt.Sprintf("\t%s: %s\r\n", k, desc))
	}
	return strings.Join(lines, "")
}
