package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	namespace = "poserv"
)

var (
	// Distribution metrics
	DistributionsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "distributions_total",
		Help:      "Total number of generic distributions computed",
	})

	ServiceDistributions = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "service_distributions_total",
		Help:      "Total number of per-service distributions computed",
	})

	DistributionsUnbalanced = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "distributions_unbalanced_total",
		Help:      "Distributions whose emission sum missed the fixed total",
	})

	// Wallet table metrics
	WalletLookups = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "wallet_lookups_total",
		Help:      "Total number of wallet table lookups",
	})

	WalletLookupMisses = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "wallet_lookup_misses_total",
		Help:      "Wallet lookups that hit no configured key or role",
	})

	// Genesis metrics
	GenesisVerifications = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "genesis_verifications_total",
		Help:      "Total number of genesis hash verifications",
	})

	GenesisMismatches = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "genesis_mismatches_total",
		Help:      "Genesis verifications where the provided hash did not match",
	})
)
