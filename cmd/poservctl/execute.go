package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/poserv/internal/poserv/emission"
	"github.com/poserv/internal/poserv/genesis"
	"github.com/poserv/internal/poserv/wallets"
)

// Execute maps a console method name onto the protocol library. Every call
// is a pure in-memory computation; results are plain data for the printer.
func Execute(method string, params []string) (interface{}, error) {
	switch method {
	case "wallets", "wallet.getNames":
		return wallets.Names(), nil
	case "wallet", "wallet.get":
		if len(params) < 1 {
			return nil, errors.New("usage: wallet <key>")
		}
		w, err := wallets.Get(params[0])
		if err != nil {
			return nil, fmt.Errorf("%q: %w", params[0], err)
		}
		return w, nil
	case "role", "wallet.getByRole":
		if len(params) < 1 {
			return nil, errors.New("usage: role <role>")
		}
		w, err := wallets.GetByRole(params[0])
		if err != nil {
			return nil, fmt.Errorf("role %q: %w", params[0], err)
		}
		return w, nil
	case "groups", "wallet.getGroups":
		type groups struct {
			User      []string `json:"user_wallets"`
			Property  []string `json:"property_wallets"`
			System    []string `json:"system_wallets"`
			Immutable []string `json:"immutable_wallets"`
		}
		return groups{
			User:      wallets.UserWallets,
			Property:  wallets.PropertyWallets,
			System:    wallets.SystemWallets,
			Immutable: wallets.ImmutableWallets,
		}, nil
	case "validate", "wallet.validateTotal":
		return wallets.ValidateTotal(), nil
	case "rules", "wallet.getEternalRules":
		return wallets.EternalRules, nil
	case "distribute", "emission.distribute":
		return emission.Distribute(), nil
	case "service", "emission.distributeForService":
		return executeService(params)
	case "summary", "emission.getSummary":
		return emission.GetSummary(), nil
	case "gaia", "emission.getGaiaProtocol":
		return emission.GaiaProtocol(), nil
	case "genesis", "genesis.getInfo":
		return genesis.GetInfo(), nil
	case "verify", "genesis.verify":
		provided := ""
		if len(params) > 0 {
			provided = params[0]
		}
		return genesis.Verify(provided), nil
	default:
		return nil, fmt.Errorf("unknown method %q", method)
	}
}

func executeService(params []string) (interface{}, error) {
	if len(params) < 2 {
		return nil, errors.New("usage: service <worker> <client> [property] [certificate] [value_usd] [origin]")
	}
	worker, err := strconv.ParseInt(params[0], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("worker id: %w", err)
	}
	client, err := strconv.ParseInt(params[1], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("client id: %w", err)
	}

	p := emission.ServiceParams{
		WorkerID: worker,
		ClientID: client,
		Origin:   defaultOrigin,
	}
	if len(params) > 2 && params[2] != "-" {
		property, err := strconv.ParseInt(params[2], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("property id: %w", err)
		}
		p.PropertyID = &property
	}
	if len(params) > 3 && params[3] != "-" {
		certificate, err := strconv.ParseInt(params[3], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("certificate id: %w", err)
		}
		p.CertificateID = &certificate
	}
	if len(params) > 4 {
		value, err := strconv.ParseFloat(params[4], 64)
		if err != nil {
			return nil, fmt.Errorf("service value: %w", err)
		}
		p.ServiceValueUSD = value
	}
	if len(params) > 5 {
		p.Origin = params[5]
	}
	return emission.DistributeForService(p), nil
}
