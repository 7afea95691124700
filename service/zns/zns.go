package zns

import (
	"strings"

	"github.com/x-xyz/resolution/base/address"
	"github.com/x-xyz/resolution/base/ctx"
	"github.com/x-xyz/resolution/base/log"
	"github.com/x-xyz/resolution/domain"
	"github.com/x-xyz/resolution/service/provider"
)

const (
	Mainnet  = "mainnet"
	Testnet  = "testnet"
	Localnet = "localnet"
)

var (
	networks = map[string]int64{
		Mainnet:  1,
		Testnet:  333,
		Localnet: 111,
	}
	urls = map[int64]string{
		1:   "https://api.zilliqa.com",
		333: "https://dev-api.zilliqa.com",
		111: "http://localhost:4201",
	}
	registries = map[int64]string{
		1: "zil1jcgu2wlx6xejqk9jw3aaankw6lsjzeunx2j0jz",
	}
)

type Config struct {
	Network string
	// Url defaults to the public api of the network.
	Url string
	// RegistryAddress accepts bech32 or hex, defaults to the network registry.
	RegistryAddress string
	// Provider defaults to a JSON-RPC provider dialed on Url.
	Provider provider.Provider
}

func DefaultConfig() Config {
	return Config{Network: Mainnet}
}

func New(c ctx.Ctx, cfg Config) (domain.NamingService, error) {
	if cfg.Network == "" {
		return nil, &domain.ConfigurationError{Code: domain.UnspecifiedNetwork, Service: domain.ServiceZNS}
	}
	network, ok := networks[cfg.Network]
	if !ok {
		return nil, &domain.ConfigurationError{Code: domain.UnsupportedNetwork, Service: domain.ServiceZNS, Field: cfg.Network}
	}

	url := cfg.Url
	if url == "" {
		url = urls[network]
	}
	if url == "" && cfg.Provider == nil {
		return nil, &domain.ConfigurationError{Code: domain.UnspecifiedUrl, Service: domain.ServiceZNS}
	}

	registry, registryHex, err := normalizeRegistry(cfg.RegistryAddress, network)
	if err != nil {
		return nil, err
	}

	p := cfg.Provider
	if p == nil {
		if p, err = provider.Dial(c, url); err != nil {
			return nil, err
		}
	}

	c.WithFields(log.Fields{
		"network":  cfg.Network,
		"url":      url,
		"registry": registry,
	}).Debug("zns configured")

	return &impl{
		network:     network,
		url:         url,
		registry:    registry,
		registryHex: registryHex,
		provider:    p,
	}, nil
}

// normalizeRegistry returns the registry in bech32 form and the bare
// checksummed hex form used as the contract parameter of state reads.
func normalizeRegistry(registry string, network int64) (string, string, error) {
	if registry == "" {
		registry = registries[network]
	}
	invalid := &domain.ConfigurationError{Code: domain.InvalidRegistryAddress, Service: domain.ServiceZNS, Field: registry}
	if registry == "" {
		return "", "", invalid
	}

	if strings.HasPrefix(registry, "0x") {
		bech, err := address.ToBech32(registry)
		if err != nil {
			return "", "", invalid
		}
		registry = bech
	}
	if !address.IsBech32(registry) {
		return "", "", invalid
	}
	hex, err := address.FromBech32(registry)
	if err != nil {
		return "", "", invalid
	}
	return registry, strings.TrimPrefix(hex, "0x"), nil
}

// DefaultUrl is the public node of network, empty when there is none.
func DefaultUrl(network string) string {
	return urls[networks[network]]
}
