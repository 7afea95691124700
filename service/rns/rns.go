package rns

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/x-xyz/resolution/base/ctx"
	"github.com/x-xyz/resolution/base/log"
	"github.com/x-xyz/resolution/domain"
	"github.com/x-xyz/resolution/service/provider"
)

const (
	Mainnet = "mainnet"
	Testnet = "testnet"
)

var (
	networks = map[string]int64{
		Mainnet: 30,
		Testnet: 31,
	}
	urls = map[int64]string{
		30: "https://public-node.rsk.co",
		31: "https://public-node.testnet.rsk.co",
	}
	registries = map[int64]string{
		30: "0xcb868aeabd31e2b66f74e9a55cf064abb31a4ad5",
		31: "0x7d284aaac6e925aad802a53c0c69efe3764597b8",
	}
)

type Config struct {
	Network         string
	Url             string
	RegistryAddress string
	Provider        provider.Provider
}

func DefaultConfig() Config {
	return Config{Network: Mainnet}
}

func New(c ctx.Ctx, cfg Config) (domain.NamingService, error) {
	if cfg.Network == "" {
		return nil, &domain.ConfigurationError{Code: domain.UnspecifiedNetwork, Service: domain.ServiceRNS}
	}
	network, ok := networks[cfg.Network]
	if !ok {
		return nil, &domain.ConfigurationError{Code: domain.UnsupportedNetwork, Service: domain.ServiceRNS, Field: cfg.Network}
	}

	url := cfg.Url
	if url == "" {
		url = urls[network]
	}

	registry := cfg.RegistryAddress
	if registry == "" {
		registry = registries[network]
	}
	if !common.IsHexAddress(registry) {
		return nil, &domain.ConfigurationError{Code: domain.InvalidRegistryAddress, Service: domain.ServiceRNS, Field: registry}
	}

	p := cfg.Provider
	if p == nil {
		var err error
		if p, err = provider.Dial(c, url); err != nil {
			return nil, err
		}
	}

	c.WithFields(log.Fields{
		"network":  cfg.Network,
		"url":      url,
		"registry": registry,
	}).Debug("rns configured")

	return &impl{
		network:  network,
		url:      url,
		registry: common.HexToAddress(registry),
		provider: p,
	}, nil
}

// NewAutoNetwork picks the network reported by the node behind cfg.
func NewAutoNetwork(c ctx.Ctx, cfg Config) (domain.NamingService, error) {
	p := cfg.Provider
	if p == nil {
		url := cfg.Url
		if url == "" {
			url = urls[networks[Mainnet]]
		}
		var err error
		if p, err = provider.Dial(c, url); err != nil {
			return nil, err
		}
	}
	id, err := provider.NetVersion(c, p)
	if err != nil {
		return nil, err
	}
	for name, n := range networks {
		if n == id {
			cfg.Network = name
			cfg.Provider = p
			return New(c, cfg)
		}
	}
	return nil, &domain.ConfigurationError{Code: domain.UnsupportedNetwork, Service: domain.ServiceRNS, Field: big.NewInt(id).String()}
}

// DefaultUrl is the public node of network, empty when there is none.
func DefaultUrl(network string) string {
	return urls[networks[network]]
}
