package ens

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
	Ropsten = "ropsten"
	Rinkeby = "rinkeby"
	Goerli  = "goerli"

	registryAddress = "0x00000000000C2E074eC69A0dFb2997BA6C7d2e1e"
)

var (
	networks = map[string]int64{
		Mainnet: 1,
		Ropsten: 3,
		Rinkeby: 4,
		Goerli:  5,
	}
	urls = map[int64]string{
		1: "https://cloudflare-eth.com",
	}
	registries = map[int64]string{
		1: registryAddress,
		3: registryAddress,
		4: registryAddress,
		5: registryAddress,
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
		return nil, &domain.ConfigurationError{Code: domain.UnspecifiedNetwork, Service: domain.ServiceENS}
	}
	network, ok := networks[cfg.Network]
	if !ok {
		return nil, &domain.ConfigurationError{Code: domain.UnsupportedNetwork, Service: domain.ServiceENS, Field: cfg.Network}
	}

	url := cfg.Url
	if url == "" {
		url = urls[network]
	}
	if url == "" && cfg.Provider == nil {
		return nil, &domain.ConfigurationError{Code: domain.UnspecifiedUrl, Service: domain.ServiceENS}
	}

	registry := cfg.RegistryAddress
	if registry == "" {
		registry = registries[network]
	}
	if !common.IsHexAddress(registry) {
		return nil, &domain.ConfigurationError{Code: domain.InvalidRegistryAddress, Service: domain.ServiceENS, Field: registry}
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
	}).Debug("ens configured")

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
		if cfg.Url == "" {
			return nil, &domain.ConfigurationError{Code: domain.UnspecifiedUrl, Service: domain.ServiceENS}
		}
		var err error
		if p, err = provider.Dial(c, cfg.Url); err != nil {
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
	return nil, &domain.ConfigurationError{Code: domain.UnsupportedNetwork, Service: domain.ServiceENS, Field: big.NewInt(id).String()}
}

// DefaultUrl is the public node of network, empty when there is none.
func DefaultUrl(network string) string {
	return urls[networks[network]]
}
