package cns

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
	Rinkeby = "rinkeby"

	// DefaultTwitterValidator signs twitter handle verifications.
	DefaultTwitterValidator = "0x12cfb13522F13a78b650a8bCbFCf50b7CB899d82"
)

var (
	networks = map[string]int64{
		Mainnet: 1,
		Rinkeby: 4,
	}
	urls = map[int64]string{
		1: "https://cloudflare-eth.com",
	}
	readers = map[int64]string{
		1: "0x7ea9Ee21077F84339eDa9C80048ec6db678642B1",
		4: "0x299974AeD8911bcbd2C61262605b89F591a53E83",
	}
)

type Config struct {
	Network string
	Url     string
	// RegistryAddress is the ProxyReader the registry is read through.
	RegistryAddress  string
	Provider         provider.Provider
	TwitterValidator string
	// StartingBlock bounds record key log scans, nil scans from genesis.
	StartingBlock *big.Int
}

func DefaultConfig() Config {
	return Config{Network: Mainnet}
}

func New(c ctx.Ctx, cfg Config) (domain.NamingService, error) {
	if cfg.Network == "" {
		return nil, &domain.ConfigurationError{Code: domain.UnspecifiedNetwork, Service: domain.ServiceCNS}
	}
	network, ok := networks[cfg.Network]
	if !ok {
		return nil, &domain.ConfigurationError{Code: domain.UnsupportedNetwork, Service: domain.ServiceCNS, Field: cfg.Network}
	}

	url := cfg.Url
	if url == "" {
		url = urls[network]
	}
	if url == "" && cfg.Provider == nil {
		return nil, &domain.ConfigurationError{Code: domain.UnspecifiedUrl, Service: domain.ServiceCNS}
	}

	reader := cfg.RegistryAddress
	if reader == "" {
		reader = readers[network]
	}
	if !common.IsHexAddress(reader) {
		return nil, &domain.ConfigurationError{Code: domain.InvalidRegistryAddress, Service: domain.ServiceCNS, Field: reader}
	}

	validator := cfg.TwitterValidator
	if validator == "" {
		validator = DefaultTwitterValidator
	}

	p := cfg.Provider
	if p == nil {
		var err error
		if p, err = provider.Dial(c, url); err != nil {
			return nil, err
		}
	}

	c.WithFields(log.Fields{
		"network": cfg.Network,
		"url":     url,
		"reader":  reader,
	}).Debug("cns configured")

	return &impl{
		network:          network,
		url:              url,
		reader:           common.HexToAddress(reader),
		provider:         p,
		twitterValidator: common.HexToAddress(validator),
		startingBlock:    cfg.StartingBlock,
	}, nil
}

// NewAutoNetwork picks the network reported by the node behind cfg.
func NewAutoNetwork(c ctx.Ctx, cfg Config) (domain.NamingService, error) {
	p := cfg.Provider
	if p == nil {
		if cfg.Url == "" {
			return nil, &domain.ConfigurationError{Code: domain.UnspecifiedUrl, Service: domain.ServiceCNS}
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
	return nil, &domain.ConfigurationError{Code: domain.UnsupportedNetwork, Service: domain.ServiceCNS, Field: big.NewInt(id).String()}
}

// DefaultUrl is the public node of network, empty when there is none.
func DefaultUrl(network string) string {
	return urls[networks[network]]
}
