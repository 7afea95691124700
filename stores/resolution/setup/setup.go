// Package setup builds the resolution usecase out of viper configuration.
//
//	naming:
//	  <zns|cns|ens|rns>:
//	    enabled: true
//	    network: mainnet
//	    autoNetwork: false
//	    url: ""
//	    registryAddress: ""
//	  cns:
//	    twitterValidator: ""
//	    startingBlock: 0
//	provider:
//	  maxConcurrentRequests: 16
//	  timeout: 10s
package setup

import (
	"math/big"

	"github.com/spf13/viper"

	"github.com/x-xyz/resolution/base/ctx"
	"github.com/x-xyz/resolution/base/log"
	"github.com/x-xyz/resolution/base/metrics"
	"github.com/x-xyz/resolution/domain"
	"github.com/x-xyz/resolution/service/cns"
	"github.com/x-xyz/resolution/service/ens"
	"github.com/x-xyz/resolution/service/provider"
	"github.com/x-xyz/resolution/service/rns"
	"github.com/x-xyz/resolution/service/zns"
	"github.com/x-xyz/resolution/stores/resolution/usecase"
)

type builder struct {
	v   *viper.Viper
	met metrics.Service
}

func SetDefaults(v *viper.Viper) {
	for _, s := range []string{"zns", "cns", "ens", "rns"} {
		v.SetDefault("naming."+s+".enabled", true)
		v.SetDefault("naming."+s+".network", "mainnet")
	}
	v.SetDefault("provider.maxConcurrentRequests", 16)
	v.SetDefault("provider.timeout", "10s")
}

// New builds every enabled naming service and the usecase routing over them.
func New(c ctx.Ctx, v *viper.Viper) (domain.ResolutionUsecase, error) {
	SetDefaults(v)
	b := &builder{v: v, met: metrics.New("provider")}

	services := []domain.NamingService{}
	for _, build := range []func(ctx.Ctx) (domain.NamingService, error){b.zns, b.cns, b.ens, b.rns} {
		s, err := build(c)
		if err != nil {
			c.WithField("err", err).Error("build naming service failed")
			return nil, err
		}
		if s != nil {
			services = append(services, s)
		}
	}
	return usecase.New(services...), nil
}

func (b *builder) key(service, field string) string {
	return "naming." + service + "." + field
}

func (b *builder) enabled(service string) bool {
	return b.v.GetBool(b.key(service, "enabled"))
}

// provider dials url and decorates it, nil when there is no url.
func (b *builder) provider(c ctx.Ctx, service domain.ServiceName, url string) (provider.Provider, error) {
	if url == "" {
		return nil, nil
	}
	p, err := provider.Dial(c, url)
	if err != nil {
		c.WithFields(log.Fields{
			"service": service,
			"url":     url,
			"err":     err,
		}).Error("provider.Dial failed")
		return nil, err
	}
	p = provider.WithMetrics(p, b.met, service.String())
	p = provider.WithTimeout(p, b.v.GetDuration("provider.timeout"))
	return provider.NewThrottled(p, b.v.GetInt("provider.maxConcurrentRequests")), nil
}

func (b *builder) url(service, network string, defaultUrl func(string) string) string {
	if url := b.v.GetString(b.key(service, "url")); url != "" {
		return url
	}
	return defaultUrl(network)
}

func (b *builder) zns(c ctx.Ctx) (domain.NamingService, error) {
	if !b.enabled("zns") {
		return nil, nil
	}
	cfg := zns.Config{
		Network:         b.v.GetString(b.key("zns", "network")),
		RegistryAddress: b.v.GetString(b.key("zns", "registryAddress")),
	}
	cfg.Url = b.url("zns", cfg.Network, zns.DefaultUrl)
	p, err := b.provider(c, domain.ServiceZNS, cfg.Url)
	if err != nil {
		return nil, err
	}
	cfg.Provider = p
	return zns.New(c, cfg)
}

func (b *builder) cns(c ctx.Ctx) (domain.NamingService, error) {
	if !b.enabled("cns") {
		return nil, nil
	}
	cfg := cns.Config{
		Network:          b.v.GetString(b.key("cns", "network")),
		RegistryAddress:  b.v.GetString(b.key("cns", "registryAddress")),
		TwitterValidator: b.v.GetString(b.key("cns", "twitterValidator")),
	}
	if n := b.v.GetInt64(b.key("cns", "startingBlock")); n > 0 {
		cfg.StartingBlock = big.NewInt(n)
	}
	cfg.Url = b.url("cns", cfg.Network, cns.DefaultUrl)
	p, err := b.provider(c, domain.ServiceCNS, cfg.Url)
	if err != nil {
		return nil, err
	}
	cfg.Provider = p
	if b.v.GetBool(b.key("cns", "autoNetwork")) {
		return cns.NewAutoNetwork(c, cfg)
	}
	return cns.New(c, cfg)
}

func (b *builder) ens(c ctx.Ctx) (domain.NamingService, error) {
	if !b.enabled("ens") {
		return nil, nil
	}
	cfg := ens.Config{
		Network:         b.v.GetString(b.key("ens", "network")),
		RegistryAddress: b.v.GetString(b.key("ens", "registryAddress")),
	}
	cfg.Url = b.url("ens", cfg.Network, ens.DefaultUrl)
	p, err := b.provider(c, domain.ServiceENS, cfg.Url)
	if err != nil {
		return nil, err
	}
	cfg.Provider = p
	if b.v.GetBool(b.key("ens", "autoNetwork")) {
		return ens.NewAutoNetwork(c, cfg)
	}
	return ens.New(c, cfg)
}

func (b *builder) rns(c ctx.Ctx) (domain.NamingService, error) {
	if !b.enabled("rns") {
		return nil, nil
	}
	cfg := rns.Config{
		Network:         b.v.GetString(b.key("rns", "network")),
		RegistryAddress: b.v.GetString(b.key("rns", "registryAddress")),
	}
	cfg.Url = b.url("rns", cfg.Network, rns.DefaultUrl)
	p, err := b.provider(c, domain.ServiceRNS, cfg.Url)
	if err != nil {
		return nil, err
	}
	cfg.Provider = p
	if b.v.GetBool(b.key("rns", "autoNetwork")) {
		return rns.NewAutoNetwork(c, cfg)
	}
	return rns.New(c, cfg)
}
