package provider

import (
	"github.com/x-xyz/resolution/base/ctx"
	"github.com/x-xyz/resolution/base/metrics"
)

type metricsProvider struct {
	Provider
	metrics metrics.Service
	service string
}

// WithMetrics records latency and errors of every request under the given
// naming service tag.
func WithMetrics(p Provider, m metrics.Service, service string) Provider {
	return &metricsProvider{
		Provider: p,
		metrics:  m,
		service:  service,
	}
}

func (p *metricsProvider) Request(c ctx.Ctx, result interface{}, method string, params ...interface{}) error {
	tags := []string{"method", method, "service", p.service}
	defer p.metrics.BumpTime("rpc.latency", tags...).End()
	err := p.Provider.Request(c, result, method, params...)
	if err != nil {
		p.metrics.BumpSum("rpc.err", 1, tags...)
	}
	return err
}
