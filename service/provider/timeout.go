package provider

import (
	"time"

	"github.com/x-xyz/resolution/base/ctx"
)

type timeoutProvider struct {
	Provider
	timeout time.Duration
}

// WithTimeout bounds every request sent through p by d.
func WithTimeout(p Provider, d time.Duration) Provider {
	if d <= 0 {
		return p
	}
	return &timeoutProvider{Provider: p, timeout: d}
}

func (p *timeoutProvider) Request(c ctx.Ctx, result interface{}, method string, params ...interface{}) error {
	c, cancel := ctx.WithTimeout(c, p.timeout)
	defer cancel()
	return p.Provider.Request(c, result, method, params...)
}
