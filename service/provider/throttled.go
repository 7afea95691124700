package provider

import (
	"time"

	"github.com/x-xyz/resolution/base/ctx"
	"github.com/x-xyz/resolution/base/log"
)

type throttledProvider struct {
	Provider
	tokens chan int
}

// NewThrottled caps the number of in-flight requests sent through p to n.
func NewThrottled(p Provider, n int) Provider {
	if n <= 0 {
		return p
	}
	tokens := make(chan int, n)
	for i := 0; i < n; i++ {
		tokens <- i + 1
	}
	return &throttledProvider{
		Provider: p,
		tokens:   tokens,
	}
}

func (p *throttledProvider) Request(c ctx.Ctx, result interface{}, method string, params ...interface{}) error {
	token := p.before(c)
	if token == 0 {
		return c.Err()
	}
	defer p.after(token)
	return p.Provider.Request(c, result, method, params...)
}

func (p *throttledProvider) before(c ctx.Ctx) int {
	now := time.Now()
	select {
	case <-c.Done():
		c.WithField("time", time.Since(now)).Debug("throttle ctx done")
		return 0
	case token := <-p.tokens:
		c.WithFields(log.Fields{
			"token": token,
			"len":   len(p.tokens),
			"time":  time.Since(now),
		}).Debug("throttle")
		return token
	}
}

func (p *throttledProvider) after(token int) {
	if token != 0 {
		p.tokens <- token
	}
}
