package provider

import (
	"github.com/ethereum/go-ethereum/rpc"

	"github.com/x-xyz/resolution/base/ctx"
	"github.com/x-xyz/resolution/base/log"
)

// Provider performs a single JSON-RPC request and decodes its result into
// result. Errors from the transport or the node are returned unwrapped.
type Provider interface {
	Request(c ctx.Ctx, result interface{}, method string, params ...interface{}) error
}

type rpcProvider struct {
	client *rpc.Client
	url    string
}

// Dial connects a JSON-RPC 2.0 provider to url. HTTP, websocket and IPC
// endpoints are accepted.
func Dial(c ctx.Ctx, url string) (Provider, error) {
	client, err := rpc.DialContext(c, url)
	if err != nil {
		c.WithFields(log.Fields{
			"err": err,
			"url": url,
		}).Error("rpc.DialContext failed")
		return nil, err
	}
	return &rpcProvider{
		client: client,
		url:    url,
	}, nil
}

// NewFromClient wraps an existing rpc client.
func NewFromClient(client *rpc.Client) Provider {
	return &rpcProvider{client: client}
}

func (p *rpcProvider) Request(c ctx.Ctx, result interface{}, method string, params ...interface{}) error {
	if params == nil {
		params = []interface{}{}
	}
	if err := p.client.CallContext(c, result, method, params...); err != nil {
		c.WithFields(log.Fields{
			"err":    err,
			"url":    p.url,
			"method": method,
		}).Warn("client.CallContext failed")
		return err
	}
	return nil
}
