package domain

import "github.com/x-xyz/resolution/base/ctx"

// NamingService is one naming system backend. Implementations carry their
// own hash dialect, null address and address encoding.
type NamingService interface {
	ServiceName() ServiceName
	IsSupportedDomain(domain string) bool
	Namehash(domain string) (string, error)
	Childhash(parent, label string) (string, error)

	Resolve(c ctx.Ctx, domain string) (*ResolutionResponse, error)
	Owner(c ctx.Ctx, domain string) (string, error)
	Resolver(c ctx.Ctx, domain string) (string, error)
	Record(c ctx.Ctx, domain, key string) (string, error)
	Records(c ctx.Ctx, domain string, keys []string) (map[string]string, error)
	AllRecords(c ctx.Ctx, domain string) (map[string]string, error)

	Twitter(c ctx.Ctx, domain string) (string, error)
	Reverse(c ctx.Ctx, address, currency string) (string, error)
}
