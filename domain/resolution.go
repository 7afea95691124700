package domain

import (
	"github.com/x-xyz/resolution/base/ctx"
	"github.com/x-xyz/resolution/base/records"
)

type ServiceName string

const (
	ServiceZNS ServiceName = "ZNS"
	ServiceCNS ServiceName = "CNS"
	ServiceENS ServiceName = "ENS"
	ServiceRNS ServiceName = "RNS"
)

func (s ServiceName) String() string {
	return string(s)
}

// RegistryRecord is what the registry knows about a name.
type RegistryRecord struct {
	Owner    string
	Resolver string
}

type Meta struct {
	Namehash string      `json:"namehash"`
	Resolver string      `json:"resolver"`
	Owner    *string     `json:"owner"`
	Type     ServiceName `json:"type"`
	Ttl      int         `json:"ttl"`
}

type ResolutionResponse struct {
	Addresses map[string]string `json:"addresses"`
	Meta      Meta              `json:"meta"`
	Records   records.Tree      `json:"records"`
}

// UnclaimedDomainResponse is returned by full resolution for names the
// registry has no entry for. A fresh value is built on every call.
func UnclaimedDomainResponse() *ResolutionResponse {
	return &ResolutionResponse{
		Addresses: map[string]string{},
		Meta:      Meta{},
		Records:   records.Tree{},
	}
}

type ResolutionUsecase interface {
	IsSupportedDomain(domain string) bool
	ServiceName(domain string) (ServiceName, error)
	Namehash(domain string) (string, error)
	Childhash(parent, label string, service ServiceName) (string, error)

	Resolve(c ctx.Ctx, domain string) (*ResolutionResponse, error)
	Owner(c ctx.Ctx, domain string) (string, error)
	Resolver(c ctx.Ctx, domain string) (string, error)
	Record(c ctx.Ctx, domain, key string) (string, error)
	Records(c ctx.Ctx, domain string, keys []string) (map[string]string, error)
	AllRecords(c ctx.Ctx, domain string) (map[string]string, error)

	Addr(c ctx.Ctx, domain, ticker string) (string, error)
	MultiChainAddr(c ctx.Ctx, domain, ticker, chain string) (string, error)
	IpfsHash(c ctx.Ctx, domain string) (string, error)
	HttpUrl(c ctx.Ctx, domain string) (string, error)
	Email(c ctx.Ctx, domain string) (string, error)
	ChatId(c ctx.Ctx, domain string) (string, error)
	ChatPk(c ctx.Ctx, domain string) (string, error)
	Dns(c ctx.Ctx, domain string, types []string) ([]DnsRecord, error)
	Twitter(c ctx.Ctx, domain string) (string, error)
	Reverse(c ctx.Ctx, address, currency string) (string, error)
	BatchOwners(c ctx.Ctx, domains []string) (map[string]*string, error)
}
