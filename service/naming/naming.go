// Package naming holds the pieces of the registry -> resolver pipeline that
// every naming service backend shares.
package naming

import (
	"strconv"
	"strings"

	"github.com/x-xyz/resolution/base/ctx"
	"github.com/x-xyz/resolution/base/log"
	"github.com/x-xyz/resolution/base/records"
	"github.com/x-xyz/resolution/domain"
)

// HasSuffix reports whether the last label of name is one of tlds and no
// label is empty.
func HasSuffix(name string, tlds ...string) bool {
	labels := strings.Split(name, ".")
	for _, l := range labels {
		if l == "" {
			return false
		}
	}
	last := labels[len(labels)-1]
	for _, tld := range tlds {
		if last == tld {
			return true
		}
	}
	return false
}

func UnsupportedDomain(name string) error {
	return &domain.ResolutionError{Code: domain.UnsupportedDomain, Domain: name}
}

func UnregisteredDomain(name string) error {
	return &domain.ResolutionError{Code: domain.UnregisteredDomain, Domain: name}
}

func UnspecifiedResolver(name string) error {
	return &domain.ResolutionError{Code: domain.UnspecifiedResolver, Domain: name}
}

func UnsupportedMethod(method, name string) error {
	return &domain.ResolutionError{Code: domain.UnsupportedMethod, Method: method, Domain: name}
}

// Record picks key out of values. Missing and empty values are both
// RecordNotFound.
func Record(values map[string]string, name, key string) (string, error) {
	v, ok := values[key]
	if !ok || v == "" {
		return "", &domain.ResolutionError{Code: domain.RecordNotFound, Domain: name, Record: key}
	}
	return v, nil
}

// Addresses collects crypto.<TICKER>.address leaves keyed by ticker.
func Addresses(tree records.Tree) map[string]string {
	addrs := map[string]string{}
	for ticker, v := range tree.Subtree("crypto") {
		sub, ok := v.(records.Tree)
		if !ok {
			continue
		}
		if addr, ok := sub.Lookup("address"); ok && addr != "" {
			addrs[ticker] = addr
		}
	}
	return addrs
}

// ParseTtl returns 0 for missing or non numeric values.
func ParseTtl(v string) int {
	ttl, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || ttl < 0 {
		return 0
	}
	return ttl
}

// Response structures flat and assembles the full resolution response.
type Response struct {
	Service  domain.ServiceName
	Namehash string
	Resolver string
	Owner    string
	Ttl      int
	Records  map[string]string
}

// Build never fails. Records that cannot be placed in the tree are logged and
// left out of it; they stay reachable through the flat record lookups.
func (r Response) Build(c ctx.Ctx) *domain.ResolutionResponse {
	tree, skipped := records.Structure(r.Records)
	if len(skipped) > 0 {
		c.WithFields(log.Fields{
			"namehash": r.Namehash,
			"keys":     skipped,
		}).Warn("records.Structure skipped conflicting keys")
	}
	res := &domain.ResolutionResponse{
		Addresses: Addresses(tree),
		Meta: domain.Meta{
			Namehash: r.Namehash,
			Resolver: r.Resolver,
			Type:     r.Service,
			Ttl:      r.Ttl,
		},
		Records: tree,
	}
	if r.Owner != "" {
		owner := r.Owner
		res.Meta.Owner = &owner
	}
	return res
}
