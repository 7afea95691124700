package zns

import (
	"strings"

	"github.com/x-xyz/resolution/base/address"
	"github.com/x-xyz/resolution/base/ctx"
	"github.com/x-xyz/resolution/base/log"
	"github.com/x-xyz/resolution/base/namehash"
	"github.com/x-xyz/resolution/base/records"
	"github.com/x-xyz/resolution/domain"
	"github.com/x-xyz/resolution/service/naming"
	"github.com/x-xyz/resolution/service/provider"
)

const (
	subStateMethod = "GetSmartContractSubState"
	recordsField   = "records"
)

type impl struct {
	network     int64
	url         string
	registry    string
	registryHex string
	provider    provider.Provider
}

type registryState struct {
	Records map[string]struct {
		Arguments []string `json:"arguments"`
	} `json:"records"`
}

type resolverState struct {
	Records map[string]string `json:"records"`
}

func (im *impl) ServiceName() domain.ServiceName {
	return domain.ServiceZNS
}

func (im *impl) IsSupportedDomain(name string) bool {
	return naming.HasSuffix(name, "zil")
}

func (im *impl) Namehash(name string) (string, error) {
	if !im.IsSupportedDomain(name) {
		return "", naming.UnsupportedDomain(name)
	}
	return namehash.Sha256.HashHex(name), nil
}

func (im *impl) Childhash(parent, label string) (string, error) {
	return namehash.Sha256.ChildHex(parent, label)
}

func (im *impl) Resolve(c ctx.Ctx, name string) (*domain.ResolutionResponse, error) {
	rec, err := im.registryRecord(c, name)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return domain.UnclaimedDomainResponse(), nil
	}

	values, err := im.resolverRecords(c, rec.Resolver)
	if err != nil {
		return nil, err
	}

	owner := rec.Owner
	if address.IsNull(owner) {
		owner = ""
	}
	return naming.Response{
		Service:  domain.ServiceZNS,
		Namehash: namehash.Sha256.HashHex(name),
		Resolver: rec.Resolver,
		Owner:    owner,
		Ttl:      naming.ParseTtl(values["ttl"]),
		Records:  values,
	}.Build(c), nil
}

func (im *impl) Owner(c ctx.Ctx, name string) (string, error) {
	res, err := im.Resolve(c, name)
	if err != nil {
		return "", err
	}
	if res.Meta.Owner == nil {
		return "", naming.UnregisteredDomain(name)
	}
	return *res.Meta.Owner, nil
}

func (im *impl) Resolver(c ctx.Ctx, name string) (string, error) {
	rec, err := im.registryRecord(c, name)
	if err != nil {
		return "", err
	}
	if rec == nil || rec.Owner == "" {
		return "", naming.UnregisteredDomain(name)
	}
	if address.IsNull(rec.Resolver) {
		return "", naming.UnspecifiedResolver(name)
	}
	return rec.Resolver, nil
}

func (im *impl) Record(c ctx.Ctx, name, key string) (string, error) {
	values, err := im.Records(c, name, []string{key})
	if err != nil {
		return "", err
	}
	return naming.Record(values, name, key)
}

func (im *impl) Records(c ctx.Ctx, name string, keys []string) (map[string]string, error) {
	all, err := im.AllRecords(c, name)
	if err != nil {
		return nil, err
	}
	return records.Select(keys, all), nil
}

func (im *impl) AllRecords(c ctx.Ctx, name string) (map[string]string, error) {
	resolver, err := im.Resolver(c, name)
	if err != nil {
		return nil, err
	}
	return im.resolverRecords(c, resolver)
}

func (im *impl) Twitter(c ctx.Ctx, name string) (string, error) {
	return "", naming.UnsupportedMethod("twitter", name)
}

func (im *impl) Reverse(c ctx.Ctx, addr, currency string) (string, error) {
	return "", naming.UnsupportedMethod("reverse", "")
}

// registryRecord returns nil without error for unsupported names and names
// the registry has no entry for.
func (im *impl) registryRecord(c ctx.Ctx, name string) (*domain.RegistryRecord, error) {
	if !im.IsSupportedDomain(name) {
		return nil, nil
	}
	node := namehash.Sha256.HashHex(name)

	state := registryState{}
	if err := im.provider.Request(c, &state, subStateMethod, im.registryHex, recordsField, []string{node}); err != nil {
		c.WithFields(log.Fields{
			"domain":   name,
			"namehash": node,
			"err":      err,
		}).Error("registry read failed")
		return nil, err
	}

	entry, ok := state.Records[node]
	if !ok || len(entry.Arguments) < 2 {
		return nil, nil
	}
	owner, resolver := entry.Arguments[0], entry.Arguments[1]
	if address.IsHex(owner) {
		bech, err := address.ToBech32(owner)
		if err != nil {
			return nil, err
		}
		owner = bech
	}
	return &domain.RegistryRecord{
		Owner:    owner,
		Resolver: resolver,
	}, nil
}

// resolverRecords reads the whole record map of a resolver. A null resolver
// has no records.
func (im *impl) resolverRecords(c ctx.Ctx, resolver string) (map[string]string, error) {
	if address.IsNull(resolver) {
		return map[string]string{}, nil
	}
	contract := strings.TrimPrefix(address.ZilChecksum(resolver), "0x")

	state := resolverState{}
	if err := im.provider.Request(c, &state, subStateMethod, contract, recordsField, []string{}); err != nil {
		c.WithFields(log.Fields{
			"resolver": resolver,
			"err":      err,
		}).Error("resolver read failed")
		return nil, err
	}
	if state.Records == nil {
		return map[string]string{}, nil
	}
	return state.Records, nil
}
