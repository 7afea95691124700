package rns

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/x-xyz/resolution/base/abi"
	"github.com/x-xyz/resolution/base/address"
	"github.com/x-xyz/resolution/base/ctx"
	"github.com/x-xyz/resolution/base/log"
	"github.com/x-xyz/resolution/base/namehash"
	"github.com/x-xyz/resolution/domain"
	"github.com/x-xyz/resolution/service/naming"
	"github.com/x-xyz/resolution/service/provider"
)

// addrKey is the only record an RNS resolver holds.
const addrKey = "crypto.RSK.address"

type impl struct {
	network  int64
	url      string
	registry common.Address
	provider provider.Provider
}

func (im *impl) ServiceName() domain.ServiceName {
	return domain.ServiceRNS
}

func (im *impl) IsSupportedDomain(name string) bool {
	return naming.HasSuffix(name, "rsk")
}

func (im *impl) Namehash(name string) (string, error) {
	if !im.IsSupportedDomain(name) {
		return "", naming.UnsupportedDomain(name)
	}
	return namehash.Keccak256.HashHex(name), nil
}

func (im *impl) Childhash(parent, label string) (string, error) {
	return namehash.Keccak256.ChildHex(parent, label)
}

func (im *impl) checksum(addr common.Address) string {
	return address.Checksum(addr.Hex(), im.network)
}

func (im *impl) Resolve(c ctx.Ctx, name string) (*domain.ResolutionResponse, error) {
	rec, err := im.registryRecord(c, name)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return domain.UnclaimedDomainResponse(), nil
	}
	node := namehash.Keccak256.Hash(name)

	out, err := provider.Call(c, im.provider, im.registry, abi.ENSRegistryABI, "ttl", node)
	if err != nil {
		return nil, err
	}
	ttl, _ := out[0].(uint64)

	values := map[string]string{}
	if !address.IsNull(rec.Resolver) {
		addr, err := im.addr(c, common.HexToAddress(rec.Resolver), node)
		if err != nil {
			return nil, err
		}
		if addr != "" {
			values[addrKey] = addr
		}
	}

	return naming.Response{
		Service:  domain.ServiceRNS,
		Namehash: node.Hex(),
		Resolver: rec.Resolver,
		Owner:    rec.Owner,
		Ttl:      int(ttl),
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
	if rec == nil {
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
	resolver, err := im.Resolver(c, name)
	if err != nil {
		return nil, err
	}
	values := map[string]string{}
	for _, key := range keys {
		if key != addrKey {
			continue
		}
		addr, err := im.addr(c, common.HexToAddress(resolver), namehash.Keccak256.Hash(name))
		if err != nil {
			return nil, err
		}
		if addr != "" {
			values[addrKey] = addr
		}
		break
	}
	return values, nil
}

func (im *impl) AllRecords(c ctx.Ctx, name string) (map[string]string, error) {
	return nil, naming.UnsupportedMethod("allRecords", name)
}

func (im *impl) Twitter(c ctx.Ctx, name string) (string, error) {
	return "", naming.UnsupportedMethod("twitter", name)
}

func (im *impl) Reverse(c ctx.Ctx, addr, currency string) (string, error) {
	return "", naming.UnsupportedMethod("reverse", "")
}

func (im *impl) registryRecord(c ctx.Ctx, name string) (*domain.RegistryRecord, error) {
	if !im.IsSupportedDomain(name) {
		return nil, nil
	}
	node := namehash.Keccak256.Hash(name)

	out, err := provider.Call(c, im.provider, im.registry, abi.ENSRegistryABI, "owner", node)
	if err != nil {
		c.WithFields(log.Fields{
			"domain":   name,
			"namehash": node.Hex(),
			"err":      err,
		}).Error("registry owner failed")
		return nil, err
	}
	owner, _ := out[0].(common.Address)
	if address.IsNull(owner.Hex()) {
		return nil, nil
	}

	out, err = provider.Call(c, im.provider, im.registry, abi.ENSRegistryABI, "resolver", node)
	if err != nil {
		c.WithFields(log.Fields{
			"domain":   name,
			"namehash": node.Hex(),
			"err":      err,
		}).Error("registry resolver failed")
		return nil, err
	}
	resolver, _ := out[0].(common.Address)

	return &domain.RegistryRecord{
		Owner:    im.checksum(owner),
		Resolver: im.checksum(resolver),
	}, nil
}

func (im *impl) addr(c ctx.Ctx, resolver common.Address, node common.Hash) (string, error) {
	out, err := provider.Call(c, im.provider, resolver, abi.ENSResolverABI, "addr", node)
	if err != nil {
		c.WithFields(log.Fields{
			"resolver": resolver.Hex(),
			"err":      err,
		}).Error("resolver addr failed")
		return "", err
	}
	addr, _ := out[0].(common.Address)
	if address.IsNull(addr.Hex()) {
		return "", nil
	}
	return im.checksum(addr), nil
}
