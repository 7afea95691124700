package ens

import (
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	goens "github.com/wealdtech/go-ens/v3"

	"github.com/x-xyz/resolution/base/abi"
	"github.com/x-xyz/resolution/base/address"
	"github.com/x-xyz/resolution/base/ctx"
	"github.com/x-xyz/resolution/base/log"
	"github.com/x-xyz/resolution/base/namehash"
	"github.com/x-xyz/resolution/domain"
	"github.com/x-xyz/resolution/service/naming"
	"github.com/x-xyz/resolution/service/provider"
)

var tlds = []string{"eth", "luxe", "xyz", "kred", "reverse"}

type impl struct {
	network  int64
	url      string
	registry common.Address
	provider provider.Provider
}

func (im *impl) ServiceName() domain.ServiceName {
	return domain.ServiceENS
}

func (im *impl) IsSupportedDomain(name string) bool {
	if !naming.HasSuffix(name, tlds...) {
		return false
	}
	for _, label := range strings.Split(name, ".") {
		if strings.HasPrefix(label, "-") || strings.HasSuffix(label, "-") {
			return false
		}
	}
	return true
}

func (im *impl) Namehash(name string) (string, error) {
	node, err := im.node(name)
	if err != nil {
		return "", err
	}
	return node.Hex(), nil
}

func (im *impl) Childhash(parent, label string) (string, error) {
	return namehash.Keccak256.ChildHex(parent, label)
}

func (im *impl) node(name string) (common.Hash, error) {
	if !im.IsSupportedDomain(name) {
		return common.Hash{}, naming.UnsupportedDomain(name)
	}
	normalised, err := goens.NormaliseDomain(name)
	if err != nil {
		return common.Hash{}, naming.UnsupportedDomain(name)
	}
	return namehash.Keccak256.Hash(normalised), nil
}

func (im *impl) Resolve(c ctx.Ctx, name string) (*domain.ResolutionResponse, error) {
	rec, node, err := im.registryRecord(c, name)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return domain.UnclaimedDomainResponse(), nil
	}

	ttl, err := im.ttl(c, node)
	if err != nil {
		return nil, err
	}
	values := map[string]string{}
	if !address.IsNull(rec.Resolver) {
		addr, err := im.read(c, common.HexToAddress(rec.Resolver), node, "crypto.ETH.address")
		if err != nil {
			return nil, err
		}
		if addr != "" {
			values["crypto.ETH.address"] = addr
		}
	}

	return naming.Response{
		Service:  domain.ServiceENS,
		Namehash: node.Hex(),
		Resolver: rec.Resolver,
		Owner:    rec.Owner,
		Ttl:      ttl,
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
	rec, _, err := im.registryRecord(c, name)
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

// Records reads every key from the resolver one call at a time. Empty values
// are left out.
func (im *impl) Records(c ctx.Ctx, name string, keys []string) (map[string]string, error) {
	resolver, err := im.Resolver(c, name)
	if err != nil {
		return nil, err
	}
	node, err := im.node(name)
	if err != nil {
		return nil, err
	}

	values := map[string]string{}
	for _, key := range keys {
		v, err := im.read(c, common.HexToAddress(resolver), node, key)
		if err != nil {
			return nil, err
		}
		if v != "" {
			values[key] = v
		}
	}
	return values, nil
}

func (im *impl) AllRecords(c ctx.Ctx, name string) (map[string]string, error) {
	return nil, naming.UnsupportedMethod("allRecords", name)
}

func (im *impl) Twitter(c ctx.Ctx, name string) (string, error) {
	return "", naming.UnsupportedMethod("twitter", name)
}

// Reverse resolves the primary name of an ETH address through
// <addr>.addr.reverse.
func (im *impl) Reverse(c ctx.Ctx, addr, currency string) (string, error) {
	if !strings.EqualFold(currency, "ETH") {
		return "", &domain.ResolutionError{Code: domain.UnsupportedCurrency, Currency: currency}
	}
	if !common.IsHexAddress(addr) {
		return "", naming.UnsupportedDomain(addr)
	}
	reverse := strings.ToLower(strings.TrimPrefix(common.HexToAddress(addr).Hex(), "0x")) + ".addr.reverse"

	resolver, err := im.Resolver(c, reverse)
	if err != nil {
		return "", err
	}
	node := namehash.Keccak256.Hash(reverse)
	out, err := provider.Call(c, im.provider, common.HexToAddress(resolver), abi.ENSResolverABI, "name", node)
	if err != nil {
		return "", err
	}
	name, _ := out[0].(string)
	if name == "" {
		return "", &domain.ResolutionError{Code: domain.RecordNotFound, Domain: reverse, Record: "name"}
	}
	return name, nil
}

// registryRecord returns nil without error for unsupported names and names
// without an owner.
func (im *impl) registryRecord(c ctx.Ctx, name string) (*domain.RegistryRecord, common.Hash, error) {
	if !im.IsSupportedDomain(name) {
		return nil, common.Hash{}, nil
	}
	node, err := im.node(name)
	if err != nil {
		return nil, common.Hash{}, nil
	}

	out, err := provider.Call(c, im.provider, im.registry, abi.ENSRegistryABI, "owner", node)
	if err != nil {
		c.WithFields(log.Fields{
			"domain":   name,
			"namehash": node.Hex(),
			"err":      err,
		}).Error("registry owner failed")
		return nil, node, err
	}
	owner, _ := out[0].(common.Address)
	if address.IsNull(owner.Hex()) {
		return nil, node, nil
	}

	out, err = provider.Call(c, im.provider, im.registry, abi.ENSRegistryABI, "resolver", node)
	if err != nil {
		c.WithFields(log.Fields{
			"domain":   name,
			"namehash": node.Hex(),
			"err":      err,
		}).Error("registry resolver failed")
		return nil, node, err
	}
	resolver, _ := out[0].(common.Address)

	return &domain.RegistryRecord{
		Owner:    owner.Hex(),
		Resolver: resolver.Hex(),
	}, node, nil
}

func (im *impl) ttl(c ctx.Ctx, node common.Hash) (int, error) {
	out, err := provider.Call(c, im.provider, im.registry, abi.ENSRegistryABI, "ttl", node)
	if err != nil {
		return 0, err
	}
	ttl, _ := out[0].(uint64)
	return int(ttl), nil
}

// read answers one record key from the resolver, "" when it is unset.
func (im *impl) read(c ctx.Ctx, resolver common.Address, node common.Hash, key string) (string, error) {
	if ticker, ok := cryptoTicker(key); ok {
		return im.readAddr(c, resolver, node, ticker)
	}
	if isContenthashKey(key) {
		out, err := provider.Call(c, im.provider, resolver, abi.ENSResolverABI, "contenthash", node)
		if err != nil {
			return "", err
		}
		raw, _ := out[0].([]byte)
		if len(raw) == 0 {
			return "", nil
		}
		hash, err := goens.ContenthashToString(raw)
		if err != nil {
			c.WithFields(log.Fields{
				"namehash": node.Hex(),
				"err":      err,
			}).Warn("goens.ContenthashToString failed")
			return "", err
		}
		return strings.TrimPrefix(hash, "/ipfs/"), nil
	}

	out, err := provider.Call(c, im.provider, resolver, abi.ENSResolverABI, "text", node, textKey(key))
	if err != nil {
		return "", err
	}
	v, _ := out[0].(string)
	return v, nil
}

func (im *impl) readAddr(c ctx.Ctx, resolver common.Address, node common.Hash, ticker string) (string, error) {
	if ticker == "ETH" {
		out, err := provider.Call(c, im.provider, resolver, abi.ENSResolverABI, "addr", node)
		if err != nil {
			return "", err
		}
		addr, _ := out[0].(common.Address)
		if address.IsNull(addr.Hex()) {
			return "", nil
		}
		return addr.Hex(), nil
	}

	coinType, ok := coinTypes[ticker]
	if !ok {
		return "", &domain.ResolutionError{Code: domain.UnsupportedCurrency, Currency: ticker}
	}
	out, err := provider.Call(c, im.provider, resolver, abi.ENSResolverABI, "addr0", node, big.NewInt(coinType))
	if err != nil {
		return "", err
	}
	raw, _ := out[0].([]byte)
	if len(raw) != common.AddressLength {
		return "", nil
	}
	return common.BytesToAddress(raw).Hex(), nil
}
