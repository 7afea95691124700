package cns

import (
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/xerrors"

	"github.com/x-xyz/resolution/base/abi"
	"github.com/x-xyz/resolution/base/address"
	"github.com/x-xyz/resolution/base/ctx"
	"github.com/x-xyz/resolution/base/log"
	"github.com/x-xyz/resolution/base/namehash"
	"github.com/x-xyz/resolution/domain"
	"github.com/x-xyz/resolution/service/naming"
	"github.com/x-xyz/resolution/service/provider"
)

const (
	twitterUsernameKey   = "social.twitter.username"
	twitterValidationKey = "validation.social.twitter.username"
)

type impl struct {
	network          int64
	url              string
	reader           common.Address
	provider         provider.Provider
	twitterValidator common.Address
	startingBlock    *big.Int
}

// data is one ProxyReader getData answer.
type data struct {
	resolver common.Address
	owner    common.Address
	values   map[string]string
}

func (im *impl) ServiceName() domain.ServiceName {
	return domain.ServiceCNS
}

func (im *impl) IsSupportedDomain(name string) bool {
	return naming.HasSuffix(name, "crypto")
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

func (im *impl) Resolve(c ctx.Ctx, name string) (*domain.ResolutionResponse, error) {
	d, err := im.registryData(c, name, nil)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return domain.UnclaimedDomainResponse(), nil
	}

	values := map[string]string{}
	if !address.IsNull(d.resolver.Hex()) {
		if values, err = im.allRecords(c, name, d.resolver); err != nil {
			return nil, err
		}
	}

	return naming.Response{
		Service:  domain.ServiceCNS,
		Namehash: namehash.Keccak256.HashHex(name),
		Resolver: d.resolver.Hex(),
		Owner:    d.owner.Hex(),
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
	d, err := im.configuredData(c, name, nil)
	if err != nil {
		return "", err
	}
	return d.resolver.Hex(), nil
}

func (im *impl) Record(c ctx.Ctx, name, key string) (string, error) {
	values, err := im.Records(c, name, []string{key})
	if err != nil {
		return "", err
	}
	return naming.Record(values, name, key)
}

// Records reads keys in the same getData call that reads the registry.
func (im *impl) Records(c ctx.Ctx, name string, keys []string) (map[string]string, error) {
	d, err := im.configuredData(c, name, keys)
	if err != nil {
		return nil, err
	}
	return d.values, nil
}

func (im *impl) AllRecords(c ctx.Ctx, name string) (map[string]string, error) {
	d, err := im.configuredData(c, name, nil)
	if err != nil {
		return nil, err
	}
	return im.allRecords(c, name, d.resolver)
}

func (im *impl) Twitter(c ctx.Ctx, name string) (string, error) {
	d, err := im.configuredData(c, name, []string{twitterValidationKey, twitterUsernameKey})
	if err != nil {
		return "", err
	}
	signature, err := naming.Record(d.values, name, twitterValidationKey)
	if err != nil {
		return "", err
	}
	handle, err := naming.Record(d.values, name, twitterUsernameKey)
	if err != nil {
		return "", err
	}

	tokenID := namehash.Keccak256.Hash(name).Big()
	if !validTwitterSignature(tokenID, d.owner, handle, signature, im.twitterValidator) {
		c.WithFields(log.Fields{
			"domain": name,
			"handle": handle,
		}).Warn("invalid twitter verification")
		return "", &domain.ResolutionError{Code: domain.InvalidTwitterVerification, Domain: name}
	}
	return handle, nil
}

func (im *impl) Reverse(c ctx.Ctx, addr, currency string) (string, error) {
	return "", naming.UnsupportedMethod("reverse", "")
}

// registryData runs getData for keys. It returns nil without error for
// unsupported names and names without an owner.
func (im *impl) registryData(c ctx.Ctx, name string, keys []string) (*data, error) {
	if !im.IsSupportedDomain(name) {
		return nil, nil
	}
	if keys == nil {
		keys = []string{}
	}
	tokenID := namehash.Keccak256.Hash(name).Big()

	out, err := provider.Call(c, im.provider, im.reader, abi.ProxyReaderABI, "getData", keys, tokenID)
	if err != nil {
		c.WithFields(log.Fields{
			"domain":  name,
			"tokenId": tokenID.String(),
			"err":     err,
		}).Error("getData failed")
		return nil, err
	}
	if len(out) != 3 {
		return nil, xerrors.Errorf("getData returned %d values", len(out))
	}
	resolver, _ := out[0].(common.Address)
	owner, _ := out[1].(common.Address)
	values, _ := out[2].([]string)
	if address.IsNull(owner.Hex()) {
		return nil, nil
	}

	d := &data{
		resolver: resolver,
		owner:    owner,
		values:   map[string]string{},
	}
	for i, key := range keys {
		if i < len(values) && values[i] != "" {
			d.values[key] = values[i]
		}
	}
	return d, nil
}

// configuredData is registryData for names that must have a resolver.
func (im *impl) configuredData(c ctx.Ctx, name string, keys []string) (*data, error) {
	d, err := im.registryData(c, name, keys)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, naming.UnregisteredDomain(name)
	}
	if address.IsNull(d.resolver.Hex()) {
		return nil, naming.UnspecifiedResolver(name)
	}
	return d, nil
}

func (im *impl) allRecords(c ctx.Ctx, name string, resolver common.Address) (map[string]string, error) {
	keys, err := im.recordKeys(c, resolver, namehash.Keccak256.Hash(name))
	if err != nil {
		return nil, err
	}
	d, err := im.registryData(c, name, keys)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return map[string]string{}, nil
	}
	return d.values, nil
}

// recordKeys lists the keys set on the resolver for node since its last
// records reset. Resolvers without key events fall back to the standard keys.
func (im *impl) recordKeys(c ctx.Ctx, resolver common.Address, node common.Hash) ([]string, error) {
	from := im.startingBlock
	resets, err := provider.GetLogs(c, im.provider, ethereum.FilterQuery{
		FromBlock: from,
		Addresses: []common.Address{resolver},
		Topics:    [][]common.Hash{{abi.UNSResolverABI.Events["ResetRecords"].ID}, {node}},
	})
	if err != nil {
		c.WithFields(log.Fields{
			"resolver": resolver.Hex(),
			"err":      err,
		}).Error("ResetRecords logs failed")
		return nil, err
	}
	if len(resets) > 0 {
		from = new(big.Int).SetUint64(resets[len(resets)-1].BlockNumber)
	}

	logs, err := provider.GetLogs(c, im.provider, ethereum.FilterQuery{
		FromBlock: from,
		Addresses: []common.Address{resolver},
		Topics:    [][]common.Hash{{abi.UNSResolverABI.Events["NewKey"].ID}, {node}},
	})
	if err != nil {
		c.WithFields(log.Fields{
			"resolver": resolver.Hex(),
			"err":      err,
		}).Error("NewKey logs failed")
		return nil, err
	}

	keys := []string{}
	seen := map[string]bool{}
	for _, l := range logs {
		out, err := abi.UNSResolverABI.Unpack("NewKey", l.Data)
		if err != nil || len(out) != 1 {
			c.WithFields(log.Fields{
				"tx":  l.TxHash.Hex(),
				"err": err,
			}).Warn("skip malformed NewKey log")
			continue
		}
		key, _ := out[0].(string)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		keys = append(keys, key)
	}
	if len(keys) == 0 {
		return standardKeys, nil
	}
	return keys, nil
}
