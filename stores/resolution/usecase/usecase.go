package usecase

import (
	"encoding/json"
	"errors"
	"sort"
	"strconv"
	"strings"

	"github.com/viney-shih/goroutines"
	"golang.org/x/net/idna"
	"golang.org/x/xerrors"

	"github.com/x-xyz/resolution/base/ctx"
	"github.com/x-xyz/resolution/base/log"
	"github.com/x-xyz/resolution/domain"
)

const batchWorkers = 10

var serviceOrder = map[domain.ServiceName]int{
	domain.ServiceCNS: 0,
	domain.ServiceZNS: 1,
	domain.ServiceENS: 2,
	domain.ServiceRNS: 3,
}

type impl struct {
	services []domain.NamingService
}

// New creates the resolution usecase. Services are consulted in the order
// CNS, ZNS, ENS, RNS regardless of the order given.
func New(services ...domain.NamingService) domain.ResolutionUsecase {
	sorted := make([]domain.NamingService, len(services))
	copy(sorted, services)
	sort.SliceStable(sorted, func(i, j int) bool {
		return rank(sorted[i].ServiceName()) < rank(sorted[j].ServiceName())
	})
	return &impl{services: sorted}
}

func rank(s domain.ServiceName) int {
	if r, ok := serviceOrder[s]; ok {
		return r
	}
	return len(serviceOrder)
}

// prepare lower cases, trims and punycode decodes the name.
func prepare(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if !strings.Contains(name, "xn--") {
		return name
	}
	decoded, err := idna.Punycode.ToUnicode(name)
	if err != nil {
		return name
	}
	return decoded
}

func (im *impl) route(name string) (domain.NamingService, string, error) {
	name = prepare(name)
	for _, s := range im.services {
		if s.IsSupportedDomain(name) {
			return s, name, nil
		}
	}
	return nil, name, &domain.ResolutionError{Code: domain.UnsupportedDomain, Domain: name}
}

func (im *impl) IsSupportedDomain(name string) bool {
	_, _, err := im.route(name)
	return err == nil
}

func (im *impl) ServiceName(name string) (domain.ServiceName, error) {
	s, _, err := im.route(name)
	if err != nil {
		return "", err
	}
	return s.ServiceName(), nil
}

func (im *impl) Namehash(name string) (string, error) {
	s, name, err := im.route(name)
	if err != nil {
		return "", err
	}
	return s.Namehash(name)
}

func (im *impl) Childhash(parent, label string, service domain.ServiceName) (string, error) {
	for _, s := range im.services {
		if s.ServiceName() == service {
			return s.Childhash(parent, prepare(label))
		}
	}
	return "", &domain.ResolutionError{Code: domain.UnsupportedService, Service: service.String()}
}

func (im *impl) Resolve(c ctx.Ctx, name string) (*domain.ResolutionResponse, error) {
	s, name, err := im.route(name)
	if err != nil {
		return nil, err
	}
	return s.Resolve(c, name)
}

func (im *impl) Owner(c ctx.Ctx, name string) (string, error) {
	s, name, err := im.route(name)
	if err != nil {
		return "", err
	}
	return s.Owner(c, name)
}

func (im *impl) Resolver(c ctx.Ctx, name string) (string, error) {
	s, name, err := im.route(name)
	if err != nil {
		return "", err
	}
	return s.Resolver(c, name)
}

func (im *impl) Record(c ctx.Ctx, name, key string) (string, error) {
	s, name, err := im.route(name)
	if err != nil {
		return "", err
	}
	return s.Record(c, name, key)
}

func (im *impl) Records(c ctx.Ctx, name string, keys []string) (map[string]string, error) {
	s, name, err := im.route(name)
	if err != nil {
		return nil, err
	}
	return s.Records(c, name, keys)
}

func (im *impl) AllRecords(c ctx.Ctx, name string) (map[string]string, error) {
	s, name, err := im.route(name)
	if err != nil {
		return nil, err
	}
	return s.AllRecords(c, name)
}

func (im *impl) Addr(c ctx.Ctx, name, ticker string) (string, error) {
	return im.Record(c, name, "crypto."+strings.ToUpper(ticker)+".address")
}

func (im *impl) MultiChainAddr(c ctx.Ctx, name, ticker, chain string) (string, error) {
	return im.Record(c, name, "crypto."+strings.ToUpper(ticker)+".version."+strings.ToUpper(chain)+".address")
}

func (im *impl) IpfsHash(c ctx.Ctx, name string) (string, error) {
	return im.firstRecord(c, name, "dweb.ipfs.hash", "ipfs.html.value")
}

func (im *impl) HttpUrl(c ctx.Ctx, name string) (string, error) {
	return im.firstRecord(c, name, "browser.redirect_url", "ipfs.redirect_domain.value")
}

func (im *impl) Email(c ctx.Ctx, name string) (string, error) {
	return im.Record(c, name, "whois.email.value")
}

func (im *impl) ChatId(c ctx.Ctx, name string) (string, error) {
	return im.Record(c, name, "gundb.username.value")
}

func (im *impl) ChatPk(c ctx.Ctx, name string) (string, error) {
	return im.Record(c, name, "gundb.public_key.value")
}

// firstRecord returns the first non empty value among keys, RecordNotFound
// on the first key otherwise.
func (im *impl) firstRecord(c ctx.Ctx, name string, keys ...string) (string, error) {
	values, err := im.Records(c, name, keys)
	if err != nil {
		return "", err
	}
	for _, k := range keys {
		if v := values[k]; v != "" {
			return v, nil
		}
	}
	return "", &domain.ResolutionError{Code: domain.RecordNotFound, Domain: prepare(name), Record: keys[0]}
}

func (im *impl) Dns(c ctx.Ctx, name string, types []string) ([]domain.DnsRecord, error) {
	canonical := make([]string, 0, len(types))
	keys := []string{"dns.ttl"}
	for _, t := range types {
		u, ok := domain.DnsType(t)
		if !ok {
			return nil, xerrors.Errorf("dns type %q: %w", t, domain.ErrBadParamInput)
		}
		canonical = append(canonical, u)
		keys = append(keys, "dns."+u, "dns."+u+".ttl")
	}

	values, err := im.Records(c, name, keys)
	if err != nil {
		return nil, err
	}

	defaultTtl := parseTtl(values["dns.ttl"], domain.DefaultDnsTtl)
	out := []domain.DnsRecord{}
	for _, t := range canonical {
		raw := values["dns."+t]
		if raw == "" {
			continue
		}
		var data []string
		if err := json.Unmarshal([]byte(raw), &data); err != nil {
			c.WithFields(log.Fields{
				"domain": name,
				"type":   t,
				"err":    err,
			}).Warn("malformed dns record")
			continue
		}
		ttl := parseTtl(values["dns."+t+".ttl"], defaultTtl)
		for _, d := range data {
			out = append(out, domain.DnsRecord{Type: t, TTL: ttl, Data: d})
		}
	}
	return out, nil
}

func (im *impl) Twitter(c ctx.Ctx, name string) (string, error) {
	s, name, err := im.route(name)
	if err != nil {
		return "", err
	}
	return s.Twitter(c, name)
}

// Reverse asks every service in order and returns the answer of the first
// one that supports reverse resolution.
func (im *impl) Reverse(c ctx.Ctx, address, currency string) (string, error) {
	for _, s := range im.services {
		name, err := s.Reverse(c, address, strings.ToUpper(currency))
		if errors.Is(err, domain.ErrUnsupportedMethod) {
			continue
		}
		return name, err
	}
	return "", &domain.ResolutionError{Code: domain.UnsupportedMethod, Method: "reverse"}
}

type ownerResult struct {
	name  string
	owner *string
}

// BatchOwners resolves owners concurrently. Names without an owner map to
// nil; the first transport error aborts the batch.
func (im *impl) BatchOwners(c ctx.Ctx, names []string) (map[string]*string, error) {
	owners := make(map[string]*string, len(names))
	if len(names) == 0 {
		return owners, nil
	}

	b := goroutines.NewBatch(batchWorkers, goroutines.WithBatchSize(len(names)))
	defer b.Close()
	for i := 0; i < len(names); i++ {
		name := names[i]
		b.Queue(func() (interface{}, error) {
			owner, err := im.Owner(c, name)
			var rerr *domain.ResolutionError
			if errors.As(err, &rerr) {
				return &ownerResult{name: name}, nil
			} else if err != nil {
				return nil, err
			}
			return &ownerResult{name: name, owner: &owner}, nil
		})
	}
	b.QueueComplete()

	var firstErr error
	for ret := range b.Results() {
		if ret.Error() != nil {
			c.WithField("err", ret.Error()).Error("owner batch error result")
			if firstErr == nil {
				firstErr = ret.Error()
			}
			continue
		}
		r := ret.Value().(*ownerResult)
		owners[r.name] = r.owner
	}
	if firstErr != nil {
		return nil, firstErr
	}
	return owners, nil
}

func parseTtl(v string, fallback uint32) uint32 {
	ttl, err := strconv.ParseUint(strings.TrimSpace(v), 10, 32)
	if err != nil {
		return fallback
	}
	return uint32(ttl)
}
