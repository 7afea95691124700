package domain

import (
	"fmt"
	"strings"

	"github.com/miekg/dns"
)

const DefaultDnsTtl = 300

type DnsRecord struct {
	Type string `json:"type"`
	TTL  uint32 `json:"TTL"`
	Data string `json:"data"`
}

// RR renders the record as a resource record owned by name.
func (r DnsRecord) RR(name string) (dns.RR, error) {
	rr, err := dns.NewRR(fmt.Sprintf("%s %d IN %s %s", dns.Fqdn(name), r.TTL, r.Type, r.Data))
	if err != nil {
		return nil, err
	}
	if rr == nil {
		return nil, ErrInvalidDnsRecord
	}
	return rr, nil
}

// DnsType returns the canonical name of a dns record type, false when the
// type is unknown.
func DnsType(t string) (string, bool) {
	u := strings.ToUpper(strings.TrimSpace(t))
	if _, ok := dns.StringToType[u]; !ok {
		return "", false
	}
	return u, true
}
