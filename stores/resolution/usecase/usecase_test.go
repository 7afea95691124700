package usecase

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/resolution/base/ctx"
	"github.com/x-xyz/resolution/domain"
	"github.com/x-xyz/resolution/domain/mocks"
)

func service(name domain.ServiceName, tlds ...string) *mocks.NamingService {
	m := &mocks.NamingService{}
	m.On("ServiceName").Return(name).Maybe()
	m.On("IsSupportedDomain", mock.Anything).Return(func(d string) bool {
		for _, tld := range tlds {
			if strings.HasSuffix(d, "."+tld) {
				return true
			}
		}
		return false
	}).Maybe()
	return m
}

type usecaseSuite struct {
	suite.Suite

	ctx ctx.Ctx
	cns *mocks.NamingService
	zns *mocks.NamingService
	ens *mocks.NamingService
	rns *mocks.NamingService
	im  *impl
}

func TestUsecaseSuite(t *testing.T) {
	suite.Run(t, new(usecaseSuite))
}

func (s *usecaseSuite) SetupTest() {
	s.ctx = ctx.Background()
	s.cns = service(domain.ServiceCNS, "crypto", "coin")
	s.zns = service(domain.ServiceZNS, "zil")
	s.ens = service(domain.ServiceENS, "eth", "xyz")
	s.rns = service(domain.ServiceRNS, "rsk")
	s.im = New(s.rns, s.ens, s.zns, s.cns).(*impl)
}

func (s *usecaseSuite) TearDownTest() {
	s.cns.AssertExpectations(s.T())
	s.zns.AssertExpectations(s.T())
	s.ens.AssertExpectations(s.T())
	s.rns.AssertExpectations(s.T())
}

func (s *usecaseSuite) TestOrder() {
	names := []domain.ServiceName{}
	for _, svc := range s.im.services {
		names = append(names, svc.ServiceName())
	}
	s.Equal([]domain.ServiceName{domain.ServiceCNS, domain.ServiceZNS, domain.ServiceENS, domain.ServiceRNS}, names)
}

func (s *usecaseSuite) TestServiceName() {
	cases := []struct {
		name   string
		domain string
		exp    domain.ServiceName
		err    error
	}{
		{"cns", "brad.crypto", domain.ServiceCNS, nil},
		{"cns upper case", "  Brad.Crypto ", domain.ServiceCNS, nil},
		{"zns", "brad.zil", domain.ServiceZNS, nil},
		{"ens", "brad.eth", domain.ServiceENS, nil},
		{"rns", "brad.rsk", domain.ServiceRNS, nil},
		{"unknown", "brad.unknown", "", domain.ErrUnsupportedDomain},
	}
	for _, c := range cases {
		res, err := s.im.ServiceName(c.domain)
		if c.err != nil {
			s.ErrorIs(err, c.err, c.name)
			continue
		}
		s.NoError(err, c.name)
		s.Equal(c.exp, res, c.name)
	}
	s.True(s.im.IsSupportedDomain("brad.zil"))
	s.False(s.im.IsSupportedDomain("brad.unknown"))
}

func (s *usecaseSuite) TestPrepare() {
	s.Equal("brad.crypto", prepare(" BRAD.crypto\n"))
	s.Equal("bücher.crypto", prepare("xn--bcher-kva.crypto"))
}

func (s *usecaseSuite) TestNamehash() {
	s.zns.On("Namehash", "brad.zil").Return("0x5fc604da00f502da70bfbc618088c0ce468ec9d18d05540935ae4118e8f50787", nil).Once()
	res, err := s.im.Namehash("Brad.zil")
	s.NoError(err)
	s.Equal("0x5fc604da00f502da70bfbc618088c0ce468ec9d18d05540935ae4118e8f50787", res)

	_, err = s.im.Namehash("brad.unknown")
	s.ErrorIs(err, domain.ErrUnsupportedDomain)
}

func (s *usecaseSuite) TestChildhash() {
	s.ens.On("Childhash", "0x93cdeb708b7545dc668eb9280176169d1c33cfd8ed6f04690a0bcc88a93fc4ae", "beresnev").
		Return("0x5d6eec39a7c9a16aea41a4b6e0c5e8a02e3ac0a1aa06dd9f1f17b1bb2a31d2b6", nil).Once()
	res, err := s.im.Childhash("0x93cdeb708b7545dc668eb9280176169d1c33cfd8ed6f04690a0bcc88a93fc4ae", "Beresnev", domain.ServiceENS)
	s.NoError(err)
	s.Equal("0x5d6eec39a7c9a16aea41a4b6e0c5e8a02e3ac0a1aa06dd9f1f17b1bb2a31d2b6", res)

	_, err = s.im.Childhash("0x00", "brad", domain.ServiceName("UD"))
	s.ErrorIs(err, domain.ErrUnsupportedService)
}

func (s *usecaseSuite) TestResolve() {
	exp := domain.UnclaimedDomainResponse()
	s.rns.On("Resolve", mock.Anything, "brad.rsk").Return(exp, nil).Once()
	res, err := s.im.Resolve(s.ctx, "BRAD.rsk")
	s.NoError(err)
	s.Equal(exp, res)

	_, err = s.im.Resolve(s.ctx, "brad.unknown")
	s.ErrorIs(err, domain.ErrUnsupportedDomain)
}

func (s *usecaseSuite) TestOwnerAndResolver() {
	s.cns.On("Owner", mock.Anything, "brad.crypto").Return("0x8aaD44321A86b170879d7A244c1e8d360c99DdA8", nil).Once()
	s.cns.On("Resolver", mock.Anything, "brad.crypto").Return("0xb66DcE2DA6afAAa98F2013446dBCB0f4B0ab2842", nil).Once()

	owner, err := s.im.Owner(s.ctx, "brad.crypto")
	s.NoError(err)
	s.Equal("0x8aaD44321A86b170879d7A244c1e8d360c99DdA8", owner)

	resolver, err := s.im.Resolver(s.ctx, "brad.crypto")
	s.NoError(err)
	s.Equal("0xb66DcE2DA6afAAa98F2013446dBCB0f4B0ab2842", resolver)
}

func (s *usecaseSuite) TestAddr() {
	s.cns.On("Record", mock.Anything, "brad.crypto", "crypto.ETH.address").Return("0x8aaD44321A86b170879d7A244c1e8d360c99DdA8", nil).Once()
	res, err := s.im.Addr(s.ctx, "brad.crypto", "eth")
	s.NoError(err)
	s.Equal("0x8aaD44321A86b170879d7A244c1e8d360c99DdA8", res)

	s.cns.On("Record", mock.Anything, "brad.crypto", "crypto.USDT.version.ERC20.address").Return("0xe7474D07fD2FA286e7e0aa23cd107F8379085037", nil).Once()
	res, err = s.im.MultiChainAddr(s.ctx, "brad.crypto", "usdt", "erc20")
	s.NoError(err)
	s.Equal("0xe7474D07fD2FA286e7e0aa23cd107F8379085037", res)
}

func (s *usecaseSuite) TestConvenienceRecords() {
	s.zns.On("Record", mock.Anything, "brad.zil", "whois.email.value").Return("brad@example.com", nil).Once()
	s.zns.On("Record", mock.Anything, "brad.zil", "gundb.username.value").Return("0x47992daf742acc24082842752fdc9c875c87c56864fee59d8b779a91933b159e48961566eec6bd6ce3ea2441c6cb4f112d0eb8e8855cc9cf7647f0d9c82f00831c", nil).Once()
	s.zns.On("Record", mock.Anything, "brad.zil", "gundb.public_key.value").Return("pqeBHabDQdCHhbdivgNEc74QO-x8CPGXq4PKWgfIzhY.7WJR5cZFuSyh1bFwx0GWzjmrim0T5Y6Bp0SSK0im3nI", nil).Once()

	res, err := s.im.Email(s.ctx, "brad.zil")
	s.NoError(err)
	s.Equal("brad@example.com", res)
	res, err = s.im.ChatId(s.ctx, "brad.zil")
	s.NoError(err)
	s.Equal("0x47992daf742acc24082842752fdc9c875c87c56864fee59d8b779a91933b159e48961566eec6bd6ce3ea2441c6cb4f112d0eb8e8855cc9cf7647f0d9c82f00831c", res)
	res, err = s.im.ChatPk(s.ctx, "brad.zil")
	s.NoError(err)
	s.Equal("pqeBHabDQdCHhbdivgNEc74QO-x8CPGXq4PKWgfIzhY.7WJR5cZFuSyh1bFwx0GWzjmrim0T5Y6Bp0SSK0im3nI", res)
}

func (s *usecaseSuite) TestIpfsHash() {
	keys := []string{"dweb.ipfs.hash", "ipfs.html.value"}

	s.cns.On("Records", mock.Anything, "brad.crypto", keys).Return(map[string]string{
		"dweb.ipfs.hash":  "",
		"ipfs.html.value": "QmTiqc12wo2pBsGa9XsbpavkhrjFiyuSWsKyffvZqVGtut",
	}, nil).Once()
	res, err := s.im.IpfsHash(s.ctx, "brad.crypto")
	s.NoError(err)
	s.Equal("QmTiqc12wo2pBsGa9XsbpavkhrjFiyuSWsKyffvZqVGtut", res)

	s.cns.On("Records", mock.Anything, "homecakes.crypto", keys).Return(map[string]string{
		"dweb.ipfs.hash":  "QmVJ26hBrwwNAPVmLavEFXDUunNDXeFSeMPmHuPxKe6dJv",
		"ipfs.html.value": "QmTiqc12wo2pBsGa9XsbpavkhrjFiyuSWsKyffvZqVGtut",
	}, nil).Once()
	res, err = s.im.IpfsHash(s.ctx, "homecakes.crypto")
	s.NoError(err)
	s.Equal("QmVJ26hBrwwNAPVmLavEFXDUunNDXeFSeMPmHuPxKe6dJv", res)

	s.cns.On("Records", mock.Anything, "empty.crypto", keys).Return(map[string]string{}, nil).Once()
	_, err = s.im.IpfsHash(s.ctx, "empty.crypto")
	s.ErrorIs(err, domain.ErrRecordNotFound)
}

func (s *usecaseSuite) TestHttpUrl() {
	s.zns.On("Records", mock.Anything, "brad.zil", []string{"browser.redirect_url", "ipfs.redirect_domain.value"}).Return(map[string]string{
		"ipfs.redirect_domain.value": "www.unstoppabledomains.com",
	}, nil).Once()
	res, err := s.im.HttpUrl(s.ctx, "brad.zil")
	s.NoError(err)
	s.Equal("www.unstoppabledomains.com", res)
}

func (s *usecaseSuite) TestDns() {
	keys := []string{"dns.ttl", "dns.A", "dns.A.ttl", "dns.AAAA", "dns.AAAA.ttl"}
	s.cns.On("Records", mock.Anything, "udtestdev-check-ipfs.crypto", keys).Return(map[string]string{
		"dns.ttl":      "128",
		"dns.A":        `["10.0.0.1","10.0.0.3"]`,
		"dns.A.ttl":    "98",
		"dns.AAAA":     "",
		"dns.AAAA.ttl": "",
	}, nil).Once()

	res, err := s.im.Dns(s.ctx, "udtestdev-check-ipfs.crypto", []string{"a", "AAAA"})
	s.NoError(err)
	s.Equal([]domain.DnsRecord{
		{Type: "A", TTL: 98, Data: "10.0.0.1"},
		{Type: "A", TTL: 98, Data: "10.0.0.3"},
	}, res)
}

func (s *usecaseSuite) TestDnsDefaultTtl() {
	keys := []string{"dns.ttl", "dns.A", "dns.A.ttl", "dns.CNAME", "dns.CNAME.ttl"}
	s.cns.On("Records", mock.Anything, "brad.crypto", keys).Return(map[string]string{
		"dns.A":     `["10.0.0.1"]`,
		"dns.CNAME": `not json`,
	}, nil).Once()

	res, err := s.im.Dns(s.ctx, "brad.crypto", []string{"A", "CNAME"})
	s.NoError(err)
	s.Equal([]domain.DnsRecord{{Type: "A", TTL: domain.DefaultDnsTtl, Data: "10.0.0.1"}}, res)

	_, err = s.im.Dns(s.ctx, "brad.crypto", []string{"NOPE"})
	s.ErrorIs(err, domain.ErrBadParamInput)
}

func (s *usecaseSuite) TestTwitter() {
	s.cns.On("Twitter", mock.Anything, "ryan.crypto").Return("derainberk", nil).Once()
	res, err := s.im.Twitter(s.ctx, "ryan.crypto")
	s.NoError(err)
	s.Equal("derainberk", res)

	s.zns.On("Twitter", mock.Anything, "brad.zil").Return("", &domain.ResolutionError{Code: domain.UnsupportedMethod}).Once()
	_, err = s.im.Twitter(s.ctx, "brad.zil")
	s.ErrorIs(err, domain.ErrUnsupportedMethod)
}

func (s *usecaseSuite) TestReverse() {
	unsupported := &domain.ResolutionError{Code: domain.UnsupportedMethod, Method: "reverse"}
	addr := "0xb0E7a465D255aE83eb7F8a50504F3867B945164C"
	s.cns.On("Reverse", mock.Anything, addr, "ETH").Return("", unsupported).Once()
	s.zns.On("Reverse", mock.Anything, addr, "ETH").Return("", unsupported).Once()
	s.ens.On("Reverse", mock.Anything, addr, "ETH").Return("adrian.argent.xyz", nil).Once()

	res, err := s.im.Reverse(s.ctx, addr, "eth")
	s.NoError(err)
	s.Equal("adrian.argent.xyz", res)
}

func (s *usecaseSuite) TestReverseUnsupported() {
	unsupported := &domain.ResolutionError{Code: domain.UnsupportedMethod, Method: "reverse"}
	for _, m := range []*mocks.NamingService{s.cns, s.zns, s.ens, s.rns} {
		m.On("Reverse", mock.Anything, "0x00", "ETH").Return("", unsupported).Once()
	}
	_, err := s.im.Reverse(s.ctx, "0x00", "ETH")
	s.ErrorIs(err, domain.ErrUnsupportedMethod)
}

func (s *usecaseSuite) TestBatchOwners() {
	s.cns.On("Owner", mock.Anything, "brad.crypto").Return("0x8aaD44321A86b170879d7A244c1e8d360c99DdA8", nil).Once()
	s.zns.On("Owner", mock.Anything, "brad.zil").Return("zil1rzd8ln2j9qa5m7wmq8j5kz3u2ugj3lcjqjg0dl", nil).Once()
	s.ens.On("Owner", mock.Anything, "nobody.eth").Return("", &domain.ResolutionError{Code: domain.UnregisteredDomain}).Once()

	res, err := s.im.BatchOwners(s.ctx, []string{"brad.crypto", "brad.zil", "nobody.eth", "brad.unknown"})
	s.Require().NoError(err)
	s.Len(res, 4)
	s.Require().NotNil(res["brad.crypto"])
	s.Equal("0x8aaD44321A86b170879d7A244c1e8d360c99DdA8", *res["brad.crypto"])
	s.Require().NotNil(res["brad.zil"])
	s.Equal("zil1rzd8ln2j9qa5m7wmq8j5kz3u2ugj3lcjqjg0dl", *res["brad.zil"])
	s.Nil(res["nobody.eth"])
	s.Nil(res["brad.unknown"])

	res, err = s.im.BatchOwners(s.ctx, nil)
	s.NoError(err)
	s.Empty(res)
}

func (s *usecaseSuite) TestBatchOwnersTransportError() {
	transportErr := errors.New("connection refused")
	s.cns.On("Owner", mock.Anything, "brad.crypto").Return("", transportErr).Once()

	_, err := s.im.BatchOwners(s.ctx, []string{"brad.crypto"})
	s.Equal(transportErr, err)
}
