package usecase

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/resolution/base/ctx"
	"github.com/x-xyz/resolution/base/namehash"
	"github.com/x-xyz/resolution/domain"
	"github.com/x-xyz/resolution/service/provider/mocks"
	"github.com/x-xyz/resolution/service/provider/providertest"
	"github.com/x-xyz/resolution/service/zns"
)

const (
	znsRegistryHex = "9611c53BE6d1b32058b2747bdeCECed7e1216793"
	znsResolverHex = "dAC22230ADfE4601F00631eaE92Df6D77f054891"
)

// backendSuite drives the usecase against a real zns backend so record
// structuring runs on every lookup.
type backendSuite struct {
	suite.Suite

	ctx      ctx.Ctx
	provider *mocks.Provider
	im       domain.ResolutionUsecase
}

func TestBackendSuite(t *testing.T) {
	suite.Run(t, new(backendSuite))
}

func (s *backendSuite) SetupTest() {
	s.ctx = ctx.Background()
	s.provider = &mocks.Provider{}
	ns, err := zns.New(s.ctx, zns.Config{Network: zns.Mainnet, Provider: s.provider})
	s.Require().NoError(err)
	s.im = New(ns)
}

func (s *backendSuite) TearDownTest() {
	s.provider.AssertExpectations(s.T())
}

func (s *backendSuite) mockDomain(name string, values map[string]string) {
	node := namehash.Sha256.HashHex(name)
	state := map[string]interface{}{}
	if values != nil {
		state["records"] = map[string]interface{}{
			node: map[string]interface{}{
				"argtypes":    []string{},
				"arguments":   []string{"0x2d418942dce1afa02d0733a2000c71b371a6ac07", "0xdac22230adfe4601f00631eae92df6d77f054891"},
				"constructor": "Record",
			},
		}
	}
	s.provider.On("Request", mock.Anything, mock.Anything, "GetSmartContractSubState", znsRegistryHex, "records", []string{node}).
		Run(providertest.Respond(state)).
		Return(nil).
		Once()
	if values != nil {
		s.provider.On("Request", mock.Anything, mock.Anything, "GetSmartContractSubState", znsResolverHex, "records", []string{}).
			Run(providertest.Respond(map[string]interface{}{"records": values})).
			Return(nil).
			Once()
	}
}

var dnsRecords = map[string]string{
	"crypto.ETH.address": "0xe7474D07fD2FA286e7e0aa23cd107F8379085037",
	"dns.A":              "[\"10.0.0.1\"]",
	"dns.A.ttl":          "90",
}

func (s *backendSuite) TestResolveWithNestedDnsTtl() {
	s.mockDomain("dns-records.zil", dnsRecords)

	res, err := s.im.Resolve(s.ctx, "dns-records.zil")
	s.Require().NoError(err)
	s.Equal(map[string]string{"ETH": "0xe7474D07fD2FA286e7e0aa23cd107F8379085037"}, res.Addresses)
	v, ok := res.Records.Lookup("dns.A")
	s.True(ok)
	s.Equal("[\"10.0.0.1\"]", v)
}

func (s *backendSuite) TestOwnerWithNestedDnsTtl() {
	s.mockDomain("dns-records.zil", dnsRecords)

	res, err := s.im.Owner(s.ctx, "dns-records.zil")
	s.NoError(err)
	s.Equal("zil194qcjskuuxh6qtg8xw3qqrr3kdc6dtq8ct6j9s", res)
}

func (s *backendSuite) TestBatchOwnersWithNestedDnsTtl() {
	s.mockDomain("dns-records.zil", dnsRecords)
	s.mockDomain("nobody.zil", nil)

	res, err := s.im.BatchOwners(s.ctx, []string{"dns-records.zil", "nobody.zil"})
	s.Require().NoError(err)
	s.Len(res, 2)
	s.Require().NotNil(res["dns-records.zil"])
	s.Equal("zil194qcjskuuxh6qtg8xw3qqrr3kdc6dtq8ct6j9s", *res["dns-records.zil"])
	s.Nil(res["nobody.zil"])
}
