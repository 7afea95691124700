package rns

import (
	"errors"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/resolution/base/abi"
	"github.com/x-xyz/resolution/base/ctx"
	"github.com/x-xyz/resolution/base/namehash"
	"github.com/x-xyz/resolution/domain"
	"github.com/x-xyz/resolution/service/provider/mocks"
	"github.com/x-xyz/resolution/service/provider/providertest"
)

var (
	registry = common.HexToAddress("0xcb868aeabd31e2b66f74e9a55cf064abb31a4ad5")
	resolver = common.HexToAddress("0xd1220a0cf47c7b9be7a2e6ba89f429762e7b9adb")
	owner    = common.HexToAddress("0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed")
	wallet   = common.HexToAddress("0xfb6916095ca1df60bb79ce92ce3ea74c37c5d359")
)

type rnsSuite struct {
	suite.Suite

	ctx      ctx.Ctx
	provider *mocks.Provider
	im       *impl
}

func TestRnsSuite(t *testing.T) {
	suite.Run(t, new(rnsSuite))
}

func (s *rnsSuite) SetupTest() {
	s.ctx = ctx.Background()
	s.provider = &mocks.Provider{}
	ns, err := New(s.ctx, Config{Network: Mainnet, Provider: s.provider})
	s.Require().NoError(err)
	s.im = ns.(*impl)
}

func (s *rnsSuite) TearDownTest() {
	s.provider.AssertExpectations(s.T())
}

func (s *rnsSuite) mockRegistry(name string, owner, resolver common.Address) {
	node := namehash.Keccak256.Hash(name)
	providertest.EthCall(s.provider, registry, abi.ENSRegistryABI, "owner", []interface{}{node}, owner).Once()
	if owner != (common.Address{}) {
		providertest.EthCall(s.provider, registry, abi.ENSRegistryABI, "resolver", []interface{}{node}, resolver).Once()
	}
}

func (s *rnsSuite) TestNew() {
	_, err := New(s.ctx, Config{})
	s.ErrorIs(err, domain.ErrUnspecifiedNetwork)

	_, err = New(s.ctx, Config{Network: "regtest"})
	s.ErrorIs(err, domain.ErrUnsupportedNetwork)

	_, err = New(s.ctx, Config{Network: Mainnet, RegistryAddress: "0xzz", Provider: s.provider})
	s.ErrorIs(err, domain.ErrInvalidRegistryAddress)

	ns, err := New(s.ctx, Config{Network: Testnet})
	s.Require().NoError(err)
	im := ns.(*impl)
	s.Equal(int64(31), im.network)
	s.Equal("https://public-node.testnet.rsk.co", im.url)
	s.Equal(common.HexToAddress("0x7d284aaac6e925aad802a53c0c69efe3764597b8"), im.registry)
}

func (s *rnsSuite) TestNewAutoNetwork() {
	s.provider.On("Request", mock.Anything, mock.Anything, "net_version").
		Run(providertest.Respond("31")).Return(nil).Once()
	ns, err := NewAutoNetwork(s.ctx, Config{Provider: s.provider})
	s.Require().NoError(err)
	s.Equal(int64(31), ns.(*impl).network)

	s.provider.On("Request", mock.Anything, mock.Anything, "net_version").
		Run(providertest.Respond("1")).Return(nil).Once()
	_, err = NewAutoNetwork(s.ctx, Config{Provider: s.provider})
	s.ErrorIs(err, domain.ErrUnsupportedNetwork)
}

func (s *rnsSuite) TestNamehash() {
	res, err := s.im.Namehash("brad.rsk")
	s.NoError(err)
	s.Equal("0x3e572204652a5d1fa5cea0b4aba6d226dc42a28759db32440444042ee6d7a95a", res)

	res, err = s.im.Namehash("rsk")
	s.NoError(err)
	s.Equal("0x0cd5c10192478cd220936e91293afc15e3f6de4d419de5de7506b679cbdd8ec4", res)

	_, err = s.im.Namehash("brad..rsk")
	s.ErrorIs(err, domain.ErrUnsupportedDomain)
}

func (s *rnsSuite) TestResolve() {
	node := namehash.Keccak256.Hash("brad.rsk")
	s.mockRegistry("brad.rsk", owner, resolver)
	providertest.EthCall(s.provider, registry, abi.ENSRegistryABI, "ttl", []interface{}{node}, uint64(0))
	providertest.EthCall(s.provider, resolver, abi.ENSResolverABI, "addr", []interface{}{node}, wallet)

	res, err := s.im.Resolve(s.ctx, "brad.rsk")
	s.Require().NoError(err)
	s.Equal(map[string]string{"RSK": "0xFb6916095cA1Df60bb79ce92cE3EA74c37c5d359"}, res.Addresses)
	s.Equal("0xD1220A0Cf47c7B9BE7a2e6ba89F429762E7B9adB", res.Meta.Resolver)
	s.Require().NotNil(res.Meta.Owner)
	s.Equal("0x5aaEB6053f3e94c9b9a09f33669435E7ef1bEAeD", *res.Meta.Owner)
	s.Equal(domain.ServiceRNS, res.Meta.Type)
	s.Equal(0, res.Meta.Ttl)
}

func (s *rnsSuite) TestResolveUnclaimed() {
	s.mockRegistry("nobody.rsk", common.Address{}, common.Address{})

	res, err := s.im.Resolve(s.ctx, "nobody.rsk")
	s.NoError(err)
	s.Equal(domain.UnclaimedDomainResponse(), res)
}

func (s *rnsSuite) TestResolver() {
	s.mockRegistry("noresolver.rsk", owner, common.Address{})
	_, err := s.im.Resolver(s.ctx, "noresolver.rsk")
	s.ErrorIs(err, domain.ErrUnspecifiedResolver)

	s.mockRegistry("nobody.rsk", common.Address{}, common.Address{})
	_, err = s.im.Resolver(s.ctx, "nobody.rsk")
	s.ErrorIs(err, domain.ErrUnregisteredDomain)
}

func (s *rnsSuite) TestRecords() {
	node := namehash.Keccak256.Hash("brad.rsk")
	s.mockRegistry("brad.rsk", owner, resolver)
	providertest.EthCall(s.provider, resolver, abi.ENSResolverABI, "addr", []interface{}{node}, wallet)

	res, err := s.im.Records(s.ctx, "brad.rsk", []string{"crypto.RSK.address", "crypto.ETH.address"})
	s.NoError(err)
	s.Equal(map[string]string{"crypto.RSK.address": "0xFb6916095cA1Df60bb79ce92cE3EA74c37c5d359"}, res)

	s.mockRegistry("brad.rsk", owner, resolver)
	_, err = s.im.Record(s.ctx, "brad.rsk", "crypto.ETH.address")
	s.ErrorIs(err, domain.ErrRecordNotFound)
}

func (s *rnsSuite) TestTransportError() {
	transportErr := errors.New("dial tcp: i/o timeout")
	s.provider.On("Request", mock.Anything, mock.Anything, "eth_call", mock.Anything, "latest").Return(transportErr)

	_, err := s.im.Resolver(s.ctx, "brad.rsk")
	s.Equal(transportErr, err)
}

func (s *rnsSuite) TestUnsupportedMethods() {
	_, err := s.im.AllRecords(s.ctx, "brad.rsk")
	s.ErrorIs(err, domain.ErrUnsupportedMethod)
	_, err = s.im.Twitter(s.ctx, "brad.rsk")
	s.ErrorIs(err, domain.ErrUnsupportedMethod)
	_, err = s.im.Reverse(s.ctx, owner.Hex(), "RSK")
	s.ErrorIs(err, domain.ErrUnsupportedMethod)
}

func (s *rnsSuite) TestDefaultUrl() {
	s.Equal("https://public-node.rsk.co", DefaultUrl(Mainnet))
	s.Equal("https://public-node.testnet.rsk.co", DefaultUrl(Testnet))
}
