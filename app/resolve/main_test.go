package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/resolution/base/ctx"
	"github.com/x-xyz/resolution/domain"
	"github.com/x-xyz/resolution/domain/mocks"
)

type resolveSuite struct {
	suite.Suite

	ctx ctx.Ctx
	uc  *mocks.ResolutionUsecase
}

func TestResolveSuite(t *testing.T) {
	suite.Run(t, new(resolveSuite))
}

func (s *resolveSuite) SetupTest() {
	s.ctx = ctx.Background()
	s.uc = &mocks.ResolutionUsecase{}
}

func (s *resolveSuite) TearDownTest() {
	s.uc.AssertExpectations(s.T())
}

func (s *resolveSuite) TestFullResolution() {
	exp := domain.UnclaimedDomainResponse()
	s.uc.On("Resolve", mock.Anything, "nobody.crypto").Return(exp, nil).Once()

	out, err := run(s.ctx, s.uc, &options{domain: "nobody.crypto"})
	s.NoError(err)
	s.Equal(exp, out)
}

func (s *resolveSuite) TestSelected() {
	s.uc.On("Namehash", "brad.crypto").Return("0x756e4e998dbffd803c21d23b06cd855cdc7a4b57706c95964a37e24b47c10fc9", nil).Once()
	s.uc.On("Owner", mock.Anything, "brad.crypto").Return("0x8aaD44321A86b170879d7A244c1e8d360c99DdA8", nil).Once()
	s.uc.On("Records", mock.Anything, "brad.crypto", []string{"crypto.ETH.address"}).
		Return(map[string]string{"crypto.ETH.address": "0x8aaD44321A86b170879d7A244c1e8d360c99DdA8"}, nil).Once()

	out, err := run(s.ctx, s.uc, &options{
		domain:   "brad.crypto",
		keys:     []string{"crypto.ETH.address"},
		owner:    true,
		namehash: true,
	})
	s.NoError(err)
	s.Equal(map[string]interface{}{
		"namehash": "0x756e4e998dbffd803c21d23b06cd855cdc7a4b57706c95964a37e24b47c10fc9",
		"owner":    "0x8aaD44321A86b170879d7A244c1e8d360c99DdA8",
		"records":  map[string]string{"crypto.ETH.address": "0x8aaD44321A86b170879d7A244c1e8d360c99DdA8"},
	}, out)
}

func (s *resolveSuite) TestError() {
	transportErr := errors.New("connection refused")
	s.uc.On("Resolver", mock.Anything, "brad.zil").Return("", transportErr).Once()

	_, err := run(s.ctx, s.uc, &options{domain: "brad.zil", resolver: true})
	s.Equal(transportErr, err)
}

func (s *resolveSuite) TestRequiresDomain() {
	cmd := newCmd()
	cmd.SetArgs([]string{"--owner"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	s.Error(cmd.Execute())
}
