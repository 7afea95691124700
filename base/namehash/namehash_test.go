package namehash

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/suite"
)

type namehashSuite struct {
	suite.Suite
}

func TestNamehashSuite(t *testing.T) {
	suite.Run(t, new(namehashSuite))
}

func (s *namehashSuite) TestKeccak() {
	tests := []struct {
		domain string
		exp    string
	}{
		{"", "0x0000000000000000000000000000000000000000000000000000000000000000"},
		{"eth", "0x93cdeb708b7545dc668eb9280176169d1c33cfd8ed6f04690a0bcc88a93fc4ae"},
		{"foo.eth", "0xde9b09fd7c5f901e23a3f19fecc54828e9c848539801e86591bd9801b019f84f"},
		{"brad.eth", "0xe2cb672a04d6270338f15a428216ca714514dc01fdbdd76e97038a8d4080e01c"},
		{"crypto", "0x0f4a10a4f46c288cea365fcf45cccf0e9d901b945b9829ccdb54c10dc3cb7a6f"},
		{"brad.crypto", "0x756e4e998dbffd803c21d23b06cd855cdc7a4b57706c95964a37e24b47c10fc9"},
		{"rsk", "0x0cd5c10192478cd220936e91293afc15e3f6de4d419de5de7506b679cbdd8ec4"},
		{"brad.rsk", "0x3e572204652a5d1fa5cea0b4aba6d226dc42a28759db32440444042ee6d7a95a"},
	}
	for _, t := range tests {
		s.Equal(t.exp, Keccak256.HashHex(t.domain), t.domain)
	}
}

func (s *namehashSuite) TestSha256() {
	s.Equal("0x9915d0456b878862e822e2361da37232f626a2e47505c8795134a95d36138ed3", Sha256.HashHex("zil"))
	s.Equal("0xd45bcb80c1ca68da09082d7618280839a1102446b639b294d07e9a1692ec241f", Sha256.HashHex("ny.zil"))
	s.Equal("0x5fc604da00f502da70bfbc618088c0ce468ec9d18d05540935ae4118e8f50787", Sha256.HashHex("brad.zil"))
}

func (s *namehashSuite) TestDialectsDiffer() {
	s.NotEqual(Keccak256.HashHex("brad.zil"), Sha256.HashHex("brad.zil"))
}

func (s *namehashSuite) TestChildMatchesHash() {
	for _, h := range []Hasher{Keccak256, Sha256} {
		for _, d := range []struct{ parent, label string }{
			{"zil", "brad"},
			{"crypto", "brad"},
			{"eth", "beresnev"},
			{"brad.crypto", "sub"},
		} {
			s.Equal(h.Hash(d.label+"."+d.parent), h.Child(h.Hash(d.parent), d.label))
		}
	}
}

func (s *namehashSuite) TestChildHex() {
	res, err := Keccak256.ChildHex("0x93cdeb708b7545dc668eb9280176169d1c33cfd8ed6f04690a0bcc88a93fc4ae", "beresnev")
	s.NoError(err)
	s.Equal("0x96a270260d2f9e37845776c17a47ae9b8b7e7e576b2365afd2e7f30f43e9bb49", res)

	res, err = Sha256.ChildHex("0x9915d0456b878862e822e2361da37232f626a2e47505c8795134a95d36138ed3", "brad")
	s.NoError(err)
	s.Equal("0x5fc604da00f502da70bfbc618088c0ce468ec9d18d05540935ae4118e8f50787", res)

	_, err = Keccak256.ChildHex("0x1234", "brad")
	s.ErrorIs(err, ErrInvalidNode)

	_, err = Keccak256.ChildHex("not hex", "brad")
	s.Error(err)
}

func (s *namehashSuite) TestDeterministic() {
	s.Equal(Keccak256.Hash("a.b.crypto"), Keccak256.Hash("a.b.crypto"))
	s.NotEqual(Keccak256.Hash("a.b.crypto"), Keccak256.Hash("b.a.crypto"))
	s.NotEqual(common.Hash{}, Sha256.Hash("zil"))
}
