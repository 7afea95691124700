package abi

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/stretchr/testify/require"
)

func TestMethodSelectors(t *testing.T) {
	req := require.New(t)

	tests := []struct {
		name     string
		id       []byte
		expected string
	}{
		{"registry owner", ENSRegistryABI.Methods["owner"].ID, "0x02571be3"},
		{"registry resolver", ENSRegistryABI.Methods["resolver"].ID, "0x0178b8bf"},
		{"registry ttl", ENSRegistryABI.Methods["ttl"].ID, "0x16a25cbd"},
		{"resolver addr", ENSResolverABI.Methods["addr"].ID, "0x3b3b57de"},
		{"resolver multicoin addr", ENSResolverABI.Methods["addr0"].ID, "0xf1cb7e06"},
		{"resolver text", ENSResolverABI.Methods["text"].ID, "0x59d1d43c"},
		{"resolver contenthash", ENSResolverABI.Methods["contenthash"].ID, "0xbc1c58d1"},
		{"resolver name", ENSResolverABI.Methods["name"].ID, "0x691f3431"},
		{"proxy reader getData", ProxyReaderABI.Methods["getData"].ID, "0x91015f6b"},
	}
	for _, tt := range tests {
		req.Equal(tt.expected, hexutil.Encode(tt.id), tt.name)
	}
}

func TestEventTopics(t *testing.T) {
	req := require.New(t)
	req.Equal(
		common.HexToHash("0x7ae4f661958fbecc2f77be6b0eb280d2a6f604b29e1e7221c82b9da0c4af7f86"),
		UNSResolverABI.Events["NewKey"].ID,
	)
	req.Equal(
		common.HexToHash("0x185c30856dadb58bf097c1f665a52ada7029752dbcad008ea3fefc73bee8c9fe"),
		UNSResolverABI.Events["ResetRecords"].ID,
	)
}
