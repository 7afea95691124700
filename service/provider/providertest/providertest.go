// Package providertest holds helpers for programming provider mocks.
package providertest

import (
	"bytes"
	"encoding/json"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/stretchr/testify/mock"

	"github.com/x-xyz/resolution/service/provider/mocks"
)

// Respond decodes v, marshalled to JSON, into the result argument of a
// Request call.
func Respond(v interface{}) func(mock.Arguments) {
	raw, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return RespondRaw(string(raw))
}

// RespondRaw decodes raw JSON into the result argument of a Request call.
func RespondRaw(raw string) func(mock.Arguments) {
	return func(args mock.Arguments) {
		if err := json.Unmarshal([]byte(raw), args.Get(1)); err != nil {
			panic(err)
		}
	}
}

// EthCall expects one eth_call of method on to with args and answers it with
// outputs packed by the same abi.
func EthCall(p *mocks.Provider, to common.Address, _abi abi.ABI, method string, args []interface{}, outputs ...interface{}) *mock.Call {
	data, err := _abi.Pack(method, args...)
	if err != nil {
		panic(err)
	}
	out, err := _abi.Methods[method].Outputs.Pack(outputs...)
	if err != nil {
		panic(err)
	}
	return p.On("Request", mock.Anything, mock.Anything, "eth_call", MatchCall(to, data), "latest").
		Run(Respond(hexutil.Bytes(out))).
		Return(nil)
}

// MatchCall matches the call message built for an eth_call of data on to.
func MatchCall(to common.Address, data []byte) interface{} {
	return mock.MatchedBy(func(msg map[string]interface{}) bool {
		addr, ok := msg["to"].(common.Address)
		if !ok || addr != to {
			return false
		}
		d, ok := msg["data"].(hexutil.Bytes)
		return ok && bytes.Equal(d, data)
	})
}
