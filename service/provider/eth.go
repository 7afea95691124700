package provider

import (
	"math/big"
	"strconv"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"golang.org/x/xerrors"

	"github.com/x-xyz/resolution/base/ctx"
	"github.com/x-xyz/resolution/base/log"
)

// Call packs method with params, runs eth_call against addr at the latest
// block and unpacks the outputs.
func Call(c ctx.Ctx, p Provider, addr common.Address, _abi abi.ABI, method string, params ...interface{}) ([]interface{}, error) {
	data, err := _abi.Pack(method, params...)
	if err != nil {
		c.WithFields(log.Fields{
			"method": method,
			"params": params,
			"err":    err,
		}).Error("abi.Pack failed")
		return nil, err
	}
	msg := map[string]interface{}{
		"to":   addr,
		"data": hexutil.Bytes(data),
	}
	var res hexutil.Bytes
	if err := p.Request(c, &res, "eth_call", msg, "latest"); err != nil {
		return nil, err
	}
	unpacked, err := _abi.Unpack(method, res)
	if err != nil {
		c.WithFields(log.Fields{
			"method": method,
			"addr":   addr.Hex(),
			"err":    err,
		}).Error("abi.Unpack failed")
		return nil, err
	}
	return unpacked, nil
}

// GetLogs runs eth_getLogs for q. A nil FromBlock means the earliest block and
// a nil ToBlock the latest one.
func GetLogs(c ctx.Ctx, p Provider, q ethereum.FilterQuery) ([]types.Log, error) {
	arg := map[string]interface{}{
		"address":   q.Addresses,
		"topics":    q.Topics,
		"fromBlock": blockArg(q.FromBlock, "earliest"),
		"toBlock":   blockArg(q.ToBlock, "latest"),
	}
	var logs []types.Log
	if err := p.Request(c, &logs, "eth_getLogs", arg); err != nil {
		return nil, err
	}
	return logs, nil
}

func blockArg(n *big.Int, fallback string) string {
	if n == nil {
		return fallback
	}
	return hexutil.EncodeBig(n)
}

// NetVersion returns the network id reported by net_version.
func NetVersion(c ctx.Ctx, p Provider) (int64, error) {
	var v string
	if err := p.Request(c, &v, "net_version"); err != nil {
		return 0, err
	}
	id, err := strconv.ParseInt(v, 0, 64)
	if err != nil {
		return 0, xerrors.Errorf("invalid net_version %q: %w", v, err)
	}
	return id, nil
}
