package abi

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// ENSRegistryABI covers the read side of the ENS registry. The RNS registry
// shares the same interface.
var ENSRegistryABI abi.ABI

// ENSResolverABI covers the public resolver reads. The second addr overload
// (multicoin) is exposed by go-ethereum as "addr0".
var ENSResolverABI abi.ABI

func init() {
	_abi, err := abi.JSON(strings.NewReader(ensRegistryABIJson))
	if err != nil {
		panic("Failed to parse ABI")
	}
	ENSRegistryABI = _abi

	_abi, err = abi.JSON(strings.NewReader(ensResolverABIJson))
	if err != nil {
		panic("Failed to parse ABI")
	}
	ENSResolverABI = _abi
}

var ensRegistryABIJson = `
[
  {
    "inputs": [{ "internalType": "bytes32", "name": "node", "type": "bytes32" }],
    "name": "owner",
    "outputs": [{ "internalType": "address", "name": "", "type": "address" }],
    "stateMutability": "view",
    "type": "function"
  },
  {
    "inputs": [{ "internalType": "bytes32", "name": "node", "type": "bytes32" }],
    "name": "resolver",
    "outputs": [{ "internalType": "address", "name": "", "type": "address" }],
    "stateMutability": "view",
    "type": "function"
  },
  {
    "inputs": [{ "internalType": "bytes32", "name": "node", "type": "bytes32" }],
    "name": "ttl",
    "outputs": [{ "internalType": "uint64", "name": "", "type": "uint64" }],
    "stateMutability": "view",
    "type": "function"
  }
]
`

var ensResolverABIJson = `
[
  {
    "inputs": [{ "internalType": "bytes32", "name": "node", "type": "bytes32" }],
    "name": "addr",
    "outputs": [{ "internalType": "address payable", "name": "", "type": "address" }],
    "stateMutability": "view",
    "type": "function"
  },
  {
    "inputs": [
      { "internalType": "bytes32", "name": "node", "type": "bytes32" },
      { "internalType": "uint256", "name": "coinType", "type": "uint256" }
    ],
    "name": "addr",
    "outputs": [{ "internalType": "bytes", "name": "", "type": "bytes" }],
    "stateMutability": "view",
    "type": "function"
  },
  {
    "inputs": [
      { "internalType": "bytes32", "name": "node", "type": "bytes32" },
      { "internalType": "string", "name": "key", "type": "string" }
    ],
    "name": "text",
    "outputs": [{ "internalType": "string", "name": "", "type": "string" }],
    "stateMutability": "view",
    "type": "function"
  },
  {
    "inputs": [{ "internalType": "bytes32", "name": "node", "type": "bytes32" }],
    "name": "contenthash",
    "outputs": [{ "internalType": "bytes", "name": "", "type": "bytes" }],
    "stateMutability": "view",
    "type": "function"
  },
  {
    "inputs": [{ "internalType": "bytes32", "name": "node", "type": "bytes32" }],
    "name": "name",
    "outputs": [{ "internalType": "string", "name": "", "type": "string" }],
    "stateMutability": "view",
    "type": "function"
  }
]
`
