package abi

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// ProxyReaderABI is the batched read entry point of the UNS registry.
var ProxyReaderABI abi.ABI

// UNSResolverABI holds the resolver events used to enumerate record keys.
var UNSResolverABI abi.ABI

func init() {
	_abi, err := abi.JSON(strings.NewReader(proxyReaderABIJson))
	if err != nil {
		panic("Failed to parse ABI")
	}
	ProxyReaderABI = _abi

	_abi, err = abi.JSON(strings.NewReader(unsResolverABIJson))
	if err != nil {
		panic("Failed to parse ABI")
	}
	UNSResolverABI = _abi
}

var proxyReaderABIJson = `
[
  {
    "inputs": [
      { "internalType": "string[]", "name": "keys", "type": "string[]" },
      { "internalType": "uint256", "name": "tokenId", "type": "uint256" }
    ],
    "name": "getData",
    "outputs": [
      { "internalType": "address", "name": "resolver", "type": "address" },
      { "internalType": "address", "name": "owner", "type": "address" },
      { "internalType": "string[]", "name": "values", "type": "string[]" }
    ],
    "stateMutability": "view",
    "type": "function"
  }
]
`

var unsResolverABIJson = `
[
  {
    "anonymous": false,
    "inputs": [
      { "indexed": true, "internalType": "uint256", "name": "tokenId", "type": "uint256" },
      { "indexed": true, "internalType": "string", "name": "keyIndex", "type": "string" },
      { "indexed": false, "internalType": "string", "name": "key", "type": "string" }
    ],
    "name": "NewKey",
    "type": "event"
  },
  {
    "anonymous": false,
    "inputs": [
      { "indexed": true, "internalType": "uint256", "name": "tokenId", "type": "uint256" }
    ],
    "name": "ResetRecords",
    "type": "event"
  }
]
`
