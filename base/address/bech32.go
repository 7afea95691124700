package address

import (
	"strings"

	"github.com/btcsuite/btcd/btcutil/bech32"
	"github.com/ethereum/go-ethereum/common"
)

// ZilHRP is the human readable part of Zilliqa bech32 addresses.
const ZilHRP = "zil"

// IsBech32 reports whether addr looks like a Zilliqa bech32 address.
func IsBech32(addr string) bool {
	return strings.HasPrefix(strings.ToLower(addr), ZilHRP+"1")
}

// ToBech32 converts a 0x hex address to its zil1 form.
func ToBech32(addr string) (string, error) {
	if !common.IsHexAddress(addr) {
		return "", &InvalidAddressError{Address: addr}
	}
	conv, err := bech32.ConvertBits(common.HexToAddress(addr).Bytes(), 8, 5, true)
	if err != nil {
		return "", err
	}
	return bech32.Encode(ZilHRP, conv)
}

// FromBech32 converts a zil1 address to Zilliqa checksummed hex.
func FromBech32(addr string) (string, error) {
	hrp, data, err := bech32.Decode(addr)
	if err != nil {
		return "", err
	}
	if hrp != ZilHRP {
		return "", &InvalidAddressError{Address: addr}
	}
	conv, err := bech32.ConvertBits(data, 5, 8, false)
	if err != nil {
		return "", err
	}
	if len(conv) != common.AddressLength {
		return "", &InvalidAddressError{Address: addr}
	}
	return ZilChecksum(common.BytesToAddress(conv).Hex()), nil
}
