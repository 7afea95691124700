// Package address converts between the address encodings used by the
// supported chains: EIP-55 and EIP-1191 checksummed hex, Zilliqa checksummed
// hex and Zilliqa bech32.
package address

import (
	"crypto/sha256"
	"encoding/hex"
	"math/big"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// NullAddress is the zero address every supported chain uses for "unset".
const NullAddress = "0x0000000000000000000000000000000000000000"

// IsNull reports whether addr is empty or the zero address in hex or bech32 form.
func IsNull(addr string) bool {
	if addr == "" {
		return true
	}
	if IsBech32(addr) {
		h, err := FromBech32(addr)
		return err == nil && IsNull(h)
	}
	return strings.EqualFold(addr, NullAddress)
}

// Checksum renders a hex address with EIP-55 checksum casing, or EIP-1191
// casing when a chain id is given.
func Checksum(addr string, chainID int64) string {
	a := common.HexToAddress(addr)
	if chainID == 0 {
		return a.Hex()
	}

	lower := hex.EncodeToString(a.Bytes())
	hash := crypto.Keccak256([]byte(strconv.FormatInt(chainID, 10) + "0x" + lower))
	res := []byte(lower)
	for i, c := range res {
		if c < 'a' {
			continue
		}
		nibble := hash[i/2]
		if i%2 == 0 {
			nibble >>= 4
		}
		if nibble&0xf >= 8 {
			res[i] = c - 32
		}
	}
	return "0x" + string(res)
}

// ZilChecksum renders a hex address with the Zilliqa checksum: the sha256 of
// the address bytes decides the case of each letter.
func ZilChecksum(addr string) string {
	lower := strings.ToLower(strings.TrimPrefix(strings.TrimPrefix(addr, "0x"), "0X"))
	b, err := hex.DecodeString(lower)
	if err != nil {
		return "0x" + lower
	}
	sum := sha256.Sum256(b)
	v := new(big.Int).SetBytes(sum[:])

	res := []byte(lower)
	for i, c := range res {
		if c < 'a' {
			continue
		}
		if v.Bit(255-6*i) == 1 {
			res[i] = c - 32
		}
	}
	return "0x" + string(res)
}

// IsHex reports whether addr is a 0x prefixed 20 byte hex address.
func IsHex(addr string) bool {
	return strings.HasPrefix(addr, "0x") && common.IsHexAddress(addr)
}
