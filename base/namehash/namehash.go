// Package namehash implements the recursive namehash construction used by
// blockchain naming systems to turn a dotted domain into a 32 byte node.
package namehash

import (
	"crypto/sha256"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
)

// HashFunc hashes the concatenation of its inputs.
type HashFunc func(data ...[]byte) []byte

// Hasher computes namehashes with a fixed hash function.
type Hasher struct {
	hash HashFunc
}

var (
	// Keccak256 is the dialect used by ENS, CNS and RNS.
	Keccak256 = New(crypto.Keccak256)
	// Sha256 is the dialect used by ZNS.
	Sha256 = New(sha256Concat)
)

func New(hash HashFunc) Hasher {
	return Hasher{hash: hash}
}

func sha256Concat(data ...[]byte) []byte {
	h := sha256.New()
	for _, b := range data {
		h.Write(b)
	}
	return h.Sum(nil)
}

// Hash folds the labels of domain from right to left starting at the zero
// node. Empty labels are hashed as-is, validation belongs to the caller.
func (h Hasher) Hash(domain string) common.Hash {
	node := common.Hash{}
	if domain == "" {
		return node
	}
	labels := strings.Split(domain, ".")
	for i := len(labels) - 1; i >= 0; i-- {
		node = h.Child(node, labels[i])
	}
	return node
}

// Child extends a known parent node by one label.
func (h Hasher) Child(parent common.Hash, label string) common.Hash {
	return common.BytesToHash(h.hash(parent.Bytes(), h.hash([]byte(label))))
}

// HashHex returns Hash as 0x prefixed lowercase hex.
func (h Hasher) HashHex(domain string) string {
	return h.Hash(domain).Hex()
}

// ChildHex is Child over a 0x prefixed hex parent node.
func (h Hasher) ChildHex(parent string, label string) (string, error) {
	b, err := hexutil.Decode(parent)
	if err != nil {
		return "", err
	}
	if len(b) != common.HashLength {
		return "", ErrInvalidNode
	}
	return h.Child(common.BytesToHash(b), label).Hex(), nil
}
