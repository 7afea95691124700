package cns

import (
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
)

// twitterMessage is the text the validator signs for a verified handle: the
// keccak256 hex digests of the token id (decimal), the owner, the record key
// and the handle, concatenated.
func twitterMessage(tokenID *big.Int, owner common.Address, handle string) []byte {
	parts := []string{
		tokenID.String(),
		strings.ToLower(owner.Hex()),
		twitterUsernameKey,
		handle,
	}
	var sb strings.Builder
	for _, p := range parts {
		sb.WriteString(hexutil.Encode(crypto.Keccak256([]byte(p))))
	}
	return []byte(sb.String())
}

func validTwitterSignature(tokenID *big.Int, owner common.Address, handle, signature string, validator common.Address) bool {
	sig, err := hexutil.Decode(signature)
	if err != nil || len(sig) != crypto.SignatureLength {
		return false
	}
	if sig[crypto.RecoveryIDOffset] >= 27 {
		sig[crypto.RecoveryIDOffset] -= 27
	}
	pub, err := crypto.SigToPub(accounts.TextHash(twitterMessage(tokenID, owner, handle)), sig)
	if err != nil {
		return false
	}
	return crypto.PubkeyToAddress(*pub) == validator
}
