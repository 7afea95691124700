package ens

import (
	"strings"
)

// coinTypes lists the SLIP-44 coin types whose addresses are plain 20 byte
// account addresses. ETH itself is read through the legacy addr(node).
var coinTypes = map[string]int64{
	"ETC":   61,
	"RSK":   137,
	"POA":   178,
	"XDAI":  700,
	"MATIC": 966,
	"TT":    1001,
	"GO":    6060,
}

// textKeys maps record keys to the ENS text record holding the same data.
var textKeys = map[string]string{
	"whois.email.value":          "email",
	"browser.redirect_url":       "url",
	"ipfs.redirect_domain.value": "url",
	"social.twitter.username":    "com.twitter",
	"gundb.username.value":       "gundb.username",
	"gundb.public_key.value":     "gundb.public_key",
}

func isContenthashKey(key string) bool {
	return key == "ipfs.html.value" || key == "dweb.ipfs.hash"
}

// cryptoTicker returns the ticker of a crypto.<TICKER>.address key.
func cryptoTicker(key string) (string, bool) {
	parts := strings.Split(key, ".")
	if len(parts) != 3 || parts[0] != "crypto" || parts[2] != "address" || parts[1] == "" {
		return "", false
	}
	return strings.ToUpper(parts[1]), true
}

func textKey(key string) string {
	if k, ok := textKeys[key]; ok {
		return k
	}
	return key
}
