package cns

// standardKeys are read when the resolver logs yield no record keys.
var standardKeys = []string{
	"crypto.BTC.address",
	"crypto.ETH.address",
	"crypto.XRP.address",
	"crypto.LTC.address",
	"crypto.BCH.address",
	"crypto.ADA.address",
	"crypto.XLM.address",
	"crypto.TRX.address",
	"crypto.ZIL.address",
	"crypto.EOS.address",
	"crypto.DOGE.address",
	"crypto.DASH.address",
	"crypto.ATOM.address",
	"crypto.BNB.address",
	"crypto.XMR.address",
	"crypto.USDT.version.ERC20.address",
	"crypto.USDT.version.OMNI.address",
	"crypto.USDT.version.TRON.address",
	"crypto.USDT.version.EOS.address",
	"ipfs.html.value",
	"ipfs.redirect_domain.value",
	"dweb.ipfs.hash",
	"browser.redirect_url",
	"whois.email.value",
	"whois.for_sale.value",
	"gundb.username.value",
	"gundb.public_key.value",
	"social.twitter.username",
	"validation.social.twitter.username",
	"dns.ttl",
	"dns.A",
	"dns.AAAA",
	"dns.CNAME",
}
