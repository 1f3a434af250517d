package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/xssnick/tonutils-go/address"
)

// Wallet format checks are advisory: the registration API is the authority on
// payout addresses, so a mismatch here surfaces as a warning on the form and
// never blocks submission.

var (
	btcLegacyRegex = regexp.MustCompile(`^[1][a-km-zA-HJ-NP-Z1-9]{25,34}$`)
	btcP2SHRegex   = regexp.MustCompile(`^[3][a-km-zA-HJ-NP-Z1-9]{25,34}$`)
	btcBech32Regex = regexp.MustCompile(`^bc1[a-zA-HJ-NP-Z0-9]{39,87}$`)
	evmRegex       = regexp.MustCompile(`^0x[a-fA-F0-9]{40}$`)
	solanaRegex    = regexp.MustCompile(`^[1-9A-HJ-NP-Za-km-z]{32,44}$`)
	tronRegex      = regexp.MustCompile(`^T[a-zA-Z0-9]{33}$`)
	tonRawRegex    = regexp.MustCompile(`^-?[0-9]:[a-fA-F0-9]{64}$`)
)

// evmNetworks share the Ethereum address format.
var evmNetworks = map[string]bool{
	"ETH":       true,
	"BSC":       true,
	"POLYGON":   true,
	"ARBITRUM":  true,
	"OPTIMISM":  true,
	"AVALANCHE": true,
	"BASE":      true,
	"LINEA":     true,
}

// CheckWalletFormat verifies that addr looks like a valid address on the given
// payout network. An empty warning means the address matches the network's
// format; an unknown network yields a warning rather than an error.
func CheckWalletFormat(addr, network string) string {
	addr = strings.TrimSpace(addr)
	network = strings.ToUpper(strings.TrimSpace(network))

	if addr == "" || network == "" {
		return ""
	}

	var ok bool
	switch {
	case network == "BTC":
		ok = btcLegacyRegex.MatchString(addr) ||
			btcP2SHRegex.MatchString(addr) ||
			btcBech32Regex.MatchString(addr)
	case evmNetworks[network]:
		ok = evmRegex.MatchString(addr)
	case network == "SOL":
		ok = solanaRegex.MatchString(addr)
	case network == "TRX":
		ok = tronRegex.MatchString(addr)
	case network == "TON":
		ok = validTONAddress(addr)
	default:
		return fmt.Sprintf("Unsupported network: %s", network)
	}

	if !ok {
		return fmt.Sprintf("Address does not look like a valid %s address", network)
	}
	return ""
}

func validTONAddress(addr string) bool {
	if tonRawRegex.MatchString(addr) {
		return true
	}
	// User-friendly form: checksummed base64, parsed properly instead of a
	// shape-only regex.
	if _, err := address.ParseAddr(addr); err == nil {
		return true
	}
	return false
}
