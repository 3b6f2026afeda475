package solana

import (
	"fmt"
	"regexp"
)

const (
	// MinAddressLength and MaxAddressLength bound the base58 text form of
	// a 32-byte public key
	MinAddressLength = 32
	MaxAddressLength = 44
)

// addressPattern matches the base58 alphabet, which excludes 0, I, O and l
var addressPattern = regexp.MustCompile(
	fmt.Sprintf(`^[1-9A-HJ-NP-Za-km-z]{%d,%d}$`, MinAddressLength, MaxAddressLength))

// IsValidAddress reports whether address is a well-formed Solana wallet
// address: base58 characters only, length between MinAddressLength and
// MaxAddressLength. It performs no checksum or on-chain verification.
func IsValidAddress(address string) bool {
	return addressPattern.MatchString(address)
}
