package chains

import (
	"fmt"

	"github.com/tyler-smith/go-bip32"
)

// DerivationPath returns the BIP-44 index sequence for this chain:
// m/44'/coin'/account'/change/index. Purpose, coin type, and account are
// hardened; change and index are not.
func (p *Params) DerivationPath(account, change, index uint32) []uint32 {
	return []uint32{
		bip32.FirstHardenedChild + PurposeBIP44,
		bip32.FirstHardenedChild + p.CoinType,
		bip32.FirstHardenedChild + account,
		change,
		index,
	}
}

// DerivationPathString renders the path in the conventional notation,
// e.g. "m/44'/60'/0'/0/0".
func (p *Params) DerivationPathString(account, change, index uint32) string {
	return fmt.Sprintf("m/%d'/%d'/%d'/%d/%d",
		PurposeBIP44, p.CoinType, account, change, index)
}
