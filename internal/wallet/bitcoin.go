package wallet

import (
	"fmt"

	"github.com/btcsuite/btcd/btcutil"

	"github.com/Klingon-tech/klinggive-wallet/pkg/chains"
)

// encodeBitcoin encodes a compressed public key as a native SegWit
// (P2WPKH) address: bech32 of the version-0 witness program
// HASH160(pubkey), "bc1q..." on mainnet.
func encodeBitcoin(pub []byte, p *chains.Params) (string, error) {
	witnessProg := btcutil.Hash160(pub)
	addr, err := btcutil.NewAddressWitnessPubKeyHash(witnessProg, p.BtcNet)
	if err != nil {
		return "", fmt.Errorf("encode witness address: %w", err)
	}
	return addr.EncodeAddress(), nil
}
