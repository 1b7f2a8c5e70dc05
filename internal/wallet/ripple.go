package wallet

import (
	"crypto/sha256"

	"golang.org/x/crypto/ripemd160" //nolint:staticcheck // RIPEMD-160 is mandated by the XRPL address format.

	"github.com/Klingon-tech/klinggive-wallet/pkg/xrpl"
)

// encodeRipple encodes a compressed public key as an XRPL classic address:
// base58check (XRPL alphabet) of the account ID RIPEMD160(SHA256(pubkey))
// with version byte 0x00, "r...".
func encodeRipple(pub []byte) (string, error) {
	sha := sha256.Sum256(pub)
	ripe := ripemd160.New()
	ripe.Write(sha[:])
	accountID := ripe.Sum(nil)
	return xrpl.EncodeAccountID(accountID)
}
