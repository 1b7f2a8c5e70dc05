package wallet

import (
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/ethereum/go-ethereum/common"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"
)

// encodeEthereum encodes a compressed public key as an EVM address:
// the last 20 bytes of Keccak-256 over the uncompressed public key
// (without the 0x04 prefix byte), rendered with the EIP-55 mixed-case
// checksum. Stablecoins on the same network share this encoding.
func encodeEthereum(pub []byte) (string, error) {
	parsed, err := secp256k1.ParsePubKey(pub)
	if err != nil {
		return "", fmt.Errorf("parse public key: %w", err)
	}
	uncompressed := parsed.SerializeUncompressed()
	digest := ethcrypto.Keccak256(uncompressed[1:])
	return common.BytesToAddress(digest[12:]).Hex(), nil
}
