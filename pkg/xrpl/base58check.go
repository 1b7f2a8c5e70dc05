// Package xrpl implements the XRP Ledger base58check account-ID encoding.
// XRPL uses its own base58 alphabet (not Bitcoin's) and a 4-byte
// double-SHA256 checksum over a versioned payload.
package xrpl

import (
	"bytes"
	"crypto/sha256"
	"fmt"

	"github.com/mr-tron/base58"
)

// Alphabet is the XRPL base58 dictionary. The leading 'r' is why classic
// addresses start with that letter.
const Alphabet = "rpshnaf39wBUDNEGHJKLM4PQRST7VWXYZ2bcdeCg65jkm8oFqi1tuvAxyz"

// AccountIDVersion is the version byte prefixed to a 20-byte account ID.
const AccountIDVersion = 0x00

// AccountIDSize is the length of a decoded account ID in bytes.
const AccountIDSize = 20

var alphabet = base58.NewAlphabet(Alphabet)

// checksum returns the first four bytes of SHA256(SHA256(payload)).
func checksum(payload []byte) []byte {
	first := sha256.Sum256(payload)
	second := sha256.Sum256(first[:])
	return second[:4]
}

// EncodeAccountID encodes a 20-byte account ID as a classic address
// ("r..."): base58(version || accountID || checksum).
func EncodeAccountID(accountID []byte) (string, error) {
	if len(accountID) != AccountIDSize {
		return "", fmt.Errorf("account ID must be %d bytes, got %d", AccountIDSize, len(accountID))
	}
	payload := make([]byte, 0, 1+AccountIDSize+4)
	payload = append(payload, AccountIDVersion)
	payload = append(payload, accountID...)
	payload = append(payload, checksum(payload)...)
	return base58.EncodeAlphabet(payload, alphabet), nil
}

// DecodeAccountID decodes and checksum-verifies a classic address,
// returning the 20-byte account ID.
func DecodeAccountID(addr string) ([]byte, error) {
	raw, err := base58.DecodeAlphabet(addr, alphabet)
	if err != nil {
		return nil, fmt.Errorf("decode base58: %w", err)
	}
	if len(raw) != 1+AccountIDSize+4 {
		return nil, fmt.Errorf("decoded length %d, want %d", len(raw), 1+AccountIDSize+4)
	}
	if raw[0] != AccountIDVersion {
		return nil, fmt.Errorf("version byte 0x%02x, want 0x%02x", raw[0], AccountIDVersion)
	}
	payload, check := raw[:1+AccountIDSize], raw[1+AccountIDSize:]
	if !bytes.Equal(checksum(payload), check) {
		return nil, fmt.Errorf("checksum mismatch")
	}
	return raw[1 : 1+AccountIDSize], nil
}
