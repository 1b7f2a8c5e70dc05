// Package wallet implements non-custodial HD wallet generation: BIP-39
// mnemonics, BIP-32/44 derivation, and per-chain address encoding. The
// package is stateless; secret material lives only for the duration of a
// single call and is wiped before returning.
package wallet

import (
	"crypto/rand"
	"fmt"
	"io"

	"github.com/tyler-smith/go-bip39"
)

// Supported mnemonic lengths.
const (
	MnemonicWords12 = 12
	MnemonicWords24 = 24
)

// entropyReader is the secure random source for mnemonic generation.
// Production always uses crypto/rand; tests may inject a reader via
// SetEntropySource to exercise failure paths and fixed vectors.
var entropyReader io.Reader = rand.Reader

// SetEntropySource replaces the entropy source. Passing nil restores
// crypto/rand. Intended for tests only; not safe to call concurrently
// with generation.
func SetEntropySource(r io.Reader) {
	if r == nil {
		entropyReader = rand.Reader
		return
	}
	entropyReader = r
}

// GenerateMnemonic creates a new 12-word BIP-39 mnemonic from 128 bits of
// secure entropy.
func GenerateMnemonic() (string, error) {
	return GenerateMnemonicWords(MnemonicWords12)
}

// GenerateMnemonicWords creates a mnemonic with the given word count
// (12 or 24). Entropy failure aborts; no partial mnemonic is returned.
func GenerateMnemonicWords(words int) (string, error) {
	var bits int
	switch words {
	case MnemonicWords12:
		bits = 128
	case MnemonicWords24:
		bits = 256
	default:
		return "", fmt.Errorf("mnemonic must be %d or %d words, got %d",
			MnemonicWords12, MnemonicWords24, words)
	}

	entropy := make([]byte, bits/8)
	if _, err := io.ReadFull(entropyReader, entropy); err != nil {
		return "", fmt.Errorf("%w: %v", ErrEntropyUnavailable, err)
	}
	mnemonic, err := bip39.NewMnemonic(entropy)
	zeroBytes(entropy)
	if err != nil {
		return "", fmt.Errorf("generate mnemonic: %w", err)
	}
	return mnemonic, nil
}

// ValidateMnemonic checks if a mnemonic is valid per BIP-39
// (correct word count, valid words, valid checksum).
func ValidateMnemonic(mnemonic string) bool {
	return bip39.IsMnemonicValid(mnemonic)
}

// zeroBytes overwrites a byte slice with zeros.
func zeroBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
