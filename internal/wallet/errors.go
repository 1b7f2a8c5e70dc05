package wallet

import "errors"

// Error taxonomy surfaced across the subsystem boundary. Callers dispatch
// on these with errors.Is; wrapped causes never carry secret material.
var (
	// ErrInvalidMnemonic is returned when an imported phrase fails the
	// BIP-39 word-count, wordlist, or checksum test.
	ErrInvalidMnemonic = errors.New("invalid mnemonic")

	// ErrEntropyUnavailable is returned when the secure random source
	// fails. Generation aborts; there is no weaker fallback.
	ErrEntropyUnavailable = errors.New("entropy source unavailable")

	// ErrUnsupportedChain is returned for a chain tag outside the registry.
	ErrUnsupportedChain = errors.New("unsupported chain")

	// ErrDerivationFailure is returned when child-key derivation stays out
	// of range after the bounded index retries.
	ErrDerivationFailure = errors.New("key derivation failed after retries")

	// ErrWalletGenerationFailed is returned when the post-generation
	// self-check cannot reproduce and validate the address.
	ErrWalletGenerationFailed = errors.New("generated wallet failed self-check")
)
