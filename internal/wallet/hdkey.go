package wallet

import (
	"fmt"

	"github.com/tyler-smith/go-bip32"
)

// maxIndexRetries bounds the out-of-range retry at the address-index step.
// A derived key equal to zero or exceeding the curve order is
// cryptographically negligible, but BIP-32 requires skipping to the next
// index when it happens.
const maxIndexRetries = 3

// HDKey represents a hierarchical deterministic key (BIP-32).
type HDKey struct {
	key *bip32.Key
}

// NewMasterKey creates a master HD key from a 64-byte seed
// (HMAC-SHA512 of the seed with the fixed BIP-32 key).
func NewMasterKey(seed []byte) (*HDKey, error) {
	if len(seed) != SeedSize {
		return nil, fmt.Errorf("seed must be %d bytes, got %d", SeedSize, len(seed))
	}
	master, err := bip32.NewMasterKey(seed)
	if err != nil {
		return nil, fmt.Errorf("create master key: %w", err)
	}
	return &HDKey{key: master}, nil
}

// DeriveChild derives a child key at the given index.
// For hardened derivation, add bip32.FirstHardenedChild to the index.
func (k *HDKey) DeriveChild(index uint32) (*HDKey, error) {
	child, err := k.key.NewChildKey(index)
	if err != nil {
		return nil, fmt.Errorf("derive child %d: %w", index, err)
	}
	return &HDKey{key: child}, nil
}

// DerivePath derives a key along a sequence of indices. Intermediate keys
// are wiped as soon as the next level is derived; the receiver is left
// intact.
func (k *HDKey) DerivePath(indices ...uint32) (*HDKey, error) {
	current := k
	for _, idx := range indices {
		child, err := current.DeriveChild(idx)
		if current != k {
			current.Zero()
		}
		if err != nil {
			return nil, err
		}
		current = child
	}
	return current, nil
}

// DeriveAddressKey derives the key at the full BIP-44 path. The final
// (address index) component retries on the negligible out-of-range case,
// so the index actually used is returned alongside the key.
func (k *HDKey) DeriveAddressKey(path []uint32) (*HDKey, uint32, error) {
	if len(path) < 2 {
		return nil, 0, fmt.Errorf("derivation path too short: %d components", len(path))
	}
	parent, err := k.DerivePath(path[:len(path)-1]...)
	if err != nil {
		return nil, 0, fmt.Errorf("derive path prefix: %w", err)
	}
	defer parent.Zero()

	index := path[len(path)-1]
	for attempt := uint32(0); attempt < maxIndexRetries; attempt++ {
		child, childErr := parent.DeriveChild(index + attempt)
		if childErr == nil {
			return child, index + attempt, nil
		}
		err = childErr
	}
	return nil, 0, fmt.Errorf("%w: %v", ErrDerivationFailure, err)
}

// DeriveBIP44 derives the key at m/purpose'/coinType'/account'/change/index
// with the BIP-44 purpose. Purpose, coin type, and account are hardened.
// Like DeriveAddressKey, it reports the address index actually used.
func (k *HDKey) DeriveBIP44(coinType, account, change, index uint32) (*HDKey, uint32, error) {
	return k.DeriveAddressKey([]uint32{
		bip32.FirstHardenedChild + 44,
		bip32.FirstHardenedChild + coinType,
		bip32.FirstHardenedChild + account,
		change,
		index,
	})
}

// PrivateKeyBytes returns the raw 32-byte private key scalar (the 0x00 pad
// byte exists only in the BIP-32 serialization format, not in memory).
// Returns nil if this is a public-only key.
func (k *HDKey) PrivateKeyBytes() []byte {
	if !k.key.IsPrivate {
		return nil
	}
	return k.key.Key
}

// PublicKeyBytes returns the compressed 33-byte public key.
func (k *HDKey) PublicKeyBytes() []byte {
	pub := k.key.PublicKey()
	return pub.Key
}

// IsPrivate returns true if this key contains a private key.
func (k *HDKey) IsPrivate() bool {
	return k.key.IsPrivate
}

// Depth returns the derivation depth (0 for master).
func (k *HDKey) Depth() uint8 {
	return k.key.Depth
}

// Zero wipes the key and chain code in place. The key is unusable
// afterwards.
func (k *HDKey) Zero() {
	if k == nil || k.key == nil {
		return
	}
	zeroBytes(k.key.Key)
	zeroBytes(k.key.ChainCode)
}
