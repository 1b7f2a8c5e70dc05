package wallet

import (
	"bytes"
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// KeyPair holds the key material derived at one path node. The private key
// never leaves this package; Zero must be called once the address has been
// encoded and checked.
type KeyPair struct {
	priv []byte
	pub  []byte // compressed, canonical encoding
}

// newKeyPair extracts and canonicalizes the key material from an HD key.
// The public key is round-tripped through secp256k1 parsing so the encoding
// is guaranteed canonical regardless of how the derivation library
// serialized it.
func newKeyPair(k *HDKey) (*KeyPair, error) {
	priv := k.PrivateKeyBytes()
	if priv == nil {
		return nil, fmt.Errorf("key pair requires a private key")
	}
	parsed, err := secp256k1.ParsePubKey(k.PublicKeyBytes())
	if err != nil {
		return nil, fmt.Errorf("parse public key: %w", err)
	}
	kp := &KeyPair{
		priv: make([]byte, len(priv)),
		pub:  parsed.SerializeCompressed(),
	}
	copy(kp.priv, priv)
	return kp, nil
}

// PublicKey returns the compressed 33-byte public key.
func (kp *KeyPair) PublicKey() []byte {
	return kp.pub
}

// rederivePublic recomputes the public key from the private scalar. Used by
// the facade self-check: a mismatch means the derivation library and the
// curve library disagree, and the wallet must not be returned.
func (kp *KeyPair) rederivePublic() []byte {
	priv := secp256k1.PrivKeyFromBytes(kp.priv)
	defer priv.Zero()
	return priv.PubKey().SerializeCompressed()
}

// selfConsistent reports whether the stored public key matches the one
// re-derived from the private key.
func (kp *KeyPair) selfConsistent() bool {
	return bytes.Equal(kp.pub, kp.rederivePublic())
}

// Zero wipes the private key. The public key is not secret.
func (kp *KeyPair) Zero() {
	zeroBytes(kp.priv)
}
