package wallet

import (
	"encoding/hex"
	"fmt"

	"github.com/Klingon-tech/klinggive-wallet/internal/log"
	"github.com/Klingon-tech/klinggive-wallet/pkg/chains"
	"github.com/Klingon-tech/klinggive-wallet/pkg/validate"
)

// GeneratedWallet is the only value that crosses the subsystem boundary.
// The mnemonic is returned exactly once; the subsystem retains no copy and
// the private key never appears here.
type GeneratedWallet struct {
	Address        string `json:"address"`
	DerivationPath string `json:"derivationPath"`
	Chain          string `json:"chain"`
	Mnemonic       string `json:"mnemonic,omitempty"`
	PublicKey      string `json:"publicKey"`
}

// Generate creates a fresh 12-word wallet for a chain at account 0,
// address index 0 on mainnet.
func Generate(symbol string) (*GeneratedWallet, error) {
	return GenerateAt(symbol, chains.Mainnet, 0, 0, MnemonicWords12)
}

// GenerateAt creates a fresh wallet for a chain with explicit network,
// account, address index, and mnemonic length.
func GenerateAt(symbol string, network chains.Network, account, index uint32, words int) (*GeneratedWallet, error) {
	params, display, ok := chains.Resolve(symbol, network)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedChain, symbol)
	}
	mnemonic, err := GenerateMnemonicWords(words)
	if err != nil {
		return nil, err
	}
	return derive(params, display, network, mnemonic, account, index)
}

// FromMnemonic derives the wallet for a chain from an existing mnemonic at
// account/index on mainnet. The same inputs always produce the same
// address, path, and public key.
func FromMnemonic(symbol, mnemonic string, account, index uint32) (*GeneratedWallet, error) {
	return FromMnemonicAt(symbol, chains.Mainnet, mnemonic, account, index)
}

// FromMnemonicAt is FromMnemonic with an explicit network.
func FromMnemonicAt(symbol string, network chains.Network, mnemonic string, account, index uint32) (*GeneratedWallet, error) {
	params, display, ok := chains.Resolve(symbol, network)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedChain, symbol)
	}
	if !ValidateMnemonic(mnemonic) {
		return nil, ErrInvalidMnemonic
	}
	return derive(params, display, network, mnemonic, account, index)
}

// derive walks mnemonic -> seed -> master -> BIP-44 path -> key pair ->
// address, wiping each secret as soon as the next stage no longer needs
// it, and self-checks the result before returning.
func derive(params *chains.Params, display string, network chains.Network, mnemonic string, account, index uint32) (*GeneratedWallet, error) {
	seed, err := SeedFromMnemonic(mnemonic, "")
	if err != nil {
		return nil, err
	}
	defer zeroBytes(seed)

	master, err := NewMasterKey(seed)
	if err != nil {
		return nil, err
	}
	defer master.Zero()

	path := params.DerivationPath(account, chains.ChangeExternal, index)
	key, usedIndex, err := master.DeriveAddressKey(path)
	if err != nil {
		return nil, err
	}
	defer key.Zero()

	kp, err := newKeyPair(key)
	if err != nil {
		return nil, fmt.Errorf("extract key pair: %w", err)
	}
	defer kp.Zero()

	addr, err := encodeAddress(kp.PublicKey(), params)
	if err != nil {
		return nil, err
	}

	// Self-check: the public key must re-derive from the private key, the
	// re-encoded address must match, and the chain validator must accept
	// it. An unverified address is never returned.
	if !kp.selfConsistent() {
		log.Wallet.Error().Str("chain", display).Msg("public key re-derivation mismatch")
		return nil, ErrWalletGenerationFailed
	}
	recoded, err := encodeAddress(kp.rederivePublic(), params)
	if err != nil || recoded != addr || !validate.AddressOn(addr, display, network) {
		log.Wallet.Error().Str("chain", display).Msg("address failed post-generation check")
		return nil, ErrWalletGenerationFailed
	}

	pathStr := params.DerivationPathString(account, chains.ChangeExternal, usedIndex)
	log.Wallet.Debug().
		Str("chain", display).
		Str("path", pathStr).
		Str("address", addr).
		Msg("wallet derived")

	return &GeneratedWallet{
		Address:        addr,
		DerivationPath: pathStr,
		Chain:          display,
		Mnemonic:       mnemonic,
		PublicKey:      hex.EncodeToString(kp.PublicKey()),
	}, nil
}

// encodeAddress dispatches to the chain family's address encoder.
func encodeAddress(pub []byte, params *chains.Params) (string, error) {
	switch params.Family {
	case chains.FamilyBitcoin:
		return encodeBitcoin(pub, params)
	case chains.FamilyEVM:
		return encodeEthereum(pub)
	case chains.FamilyRipple:
		return encodeRipple(pub)
	default:
		return "", fmt.Errorf("%w: family %q", ErrUnsupportedChain, params.Family)
	}
}
