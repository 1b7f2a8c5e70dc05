// Package chains defines the closed set of supported blockchains and their
// derivation parameters. All chain-specific constants are hardcoded here;
// callers only choose the account and address index.
package chains

import (
	"strings"

	"github.com/btcsuite/btcd/chaincfg"
)

// Network selects mainnet or testnet parameters.
type Network string

const (
	Mainnet Network = "mainnet"
	Testnet Network = "testnet"
)

// Family is the blockchain family, which determines the address encoding.
type Family string

const (
	FamilyBitcoin Family = "bitcoin" // bech32 P2WPKH (bc1q...)
	FamilyEVM     Family = "evm"     // keccak-256 hex with EIP-55 checksum (0x...)
	FamilyRipple  Family = "ripple"  // XRPL base58check (r...)
)

// BIP-44 path constants shared by every supported chain.
const (
	PurposeBIP44 uint32 = 44

	// ChangeExternal is the change level for receiving (donation) addresses.
	ChangeExternal uint32 = 0
	// ChangeInternal is reserved for change addresses; unused by donations.
	ChangeInternal uint32 = 1
)

// SLIP-44 coin types.
const (
	CoinTypeBitcoin        uint32 = 0
	CoinTypeBitcoinTestnet uint32 = 1
	CoinTypeEthereum       uint32 = 60
	CoinTypeRipple         uint32 = 144
)

// Params describes one supported chain on one network.
type Params struct {
	// Symbol is the canonical chain tag ("BTC", "ETH", "XRP").
	Symbol string
	// Name is the human-readable chain name.
	Name string
	// Family selects the address encoding rule.
	Family Family
	// CoinType is the SLIP-44 coin type (hardened at derivation).
	CoinType uint32
	// Decimals is the number of fractional digits of the base unit
	// (8 = satoshi, 18 = wei, 6 = drops).
	Decimals uint8
	// BaseUnit names the chain's integer base unit.
	BaseUnit string
	// BtcNet carries btcsuite network params for bitcoin-family chains.
	BtcNet *chaincfg.Params
}

// registry holds the fixed chain table, keyed by symbol then network.
var registry = map[string]map[Network]*Params{
	"BTC": {
		Mainnet: {
			Symbol:   "BTC",
			Name:     "Bitcoin",
			Family:   FamilyBitcoin,
			CoinType: CoinTypeBitcoin,
			Decimals: 8,
			BaseUnit: "satoshi",
			BtcNet:   &chaincfg.MainNetParams,
		},
		Testnet: {
			Symbol:   "BTC",
			Name:     "Bitcoin Testnet",
			Family:   FamilyBitcoin,
			CoinType: CoinTypeBitcoinTestnet,
			Decimals: 8,
			BaseUnit: "satoshi",
			BtcNet:   &chaincfg.TestNet3Params,
		},
	},
	"ETH": {
		Mainnet: ethParams, Testnet: ethParams,
	},
	"XRP": {
		Mainnet: xrpParams, Testnet: xrpParams,
	},
}

// Ethereum addresses and paths are identical across networks.
var ethParams = &Params{
	Symbol:   "ETH",
	Name:     "Ethereum",
	Family:   FamilyEVM,
	CoinType: CoinTypeEthereum,
	Decimals: 18,
	BaseUnit: "wei",
}

// XRPL classic addresses are network-independent.
var xrpParams = &Params{
	Symbol:   "XRP",
	Name:     "Ripple",
	Family:   FamilyRipple,
	CoinType: CoinTypeRipple,
	Decimals: 6,
	BaseUnit: "drop",
}

// aliases maps stablecoin symbols to the network they settle on. A wallet
// resolved through an alias keeps the alias as its display symbol but uses
// the underlying network's derivation path and address format.
var aliases = map[string]string{
	"USDT": "ETH",
	"USDC": "ETH",
	"DAI":  "ETH",
}

// Get returns the params for an exact chain symbol.
func Get(symbol string, network Network) (*Params, bool) {
	nets, ok := registry[strings.ToUpper(symbol)]
	if !ok {
		return nil, false
	}
	p, ok := nets[network]
	return p, ok
}

// Resolve returns the params for a symbol or stablecoin alias, along with
// the display symbol the caller should label the wallet with.
func Resolve(symbol string, network Network) (params *Params, display string, ok bool) {
	sym := strings.ToUpper(symbol)
	if underlying, isAlias := aliases[sym]; isAlias {
		p, found := Get(underlying, network)
		return p, sym, found
	}
	p, found := Get(sym, network)
	return p, sym, found
}

// IsSupported reports whether a symbol (or alias) is in the registry.
func IsSupported(symbol string) bool {
	_, _, ok := Resolve(symbol, Mainnet)
	return ok
}

// List returns the canonical chain symbols in a fixed order.
func List() []string {
	return []string{"BTC", "ETH", "XRP"}
}

// Aliases returns the supported stablecoin aliases in a fixed order.
func Aliases() []string {
	return []string{"DAI", "USDC", "USDT"}
}
