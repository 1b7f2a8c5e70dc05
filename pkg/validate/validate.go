// Package validate checks address and transaction-hash formats per chain.
// Checksummed formats (bech32, EIP-55, XRPL base58check) are verified by
// recomputing the checksum, never by pattern matching alone.
package validate

import (
	"strings"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/ethereum/go-ethereum/common"

	"github.com/Klingon-tech/klinggive-wallet/internal/log"
	"github.com/Klingon-tech/klinggive-wallet/pkg/chains"
	"github.com/Klingon-tech/klinggive-wallet/pkg/xrpl"
)

// Address reports whether addr is a valid mainnet address for the chain.
func Address(addr, symbol string) bool {
	return AddressOn(addr, symbol, chains.Mainnet)
}

// AddressOn reports whether addr is a valid address for the chain on the
// given network. Stablecoin aliases validate against their underlying
// network's format.
func AddressOn(addr, symbol string, network chains.Network) bool {
	p, _, ok := chains.Resolve(symbol, network)
	if !ok {
		log.Validate.Debug().Str("chain", symbol).Msg("unknown chain")
		return false
	}
	var valid bool
	switch p.Family {
	case chains.FamilyBitcoin:
		valid = validBitcoin(addr, p)
	case chains.FamilyEVM:
		valid = validEthereum(addr)
	case chains.FamilyRipple:
		valid = validRipple(addr)
	}
	if !valid {
		log.Validate.Debug().
			Str("chain", symbol).
			Str("network", string(network)).
			Str("address", addr).
			Msg("address rejected")
	}
	return valid
}

// validBitcoin decodes the address against the network parameters; decoding
// verifies the bech32 or base58check checksum.
func validBitcoin(addr string, p *chains.Params) bool {
	decoded, err := btcutil.DecodeAddress(addr, p.BtcNet)
	if err != nil {
		return false
	}
	return decoded.IsForNet(p.BtcNet)
}

// validEthereum checks the 0x-prefixed 20-byte hex form. All-lowercase and
// all-uppercase hex carry no checksum and are accepted per EIP-55
// convention; mixed case must match the recomputed checksum exactly.
func validEthereum(addr string) bool {
	if !strings.HasPrefix(addr, "0x") || !common.IsHexAddress(addr) {
		return false
	}
	hexPart := addr[2:]
	lower := strings.ToLower(hexPart)
	if hexPart == lower || hexPart == strings.ToUpper(hexPart) {
		return true
	}
	return common.HexToAddress(addr).Hex() == addr
}

// validRipple decodes the classic address and verifies its double-SHA256
// checksum and version byte.
func validRipple(addr string) bool {
	_, err := xrpl.DecodeAccountID(addr)
	return err == nil
}

// TransactionHash reports whether hash matches the chain's transaction
// identifier format.
func TransactionHash(hash, symbol string) bool {
	p, _, ok := chains.Resolve(symbol, chains.Mainnet)
	if !ok {
		return false
	}
	switch p.Family {
	case chains.FamilyBitcoin:
		return isHex(hash, 64, caseAny)
	case chains.FamilyEVM:
		return strings.HasPrefix(hash, "0x") && isHex(hash[2:], 64, caseAny)
	case chains.FamilyRipple:
		// XRPL publishes transaction hashes as uppercase hex.
		return isHex(hash, 64, caseUpper)
	default:
		return false
	}
}

type hexCase int

const (
	caseAny hexCase = iota
	caseUpper
)

func isHex(s string, length int, c hexCase) bool {
	if len(s) != length {
		return false
	}
	for i := 0; i < len(s); i++ {
		ch := s[i]
		switch {
		case ch >= '0' && ch <= '9':
		case ch >= 'A' && ch <= 'F':
		case ch >= 'a' && ch <= 'f':
			if c == caseUpper {
				return false
			}
		default:
			return false
		}
	}
	return true
}
