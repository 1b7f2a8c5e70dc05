// klinggive-cli derives and validates non-custodial donation wallets.
// It never writes key material anywhere: the mnemonic is printed exactly
// once and the caller is responsible for storing it.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"math/big"
	"os"
	"strings"
	"syscall"

	"golang.org/x/term"

	"github.com/Klingon-tech/klinggive-wallet/internal/log"
	"github.com/Klingon-tech/klinggive-wallet/internal/wallet"
	"github.com/Klingon-tech/klinggive-wallet/pkg/amount"
	"github.com/Klingon-tech/klinggive-wallet/pkg/chains"
	"github.com/Klingon-tech/klinggive-wallet/pkg/validate"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	// Parse global flags that appear before the subcommand.
	network := chains.Mainnet
	logLevel := "info"
	jsonLogs := false

	args := os.Args[1:]
	for len(args) > 0 {
		switch {
		case args[0] == "--network" && len(args) > 1:
			network = chains.Network(args[1])
			args = args[2:]
		case strings.HasPrefix(args[0], "--network="):
			network = chains.Network(args[0][len("--network="):])
			args = args[1:]
		case args[0] == "--log-level" && len(args) > 1:
			logLevel = args[1]
			args = args[2:]
		case strings.HasPrefix(args[0], "--log-level="):
			logLevel = args[0][len("--log-level="):]
			args = args[1:]
		case args[0] == "--json-logs":
			jsonLogs = true
			args = args[1:]
		default:
			goto dispatch
		}
	}

dispatch:
	log.Init(logLevel, jsonLogs)

	if network != chains.Mainnet && network != chains.Testnet {
		fatal("unknown network %q (use mainnet or testnet)", network)
	}
	if len(args) == 0 {
		usage()
		os.Exit(1)
	}

	cmd := args[0]
	cmdArgs := args[1:]
	log.CLI.Debug().Str("command", cmd).Str("network", string(network)).Msg("dispatch")

	switch cmd {
	case "generate":
		cmdGenerate(cmdArgs, network)
	case "import":
		cmdImport(cmdArgs, network)
	case "validate":
		cmdValidate(cmdArgs, network)
	case "convert":
		cmdConvert(cmdArgs)
	case "chains":
		cmdChains()
	case "help", "--help", "-h":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", cmd)
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: klinggive-cli [global flags] <command> [flags]

Global flags:
  --network <net>     mainnet (default) or testnet
  --log-level <lvl>   debug, info, warn, error (default: info)
  --json-logs         Emit logs as JSON

Commands:
  generate --chain <SYM> [--account N] [--index N] [--words 12|24] [--json]
                                  Generate a fresh wallet; prints the
                                  mnemonic exactly once
  import --chain <SYM> [--account N] [--index N] [--json]
                                  Re-derive an address from an existing
                                  mnemonic (prompted, not echoed)
  validate <address> --chain <SYM>
                                  Check an address (exit 0 valid, 1 not)
  convert --chain <SYM> --to-base <amt> | --from-base <units>
                                  Convert between display amounts and
                                  integer base units
  chains                          List supported chains and aliases
`)
}

func cmdGenerate(args []string, network chains.Network) {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	chain := fs.String("chain", "", "Chain symbol (BTC, ETH, XRP, or stablecoin alias)")
	account := fs.Uint("account", 0, "BIP-44 account index")
	index := fs.Uint("index", 0, "BIP-44 address index")
	words := fs.Int("words", wallet.MnemonicWords12, "Mnemonic length (12 or 24)")
	asJSON := fs.Bool("json", false, "Print the wallet as JSON")
	fs.Parse(args)

	if *chain == "" {
		fatal("Usage: klinggive-cli generate --chain <SYM> [--account N] [--index N] [--words 12|24]")
	}

	w, err := wallet.GenerateAt(*chain, network, uint32(*account), uint32(*index), *words)
	if err != nil {
		fatal("generate wallet: %v", err)
	}
	printWallet(w, *asJSON, true)
}

func cmdImport(args []string, network chains.Network) {
	fs := flag.NewFlagSet("import", flag.ExitOnError)
	chain := fs.String("chain", "", "Chain symbol")
	account := fs.Uint("account", 0, "BIP-44 account index")
	index := fs.Uint("index", 0, "BIP-44 address index")
	asJSON := fs.Bool("json", false, "Print the wallet as JSON")
	fs.Parse(args)

	if *chain == "" {
		fatal("Usage: klinggive-cli import --chain <SYM> [--account N] [--index N]")
	}

	mnemonic, err := readSecret("Enter mnemonic: ")
	if err != nil {
		fatal("read mnemonic: %v", err)
	}

	w, err := wallet.FromMnemonicAt(*chain, network, strings.TrimSpace(mnemonic), uint32(*account), uint32(*index))
	if err != nil {
		fatal("derive wallet: %v", err)
	}
	// The caller already holds the mnemonic; never echo it back.
	w.Mnemonic = ""
	printWallet(w, *asJSON, false)
}

func cmdValidate(args []string, network chains.Network) {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)
	chain := fs.String("chain", "", "Chain symbol")
	positional := []string{}
	for len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		positional = append(positional, args[0])
		args = args[1:]
	}
	fs.Parse(args)

	if *chain == "" || len(positional) != 1 {
		fatal("Usage: klinggive-cli validate <address> --chain <SYM>")
	}

	addr := positional[0]
	if validate.AddressOn(addr, *chain, network) {
		fmt.Printf("valid %s address: %s\n", strings.ToUpper(*chain), addr)
		return
	}
	fmt.Printf("INVALID %s address: %s\n", strings.ToUpper(*chain), addr)
	os.Exit(1)
}

func cmdConvert(args []string) {
	fs := flag.NewFlagSet("convert", flag.ExitOnError)
	chain := fs.String("chain", "", "Chain symbol")
	toBase := fs.String("to-base", "", "Decimal amount to convert to base units")
	fromBase := fs.String("from-base", "", "Integer base units to convert to a decimal amount")
	fs.Parse(args)

	if *chain == "" || (*toBase == "") == (*fromBase == "") {
		fatal("Usage: klinggive-cli convert --chain <SYM> --to-base <amt> | --from-base <units>")
	}

	if *toBase != "" {
		n, err := amount.ToBase(*toBase, *chain)
		if err != nil {
			fatal("convert: %v", err)
		}
		fmt.Println(n.String())
		return
	}

	n, ok := new(big.Int).SetString(*fromBase, 10)
	if !ok {
		fatal("convert: %q is not an integer", *fromBase)
	}
	s, err := amount.FromBase(n, *chain)
	if err != nil {
		fatal("convert: %v", err)
	}
	fmt.Println(s)
}

func cmdChains() {
	fmt.Println("Chains:")
	for _, sym := range chains.List() {
		p, _ := chains.Get(sym, chains.Mainnet)
		fmt.Printf("  %-5s %s (%d decimals, base unit: %s)\n", sym, p.Name, p.Decimals, p.BaseUnit)
	}
	fmt.Println("Stablecoin aliases (Ethereum network):")
	for _, sym := range chains.Aliases() {
		fmt.Printf("  %s\n", sym)
	}
}

func printWallet(w *wallet.GeneratedWallet, asJSON, withMnemonic bool) {
	if asJSON {
		out, err := json.MarshalIndent(w, "", "  ")
		if err != nil {
			fatal("encode wallet: %v", err)
		}
		fmt.Println(string(out))
		return
	}
	fmt.Printf("Chain:    %s\n", w.Chain)
	fmt.Printf("Address:  %s\n", w.Address)
	fmt.Printf("Path:     %s\n", w.DerivationPath)
	fmt.Printf("Pubkey:   %s\n", w.PublicKey)
	if withMnemonic {
		fmt.Printf("Mnemonic: %s\n", w.Mnemonic)
		fmt.Fprintln(os.Stderr, "\nWrite the mnemonic down now. It is shown exactly once and is the only way to recover this wallet.")
	}
}

// readSecret prompts on stderr and reads a line without echoing it.
func readSecret(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	secret, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(os.Stderr) // newline after hidden input
	if err != nil {
		return "", err
	}
	return string(secret), nil
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
