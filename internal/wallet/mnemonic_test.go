package wallet

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestGenerateMnemonic(t *testing.T) {
	mnemonic, err := GenerateMnemonic()
	if err != nil {
		t.Fatalf("GenerateMnemonic() error: %v", err)
	}

	words := strings.Fields(mnemonic)
	if len(words) != 12 {
		t.Errorf("word count = %d, want 12", len(words))
	}
}

func TestGenerateMnemonicWords(t *testing.T) {
	tests := []struct {
		words   int
		wantErr bool
	}{
		{12, false},
		{24, false},
		{15, true},
		{0, true},
		{-12, true},
	}

	for _, tt := range tests {
		mnemonic, err := GenerateMnemonicWords(tt.words)
		if tt.wantErr {
			if err == nil {
				t.Errorf("GenerateMnemonicWords(%d) expected error", tt.words)
			}
			continue
		}
		if err != nil {
			t.Fatalf("GenerateMnemonicWords(%d) error: %v", tt.words, err)
		}
		if got := len(strings.Fields(mnemonic)); got != tt.words {
			t.Errorf("word count = %d, want %d", got, tt.words)
		}
	}
}

func TestGenerateMnemonic_Unique(t *testing.T) {
	m1, err := GenerateMnemonic()
	if err != nil {
		t.Fatalf("GenerateMnemonic() error: %v", err)
	}
	m2, err := GenerateMnemonic()
	if err != nil {
		t.Fatalf("GenerateMnemonic() error: %v", err)
	}

	if m1 == m2 {
		t.Error("two generated mnemonics should not be identical")
	}
}

func TestGenerateMnemonic_Valid(t *testing.T) {
	mnemonic, err := GenerateMnemonic()
	if err != nil {
		t.Fatalf("GenerateMnemonic() error: %v", err)
	}

	if !ValidateMnemonic(mnemonic) {
		t.Error("generated mnemonic should validate")
	}
}

func TestGenerateMnemonic_EntropyFailure(t *testing.T) {
	// An exhausted reader must abort generation; there is no fallback.
	SetEntropySource(bytes.NewReader(nil))
	defer SetEntropySource(nil)

	_, err := GenerateMnemonic()
	if !errors.Is(err, ErrEntropyUnavailable) {
		t.Errorf("expected ErrEntropyUnavailable, got: %v", err)
	}
}

func TestGenerateMnemonic_InjectedEntropy(t *testing.T) {
	// All-zero 128-bit entropy is the first BIP-39 reference vector.
	SetEntropySource(bytes.NewReader(make([]byte, 16)))
	defer SetEntropySource(nil)

	mnemonic, err := GenerateMnemonic()
	if err != nil {
		t.Fatalf("GenerateMnemonic() error: %v", err)
	}
	want := "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"
	if mnemonic != want {
		t.Errorf("mnemonic = %q, want %q", mnemonic, want)
	}
}

func TestValidateMnemonic(t *testing.T) {
	tests := []struct {
		name     string
		mnemonic string
		valid    bool
	}{
		{
			name:     "valid 24-word BIP-39",
			mnemonic: "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon art",
			valid:    true,
		},
		{
			name:     "valid 12-word BIP-39",
			mnemonic: "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about",
			valid:    true,
		},
		{
			name:     "empty string",
			mnemonic: "",
			valid:    false,
		},
		{
			name:     "random words",
			mnemonic: "not a valid mnemonic phrase at all",
			valid:    false,
		},
		{
			name:     "wrong checksum",
			mnemonic: "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon",
			valid:    false,
		},
		{
			name:     "word outside the wordlist",
			mnemonic: "abandoned abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about",
			valid:    false,
		},
		{
			name:     "thirteen words",
			mnemonic: "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about",
			valid:    false,
		},
		{
			name:     "single word",
			mnemonic: "abandon",
			valid:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidateMnemonic(tt.mnemonic); got != tt.valid {
				t.Errorf("ValidateMnemonic() = %v, want %v", got, tt.valid)
			}
		})
	}
}
