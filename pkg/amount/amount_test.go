package amount

import (
	"errors"
	"math/big"
	"testing"
)

func TestToBase(t *testing.T) {
	tests := []struct {
		name   string
		amount string
		symbol string
		want   string
	}{
		{"one btc", "1", "BTC", "100000000"},
		{"half btc", "0.5", "BTC", "50000000"},
		{"one satoshi", "0.00000001", "BTC", "1"},
		{"21 million btc", "21000000", "BTC", "2100000000000000"},
		{"one eth", "1", "ETH", "1000000000000000000"},
		{"one wei", "0.000000000000000001", "ETH", "1"},
		{"one gwei", "0.000000001", "ETH", "1000000000"},
		{"large eth", "123456789.123456789123456789", "ETH", "123456789123456789123456789"},
		{"one xrp", "1", "XRP", "1000000"},
		{"one drop", "0.000001", "XRP", "1"},
		{"zero", "0", "BTC", "0"},
		{"zero with fraction", "0.0", "BTC", "0"},
		{"bare fraction", ".5", "BTC", "50000000"},
		{"trailing dot", "1.", "BTC", "100000000"},
		{"alias uses eth decimals", "1", "USDT", "1000000000000000000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToBase(tt.amount, tt.symbol)
			if err != nil {
				t.Fatalf("ToBase(%q, %s) error: %v", tt.amount, tt.symbol, err)
			}
			if got.String() != tt.want {
				t.Errorf("ToBase(%q, %s) = %s, want %s", tt.amount, tt.symbol, got, tt.want)
			}
		})
	}
}

func TestToBase_Errors(t *testing.T) {
	tests := []struct {
		name    string
		amount  string
		symbol  string
		wantErr error
	}{
		{"negative", "-1", "BTC", ErrNegativeAmount},
		{"negative fraction", "-0.5", "BTC", ErrNegativeAmount},
		{"leading plus", "+1", "BTC", ErrMalformedAmount},
		{"empty", "", "BTC", ErrMalformedAmount},
		{"lone dot", ".", "BTC", ErrMalformedAmount},
		{"double dot", "1.2.3", "BTC", ErrMalformedAmount},
		{"letters", "1a", "BTC", ErrMalformedAmount},
		{"hex", "0x10", "BTC", ErrMalformedAmount},
		{"scientific notation", "1e8", "BTC", ErrMalformedAmount},
		{"comma separator", "1,5", "BTC", ErrMalformedAmount},
		{"too precise btc", "0.000000001", "BTC", ErrTooManyDecimals},
		{"too precise xrp", "0.0000001", "XRP", ErrTooManyDecimals},
		{"too precise eth", "0.0000000000000000001", "ETH", ErrTooManyDecimals},
		{"unknown chain", "1", "DOGE", ErrUnsupportedChain},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ToBase(tt.amount, tt.symbol)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ToBase(%q, %s) error = %v, want %v", tt.amount, tt.symbol, err, tt.wantErr)
			}
		})
	}
}

func TestFromBase(t *testing.T) {
	tests := []struct {
		name   string
		n      string
		symbol string
		want   string
	}{
		{"one btc", "100000000", "BTC", "1.00000000"},
		{"one satoshi", "1", "BTC", "0.00000001"},
		{"one eth", "1000000000000000000", "ETH", "1.000000000000000000"},
		{"one wei", "1", "ETH", "0.000000000000000001"},
		{"one xrp", "1000000", "XRP", "1.000000"},
		{"one drop", "1", "XRP", "0.000001"},
		{"zero", "0", "BTC", "0.00000000"},
		{"beyond uint64", "123456789123456789123456789", "ETH", "123456789.123456789123456789"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, ok := new(big.Int).SetString(tt.n, 10)
			if !ok {
				t.Fatalf("bad test input %q", tt.n)
			}
			got, err := FromBase(n, tt.symbol)
			if err != nil {
				t.Fatalf("FromBase(%s, %s) error: %v", tt.n, tt.symbol, err)
			}
			if got != tt.want {
				t.Errorf("FromBase(%s, %s) = %q, want %q", tt.n, tt.symbol, got, tt.want)
			}
		})
	}
}

func TestFromBase_Errors(t *testing.T) {
	if _, err := FromBase(big.NewInt(-1), "BTC"); !errors.Is(err, ErrNegativeAmount) {
		t.Errorf("negative input: error = %v, want ErrNegativeAmount", err)
	}
	if _, err := FromBase(nil, "BTC"); !errors.Is(err, ErrMalformedAmount) {
		t.Errorf("nil input: error = %v, want ErrMalformedAmount", err)
	}
	if _, err := FromBase(big.NewInt(1), "DOGE"); !errors.Is(err, ErrUnsupportedChain) {
		t.Errorf("unknown chain: error = %v, want ErrUnsupportedChain", err)
	}
}

func TestRoundTrip(t *testing.T) {
	amounts := []struct {
		amount string
		symbol string
	}{
		{"1.00000000", "BTC"},
		{"0.00000001", "BTC"},
		{"20999999.99999999", "BTC"},
		{"1.000000000000000000", "ETH"},
		{"0.000000000000000001", "ETH"},
		{"1.000000", "XRP"},
		{"99999999999.999999", "XRP"},
	}

	for _, tt := range amounts {
		n, err := ToBase(tt.amount, tt.symbol)
		if err != nil {
			t.Fatalf("ToBase(%q, %s) error: %v", tt.amount, tt.symbol, err)
		}
		back, err := FromBase(n, tt.symbol)
		if err != nil {
			t.Fatalf("FromBase error: %v", err)
		}
		if back != tt.amount {
			t.Errorf("round trip %s %s: got %q back", tt.amount, tt.symbol, back)
		}
	}
}
