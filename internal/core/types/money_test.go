package types

import (
	"testing"
)

func TestMoneyArithmeticExact(t *testing.T) {
	// 0.1 + 0.2 must be exactly 0.3.
	a := MustMoney("0.1")
	b := MustMoney("0.2")
	if got := a.Add(b); !got.Equal(MustMoney("0.3")) {
		t.Errorf("0.1 + 0.2 = %s, want 0.3", got)
	}

	// Break-even detection relies on an exact zero.
	net := MustMoney("10000.00").Sub(MustMoney("9999.99")).Sub(MustMoney("0.01"))
	if net.Sign() != 0 {
		t.Errorf("net = %s, want exact zero", net)
	}
}

func TestNewMoneyFromString(t *testing.T) {
	tests := []struct {
		in      string
		wantErr bool
	}{
		{"12000", false},
		{"12000.50", false},
		{"-3.99", false},
		{"", true},
		{"twelve", true},
		{"1,000", true},
	}
	for _, tt := range tests {
		_, err := NewMoneyFromString(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("NewMoneyFromString(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
	}
}

func TestSumMoney(t *testing.T) {
	values := []Money{MustMoney("100.10"), MustMoney("200.20"), MustMoney("-50.30")}
	if got := SumMoney(values); !got.Equal(MustMoney("250")) {
		t.Errorf("SumMoney = %s, want 250", got)
	}
	if got := SumMoney(nil); !got.Equal(Zero()) {
		t.Errorf("SumMoney(nil) = %s, want 0", got)
	}
}

func TestDisplayMoney(t *testing.T) {
	tests := []struct {
		name     string
		amount   string
		currency string
		want     string
	}{
		{"usd whole", "12000", "USD", "$12,000.00"},
		{"usd cents", "9.99", "USD", "$9.99"},
		{"usd negative", "-100.50", "USD", "-$100.50"},
		{"eur", "1500", "EUR", "€1,500.00"},
		{"jpy no fraction", "1500", "JPY", "¥1,500"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DisplayMoney(MustMoney(tt.amount), tt.currency); got != tt.want {
				t.Errorf("DisplayMoney(%s, %s) = %q, want %q", tt.amount, tt.currency, got, tt.want)
			}
		})
	}
}
