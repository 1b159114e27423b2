package cli

import "testing"

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{0, "$0"},
		{1595, "$1,595"},
		{1993.4, "$1,993"},
		{118246, "$118,246"},
		{-250, "-$250"},
	}
	for _, tt := range tests {
		if got := FormatMoney("$", tt.amount); got != tt.want {
			t.Errorf("FormatMoney(%v) = %q, want %q", tt.amount, got, tt.want)
		}
	}
}

func TestFormatMoneyPrecise(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{219.957, "$219.96"},
		{7.37, "$7.37"},
		{0, "$0.00"},
		{1234.5, "$1,234.50"},
		{9.999, "$10.00"},
	}
	for _, tt := range tests {
		if got := FormatMoneyPrecise("$", tt.amount); got != tt.want {
			t.Errorf("FormatMoneyPrecise(%v) = %q, want %q", tt.amount, got, tt.want)
		}
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-45000, "-45,000"},
	}
	for _, tt := range tests {
		if got := FormatNumber(tt.n); got != tt.want {
			t.Errorf("FormatNumber(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestFormatHours(t *testing.T) {
	if got := FormatHours(12); got != "12h" {
		t.Errorf("FormatHours(12) = %q, want 12h", got)
	}
	if got := FormatHours(7.25); got != "7.25h" {
		t.Errorf("FormatHours(7.25) = %q, want 7.25h", got)
	}
}

func TestFormatPercent(t *testing.T) {
	if got := FormatPercent(97); got != "97%" {
		t.Errorf("FormatPercent(97) = %q, want 97%%", got)
	}
}
