package currency

import (
	"math"
	"testing"

	"wealthwise/internal/core"
)

func TestParseCode(t *testing.T) {
	cases := []struct {
		in  string
		out Code
		ok  bool
	}{
		{"USD", USD, true},
		{"usd", USD, true},
		{" eur ", EUR, true},
		{"JPY", JPY, true},
		{"INR", INR, true},
		{"GBP", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		got, err := ParseCode(tc.in)
		if tc.ok {
			if err != nil || got != tc.out {
				t.Fatalf("ParseCode(%q) = %v, %v; want %v", tc.in, got, err, tc.out)
			}
		} else if err == nil {
			t.Fatalf("ParseCode(%q) expected error", tc.in)
		}
	}
}

func TestConversionRoundTrip(t *testing.T) {
	amount := core.Money{Cents: 1234567}
	for _, c := range Codes() {
		s := NewService()
		if err := s.Set(c); err != nil {
			t.Fatalf("Set(%s): %v", c, err)
		}
		converted := s.ConvertFromBase(amount)
		recovered := converted / Rate(c)
		if math.Abs(recovered-amount.Units()) > 1e-9 {
			t.Fatalf("%s round-trip: got %v, want %v", c, recovered, amount.Units())
		}
	}
}

func TestSetRejectsUnknownCode(t *testing.T) {
	s := NewService()
	if err := s.Set("GBP"); err == nil {
		t.Fatalf("expected error for unknown code")
	}
	if s.Active() != Base {
		t.Fatalf("active changed after failed Set: %s", s.Active())
	}
}

func TestFormat(t *testing.T) {
	cases := []struct {
		code  Code
		cents int64
		want  string
	}{
		{USD, 123456, "$1,234.56"},
		{USD, 500000000, "$5,000,000.00"},
		{USD, -30000, "-$300.00"},
		{EUR, 100000, "€930.00"},
		{JPY, 100000, "¥157,000"}, // no minor unit
		{INR, 100, "₹83.00"},
	}
	for _, tc := range cases {
		s := NewService()
		if err := s.Set(tc.code); err != nil {
			t.Fatalf("Set(%s): %v", tc.code, err)
		}
		if got := s.Format(core.Money{Cents: tc.cents}); got != tc.want {
			t.Fatalf("Format(%s, %d) = %q, want %q", tc.code, tc.cents, got, tc.want)
		}
	}
}

func TestSwitchingCurrencyChangesNextRead(t *testing.T) {
	s := NewService()
	amount := core.Money{Cents: 10000}
	if got := s.Format(amount); got != "$100.00" {
		t.Fatalf("default format = %q", got)
	}
	if err := s.Set(EUR); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if got := s.Format(amount); got != "€93.00" {
		t.Fatalf("after switch format = %q", got)
	}
}
