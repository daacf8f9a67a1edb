package core

import "testing"

func TestParseDecimalToCents(t *testing.T) {
	cases := []struct {
		in  string
		out int64
		ok  bool
	}{
		{"1", 100, true},
		{"1.0", 100, true},
		{"1.23", 123, true},
		{"1,23", 123, true},
		{"0.01", 1, true},
		{"1.005", 101, true}, // half-up rounding
		{" 2.50 ", 250, true},
		{"-1", 0, false},
		{"0", 0, false},
		{"abc", 0, false},
		{"1.2.3", 0, false},
		{"", 0, false},
	}
	for _, tc := range cases {
		got, err := ParseDecimalToCents(tc.in)
		if tc.ok {
			if err != nil || got != tc.out {
				t.Fatalf("%q expected %d, got %d (err=%v)", tc.in, tc.out, got, err)
			}
		} else {
			if err == nil {
				t.Fatalf("%q expected error", tc.in)
			}
		}
	}
}

func TestMoneyArithmetic(t *testing.T) {
	a := Money{Cents: 150}
	b := Money{Cents: 200}
	if got := a.Add(b); got.Cents != 350 {
		t.Fatalf("Add = %d, want 350", got.Cents)
	}
	if got := a.Sub(b); got.Cents != -50 {
		t.Fatalf("Sub = %d, want -50", got.Cents)
	}
	if got := (Money{Cents: 1234}).Units(); got != 12.34 {
		t.Fatalf("Units = %v, want 12.34", got)
	}
}
