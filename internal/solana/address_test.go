package solana

import (
	"strings"
	"testing"
)

func TestIsValidAddress(t *testing.T) {
	tests := []struct {
		address string
		want    bool
	}{
		// well-formed, at both permitted lengths
		{"ALiCEqZUF4VYuxTu1UQvzDqbpGYYFrxH6kQxWFB8Nqp3", true},
		{"4Nd1mYdejkCFCzjjXK9QvZGAg3JbmFVF", true},

		// length violations
		{"", false},
		{"4Nd1mYdejkCFCzjjXK9QvZGAg3JbmFV", false},
		{"ALiCEqZUF4VYuxTu1UQvzDqbpGYYFrxH6kQxWFB8Nqp31", false},

		// characters base58 excludes: 0, I, O, l
		{"0Nd1mYdejkCFCzjjXK9QvZGAg3JbmFVF", false},
		{"INd1mYdejkCFCzjjXK9QvZGAg3JbmFVF", false},
		{"ONd1mYdejkCFCzjjXK9QvZGAg3JbmFVF", false},
		{"lNd1mYdejkCFCzjjXK9QvZGAg3JbmFVF", false},

		// characters outside the alphabet entirely
		{"4Nd1mYdejkCFCzjjXK9QvZGAg3Jbm+VF", false},
		{"4Nd1 YdejkCFCzjjXK9QvZGAg3JbmFVF", false},
		{"ALiCEqZUF4VYuxTu1UQvzDqbpGYYFrxH6kQxWFB8Nqp3 ", false},
		{" ALiCEqZUF4VYuxTu1UQvzDqbpGYYFrxH6kQxWFB8Nqp3", false},
	}
	for _, tt := range tests {
		if got := IsValidAddress(tt.address); got != tt.want {
			t.Errorf("IsValidAddress(%q) = %v, want %v", tt.address, got, tt.want)
		}
	}
}

func TestIsValidAddress_LengthBounds(t *testing.T) {
	for _, n := range []int{MinAddressLength, MaxAddressLength} {
		if !IsValidAddress(strings.Repeat("A", n)) {
			t.Errorf("expected length %d to be valid", n)
		}
	}
	for _, n := range []int{MinAddressLength - 1, MaxAddressLength + 1} {
		if IsValidAddress(strings.Repeat("A", n)) {
			t.Errorf("expected length %d to be invalid", n)
		}
	}
}
