package finbook

import "testing"

func TestMoneyArithmetic(t *testing.T) {
	a := M(100.50, "EUR")
	b := M(49.50, "EUR")

	if got := a.Add(b); !got.Equal(M(150, "EUR")) {
		t.Errorf("Add = %s, want 150 EUR", got)
	}
	if got := a.Sub(b); !got.Equal(M(51, "EUR")) {
		t.Errorf("Sub = %s, want 51 EUR", got)
	}
	if got := a.Div(Q(3)); !got.Equal(M(33.50, "EUR")) {
		t.Errorf("Div = %s, want 33.50 EUR", got)
	}
}

func TestMoneyWeakCurrency(t *testing.T) {
	// The zero Money has no currency and must combine with any other.
	var zero Money
	got := zero.Add(M(10, "USD"))
	if got.Currency() != "USD" || !got.Equal(M(10, "USD")) {
		t.Errorf("zero.Add = %s %s, want 10 USD", got, got.Currency())
	}
}

func TestMoneyPercentOf(t *testing.T) {
	spent := M(75, "EUR")
	allocated := M(300, "EUR")
	if got := spent.PercentOf(allocated); !got.Equal(25) {
		t.Errorf("PercentOf = %s, want 25%%", got)
	}
	if got := spent.PercentOf(M(0, "EUR")); !got.Equal(0) {
		t.Errorf("PercentOf zero = %s, want 0%%", got)
	}
}

func TestPercentChange(t *testing.T) {
	tests := []struct {
		name     string
		old, new Money
		want     Percent
	}{
		{"growth", M(100, "EUR"), M(150, "EUR"), 50},
		{"decline", M(100, "EUR"), M(80, "EUR"), -20},
		{"from zero", M(0, "EUR"), M(42, "EUR"), 100},
		{"zero to zero", M(0, "EUR"), M(0, "EUR"), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PercentChange(tt.old, tt.new); !got.Equal(tt.want) {
				t.Errorf("PercentChange = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestSignedString(t *testing.T) {
	if got := M(0, "EUR").SignedString(); got != "-" {
		t.Errorf("zero SignedString = %q, want \"-\"", got)
	}
	if got := M(10, "EUR").SignedString(); got[0] != '+' {
		t.Errorf("positive SignedString = %q, want a leading +", got)
	}
}
