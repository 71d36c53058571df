package finbook

import "fmt"

type Percent float64

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", p)
}

func (p Percent) SignedString() string {
	res := fmt.Sprintf("%+.2f%%", p)
	if res == "+0.00%" {
		return "-"
	}
	return res
}

// Direction reduces the percent change to a coarse trend: "up", "down" or
// "stable".
func (p Percent) Direction() string {
	switch {
	case p > 0:
		return "up"
	case p < 0:
		return "down"
	default:
		return "stable"
	}
}

// PercentChange computes the relative change from an old to a new amount.
// A change from zero to a positive amount is reported as +100%.
func PercentChange(old, new Money) Percent {
	if old.IsZero() {
		if new.IsPositive() {
			return 100
		}
		return 0
	}
	return new.Sub(old).PercentOf(old)
}
