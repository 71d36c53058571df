package finbook

import (
	"fmt"
	"strings"
)

// InvestmentType classifies an investment position.
type InvestmentType string

const (
	Stock      InvestmentType = "stock"
	Bond       InvestmentType = "bond"
	Fund       InvestmentType = "fund"
	Crypto     InvestmentType = "crypto"
	RealEstate InvestmentType = "real_estate"
	Commodity  InvestmentType = "commodity"
	OtherAsset InvestmentType = "other"
)

// ParseInvestmentType parses a string into an InvestmentType.
func ParseInvestmentType(s string) (InvestmentType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "stock":
		return Stock, nil
	case "bond":
		return Bond, nil
	case "fund":
		return Fund, nil
	case "crypto":
		return Crypto, nil
	case "real_estate", "real-estate", "realestate":
		return RealEstate, nil
	case "commodity":
		return Commodity, nil
	case "other":
		return OtherAsset, nil
	default:
		return "", fmt.Errorf("unknown investment type %q", s)
	}
}

// Investment is a position valued by hand: there is no market data feed, the
// current value only moves when the user issues an explicit revalue command.
type Investment struct {
	ID            ID
	Name          string
	Type          InvestmentType
	Initial       Money    // amount originally invested
	Shares        Quantity // optional number of shares or units
	PurchasePrice Money    // optional price paid per share
	PurchaseDate  Date
	Current       Money // latest known value of the whole position
	ValuedOn      Date  // date of the latest revaluation
}

// NewInvestment creates an investment with a fresh identifier. The current
// value starts at the initial amount until the first revaluation.
func NewInvestment(name string, typ InvestmentType, initial Money, purchase Date) Investment {
	return Investment{
		ID:           NewID(),
		Name:         name,
		Type:         typ,
		Initial:      initial,
		PurchaseDate: purchase,
		Current:      initial,
		ValuedOn:     purchase,
	}
}

// Validate checks the investment for correctness and applies quick fixes
// (zero purchase date resolves to today, zero current value to the initial
// amount).
func (v Investment) Validate() (Investment, error) {
	if v.ID == "" {
		v.ID = NewID()
	}
	if strings.TrimSpace(v.Name) == "" {
		return v, fmt.Errorf("investment name is missing")
	}
	if _, err := ParseInvestmentType(string(v.Type)); err != nil {
		return v, err
	}
	if !v.Initial.IsPositive() {
		return v, fmt.Errorf("initial amount must be positive, got %s", v.Initial)
	}
	if v.Shares.IsNegative() {
		return v, fmt.Errorf("shares must not be negative, got %s", v.Shares)
	}
	if v.PurchasePrice.IsNegative() {
		return v, fmt.Errorf("purchase price must not be negative, got %s", v.PurchasePrice)
	}
	if v.PurchaseDate.IsZero() {
		v.PurchaseDate = Today()
	}
	if v.Current.IsZero() {
		v.Current = v.Initial
	}
	if v.ValuedOn.IsZero() {
		v.ValuedOn = v.PurchaseDate
	}
	return v, nil
}

// Gain returns the absolute return of the position: current value minus the
// amount invested.
func (v Investment) Gain() Money {
	return v.Current.Sub(v.Initial)
}

// GainPercent returns the relative return of the position.
func (v Investment) GainPercent() Percent {
	return v.Gain().PercentOf(v.Initial)
}

// MarshalJSON implements json.Marshaler with a canonical field order.
func (v Investment) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("record", recordInvestment)
	w.Append("id", v.ID)
	w.Append("name", v.Name)
	w.Append("type", v.Type)
	w.PrefixFrom("initial", v.Initial)
	if !v.Shares.IsZero() {
		w.Append("shares", v.Shares)
	}
	if !v.PurchasePrice.IsZero() {
		w.PrefixFrom("purchase", v.PurchasePrice)
	}
	w.Append("purchaseDate", v.PurchaseDate)
	w.PrefixFrom("current", v.Current)
	w.Append("valuedOn", v.ValuedOn)
	return w.MarshalJSON()
}
