package entity

import (
	"fmt"
	"math"
	"strings"
)

const DefaultCurrency = "USD"

type Money struct {
	amount   float64
	currency string
}

// NewMoney rejects negative amounts and empty currencies; the currency code is upper-cased.
// Amounts are rounded to cents, the precision prices are stored with.
func NewMoney(amount float64, currency string) (Money, error) {
	var v violations
	if amount < 0 {
		v.add("price", "amount cannot be negative")
	}
	currency = strings.TrimSpace(currency)
	if currency == "" {
		v.add("currency", "cannot be empty")
	}
	if err := v.err(); err != nil {
		return Money{}, err
	}
	return Money{amount: math.Round(amount*100) / 100, currency: strings.ToUpper(currency)}, nil
}

func (m Money) Amount() float64 { return m.amount }

func (m Money) Currency() string { return m.currency }

func (m Money) Equals(other Money) bool {
	return m.amount == other.amount && m.currency == other.currency
}

func (m Money) String() string {
	return fmt.Sprintf("%.2f %s", m.amount, m.currency)
}
