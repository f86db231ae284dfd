package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Transaction is a single charge: a merchant and a formatted currency amount
// such as "$1.40". Transactions are values; two are equal when both fields are.
type Transaction struct {
	Merchant string
	Amount   string
}

func (t Transaction) String() string {
	return "Merchant: " + t.Merchant + ", Amount: " + t.Amount
}

// Value parses Amount into a decimal. It accepts an optional leading minus
// sign or accounting parentheses, a "$" symbol and "," thousands separators.
func (t Transaction) Value() (decimal.Decimal, error) {
	s := strings.TrimSpace(t.Amount)
	negative := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		negative = true
		s = s[1 : len(s)-1]
	}
	if strings.HasPrefix(s, "-") {
		negative = !negative
		s = s[1:]
	}
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("could not parse amount %q: %w", t.Amount, err)
	}
	if negative {
		d = d.Neg()
	}

	return d, nil
}
