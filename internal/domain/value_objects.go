package domain

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ProviderOrderID is the order identifier Cashea assigns. Callers send it
// either as a JSON string or as a bare number. Numbers are written in plain
// decimal form (1e3 becomes "1000") and a numeric 0 counts as missing. The
// string "0" is kept as is.
type ProviderOrderID string

func (id *ProviderOrderID) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*id = ProviderOrderID(strings.TrimSpace(s))
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err == nil {
		d, err := decimal.NewFromString(n.String())
		if err != nil {
			return fmt.Errorf("idNumber %s is not a usable number: %w", n, err)
		}
		if d.IsZero() {
			*id = ""
			return nil
		}
		*id = ProviderOrderID(d.String())
		return nil
	}

	return fmt.Errorf("idNumber must be a string or a number, got %s", string(b))
}

func (id ProviderOrderID) String() string {
	return string(id)
}

// Amount is a decimal money value. Decoding never fails: anything that is
// not a number or a numeric string becomes zero and is rejected later by
// validation, so "abc" and -5 end up in the same place.
type Amount struct {
	decimal.Decimal
}

func NewAmount(value string) Amount {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Amount{}
	}
	return Amount{Decimal: d}
}

func (a *Amount) UnmarshalJSON(b []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(b); err != nil {
		a.Decimal = decimal.Zero
		return nil
	}
	a.Decimal = d
	return nil
}

// MarshalJSON writes the amount as a JSON number.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.Decimal.String()), nil
}

// Number returns the amount as a json.Number for payloads that expect a
// numeric literal.
func (a Amount) Number() json.Number {
	return json.Number(a.Decimal.String())
}
