package amount

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"
)

const (
	// Decimals is the number of fractional digits in one coin (1 HDS = 1e8 groth).
	Decimals = 8

	MinAmount = "0.00000001"
	MaxAmount = "254000000"
)

var (
	ErrInvalidAmount   = errors.New("invalid amount")
	ErrTooManyDecimals = errors.New("too many decimal places")
	ErrBelowMinimum    = errors.New("amount below minimum")
	ErrAboveMaximum    = errors.New("amount above maximum")
)

var (
	minAmount = decimal.RequireFromString(MinAmount)
	maxAmount = decimal.RequireFromString(MaxAmount)
)

// Validate checks that a machine-form amount can be sent: a number with at
// most Decimals fractional digits within [MinAmount, MaxAmount].
func Validate(machine string) error {
	d, err := decimal.NewFromString(machine)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidAmount, machine)
	}
	if !d.Equal(d.Truncate(Decimals)) {
		return fmt.Errorf("%w: %s", ErrTooManyDecimals, machine)
	}
	if d.LessThan(minAmount) {
		return fmt.Errorf("%w: %s < %s", ErrBelowMinimum, machine, MinAmount)
	}
	if d.GreaterThan(maxAmount) {
		return fmt.Errorf("%w: %s > %s", ErrAboveMaximum, machine, MaxAmount)
	}
	return nil
}

// FromUnits renders an amount given in the smallest coin unit as a
// machine-form string followed by the currency label, e.g. 150000000 HDS
// becomes "1.5 HDS".
func FromUnits(value uint64, c Currency) string {
	s := decimal.NewFromBigInt(new(big.Int).SetUint64(value), -Decimals).String()
	if label := c.Label(); label != "" {
		return s + " " + label
	}
	return s
}

// ToUnits parses a machine-form amount into the smallest coin unit.
func ToUnits(machine string) (uint64, error) {
	d, err := decimal.NewFromString(machine)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, machine)
	}
	if d.IsNegative() {
		return 0, fmt.Errorf("%w: negative amount %s", ErrInvalidAmount, machine)
	}
	if !d.Equal(d.Truncate(Decimals)) {
		return 0, fmt.Errorf("%w: %s", ErrTooManyDecimals, machine)
	}
	units := d.Shift(Decimals).BigInt()
	if !units.IsUint64() {
		return 0, fmt.Errorf("%w: %s overflows", ErrInvalidAmount, machine)
	}
	return units.Uint64(), nil
}

// Round rounds number to places fractional digits and drops trailing zeros.
// Input that does not parse is returned unchanged.
func Round(number string, places int32) string {
	d, err := decimal.NewFromString(number)
	if err != nil {
		return number
	}
	return d.Round(places).String()
}

// Multiply returns a*b rounded to places. It returns "" if either operand
// does not parse.
func Multiply(a, b string, places int32) string {
	da, err := decimal.NewFromString(a)
	if err != nil {
		return ""
	}
	db, err := decimal.NewFromString(b)
	if err != nil {
		return ""
	}
	return da.Mul(db).Round(places).String()
}

// Divide8 returns a/b rounded to 8 places, or "" on bad input or a zero
// divisor.
func Divide8(a, b string) string {
	da, err := decimal.NewFromString(a)
	if err != nil {
		return ""
	}
	db, err := decimal.NewFromString(b)
	if err != nil || db.IsZero() {
		return ""
	}
	return da.DivRound(db, Decimals).String()
}

// InSecondCurrency converts amount with rate for display next to the coin
// amount. Bitcoin keeps 8 places, everything else 2. An unset rate gives "".
func InSecondCurrency(amount, rate string, second Currency) string {
	if rate == "" || rate == "0" {
		return ""
	}
	if second == BTC {
		return Multiply(amount, rate, Decimals)
	}
	return Multiply(amount, rate, 2)
}

// FeeInSecondCurrency converts a fee in groth to the second currency,
// labelled. An unset rate shows "- <label>".
func FeeInSecondCurrency(fee uint64, rate string, second Currency) string {
	if rate == "" || rate == "0" {
		return "- " + second.Label()
	}
	fee8 := decimal.NewFromBigInt(new(big.Int).SetUint64(fee), -Decimals).String()
	return Multiply(fee8, rate, 2) + " " + second.Label()
}
