package model

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/ledgerlite/ledgerlite/internal/common"
)

// Money is a fixed-point amount with two fractional digits, held as cents.
// Amounts are unsigned magnitudes; direction comes from the category type.
type Money struct {
	Cents int64
}

// ErrInvalidAmount is returned for amounts that are not a positive decimal
// number with at most a parseable fraction.
var ErrInvalidAmount = fmt.Errorf("%w: invalid amount", common.ErrInvalidArgument)

// ParseMoney converts a decimal string such as "12.34" into Money. Both dot
// and comma decimal separators are accepted. Anything beyond the second
// fractional digit is rounded half-away-from-zero. Signs, zero, and
// non-numeric input are rejected.
func ParseMoney(s string) (Money, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Money{}, ErrInvalidAmount
	}
	s = strings.ReplaceAll(s, ",", ".")
	if strings.HasPrefix(s, "+") || strings.HasPrefix(s, "-") {
		return Money{}, ErrInvalidAmount
	}

	intPart, fracPart, _ := strings.Cut(s, ".")
	if strings.Contains(fracPart, ".") {
		return Money{}, ErrInvalidAmount
	}
	if intPart == "" {
		intPart = "0"
	}
	for _, r := range intPart + fracPart {
		if !unicode.IsDigit(r) {
			return Money{}, ErrInvalidAmount
		}
	}

	whole, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return Money{}, ErrInvalidAmount
	}
	// Guard the *100 below
	const maxWhole = (1<<63 - 1) / 100
	if whole > maxWhole {
		return Money{}, ErrInvalidAmount
	}

	var frac int64
	if len(fracPart) > 0 {
		frac = int64(fracPart[0]-'0') * 10
		if len(fracPart) > 1 {
			frac += int64(fracPart[1] - '0')
			// Amounts are non-negative, so half-away-from-zero is half-up.
			if len(fracPart) > 2 && fracPart[2] >= '5' {
				frac++
			}
		}
	}

	cents := whole*100 + frac
	if cents <= 0 {
		return Money{}, ErrInvalidAmount
	}
	return Money{Cents: cents}, nil
}

// Add returns the sum of two amounts.
func (m Money) Add(o Money) Money {
	return Money{Cents: m.Cents + o.Cents}
}

// String formats the amount with exactly two fractional digits. Stored
// amounts are always positive, but the sign is handled explicitly so a
// hand-built negative value still prints sensibly.
func (m Money) String() string {
	cents := m.Cents
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}

// Validate rejects non-positive amounts.
func (m Money) Validate() error {
	if m.Cents <= 0 {
		return ErrInvalidAmount
	}
	return nil
}
