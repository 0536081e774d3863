// Package core provides money parsing and handling utilities.
//
// This file contains functions for parsing monetary amounts from strings
// and deriving display strings at the presentation boundary. All arithmetic
// happens on integer centavos; formatted strings are never parsed back.
package core

import (
	"strconv"
	"strings"
	"unicode"
)

// ParseSignedDecimalToCents converts a decimal string to signed cents with
// half-up rounding on the third decimal place.
//
// It accepts both dot (12.34) and comma (12,34) decimal separators, an
// optional leading "+" or "-", and thousands separators are not supported.
// Zero amounts are rejected: a zero-value transaction is meaningless.
//
// Examples:
//
//	ParseSignedDecimalToCents("12.34")   -> 1234, nil
//	ParseSignedDecimalToCents("-12,34")  -> -1234, nil
//	ParseSignedDecimalToCents("+12.346") -> 1235, nil (rounds up)
//	ParseSignedDecimalToCents("0")       -> 0, ErrZeroAmount
func ParseSignedDecimalToCents(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidAmount
	}
	// Normalize decimal comma to dot
	s = strings.ReplaceAll(s, ",", ".")

	sign := int64(1)
	switch {
	case strings.HasPrefix(s, "+"):
		s = s[1:]
	case strings.HasPrefix(s, "-"):
		sign = -1
		s = s[1:]
	}
	if s == "" {
		return 0, ErrInvalidAmount
	}

	// Split into integer and fractional part
	parts := strings.Split(s, ".")
	if len(parts) > 2 {
		return 0, ErrInvalidAmount
	}
	intPart := parts[0]
	fracPart := ""
	if len(parts) == 2 {
		fracPart = parts[1]
	}
	if intPart == "" {
		intPart = "0"
	}
	for _, r := range intPart {
		if !unicode.IsDigit(r) {
			return 0, ErrInvalidAmount
		}
	}
	for _, r := range fracPart {
		if !unicode.IsDigit(r) {
			return 0, ErrInvalidAmount
		}
	}

	iv, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	// Prevent overflow when multiplying by 100
	const maxSafeInt64 = (1<<63 - 1) / 100
	if iv > maxSafeInt64 {
		return 0, ErrInvalidAmount
	}

	// Take the first two fractional digits; half-up rounding on the third.
	var fracCents int64
	if len(fracPart) > 0 {
		fracCents = int64(fracPart[0]-'0') * 10
		if len(fracPart) > 1 {
			fracCents += int64(fracPart[1] - '0')
			if len(fracPart) > 2 && fracPart[2] >= '5' {
				fracCents++
			}
		}
	}

	cents := iv*100 + fracCents
	if cents == 0 {
		return 0, ErrZeroAmount
	}
	return sign * cents, nil
}

// FormatPesos renders the magnitude as "₱1,234.56". The sign is dropped;
// use FormatSignedPesos when direction matters.
func FormatPesos(m Money) string {
	cents := m.Cents
	if cents < 0 {
		cents = -cents
	}
	whole := strconv.FormatInt(cents/100, 10)
	return "₱" + groupThousands(whole) + "." + pad2(cents%100)
}

// FormatSignedPesos renders the amount with an explicit direction prefix,
// "+₱2,400.00" for income and "-₱152.50" for expenses.
func FormatSignedPesos(m Money) string {
	if m.Cents < 0 {
		return "-" + FormatPesos(m)
	}
	return "+" + FormatPesos(m)
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

func pad2(n int64) string {
	if n < 10 {
		return "0" + strconv.FormatInt(n, 10)
	}
	return strconv.FormatInt(n, 10)
}
