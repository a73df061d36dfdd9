package odds

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Format identifies how odds are written on input.
type Format string

const (
	FormatDecimal  Format = "decimal"
	FormatAmerican Format = "american"
)

// ParseFormat maps a config string to a Format.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatDecimal, "":
		return FormatDecimal, nil
	case FormatAmerican:
		return FormatAmerican, nil
	}
	return "", fmt.Errorf("unknown odds format %q", s)
}

// DecimalToImplied converts decimal odds to implied probability
// Example: 2.5 → 0.4, 4.0 → 0.25
func DecimalToImplied(decimalOdds float64) float64 {
	if decimalOdds <= 0 {
		return 0
	}
	return 1.0 / decimalOdds
}

// AmericanToImplied converts American odds to implied probability
// Example: -150 → 0.6 (60%), +150 → 0.4 (40%)
// Values strictly between -100 and +100 are not American odds and return 0.
func AmericanToImplied(odds int) float64 {
	switch {
	case odds >= 100:
		return 100.0 / (float64(odds) + 100.0)
	case odds <= -100:
		abs := math.Abs(float64(odds))
		return abs / (abs + 100.0)
	}
	return 0
}

// AmericanToDecimal converts American odds to decimal odds (1 / implied)
// Example: +150 → 2.5, -200 → 1.5
// Returns 0 for values that are not American odds.
func AmericanToDecimal(odds int) float64 {
	p := AmericanToImplied(odds)
	if p <= 0 {
		return 0
	}
	return 1.0 / p
}

// ParseAmerican parses a token such as "+150" or "-110".
func ParseAmerican(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimPrefix(strings.TrimSpace(s), "+"))
	if err != nil {
		return 0, err
	}
	if n > -100 && n < 100 {
		return 0, fmt.Errorf("american odds %d out of range", n)
	}
	return n, nil
}

// ToDecimal converts a single odds token in format f to decimal odds.
func ToDecimal(token string, f Format) (float64, error) {
	switch f {
	case FormatAmerican:
		n, err := ParseAmerican(token)
		if err != nil {
			return 0, err
		}
		return AmericanToDecimal(n), nil
	default:
		v, err := strconv.ParseFloat(strings.TrimSpace(token), 64)
		if err != nil {
			return 0, err
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, fmt.Errorf("odds %q is not finite", token)
		}
		return v, nil
	}
}
