package supplier

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

// LeadingInt parses the integer that starts s, ignoring thousands separators.
// "1.234 In Stock" -> 1234, "56 Days" -> 56.
func LeadingInt(s string) (int, bool) {
	s = strings.TrimSpace(s)
	end := strings.IndexFunc(s, unicode.IsSpace)
	if end >= 0 {
		s = s[:end]
	}
	s = strings.NewReplacer(".", "", ",", "").Replace(s)
	if s == "" {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// ParseLocalizedPrice parses a price label such as "12,34 kr", "1.234,50 kr."
// or "0.405" into a decimal. The last of '.' or ',' is taken as the decimal
// separator when both occur. A separator repeated on its own ("1.234.567")
// groups thousands. A single lone separator is always decimal, so "1.234 kr"
// is 1.234; Mouser DKK labels always carry a comma and two decimals.
func ParseLocalizedPrice(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if end := strings.IndexFunc(s, unicode.IsSpace); end >= 0 {
		s = s[:end]
	}
	s = strings.TrimFunc(s, func(r rune) bool { return !unicode.IsDigit(r) })

	lastDot := strings.LastIndex(s, ".")
	lastComma := strings.LastIndex(s, ",")
	switch {
	case lastDot >= 0 && lastComma >= 0 && lastComma > lastDot:
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	case lastDot >= 0 && lastComma >= 0:
		s = strings.ReplaceAll(s, ",", "")
	case strings.Count(s, ".") > 1:
		s = strings.ReplaceAll(s, ".", "")
	case strings.Count(s, ",") > 1:
		s = strings.ReplaceAll(s, ",", "")
	case lastComma >= 0:
		s = strings.Replace(s, ",", ".", 1)
	}
	return decimal.NewFromString(s)
}

// Days returns a pointer to n, for LeadTimeDays.
func Days(n int) *int { return &n }
