package x12

import (
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	layoutCalendarDate = "2006-01-02"
	layoutWireDate     = "20060102"
	layoutWireDateYY   = "060102"
	layoutWireTime     = "1504"
)

var (
	regexDigits       = regexp.MustCompile(`^\d+$`)
	regexCalendarDate = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	regexWireDate     = regexp.MustCompile(`^\d{8}$`)
	nonDigit          = regexp.MustCompile(`\D`)
)

// FormatDate renders a calendar date as the 8-digit wire form.
func FormatDate(t time.Time) string { return t.Format(layoutWireDate) }

// FormatDateShort renders the 2-digit-year variant used at interchange level.
func FormatDateShort(t time.Time) string { return t.Format(layoutWireDateYY) }

// FormatTime renders a 4-digit wire time.
func FormatTime(t time.Time) string { return t.Format(layoutWireTime) }

// CalendarToWireDate converts a 4-2-2 hyphenated calendar date to its 8-digit
// wire form. Input that does not match the calendar pattern passes through
// with the hyphens removed; callers validate shape before encoding.
func CalendarToWireDate(s string) string {
	return strings.ReplaceAll(s, "-", "")
}

// WireToCalendarDate converts an 8-digit wire date back to the hyphenated
// calendar form. Values of unexpected shape are returned unchanged.
func WireToCalendarDate(s string) string {
	if !regexWireDate.MatchString(s) {
		return s
	}
	return s[0:4] + "-" + s[4:6] + "-" + s[6:8]
}

// FormatAmount renders a monetary amount as a 2-decimal fixed string.
func FormatAmount(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// ParseAmount parses a wire amount. Blank or malformed values resolve to zero;
// the decode side treats absence separately from the parsed value.
func ParseAmount(s string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero
	}
	return d
}

// NormalizeNPI reduces a provider identifier to digits and left-pads it to 10.
func NormalizeNPI(s string) string {
	digits := nonDigit.ReplaceAllString(s, "")
	for len(digits) < 10 {
		digits = "0" + digits
	}
	return digits
}

// NormalizeTaxID strips everything but digits from a tax identifier.
func NormalizeTaxID(s string) string {
	return DigitsOnly(s)
}

// DigitsOnly removes every non-digit rune.
func DigitsOnly(s string) string {
	return nonDigit.ReplaceAllString(s, "")
}

// PadRight blank-pads a value to the fixed width demanded by the interchange
// header, truncating values that exceed it.
func PadRight(s string, width int) string {
	if len(s) >= width {
		return s[:width]
	}
	return s + strings.Repeat(" ", width-len(s))
}

// Format predicates used by the validation engine.

// ValidNPI reports whether s is exactly 10 digits.
func ValidNPI(s string) bool { return len(s) == 10 && regexDigits.MatchString(s) }

// ValidTaxID reports whether s is exactly 9 digits.
func ValidTaxID(s string) bool { return len(s) == 9 && regexDigits.MatchString(s) }

// ValidCalendarDate reports whether s matches the 4-2-2 hyphenated pattern and
// names a real date.
func ValidCalendarDate(s string) bool {
	if !regexCalendarDate.MatchString(s) {
		return false
	}
	_, err := time.Parse(layoutCalendarDate, s)
	return err == nil
}

// ValidStateCode reports whether s is exactly two letters.
func ValidStateCode(s string) bool {
	if len(s) != 2 {
		return false
	}
	for _, r := range s {
		if (r < 'A' || r > 'Z') && (r < 'a' || r > 'z') {
			return false
		}
	}
	return true
}

// ValidProcedureCode reports whether s is a 5-character alphanumeric code.
func ValidProcedureCode(s string) bool { return alphanumericLen(s, 5) }

// ValidModifier reports whether s is a 2-character alphanumeric modifier.
func ValidModifier(s string) bool { return alphanumericLen(s, 2) }

// ValidPhone reports whether s carries at least 10 digits.
func ValidPhone(s string) bool {
	return len(nonDigit.ReplaceAllString(s, "")) >= 10
}

func alphanumericLen(s string, n int) bool {
	if len(s) != n {
		return false
	}
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'A' && r <= 'Z':
		case r >= 'a' && r <= 'z':
		default:
			return false
		}
	}
	return true
}
