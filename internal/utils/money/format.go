package money

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Precision is the number of decimal places in a rupee amount.
const Precision = 2

// ToRupees converts paise to a rupee decimal.
func ToRupees(paise int64) decimal.Decimal {
	return decimal.New(paise, -Precision)
}

// FormatPaise renders paise as a plain rupee amount with two decimals,
// e.g. 1234567 -> "12345.67". Used for exports.
func FormatPaise(paise int64) string {
	return ToRupees(paise).StringFixed(Precision)
}

// FormatINR renders paise with Indian digit grouping, e.g. 1234567 -> "₹12,345.67"
// and 12345678900 -> "₹12,34,56,789.00".
func FormatINR(paise int64) string {
	sign := ""
	if paise < 0 {
		sign = "-"
		paise = -paise
	}
	fixed := FormatPaise(paise)
	whole, frac, _ := strings.Cut(fixed, ".")
	return fmt.Sprintf("%s₹%s.%s", sign, groupIndian(whole), frac)
}

func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	head, tail := digits[:len(digits)-3], digits[len(digits)-3:]
	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	if head != "" {
		groups = append([]string{head}, groups...)
	}
	return strings.Join(append(groups, tail), ",")
}
