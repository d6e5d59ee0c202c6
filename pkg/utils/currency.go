package utils

import (
	"strconv"
	"strings"
)

// FormatINR renders an amount as "₹X,XX,XXX" using en-IN digit grouping:
// the last three digits form one group, the rest pair off in twos
// (12000 -> ₹12,000; 123456 -> ₹1,23,456). Negative amounts clamp to zero;
// itinerary costs are never negative.
func FormatINR(amount int) string {
	if amount < 0 {
		amount = 0
	}
	digits := strconv.Itoa(amount)
	if len(digits) <= 3 {
		return "₹" + digits
	}

	head := digits[:len(digits)-3]
	tail := digits[len(digits)-3:]

	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	if head != "" {
		groups = append([]string{head}, groups...)
	}
	groups = append(groups, tail)

	return "₹" + strings.Join(groups, ",")
}

// ParseINR extracts the numeric value from a currency string, ignoring the
// symbol and separators. Returns 0 for strings without digits.
func ParseINR(s string) int {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return 0
	}
	n, err := strconv.Atoi(b.String())
	if err != nil {
		return 0
	}
	return n
}
