package signup

import "strings"

// maxCardDigits caps a card number at 16 digits, 19 characters in the
// grouped display form.
const maxCardDigits = 16

// digitsOf strips everything but digits from s.
func digitsOf(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FormatCardNumber normalizes a card number into its display form: digits
// grouped in fours, truncated at 16 digits. "4111111111111111" becomes
// "4111 1111 1111 1111".
func FormatCardNumber(raw string) string {
	digits := digitsOf(raw)
	if len(digits) > maxCardDigits {
		digits = digits[:maxCardDigits]
	}
	var groups []string
	for i := 0; i < len(digits); i += 4 {
		end := i + 4
		if end > len(digits) {
			end = len(digits)
		}
		groups = append(groups, digits[i:end])
	}
	return strings.Join(groups, " ")
}

// FormatExpiry masks an expiry into MM/YY, truncating extra digits. This is
// a display mask only; no expiry-in-future check happens anywhere.
func FormatExpiry(raw string) string {
	digits := digitsOf(raw)
	if len(digits) > 4 {
		digits = digits[:4]
	}
	if len(digits) <= 2 {
		return digits
	}
	return digits[:2] + "/" + digits[2:]
}

// NormalizeCVV strips non-digits and caps the CVV at 4 digits.
func NormalizeCVV(raw string) string {
	digits := digitsOf(raw)
	if len(digits) > 4 {
		digits = digits[:4]
	}
	return digits
}

// cardLast4 returns the last four digits of a formatted card number.
func cardLast4(formatted string) string {
	digits := digitsOf(formatted)
	if len(digits) < 4 {
		return digits
	}
	return digits[len(digits)-4:]
}
