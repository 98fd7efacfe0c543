package components

import "strconv"

// FCFA renders an amount the way the storefront prints prices,
// space-grouped thousands with the franc suffix.
func FCFA(amount float64) string {
	digits := strconv.FormatFloat(amount, 'f', 0, 64)
	neg := false
	if len(digits) > 0 && digits[0] == '-' {
		neg = true
		digits = digits[1:]
	}
	var out []byte
	for i, d := range []byte(digits) {
		if i > 0 && (len(digits)-i)%3 == 0 {
			out = append(out, ' ')
		}
		out = append(out, d)
	}
	s := string(out) + " FCFA"
	if neg {
		s = "-" + s
	}
	return s
}
